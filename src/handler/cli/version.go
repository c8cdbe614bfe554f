package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"codescope/src/service/language"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("codescope %s\n", h.cfg.Agent.Version)
		},
	}
}

func (h *Handler) languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Supported languages:")
			for _, entry := range language.Supported() {
				fmt.Printf("  %-11s %v\n", entry.Language, entry.Extensions)
			}
			fmt.Println("")
			fmt.Println("Files with other extensions are reported as a single module entity.")
		},
	}
}
