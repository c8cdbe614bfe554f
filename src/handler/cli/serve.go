package cli

import (
	"github.com/spf13/cobra"

	"codescope/src/handler/httpapi"
	"codescope/src/util"
)

func (h *Handler) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis HTTP API",
		Long:  "Exposes analysis over REST: POST /api/v1/analyze, GET /health, GET /api/v1/supported-languages, GET /api/v1/metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				h.cfg.Server.Addr = addr
			}

			util.Info("Starting HTTP API on %s", h.cfg.Server.Addr)
			server := httpapi.NewServer(h.cfg)
			return server.Run()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")

	return cmd
}
