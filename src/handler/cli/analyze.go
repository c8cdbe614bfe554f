package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"codescope/src/controller"
	"codescope/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		include   []string
		exclude   []string
		outputDir string
		format    string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze <path>",
		Short: "Analyze a source tree",
		Long:  "Runs entity extraction, security scanning, quality metrics, and clone detection over a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir := args[0]
			util.Info("Analyzing %s (timeout: %v)", baseDir, timeout)

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			report, err := analysisCtrl.Analyze(ctx, controller.AnalyzeRequest{
				BaseDir:         baseDir,
				IncludePatterns: include,
				ExcludePatterns: exclude,
			})
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				if format != "" {
					h.cfg.Output.Formats = []string{format}
				}

				reportCtrl := controller.NewReportController(h.cfg)
				paths, err := reportCtrl.GenerateReports(report)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Printf("Report written to %s\n", path)
				}
			} else {
				reportCtrl := controller.NewReportController(h.cfg)
				outputFormat := format
				if outputFormat == "" {
					outputFormat = "json"
				}

				output, err := reportCtrl.GenerateToString(report, outputFormat)
				if err != nil {
					// Fallback to raw JSON
					data, _ := json.MarshalIndent(report, "", "  ")
					fmt.Println(string(data))
				} else {
					fmt.Println(output)
				}
			}

			// Print summary to stderr
			fmt.Fprintf(os.Stderr, "\nAnalysis complete:\n")
			fmt.Fprintf(os.Stderr, "  Files: %d\n", report.Summary.TotalFiles)
			fmt.Fprintf(os.Stderr, "  Findings: %d\n", report.Summary.TotalFindings)
			fmt.Fprintf(os.Stderr, "  Clones: %d\n", report.Clones.Metrics.TotalClones)
			fmt.Fprintf(os.Stderr, "  Quality: %.1f/100 (%s)\n", report.Summary.OverallScore, report.Summary.OverallGrade)

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&include, "include", "i", nil, "Include glob patterns (supports **)")
	cmd.Flags().StringSliceVarP(&exclude, "exclude", "e", nil, "Exclude glob patterns (supports **)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, markdown, sarif)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "Analysis timeout")

	return cmd
}
