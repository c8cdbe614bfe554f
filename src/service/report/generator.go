package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"codescope/src/config"
	"codescope/src/model"
	"codescope/src/util"
)

// Generator renders analysis reports in various formats
type Generator struct {
	cfg config.OutputConfig
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate renders a report in the specified format
func (g *Generator) Generate(report *model.AnalysisReport, format string) (string, error) {
	util.Debug("Generating report in %s format (%d files)", format, len(report.Files))
	switch format {
	case "json":
		return g.generateJSON(report)
	case "markdown", "md":
		return g.generateMarkdown(report)
	case "sarif":
		return g.generateSARIF(report)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(report *model.AnalysisReport) (string, error) {
	out := *report
	if !g.cfg.IncludeCloneContent {
		clones := make([]model.CodeClone, len(report.Clones.Clones))
		for i, c := range report.Clones.Clones {
			c.Content = ""
			clones[i] = c
		}
		out.Clones.Clones = clones
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(report *model.AnalysisReport) (string, error) {
	var sb strings.Builder

	sb.WriteString("# Source Pattern Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("**Base directory:** %s\n", report.BaseDir))
	sb.WriteString(fmt.Sprintf("**Session:** %s\n", report.SessionID))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Files analyzed:** %d (%d lines)\n", report.Summary.TotalFiles, report.Summary.TotalLines))
	sb.WriteString(fmt.Sprintf("- **Entities:** %d\n", report.Summary.TotalEntities))
	sb.WriteString(fmt.Sprintf("- **Security findings:** %d\n", report.Summary.TotalFindings))
	sb.WriteString(fmt.Sprintf("- **Overall quality:** %.1f/100 (%s)\n\n", report.Summary.OverallScore, report.Summary.OverallGrade))

	sb.WriteString("### Findings by Severity\n\n")
	sb.WriteString("| Severity | Count |\n")
	sb.WriteString("|----------|-------|\n")
	for _, sev := range []model.Severity{model.SeverityCritical, model.SeverityHigh, model.SeverityMedium, model.SeverityLow} {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", sev, report.Summary.BySeverity[sev]))
	}
	sb.WriteString("\n")

	if len(report.Summary.HotspotFiles) > 0 {
		sb.WriteString("### Hotspot Files\n\n")
		sb.WriteString("| File | Findings |\n")
		sb.WriteString("|------|----------|\n")
		for _, hs := range report.Summary.HotspotFiles {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", hs.FilePath, hs.FindingCount))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Files\n\n")
	sb.WriteString("| File | Language | Lines | Complexity | MI | Debt (h) | Dup % | Grade |\n")
	sb.WriteString("|------|----------|-------|------------|----|----------|-------|-------|\n")
	for _, f := range report.Files {
		sb.WriteString(fmt.Sprintf("| %s | %s | %d | %d | %.1f | %.1f | %.1f | %s |\n",
			f.Path, f.Language, f.LineCount,
			f.Metrics.CyclomaticComplexity, f.Metrics.MaintainabilityIndex,
			f.Metrics.TechnicalDebtHours, f.Metrics.DuplicationPercentage, f.Grade))
	}
	sb.WriteString("\n")

	if report.Summary.TotalFindings > 0 {
		sb.WriteString("## Security Findings\n\n")
		for _, f := range report.Files {
			for _, finding := range f.Findings {
				sb.WriteString(fmt.Sprintf("#### [%s] %s\n\n", strings.ToUpper(string(finding.Severity)), finding.Kind))
				sb.WriteString(fmt.Sprintf("- **Location:** `%s:%d:%d`\n", finding.Location.File, finding.Location.Line, finding.Location.Column))
				sb.WriteString(fmt.Sprintf("- **Description:** %s\n", finding.Description))
				sb.WriteString(fmt.Sprintf("- **Recommendation:** %s\n\n", finding.Recommendation))
			}
		}
	}

	if len(report.Clones.Clones) > 0 {
		sb.WriteString("## Code Clones\n\n")
		sb.WriteString(fmt.Sprintf("- **Total clones:** %d (exact %d, near %d, functional %d)\n",
			report.Clones.Metrics.TotalClones, report.Clones.Metrics.ExactClones,
			report.Clones.Metrics.NearClones, report.Clones.Metrics.FunctionalClones))
		sb.WriteString(fmt.Sprintf("- **Duplicated lines:** %d of %d (%.1f%%)\n",
			report.Clones.Metrics.DuplicatedLines, report.Clones.Metrics.TotalLines,
			report.Clones.Metrics.DuplicationPercentage))
		if report.Clones.Metrics.MostClonedFile != "" {
			sb.WriteString(fmt.Sprintf("- **Most cloned file:** %s\n", report.Clones.Metrics.MostClonedFile))
		}
		sb.WriteString("\n")

		sb.WriteString("| Kind | Primary | Counterpart | Lines | Similarity | Risk |\n")
		sb.WriteString("|------|---------|-------------|-------|------------|------|\n")
		for _, c := range report.Clones.Clones {
			counterpart := strings.Join(c.CloneFiles, ", ")
			sb.WriteString(fmt.Sprintf("| %s | %s:%d-%d | %s | %d | %.1f | %s |\n",
				c.Kind, c.PrimaryFile, c.StartLine, c.EndLine, counterpart, c.Length, c.Similarity, c.RiskLevel))
		}
		sb.WriteString("\n")

		for _, opp := range report.Clones.Opportunities {
			sb.WriteString(fmt.Sprintf("- **%s**: %s (%s)\n", opp.Kind, opp.Description, strings.Join(opp.Files, ", ")))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// generateSARIF renders security findings as a SARIF 2.1.0 report
func (g *Generator) generateSARIF(report *model.AnalysisReport) (string, error) {
	sarifReport, err := sarif.New(sarif.Version210)
	if err != nil {
		return "", fmt.Errorf("creating SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("codescope", "https://github.com/codescope/codescope")
	for _, f := range report.Files {
		for _, finding := range f.Findings {
			rule := run.AddRule(string(finding.Kind)).
				WithDescription(finding.Description).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{
					Level: sarifLevel(finding.Severity),
				})

			location := sarif.NewLocation().WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri(finding.Location.File)).
					WithRegion(sarif.NewRegion().
						WithStartLine(finding.Location.Line).
						WithStartColumn(finding.Location.Column)),
			)

			result := sarif.NewRuleResult(rule.ID).
				WithMessage(sarif.NewTextMessage(finding.Description)).
				WithLevel(sarifLevel(finding.Severity)).
				WithLocations([]*sarif.Location{location})
			run.AddResult(result)
		}
	}
	sarifReport.AddRun(run)

	var buf bytes.Buffer
	if err := sarifReport.PrettyWrite(&buf); err != nil {
		return "", fmt.Errorf("writing SARIF report: %w", err)
	}
	return buf.String(), nil
}

func sarifLevel(s model.Severity) string {
	switch s {
	case model.SeverityCritical, model.SeverityHigh:
		return "error"
	case model.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}
