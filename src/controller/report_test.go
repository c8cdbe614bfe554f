package controller

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codescope/src/config"
	"codescope/src/model"
)

func minimalReport() *model.AnalysisReport {
	return &model.AnalysisReport{
		SessionID: "s1",
		BaseDir:   "/tmp/myproject",
		Summary:   model.ReportSummary{OverallGrade: "A"},
	}
}

func TestGenerateReportsWritesEachFormat(t *testing.T) {
	outDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Output.Formats = []string{"json", "markdown", "sarif"}
	cfg.Output.OutputDir = outDir

	paths, err := NewReportController(cfg).GenerateReports(minimalReport())
	require.NoError(t, err)

	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(outDir, "myproject-analysis.json"), paths[0])
	assert.Equal(t, filepath.Join(outDir, "myproject-analysis.md"), paths[1])
	assert.Equal(t, filepath.Join(outDir, "myproject-analysis.sarif"), paths[2])

	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

func TestGenerateReportsCreatesOutputDirectory(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = filepath.Join(t.TempDir(), "nested", "reports")

	paths, err := NewReportController(cfg).GenerateReports(minimalReport())
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.FileExists(t, paths[0])
}

func TestGenerateReportsUnsupportedFormat(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Formats = []string{"xml"}
	cfg.Output.OutputDir = t.TempDir()

	_, err := NewReportController(cfg).GenerateReports(minimalReport())
	assert.Error(t, err)
}

func TestGenerateToString(t *testing.T) {
	out, err := NewReportController(config.DefaultConfig()).
		GenerateToString(minimalReport(), "markdown")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Source Pattern Analysis Report"))
}

func TestGetOutputPathFallbackName(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = "out"
	c := NewReportController(cfg)

	assert.Equal(t, filepath.Join("out", "analysis-analysis.json"), c.getOutputPath(".", "json"))
	assert.Equal(t, filepath.Join("out", "proj-analysis.md"), c.getOutputPath("/work/proj", "markdown"))
}
