package controller

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"codescope/src/config"
	"codescope/src/model"
	"codescope/src/service/clone"
	"codescope/src/service/extractor"
	"codescope/src/service/language"
	"codescope/src/service/quality"
	"codescope/src/service/scanner"
	"codescope/src/service/security"
	"codescope/src/util"
)

// AnalysisController orchestrates the full analysis pipeline: collect
// files, run the per-file analyzers, then the cross-file clone detector.
type AnalysisController struct {
	cfg *config.Config
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{cfg: cfg}
}

// AnalyzeRequest represents a request to analyze a directory tree
type AnalyzeRequest struct {
	BaseDir         string
	IncludePatterns []string // optional overrides of the configured patterns
	ExcludePatterns []string
}

// Analyze runs the full pipeline and assembles the report
func (c *AnalysisController) Analyze(ctx context.Context, req AnalyzeRequest) (*model.AnalysisReport, error) {
	if req.BaseDir == "" {
		return nil, fmt.Errorf("base directory is required")
	}

	startTime := time.Now()
	util.Info("Starting analysis of %s", req.BaseDir)

	scanCfg := c.cfg.Scan
	if len(req.IncludePatterns) > 0 {
		scanCfg.IncludePatterns = req.IncludePatterns
	}
	if len(req.ExcludePatterns) > 0 {
		scanCfg.ExcludePatterns = req.ExcludePatterns
	}

	files, skipped, err := scanner.New(scanCfg).Collect(req.BaseDir)
	if err != nil {
		util.Error("Scan failed: %v", err)
		return nil, err
	}
	util.Info("Analyzing %d files", len(files))

	secScanner := security.NewScannerWithout(c.cfg.Security.DisabledIDs)
	calculator := quality.NewCalculator(
		c.cfg.Analysis.Quality.LongLineLimit,
		c.cfg.Analysis.Quality.MinDupLineChars,
	)

	analyses := make([]model.FileAnalysis, 0, len(files))
	for _, f := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		analyses = append(analyses, c.analyzeFile(f, secScanner, calculator))
	}

	util.Debug("Running clone detection over %d file pairs", len(files)*(len(files)-1)/2)
	cloneResult := c.runCloneDetection(ctx, files)

	report := &model.AnalysisReport{
		SessionID:   uuid.NewString(),
		BaseDir:     req.BaseDir,
		GeneratedAt: time.Now().UTC(),
		Files:       analyses,
		Clones:      cloneResult,
		Summary:     c.buildSummary(analyses, skipped),
	}
	report.Duration = time.Since(startTime)

	util.Info("Analysis complete: %d entities, %d findings, %d clones (took %v)",
		report.Summary.TotalEntities, report.Summary.TotalFindings,
		len(cloneResult.Clones), report.Duration)

	return report, nil
}

func (c *AnalysisController) analyzeFile(f scanner.SourceFile, secScanner *security.Scanner, calculator *quality.Calculator) model.FileAnalysis {
	entities := extractor.Extract(f.Path, f.Content)

	var findings []model.SecurityFinding
	if c.cfg.Security.Enabled {
		findings = secScanner.Scan(f.Path, f.Content)
		findings = security.FilterBySeverity(findings, model.Severity(c.cfg.Security.MinSeverity))
	}

	metrics := calculator.Calculate(f.Content)
	score := quality.Score(metrics)

	return model.FileAnalysis{
		Path:         f.Path,
		Language:     string(language.FromPath(f.Path)),
		LineCount:    len(strings.Split(f.Content, "\n")),
		ContentHash:  f.ContentHash,
		Entities:     entities,
		Findings:     findings,
		Metrics:      metrics,
		QualityScore: score,
		Grade:        quality.Grade(score),
	}
}

func (c *AnalysisController) runCloneDetection(ctx context.Context, files []scanner.SourceFile) model.CloneAnalysisResult {
	detector := clone.NewDetector()
	cloneCfg := c.cfg.Analysis.Clones
	if cloneCfg.SimilarityThreshold > 0 {
		detector.SimilarityThreshold = cloneCfg.SimilarityThreshold
	}
	if cloneCfg.MinCloneLength > 0 {
		detector.MinCloneLength = cloneCfg.MinCloneLength
	}
	if cloneCfg.MinNearLength > 0 {
		detector.MinNearLength = cloneCfg.MinNearLength
	}
	if cloneCfg.LineSimilarityFloor > 0 {
		detector.LineSimilarityFloor = cloneCfg.LineSimilarityFloor
	}
	if cloneCfg.FunctionalThreshold > 0 {
		detector.FunctionalThreshold = cloneCfg.FunctionalThreshold
	}
	if c.cfg.Concurrency.CloneWorkers > 0 {
		detector.Workers = c.cfg.Concurrency.CloneWorkers
	}

	inputs := make([]clone.File, len(files))
	for i, f := range files {
		inputs[i] = clone.File{Path: f.Path, Content: f.Content}
	}
	return detector.Analyze(ctx, inputs)
}

func (c *AnalysisController) buildSummary(analyses []model.FileAnalysis, skipped []string) model.ReportSummary {
	summary := model.ReportSummary{
		TotalFiles:      len(analyses),
		BySeverity:      make(map[model.Severity]int),
		ByVulnerability: make(map[model.VulnerabilityKind]int),
		SkippedFiles:    skipped,
	}

	byFile := make(map[string]int)
	var scoreSum float64
	for _, a := range analyses {
		summary.TotalLines += a.LineCount
		summary.TotalEntities += len(a.Entities)
		summary.TotalFindings += len(a.Findings)
		summary.Totals.Add(a.Metrics)
		scoreSum += a.QualityScore

		for _, f := range a.Findings {
			summary.BySeverity[f.Severity]++
			summary.ByVulnerability[f.Kind]++
			byFile[a.Path]++
		}
	}

	if len(analyses) > 0 {
		summary.OverallScore = scoreSum / float64(len(analyses))
	}
	summary.OverallGrade = quality.Grade(summary.OverallScore)

	type fileCount struct {
		path  string
		count int
	}
	var hot []fileCount
	for path, count := range byFile {
		hot = append(hot, fileCount{path, count})
	}
	sort.Slice(hot, func(i, j int) bool {
		if hot[i].count != hot[j].count {
			return hot[i].count > hot[j].count
		}
		return hot[i].path < hot[j].path
	})

	topN := c.cfg.Output.HotspotsTopN
	if topN > len(hot) {
		topN = len(hot)
	}
	for i := 0; i < topN; i++ {
		summary.HotspotFiles = append(summary.HotspotFiles, model.FileHotspot{
			FilePath:     hot[i].path,
			FindingCount: hot[i].count,
		})
	}

	return summary
}
