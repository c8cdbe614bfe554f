package model

import "time"

// FileAnalysis is the per-file output of the engine
type FileAnalysis struct {
	Path         string            `json:"path"`
	Language     string            `json:"language"`
	LineCount    int               `json:"line_count"`
	ContentHash  string            `json:"content_hash"`
	Entities     []CodeEntity      `json:"entities"`
	Findings     []SecurityFinding `json:"findings"`
	Metrics      QualityMetrics    `json:"metrics"`
	QualityScore float64           `json:"quality_score"`
	Grade        string            `json:"grade"`
}

// AnalysisReport represents the complete analysis output
type AnalysisReport struct {
	SessionID   string              `json:"session_id"`
	BaseDir     string              `json:"base_dir"`
	GeneratedAt time.Time           `json:"generated_at"`
	Duration    time.Duration       `json:"duration_ns"`
	Files       []FileAnalysis      `json:"files"`
	Clones      CloneAnalysisResult `json:"clones"`
	Summary     ReportSummary       `json:"summary"`
}

// ReportSummary contains aggregated statistics.
//
// Totals is the additive aggregate of per-file QualityMetrics (a sum, not
// a mean); OverallScore/OverallGrade are the normalized 0-100 view.
type ReportSummary struct {
	TotalFiles      int                       `json:"total_files"`
	TotalLines      int                       `json:"total_lines"`
	TotalEntities   int                       `json:"total_entities"`
	TotalFindings   int                       `json:"total_findings"`
	BySeverity      map[Severity]int          `json:"by_severity"`
	ByVulnerability map[VulnerabilityKind]int `json:"by_vulnerability"`
	Totals          QualityMetrics            `json:"totals"`
	OverallScore    float64                   `json:"overall_score"`
	OverallGrade    string                    `json:"overall_grade"`
	HotspotFiles    []FileHotspot             `json:"hotspot_files"`
	SkippedFiles    []string                  `json:"skipped_files,omitempty"`
}

// FileHotspot represents a file with many findings
type FileHotspot struct {
	FilePath     string `json:"file_path"`
	FindingCount int    `json:"finding_count"`
}
