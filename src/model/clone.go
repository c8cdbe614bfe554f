package model

// CloneKind classifies a detected code clone
type CloneKind string

const (
	CloneExact      CloneKind = "exact"
	CloneNear       CloneKind = "near"
	CloneFunctional CloneKind = "functional"
)

// RiskLevel grades how risky a clone is to leave in place
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// CodeClone represents the strongest match of one kind for a file pair.
// Start/end lines are 1-based positions in the primary file. Similarity is
// a 0-100 percentage: always 100 for exact clones, in [80,100) for near
// clones.
type CodeClone struct {
	Kind            CloneKind `json:"kind"`
	PrimaryFile     string    `json:"primary_file"`
	CloneFiles      []string  `json:"clone_files"`
	StartLine       int       `json:"start_line"`
	EndLine         int       `json:"end_line"`
	Length          int       `json:"length"`
	Similarity      float64   `json:"similarity"`
	Content         string    `json:"content,omitempty"`
	RiskLevel       RiskLevel `json:"risk_level"`
	RefactoringHint string    `json:"refactoring_hint"`
}

// RefactoringOpportunity is a suggestion derived from the clone set
type RefactoringOpportunity struct {
	Kind        string   `json:"kind"` // extract_method, strategy_pattern
	Description string   `json:"description"`
	Files       []string `json:"files"`
}

// CloneMetrics contains aggregate statistics over the full clone set
type CloneMetrics struct {
	TotalClones           int     `json:"total_clones"`
	ExactClones           int     `json:"exact_clones"`
	NearClones            int     `json:"near_clones"`
	FunctionalClones      int     `json:"functional_clones"`
	DuplicatedLines       int     `json:"duplicated_lines"`
	TotalLines            int     `json:"total_lines"`
	DuplicationPercentage float64 `json:"duplication_percentage"`
	MostClonedFile        string  `json:"most_cloned_file"`
}

// CloneAnalysisResult is the cross-file output of the clone detector
type CloneAnalysisResult struct {
	Clones        []CodeClone              `json:"clones"`
	Metrics       CloneMetrics             `json:"metrics"`
	Opportunities []RefactoringOpportunity `json:"opportunities"`
}
