package model

// EntityKind classifies a detected code entity
type EntityKind string

const (
	EntityClass     EntityKind = "class"
	EntityFunction  EntityKind = "function"
	EntityMethod    EntityKind = "method"
	EntityVariable  EntityKind = "variable"
	EntityModule    EntityKind = "module"
	EntityInterface EntityKind = "interface"
)

// CodeEntity represents a named code construct found by a language recognizer.
// Entities are created once per recognizer match and never deduplicated
// across files; line numbers are 1-based.
type CodeEntity struct {
	Kind          EntityKind `json:"kind"`
	Name          string     `json:"name"`
	FilePath      string     `json:"file_path"`
	LineNumber    int        `json:"line_number"`
	SourceSnippet string     `json:"source_snippet"`
	Dependencies  []string   `json:"dependencies,omitempty"`
	SecurityRisks []string   `json:"security_risks,omitempty"`
	QualityIssues []string   `json:"quality_issues,omitempty"`
}
