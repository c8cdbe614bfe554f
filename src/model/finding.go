package model

// Severity represents the severity level of a security finding
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityAtLeast reports whether s is at or above min
func SeverityAtLeast(s, min Severity) bool {
	order := map[Severity]int{
		SeverityLow:      0,
		SeverityMedium:   1,
		SeverityHigh:     2,
		SeverityCritical: 3,
	}
	return order[s] >= order[min]
}

// VulnerabilityKind classifies a security finding
type VulnerabilityKind string

const (
	VulnSQLInjection      VulnerabilityKind = "sql_injection"
	VulnXSS               VulnerabilityKind = "xss"
	VulnAuthBypass        VulnerabilityKind = "auth_bypass"
	VulnDataExposure      VulnerabilityKind = "data_exposure"
	VulnSecrecyLeak       VulnerabilityKind = "secrecy_leak"
	VulnInsecureRandom    VulnerabilityKind = "insecure_random"
	VulnUnsafeDeserialize VulnerabilityKind = "unsafe_deserialize"
)

// Location identifies a position in a source file. Line and Column are 1-based.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// SecurityFinding represents a single matched vulnerability signature.
// One finding is emitted per matching rule per line; a line matched by
// several distinct rules yields several findings.
type SecurityFinding struct {
	Kind           VulnerabilityKind `json:"kind"`
	Severity       Severity          `json:"severity"`
	Location       Location          `json:"location"`
	Description    string            `json:"description"`
	Recommendation string            `json:"recommendation"`
}
