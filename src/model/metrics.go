package model

// QualityMetrics contains per-file heuristic quality measures.
//
// When accumulated across files the fields are summed, not averaged: the
// combined struct is an additive aggregate, and callers that want a
// normalized view must use QualityScore/Grade instead. TestCoverage has no
// measurement source and is always 0.
type QualityMetrics struct {
	CyclomaticComplexity  int     `json:"cyclomatic_complexity"`
	MaintainabilityIndex  float64 `json:"maintainability_index"`
	TechnicalDebtHours    float64 `json:"technical_debt_hours"`
	DuplicationPercentage float64 `json:"duplication_percentage"`
	TestCoverage          float64 `json:"test_coverage"`
}

// Add accumulates other into m field by field
func (m *QualityMetrics) Add(other QualityMetrics) {
	m.CyclomaticComplexity += other.CyclomaticComplexity
	m.MaintainabilityIndex += other.MaintainabilityIndex
	m.TechnicalDebtHours += other.TechnicalDebtHours
	m.DuplicationPercentage += other.DuplicationPercentage
	m.TestCoverage += other.TestCoverage
}
