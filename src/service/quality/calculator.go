package quality

import (
	"math"
	"regexp"
	"strings"

	"codescope/src/model"
)

// The maintainability constant term is sin(sqrt(0.24)) scaled by 50. The
// argument is fixed, so the term is a fixed offset; it is kept in this
// form for output compatibility with the formula
// 171 - 5.2*ln(LOC) - 0.23*commentRatio + 50*sin(sqrt(0.24)).
var maintainabilityOffset = 50 * math.Sin(math.Sqrt(0.24))

var (
	branchRe    = regexp.MustCompile(`\b(?:if|while|for|case|catch)\b`)
	todoRe      = regexp.MustCompile(`\b(?:TODO|FIXME)\b`)
	debugCallRe = regexp.MustCompile(`console\.log\s*\(|\bprint\s*\(|\bprintf\s*\(|cout\s*<<`)
	exceptionRe = regexp.MustCompile(`\bException\b|\bcatch\b`)
)

// Calculator computes per-file heuristic quality metrics
type Calculator struct {
	longLineLimit   int
	minDupLineChars int
}

// NewCalculator creates a calculator with the given thresholds. Zero
// values fall back to the documented defaults (120 chars, 10 chars).
func NewCalculator(longLineLimit, minDupLineChars int) *Calculator {
	if longLineLimit <= 0 {
		longLineLimit = 120
	}
	if minDupLineChars <= 0 {
		minDupLineChars = 10
	}
	return &Calculator{
		longLineLimit:   longLineLimit,
		minDupLineChars: minDupLineChars,
	}
}

// Calculate derives all metrics for one file. TestCoverage is always 0:
// no measurement source exists.
func (c *Calculator) Calculate(text string) model.QualityMetrics {
	lines := strings.Split(text, "\n")

	return model.QualityMetrics{
		CyclomaticComplexity:  cyclomaticComplexity(lines),
		MaintainabilityIndex:  maintainabilityIndex(lines),
		TechnicalDebtHours:    c.technicalDebt(lines),
		DuplicationPercentage: c.duplicationPercentage(lines),
	}
}

// cyclomaticComplexity counts branching keywords across the whole file
// plus a base of 1. There is no function-level decomposition.
func cyclomaticComplexity(lines []string) int {
	complexity := 1
	for _, line := range lines {
		complexity += len(branchRe.FindAllString(line, -1))
	}
	return complexity
}

// maintainabilityIndex is clamped to [0,171]. An empty file returns 171 by
// convention so LOC=0 never divides by zero or produces NaN.
func maintainabilityIndex(lines []string) float64 {
	loc := 0
	comments := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		loc++
		if isCommentLine(trimmed) {
			comments++
		}
	}

	if loc == 0 {
		return 171
	}

	commentRatio := float64(comments) / float64(loc) * 100
	index := 171 - 5.2*math.Log(float64(loc)) - 0.23*commentRatio + maintainabilityOffset

	if index < 0 {
		return 0
	}
	if index > 171 {
		return 171
	}
	return index
}

func isCommentLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*")
}

// technicalDebt accumulates a per-line remediation estimate in hours.
// Purely additive and unbounded.
func (c *Calculator) technicalDebt(lines []string) float64 {
	var hours float64
	for _, line := range lines {
		if len(line) > c.longLineLimit {
			hours += 0.1
		}
		if todoRe.MatchString(line) {
			hours += 0.5
		}
		if debugCallRe.MatchString(line) {
			hours += 0.2
		}
		if exceptionRe.MatchString(line) {
			hours += 0.3
		}
	}
	return hours
}

// duplicationPercentage compares every pair of trimmed lines of at least
// minDupLineChars characters. A line counts as duplicated at most once;
// the first match short-circuits it.
func (c *Calculator) duplicationPercentage(lines []string) float64 {
	if len(lines) == 0 {
		return 0
	}

	duplicated := 0
	for i := 0; i < len(lines); i++ {
		a := strings.TrimSpace(lines[i])
		if len(a) < c.minDupLineChars {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			if a == strings.TrimSpace(lines[j]) {
				duplicated++
				break
			}
		}
	}

	pct := float64(duplicated) / float64(len(lines)) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Score combines the metrics into a normalized 0-100 quality score: the
// average of four component scores, each floored at 0. This is distinct
// from the additive cross-file aggregate of QualityMetrics.
func Score(m model.QualityMetrics) float64 {
	components := []float64{
		100 - 2*float64(m.CyclomaticComplexity),
		m.MaintainabilityIndex / 171 * 100,
		100 - m.DuplicationPercentage,
		100 - m.TechnicalDebtHours,
	}

	var total float64
	for _, c := range components {
		if c < 0 {
			c = 0
		}
		total += c
	}
	return total / float64(len(components))
}

// Grade maps a quality score to a letter grade
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
