package security

import (
	"strings"

	"codescope/src/model"
)

// Scanner evaluates the rule table against raw file text
type Scanner struct {
	rules []Rule
}

// NewScanner creates a scanner over the full rule table
func NewScanner() *Scanner {
	return &Scanner{rules: Rules}
}

// NewScannerWithout creates a scanner that skips the given rule IDs
func NewScannerWithout(disabledIDs []string) *Scanner {
	disabled := make(map[string]bool, len(disabledIDs))
	for _, id := range disabledIDs {
		disabled[id] = true
	}

	var rules []Rule
	for _, r := range Rules {
		if !disabled[r.ID] {
			rules = append(rules, r)
		}
	}
	return &Scanner{rules: rules}
}

// Scan tests each physical line against every rule and returns one finding
// per matching rule per line, in (line, rule-table) order. The column is
// the 1-based position of the first matched substring. No cross-line state
// is kept.
func (s *Scanner) Scan(path, text string) []model.SecurityFinding {
	var findings []model.SecurityFinding

	for i, line := range strings.Split(text, "\n") {
		for _, rule := range s.rules {
			loc := rule.Pattern.FindStringIndex(line)
			if loc == nil {
				continue
			}

			findings = append(findings, model.SecurityFinding{
				Kind:     rule.Kind,
				Severity: rule.Severity,
				Location: model.Location{
					File:   path,
					Line:   i + 1,
					Column: loc[0] + 1,
				},
				Description:    rule.Description,
				Recommendation: rule.Recommendation,
			})
		}
	}

	return findings
}

// FilterBySeverity keeps findings at or above the minimum severity
func FilterBySeverity(findings []model.SecurityFinding, min model.Severity) []model.SecurityFinding {
	filtered := make([]model.SecurityFinding, 0, len(findings))
	for _, f := range findings {
		if model.SeverityAtLeast(f.Severity, min) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}
