package clone

import (
	"regexp"
	"strings"

	"codescope/src/model"
)

// functionSeedRe marks lines that look like a function definition header.
// It is deliberately generic across the supported languages; the span
// extractor, not the entity extractor, owns body boundaries because it
// needs an end line and the extractor does not.
var functionSeedRe = regexp.MustCompile(
	`\bfunction\s+\w+|\bdef\s+\w+\s*\(|^\s*(?:[\w:<>,\*&]+\s+)+[A-Za-z_]\w*\s*\([^;]*\)\s*\{?\s*$`)

type span struct {
	start int // 0-based
	end   int // 0-based, inclusive
}

func (s span) length() int { return s.end - s.start + 1 }

// extractFunctionSpans finds function-like body spans with a simple brace
// count seeded at definition headers. A span closes when the brace depth
// returns to zero after the first opening brace; a seed with no brace
// within three lines yields no span.
func extractFunctionSpans(f file) []span {
	var spans []span

	for i := 0; i < len(f.lines); i++ {
		if !functionSeedRe.MatchString(f.lines[i]) {
			continue
		}

		depth := 0
		opened := false
		end := -1
		for j := i; j < len(f.lines); j++ {
			for _, ch := range f.lines[j] {
				switch ch {
				case '{':
					depth++
					opened = true
				case '}':
					depth--
				}
			}
			if !opened && j-i >= 3 {
				break
			}
			if opened && depth <= 0 {
				end = j
				break
			}
		}

		if end > i {
			spans = append(spans, span{start: i, end: end})
			i = end
		}
	}

	return spans
}

// functionalClone compares every span pair in order and reports the first
// pair scoring at or above FunctionalThreshold. First found wins, not best
// found; iteration order is fixed by line order so the result is
// reproducible.
func (d *Detector) functionalClone(a, b file) *model.CodeClone {
	spansA := extractFunctionSpans(a)
	if len(spansA) == 0 {
		return nil
	}
	spansB := extractFunctionSpans(b)

	for _, sa := range spansA {
		for _, sb := range spansB {
			score := spanSimilarity(a, sa, b, sb)
			if score < d.FunctionalThreshold {
				continue
			}

			return &model.CodeClone{
				Kind:            model.CloneFunctional,
				PrimaryFile:     a.path,
				CloneFiles:      []string{b.path},
				StartLine:       sa.start + 1,
				EndLine:         sa.end + 1,
				Length:          sa.length(),
				Similarity:      score,
				Content:         strings.Join(a.lines[sa.start:sa.end+1], "\n"),
				RiskLevel:       riskForLength(sa.length()),
				RefactoringHint: "Consolidate the equivalent implementations behind one abstraction",
			}
		}
	}

	return nil
}

// spanSimilarity averages line-count closeness with the token overlap of
// the first 100 normalized characters of each span.
func spanSimilarity(a file, sa span, b file, sb span) float64 {
	lenA := float64(sa.length())
	lenB := float64(sb.length())
	closeness := lenA / lenB * 100
	if lenB < lenA {
		closeness = lenB / lenA * 100
	}

	overlap := tokenOverlap(
		normalizeSpan(a, sa),
		normalizeSpan(b, sb),
	)

	return (closeness + overlap) / 2
}

// normalizeSpan lowercases the span text, collapses non-word characters to
// single spaces, and keeps the first 100 characters.
func normalizeSpan(f file, s span) string {
	var sb strings.Builder
	lastSpace := false
	for _, line := range f.trim[s.start : s.end+1] {
		for _, r := range strings.ToLower(line) {
			if isWordRune(r) {
				sb.WriteRune(r)
				lastSpace = false
			} else if !lastSpace {
				sb.WriteByte(' ')
				lastSpace = true
			}
			if sb.Len() >= 100 {
				return sb.String()
			}
		}
		if !lastSpace {
			sb.WriteByte(' ')
			lastSpace = true
		}
	}
	return sb.String()
}

func tokenOverlap(a, b string) float64 {
	ta := make(map[string]bool)
	for _, tok := range strings.Fields(a) {
		ta[tok] = true
	}
	tb := make(map[string]bool)
	for _, tok := range strings.Fields(b) {
		tb[tok] = true
	}
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	common := 0
	for tok := range ta {
		if tb[tok] {
			common++
		}
	}

	max := len(ta)
	if len(tb) > max {
		max = len(tb)
	}
	return float64(common) / float64(max) * 100
}
