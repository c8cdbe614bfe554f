package clone

import (
	"strings"

	"codescope/src/model"
)

// nearClone runs the same double scan as exactClone but lets lines differ
// as long as their word-overlap similarity stays at or above
// LineSimilarityFloor. The window's average similarity must land in
// [SimilarityThreshold, 100): a window of identical lines averages 100 and
// is exact-clone territory, not a near clone. The best (highest average)
// qualifying window wins for the pair.
func (d *Detector) nearClone(a, b file) *model.CodeClone {
	bestAvg := 0.0
	bestLen := 0
	bestI := -1

	for i := 0; i < len(a.trim); i++ {
		if a.trim[i] == "" {
			continue
		}
		for j := 0; j < len(b.trim); j++ {
			length := 0
			total := 0.0
			for i+length < len(a.trim) && j+length < len(b.trim) {
				la := a.trim[i+length]
				lb := b.trim[j+length]
				if la == "" || lb == "" {
					break
				}
				sim := lineSimilarity(la, lb)
				if sim < d.LineSimilarityFloor {
					break
				}
				total += sim
				length++
			}
			if length < d.MinNearLength {
				continue
			}
			avg := total / float64(length)
			if avg >= d.SimilarityThreshold && avg < 100 && avg > bestAvg {
				bestAvg, bestLen, bestI = avg, length, i
			}
		}
	}

	if bestI < 0 {
		return nil
	}

	return &model.CodeClone{
		Kind:            model.CloneNear,
		PrimaryFile:     a.path,
		CloneFiles:      []string{b.path},
		StartLine:       bestI + 1,
		EndLine:         bestI + bestLen,
		Length:          bestLen,
		Similarity:      bestAvg,
		Content:         strings.Join(a.lines[bestI:bestI+bestLen], "\n"),
		RiskLevel:       riskForLength(bestLen),
		RefactoringHint: "Unify the variants and extract a parameterized helper",
	}
}

// lineSimilarity is the word-overlap ratio of the two lines' distinct
// tokens longer than two characters, as a 0-100 percentage. Lines with no
// such tokens score 0.
func lineSimilarity(a, b string) float64 {
	ta := lineTokens(a)
	tb := lineTokens(b)
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

func lineTokens(line string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(line, func(r rune) bool {
		return !isWordRune(r)
	}) {
		if len(tok) > 2 {
			tokens[tok] = true
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
