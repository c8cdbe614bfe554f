package clone

import (
	"strings"

	"codescope/src/model"
)

// exactClone finds the longest run of character-identical trimmed lines
// between the two files and keeps it if it spans at least MinCloneLength
// lines. Blank trimmed lines neither start nor extend a match, so the
// trailing empty element of a newline-terminated file never pads a run.
// Similarity for exact clones is always 100.
func (d *Detector) exactClone(a, b file) *model.CodeClone {
	bestLen := 0
	bestI := -1

	for i := 0; i < len(a.trim); i++ {
		if a.trim[i] == "" {
			continue
		}
		for j := 0; j < len(b.trim); j++ {
			length := 0
			for i+length < len(a.trim) && j+length < len(b.trim) {
				la := a.trim[i+length]
				if la == "" || la != b.trim[j+length] {
					break
				}
				length++
			}
			if length > bestLen {
				bestLen, bestI = length, i
			}
		}
	}

	if bestLen < d.MinCloneLength {
		return nil
	}

	return &model.CodeClone{
		Kind:            model.CloneExact,
		PrimaryFile:     a.path,
		CloneFiles:      []string{b.path},
		StartLine:       bestI + 1,
		EndLine:         bestI + bestLen,
		Length:          bestLen,
		Similarity:      100,
		Content:         strings.Join(a.lines[bestI:bestI+bestLen], "\n"),
		RiskLevel:       riskForLength(bestLen),
		RefactoringHint: "Extract the duplicated block into a shared function",
	}
}
