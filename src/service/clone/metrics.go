package clone

import (
	"fmt"

	"codescope/src/model"
)

// buildMetrics derives aggregate counts from the full clone set and the
// total line count of the analyzed corpus.
func buildMetrics(clones []model.CodeClone, files []file, totalLines int) model.CloneMetrics {
	m := model.CloneMetrics{
		TotalClones: len(clones),
		TotalLines:  totalLines,
	}

	involvement := make(map[string]int)
	for _, c := range clones {
		switch c.Kind {
		case model.CloneExact:
			m.ExactClones++
		case model.CloneNear:
			m.NearClones++
		case model.CloneFunctional:
			m.FunctionalClones++
		}
		m.DuplicatedLines += c.Length

		involvement[c.PrimaryFile]++
		for _, f := range c.CloneFiles {
			involvement[f]++
		}
	}

	if totalLines > 0 {
		m.DuplicationPercentage = float64(m.DuplicatedLines) / float64(totalLines) * 100
		if m.DuplicationPercentage > 100 {
			m.DuplicationPercentage = 100
		}
	}

	// Tie-break by file order so the result is deterministic.
	best := 0
	for _, f := range files {
		if count := involvement[f.path]; count > best {
			best = count
			m.MostClonedFile = f.path
		}
	}

	return m
}

// buildOpportunities derives refactoring suggestions: extract_method when
// exact clones longer than 10 lines exist, strategy_pattern when more than
// two functional clones exceed 80% similarity.
func buildOpportunities(clones []model.CodeClone) []model.RefactoringOpportunity {
	var opportunities []model.RefactoringOpportunity

	var extractFiles []string
	extractCount := 0
	for _, c := range clones {
		if c.Kind == model.CloneExact && c.Length > 10 {
			extractCount++
			extractFiles = appendUnique(extractFiles, c.PrimaryFile)
			for _, f := range c.CloneFiles {
				extractFiles = appendUnique(extractFiles, f)
			}
		}
	}
	if extractCount > 0 {
		opportunities = append(opportunities, model.RefactoringOpportunity{
			Kind: "extract_method",
			Description: fmt.Sprintf(
				"%d exact clone(s) longer than 10 lines can be extracted into shared functions", extractCount),
			Files: extractFiles,
		})
	}

	var strategyFiles []string
	strategyCount := 0
	for _, c := range clones {
		if c.Kind == model.CloneFunctional && c.Similarity > 80 {
			strategyCount++
			strategyFiles = appendUnique(strategyFiles, c.PrimaryFile)
			for _, f := range c.CloneFiles {
				strategyFiles = appendUnique(strategyFiles, f)
			}
		}
	}
	if strategyCount > 2 {
		opportunities = append(opportunities, model.RefactoringOpportunity{
			Kind: "strategy_pattern",
			Description: fmt.Sprintf(
				"%d functionally equivalent implementations above 80%% similarity suggest a strategy pattern", strategyCount),
			Files: strategyFiles,
		})
	}

	return opportunities
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
