package clone

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"codescope/src/model"
)

// File is one immutable input to the detector
type File struct {
	Path    string
	Content string
}

type file struct {
	path  string
	lines []string
	trim  []string
}

// Detector finds exact, near, and functional clones across file pairs.
// All thresholds are plain parameters; the detector keeps no state between
// runs.
type Detector struct {
	SimilarityThreshold float64 // minimum average similarity for a near clone
	MinCloneLength      int     // minimum line count for an exact clone
	MinNearLength       int     // minimum line count for a near clone
	LineSimilarityFloor float64 // per-line similarity needed to extend a near match
	FunctionalThreshold float64 // span similarity needed for a functional clone
	Workers             int     // parallel file-pair workers
}

// NewDetector returns a detector with the documented default thresholds
func NewDetector() *Detector {
	return &Detector{
		SimilarityThreshold: 80,
		MinCloneLength:      5,
		MinNearLength:       3,
		LineSimilarityFloor: 70,
		FunctionalThreshold: 75,
		Workers:             4,
	}
}

type pairResult struct {
	clones []model.CodeClone
}

// Analyze compares every unordered file pair and keeps at most one best
// clone of each kind per pair. Pairs are processed on a worker pool but
// results are collected by pair index, so the output order (and the
// first-functional-match behavior) is deterministic regardless of
// scheduling.
func (d *Detector) Analyze(ctx context.Context, inputs []File) model.CloneAnalysisResult {
	files := make([]file, len(inputs))
	for i, in := range inputs {
		lines := strings.Split(in.Content, "\n")
		trim := make([]string, len(lines))
		for j, l := range lines {
			trim[j] = strings.TrimSpace(l)
		}
		files[i] = file{path: in.Path, lines: lines, trim: trim}
	}

	type pair struct{ a, b int }
	var pairs []pair
	for i := 0; i < len(files); i++ {
		for j := i + 1; j < len(files); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	results := make([]pairResult, len(pairs))

	workers := d.Workers
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for idx, p := range pairs {
		idx, p := idx, p
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[idx] = d.comparePair(files[p.a], files[p.b])
			return nil
		})
	}
	// Workers only write disjoint slice slots and never fail outside of
	// cancellation, which we surface as an empty tail of results.
	_ = g.Wait()

	var clones []model.CodeClone
	for _, r := range results {
		clones = append(clones, r.clones...)
	}

	totalLines := 0
	for _, f := range files {
		totalLines += len(f.lines)
	}

	return model.CloneAnalysisResult{
		Clones:        clones,
		Metrics:       buildMetrics(clones, files, totalLines),
		Opportunities: buildOpportunities(clones),
	}
}

func (d *Detector) comparePair(a, b file) pairResult {
	var clones []model.CodeClone

	if c := d.exactClone(a, b); c != nil {
		clones = append(clones, *c)
	}
	if c := d.nearClone(a, b); c != nil {
		clones = append(clones, *c)
	}
	if c := d.functionalClone(a, b); c != nil {
		clones = append(clones, *c)
	}

	return pairResult{clones: clones}
}

// riskForLength grades a clone by its line count. A 10-line exact clone is
// already worth acting on, so the medium band starts at 10 inclusive.
func riskForLength(length int) model.RiskLevel {
	switch {
	case length > 20:
		return model.RiskHigh
	case length >= 10:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
