package clone

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codescope/src/model"
)

// identicalLines builds n distinct lines with per-line unique tokens, so
// shifted alignments never score above the near-clone floor.
func identicalLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("value_%02d = compute_%02d(input_%02d)", i, i, i)
	}
	return lines
}

func TestExactCloneTenIdenticalLines(t *testing.T) {
	content := strings.Join(identicalLines(10), "\n") + "\n"
	files := []File{
		{Path: "a.py", Content: content},
		{Path: "b.py", Content: content},
	}

	result := NewDetector().Analyze(context.Background(), files)

	require.Len(t, result.Clones, 1)
	c := result.Clones[0]
	assert.Equal(t, model.CloneExact, c.Kind)
	assert.Equal(t, "a.py", c.PrimaryFile)
	assert.Equal(t, []string{"b.py"}, c.CloneFiles)
	assert.Equal(t, 1, c.StartLine)
	assert.Equal(t, 10, c.EndLine)
	assert.Equal(t, 10, c.Length)
	assert.Equal(t, 100.0, c.Similarity)
	assert.Equal(t, model.RiskMedium, c.RiskLevel)
	assert.Equal(t, strings.Join(identicalLines(10), "\n"), c.Content)

	m := result.Metrics
	assert.Equal(t, 1, m.TotalClones)
	assert.Equal(t, 1, m.ExactClones)
	assert.Equal(t, 0, m.NearClones)
	assert.Equal(t, 0, m.FunctionalClones)
	assert.Equal(t, 10, m.DuplicatedLines)
	assert.Equal(t, 22, m.TotalLines) // trailing newline yields 11 lines per file
	assert.InDelta(t, 100.0*10/22, m.DuplicationPercentage, 1e-9)
	assert.Equal(t, "a.py", m.MostClonedFile)

	// Exact clones of exactly 10 lines are not extract_method material.
	assert.Empty(t, result.Opportunities)
}

func TestExactCloneBelowMinimumLength(t *testing.T) {
	content := strings.Join(identicalLines(4), "\n")
	files := []File{
		{Path: "a.py", Content: content},
		{Path: "b.py", Content: content},
	}

	result := NewDetector().Analyze(context.Background(), files)
	assert.Empty(t, result.Clones)
}

func TestNearClone(t *testing.T) {
	// Each line pair shares 4 of 5 tokens: per-line similarity 80, window
	// average 80, inside [80,100).
	a := "alpha1 alpha2 alpha3 alpha4 alpha5\n" +
		"beta1 beta2 beta3 beta4 beta5\n" +
		"gamma1 gamma2 gamma3 gamma4 gamma5"
	b := "alpha1 alpha2 alpha3 alpha4 alphaX\n" +
		"beta1 beta2 beta3 beta4 betaX\n" +
		"gamma1 gamma2 gamma3 gamma4 gammaX"

	result := NewDetector().Analyze(context.Background(), []File{
		{Path: "a.js", Content: a},
		{Path: "b.js", Content: b},
	})

	require.Len(t, result.Clones, 1)
	c := result.Clones[0]
	assert.Equal(t, model.CloneNear, c.Kind)
	assert.Equal(t, 1, c.StartLine)
	assert.Equal(t, 3, c.EndLine)
	assert.Equal(t, 3, c.Length)
	assert.InDelta(t, 80.0, c.Similarity, 1e-9)
	assert.Equal(t, model.RiskLow, c.RiskLevel)
}

func TestIdenticalWindowsAreNeverNearClones(t *testing.T) {
	// A window of identical lines averages 100 and belongs to the exact
	// detector alone.
	content := strings.Join(identicalLines(6), "\n")
	result := NewDetector().Analyze(context.Background(), []File{
		{Path: "a.py", Content: content},
		{Path: "b.py", Content: content},
	})

	require.Len(t, result.Clones, 1)
	assert.Equal(t, model.CloneExact, result.Clones[0].Kind)
}

func TestFunctionalCloneRenamedFunctions(t *testing.T) {
	a := `function computeTotal(items) {
  let total = 0;
  for (const item of items) {
    total += item.price;
  }
  return total;
}`
	b := `function sumPrices(entries) {
  let total = 0;
  for (const entry of entries) {
    total += entry.price;
  }
  return total;
}`

	result := NewDetector().Analyze(context.Background(), []File{
		{Path: "a.js", Content: a},
		{Path: "b.js", Content: b},
	})

	require.Len(t, result.Clones, 1)
	c := result.Clones[0]
	assert.Equal(t, model.CloneFunctional, c.Kind)
	assert.Equal(t, 1, c.StartLine)
	assert.Equal(t, 7, c.EndLine)
	assert.Equal(t, 7, c.Length)
	assert.GreaterOrEqual(t, c.Similarity, 75.0)
	assert.Less(t, c.Similarity, 100.0)
	assert.Equal(t, model.RiskLow, c.RiskLevel)
}

func TestFunctionalCloneBelowThreshold(t *testing.T) {
	a := `function loadUsers(db) {
  return db.fetch("users");
}`
	b := `function renderChart(canvas) {
  canvas.clear();
  canvas.drawAxes();
  canvas.plotSeries();
  canvas.flush();
  canvas.annotate();
}`

	result := NewDetector().Analyze(context.Background(), []File{
		{Path: "a.js", Content: a},
		{Path: "b.js", Content: b},
	})
	assert.Empty(t, result.Clones)
}

func TestExtractMethodOpportunity(t *testing.T) {
	content := strings.Join(identicalLines(12), "\n")
	result := NewDetector().Analyze(context.Background(), []File{
		{Path: "one.cpp", Content: content},
		{Path: "two.cpp", Content: content},
	})

	require.Len(t, result.Clones, 1)
	assert.Equal(t, 12, result.Clones[0].Length)
	assert.Equal(t, model.RiskMedium, result.Clones[0].RiskLevel)

	require.Len(t, result.Opportunities, 1)
	op := result.Opportunities[0]
	assert.Equal(t, "extract_method", op.Kind)
	assert.Equal(t, []string{"one.cpp", "two.cpp"}, op.Files)
}

func TestRiskForLength(t *testing.T) {
	assert.Equal(t, model.RiskLow, riskForLength(9))
	assert.Equal(t, model.RiskMedium, riskForLength(10))
	assert.Equal(t, model.RiskMedium, riskForLength(20))
	assert.Equal(t, model.RiskHigh, riskForLength(21))
}

func TestAnalyzeIsDeterministicUnderParallelism(t *testing.T) {
	shared := strings.Join(identicalLines(8), "\n")
	files := []File{
		{Path: "a.py", Content: shared + "\nextra_a = finish()"},
		{Path: "b.py", Content: shared + "\nextra_b = finish()"},
		{Path: "c.py", Content: shared},
		{Path: "d.py", Content: "unrelated_line = one()\nanother_line = two()"},
	}

	d := NewDetector()
	d.Workers = 4

	first := d.Analyze(context.Background(), files)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, d.Analyze(context.Background(), files))
	}

	// Pairs appear in enumeration order: (a,b), (a,c), (b,c).
	require.Len(t, first.Clones, 3)
	assert.Equal(t, "a.py", first.Clones[0].PrimaryFile)
	assert.Equal(t, []string{"b.py"}, first.Clones[0].CloneFiles)
	assert.Equal(t, "a.py", first.Clones[1].PrimaryFile)
	assert.Equal(t, []string{"c.py"}, first.Clones[1].CloneFiles)
	assert.Equal(t, "b.py", first.Clones[2].PrimaryFile)
	assert.Equal(t, []string{"c.py"}, first.Clones[2].CloneFiles)
}

func TestAnalyzeEmptyAndSingleInput(t *testing.T) {
	d := NewDetector()

	result := d.Analyze(context.Background(), nil)
	assert.Empty(t, result.Clones)
	assert.Equal(t, 0, result.Metrics.TotalLines)

	result = d.Analyze(context.Background(), []File{{Path: "only.py", Content: "x = 1"}})
	assert.Empty(t, result.Clones)
	assert.Equal(t, 1, result.Metrics.TotalLines)
}
