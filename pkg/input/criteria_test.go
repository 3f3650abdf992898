package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paretodecide/pdctl/pkg/decision"
)

func TestParseCombined(t *testing.T) {
	criteria, err := ParseCombined("cost:min, perf:max, ram_gb:maximize")
	require.NoError(t, err)
	require.Len(t, criteria, 3)
	assert.Equal(t, decision.Minimize, criteria[0].Direction)
	assert.Equal(t, decision.Maximize, criteria[1].Direction)
	assert.Equal(t, "ram_gb", criteria[2].Name)
}

func TestParseCombined_UnknownDirection(t *testing.T) {
	_, err := ParseCombined("cost:upward")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown direction")
}

func TestParseCombined_MissingColon(t *testing.T) {
	_, err := ParseCombined("cost")
	assert.Error(t, err)
}

func TestParseWeights(t *testing.T) {
	w, err := ParseWeights("cost:0.3, perf:0.7")
	require.NoError(t, err)
	assert.Equal(t, 0.3, w["cost"])
	assert.Equal(t, 0.7, w["perf"])
}

func TestParseWeights_BadValue(t *testing.T) {
	_, err := ParseWeights("cost:heavy")
	assert.Error(t, err)
}

func TestBuildCriteria_FromLists(t *testing.T) {
	criteria, err := BuildCriteria(&Document{}, CriteriaSpec{
		Maximize: []string{"perf", "ram"},
		Minimize: []string{"cost"},
	})
	require.NoError(t, err)
	require.Len(t, criteria, 3)
	assert.Equal(t, "perf", criteria[0].Name)
	assert.Equal(t, decision.Minimize, criteria[2].Direction)
}

func TestBuildCriteria_ConflictingDirections(t *testing.T) {
	_, err := BuildCriteria(&Document{}, CriteriaSpec{
		Maximize: []string{"cost"},
		Minimize: []string{"cost"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both maximize and minimize")
}

func TestBuildCriteria_DuplicateSameDirectionIsFine(t *testing.T) {
	criteria, err := BuildCriteria(&Document{}, CriteriaSpec{
		Combined: "perf:max",
		Maximize: []string{"perf"},
	})
	require.NoError(t, err)
	assert.Len(t, criteria, 1)
}

func TestBuildCriteria_EmbeddedCriteriaWin(t *testing.T) {
	doc := &Document{
		Criteria: []decision.Criterion{
			{Name: "price", Direction: decision.Minimize, Weight: 0.4},
			{Name: "ram", Weight: 1},
		},
	}
	criteria, err := BuildCriteria(doc, CriteriaSpec{Maximize: []string{"ignored"}})
	require.NoError(t, err)
	require.Len(t, criteria, 2)
	assert.Equal(t, 0.4, criteria[0].Weight)
	// Embedded entries default to maximize; weights come in resolved.
	assert.Equal(t, decision.Maximize, criteria[1].Direction)
	assert.Equal(t, 1.0, criteria[1].Weight)
}

func TestBuildCriteria_EmbeddedZeroWeightPreserved(t *testing.T) {
	doc := &Document{
		Criteria: []decision.Criterion{
			{Name: "price", Direction: decision.Minimize, Weight: 0},
			{Name: "ram", Direction: decision.Maximize, Weight: 1},
		},
	}
	criteria, err := BuildCriteria(doc, CriteriaSpec{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, criteria[0].Weight)
	assert.Equal(t, 1.0, criteria[1].Weight)
}

func TestBuildCriteria_WeightOverrides(t *testing.T) {
	criteria, err := BuildCriteria(&Document{}, CriteriaSpec{
		Maximize: []string{"perf"},
		Minimize: []string{"cost"},
		Weights:  "cost:2.5",
	})
	require.NoError(t, err)
	for _, c := range criteria {
		if c.Name == "cost" {
			assert.Equal(t, 2.5, c.Weight)
		}
	}
}

func TestBuildCriteria_ZeroWeightOverride(t *testing.T) {
	criteria, err := BuildCriteria(&Document{}, CriteriaSpec{
		Maximize: []string{"perf", "ram"},
		Weights:  "ram:0",
	})
	require.NoError(t, err)
	require.Len(t, criteria, 2)
	// Once any weight is given, unset ones default to 1 and an explicit
	// zero stays zero.
	assert.Equal(t, 1.0, criteria[0].Weight)
	assert.Equal(t, 0.0, criteria[1].Weight)
}

func TestBuildCriteria_WeightForUndeclaredCriterion(t *testing.T) {
	_, err := BuildCriteria(&Document{}, CriteriaSpec{
		Maximize: []string{"perf"},
		Weights:  "price:0.5",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared criterion")
}

func TestBuildCriteria_NoCriteria(t *testing.T) {
	_, err := BuildCriteria(&Document{}, CriteriaSpec{})
	assert.Error(t, err)
}

func TestSplitFields(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitFields(" a, b ,"))
	assert.Nil(t, SplitFields(""))
}
