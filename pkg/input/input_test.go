package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paretodecide/pdctl/pkg/decision"
)

func TestParse_FlatJSONArray(t *testing.T) {
	in := `[
		{"name":"A","cost":10,"perf":90,"note":"fast"},
		{"name":"B","cost":5,"perf":80}
	]`

	doc, err := Parse(strings.NewReader(in), "", "name")
	require.NoError(t, err)
	require.Len(t, doc.Items, 2)

	a := doc.Items[0]
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, 10.0, a.Values["cost"])
	assert.Equal(t, 90.0, a.Values["perf"])
	_, hasNote := a.Values["note"]
	assert.False(t, hasNote, "non-numeric fields are not criterion values")
	assert.Empty(t, doc.Criteria)
}

func TestParse_StructuredWeightResolution(t *testing.T) {
	in := `{
		"criteria": [
			{"name": "price", "direction": "minimize", "weight": 0},
			{"name": "ram_gb", "direction": "maximize"}
		],
		"configs": [{"name": "small", "price": 100, "ram_gb": 8}]
	}`

	doc, err := Parse(strings.NewReader(in), "", "name")
	require.NoError(t, err)
	require.Len(t, doc.Criteria, 2)
	// An explicit zero weight survives parsing; an absent one defaults to 1.
	assert.Equal(t, 0.0, doc.Criteria[0].Weight)
	assert.Equal(t, 1.0, doc.Criteria[1].Weight)
}

func TestParse_RecordsNonNumericFields(t *testing.T) {
	in := `[
		{"name":"A","cost":10,"perf":"fast"},
		{"name":"B","cost":5,"perf":80}
	]`

	doc, err := Parse(strings.NewReader(in), "", "name")
	require.NoError(t, err)
	require.Len(t, doc.NonNumeric, 1)
	assert.Equal(t, "A", doc.NonNumeric[0].Item)
	assert.Equal(t, "perf", doc.NonNumeric[0].Field)

	declared := []decision.Criterion{
		{Name: "cost", Direction: decision.Minimize},
		{Name: "perf", Direction: decision.Maximize},
	}
	err = doc.CheckNumeric(declared)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-numeric")
	assert.Contains(t, err.Error(), "A")
	assert.Contains(t, err.Error(), "perf")

	// A stray text field that is not a criterion stays harmless.
	assert.NoError(t, doc.CheckNumeric(declared[:1]))
}

func TestParse_CSVRecordsNonNumericFields(t *testing.T) {
	in := "name,cost,perf\nA,10,fast\nB,5,80\n"

	doc, err := Parse(strings.NewReader(in), "items.csv", "name")
	require.NoError(t, err)
	require.Len(t, doc.NonNumeric, 1)
	assert.Equal(t, "A", doc.NonNumeric[0].Item)
	assert.Equal(t, "perf", doc.NonNumeric[0].Field)
}

func TestParse_MissingNameFallsBackToIndex(t *testing.T) {
	in := `[{"cost":1},{"cost":2}]`

	doc, err := Parse(strings.NewReader(in), "", "name")
	require.NoError(t, err)
	assert.Equal(t, "#0", doc.Items[0].Name)
	assert.Equal(t, "#1", doc.Items[1].Name)
}

func TestParse_StructuredDocument(t *testing.T) {
	in := `{
		"product_line": "widgets",
		"cost_field": "price",
		"criteria": [
			{"name": "price", "direction": "minimize", "weight": 0.4},
			{"name": "ram_gb", "direction": "maximize"}
		],
		"configs": [
			{"name": "small", "price": 100, "ram_gb": 8},
			{"name": "large", "price": 300, "ram_gb": 32}
		]
	}`

	doc, err := Parse(strings.NewReader(in), "", "name")
	require.NoError(t, err)
	assert.Equal(t, "widgets", doc.ProductLine)
	assert.Equal(t, "price", doc.CostField)
	require.Len(t, doc.Criteria, 2)
	assert.Equal(t, decision.Minimize, doc.Criteria[0].Direction)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "small", doc.Items[0].Name)
	assert.Equal(t, 100.0, doc.Items[0].Values["price"])
}

func TestParse_StructuredWithoutConfigs(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"criteria":[]}`), "", "name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configs")
}

func TestParse_CSV(t *testing.T) {
	in := "name,cost,perf\nA,10,90\nB,5,80\n"

	doc, err := Parse(strings.NewReader(in), "items.csv", "name")
	require.NoError(t, err)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "A", doc.Items[0].Name)
	assert.Equal(t, 10.0, doc.Items[0].Values["cost"])
	assert.Equal(t, 80.0, doc.Items[1].Values["perf"])
}

func TestParse_CSVFallbackWithoutHint(t *testing.T) {
	in := "name,cost\nA,10\n"

	doc, err := Parse(strings.NewReader(in), "", "name")
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "A", doc.Items[0].Name)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader("  \n"), "", "name")
	assert.Error(t, err)
}

func TestParse_CSVHeaderOnly(t *testing.T) {
	_, err := Parse(strings.NewReader("name,cost\n"), "items.csv", "name")
	assert.Error(t, err)
}
