package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func costPerfCriteria() []Criterion {
	return []Criterion{
		{Name: "cost", Direction: Minimize, Weight: 1},
		{Name: "perf", Direction: Maximize, Weight: 1},
	}
}

func item(name string, cost, perf float64) Item {
	return Item{Name: name, Values: map[string]float64{"cost": cost, "perf": perf}}
}

func TestDominates(t *testing.T) {
	criteria := costPerfCriteria()

	a := item("A", 10, 90)
	b := item("B", 5, 80)
	c := item("C", 12, 85)

	// A and B trade off: neither dominates.
	assert.False(t, dominates(a, b, criteria))
	assert.False(t, dominates(b, a, criteria))

	// A is cheaper and faster than C.
	assert.True(t, dominates(a, c, criteria))
	assert.False(t, dominates(c, a, criteria))
}

func TestDominates_EqualItems(t *testing.T) {
	criteria := costPerfCriteria()
	a := item("A", 5, 80)
	b := item("B", 5, 80)

	assert.False(t, dominates(a, b, criteria))
	assert.False(t, dominates(b, a, criteria))
}

func TestParetoFront_TradeoffPair(t *testing.T) {
	criteria := costPerfCriteria()
	items := []Item{item("A", 10, 90), item("B", 5, 80)}

	front := paretoFront(items, criteria)
	assert.Equal(t, []int{0, 1}, front)
}

func TestParetoFront_DominatedItem(t *testing.T) {
	criteria := costPerfCriteria()
	items := []Item{item("A", 10, 90), item("B", 5, 80), item("C", 12, 85)}

	front := paretoFront(items, criteria)
	assert.Equal(t, []int{0, 1}, front)

	dominated := dominatedDetails(items, criteria, front)
	require.Len(t, dominated, 1)
	d := dominated[0]
	assert.Equal(t, 2, d.Index)
	assert.Equal(t, "C", d.Name)
	require.Len(t, d.DominatedBy, 1)
	assert.Equal(t, "A", d.DominatedBy[0].Name)

	adv := d.DominatedBy[0].Advantages
	require.Len(t, adv, 2)
	assert.Equal(t, "cost", adv[0].Criterion)
	assert.Equal(t, 12.0, adv[0].From)
	assert.Equal(t, 10.0, adv[0].To)
	assert.Equal(t, "perf", adv[1].Criterion)
	assert.Equal(t, 5.0, adv[1].Delta)
}

func TestParetoFront_IdenticalItemsBothOnFront(t *testing.T) {
	criteria := costPerfCriteria()
	items := []Item{item("A", 5, 80), item("B", 5, 80)}

	front := paretoFront(items, criteria)
	assert.Equal(t, []int{0, 1}, front)
	assert.Empty(t, dominatedDetails(items, criteria, front))
}

func TestFrontTradeoffs(t *testing.T) {
	criteria := costPerfCriteria()
	items := []Item{item("A", 10, 90), item("B", 5, 80)}
	front := []int{0, 1}
	ranges := buildRanges(items, criteria)

	ft := frontTradeoffs(items, criteria, front, ranges)
	require.NotNil(t, ft)
	require.Len(t, ft.Pairwise, 1)

	pw := ft.Pairwise[0]
	assert.Equal(t, "A", pw.A)
	assert.Equal(t, "B", pw.B)
	assert.Equal(t, []string{"perf"}, pw.ABetterAt)
	assert.Equal(t, []string{"cost"}, pw.BBetterAt)
}

func TestFrontTradeoffs_SingleFrontItem(t *testing.T) {
	criteria := costPerfCriteria()
	items := []Item{item("A", 10, 90)}
	ranges := buildRanges(items, criteria)

	assert.Nil(t, frontTradeoffs(items, criteria, []int{0}, ranges))
}
