package decision

import (
	"math"
	"sort"
)

// compositeScores computes the weighted composite score for every item:
// the weighted sum of normalized criterion values divided by total weight.
// Dividing keeps the score in [0,1] and makes the ranking invariant under
// uniform rescaling of all weights.
func compositeScores(items []Item, criteria []Criterion, ranges map[string]valueRange) []float64 {
	totalWeight := 0.0
	for _, c := range criteria {
		totalWeight += c.Weight
	}

	scores := make([]float64, len(items))
	if totalWeight == 0 {
		return scores
	}
	for i, item := range items {
		sum := 0.0
		for _, c := range criteria {
			sum += c.Weight * normalize(item.Values[c.Name], ranges[c.Name], c.Direction)
		}
		scores[i] = round4(sum / totalWeight)
	}
	return scores
}

// weightedRanking ranks all items by descending composite score.
// Ties keep input order.
func weightedRanking(items []Item, scores []float64) []RankedItem {
	ranked := make([]RankedItem, len(items))
	for i, item := range items {
		ranked[i] = RankedItem{Index: i, Name: item.Name, CompositeScore: scores[i]}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].CompositeScore > ranked[b].CompositeScore
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
