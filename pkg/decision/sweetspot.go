package decision

import (
	"fmt"
	"sort"
)

// sortFrontByAxis orders front indices by their sort-axis value in the
// configured direction. Ties keep input order so results are deterministic.
func sortFrontByAxis(items []Item, front []int, field string, dir SortDirection) []int {
	ordered := make([]int, len(front))
	copy(ordered, front)
	sort.SliceStable(ordered, func(a, b int) bool {
		va := items[ordered[a]].Values[field]
		vb := items[ordered[b]].Values[field]
		if dir == SortDesc {
			return va > vb
		}
		return va < vb
	})
	return ordered
}

// tierTransitions walks consecutive front items along the sort axis and
// reports the composite/sort deltas and gain score of every step. Steps
// with a zero previous composite, zero previous sort value, or no sort
// movement have an undefined gain score and are skipped.
func tierTransitions(items []Item, criteria []Criterion, ordered []int, scores []float64, field string) []TierTransition {
	var out []TierTransition
	for pos := 1; pos < len(ordered); pos++ {
		prev, cur := ordered[pos-1], ordered[pos]
		prevScore := scores[prev]
		prevSort := items[prev].Values[field]
		deltaSort := items[cur].Values[field] - prevSort
		if prevScore == 0 || prevSort == 0 || deltaSort == 0 {
			continue
		}
		deltaComposite := scores[cur] - prevScore
		gain := (deltaComposite / prevScore) / (deltaSort / prevSort)

		gains, jumps := marginalGains(items[prev], items[cur], criteria)
		out = append(out, TierTransition{
			FromIndex:      prev,
			ToIndex:        cur,
			FromName:       items[prev].Name,
			ToName:         items[cur].Name,
			DeltaComposite: round4(deltaComposite),
			DeltaSort:      round4(deltaSort),
			GainScore:      round4(gain),
			KeyJumps:       jumps,
			MarginalGains:  gains,
		})
	}
	return out
}

// sweetSpots filters tier transitions whose gain score clears the threshold
// and ranks them by descending gain score.
func sweetSpots(items []Item, transitions []TierTransition, field string, threshold float64) []SweetSpot {
	var out []SweetSpot
	for _, t := range transitions {
		if t.GainScore <= threshold {
			continue
		}
		out = append(out, SweetSpot{
			Index:          t.ToIndex,
			Name:           t.ToName,
			SortValue:      items[t.ToIndex].Values[field],
			GainScore:      t.GainScore,
			ComparedTo:     t.FromIndex,
			ComparedToName: t.FromName,
		})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].GainScore > out[b].GainScore
	})
	return out
}

// marginalGains reports the per-criterion raw change between two items and
// highlights the notable jumps (ratio above 1.2 or below 0.83). A zero
// starting value has no meaningful ratio and is reported as 0.
func marginalGains(from, to Item, criteria []Criterion) ([]MarginalGain, []string) {
	gains := make([]MarginalGain, 0, len(criteria))
	var jumps []string
	for _, c := range criteria {
		vf := from.Values[c.Name]
		vt := to.Values[c.Name]
		var ratio float64
		switch {
		case vf != 0:
			ratio = round3(vt / vf)
		case vt == 0:
			ratio = 1
		}
		gains = append(gains, MarginalGain{Criterion: c.Name, From: vf, To: vt, Ratio: ratio})
		if ratio > 1.2 || (ratio > 0 && ratio < 0.83) {
			jumps = append(jumps, fmt.Sprintf("%s:%.1fx", c.Name, ratio))
		}
	}
	return gains, jumps
}
