package decision

import "math"

// detectTraps flags dominated items whose sort-axis value lies within the
// tolerance (a fraction of the full axis range) of a front item that
// strictly dominates them: similar investment, strictly worse return.
// Each item is reported at most once, against the first qualifying
// dominator in front order.
func detectTraps(items []Item, criteria []Criterion, front []int, dominated []DominatedItem, field string, tolerance float64) []Trap {
	lo := items[0].Values[field]
	hi := lo
	for _, item := range items[1:] {
		v := item.Values[field]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		return nil
	}
	maxDelta := tolerance * (hi - lo)

	var traps []Trap
	for _, d := range dominated {
		v := items[d.Index].Values[field]
		for _, j := range front {
			delta := math.Abs(items[j].Values[field] - v)
			if delta > maxDelta {
				continue
			}
			if !dominates(items[j], items[d.Index], criteria) {
				continue
			}
			traps = append(traps, Trap{
				Index:      d.Index,
				Name:       d.Name,
				FrontIndex: j,
				FrontName:  items[j].Name,
				SortDelta:  round4(delta),
			})
			break
		}
	}
	return traps
}
