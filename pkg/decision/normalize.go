package decision

// valueRange is the observed min/max of one criterion across all items.
type valueRange struct {
	min, max float64
}

// buildRanges computes the per-criterion min/max across all items.
// Callers must have validated the items first.
func buildRanges(items []Item, criteria []Criterion) map[string]valueRange {
	ranges := make(map[string]valueRange, len(criteria))
	for _, c := range criteria {
		r := valueRange{min: items[0].Values[c.Name], max: items[0].Values[c.Name]}
		for _, item := range items[1:] {
			v := item.Values[c.Name]
			if v < r.min {
				r.min = v
			}
			if v > r.max {
				r.max = v
			}
		}
		ranges[c.Name] = r
	}
	return ranges
}

// normalize maps a raw value to [0,1] with 1 always meaning "better".
// A degenerate criterion (all items equal) normalizes to 0 for everyone:
// it cannot differentiate, so it must not contribute to the composite.
func normalize(v float64, r valueRange, dir Direction) float64 {
	if r.max == r.min {
		return 0
	}
	if dir == Minimize {
		return (r.max - v) / (r.max - r.min)
	}
	return (v - r.min) / (r.max - r.min)
}
