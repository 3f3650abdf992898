package decision

// segmentBests partitions the sort-axis range over all items into
// equal-width buckets and picks the front item with the highest composite
// score in each. Buckets without a front item are omitted; a degenerate
// axis (all values equal) yields no segments.
func segmentBests(items []Item, front []int, scores []float64, field string, segments int) []SegmentBest {
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
	if lo == hi {
		return nil
	}

	width := (hi - lo) / float64(segments)
	var out []SegmentBest
	for seg := 0; seg < segments; seg++ {
		segLo := lo + float64(seg)*width
		segHi := segLo + width
		last := seg == segments-1

		inSegment := func(v float64) bool {
			if v < segLo {
				return false
			}
			// Upper bound is inclusive only for the last segment.
			return v < segHi || (last && v == segHi)
		}

		count := 0
		for _, item := range items {
			if inSegment(item.Values[field]) {
				count++
			}
		}

		best := -1
		var alternatives []string
		for _, idx := range front {
			if !inSegment(items[idx].Values[field]) {
				continue
			}
			if best < 0 || scores[idx] > scores[best] {
				best = idx
			}
		}
		if best < 0 {
			continue
		}
		for _, idx := range front {
			if idx != best && inSegment(items[idx].Values[field]) {
				alternatives = append(alternatives, items[idx].Name)
			}
		}

		out = append(out, SegmentBest{
			RangeLow:       round4(segLo),
			RangeHigh:      round4(segHi),
			Index:          best,
			Name:           items[best].Name,
			CompositeScore: scores[best],
			Alternatives:   alternatives,
			ItemCount:      count,
		})
	}
	return out
}
