// Package decision implements multi-criteria Pareto analysis: dominance
// classification, composite scoring, and the marginal-gain guidance built
// on top of them. Analyze is a pure function over an in-memory item list
// and a resolved configuration; it performs no I/O and keeps no state.
package decision

import "log/slog"

// Analyze runs the full pipeline over the given items and configuration.
//
//  1. Pareto front and dominated items, always.
//  2. Front trade-off matrix when the front has at least two members.
//  3. Sort-axis resolution (explicit or auto-detected).
//  4. With an axis: sweet spots, tier transitions, segment bests, traps.
//  5. Without one: weighted composite ranking over all items.
//
// Any configuration or data error aborts with no partial result.
func Analyze(items []Item, cfg Config) (*Result, error) {
	if err := cfg.validate(items); err != nil {
		return nil, err
	}

	criteria := cfg.effectiveCriteria()
	ranges := buildRanges(items, criteria)
	scores := compositeScores(items, criteria, ranges)

	front := paretoFront(items, criteria)
	dominated := dominatedDetails(items, criteria, front)
	slog.Debug("dominance computed", "items", len(items), "front", len(front))

	names := make([]string, len(front))
	for i, idx := range front {
		names[i] = items[idx].Name
	}

	res := &Result{
		Summary: Summary{
			Total:       len(items),
			ParetoCount: len(front),
			ParetoRatio: round3(float64(len(front)) / float64(len(items))),
		},
		ParetoFront:      front,
		ParetoFrontNames: names,
		Dominated:        dominated,
		Criteria:         criteria,
		FrontTradeoffs:   frontTradeoffs(items, criteria, front, ranges),
		Traps:            []Trap{},
	}

	field, dir, auto := cfg.resolveSortAxis()
	if field == "" {
		// No investment axis: traps have no proximity notion, so only the
		// composite ranking remains.
		res.WeightedRanking = weightedRanking(items, scores)
		slog.Debug("no sort axis, using weighted ranking fallback")
		return res, nil
	}

	res.SortField = field
	res.SortDirection = dir
	res.SortFieldAutoDetected = auto
	if auto {
		slog.Debug("sort axis auto-detected", "field", field)
	}

	ordered := sortFrontByAxis(items, front, field, dir)
	res.TierTransitions = tierTransitions(items, criteria, ordered, scores, field)
	res.SweetSpots = sweetSpots(items, res.TierTransitions, field, cfg.GainThreshold)
	res.SegmentBests = segmentBests(items, front, scores, field, cfg.Segments)
	if traps := detectTraps(items, criteria, front, dominated, field, cfg.TrapTolerance); traps != nil {
		res.Traps = traps
	}

	res.Summary.SweetSpots = len(res.SweetSpots)
	res.Summary.Traps = len(res.Traps)
	res.Summary.Segments = len(res.SegmentBests)

	return res, nil
}
