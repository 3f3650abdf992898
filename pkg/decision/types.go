package decision

import "encoding/json"

// Direction indicates whether higher or lower values of a criterion are better.
type Direction string

const (
	Maximize Direction = "maximize"
	Minimize Direction = "minimize"
)

// SortDirection orders items along the sort axis.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	GainThresholdDefault = 0.85
	TrapToleranceDefault = 0.05
	SegmentCountDefault  = 5
)

// Criterion is a single scoring dimension.
type Criterion struct {
	Name      string    `json:"name" yaml:"name"`
	Direction Direction `json:"direction" yaml:"direction"`
	Weight    float64   `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Item is one candidate under evaluation: a display name plus its
// numeric value for every declared criterion.
type Item struct {
	Name   string             `json:"name"`
	Values map[string]float64 `json:"values"`
}

// Config is the resolved analysis configuration. It is built once per
// invocation and never mutated by the engine.
type Config struct {
	Criteria      []Criterion   `json:"criteria"`
	SortField     string        `json:"sort_field,omitempty"`
	SortDirection SortDirection `json:"sort_direction,omitempty"`
	GainThreshold float64       `json:"gain_threshold"`
	TrapTolerance float64       `json:"trap_tolerance"`
	Segments      int           `json:"segments"`
}

// DefaultConfig returns a Config with the documented default thresholds.
// Criteria must still be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		SortDirection: SortAsc,
		GainThreshold: GainThresholdDefault,
		TrapTolerance: TrapToleranceDefault,
		Segments:      SegmentCountDefault,
	}
}

// Summary carries the headline counts of an analysis.
type Summary struct {
	Total       int     `json:"total"`
	ParetoCount int     `json:"pareto_count"`
	ParetoRatio float64 `json:"pareto_ratio"`
	SweetSpots  int     `json:"sweet_spots,omitempty"`
	Traps       int     `json:"traps,omitempty"`
	Segments    int     `json:"segments,omitempty"`
}

// Advantage records one criterion on which a dominator beats a dominated item.
type Advantage struct {
	Criterion string  `json:"criterion"`
	From      float64 `json:"from"`
	To        float64 `json:"to"`
	Delta     float64 `json:"delta"`
}

// Dominator is a front item that dominates some other item.
type Dominator struct {
	Index      int         `json:"index"`
	Name       string      `json:"name"`
	Advantages []Advantage `json:"advantages"`
}

// DominatedItem is an item off the front, with every item that beats it.
type DominatedItem struct {
	Index       int         `json:"index"`
	Name        string      `json:"name"`
	DominatedBy []Dominator `json:"dominated_by"`
}

// FrontProfile summarizes a front item's strong and weak criteria.
type FrontProfile struct {
	Index      int      `json:"index"`
	Name       string   `json:"name"`
	Strengths  []string `json:"strengths,omitempty"`
	Weaknesses []string `json:"weaknesses,omitempty"`
}

// Tradeoff reports which criteria each of two front items wins.
type Tradeoff struct {
	A         string   `json:"a"`
	B         string   `json:"b"`
	ABetterAt []string `json:"a_better_at,omitempty"`
	BBetterAt []string `json:"b_better_at,omitempty"`
}

// FrontTradeoffs is the trade-off matrix over the Pareto front.
type FrontTradeoffs struct {
	Items    []FrontProfile `json:"items"`
	Pairwise []Tradeoff     `json:"pairwise"`
}

// MarginalGain is the per-criterion change between two front items.
type MarginalGain struct {
	Criterion string  `json:"criterion"`
	From      float64 `json:"from"`
	To        float64 `json:"to"`
	Ratio     float64 `json:"ratio"`
}

// SweetSpot is a front item whose gain score clears the threshold.
type SweetSpot struct {
	Index          int     `json:"index"`
	Name           string  `json:"name"`
	SortValue      float64 `json:"sort_value"`
	GainScore      float64 `json:"gain_score"`
	ComparedToName string  `json:"compared_to"`
	ComparedTo     int     `json:"compared_to_index"`
}

// TierTransition is one step between consecutive sort-ordered front items.
type TierTransition struct {
	FromIndex      int            `json:"from_index"`
	ToIndex        int            `json:"to_index"`
	FromName       string         `json:"from_name"`
	ToName         string         `json:"to_name"`
	DeltaComposite float64        `json:"delta_composite"`
	DeltaSort      float64        `json:"delta_sort"`
	GainScore      float64        `json:"gain_score"`
	KeyJumps       []string       `json:"key_jumps,omitempty"`
	MarginalGains  []MarginalGain `json:"marginal_gains"`
}

// SegmentBest is the top front item within one sort-axis bucket.
type SegmentBest struct {
	RangeLow       float64  `json:"range_low"`
	RangeHigh      float64  `json:"range_high"`
	Index          int      `json:"best_index"`
	Name           string   `json:"best"`
	CompositeScore float64  `json:"composite_score"`
	Alternatives   []string `json:"alternatives,omitempty"`
	ItemCount      int      `json:"item_count"`
}

// Trap is a dominated item priced like a front item but worse overall.
type Trap struct {
	Index      int     `json:"index"`
	Name       string  `json:"name"`
	FrontIndex int     `json:"front_index"`
	FrontName  string  `json:"front_name"`
	SortDelta  float64 `json:"sort_delta"`
}

// RankedItem is one row of the weighted-ranking fallback.
type RankedItem struct {
	Rank           int     `json:"rank"`
	Index          int     `json:"index"`
	Name           string  `json:"name"`
	CompositeScore float64 `json:"composite_score"`
}

// Result is the full analysis document.
type Result struct {
	Summary               Summary          `json:"summary"`
	ParetoFront           []int            `json:"pareto_front"`
	ParetoFrontNames      []string         `json:"pareto_front_names"`
	Dominated             []DominatedItem  `json:"dominated"`
	Criteria              []Criterion      `json:"criteria_used"`
	FrontTradeoffs        *FrontTradeoffs  `json:"front_tradeoffs,omitempty"`
	SortField             string           `json:"sort_field,omitempty"`
	SortDirection         SortDirection    `json:"sort_direction,omitempty"`
	SortFieldAutoDetected bool             `json:"sort_field_auto_detected,omitempty"`
	SweetSpots            []SweetSpot      `json:"sweet_spots,omitempty"`
	TierTransitions       []TierTransition `json:"tier_transitions,omitempty"`
	SegmentBests          []SegmentBest    `json:"segment_bests,omitempty"`
	Traps                 []Trap           `json:"traps"`
	WeightedRanking       []RankedItem     `json:"weighted_ranking,omitempty"`
}

func (r *Result) String() string {
	b, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return string(b)
}
