package input

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/paretodecide/pdctl/pkg/decision"
)

// CriteriaSpec carries the flag-level criteria selection before resolution.
type CriteriaSpec struct {
	Maximize []string
	Minimize []string
	Combined string // "field:max,field:min"
	Weights  string // "field:weight,field:weight"
}

// ParseCombined parses the "field:max,field:min" form. Unknown direction
// strings are an error rather than a silent default.
func ParseCombined(s string) ([]decision.Criterion, error) {
	var out []decision.Criterion
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pos := strings.LastIndex(part, ":")
		if pos < 0 {
			return nil, errors.Errorf("criteria entry %q: expected field:direction", part)
		}
		name := strings.TrimSpace(part[:pos])
		var dir decision.Direction
		switch strings.ToLower(strings.TrimSpace(part[pos+1:])) {
		case "max", "maximize":
			dir = decision.Maximize
		case "min", "minimize":
			dir = decision.Minimize
		default:
			return nil, errors.Errorf("criteria entry %q: unknown direction", part)
		}
		out = append(out, decision.Criterion{Name: name, Direction: dir})
	}
	return out, nil
}

// ParseWeights parses "field:weight" pairs.
func ParseWeights(s string) (map[string]float64, error) {
	out := make(map[string]float64)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		pos := strings.LastIndex(pair, ":")
		if pos < 0 {
			return nil, errors.Errorf("weight entry %q: expected field:weight", pair)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(pair[pos+1:]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "weight entry %q", pair)
		}
		out[strings.TrimSpace(pair[:pos])] = w
	}
	return out, nil
}

// BuildCriteria resolves the effective criteria list: embedded document
// criteria win; otherwise the combined spec plus maximize/minimize lists
// are merged. A field in both directions is a configuration error, and
// weight overrides must refer to a declared criterion. Weights here are
// final: an explicit zero (embedded or via override) stays zero, so that
// criterion still gates dominance but contributes nothing to scores.
func BuildCriteria(doc *Document, spec CriteriaSpec) ([]decision.Criterion, error) {
	overrides, err := ParseWeights(spec.Weights)
	if err != nil {
		return nil, err
	}

	var criteria []decision.Criterion
	if len(doc.Criteria) > 0 {
		// Embedded weights were already resolved during parsing.
		criteria = make([]decision.Criterion, len(doc.Criteria))
		copy(criteria, doc.Criteria)
		for i := range criteria {
			if criteria[i].Direction == "" {
				criteria[i].Direction = decision.Maximize
			}
		}
	} else {
		seen := make(map[string]decision.Direction)
		add := func(name string, dir decision.Direction) error {
			if prev, ok := seen[name]; ok {
				if prev != dir {
					return errors.Errorf("field %q listed as both maximize and minimize", name)
				}
				return nil
			}
			seen[name] = dir
			criteria = append(criteria, decision.Criterion{Name: name, Direction: dir})
			return nil
		}

		combined, err := ParseCombined(spec.Combined)
		if err != nil {
			return nil, err
		}
		for _, c := range combined {
			if err := add(c.Name, c.Direction); err != nil {
				return nil, err
			}
		}
		for _, name := range spec.Maximize {
			if err := add(name, decision.Maximize); err != nil {
				return nil, err
			}
		}
		for _, name := range spec.Minimize {
			if err := add(name, decision.Minimize); err != nil {
				return nil, err
			}
		}
	}

	if len(criteria) == 0 {
		return nil, errors.New("no criteria specified: use maximize/minimize lists, a combined spec, or structured input")
	}

	// Flag-built criteria have no weights. Once overrides enter the
	// picture the unset ones default to 1; with none, they stay unset
	// and the engine falls back to an even split.
	if len(doc.Criteria) == 0 && len(overrides) > 0 {
		for i := range criteria {
			criteria[i].Weight = 1
		}
	}

	declared := make(map[string]int, len(criteria))
	for i, c := range criteria {
		declared[c.Name] = i
	}
	for name, w := range overrides {
		i, ok := declared[name]
		if !ok {
			return nil, errors.Errorf("weight for undeclared criterion %q", name)
		}
		criteria[i].Weight = w
	}

	return criteria, nil
}

// SplitFields splits a comma-separated field list, dropping empties.
func SplitFields(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
