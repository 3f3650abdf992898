package decision

import (
	"errors"
	"fmt"
)

var (
	errNoItems    = errors.New("no items to analyze")
	errNoCriteria = errors.New("no criteria configured")
)

// validate checks the configuration and every item against the criteria
// registry. Any failure aborts the analysis before it starts.
func (c *Config) validate(items []Item) error {
	if len(items) == 0 {
		return errNoItems
	}
	if len(c.Criteria) == 0 {
		return errNoCriteria
	}

	seen := make(map[string]bool, len(c.Criteria))
	for _, cr := range c.Criteria {
		if cr.Name == "" {
			return errors.New("criterion with empty name")
		}
		if seen[cr.Name] {
			return fmt.Errorf("criterion %q declared more than once", cr.Name)
		}
		seen[cr.Name] = true
		if cr.Direction != Maximize && cr.Direction != Minimize {
			return fmt.Errorf("criterion %q: invalid direction %q", cr.Name, cr.Direction)
		}
		if cr.Weight < 0 {
			return fmt.Errorf("criterion %q: negative weight %v", cr.Name, cr.Weight)
		}
	}

	if c.SortField != "" && !seen[c.SortField] {
		return fmt.Errorf("sort field %q is not a declared criterion", c.SortField)
	}
	if c.SortDirection != "" && c.SortDirection != SortAsc && c.SortDirection != SortDesc {
		return fmt.Errorf("invalid sort direction %q", c.SortDirection)
	}
	if c.Segments < 1 {
		return fmt.Errorf("segment count must be positive, got %d", c.Segments)
	}

	for i, item := range items {
		for _, cr := range c.Criteria {
			if _, ok := item.Values[cr.Name]; !ok {
				return fmt.Errorf("item %q (index %d): missing value for criterion %q",
					item.Name, i, cr.Name)
			}
		}
	}

	return nil
}

// effectiveCriteria returns the criteria list with weights resolved: when
// no criterion carries a positive weight, every one gets an even 1/n
// split. Weights are otherwise taken as-is, including zero, which keeps
// that criterion out of the composite score. Defaulting unset weights is
// the input layer's job, where unset and explicit zero are still
// distinguishable.
func (c *Config) effectiveCriteria() []Criterion {
	out := make([]Criterion, len(c.Criteria))
	copy(out, c.Criteria)

	for _, cr := range out {
		if cr.Weight > 0 {
			return out
		}
	}
	even := 1.0 / float64(len(out))
	for i := range out {
		out[i].Weight = even
	}
	return out
}

// resolveSortAxis returns the sort axis and whether it was auto-detected.
// With no explicit field, a single minimize criterion becomes the axis
// (ascending). Zero or multiple minimize criteria leave the axis unset.
func (c *Config) resolveSortAxis() (field string, dir SortDirection, auto bool) {
	if c.SortField != "" {
		dir = c.SortDirection
		if dir == "" {
			dir = SortAsc
		}
		return c.SortField, dir, false
	}

	var candidate string
	for _, cr := range c.Criteria {
		if cr.Direction == Minimize {
			if candidate != "" {
				return "", "", false
			}
			candidate = cr.Name
		}
	}
	if candidate == "" {
		return "", "", false
	}
	return candidate, SortAsc, true
}
