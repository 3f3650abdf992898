// Package input parses decision documents: flat JSON arrays, structured
// objects with embedded criteria, and CSV with a header row. It produces
// validated items for the decision engine; it never runs analysis itself.
package input

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/paretodecide/pdctl/pkg/decision"
)

const NameFieldDefault = "name"

// Document is a parsed input document. For flat inputs only Items is set;
// structured inputs also carry embedded criteria and the cost field.
// Embedded criterion weights are resolved during parsing (unset means 1),
// so a zero weight in a Document is always an explicit zero.
type Document struct {
	ProductLine string               `json:"product_line,omitempty"`
	CostField   string               `json:"cost_field,omitempty"`
	Criteria    []decision.Criterion `json:"criteria,omitempty"`
	Items       []decision.Item      `json:"items"`

	NonNumeric []NonNumericField `json:"-"`
}

// NonNumericField records a source field whose value could not be read as
// a number, so a later check can name it if it turns out to be a declared
// criterion.
type NonNumericField struct {
	Item  string
	Index int
	Field string
}

// structuredDoc mirrors the structured JSON input shape. Weight is a
// pointer so an absent weight can be told apart from an explicit zero.
type structuredDoc struct {
	ProductLine string `json:"product_line"`
	CostField   string `json:"cost_field"`
	Criteria    []struct {
		Name      string             `json:"name"`
		Direction decision.Direction `json:"direction"`
		Weight    *float64           `json:"weight"`
	} `json:"criteria"`
	Configs []map[string]any `json:"configs"`
}

// Parse reads a document from r. A ".csv" path hint forces CSV; otherwise
// JSON is tried first and CSV is the fallback.
func Parse(r io.Reader, pathHint, nameField string) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, errors.New("empty input")
	}
	if nameField == "" {
		nameField = NameFieldDefault
	}

	if strings.HasSuffix(strings.ToLower(pathHint), ".csv") {
		return parseCSV(text, nameField)
	}

	var probe any
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return parseCSV(text, nameField)
	}

	switch v := probe.(type) {
	case []any:
		items, nonNumeric, err := buildItems(v, nameField)
		if err != nil {
			return nil, err
		}
		return &Document{Items: items, NonNumeric: nonNumeric}, nil
	case map[string]any:
		var doc structuredDoc
		if err := json.Unmarshal([]byte(text), &doc); err != nil {
			return nil, errors.Wrap(err, "failed to parse structured document")
		}
		if doc.Configs == nil {
			return nil, errors.New("structured input requires a 'configs' list")
		}
		criteria := make([]decision.Criterion, len(doc.Criteria))
		for i, c := range doc.Criteria {
			weight := 1.0
			if c.Weight != nil {
				weight = *c.Weight
			}
			criteria[i] = decision.Criterion{
				Name:      c.Name,
				Direction: c.Direction,
				Weight:    weight,
			}
		}
		rows := make([]any, len(doc.Configs))
		for i, c := range doc.Configs {
			rows[i] = any(c)
		}
		items, nonNumeric, err := buildItems(rows, nameField)
		if err != nil {
			return nil, err
		}
		return &Document{
			ProductLine: doc.ProductLine,
			CostField:   doc.CostField,
			Criteria:    criteria,
			Items:       items,
			NonNumeric:  nonNumeric,
		}, nil
	default:
		return nil, errors.New("input must be a JSON array, a structured object, or CSV")
	}
}

// CheckNumeric reports the first declared criterion that carried a
// non-numeric value in the source document. Fields that are not criteria
// (notes, labels) stay ignored.
func (d *Document) CheckNumeric(criteria []decision.Criterion) error {
	for _, nn := range d.NonNumeric {
		for _, c := range criteria {
			if c.Name == nn.Field {
				return errors.Errorf("item %q (index %d): non-numeric value for criterion %q",
					nn.Item, nn.Index, nn.Field)
			}
		}
	}
	return nil
}

func buildItems(rows []any, nameField string) ([]decision.Item, []NonNumericField, error) {
	items := make([]decision.Item, 0, len(rows))
	var nonNumeric []NonNumericField
	for i, row := range rows {
		m, ok := row.(map[string]any)
		if !ok {
			return nil, nil, errors.Errorf("item %d: expected an object, got %T", i, row)
		}
		item := decision.Item{Values: make(map[string]float64, len(m))}
		var badFields []string
		for k, v := range m {
			switch val := v.(type) {
			case float64:
				item.Values[k] = val
			case string:
				if k == nameField {
					item.Name = val
					continue
				}
				badFields = append(badFields, k)
			case bool:
				badFields = append(badFields, k)
			}
		}
		if item.Name == "" {
			if n, ok := m[nameField].(float64); ok {
				item.Name = strconv.FormatFloat(n, 'g', -1, 64)
			} else {
				item.Name = "#" + strconv.Itoa(i)
			}
		}
		for _, k := range badFields {
			nonNumeric = append(nonNumeric, NonNumericField{Item: item.Name, Index: i, Field: k})
		}
		items = append(items, item)
	}
	return items, nonNumeric, nil
}

func parseCSV(text string, nameField string) (*Document, error) {
	reader := csv.NewReader(strings.NewReader(text))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse CSV")
	}
	if len(records) < 2 {
		return nil, errors.New("CSV input requires a header row and at least one data row")
	}

	header := records[0]
	items := make([]decision.Item, 0, len(records)-1)
	var nonNumeric []NonNumericField
	for i, rec := range records[1:] {
		item := decision.Item{Values: make(map[string]float64, len(rec))}
		var badFields []string
		for col, cell := range rec {
			if col >= len(header) {
				break
			}
			key := strings.TrimSpace(header[col])
			cell = strings.TrimSpace(cell)
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				item.Values[key] = v
				if key == nameField {
					item.Name = cell
				}
				continue
			}
			if key == nameField {
				item.Name = cell
				continue
			}
			if cell != "" {
				badFields = append(badFields, key)
			}
		}
		if item.Name == "" {
			item.Name = "#" + strconv.Itoa(i)
		}
		for _, key := range badFields {
			nonNumeric = append(nonNumeric, NonNumericField{Item: item.Name, Index: i, Field: key})
		}
		items = append(items, item)
	}
	return &Document{Items: items, NonNumeric: nonNumeric}, nil
}
