package data

import (
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	upsertDatasetSQL = `INSERT INTO dataset (name, created, item_count, document)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			created = excluded.created,
			item_count = excluded.item_count,
			document = excluded.document
	`

	selectDatasetSQL = `SELECT id, name, created, item_count, document
		FROM dataset
		WHERE name = ?
	`

	listDatasetsSQL = `SELECT id, name, created, item_count
		FROM dataset
		ORDER BY name
		LIMIT ?
	`
)

// Dataset is a stored input document under a user-chosen name.
type Dataset struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Created   string          `json:"created"`
	ItemCount int             `json:"item_count"`
	Document  json.RawMessage `json:"document,omitempty"`
}

// SaveDataset inserts or replaces a named dataset.
func SaveDataset(db *sql.DB, name string, itemCount int, document []byte) error {
	if db == nil {
		return errDBNotInitialized
	}
	if name == "" {
		return errors.New("dataset name is required")
	}
	if _, err := db.Exec(upsertDatasetSQL, name, now(), itemCount, string(document)); err != nil {
		return errors.Wrapf(err, "failed to save dataset: %s", name)
	}
	return nil
}

// GetDataset loads one dataset, including its stored document.
func GetDataset(db *sql.DB, name string) (*Dataset, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}
	var d Dataset
	var doc string
	row := db.QueryRow(selectDatasetSQL, name)
	if err := row.Scan(&d.ID, &d.Name, &d.Created, &d.ItemCount, &doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Errorf("dataset not found: %s", name)
		}
		return nil, errors.Wrapf(err, "failed to query dataset: %s", name)
	}
	d.Document = json.RawMessage(doc)
	return &d, nil
}

// ListDatasets returns stored datasets without their documents.
func ListDatasets(db *sql.DB, limit int) ([]*Dataset, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}
	rows, err := db.Query(listDatasetsSQL, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list datasets")
	}
	defer rows.Close()

	list := make([]*Dataset, 0)
	for rows.Next() {
		var d Dataset
		if err := rows.Scan(&d.ID, &d.Name, &d.Created, &d.ItemCount); err != nil {
			return nil, errors.Wrap(err, "failed to scan dataset row")
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
