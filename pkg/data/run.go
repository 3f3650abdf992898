package data

import (
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	insertRunSQL = `INSERT INTO run (created, source, sort_field, total, pareto_count, pareto_ratio, result)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	selectRunSQL = `SELECT id, created, source, sort_field, total, pareto_count, pareto_ratio, result
		FROM run
		WHERE id = ?
	`

	listRunsSQL = `SELECT id, created, source, sort_field, total, pareto_count, pareto_ratio
		FROM run
		ORDER BY id DESC
		LIMIT ?
	`
)

// Run is one recorded analysis: where the items came from, the headline
// summary, and the full result document.
type Run struct {
	ID          int64           `json:"id"`
	Created     string          `json:"created"`
	Source      string          `json:"source"`
	SortField   string          `json:"sort_field,omitempty"`
	Total       int             `json:"total"`
	ParetoCount int             `json:"pareto_count"`
	ParetoRatio float64         `json:"pareto_ratio"`
	Result      json.RawMessage `json:"result,omitempty"`
}

// SaveRun records a completed analysis and returns its ID.
func SaveRun(db *sql.DB, r *Run) (int64, error) {
	if db == nil {
		return 0, errDBNotInitialized
	}
	if r == nil {
		return 0, errors.New("run is required")
	}
	res, err := db.Exec(insertRunSQL, now(), r.Source, r.SortField,
		r.Total, r.ParetoCount, r.ParetoRatio, string(r.Result))
	if err != nil {
		return 0, errors.Wrap(err, "failed to save run")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read run id")
	}
	return id, nil
}

// GetRun loads one run including its stored result document.
func GetRun(db *sql.DB, id int64) (*Run, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}
	var r Run
	var result string
	row := db.QueryRow(selectRunSQL, id)
	if err := row.Scan(&r.ID, &r.Created, &r.Source, &r.SortField,
		&r.Total, &r.ParetoCount, &r.ParetoRatio, &result); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Errorf("run not found: %d", id)
		}
		return nil, errors.Wrapf(err, "failed to query run: %d", id)
	}
	r.Result = json.RawMessage(result)
	return &r, nil
}

// ListRuns returns the most recent runs without their result documents.
func ListRuns(db *sql.DB, limit int) ([]*Run, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}
	rows, err := db.Query(listRunsSQL, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}
	defer rows.Close()

	list := make([]*Run, 0)
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Created, &r.Source, &r.SortField,
			&r.Total, &r.ParetoCount, &r.ParetoRatio); err != nil {
			return nil, errors.Wrap(err, "failed to scan run row")
		}
		list = append(list, &r)
	}
	return list, rows.Err()
}
