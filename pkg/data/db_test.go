package data

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), DataFileName)
	require.NoError(t, Init(path))
	db, err := GetDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInit_EmptyPath(t *testing.T) {
	assert.Error(t, Init(""))
}

func TestInit_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), DataFileName)
	require.NoError(t, Init(path))
	require.NoError(t, Init(path))
}

func TestDataset_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)

	doc := []byte(`{"items":[{"name":"A","values":{"cost":10}}]}`)
	require.NoError(t, SaveDataset(db, "gpus", 1, doc))

	ds, err := GetDataset(db, "gpus")
	require.NoError(t, err)
	assert.Equal(t, "gpus", ds.Name)
	assert.Equal(t, 1, ds.ItemCount)
	assert.JSONEq(t, string(doc), string(ds.Document))
}

func TestDataset_UpsertReplaces(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SaveDataset(db, "gpus", 1, []byte(`{"items":[]}`)))
	require.NoError(t, SaveDataset(db, "gpus", 3, []byte(`{"items":[1,2,3]}`)))

	ds, err := GetDataset(db, "gpus")
	require.NoError(t, err)
	assert.Equal(t, 3, ds.ItemCount)

	list, err := ListDatasets(db, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDataset_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	_, err := GetDataset(db, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDataset_NilDB(t *testing.T) {
	assert.Error(t, SaveDataset(nil, "x", 0, nil))
	_, err := GetDataset(nil, "x")
	assert.Error(t, err)
	_, err = ListDatasets(nil, 10)
	assert.Error(t, err)
}

func TestDataset_EmptyName(t *testing.T) {
	db := setupTestDB(t)
	assert.Error(t, SaveDataset(db, "", 0, []byte(`{}`)))
}

func TestRun_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)

	id, err := SaveRun(db, &Run{
		Source:      "items.json",
		SortField:   "cost",
		Total:       3,
		ParetoCount: 2,
		ParetoRatio: 0.667,
		Result:      []byte(`{"summary":{"total":3}}`),
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	r, err := GetRun(db, id)
	require.NoError(t, err)
	assert.Equal(t, "items.json", r.Source)
	assert.Equal(t, "cost", r.SortField)
	assert.Equal(t, 2, r.ParetoCount)
	assert.JSONEq(t, `{"summary":{"total":3}}`, string(r.Result))
}

func TestRun_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)

	for _, src := range []string{"first", "second", "third"} {
		_, err := SaveRun(db, &Run{Source: src, Result: []byte(`{}`)})
		require.NoError(t, err)
	}

	list, err := ListRuns(db, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "third", list[0].Source)
	assert.Equal(t, "second", list[1].Source)
	assert.Empty(t, list[0].Result)
}

func TestRun_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	_, err := GetRun(db, 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRun_NilDB(t *testing.T) {
	_, err := SaveRun(nil, &Run{})
	assert.Error(t, err)
	_, err = GetRun(nil, 1)
	assert.Error(t, err)
	_, err = ListRuns(nil, 1)
	assert.Error(t, err)
}
