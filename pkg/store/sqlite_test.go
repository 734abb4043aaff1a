package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLiteRecords(t *testing.T) *SQLiteRecords {
	t.Helper()
	r, err := NewSQLiteRecords(filepath.Join(t.TempDir(), "weekendly.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteRecordsMissingKey(t *testing.T) {
	r := setupSQLiteRecords(t)

	data, err := r.Load("current-plan")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSQLiteRecordsSaveAndLoad(t *testing.T) {
	r := setupSQLiteRecords(t)

	require.NoError(t, r.Save("current-plan", []byte("name: Test\n")))
	data, err := r.Load("current-plan")
	require.NoError(t, err)
	assert.Equal(t, []byte("name: Test\n"), data)
}

func TestSQLiteRecordsUpsert(t *testing.T) {
	r := setupSQLiteRecords(t)

	require.NoError(t, r.Save("saved-plans", []byte("one")))
	require.NoError(t, r.Save("saved-plans", []byte("two")))

	data, err := r.Load("saved-plans")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), data)
}

func TestSQLiteRecordsBackStore(t *testing.T) {
	r := setupSQLiteRecords(t)

	s := NewStore(r, nil)

	day := s.CurrentPlan().ActiveDays[0]
	sa := s.AddActivityToSchedule(testActivity("Brunch", 1), day, "", "")

	reopened := NewStore(r, nil)
	assert.NotNil(t, reopened.CurrentPlan().FindScheduled(sa.ID))
}
