package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauscan/clauscan/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleAnalysis() *model.Analysis {
	return &model.Analysis{
		Profile:    model.Profile{Title: "Test Agreement", Type: "Contract"},
		Metadata:   model.Metadata{Length: 100, EstimatedClauses: 2},
		AnalyzedAt: time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC),
		Clauses: []model.ClauseResult{
			{Title: "SECTION 1.", Category: model.CategoryObligations, Confidence: model.ConfidenceMedium},
		},
	}
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, "user-1", "my analysis", sampleAnalysis())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	saved, err := s.Load(ctx, "user-1", id)
	require.NoError(t, err)
	assert.Equal(t, "my analysis", saved.Name)
	require.NotNil(t, saved.Analysis)
	assert.Equal(t, "Test Agreement", saved.Analysis.Profile.Title)
	assert.Len(t, saved.Analysis.Clauses, 1)
}

func TestSQLiteStore_DefaultName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, "user-1", "", sampleAnalysis())
	require.NoError(t, err)

	saved, err := s.Load(ctx, "user-1", id)
	require.NoError(t, err)
	assert.Equal(t, "SECTION 1._20260801T123000", saved.Name)
}

func TestSQLiteStore_ListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, "user-1", "first", sampleAnalysis())
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = s.Save(ctx, "user-1", "second", sampleAnalysis())
	require.NoError(t, err)

	// Other owners' records stay invisible.
	_, err = s.Save(ctx, "user-2", "other", sampleAnalysis())
	require.NoError(t, err)

	list, err := s.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Name)
	assert.Equal(t, "first", list[1].Name)
	assert.Nil(t, list[0].Analysis)
}

func TestSQLiteStore_OwnerIsolation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, "user-1", "mine", sampleAnalysis())
	require.NoError(t, err)

	_, err = s.Load(ctx, "user-2", id)
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.Delete(ctx, "user-2", id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_Delete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, "user-1", "doomed", sampleAnalysis())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "user-1", id))

	_, err = s.Load(ctx, "user-1", id)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "user-1", id), ErrNotFound)
}
