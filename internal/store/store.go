// Package store persists completed analyses so they can be listed and
// reloaded later.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/clauscan/clauscan/internal/model"
)

// ErrNotFound is returned when a saved analysis does not exist.
var ErrNotFound = errors.New("analysis not found")

// SavedAnalysis is one persisted analysis record
type SavedAnalysis struct {
	ID      string
	OwnerID string
	Name    string
	SavedAt time.Time
	// Analysis is nil in listing results; Load returns it populated.
	Analysis *model.Analysis
}

// AnalysisStore persists analyses per owner
type AnalysisStore interface {
	// Save persists an analysis under the given owner and returns the
	// record ID. An empty name gets one derived from the analysis.
	Save(ctx context.Context, ownerID, name string, a *model.Analysis) (string, error)

	// Load returns a saved analysis by ID.
	Load(ctx context.Context, ownerID, id string) (*SavedAnalysis, error)

	// List returns the owner's saved analyses, newest first, without
	// payloads.
	List(ctx context.Context, ownerID string) ([]SavedAnalysis, error)

	// Delete removes a saved analysis.
	Delete(ctx context.Context, ownerID, id string) error

	// Close releases the underlying resources.
	Close() error
}

// DefaultName derives a save name from the analysis: the first clause
// title joined with the analysis timestamp.
func DefaultName(a *model.Analysis) string {
	title := "analysis"
	if len(a.Clauses) > 0 && a.Clauses[0].Title != "" {
		title = a.Clauses[0].Title
	}
	return title + "_" + a.AnalyzedAt.UTC().Format("20060102T150405")
}
