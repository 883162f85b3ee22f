// Package repository declares the storage interfaces the services
// depend on; the sqlite subpackage implements them.
package repository

import (
	"context"

	"github.com/vytor/chessrank/internal/models"
)

// SessionRepository manages dashboard sessions and their control
// selections.
type SessionRepository interface {
	// Upsert creates the session if it does not exist yet.
	Upsert(ctx context.Context, id string) (*models.Session, error)
	// Get returns the session or nil when unknown.
	Get(ctx context.Context, id string) (*models.Session, error)
	// SaveSelections stores the current sort key and pin choice.
	SaveSelections(ctx context.Context, id, sortKey, pinnedPlayer string) error
	// MarkUploaded records whether the session has a live upload. An
	// upload with zero data rows still counts; the flag only goes back
	// to false on reset.
	MarkUploaded(ctx context.Context, id string, uploaded bool) error
	// Delete removes the session and, via cascade, its dataset rows.
	Delete(ctx context.Context, id string) error
}

// DatasetRepository stores the normalized rows of a session's upload.
// NULL statistics are round-tripped untouched; inference happens on
// read, not on write.
type DatasetRepository interface {
	// ReplaceRows atomically swaps the session's dataset for rows.
	ReplaceRows(ctx context.Context, sessionID string, rows []models.Row) error
	// ListRows returns the session's rows in upload order.
	ListRows(ctx context.Context, sessionID string) ([]models.Row, error)
	// DeleteRows drops the session's dataset (back to demo data).
	DeleteRows(ctx context.Context, sessionID string) error
}
