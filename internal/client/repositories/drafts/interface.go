package drafts

import (
	"context"
	"time"
)

// Draft is one saved snapshot. Payload is opaque JSON.
type Draft struct {
	ID          string
	Name        string
	ForestSeqNo int
	Revision    int
	Payload     []byte
	UpdatedAt   time.Time
}

// Repository persists drafts by name.
type Repository interface {
	// Save inserts the draft or replaces the one with the same name,
	// bumping its revision. ID, Revision and UpdatedAt are filled in.
	Save(ctx context.Context, d *Draft) error

	// Get returns the draft with the given name or common.ErrorNotFound.
	Get(ctx context.Context, name string) (*Draft, error)

	// List returns every draft without payload, most recent first.
	List(ctx context.Context) ([]Draft, error)

	// Delete removes a draft; deleting a missing draft is not an error.
	Delete(ctx context.Context, name string) error
}
