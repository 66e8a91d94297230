// Package store persists computed layouts so they can be fetched and
// re-rendered by id.
//
// The HTTP API saves every layout it computes and hands the caller the
// record id. Implementations differ only in where records live:
//   - MemoryStore: in-process map, for tests and single-instance servers
//   - FileStore: one JSON file per record, for local use
//   - MongoStore: a MongoDB collection, for multi-instance deployments
//
// # Usage
//
//	st := store.NewMemoryStore()
//	rec := store.New(layout.Export(), store.DefaultTTL)
//	if err := st.Save(ctx, rec); err != nil {
//	    return err
//	}
//	rec, err := st.Get(ctx, rec.ID)
//	if store.IsNotFound(err) {
//	    // unknown or expired id
//	}
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/squaremap/pkg/dataset"
	"github.com/matzehuels/squaremap/pkg/errors"
)

// DefaultTTL is how long stored layouts are kept.
const DefaultTTL = 30 * 24 * time.Hour

// Record is a stored layout.
type Record struct {
	ID        string         `json:"id" bson:"_id"`
	Layout    dataset.Layout `json:"layout" bson:"layout"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	ExpiresAt time.Time      `json:"expires_at,omitzero" bson:"expires_at,omitempty"`
}

// New creates a record with a fresh id. A non-positive ttl never expires.
func New(l dataset.Layout, ttl time.Duration) *Record {
	now := time.Now().UTC()
	rec := &Record{
		ID:        uuid.NewString(),
		Layout:    l,
		CreatedAt: now,
	}
	if ttl > 0 {
		rec.ExpiresAt = now.Add(ttl)
	}
	return rec
}

// IsExpired reports whether the record has passed its expiry.
func (r *Record) IsExpired() bool {
	return !r.ExpiresAt.IsZero() && time.Now().After(r.ExpiresAt)
}

// Store is the interface for layout storage backends. All implementations
// are safe for concurrent use.
type Store interface {
	// Save stores rec, replacing any record with the same id.
	Save(ctx context.Context, rec *Record) error

	// Get returns the record with the given id. Unknown and expired ids
	// yield a NOT_FOUND error.
	Get(ctx context.Context, id string) (*Record, error)

	// Delete removes a record. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired records.
	Cleanup(ctx context.Context) error

	// Close releases the backend's resources.
	Close() error
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "layout %q not found", id)
}

// IsNotFound reports whether err is the store's not-found error.
func IsNotFound(err error) bool { return errors.Is(err, errors.ErrCodeNotFound) }

// validID reports whether id is a well-formed record id.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
