// Package store persists canonical tee-time listings. The Postgres
// implementation is the production path; the snapshot implementation keeps
// the same semantics in a JSON file (or purely in memory) for development
// and tests.
//
// Uniqueness of the dedup key is the storage layer's responsibility: a
// concurrent duplicate insert must fail at the constraint and be reported as
// "not inserted", never as an error.
package store

import (
	"context"
	"errors"

	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

// ErrNotFound is returned when a listing ID has no stored record.
var ErrNotFound = errors.New("listing not found")

// Store is the persistence contract for tee-time listings.
type Store interface {
	// Exists reports whether a listing with t's dedup key is stored.
	Exists(ctx context.Context, t *teetime.TeeTime) (bool, error)

	// Insert stores the listing unless its dedup key is already present.
	// Returns false (and no error) when the key exists; the stored record
	// wins and the listing's ID is not assigned.
	Insert(ctx context.Context, t *teetime.TeeTime) (bool, error)

	// Get returns the listing with the given ID, or ErrNotFound.
	Get(ctx context.Context, id int) (teetime.TeeTime, error)

	// Search returns stored listings whose wall-clock calendar date equals
	// the params' date and that satisfy its hole and price bounds, ordered
	// by start time. The date a listing's own clock shows decides the day,
	// whatever zone it was captured in.
	Search(ctx context.Context, params teetime.SearchParams) ([]teetime.TeeTime, error)
}
