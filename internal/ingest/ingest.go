// Package ingest persists batches of normalized listings with dedup. The
// pipeline is idempotent under the listing dedup key: re-ingesting an
// overlapping batch inserts each listing at most once.
package ingest

import (
	"context"
	"fmt"

	"github.com/slivka2007/golfing-grouper/internal/logger"
	"github.com/slivka2007/golfing-grouper/internal/store"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

// Pipeline dedups and persists normalized listings.
type Pipeline struct {
	store store.Store
}

// New creates a Pipeline over the given store.
func New(s store.Store) *Pipeline {
	return &Pipeline{store: s}
}

// Ingest persists every listing in the batch whose dedup key is not already
// stored, returning the number newly inserted. Missing capacity or hole
// counts are defaulted before persisting. The existence check and the insert
// are not atomic; a racing duplicate is caught by the store's uniqueness
// constraint and counted as a skip.
func (p *Pipeline) Ingest(ctx context.Context, listings []teetime.TeeTime) (int, error) {
	inserted := 0
	for i := range listings {
		l := listings[i]
		l.ApplyDefaults()

		exists, err := p.store.Exists(ctx, &l)
		if err != nil {
			return inserted, fmt.Errorf("checking listing %q: %w", l.Key(), err)
		}
		if exists {
			continue
		}

		ok, err := p.store.Insert(ctx, &l)
		if err != nil {
			return inserted, fmt.Errorf("persisting listing %q: %w", l.Key(), err)
		}
		if ok {
			inserted++
		}
	}

	logger.Debug("ingested listing batch", logger.Fields{
		"batch":    len(listings),
		"inserted": inserted,
	})
	return inserted, nil
}
