// Package search answers tee-time queries across every configured platform.
// The local store is consulted first; when it is thin for the requested day,
// API platforms are queried live and their results ingested before the store
// is read again, so callers always see the same filtered, ordered view.
package search

import (
	"context"
	"sort"

	"github.com/slivka2007/golfing-grouper/internal/apiclient"
	"github.com/slivka2007/golfing-grouper/internal/ingest"
	"github.com/slivka2007/golfing-grouper/internal/logger"
	"github.com/slivka2007/golfing-grouper/internal/platform"
	"github.com/slivka2007/golfing-grouper/internal/store"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

// DefaultFillThreshold is the stored-result count below which live API
// platforms are queried to top up the day.
const DefaultFillThreshold = 5

// APISearcher is the live-search dependency; satisfied by apiclient.Client.
type APISearcher interface {
	SearchByAPI(ctx context.Context, platformID int, params teetime.SearchParams) ([]teetime.TeeTime, error)
}

var _ APISearcher = (*apiclient.Client)(nil)

// Service runs multi-platform searches.
type Service struct {
	store    store.Store
	registry platform.Registry
	api      APISearcher
	pipeline *ingest.Pipeline

	// FillThreshold is the minimum stored result count that skips the live
	// fill. Zero means DefaultFillThreshold.
	FillThreshold int
}

// New creates a search Service over the given store and live API client.
func New(s store.Store, registry platform.Registry, api APISearcher) *Service {
	return &Service{
		store:    s,
		registry: registry,
		api:      api,
		pipeline: ingest.New(s),
	}
}

// Search returns stored listings matching params, topping the store up from
// live API platforms when the day looks thin. One platform failing its live
// query contributes zero results and a warning; it never fails the search.
// Zero total results is a valid answer, not an error.
func (s *Service) Search(ctx context.Context, params teetime.SearchParams) ([]teetime.TeeTime, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	local, err := s.store.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	threshold := s.FillThreshold
	if threshold <= 0 {
		threshold = DefaultFillThreshold
	}
	if len(local) >= threshold {
		return local, nil
	}

	fetched := s.fillFromAPIs(ctx, params)
	if len(fetched) == 0 {
		return local, nil
	}

	inserted, err := s.pipeline.Ingest(ctx, fetched)
	if err != nil {
		return nil, err
	}
	logger.Debug("live fill ingested", logger.Fields{
		"fetched":  len(fetched),
		"inserted": inserted,
		"date":     params.Date,
	})

	// Re-read so live results pass through the same filtering and ordering
	// as stored ones.
	return s.store.Search(ctx, params)
}

// fillFromAPIs queries every API-mode platform, degrading each failure to an
// empty contribution.
func (s *Service) fillFromAPIs(ctx context.Context, params teetime.SearchParams) []teetime.TeeTime {
	platforms, err := s.registry.All()
	if err != nil {
		logger.Warn("listing platforms for live fill", logger.Fields{"error": err.Error()})
		return nil
	}
	sort.Slice(platforms, func(i, j int) bool { return platforms[i].ID < platforms[j].ID })

	var fetched []teetime.TeeTime
	for _, p := range platforms {
		if p.Mode() != platform.ModeAPI {
			continue
		}
		listings, err := s.api.SearchByAPI(ctx, p.ID, params)
		if err != nil {
			logger.Warn("platform search degraded to zero results", logger.Fields{
				"platform_id": p.ID,
				"platform":    p.Name,
				"error":       err.Error(),
			})
			continue
		}
		fetched = append(fetched, listings...)
	}
	return fetched
}
