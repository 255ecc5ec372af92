// Package worker keeps the listing store fresh. It periodically sweeps every
// scrape-mode platform across the configured locations and a rolling date
// window, retrying transient scrape failures with a bounded constant backoff
// and ingesting whatever each iteration yields.
package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/slivka2007/golfing-grouper/internal/ingest"
	"github.com/slivka2007/golfing-grouper/internal/logger"
	"github.com/slivka2007/golfing-grouper/internal/platform"
	"github.com/slivka2007/golfing-grouper/internal/scrape"
	"github.com/slivka2007/golfing-grouper/internal/store"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

// Options tune a sweep. Zero values take the defaults.
type Options struct {
	// Locations to search, typically zip codes.
	Locations []string
	// DaysAhead is the size of the rolling date window starting today.
	DaysAhead int
	// Players requested per search.
	Players int
	// Interval between periodic sweeps.
	Interval time.Duration
	// MaxRetries bounds retry attempts per iteration after the first try.
	MaxRetries uint64
	// RetryInterval is the constant pause between retries.
	RetryInterval time.Duration
}

func (o Options) withDefaults() Options {
	if o.DaysAhead <= 0 {
		o.DaysAhead = 7
	}
	if o.Players <= 0 {
		o.Players = 1
	}
	if o.Interval <= 0 {
		o.Interval = time.Hour
	}
	if o.MaxRetries == 0 {
		o.MaxRetries = 2
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = 30 * time.Second
	}
	return o
}

// Worker sweeps scrape platforms on a schedule.
type Worker struct {
	registry platform.Registry
	scrapers scrape.Scrapers
	pipeline *ingest.Pipeline
	metrics  *logger.Metrics
	opts     Options

	now func() time.Time
}

// New creates a Worker sweeping the given scrapers into the store.
func New(registry platform.Registry, scrapers scrape.Scrapers, s store.Store, opts Options) *Worker {
	return &Worker{
		registry: registry,
		scrapers: scrapers,
		pipeline: ingest.New(s),
		metrics:  logger.NewMetrics(),
		opts:     opts.withDefaults(),
		now:      time.Now,
	}
}

// Run sweeps immediately, then on every interval tick until ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.opts.Interval)
	defer ticker.Stop()

	for {
		if inserted, err := w.Sweep(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Error("sweep failed", nil, err)
		} else {
			logger.Info("sweep complete", mergeFields(logger.Fields{
				"inserted": inserted,
			}, w.metrics.Snapshot()))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Sweep runs one pass over every scrape platform, location, and window date,
// sequentially so only one browser session is alive at a time. A platform
// without a matching scraper is skipped with a warning. Returns the number
// of new listings stored.
func (w *Worker) Sweep(ctx context.Context) (int, error) {
	platforms, err := w.registry.All()
	if err != nil {
		return 0, fmt.Errorf("listing platforms: %w", err)
	}

	start := w.now()
	inserted := 0
	for _, p := range platforms {
		if p.Mode() != platform.ModeScrape {
			continue
		}
		scraper, ok := w.scrapers.For(p.Name)
		if !ok {
			logger.Warn("no scraper registered for platform", logger.Fields{
				"platform_id": p.ID,
				"platform":    p.Name,
			})
			continue
		}

		for _, location := range w.opts.Locations {
			for day := 0; day < w.opts.DaysAhead; day++ {
				if ctx.Err() != nil {
					return inserted, ctx.Err()
				}
				date := start.AddDate(0, 0, day).Format("2006-01-02")
				n, err := w.sweepOne(ctx, scraper, scrape.Params{
					Location: location,
					Date:     date,
					Players:  w.opts.Players,
				})
				if err != nil {
					// One bad iteration never stops the sweep.
					w.metrics.IncrCounter("iterations_failed", 1)
					logger.Warn("sweep iteration gave up", logger.Fields{
						"platform": p.Name,
						"location": location,
						"date":     date,
						"error":    err.Error(),
					})
					continue
				}
				inserted += n
			}
		}
	}
	w.metrics.RecordTiming("sweep", w.now().Sub(start))
	return inserted, nil
}

// sweepOne scrapes one platform/location/date and ingests the results,
// retrying transient scrape failures. Each retry gets a fresh browser
// session because the scraper opens one per call.
func (w *Worker) sweepOne(ctx context.Context, scraper scrape.Scraper, p scrape.Params) (int, error) {
	var listings []teetime.TeeTime

	attempts := 0
	operation := func() error {
		attempts++
		var err error
		listings, err = scraper.Search(ctx, p)
		if err == nil {
			return nil
		}
		var scrapeErr *scrape.ScrapeError
		if errors.As(err, &scrapeErr) && ctx.Err() == nil {
			return err
		}
		return backoff.Permanent(err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(w.opts.RetryInterval), w.opts.MaxRetries),
		ctx,
	)
	err := backoff.Retry(operation, policy)
	// Every attempt after the first was a retry, whether or not it helped.
	if attempts > 1 {
		w.metrics.IncrCounter("scrape_retries", int64(attempts-1))
	}
	if err != nil {
		return 0, err
	}

	w.metrics.IncrCounter("listings_scraped", int64(len(listings)))
	inserted, err := w.pipeline.Ingest(ctx, listings)
	if err != nil {
		return 0, fmt.Errorf("ingesting %s %s: %w", p.Location, p.Date, err)
	}
	w.metrics.IncrCounter("listings_inserted", int64(inserted))

	logger.Debug("sweep iteration done", logger.Fields{
		"location": p.Location,
		"date":     p.Date,
		"scraped":  len(listings),
		"inserted": inserted,
	})
	return inserted, nil
}

func mergeFields(dst, src logger.Fields) logger.Fields {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
