package scrape

import (
	"context"
	"fmt"

	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

// Params are the criteria for one scrape search. Holes of 0 searches both
// 9- and 18-hole slots.
type Params struct {
	Location string
	Date     string
	Players  int
	Holes    int
}

// Scraper searches one scrape-only platform. Implementations open their own
// browser session per call and close it on every exit path, so invocations
// may run concurrently.
type Scraper interface {
	Name() string
	Search(ctx context.Context, p Params) ([]teetime.TeeTime, error)
}

// ScrapeError means a scrape session failed at the navigation level
// (launch, navigation, or cancellation). Transient: the caller may retry
// with backoff.
type ScrapeError struct {
	Platform string
	Err      error
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("scraping %s failed: %v", e.Platform, e.Err)
}

func (e *ScrapeError) Unwrap() error { return e.Err }

// Scrapers is a registry of scrapers keyed by platform name, so the worker
// can pick one per registry entry.
type Scrapers map[string]Scraper

// For returns the scraper registered for the platform name.
func (s Scrapers) For(name string) (Scraper, bool) {
	sc, ok := s[name]
	return sc, ok
}
