package scrape

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/time/rate"

	"github.com/slivka2007/golfing-grouper/internal/logger"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

const (
	// NavigateTimeout bounds the initial page load.
	NavigateTimeout = 60 * time.Second
	// ResultsWaitTimeout bounds the wait for the results container. Its
	// absence is tolerated: a slow or empty page yields zero results.
	ResultsWaitTimeout = 30 * time.Second

	golfNowSearchBase = "https://www.golfnow.com/tee-times/search"
)

// GolfNow scrapes golfnow.com search results. Each Search call runs in its
// own browser session.
type GolfNow struct {
	platformID int
	headless   bool
	limiter    *rate.Limiter
}

// NewGolfNow creates a GolfNow scraper emitting listings attributed to the
// given platform registry entry. Requests are rate limited to stay polite
// with the site.
func NewGolfNow(platformID int) *GolfNow {
	return &GolfNow{
		platformID: platformID,
		headless:   true,
		limiter:    rate.NewLimiter(rate.Limit(1), 2),
	}
}

func (g *GolfNow) Name() string { return "GolfNow" }

// searchURL builds the fragment-routed GolfNow search URL. GolfNow wants
// MM-DD-YYYY in the fragment.
func (g *GolfNow) searchURL(p Params) (string, error) {
	day, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return "", fmt.Errorf("invalid scrape date %q: %w", p.Date, err)
	}
	players := p.Players
	if players < 1 {
		players = 1
	}
	return fmt.Sprintf("%s#%s/%s/%d/%d",
		golfNowSearchBase, p.Location, day.Format("01-02-2006"), players, p.Holes), nil
}

// Search scrapes tee times for the given criteria. The session is closed on
// every exit path; cancelling ctx aborts the browser promptly.
func (g *GolfNow) Search(ctx context.Context, p Params) ([]teetime.TeeTime, error) {
	url, err := g.searchURL(p)
	if err != nil {
		return nil, err
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, &ScrapeError{Platform: g.Name(), Err: err}
	}

	session, err := NewSession(ctx, SessionOptions{Headless: g.headless, BlockResources: true})
	if err != nil {
		return nil, &ScrapeError{Platform: g.Name(), Err: err}
	}
	defer session.Close()

	logger.Info("scraping search page", logger.Fields{
		"platform": g.Name(),
		"url":      url,
	})

	if err := session.Run(NavigateTimeout, chromedp.Navigate(url)); err != nil {
		return nil, &ScrapeError{Platform: g.Name(), Err: fmt.Errorf("navigating to %s: %w", url, err)}
	}

	// Tolerate the container never appearing; extraction below still runs
	// best-effort against whatever did load.
	if err := session.Run(ResultsWaitTimeout, chromedp.WaitReady(facilitySelector, chromedp.ByQuery)); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, &ScrapeError{Platform: g.Name(), Err: err}
		}
		logger.Warn("results container did not appear", logger.Fields{
			"platform": g.Name(),
			"url":      url,
		})
	}

	var rows []rawRow
	if err := session.Run(ResultsWaitTimeout, chromedp.Evaluate(extractionScript, &rows)); err != nil {
		return nil, &ScrapeError{Platform: g.Name(), Err: fmt.Errorf("extracting results: %w", err)}
	}

	return parseRows(g.platformID, g.Name(), p.Date, rows), nil
}
