package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/slivka2007/golfing-grouper/internal/parseutil"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

// DetailTimeout bounds the single-page detail fetch.
const DetailTimeout = 10 * time.Second

// DetailFetcher fetches one listing's page over plain HTTP. It is the cheap
// path used when a single tee time's full detail is needed; no browser is
// involved.
type DetailFetcher struct {
	client *http.Client
}

// NewDetailFetcher creates a DetailFetcher with a bounded client.
func NewDetailFetcher() *DetailFetcher {
	return &DetailFetcher{
		client: &http.Client{Timeout: DetailTimeout},
	}
}

// Fetch retrieves and parses one listing page. Missing elements degrade to
// defaults the same way search extraction does; only fetch-level failures
// return an error.
func (f *DetailFetcher) Fetch(ctx context.Context, platformID int, url string) (teetime.TeeTime, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return teetime.TeeTime{}, fmt.Errorf("creating detail request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return teetime.TeeTime{}, &ScrapeError{Platform: "GolfNow", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return teetime.TeeTime{}, &ScrapeError{
			Platform: "GolfNow",
			Err:      fmt.Errorf("detail page returned status %d", resp.StatusCode),
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return teetime.TeeTime{}, fmt.Errorf("parsing detail page: %w", err)
	}

	text := func(selector string) string {
		return strings.TrimSpace(doc.Find(selector).First().Text())
	}

	return teetime.TeeTime{
		PlatformID: platformID,
		CourseName: text(detailCourseName),
		DateTime:   parseDetailTime(text(detailDateTime)),
		Holes:      parseutil.Holes(text(detailHoles)),
		Capacity:   parseutil.Capacity(text(detailPlayers)),
		TotalCost:  parseutil.Price(text(detailPrice)),
		BookingURL: url,
	}, nil
}

// parseDetailTime accepts the date-time shapes detail pages render. Returns
// the zero time when none match; the caller still gets the other fields.
func parseDetailTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{
		"Jan 2, 2006 3:04 PM",
		"January 2, 2006 3:04 PM",
		"2006-01-02 15:04",
		"2006-01-02 3:04 PM",
	} {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t
		}
	}
	return time.Time{}
}
