// Package apiclient executes tee-time searches against platforms that expose
// a REST API. It builds an authenticated client bound to the platform's base
// URL, issues one GET to the platform's search path, and hands the raw
// payload to the platform's normalizer. Failures are never retried here;
// retry policy belongs to the caller.
package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/sling"

	"github.com/slivka2007/golfing-grouper/internal/logger"
	"github.com/slivka2007/golfing-grouper/internal/normalize"
	"github.com/slivka2007/golfing-grouper/internal/platform"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

const (
	// RequestTimeout bounds connect plus read for every platform API call.
	RequestTimeout = 10 * time.Second

	searchPath = "tee-times/search"
)

// UpstreamError means a platform API call failed (non-2xx, timeout, or
// transport error). Transient: the caller may retry with backoff.
type UpstreamError struct {
	PlatformID int
	Status     int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream search failed for platform %d: %v", e.PlatformID, e.Err)
	}
	return fmt.Sprintf("upstream search failed for platform %d: status %d", e.PlatformID, e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// NewSling returns a request builder bound to the platform's API endpoint
// with bearer auth and JSON headers, the way every platform integration
// talks to its upstream.
func NewSling(httpClient *http.Client, p platform.Platform) *sling.Sling {
	base := strings.TrimRight(p.APIEndpoint, "/") + "/"
	return sling.New().
		Client(httpClient).
		Base(base).
		Set("Authorization", "Bearer "+p.APIKey).
		Set("Accept", "application/json").
		Set("Content-Type", "application/json")
}

// Client searches platform REST APIs and normalizes the results.
type Client struct {
	registry    platform.Registry
	normalizers *normalize.Registry
	httpClient  *http.Client
}

// New creates a Client over the given registry and normalizer set.
func New(registry platform.Registry, normalizers *normalize.Registry) *Client {
	return &Client{
		registry:    registry,
		normalizers: normalizers,
		httpClient:  &http.Client{Timeout: RequestTimeout},
	}
}

// SearchByAPI searches one platform's REST API for tee times matching the
// params. A missing registry entry or missing endpoint/key fails before any
// network call is made.
func (c *Client) SearchByAPI(ctx context.Context, platformID int, params teetime.SearchParams) ([]teetime.TeeTime, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	p, err := c.registry.Lookup(platformID)
	if err != nil {
		return nil, err
	}
	if err := p.CheckAPI(); err != nil {
		return nil, err
	}

	req, err := NewSling(c.httpClient, p).Get(searchPath).QueryStruct(params).Request()
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	logger.Debug("searching platform API", logger.Fields{
		"platform_id": p.ID,
		"platform":    p.Name,
		"location":    params.Location,
		"date":        params.Date,
	})

	resp, err := c.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return nil, &UpstreamError{PlatformID: p.ID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{PlatformID: p.ID, Status: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{PlatformID: p.ID, Err: err}
	}

	return c.normalizers.Normalize(raw, p)
}
