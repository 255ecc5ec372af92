// Package platform holds the registry of external booking platforms. Entries
// are configured out-of-band (seed file or admin tooling) and are read-only to
// the rest of the system: the connection mode of an entry decides whether the
// API client or the scrape client handles it.
package platform

import (
	"errors"
	"fmt"
)

// Mode identifies how a platform is queried.
type Mode string

const (
	ModeAPI    Mode = "api"
	ModeScrape Mode = "scrape"
)

// Platform is a registry entry for one external booking source.
type Platform struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	APIEndpoint string `json:"api_endpoint,omitempty"`
	APIKey      string `json:"api_key,omitempty"`
	ScrapeURL   string `json:"scrape_url,omitempty"`
}

// Mode reports which client path serves this platform. Exactly one of
// APIEndpoint and ScrapeURL should be set; APIEndpoint wins if both are.
func (p Platform) Mode() Mode {
	if p.APIEndpoint != "" {
		return ModeAPI
	}
	return ModeScrape
}

// ErrNotFound is returned when a platform ID has no registry entry.
var ErrNotFound = errors.New("platform not found")

// NotConfiguredError means a platform record exists but lacks the connection
// settings its mode requires. This is a configuration error: retrying cannot
// help until the registry is fixed.
type NotConfiguredError struct {
	ID     int
	Name   string
	Reason string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("platform %d (%s) not configured: %s", e.ID, e.Name, e.Reason)
}

// CheckAPI verifies the platform can be queried over its REST API.
func (p Platform) CheckAPI() error {
	if p.APIEndpoint == "" {
		return &NotConfiguredError{ID: p.ID, Name: p.Name, Reason: "missing API endpoint"}
	}
	if p.APIKey == "" {
		return &NotConfiguredError{ID: p.ID, Name: p.Name, Reason: "missing API key"}
	}
	return nil
}

// CheckScrape verifies the platform has a scrape target.
func (p Platform) CheckScrape() error {
	if p.ScrapeURL == "" {
		return &NotConfiguredError{ID: p.ID, Name: p.Name, Reason: "missing scrape URL"}
	}
	return nil
}

// Registry resolves platforms by ID. Implementations are read-only.
type Registry interface {
	// Lookup returns the platform with the given ID, or ErrNotFound.
	Lookup(id int) (Platform, error)
	// All returns every registered platform.
	All() ([]Platform, error)
}
