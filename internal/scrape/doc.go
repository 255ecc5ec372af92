// Package scrape pulls tee-time listings out of booking sites that expose no
// API. The search path drives a headless-browser session against the site's
// search page and extracts result rows through a fixed set of CSS selectors;
// a cheaper single-page detail path fetches one listing's page over plain
// HTTP and parses it with goquery.
//
// Scraped text is inherently fragile, so extraction degrades instead of
// failing: an absent results container means zero results, and unparseable
// numeric text falls back to defaults (capacity 4, holes 18) through
// parseutil. Only navigation-level failures surface as errors.
package scrape
