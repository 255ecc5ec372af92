// Package teetime defines the canonical tee-time listing record shared by
// every platform integration, along with the search criteria users filter by.
//
// All platform payloads, whether fetched from a REST API or scraped out of
// HTML, are normalized into the TeeTime type before anything else touches
// them. The 4-tuple returned by Key is the natural dedup identity: no two
// persisted listings may share a platform, course, start time, and booking
// link.
package teetime
