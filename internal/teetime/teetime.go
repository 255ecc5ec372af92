package teetime

import (
	"fmt"
	"time"
)

const (
	// DefaultCapacity is assumed when an upstream omits the player count.
	DefaultCapacity = 4
	// DefaultHoles is assumed when an upstream omits the hole count.
	DefaultHoles = 18
)

// TeeTime represents a canonical, normalized tee-time listing.
type TeeTime struct {
	ID         int       `json:"id,omitempty"`
	PlatformID int       `json:"platform_id"`
	CourseName string    `json:"course_name"`
	DateTime   time.Time `json:"date_time"`
	Holes      int       `json:"holes"`
	Capacity   int       `json:"capacity"`
	TotalCost  float64   `json:"total_cost"`
	BookingURL string    `json:"booking_url"`
}

// Key returns the natural dedup identity for a listing. Two listings with the
// same key refer to the same bookable slot regardless of which fetch produced
// them. Changing its composition breaks ingestion idempotence.
func (t *TeeTime) Key() string {
	return fmt.Sprintf("%d|%s|%s|%s",
		t.PlatformID, t.CourseName, t.DateTime.UTC().Format(time.RFC3339), t.BookingURL)
}

// ApplyDefaults fills fields an upstream omitted. Scraped text is unreliable,
// so missing counts fall back to a foursome playing a full round.
func (t *TeeTime) ApplyDefaults() {
	if t.Capacity < 1 {
		t.Capacity = DefaultCapacity
	}
	if t.Holes != 9 && t.Holes != 18 {
		t.Holes = DefaultHoles
	}
}

// Matches reports whether the listing satisfies the hole and price bounds of
// the given search criteria. Zero bounds are treated as "no bound".
func (t *TeeTime) Matches(p SearchParams) bool {
	if p.MinHoles > 0 && t.Holes < p.MinHoles {
		return false
	}
	if p.MaxHoles > 0 && t.Holes > p.MaxHoles {
		return false
	}
	if p.MinPrice > 0 && t.TotalCost < p.MinPrice {
		return false
	}
	if p.MaxPrice > 0 && t.TotalCost > p.MaxPrice {
		return false
	}
	return true
}
