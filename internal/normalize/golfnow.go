package normalize

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/slivka2007/golfing-grouper/internal/logger"
	"github.com/slivka2007/golfing-grouper/internal/platform"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

// GolfNowAPI normalizes GolfNow's REST search payload. GolfNow reports the
// total price for the slot directly.
type GolfNowAPI struct{}

func (GolfNowAPI) Name() string { return "GolfNow API" }

type golfNowPayload struct {
	TeeTimes []golfNowTeeTime `json:"tee_times"`
}

type golfNowTeeTime struct {
	Course struct {
		Name string `json:"name"`
	} `json:"course"`
	DateTime    string `json:"date_time"`
	Holes       int    `json:"holes"`
	PlayerCount int    `json:"player_count"`
	Rate        struct {
		TotalPrice float64 `json:"total_price"`
	} `json:"rate"`
	BookingURL string `json:"booking_url"`
}

func (GolfNowAPI) Normalize(raw []byte, p platform.Platform) ([]teetime.TeeTime, error) {
	var payload golfNowPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parsing GolfNow payload: %w", err)
	}

	listings := make([]teetime.TeeTime, 0, len(payload.TeeTimes))
	for i, tt := range payload.TeeTimes {
		dt, err := parseAPITime(tt.DateTime)
		if err != nil || tt.Course.Name == "" || tt.BookingURL == "" {
			logger.Warn("skipping malformed GolfNow record", logger.Fields{
				"platform_id": p.ID,
				"index":       i,
				"date_time":   tt.DateTime,
			})
			continue
		}

		listings = append(listings, teetime.TeeTime{
			PlatformID: p.ID,
			CourseName: tt.Course.Name,
			DateTime:   dt,
			Holes:      tt.Holes,
			Capacity:   tt.PlayerCount,
			TotalCost:  tt.Rate.TotalPrice,
			BookingURL: tt.BookingURL,
		})
	}
	return listings, nil
}

// parseAPITime accepts the timestamp shapes platform APIs actually send.
func parseAPITime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04:05"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
