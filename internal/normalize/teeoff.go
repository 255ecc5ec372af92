package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/slivka2007/golfing-grouper/internal/logger"
	"github.com/slivka2007/golfing-grouper/internal/platform"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

// TeeOffAPI normalizes TeeOff's REST search payload. TeeOff reports a
// per-player price, so the total cost is price times the slot's max players,
// and booking links are built from the slot ID against the platform endpoint.
type TeeOffAPI struct{}

func (TeeOffAPI) Name() string { return "TeeOff API" }

type teeOffPayload struct {
	AvailableTimes []teeOffTime `json:"availableTimes"`
}

type teeOffTime struct {
	ID             string  `json:"id"`
	CourseName     string  `json:"courseName"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Holes          int     `json:"holes"`
	MaxPlayers     int     `json:"maxPlayers"`
	PricePerPlayer float64 `json:"pricePerPlayer"`
}

func (TeeOffAPI) Normalize(raw []byte, p platform.Platform) ([]teetime.TeeTime, error) {
	var payload teeOffPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parsing TeeOff payload: %w", err)
	}

	listings := make([]teetime.TeeTime, 0, len(payload.AvailableTimes))
	for i, tt := range payload.AvailableTimes {
		dt, err := parseAPITime(tt.Date + "T" + tt.Time)
		if err != nil || tt.CourseName == "" || tt.ID == "" {
			logger.Warn("skipping malformed TeeOff record", logger.Fields{
				"platform_id": p.ID,
				"index":       i,
				"date":        tt.Date,
				"time":        tt.Time,
			})
			continue
		}

		capacity := tt.MaxPlayers
		if capacity < 1 {
			capacity = teetime.DefaultCapacity
		}

		listings = append(listings, teetime.TeeTime{
			PlatformID: p.ID,
			CourseName: tt.CourseName,
			DateTime:   dt,
			Holes:      tt.Holes,
			Capacity:   capacity,
			TotalCost:  tt.PricePerPlayer * float64(capacity),
			BookingURL: bookingURL(p.APIEndpoint, tt.ID),
		})
	}
	return listings, nil
}

func bookingURL(endpoint, id string) string {
	return strings.TrimRight(endpoint, "/") + "/book/" + id
}
