package normalize

import (
	"testing"
	"time"

	"github.com/slivka2007/golfing-grouper/internal/platform"
)

var golfNowPlatform = platform.Platform{
	ID:          1,
	Name:        "GolfNow API",
	APIEndpoint: "https://api.golfnow.test",
	APIKey:      "k",
}

var teeOffPlatform = platform.Platform{
	ID:          2,
	Name:        "TeeOff API",
	APIEndpoint: "https://api.teeoff.test",
	APIKey:      "k",
}

func TestGolfNowNormalize(t *testing.T) {
	raw := []byte(`{
		"tee_times": [
			{
				"course": {"name": "Pebble Creek"},
				"date_time": "2023-06-01T07:30:00Z",
				"holes": 9,
				"player_count": 4,
				"rate": {"total_price": 80.00},
				"booking_url": "https://golfnow.test/book/1"
			},
			{
				"course": {"name": "Pebble Creek"},
				"date_time": "2023-06-01T08:00:00Z",
				"holes": 18,
				"player_count": 2,
				"rate": {"total_price": 120.00},
				"booking_url": "https://golfnow.test/book/2"
			}
		]
	}`)

	listings, err := GolfNowAPI{}.Normalize(raw, golfNowPlatform)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("Normalize() returned %d listings, want 2", len(listings))
	}

	first := listings[0]
	if first.PlatformID != 1 {
		t.Errorf("PlatformID = %d, want 1", first.PlatformID)
	}
	if first.CourseName != "Pebble Creek" {
		t.Errorf("CourseName = %q", first.CourseName)
	}
	if !first.DateTime.Equal(time.Date(2023, time.June, 1, 7, 30, 0, 0, time.UTC)) {
		t.Errorf("DateTime = %v", first.DateTime)
	}
	if first.Holes != 9 || first.Capacity != 4 {
		t.Errorf("Holes/Capacity = %d/%d, want 9/4", first.Holes, first.Capacity)
	}
	if first.TotalCost != 80.00 {
		t.Errorf("TotalCost = %v, want 80.00", first.TotalCost)
	}
	if first.BookingURL != "https://golfnow.test/book/1" {
		t.Errorf("BookingURL = %q", first.BookingURL)
	}
}

func TestGolfNowNormalizeSkipsMalformedRecords(t *testing.T) {
	raw := []byte(`{
		"tee_times": [
			{"course": {"name": ""}, "date_time": "2023-06-01T07:30:00Z", "booking_url": "https://x/1"},
			{"course": {"name": "Good Course"}, "date_time": "not a date", "booking_url": "https://x/2"},
			{"course": {"name": "Good Course"}, "date_time": "2023-06-01T09:00:00Z", "booking_url": ""},
			{
				"course": {"name": "Good Course"},
				"date_time": "2023-06-01T10:00:00Z",
				"holes": 18,
				"player_count": 4,
				"rate": {"total_price": 100.00},
				"booking_url": "https://x/4"
			}
		]
	}`)

	listings, err := GolfNowAPI{}.Normalize(raw, golfNowPlatform)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("Normalize() returned %d listings, want 1 (malformed skipped)", len(listings))
	}
	if listings[0].BookingURL != "https://x/4" {
		t.Errorf("kept wrong record: %+v", listings[0])
	}
}

func TestGolfNowNormalizeBadPayload(t *testing.T) {
	if _, err := (GolfNowAPI{}).Normalize([]byte(`{]`), golfNowPlatform); err == nil {
		t.Error("Normalize() expected error for invalid JSON")
	}
}

func TestTeeOffNormalizePerPlayerPrice(t *testing.T) {
	raw := []byte(`{
		"availableTimes": [
			{
				"id": "tt-99",
				"courseName": "Seaside Links",
				"date": "2023-06-01",
				"time": "07:30",
				"holes": 18,
				"maxPlayers": 4,
				"pricePerPlayer": 45.00
			}
		]
	}`)

	listings, err := TeeOffAPI{}.Normalize(raw, teeOffPlatform)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("Normalize() returned %d listings, want 1", len(listings))
	}

	got := listings[0]
	if got.TotalCost != 180.00 {
		t.Errorf("TotalCost = %v, want 180.00 (45.00 x 4 players)", got.TotalCost)
	}
	if got.BookingURL != "https://api.teeoff.test/book/tt-99" {
		t.Errorf("BookingURL = %q", got.BookingURL)
	}
	if !got.DateTime.Equal(time.Date(2023, time.June, 1, 7, 30, 0, 0, time.UTC)) {
		t.Errorf("DateTime = %v", got.DateTime)
	}
}

func TestTeeOffNormalizeDefaultsCapacity(t *testing.T) {
	raw := []byte(`{
		"availableTimes": [
			{"id": "tt-1", "courseName": "Seaside Links", "date": "2023-06-01", "time": "07:30", "pricePerPlayer": 10.00}
		]
	}`)

	listings, err := TeeOffAPI{}.Normalize(raw, teeOffPlatform)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("got %d listings, want 1", len(listings))
	}
	if listings[0].Capacity != 4 {
		t.Errorf("Capacity = %d, want default 4", listings[0].Capacity)
	}
	if listings[0].TotalCost != 40.00 {
		t.Errorf("TotalCost = %v, want 40.00 (10.00 x default 4)", listings[0].TotalCost)
	}
}

func TestRegistryUnknownPlatform(t *testing.T) {
	reg := Default()

	unknown := platform.Platform{ID: 9, Name: "Chrono Golf API"}
	listings, err := reg.Normalize([]byte(`{"whatever": true}`), unknown)
	if err != nil {
		t.Fatalf("Normalize() error = %v, want nil for unregistered platform", err)
	}
	if len(listings) != 0 {
		t.Errorf("Normalize() returned %d listings, want 0", len(listings))
	}
}

func TestRegistryDispatch(t *testing.T) {
	reg := Default()

	raw := []byte(`{
		"tee_times": [
			{
				"course": {"name": "Pebble Creek"},
				"date_time": "2023-06-01T07:30:00Z",
				"holes": 9,
				"player_count": 4,
				"rate": {"total_price": 80.00},
				"booking_url": "https://golfnow.test/book/1"
			}
		]
	}`)

	listings, err := reg.Normalize(raw, golfNowPlatform)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(listings) != 1 {
		t.Errorf("Normalize() returned %d listings, want 1", len(listings))
	}
}
