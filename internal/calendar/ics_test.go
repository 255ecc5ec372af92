package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/slivka2007/golfing-grouper/internal/booking"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

func TestGenerateICS(t *testing.T) {
	listing := teetime.TeeTime{
		ID:         7,
		PlatformID: 1,
		CourseName: "Pebble Creek, North Course",
		DateTime:   time.Date(2023, 6, 1, 7, 30, 0, 0, time.UTC),
		Holes:      18,
		Capacity:   4,
		BookingURL: "https://golfnow.test/book/7",
	}
	conf := booking.Confirmation{Reference: "ref-123", Code: "GN-99812"}

	ics := GenerateICS(listing, conf)

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Golfing Grouper//golfing-grouper//EN",
		"BEGIN:VEVENT",
		"UID:ref-123@golfinggrouper.com",
		"DTSTAMP:",
		"DTSTART:20230601T073000Z",
		"DTEND:20230601T113000Z",
		"SUMMARY:Tee Time - Pebble Creek\\, North Course",
		"DESCRIPTION:18 holes for up to 4 players\\nConfirmation: GN-99812",
		"LOCATION:Pebble Creek\\, North Course",
		"URL:https://golfnow.test/book/7",
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	for _, field := range requiredFields {
		if !strings.Contains(ics, field) {
			t.Errorf("ICS missing required field: %s", field)
		}
	}

	if !strings.Contains(ics, "\r\n") {
		t.Error("ICS should use \\r\\n line endings")
	}
}

func TestGenerateICSNineHoleDuration(t *testing.T) {
	listing := teetime.TeeTime{
		CourseName: "Short Course",
		DateTime:   time.Date(2023, 6, 1, 7, 0, 0, 0, time.UTC),
		Holes:      9,
		Capacity:   2,
	}

	ics := GenerateICS(listing, booking.Confirmation{Reference: "ref"})

	if !strings.Contains(ics, "DTEND:20230601T090000Z") {
		t.Error("nine-hole round should block two hours")
	}
}

func TestGenerateICSZeroTime(t *testing.T) {
	listing := teetime.TeeTime{CourseName: "Mystery Course", Holes: 18}

	ics := GenerateICS(listing, booking.Confirmation{Reference: "ref"})

	if !strings.Contains(ics, "DTSTART:") || !strings.Contains(ics, "DTEND:") {
		t.Error("ICS must still carry start and end for an unparseable tee time")
	}
}
