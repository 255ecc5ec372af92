package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/slivka2007/golfing-grouper/internal/booking"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

// roundDuration is how long a slot blocks the calendar: a full round of 18
// takes about twice a nine.
func roundDuration(holes int) time.Duration {
	if holes == 9 {
		return 2 * time.Hour
	}
	return 4 * time.Hour
}

// GenerateICS renders an iCalendar invite for a confirmed booking.
func GenerateICS(listing teetime.TeeTime, conf booking.Confirmation) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//Golfing Grouper//golfing-grouper//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString("BEGIN:VEVENT\r\n")

	ics.WriteString(fmt.Sprintf("UID:%s@golfinggrouper.com\r\n", conf.Reference))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(time.Now().UTC())))

	start := listing.DateTime
	if start.IsZero() {
		// Unparseable tee time; park the invite a week out so it still lands
		// on the calendar.
		start = time.Now().AddDate(0, 0, 7)
	}
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(start.Add(roundDuration(listing.Holes)))))

	summary := fmt.Sprintf("Tee Time - %s", listing.CourseName)
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))

	description := fmt.Sprintf("%d holes for up to %d players\nConfirmation: %s",
		listing.Holes, listing.Capacity, conf.Code)
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

	ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(listing.CourseName)))
	if listing.BookingURL != "" {
		ics.WriteString(fmt.Sprintf("URL:%s\r\n", listing.BookingURL))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")

	ics.WriteString("END:VEVENT\r\n")
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
