package teetime

import (
	"strings"
	"time"
)

// ParseDateTime combines a YYYY-MM-DD search date with scraped time text like
// "7:30 AM" into an absolute timestamp in the course's locale. Returns the
// zero time if the text cannot be parsed.
// Supported time formats: "7:30 AM", "07:30 AM", "7:30am", "14:05".
func ParseDateTime(date, timeText string, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}
	}

	timeText = strings.ToUpper(strings.TrimSpace(timeText))
	if timeText == "" {
		return day
	}

	for _, layout := range []string{"3:04 PM", "03:04 PM", "3:04PM", "15:04"} {
		t, err := time.Parse(layout, timeText)
		if err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(),
				t.Hour(), t.Minute(), 0, 0, loc)
		}
	}

	// Time text was unusable, keep the date so the listing still sorts.
	return day
}
