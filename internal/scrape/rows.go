package scrape

import (
	"time"

	"github.com/slivka2007/golfing-grouper/internal/logger"
	"github.com/slivka2007/golfing-grouper/internal/parseutil"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

// rawRow is one extracted result row before defensive parsing.
type rawRow struct {
	CourseName  string `json:"course_name"`
	TimeText    string `json:"time_text"`
	PriceText   string `json:"price_text"`
	HolesText   string `json:"holes_text"`
	PlayersText string `json:"players_text"`
	BookingURL  string `json:"booking_url"`
}

// parseRows turns extracted rows into listings. Rows missing the fields that
// make up the dedup identity are skipped with a warning; numeric text is
// parsed defensively so a cosmetic site change degrades values rather than
// dropping rows.
func parseRows(platformID int, platformName, date string, rows []rawRow) []teetime.TeeTime {
	listings := make([]teetime.TeeTime, 0, len(rows))
	for i, row := range rows {
		if row.CourseName == "" || row.BookingURL == "" {
			logger.Warn("skipping scraped row without identity fields", logger.Fields{
				"platform": platformName,
				"index":    i,
			})
			continue
		}

		dt := teetime.ParseDateTime(date, row.TimeText, time.Local)
		if dt.IsZero() {
			logger.Warn("skipping scraped row with unusable date", logger.Fields{
				"platform": platformName,
				"index":    i,
				"date":     date,
			})
			continue
		}

		listings = append(listings, teetime.TeeTime{
			PlatformID: platformID,
			CourseName: row.CourseName,
			DateTime:   dt,
			Holes:      parseutil.Holes(row.HolesText),
			Capacity:   parseutil.Capacity(row.PlayersText),
			TotalCost:  parseutil.Price(row.PriceText),
			BookingURL: row.BookingURL,
		})
	}
	return listings
}
