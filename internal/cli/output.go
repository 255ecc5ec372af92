package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/slivka2007/golfing-grouper/internal/booking"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// listingsResult is the JSON envelope for search and scrape output.
type listingsResult struct {
	CheckedAt    time.Time         `json:"checked_at"`
	ListingCount int               `json:"listing_count"`
	Listings     []teetime.TeeTime `json:"listings"`
}

// WriteListings writes listings in the given format.
func WriteListings(w io.Writer, listings []teetime.TeeTime, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, listingsResult{
			CheckedAt:    time.Now().UTC(),
			ListingCount: len(listings),
			Listings:     listings,
		})
	case FormatText:
		return writeListingsText(w, listings, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeListingsText(w io.Writer, listings []teetime.TeeTime, verbose bool) error {
	if len(listings) == 0 {
		fmt.Fprintln(w, "No tee times found.")
		return nil
	}

	for _, l := range listings {
		fmt.Fprintf(w, "%s  %s  %d holes  up to %d players  $%.2f\n",
			l.DateTime.Format("Mon Jan 2 3:04 PM"), l.CourseName, l.Holes, l.Capacity, l.TotalCost)
		if verbose {
			fmt.Fprintf(w, "     ID: %d (platform %d)\n", l.ID, l.PlatformID)
			fmt.Fprintf(w, "     Book: %s\n", l.BookingURL)
		}
	}
	fmt.Fprintf(w, "\nTotal: %d tee times\n", len(listings))
	return nil
}

// WriteConfirmation writes a booking confirmation in the given format.
func WriteConfirmation(w io.Writer, conf booking.Confirmation, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, conf)
	case FormatText:
		fmt.Fprintf(w, "Booking confirmed.\n")
		if conf.Code != "" {
			fmt.Fprintf(w, "Confirmation code: %s\n", conf.Code)
		}
		fmt.Fprintf(w, "Reference: %s\n", conf.Reference)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
