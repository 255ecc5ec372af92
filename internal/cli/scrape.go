package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slivka2007/golfing-grouper/internal/ingest"
	"github.com/slivka2007/golfing-grouper/internal/logger"
	"github.com/slivka2007/golfing-grouper/internal/scrape"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

func newScrapeCmd() *cobra.Command {
	var params scrape.Params

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run one scrape pass over every scrape-mode platform and store the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat()
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			scrapers, err := a.scrapers()
			if err != nil {
				return err
			}
			if len(scrapers) == 0 {
				return fmt.Errorf("no scrape-mode platforms configured")
			}

			var all []teetime.TeeTime
			for name, scraper := range scrapers {
				listings, err := scraper.Search(cmd.Context(), params)
				if err != nil {
					logger.Warn("platform scrape failed", logger.Fields{
						"platform": name,
						"error":    err.Error(),
					})
					continue
				}
				all = append(all, listings...)
			}

			inserted, err := ingest.New(a.store).Ingest(cmd.Context(), all)
			if err != nil {
				return fmt.Errorf("storing scraped listings: %w", err)
			}

			logger.Info("scrape pass complete", logger.Fields{
				"scraped":  len(all),
				"inserted": inserted,
			})
			return WriteListings(os.Stdout, all, format, flagVerbose)
		},
	}

	cmd.Flags().StringVar(&params.Location, "location", "", "Location to search, e.g. a zip code (required)")
	cmd.Flags().StringVar(&params.Date, "date", "", "Date to search, YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&params.Players, "players", 1, "Number of players")
	cmd.Flags().IntVar(&params.Holes, "holes", 0, "Holes (9 or 18, 0 for both)")

	cmd.MarkFlagRequired("location")
	cmd.MarkFlagRequired("date")

	return cmd
}
