package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slivka2007/golfing-grouper/internal/search"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

func newSearchCmd() *cobra.Command {
	var params teetime.SearchParams

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search tee times across all configured platforms",
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

			svc := search.New(a.store, a.registry, a.apiClient())
			listings, err := svc.Search(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("searching: %w", err)
			}

			return WriteListings(os.Stdout, listings, format, flagVerbose)
		},
	}

	cmd.Flags().StringVar(&params.Location, "location", "", "Location to search, e.g. a zip code (required)")
	cmd.Flags().StringVar(&params.Date, "date", "", "Date to search, YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&params.Players, "players", 0, "Number of players")
	cmd.Flags().IntVar(&params.MinHoles, "min-holes", 0, "Minimum holes (9 or 18)")
	cmd.Flags().IntVar(&params.MaxHoles, "max-holes", 0, "Maximum holes (9 or 18)")
	cmd.Flags().Float64Var(&params.MinPrice, "min-price", 0, "Minimum total price")
	cmd.Flags().Float64Var(&params.MaxPrice, "max-price", 0, "Maximum total price")

	cmd.MarkFlagRequired("location")
	cmd.MarkFlagRequired("date")

	return cmd
}
