package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/slivka2007/golfing-grouper/internal/worker"
)

func newWorkerCmd() *cobra.Command {
	var (
		flagLocations []string
		flagDaysAhead int
		flagPlayers   int
		flagInterval  time.Duration
		flagOnce      bool
	)

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Periodically sweep scrape platforms to keep the listing store fresh",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			locations := flagLocations
			if len(locations) == 0 {
				locations = a.cfg.WorkerLocations
			}
			daysAhead := flagDaysAhead
			if daysAhead == 0 {
				daysAhead = a.cfg.WorkerDaysAhead
			}
			interval := flagInterval
			if interval == 0 {
				interval = a.cfg.WorkerInterval
			}

			w := worker.New(a.registry, scrapers, a.store, worker.Options{
				Locations: locations,
				DaysAhead: daysAhead,
				Players:   flagPlayers,
				Interval:  interval,
			})

			if flagOnce {
				inserted, err := w.Sweep(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Printf("Sweep complete: %d new listings\n", inserted)
				return nil
			}

			err = w.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringSliceVar(&flagLocations, "locations", nil, "Locations to sweep (default from config)")
	cmd.Flags().IntVar(&flagDaysAhead, "days-ahead", 0, "Days ahead to sweep (default from config)")
	cmd.Flags().IntVar(&flagPlayers, "players", 1, "Number of players per search")
	cmd.Flags().DurationVar(&flagInterval, "interval", 0, "Interval between sweeps (default from config)")
	cmd.Flags().BoolVar(&flagOnce, "once", false, "Run a single sweep and exit")

	return cmd
}
