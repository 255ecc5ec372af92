package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slivka2007/golfing-grouper/internal/booking"
	"github.com/slivka2007/golfing-grouper/internal/calendar"
)

func newBookCmd() *cobra.Command {
	var (
		flagListing       int
		flagPlayers       []string
		flagPaymentMethod string
		flagICSPath       string
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a stored tee time on its platform",
		Long: `Books a listing by ID through the platform that owns it. Each --player
takes "First,Last,email[,phone]"; the first player is the lead contact
on platforms that only accept one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat()
			if err != nil {
				return err
			}

			details := booking.Details{PaymentMethodID: flagPaymentMethod}
			for _, raw := range flagPlayers {
				player, err := parsePlayer(raw)
				if err != nil {
					return err
				}
				details.Players = append(details.Players, player)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			svc := booking.New(a.store, a.registry, nil)
			conf, err := svc.Book(cmd.Context(), flagListing, details)
			if err != nil {
				return fmt.Errorf("booking listing %d: %w", flagListing, err)
			}

			if flagICSPath != "" {
				listing, err := a.store.Get(cmd.Context(), flagListing)
				if err != nil {
					return fmt.Errorf("loading listing for invite: %w", err)
				}
				ics := calendar.GenerateICS(listing, conf)
				if err := os.WriteFile(flagICSPath, []byte(ics), 0o644); err != nil {
					return fmt.Errorf("writing invite: %w", err)
				}
			}

			return WriteConfirmation(os.Stdout, conf, format)
		},
	}

	cmd.Flags().IntVar(&flagListing, "listing", 0, "Listing ID to book (required)")
	cmd.Flags().StringArrayVar(&flagPlayers, "player", nil, `Player as "First,Last,email[,phone]" (repeatable, required)`)
	cmd.Flags().StringVar(&flagPaymentMethod, "payment-method", "", "Payment method token (required)")
	cmd.Flags().StringVar(&flagICSPath, "ics", "", "Write a calendar invite to this path on success")

	cmd.MarkFlagRequired("listing")
	cmd.MarkFlagRequired("player")
	cmd.MarkFlagRequired("payment-method")

	return cmd
}

func parsePlayer(raw string) (booking.Player, error) {
	parts := strings.Split(raw, ",")
	if len(parts) < 3 || len(parts) > 4 {
		return booking.Player{}, fmt.Errorf(`invalid --player %q: want "First,Last,email[,phone]"`, raw)
	}
	player := booking.Player{
		FirstName: strings.TrimSpace(parts[0]),
		LastName:  strings.TrimSpace(parts[1]),
		Email:     strings.TrimSpace(parts[2]),
	}
	if len(parts) == 4 {
		player.Phone = strings.TrimSpace(parts[3])
	}
	return player, nil
}
