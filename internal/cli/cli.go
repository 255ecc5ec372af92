package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slivka2007/golfing-grouper/internal/apiclient"
	"github.com/slivka2007/golfing-grouper/internal/config"
	"github.com/slivka2007/golfing-grouper/internal/crypto"
	"github.com/slivka2007/golfing-grouper/internal/logger"
	"github.com/slivka2007/golfing-grouper/internal/normalize"
	"github.com/slivka2007/golfing-grouper/internal/platform"
	"github.com/slivka2007/golfing-grouper/internal/scrape"
	"github.com/slivka2007/golfing-grouper/internal/store"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagFormat  string
	flagVerbose bool
)

// app bundles the dependencies every command shares. Built once per
// invocation after config loads.
type app struct {
	cfg      config.Config
	store    store.Store
	registry platform.Registry
	closers  []func() error
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			logger.Warn("closing resource", logger.Fields{"error": err.Error()})
		}
	}
}

// newApp loads configuration and opens the store and registry.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.LoggerLevel()
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	a := &app{cfg: cfg}

	if cfg.DatabaseURL != "" {
		pg, err := store.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		a.store = pg
		a.closers = append(a.closers, pg.Close)
	} else {
		snap, err := store.NewSnapshot(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("opening snapshot store: %w", err)
		}
		a.store = snap
	}

	var enc *crypto.Encryptor
	if cfg.EncryptionPassphrase != "" {
		enc = crypto.NewEncryptor(cfg.EncryptionPassphrase)
	}
	registry, err := platform.NewFileRegistry(cfg.PlatformsFile, enc)
	if err != nil {
		return nil, fmt.Errorf("loading platform registry: %w", err)
	}
	a.registry = registry

	return a, nil
}

func (a *app) apiClient() *apiclient.Client {
	return apiclient.New(a.registry, normalize.Default())
}

// scrapers returns the scraper set, one per known scrape-mode platform.
func (a *app) scrapers() (scrape.Scrapers, error) {
	platforms, err := a.registry.All()
	if err != nil {
		return nil, err
	}
	scrapers := scrape.Scrapers{}
	for _, p := range platforms {
		if p.Mode() != platform.ModeScrape {
			continue
		}
		if strings.EqualFold(p.Name, "GolfNow") {
			scrapers[p.Name] = scrape.NewGolfNow(p.ID)
		}
	}
	return scrapers, nil
}

func parseFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "golfing-grouper",
		Short: "Aggregate and book golf tee times across platforms",
		Long: `Searches tee-time booking platforms (REST APIs and scraped sites),
normalizes results into one deduplicated listing store, and submits
bookings through the platform that owns a listing.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newWorkerCmd())
	cmd.AddCommand(newBookCmd())

	return cmd
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
