// Package cli is the command line front end of the route finder.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/airfare-routefinder/route-finder/internal/app"
	"github.com/airfare-routefinder/route-finder/internal/config"
	"github.com/airfare-routefinder/route-finder/internal/infrastructure/logger"
)

// ErrSearchFailed is returned by the search command when the result is Failed.
var ErrSearchFailed = errors.New("search failed")

// buildTimeout bounds catalog loading before any command runs
const buildTimeout = 5 * time.Second

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	lookupURL     string
	catalogFile   string
	lookupTimeout time.Duration
	verbose       bool

	components *app.Components
}

// NewRootCommand builds the finder command tree.
// Configuration comes from the environment (and .env), then the persistent flags override it.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "finder",
		Short: "Find flight connections between two cities",
		Long: `finder queries the connection lookup service for flights between two cities,
ranked Fastest or Cheapest.

Run "finder search" for a one-shot search or "finder tui" for the interactive form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.initialize(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.lookupURL, "lookup-url", "", "Base URL of the lookup service (overrides LOOKUP_BASE_URL)")
	flags.StringVar(&opts.catalogFile, "catalog", "", "City catalog JSON file (overrides CATALOG_FILE)")
	flags.DurationVar(&opts.lookupTimeout, "timeout", 0, "Lookup timeout, 0 keeps LOOKUP_TIMEOUT")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	cmd.AddCommand(
		newSearchCommand(opts),
		newCitiesCommand(opts),
		newTUICommand(opts),
	)
	return cmd
}

// Execute runs the finder command tree.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// initialize loads configuration, applies flag overrides and builds the components.
func (o *rootOptions) initialize(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if o.lookupURL != "" {
		cfg.Lookup.BaseURL = o.lookupURL
	}
	if o.catalogFile != "" {
		cfg.Catalog.File = o.catalogFile
	}
	if o.lookupTimeout > 0 {
		cfg.Lookup.Timeout = o.lookupTimeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lc := app.LoggerConfig(cfg)
	lc.Format = logger.FormatConsole
	lc.NoColor = true
	lc.EnableCaller = false
	lc.Level = "warn"
	if o.verbose {
		lc.Level = "debug"
	}
	log := logger.NewWithOutput(lc, cmd.ErrOrStderr())

	ctx, cancel := context.WithTimeout(cmd.Context(), buildTimeout)
	defer cancel()

	o.components, err = app.Build(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	return nil
}
