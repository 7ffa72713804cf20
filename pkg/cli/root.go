package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cthealljr/todo/pkg/db"
)

// RootOptions holds the global flags shared by all subcommands.
type RootOptions struct {
	DB       string
	DBType   string
	Timezone string
	Verbose  bool
}

// Location resolves the --timezone flag to a time.Location.
func (o *RootOptions) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", o.Timezone, err)
	}

	return loc, nil
}

// NewRootCommand creates the root command for the todo CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "A todo list manager backed by a JSON file or a sqlite database",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if opts.Verbose {
				level = zerolog.DebugLevel
			}

			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).With().Timestamp().Logger()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DB, "db", "./todos.json", "file to read/store todo items in")
	cmd.PersistentFlags().StringVar(&opts.DBType, "db-type", "json", "type of database file (json|sqlite)")
	cmd.PersistentFlags().StringVar(&opts.Timezone, "timezone", "UTC",
		"timezone to display due dates in and parse due dates from")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewDoneCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewUICommand(opts))

	return cmd
}

// cmdContext returns the command's context, falling back to Background
// when none was set.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func openStore(ctx context.Context, opts *RootOptions) (db.Store, error) {
	store, err := db.Open(ctx, opts.DBType, opts.DB)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("db", opts.DB).Str("db_type", opts.DBType).Msg("store opened")

	return store, nil
}

func closeStore(store db.Store) {
	if err := store.Close(); err != nil {
		log.Error().Err(err).Msg("error closing store")
	}
}
