package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cthealljr/todo/pkg/controller"
)

// NewUICommand creates the ui command, an interactive view of the todo
// list.
func NewUICommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse the todo list interactively",
		Long: `Browse the todo list in an interactive terminal table.

Items appear in insertion order. Select a row with the arrow keys, press
'd' to mark the selected item done, and 'q' or Escape to quit. Because the
interface owns the terminal, logs go to todo-ui.log next to the database
file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(rootOpts, cmd)
		},
	}

	return cmd
}

func runUI(opts *RootOptions, cmd *cobra.Command) error {
	loc, err := opts.Location()
	if err != nil {
		return err
	}

	filePerms := 0o666

	logPath := filepath.Join(filepath.Dir(opts.DB), "todo-ui.log")

	logFile, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(filePerms))
	if err != nil {
		return fmt.Errorf("error opening log file %s: %w", logPath, err)
	}
	defer logFile.Close()

	log.Logger = log.With().Caller().Logger().Output(zerolog.ConsoleWriter{
		Out: logFile, TimeFormat: "2006-01-02_15:04:05",
	})

	log.Info().Msg("starting todo list view...")

	ctx := cmdContext(cmd)

	store, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer closeStore(store)

	c, err := controller.NewController(ctx, store, loc)
	if err != nil {
		return err
	}

	return c.Go()
}
