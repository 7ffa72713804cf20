package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewDoneCommand creates the done command.
func NewDoneCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <name>",
		Short: "Mark a todo item as done",
		Long: `Mark a todo item as done.

Items are looked up by exact name. When several items share a name, only
the first one in insertion order is marked.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDone(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDone(opts *RootOptions, name string, cmd *cobra.Command) error {
	ctx := cmdContext(cmd)

	store, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer closeStore(store)

	if err := store.MarkDone(ctx, name); err != nil {
		return err
	}

	log.Debug().Str("name", name).Msg("todo marked done")

	return nil
}
