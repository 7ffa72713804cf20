package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cthealljr/todo/pkg/db"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Description string
	DueDate     string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new todo item",
		Long: `Add a new todo item.

The name identifies the item for the done command. A due date is given as
2006-01-02T15:04 and interpreted in --timezone; it is stored in UTC.

Example:
  todo add "water plants" --description "the ones on the balcony" --due-date 2024-10-10T17:00`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Description, "description", "", "optional description of the todo item")
	cmd.Flags().StringVar(&opts.DueDate, "due-date", "", "optional due date of the todo item")

	return cmd
}

func runAdd(opts *AddOptions, name string, cmd *cobra.Command) error {
	loc, err := opts.Location()
	if err != nil {
		return err
	}

	todo, err := db.NewTodo(name, opts.Description, opts.DueDate, loc)
	if err != nil {
		return err
	}

	ctx := cmdContext(cmd)

	store, err := openStore(ctx, opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore(store)

	if err := store.Add(ctx, todo); err != nil {
		return err
	}

	log.Debug().Str("name", todo.Name).Str("due_date", todo.DueDate).Msg("todo added")

	return nil
}
