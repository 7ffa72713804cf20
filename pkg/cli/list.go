package cli

import (
	"github.com/spf13/cobra"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	SortBy    string
	SortOrder string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todo items",
		Long: `List todo items as an aligned table.

Without --sort-by, items appear in the order they were added. Sorting by
due_date puts items without a due date last, whatever the direction.

Example:
  todo list --sort-by due_date --sort-order desc`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.SortBy, "sort-by", "",
		"field to sort todo items by (name|description|done|due_date)")
	cmd.Flags().StringVar(&opts.SortOrder, "sort-order", "asc", "order to sort todo items in (asc|desc)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	loc, err := opts.Location()
	if err != nil {
		return err
	}

	ctx := cmdContext(cmd)

	store, err := openStore(ctx, opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore(store)

	items, err := store.List(ctx, opts.SortBy, opts.SortOrder)
	if err != nil {
		return err
	}

	renderList(cmd.OutOrStdout(), items, loc)

	return nil
}
