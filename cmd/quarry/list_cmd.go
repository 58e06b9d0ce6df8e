package main

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [filter]",
		Short:   "List cached bricks",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Example: `  quarry list
  quarry list web    # Fuzzy-filter by name`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCache(cfg)
			if err != nil {
				return err
			}
			filter := ""
			if len(args) > 0 {
				filter = args[0]
			}
			return runList(c, filter)
		},
	}
}
