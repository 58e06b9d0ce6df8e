package main

import (
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	var (
		ref  string
		name string
	)

	cmd := &cobra.Command{
		Use:     "get <source>",
		Short:   "Fetch a brick into the cache",
		Aliases: []string{"g"},
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Fetch a brick into the local cache.

The source is a git URL (cloned shallowly) or a local directory
(copied). Fetching the same brick again replaces the cached copy.`,
		Example: `  quarry get https://github.com/acme/webapp-brick
  quarry get git@github.com:acme/webapp-brick.git --ref v2
  quarry get ./bricks/webapp --name webapp`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCache(cfg)
			if err != nil {
				return err
			}
			return runGet(cmd.Context(), c, getParams{
				source: args[0],
				ref:    ref,
				name:   name,
			})
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "Git branch or tag to fetch")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Cache the brick under a custom name")

	return cmd
}
