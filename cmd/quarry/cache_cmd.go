package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarrydev/quarry/internal/ui"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cache",
		Short:   "Manage the brick cache",
		GroupID: GroupConfig,
	}

	cmd.AddCommand(newCachePathCmd())
	cmd.AddCommand(newCacheRemoveCmd())
	cmd.AddCommand(newCacheClearCmd())

	return cmd
}

func newCachePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCache(cfg)
			if err != nil {
				return err
			}
			ui.New().Info(c.Dir())
			return nil
		},
	}
}

func newCacheRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <brick>",
		Short:   "Remove a cached brick",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCache(cfg)
			if err != nil {
				return err
			}
			if err := c.Remove(args[0]); err != nil {
				return err
			}
			ui.New().Success(fmt.Sprintf("Removed %s.", args[0]))
			return nil
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached bricks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := ui.New()
			c, err := openCache(cfg)
			if err != nil {
				return err
			}

			entries, err := c.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				l.Detail("Cache is already empty.")
				return nil
			}

			if !yes {
				ok, err := l.Confirm(fmt.Sprintf("Remove %d cached brick(s)?", len(entries)), false)
				if err != nil {
					return err
				}
				if !ok {
					l.Info("Aborted.")
					return nil
				}
			}

			if err := c.Clear(); err != nil {
				return err
			}
			l.Success("Cache cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
