package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quarrydev/quarry/internal/config"
	"github.com/quarrydev/quarry/internal/ui"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   "Write a default config file",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Write a default config file to ~/.config/quarry/config.toml.

An existing config is only overwritten after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := ui.New()

			path, err := config.Path()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				ok, err := l.Confirm(fmt.Sprintf("%s exists, overwrite?", path), false)
				if err != nil {
					return err
				}
				if !ok {
					l.Info("Aborted.")
					return nil
				}
			}

			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			l.Success(fmt.Sprintf("Wrote %s.", path))
			return nil
		},
	}
}
