package main

import (
	"github.com/spf13/cobra"
)

func newNewCmd() *cobra.Command {
	var (
		output   string
		force    bool
		copyPath bool
		varFlags []string
	)

	cmd := &cobra.Command{
		Use:     "new <brick>",
		Short:   "Generate a project from a brick",
		Aliases: []string{"n"},
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Generate a project from a brick template.

The brick is either a local directory containing a brick.toml, or the
name of a brick previously fetched with 'quarry get'. Variables the
brick declares are prompted for interactively; --var and the config's
vars table pre-answer them.`,
		Example: `  quarry new webapp                        # Cached brick into current dir
  quarry new ./my-brick -o ./out           # Local brick into ./out
  quarry new webapp --var name=shop        # Pre-answer a variable
  quarry new webapp --force                # Overwrite without asking
  quarry new webapp --copy                 # Copy output path to clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCache(cfg)
			if err != nil {
				return err
			}
			return runNew(cmd.Context(), cfg, c, newParams{
				ref:      args[0],
				output:   output,
				force:    force,
				copyPath: copyPath,
				varFlags: varFlags,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", ".", "Output directory")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files without asking")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy the output path to the clipboard")
	cmd.Flags().StringArrayVar(&varFlags, "var", nil, "Pre-answer a variable (name=value, repeatable)")

	return cmd
}
