package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kidarcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game-id]",
	Short: "Open the arcade, or jump straight into one game",
	Example: `  kidarcade play
  kidarcade play mini-sudoku`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return registry.IDs(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var id string
		if len(args) == 1 {
			id = args[0]
			if _, ok := registry.Get(id); !ok {
				return fmt.Errorf("game %q is coming soon! Run 'kidarcade games' to see what you can play", id)
			}
		}
		return runApp(cmd, id)
	},
}
