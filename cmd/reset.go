package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/kidarcade/internal/registry"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear best scores and play history",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	resetCmd.Flags().Bool("scores-only", false, "Keep play history, clear only best scores")
}

func runReset(cmd *cobra.Command, args []string) error {
	scoresOnly, _ := cmd.Flags().GetBool("scores-only")
	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		what := "all best scores and play history"
		if scoresOnly {
			what = "all best scores"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "This clears %s. Type 'yes' to continue: ", what)
		line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if strings.TrimSpace(line) != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing changed.")
			return nil
		}
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	if err := e.scores.Reset(ctx, registry.IDs()); err != nil {
		return fmt.Errorf("reset scores: %w", err)
	}
	if !scoresOnly {
		if err := e.store.EventRepo().Reset(ctx); err != nil {
			return fmt.Errorf("reset history: %w", err)
		}
	}
	log.Info().Bool("scores_only", scoresOnly).Msg("player data reset")
	fmt.Fprintln(cmd.OutOrStdout(), "All clear. Time for a fresh start!")
	return nil
}
