package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/gamegen"
	"github.com/abhisek/kidarcade/internal/registry"
	"github.com/abhisek/kidarcade/internal/views"
)

var previewCmd = &cobra.Command{
	Use:   "preview <game-id>",
	Short: "Print sample instances of a game with their answers (no database)",
	Long: `Generate instances of one game and print each question, its options and
the correct answer.

This is a stateless developer tool: no database, no scores, no events.
Useful for eyeballing generator output and checking puzzle quality.`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return registry.IDs(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 5, "Number of instances to generate")
	previewCmd.Flags().Bool("json", false, "Print instances as JSON lines")
	previewCmd.Flags().Int("width", 60, "Render width for the question view")
}

func runPreview(cmd *cobra.Command, args []string) error {
	g, ok := registry.Get(args[0])
	if !ok {
		return fmt.Errorf("game %q is coming soon", args[0])
	}
	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		return fmt.Errorf("count must be positive, got %d", count)
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	width, _ := cmd.Flags().GetInt("width")
	seed, _ := cmd.Flags().GetUint64("seed")

	rng := newRand(seed)
	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)

	var invalid, ambiguous int
	for i := 1; i <= count; i++ {
		inst := g.Generate(rng)
		if err := game.Validate(inst); err != nil {
			invalid++
			fmt.Fprintf(out, "Instance %d: invalid: %v\n", i, err)
			continue
		}
		if q, ok := inst.Question.(game.SudokuQuestion); ok && !gamegen.HasUniqueSolution(q.Puzzle) {
			ambiguous++
		}

		if asJSON {
			if err := enc.Encode(inst); err != nil {
				return fmt.Errorf("encode instance: %w", err)
			}
			continue
		}
		printInstance(out, i, count, inst, width)
	}

	if !asJSON {
		fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("── %s: %d generated ──", g.Name, count)))
	}
	if invalid > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d instances failed validation\n", invalid, count)
	}
	if ambiguous > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d sudoku puzzles have more than one solution\n", ambiguous, count)
	}
	return nil
}

func printInstance(w io.Writer, i, count int, inst game.Instance, width int) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("── Instance %d/%d ──", i, count)))
	if v, ok := views.For(inst); ok {
		fmt.Fprintln(w, v.Render(width))
	}
	if inst.HasOptions() {
		for j, o := range inst.Options {
			fmt.Fprintf(w, "  %d) %s\n", j+1, o)
		}
	}
	fmt.Fprintf(w, "Answer: %s\n", inst.Answer)
	if q, ok := inst.Question.(game.SudokuQuestion); ok {
		n := gamegen.CountSolutions(q.Puzzle, 2)
		if n > 1 {
			fmt.Fprintln(w, dimStyle.Render("note: puzzle has more than one solution"))
		}
	}
	fmt.Fprintln(w)
}
