package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/registry"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the games, grouped by age",
	RunE:  runGames,
}

func init() {
	gamesCmd.Flags().String("age", "", "Only show one age range: 3-4, 5-6, 7-8 or 9-10")
	gamesCmd.Flags().Bool("no-scores", false, "Skip reading best scores")
}

func runGames(cmd *cobra.Command, args []string) error {
	bands := registry.AgeRanges()
	if age, _ := cmd.Flags().GetString("age"); age != "" {
		band := registry.AgeRange(age)
		if !band.Valid() {
			return fmt.Errorf("unknown age range %q", age)
		}
		bands = []registry.AgeRange{band}
	}

	var best map[string]int
	if skip, _ := cmd.Flags().GetBool("no-scores"); !skip {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		best, err = e.scores.All(cmd.Context(), registry.IDs())
		if err != nil {
			return fmt.Errorf("read best scores: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	for _, band := range bands {
		t := newTable("ID", "Game", "Answer", "Best")
		for _, g := range registry.ByAge(band) {
			kind := "?"
			if rule, ok := game.RuleFor(game.Type(g.ID)); ok {
				kind = rule.Kind.String()
			}
			score := "—"
			if v, ok := best[g.ID]; ok {
				score = strconv.Itoa(v)
			}
			t.Row(g.ID, g.Name, kind, score)
		}
		fmt.Fprintln(out, headingStyle.Foreground(theme.BandColor(band.Index())).Render("AGES "+string(band)))
		fmt.Fprintln(out, t.String())
	}
	return nil
}
