package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/kidarcade/internal/registry"
	"github.com/abhisek/kidarcade/internal/scores"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the top scores across all games",
	RunE:  runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().String("age", "", "Only rank games for one age range")
	leaderboardCmd.Flags().Int("limit", scores.LeaderboardSize, "Number of rows to show")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	games := registry.All()
	if age, _ := cmd.Flags().GetString("age"); age != "" {
		band := registry.AgeRange(age)
		if !band.Valid() {
			return fmt.Errorf("unknown age range %q", age)
		}
		games = registry.ByAge(band)
	}
	limit, _ := cmd.Flags().GetInt("limit")

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	entries, err := scores.Leaderboard(cmd.Context(), e.scores, registry.ScoreGames(games), limit)
	if err != nil {
		return fmt.Errorf("build leaderboard: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headingStyle.Render("🏆 TOP SCORES 🏆"))
	if len(entries) == 0 {
		fmt.Fprintln(out, dimStyle.Render("No scores yet. Go play a game!"))
		return nil
	}
	t := newTable("#", "Game", "Best")
	for _, en := range entries {
		t.Row(strconv.Itoa(en.Rank), en.Name, strconv.Itoa(en.Score))
	}
	fmt.Fprintln(out, t.String())
	return nil
}
