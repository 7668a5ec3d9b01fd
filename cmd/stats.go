package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kidarcade/internal/registry"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play statistics per game",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	stats, err := e.store.EventRepo().Stats(ctx)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	best, err := e.scores.All(ctx, registry.IDs())
	if err != nil {
		return fmt.Errorf("read best scores: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(stats) == 0 {
		fmt.Fprintln(out, dimStyle.Render("No games played yet."))
		return nil
	}

	t := newTable("Game", "Sessions", "Rounds", "Accuracy", "Points", "Best", "Last played")
	var sessions, rounds int
	for _, s := range stats {
		name := s.GameID
		if g, ok := registry.Get(s.GameID); ok {
			name = g.Name
		}
		bestCell := "—"
		if v, ok := best[s.GameID]; ok {
			bestCell = strconv.Itoa(v)
		}
		last := "—"
		if !s.LastPlay.IsZero() {
			last = s.LastPlay.Local().Format(time.DateOnly)
		}
		t.Row(name,
			strconv.Itoa(s.Sessions),
			strconv.Itoa(s.Rounds),
			fmt.Sprintf("%.0f%%", s.Accuracy()*100),
			strconv.Itoa(s.Points),
			bestCell,
			last,
		)
		sessions += s.Sessions
		rounds += s.Rounds
	}
	fmt.Fprintln(out, t.String())
	fmt.Fprintf(out, "%d different games, %d sessions, %d rounds\n", len(stats), sessions, rounds)
	return nil
}
