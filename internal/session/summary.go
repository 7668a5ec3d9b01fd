package session

import "time"

// Summary holds the data displayed when a player leaves a game.
type Summary struct {
	GameID   string
	Mode     Mode
	Duration time.Duration
	Rounds   int
	Correct  int
	Accuracy float64
	Score    int
	Best     int
	NewBest  bool
}

// BuildSummary creates a Summary from the controller's current state.
func BuildSummary(c *Controller) Summary {
	var accuracy float64
	if c.rounds > 0 {
		accuracy = float64(c.correct) / float64(c.rounds)
	}
	return Summary{
		GameID:   c.gameID,
		Mode:     c.mode,
		Duration: c.now().Sub(c.startedAt),
		Rounds:   c.rounds,
		Correct:  c.correct,
		Accuracy: accuracy,
		Score:    c.score,
		Best:     c.best,
		NewBest:  c.newBest,
	}
}
