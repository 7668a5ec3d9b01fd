package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kidarcade/internal/router"
	"github.com/abhisek/kidarcade/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		GameID:   "quick-facts",
		Mode:     session.ModeRace,
		Duration: 30 * time.Second,
		Rounds:   14,
		Correct:  11,
		Accuracy: float64(11) / float64(14),
		Score:    182,
		Best:     182,
		NewBest:  true,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New("Quick Facts", testSummary())
	if s.Title() != "Great Playing!" {
		t.Errorf("Title = %q, want %q", s.Title(), "Great Playing!")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New("Quick Facts", testSummary())
	view := s.View(80, 24)
	for _, want := range []string{"Quick Facts", "Score 182", "New best score", "race mode"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_NoNewBest(t *testing.T) {
	sum := testSummary()
	sum.NewBest = false
	view := New("Quick Facts", sum).View(80, 24)
	if strings.Contains(view, "New best score") {
		t.Error("unexpected new best banner")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New("Quick Facts", testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New("Quick Facts", testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New("Quick Facts", testSummary())
	hints := s.KeyHints()
	if len(hints) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(hints))
	}
}

func TestSummaryScreen_HomeKeyPopsToRoot(t *testing.T) {
	s := New("Quick Facts", testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	if cmd == nil {
		t.Fatal("expected a command on h")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
}

func TestStars(t *testing.T) {
	tests := []struct {
		rounds, correct int
		want            int
	}{
		{0, 0, 0},
		{10, 0, 0},
		{10, 3, 1},
		{10, 6, 2},
		{10, 9, 3},
	}
	for _, tt := range tests {
		sum := session.Summary{Rounds: tt.rounds, Correct: tt.correct}
		if tt.rounds > 0 {
			sum.Accuracy = float64(tt.correct) / float64(tt.rounds)
		}
		if got := Stars(sum); got != tt.want {
			t.Errorf("Stars(%d/%d) = %d, want %d", tt.correct, tt.rounds, got, tt.want)
		}
	}
}
