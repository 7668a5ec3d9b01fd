// Package views draws game instances in the terminal and turns key presses
// into answers. There is one view per game type.
package views

import (
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/ui/layout"
)

// View renders one instance and collects the player's answer.
type View interface {
	// Update handles a message. A non-nil answer means the player submitted.
	Update(msg tea.Msg) (game.Answer, tea.Cmd)

	// Render draws the question and its controls within width columns.
	Render(width int) string

	// Reveal switches the view to show the graded result.
	Reveal()

	// Hints returns the footer key hints while answering.
	Hints() []layout.KeyHint
}

// Factory builds a view for an instance.
type Factory func(inst game.Instance) View

var (
	mu        sync.RWMutex
	factories = map[game.Type]Factory{}
)

// Register binds a view factory to a game type, replacing any previous one.
func Register(t game.Type, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[t] = f
}

// For returns the view for inst, or false when its type has no view.
func For(inst game.Instance) (View, bool) {
	mu.RLock()
	f, ok := factories[inst.Type]
	mu.RUnlock()
	if !ok || inst.Question == nil {
		return nil, false
	}
	return f(inst), true
}

// Has reports whether a view is registered for t.
func Has(t game.Type) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[t]
	return ok
}

func init() {
	for _, t := range []game.Type{
		game.TapToCount, game.ShapeMatch, game.WhichIsMore, game.PatternNext,
		game.ColorMatch, game.SoundMatch, game.ShapeSorter, game.BigOrSmall,
		game.QuickFacts, game.OddEven, game.ColorMix, game.AnimalMatch,
		game.EquationFix, game.PatternRule, game.VisualFractions, game.MoneyCounter,
		game.MentalMath, game.Inequalities, game.Coordinates, game.DecimalPlace,
		game.WordMath, game.FactorFinder, game.PrimeTime,
	} {
		Register(t, newChoice)
	}

	Register(game.NumberLine, newNumberLine)
	Register(game.MemoryPairs, newMemory)
	Register(game.WordBuilder, newWordBuilder)
	Register(game.SpellingBee, newSpelling)
	Register(game.MazeRunner, newMaze)
	Register(game.MiniSudoku, newSudoku)
	Register(game.SymmetryMirror, newSymmetry)
	Register(game.ClockMaster, newClock)
	Register(game.LogicGrid, newLogic)
}

var submitHints = []layout.KeyHint{
	{Key: "Enter", Description: "Check"},
	{Key: "Esc", Description: "Leave"},
}
