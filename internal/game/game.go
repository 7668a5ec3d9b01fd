// Package game defines the playable instance model shared by the generators,
// the dispatcher and the views.
package game

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Type identifies which view and grading rule apply to an instance.
type Type string

const (
	// Ages 3-4
	TapToCount  Type = "tap-to-count"
	ShapeMatch  Type = "shape-match"
	WhichIsMore Type = "which-is-more"
	PatternNext Type = "pattern-next"
	ColorMatch  Type = "color-match"
	SoundMatch  Type = "sound-match"
	ShapeSorter Type = "shape-sorter"
	BigOrSmall  Type = "big-or-small"

	// Ages 5-6
	NumberLine  Type = "number-line"
	QuickFacts  Type = "quick-facts"
	MemoryPairs Type = "memory-pairs"
	OddEven     Type = "odd-even"
	WordBuilder Type = "word-builder"
	ColorMix    Type = "color-mix"
	AnimalMatch Type = "animal-match"
	MazeRunner  Type = "maze-runner"

	// Ages 7-8
	MiniSudoku      Type = "mini-sudoku"
	EquationFix     Type = "equation-fix"
	PatternRule     Type = "pattern-rule"
	VisualFractions Type = "visual-fractions"
	ClockMaster     Type = "clock-master"
	MoneyCounter    Type = "money-counter"
	SpellingBee     Type = "spelling-bee"
	SymmetryMirror  Type = "symmetry-mirror"

	// Ages 9-10
	MentalMath   Type = "mental-math"
	Inequalities Type = "inequalities"
	LogicGrid    Type = "logic-grid"
	Coordinates  Type = "coordinates"
	DecimalPlace Type = "decimal-place"
	WordMath     Type = "word-math"
	FactorFinder Type = "factor-finder"
	PrimeTime    Type = "prime-time"
)

// MaxOptions caps the size of a multiple-choice set.
const MaxOptions = 6

// MinOptions is the smallest multiple-choice set worth showing.
const MinOptions = 2

// Instance is one randomly generated question together with the value it is
// graded against.
type Instance struct {
	ID       string
	Type     Type
	Question Question
	Answer   Answer

	// Options is empty for interactions where the answer is built rather
	// than picked (grids, paths, words, clocks).
	Options []Answer
}

// New builds an instance with a fresh ID.
func New(t Type, q Question, answer Answer, options ...Answer) Instance {
	return Instance{
		ID:       NewID(),
		Type:     t,
		Question: q,
		Answer:   answer,
		Options:  options,
	}
}

// NewID returns a time-ordered unique identifier.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// HasOptions reports whether the instance is answered by picking an option.
func (i Instance) HasOptions() bool {
	return len(i.Options) > 0
}

type instanceJSON struct {
	ID            string   `json:"id"`
	Type          Type     `json:"type"`
	Question      Question `json:"question"`
	CorrectAnswer Answer   `json:"correctAnswer"`
	Options       []Answer `json:"options,omitempty"`
}

// MarshalJSON encodes the instance in its wire form.
func (i Instance) MarshalJSON() ([]byte, error) {
	return json.Marshal(instanceJSON{
		ID:            i.ID,
		Type:          i.Type,
		Question:      i.Question,
		CorrectAnswer: i.Answer,
		Options:       i.Options,
	})
}
