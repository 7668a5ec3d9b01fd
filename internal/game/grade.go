package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/go-cmp/cmp"
)

// ErrUnknownType is returned when no grading rule is registered for a type.
var ErrUnknownType = errors.New("unknown game type")

// Comparator reports whether a submitted answer matches the expected one.
type Comparator func(want, got Answer) bool

// Rule describes how answers for one game type are shaped and compared.
type Rule struct {
	Kind    Kind
	Compare Comparator
}

// Structural compares answers by deep equality. Slices are order-sensitive
// and struct fields must all match.
func Structural(want, got Answer) bool {
	return cmp.Equal(want, got)
}

// ExactDecimal compares decimals by value. Trailing zeros are ignored, so
// 0.7 equals 0.70, but 0.66 does not equal 0.7.
func ExactDecimal(want, got Answer) bool {
	w, ok := want.(Decimal)
	if !ok {
		return false
	}
	g, ok := got.(Decimal)
	if !ok {
		return false
	}
	return w.Value.Equal(g.Value)
}

var (
	rulesMu sync.RWMutex
	rules   = map[Type]Rule{
		TapToCount:  {KindNumber, Structural},
		ShapeMatch:  {KindText, Structural},
		WhichIsMore: {KindNumber, Structural},
		PatternNext: {KindText, Structural},
		ColorMatch:  {KindText, Structural},
		SoundMatch:  {KindText, Structural},
		ShapeSorter: {KindText, Structural},
		BigOrSmall:  {KindText, Structural},

		NumberLine:  {KindNumber, Structural},
		QuickFacts:  {KindNumber, Structural},
		MemoryPairs: {KindTruth, Structural},
		OddEven:     {KindText, Structural},
		WordBuilder: {KindText, Structural},
		ColorMix:    {KindText, Structural},
		AnimalMatch: {KindText, Structural},
		MazeRunner:  {KindPath, Structural},

		MiniSudoku:      {KindGrid, Structural},
		EquationFix:     {KindNumber, Structural},
		PatternRule:     {KindNumber, Structural},
		VisualFractions: {KindText, Structural},
		ClockMaster:     {KindClock, Structural},
		MoneyCounter:    {KindNumber, Structural},
		SpellingBee:     {KindText, Structural},
		SymmetryMirror:  {KindGrid, Structural},

		MentalMath:   {KindNumber, Structural},
		Inequalities: {KindTruth, Structural},
		LogicGrid:    {KindPairing, Structural},
		Coordinates:  {KindPoint, Structural},
		DecimalPlace: {KindDecimal, ExactDecimal},
		WordMath:     {KindNumber, Structural},
		FactorFinder: {KindNumber, Structural},
		PrimeTime:    {KindNumber, Structural},
	}
)

// Register adds or replaces the grading rule for a type.
func Register(t Type, r Rule) {
	if r.Compare == nil {
		r.Compare = Structural
	}
	rulesMu.Lock()
	defer rulesMu.Unlock()
	rules[t] = r
}

// RuleFor returns the grading rule for a type.
func RuleFor(t Type) (Rule, bool) {
	rulesMu.RLock()
	defer rulesMu.RUnlock()
	r, ok := rules[t]
	return r, ok
}

// Known reports whether a type has a grading rule.
func Known(t Type) bool {
	_, ok := RuleFor(t)
	return ok
}

// Grade reports whether the submitted answer is correct for the instance.
// There is no partial credit.
func Grade(inst Instance, submitted Answer) (bool, error) {
	r, ok := RuleFor(inst.Type)
	if !ok {
		return false, fmt.Errorf("grade %q: %w", inst.Type, ErrUnknownType)
	}
	if submitted == nil || inst.Answer == nil {
		return false, nil
	}
	return r.Compare(inst.Answer, submitted), nil
}

// Validate checks the invariants every generated instance must hold.
func Validate(inst Instance) error {
	if inst.ID == "" {
		return errors.New("missing id")
	}
	r, ok := RuleFor(inst.Type)
	if !ok {
		return fmt.Errorf("type %q: %w", inst.Type, ErrUnknownType)
	}
	if inst.Question == nil {
		return errors.New("missing question")
	}
	if got := inst.Question.Type(); got != inst.Type {
		return fmt.Errorf("question type %q does not match type %q", got, inst.Type)
	}
	if inst.Answer == nil {
		return errors.New("missing answer")
	}
	if len(inst.Options) == 0 {
		return nil
	}
	if n := len(inst.Options); n < MinOptions || n > MaxOptions {
		return fmt.Errorf("%d options, want %d..%d", n, MinOptions, MaxOptions)
	}
	matches := 0
	for _, opt := range inst.Options {
		if r.Compare(inst.Answer, opt) {
			matches++
		}
	}
	if matches != 1 {
		return fmt.Errorf("answer %v appears %d times in options %v", inst.Answer, matches, inst.Options)
	}
	return nil
}
