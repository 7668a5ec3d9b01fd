package game

import "github.com/shopspring/decimal"

// Question is the type-specific payload of an instance. Each game type has
// exactly one question variant.
type Question interface {
	Type() Type
}

type TapToCountQuestion struct {
	Count int `json:"count"`
}

type ShapeMatchQuestion struct {
	Shape string `json:"shape"`
}

type WhichIsMoreQuestion struct {
	Pile1 int `json:"pile1"`
	Pile2 int `json:"pile2"`
}

type PatternNextQuestion struct {
	Pattern []string `json:"pattern"`
}

type ColorMatchQuestion struct {
	TargetColor string `json:"targetColor"`
	TargetHex   string `json:"targetHex"`
	Emoji       string `json:"emoji"`
}

type SoundMatchQuestion struct {
	Sound string `json:"sound"`
	Emoji string `json:"emoji"`
}

type ShapeSorterQuestion struct {
	TargetShape string `json:"targetShape"`
	TargetColor string `json:"targetColor"`
}

// BigOrSmallQuestion asks for the bigger or the smaller of two items.
// AskFor is "big" or "small".
type BigOrSmallQuestion struct {
	Item1  string `json:"item1"`
	Item2  string `json:"item2"`
	Emoji1 string `json:"emoji1"`
	Emoji2 string `json:"emoji2"`
	AskFor string `json:"askFor"`
}

type NumberLineQuestion struct {
	Target int `json:"target"`
	Max    int `json:"max"`
}

type QuickFactsQuestion struct {
	Expression string `json:"expression"`
}

// CardFace is how a memory card shows its value.
type CardFace string

const (
	FaceNumber CardFace = "number"
	FaceDots   CardFace = "dots"
)

// Card is one face-down memory card. Cards with equal Value and different
// Face form a pair.
type Card struct {
	ID    string   `json:"id"`
	Face  CardFace `json:"type"`
	Value int      `json:"value"`
}

type MemoryPairsQuestion struct {
	Cards []Card `json:"cards"`
}

type OddEvenQuestion struct {
	Number int `json:"number"`
}

type WordBuilderQuestion struct {
	Letters    []string `json:"letters"`
	Hint       string   `json:"hint"`
	WordLength int      `json:"wordLength"`
}

type ColorMixQuestion struct {
	Color1 string `json:"color1"`
	Color2 string `json:"color2"`
}

// AnimalMatchQuestion asks for a fact about an animal. MatchType is one of
// "sound", "baby" or "habitat".
type AnimalMatchQuestion struct {
	Animal    string `json:"animal"`
	MatchType string `json:"matchType"`
}

type MazeQuestion struct {
	Maze Grid `json:"maze"`
	Size int  `json:"size"`
}

type SudokuQuestion struct {
	Puzzle   Grid `json:"puzzle"`
	Solution Grid `json:"solution"`
}

type EquationFixQuestion struct {
	Equation string `json:"equation"`
}

type PatternRuleQuestion struct {
	Sequence []int `json:"sequence"`
}

type VisualFractionsQuestion struct {
	Shaded int `json:"shaded"`
	Total  int `json:"total"`
}

type ClockQuestion struct {
	Hours      int    `json:"hours"`
	Minutes    int    `json:"minutes"`
	TimeString string `json:"timeString"`
}

// Coin is a coin in a money-counter purse. Value is in cents.
type Coin struct {
	Name   string `json:"name"`
	Value  int    `json:"value"`
	Symbol string `json:"symbol"`
}

type MoneyQuestion struct {
	Coins []Coin `json:"coins"`
}

// Total returns the purse value in cents.
func (q MoneyQuestion) Total() int {
	total := 0
	for _, c := range q.Coins {
		total += c.Value
	}
	return total
}

// Dollars renders a cent amount as dollars, e.g. 41 as "$0.41".
func Dollars(cents int) string {
	return "$" + decimal.New(int64(cents), -2).StringFixed(2)
}

type SpellingBeeQuestion struct {
	Audio      string   `json:"audio"`
	Hint       string   `json:"hint"`
	Letters    []string `json:"letters"`
	WordLength int      `json:"wordLength"`
}

type SymmetryQuestion struct {
	Grid Grid `json:"grid"`
	Size int  `json:"size"`
}

type MentalMathQuestion struct {
	Expression string `json:"expression"`
}

type InequalityQuestion struct {
	Expression string `json:"expression"`
}

type LogicGridQuestion struct {
	Clues  []string `json:"clues"`
	Items  []string `json:"items"`
	Colors []string `json:"colors"`
}

type CoordinatesQuestion struct {
	TargetX int `json:"targetX"`
	TargetY int `json:"targetY"`
}

type DecimalPlaceQuestion struct {
	Decimal Decimal `json:"decimal"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
}

type WordMathQuestion struct {
	Problem string `json:"problem"`
}

type FactorFinderQuestion struct {
	Number  int   `json:"number"`
	Factors []int `json:"factors"`
}

// PrimeTimeQuestion asks for the one prime or composite among the options.
// AskFor is "prime" or "composite".
type PrimeTimeQuestion struct {
	AskFor string `json:"askFor"`
	Primes []int  `json:"primes"`
}

func (TapToCountQuestion) Type() Type      { return TapToCount }
func (ShapeMatchQuestion) Type() Type      { return ShapeMatch }
func (WhichIsMoreQuestion) Type() Type     { return WhichIsMore }
func (PatternNextQuestion) Type() Type     { return PatternNext }
func (ColorMatchQuestion) Type() Type      { return ColorMatch }
func (SoundMatchQuestion) Type() Type      { return SoundMatch }
func (ShapeSorterQuestion) Type() Type     { return ShapeSorter }
func (BigOrSmallQuestion) Type() Type      { return BigOrSmall }
func (NumberLineQuestion) Type() Type      { return NumberLine }
func (QuickFactsQuestion) Type() Type      { return QuickFacts }
func (MemoryPairsQuestion) Type() Type     { return MemoryPairs }
func (OddEvenQuestion) Type() Type         { return OddEven }
func (WordBuilderQuestion) Type() Type     { return WordBuilder }
func (ColorMixQuestion) Type() Type        { return ColorMix }
func (AnimalMatchQuestion) Type() Type     { return AnimalMatch }
func (MazeQuestion) Type() Type            { return MazeRunner }
func (SudokuQuestion) Type() Type          { return MiniSudoku }
func (EquationFixQuestion) Type() Type     { return EquationFix }
func (PatternRuleQuestion) Type() Type     { return PatternRule }
func (VisualFractionsQuestion) Type() Type { return VisualFractions }
func (ClockQuestion) Type() Type           { return ClockMaster }
func (MoneyQuestion) Type() Type           { return MoneyCounter }
func (SpellingBeeQuestion) Type() Type     { return SpellingBee }
func (SymmetryQuestion) Type() Type        { return SymmetryMirror }
func (MentalMathQuestion) Type() Type      { return MentalMath }
func (InequalityQuestion) Type() Type      { return Inequalities }
func (LogicGridQuestion) Type() Type       { return LogicGrid }
func (CoordinatesQuestion) Type() Type     { return Coordinates }
func (DecimalPlaceQuestion) Type() Type    { return DecimalPlace }
func (WordMathQuestion) Type() Type        { return WordMath }
func (FactorFinderQuestion) Type() Type    { return FactorFinder }
func (PrimeTimeQuestion) Type() Type       { return PrimeTime }
