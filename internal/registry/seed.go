package registry

import (
	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/gamegen"
)

var games = []MiniGame{
	// Ages 3-4
	{ID: string(game.TapToCount), Name: "Tap to Count", AgeRange: Age3to4,
		Description: "Count the objects and tap the correct number!", Generator: gamegen.TapToCountGen},
	{ID: string(game.ShapeMatch), Name: "Shape Match", AgeRange: Age3to4,
		Description: "Match shapes to their outlines!", Generator: gamegen.ShapeMatchGen},
	{ID: string(game.WhichIsMore), Name: "Which Is More?", AgeRange: Age3to4,
		Description: "Pick the pile with more items!", Generator: gamegen.WhichIsMoreGen},
	{ID: string(game.PatternNext), Name: "Pattern Next", AgeRange: Age3to4,
		Description: "What comes next in the pattern?", Generator: gamegen.PatternNextGen},
	{ID: string(game.ColorMatch), Name: "Color Match", AgeRange: Age3to4,
		Description: "Name the color you see!", Generator: gamegen.ColorMatchGen},
	{ID: string(game.SoundMatch), Name: "Sound Match", AgeRange: Age3to4,
		Description: "Which animal makes this sound?", Generator: gamegen.SoundMatchGen},
	{ID: string(game.ShapeSorter), Name: "Shape Sorter", AgeRange: Age3to4,
		Description: "Drop the shape in the right bin!", Generator: gamegen.ShapeSorterGen},
	{ID: string(game.BigOrSmall), Name: "Big or Small", AgeRange: Age3to4,
		Description: "Which one is bigger? Which one is smaller?", Generator: gamegen.BigOrSmallGen},

	// Ages 5-6
	{ID: string(game.NumberLine), Name: "Number Line Place-It", AgeRange: Age5to6,
		Description: "Place numbers on the number line!", Generator: gamegen.NumberLineGen},
	{ID: string(game.QuickFacts), Name: "Quick Facts Arcade", AgeRange: Age5to6,
		Description: "Solve fast addition and subtraction!", Generator: gamegen.QuickFactsGen},
	{ID: string(game.MemoryPairs), Name: "Memory Pairs", AgeRange: Age5to6,
		Description: "Match numbers with dot quantities!", Generator: gamegen.MemoryPairsGen},
	{ID: string(game.OddEven), Name: "Odd or Even", AgeRange: Age5to6,
		Description: "Sort numbers into odd or even!", Generator: gamegen.OddEvenGen},
	{ID: string(game.WordBuilder), Name: "Word Builder", AgeRange: Age5to6,
		Description: "Unscramble the letters to build a word!", Generator: gamegen.WordBuilderGen},
	{ID: string(game.ColorMix), Name: "Color Mix Lab", AgeRange: Age5to6,
		Description: "What color do you get when you mix?", Generator: gamegen.ColorMixGen},
	{ID: string(game.AnimalMatch), Name: "Animal Match", AgeRange: Age5to6,
		Description: "Match animals to their sounds, babies and homes!", Generator: gamegen.AnimalMatchGen},
	{ID: string(game.MazeRunner), Name: "Maze Runner", AgeRange: Age5to6,
		Description: "Find the path through the maze!", Generator: gamegen.MazeRunnerGen},

	// Ages 7-8
	{ID: string(game.MiniSudoku), Name: "Mini Sudoku 4×4", AgeRange: Age7to8,
		Description: "Complete the 4×4 sudoku puzzle!", Generator: gamegen.MiniSudokuGen},
	{ID: string(game.EquationFix), Name: "Equation Fix", AgeRange: Age7to8,
		Description: "Fill in the blank to balance the equation!", Generator: gamegen.EquationFixGen},
	{ID: string(game.PatternRule), Name: "Pattern Rule", AgeRange: Age7to8,
		Description: "Continue the number sequence!", Generator: gamegen.PatternRuleGen},
	{ID: string(game.VisualFractions), Name: "Visual Fractions", AgeRange: Age7to8,
		Description: "Identify the fraction shown!", Generator: gamegen.VisualFractionsGen},
	{ID: string(game.ClockMaster), Name: "Clock Master", AgeRange: Age7to8,
		Description: "Set the clock to the right time!", Generator: gamegen.ClockMasterGen},
	{ID: string(game.MoneyCounter), Name: "Money Counter", AgeRange: Age7to8,
		Description: "Count the coins in the purse!", Generator: gamegen.MoneyCounterGen},
	{ID: string(game.SpellingBee), Name: "Spelling Bee", AgeRange: Age7to8,
		Description: "Spell the word from its sounds!", Generator: gamegen.SpellingBeeGen},
	{ID: string(game.SymmetryMirror), Name: "Symmetry Mirror", AgeRange: Age7to8,
		Description: "Complete the mirror picture!", Generator: gamegen.SymmetryMirrorGen},

	// Ages 9-10
	{ID: string(game.MentalMath), Name: "Mental Math Mix", AgeRange: Age9to10,
		Description: "Solve multi-step math problems!", Generator: gamegen.MentalMathGen},
	{ID: string(game.Inequalities), Name: "Inequalities True or False", AgeRange: Age9to10,
		Description: "Is the inequality true or false?", Generator: gamegen.InequalitiesGen},
	{ID: string(game.LogicGrid), Name: "Logic Grid Mini", AgeRange: Age9to10,
		Description: "Solve the logic puzzle!", Generator: gamegen.LogicGridGen},
	{ID: string(game.Coordinates), Name: "Coordinates Lite", AgeRange: Age9to10,
		Description: "Find the point on the grid!", Generator: gamegen.CoordinatesGen},
	{ID: string(game.DecimalPlace), Name: "Decimal Place", AgeRange: Age9to10,
		Description: "Place the decimal on the number line!", Generator: gamegen.DecimalPlaceGen},
	{ID: string(game.WordMath), Name: "Word Math", AgeRange: Age9to10,
		Description: "Solve the story problem!", Generator: gamegen.WordMathGen},
	{ID: string(game.FactorFinder), Name: "Factor Finder", AgeRange: Age9to10,
		Description: "Find the factor hiding among the numbers!", Generator: gamegen.FactorFinderGen},
	{ID: string(game.PrimeTime), Name: "Prime Time", AgeRange: Age9to10,
		Description: "Spot the prime or composite number!", Generator: gamegen.PrimeTimeGen},
}
