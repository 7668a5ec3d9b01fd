package gamegen

import (
	"math/rand/v2"

	"github.com/abhisek/kidarcade/internal/game"
)

const (
	sudokuSize    = 4
	sudokuBox     = 2
	sudokuBlanks  = 6
	sudokuMaxFind = 2
)

// sudokuSolution is the fixed Latin square every puzzle is carved from.
var sudokuSolution = game.Grid{
	{1, 2, 3, 4},
	{3, 4, 1, 2},
	{2, 3, 4, 1},
	{4, 1, 2, 3},
}

// MiniSudokuGen zeroes exactly six distinct cells of the fixed solution.
// The carve does not check uniqueness; grading accepts only the stored
// solution even when another completion exists.
func MiniSudokuGen(r *rand.Rand) game.Instance {
	solution := sudokuSolution.Clone()
	puzzle := carveSudoku(r, solution, sudokuBlanks)
	return game.New(game.MiniSudoku, game.SudokuQuestion{Puzzle: puzzle, Solution: solution.Clone()}, solution)
}

// carveSudoku zeroes n distinct cells chosen uniformly at random.
func carveSudoku(r *rand.Rand, solution game.Grid, n int) game.Grid {
	puzzle := solution.Clone()
	for removed := 0; removed < n; {
		row, col := r.IntN(sudokuSize), r.IntN(sudokuSize)
		if puzzle[row][col] != 0 {
			puzzle[row][col] = 0
			removed++
		}
	}
	return puzzle
}

// CountSolutions returns how many valid completions a 4x4 puzzle has,
// stopping once limit is reached. A limit <= 0 counts every completion.
func CountSolutions(puzzle game.Grid, limit int) int {
	g := puzzle.Clone()
	count := 0
	var solve func() bool
	solve = func() bool {
		for row := range sudokuSize {
			for col := range sudokuSize {
				if g[row][col] != 0 {
					continue
				}
				for v := 1; v <= sudokuSize; v++ {
					if !sudokuAllowed(g, row, col, v) {
						continue
					}
					g[row][col] = v
					if solve() {
						return true
					}
					g[row][col] = 0
				}
				return false
			}
		}
		count++
		return limit > 0 && count >= limit
	}
	solve()
	return count
}

// HasUniqueSolution reports whether the puzzle has exactly one completion.
func HasUniqueSolution(puzzle game.Grid) bool {
	return CountSolutions(puzzle, sudokuMaxFind) == 1
}

func sudokuAllowed(g game.Grid, row, col, v int) bool {
	for i := range sudokuSize {
		if g[row][i] == v || g[i][col] == v {
			return false
		}
	}
	br, bc := row/sudokuBox*sudokuBox, col/sudokuBox*sudokuBox
	for i := br; i < br+sudokuBox; i++ {
		for j := bc; j < bc+sudokuBox; j++ {
			if g[i][j] == v {
				return false
			}
		}
	}
	return true
}

// IsLatinSquare reports whether every row and column of g is a permutation
// of 1..len(g).
func IsLatinSquare(g game.Grid) bool {
	n := len(g)
	for _, row := range g {
		if len(row) != n {
			return false
		}
	}
	for i := range n {
		rowSeen := make([]bool, n+1)
		colSeen := make([]bool, n+1)
		for j := range n {
			rv, cv := g[i][j], g[j][i]
			if rv < 1 || rv > n || cv < 1 || cv > n || rowSeen[rv] || colSeen[cv] {
				return false
			}
			rowSeen[rv], colSeen[cv] = true, true
		}
	}
	return true
}
