package views

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/ui/layout"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// mazeView walks the open cells from the top-left corner. Stepping back onto
// the previous cell retraces the last step. Enter submits the walk.
type mazeView struct {
	inst     game.Instance
	q        game.MazeQuestion
	walk     game.Path
	sent     bool
	revealed bool
}

func newMaze(inst game.Instance) View {
	q, _ := inst.Question.(game.MazeQuestion)
	return &mazeView{inst: inst, q: q, walk: game.Path{{Row: 0, Col: 0}}}
}

func (v *mazeView) open(c game.Cell) bool {
	return c.Row >= 0 && c.Row < len(v.q.Maze) &&
		c.Col >= 0 && c.Col < len(v.q.Maze[c.Row]) &&
		v.q.Maze[c.Row][c.Col] == 1
}

func (v *mazeView) visited(c game.Cell) bool {
	for _, w := range v.walk {
		if w == c {
			return true
		}
	}
	return false
}

func (v *mazeView) Update(msg tea.Msg) (game.Answer, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || v.sent {
		return nil, nil
	}
	key := k.String()
	if key == "enter" {
		v.sent = true
		return append(game.Path(nil), v.walk...), nil
	}
	if key == "backspace" && len(v.walk) > 1 {
		v.walk = v.walk[:len(v.walk)-1]
		return nil, nil
	}

	next, moved := step(v.walk[len(v.walk)-1], key)
	switch {
	case !moved || !v.open(next):
	case len(v.walk) > 1 && v.walk[len(v.walk)-2] == next:
		v.walk = v.walk[:len(v.walk)-1]
	case !v.visited(next):
		v.walk = append(v.walk, next)
	}
	return nil, nil
}

func (v *mazeView) Render(width int) string {
	here := v.walk[len(v.walk)-1]
	goal := game.Cell{Row: v.q.Size - 1, Col: v.q.Size - 1}
	board := renderBoard(v.q.Size, func(r, c int) (string, lipgloss.Style) {
		cell := game.Cell{Row: r, Col: c}
		switch {
		case cell == here:
			return "🐭", theme.CellCursor
		case cell == goal:
			return "🧀", theme.CellOn
		case v.visited(cell):
			return "·", theme.CellOn
		case v.open(cell):
			return "", theme.CellOn.Background(theme.Secondary)
		}
		return "", theme.CellOff
	})
	out := heading(width, "Help the mouse reach the cheese!") + "\n\n" + centered(width, board)
	if v.revealed {
		ok, _ := game.Grade(v.inst, v.walk)
		out += "\n\n" + verdict(width, ok, v.inst.Answer.String())
	}
	return out
}

func (v *mazeView) Reveal() { v.revealed = true }

func (v *mazeView) Hints() []layout.KeyHint {
	return append([]layout.KeyHint{{Key: "←→↑↓", Description: "Walk"}}, submitHints...)
}

// sudokuView fills the blank cells of a 4x4 puzzle with digits 1-4.
type sudokuView struct {
	inst     game.Instance
	q        game.SudokuQuestion
	grid     game.Grid
	cur      cursor
	sent     bool
	revealed bool
}

func newSudoku(inst game.Instance) View {
	q, _ := inst.Question.(game.SudokuQuestion)
	return &sudokuView{inst: inst, q: q, grid: q.Puzzle.Clone(), cur: cursor{size: len(q.Puzzle)}}
}

func (v *sudokuView) given(r, c int) bool { return v.q.Puzzle[r][c] != 0 }

func (v *sudokuView) Update(msg tea.Msg) (game.Answer, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || v.sent {
		return nil, nil
	}
	key := k.String()
	if v.cur.move(key) {
		return nil, nil
	}
	switch key {
	case "enter":
		v.sent = true
		return v.grid.Clone(), nil
	case "backspace", "delete", "0":
		if !v.given(v.cur.row, v.cur.col) {
			v.grid[v.cur.row][v.cur.col] = 0
		}
	default:
		n, err := strconv.Atoi(key)
		if err == nil && n >= 1 && n <= v.cur.size && !v.given(v.cur.row, v.cur.col) {
			v.grid[v.cur.row][v.cur.col] = n
		}
	}
	return nil, nil
}

func (v *sudokuView) Render(width int) string {
	board := renderBoard(v.cur.size, func(r, c int) (string, lipgloss.Style) {
		text := " "
		if n := v.grid[r][c]; n != 0 {
			text = strconv.Itoa(n)
		}
		switch {
		case v.cur.at(r, c) && !v.revealed:
			return text, theme.CellCursor
		case v.given(r, c):
			return text, theme.CellLocked.Background(theme.BgCard)
		case v.revealed && v.grid[r][c] != v.q.Solution[r][c]:
			return text, theme.CellOff.Foreground(theme.Error)
		case (r/2+c/2)%2 == 0:
			return text, theme.CellOff.Foreground(theme.ArcadeCyan)
		}
		return text, theme.CellOff.Foreground(theme.ArcadePink)
	})
	out := heading(width, "Fill the grid so every row, column and box has 1 to 4") + "\n\n" + centered(width, board)
	if v.revealed {
		ok, _ := game.Grade(v.inst, v.grid)
		out += "\n\n" + verdict(width, ok, v.q.Solution.String())
	}
	return out
}

func (v *sudokuView) Reveal() { v.revealed = true }

func (v *sudokuView) Hints() []layout.KeyHint {
	return append([]layout.KeyHint{
		{Key: "←→↑↓", Description: "Move"},
		{Key: "1-4", Description: "Fill"},
	}, submitHints...)
}

// symmetryView toggles cells on the right half until it mirrors the left.
type symmetryView struct {
	inst     game.Instance
	q        game.SymmetryQuestion
	grid     game.Grid
	cur      cursor
	sent     bool
	revealed bool
}

func newSymmetry(inst game.Instance) View {
	q, _ := inst.Question.(game.SymmetryQuestion)
	v := &symmetryView{inst: inst, q: q, grid: q.Grid.Clone(), cur: cursor{size: q.Size}}
	v.cur.col = q.Size / 2
	return v
}

func (v *symmetryView) Update(msg tea.Msg) (game.Answer, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || v.sent {
		return nil, nil
	}
	key := k.String()
	if v.cur.move(key) {
		v.cur.col = max(v.cur.col, v.q.Size/2)
		return nil, nil
	}
	switch key {
	case "space", "x":
		v.grid[v.cur.row][v.cur.col] ^= 1
	case "enter":
		v.sent = true
		return v.grid.Clone(), nil
	}
	return nil, nil
}

func (v *symmetryView) Render(width int) string {
	half := v.q.Size / 2
	board := renderBoard(v.q.Size, func(r, c int) (string, lipgloss.Style) {
		text := ""
		if c < half {
			text = "·"
		}
		on := v.grid[r][c] == 1
		switch {
		case v.cur.at(r, c) && !v.revealed:
			if on {
				return "■", theme.CellCursor
			}
			return "□", theme.CellCursor
		case on && c < half:
			return text, theme.CellOn.Background(theme.Primary)
		case on:
			return text, theme.CellOn
		}
		return text, theme.CellOff
	})
	out := heading(width, "Mirror the left side onto the right!") + "\n\n" + centered(width, board)
	if v.revealed {
		ok, _ := game.Grade(v.inst, v.grid)
		out += "\n\n" + verdict(width, ok, v.inst.Answer.String())
	}
	return out
}

func (v *symmetryView) Reveal() { v.revealed = true }

func (v *symmetryView) Hints() []layout.KeyHint {
	return append([]layout.KeyHint{
		{Key: "←→↑↓", Description: "Move"},
		{Key: "Space", Description: "Toggle"},
	}, submitHints...)
}
