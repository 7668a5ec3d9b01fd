package views

import (
	"fmt"
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/ui/layout"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// clockView sets the hands of a clock to a shown time. Up and down turn the
// hour hand, left and right move the minute hand by a quarter hour.
type clockView struct {
	inst     game.Instance
	q        game.ClockQuestion
	set      game.Clock
	sent     bool
	revealed bool
}

func newClock(inst game.Instance) View {
	q, _ := inst.Question.(game.ClockQuestion)
	return &clockView{inst: inst, q: q, set: game.Clock{Hours: 12, Minutes: 0}}
}

func (v *clockView) Update(msg tea.Msg) (game.Answer, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || v.sent {
		return nil, nil
	}
	switch k.String() {
	case "up", "k":
		v.set.Hours = v.set.Hours%12 + 1
	case "down", "j":
		v.set.Hours = (v.set.Hours+10)%12 + 1
	case "right", "l":
		v.set.Minutes = (v.set.Minutes + 15) % 60
	case "left", "h":
		v.set.Minutes = (v.set.Minutes + 45) % 60
	case "enter":
		v.sent = true
		return v.set, nil
	}
	return nil, nil
}

const clockRadius = 5

// face draws an analog clock on a character grid. Columns are doubled so the
// face looks round in a terminal.
func face(c game.Clock) string {
	size := clockRadius*2 + 1
	grid := make([][]string, size)
	for y := range grid {
		grid[y] = make([]string, size)
		for x := range grid[y] {
			grid[y][x] = "  "
		}
	}
	put := func(angle, length float64, mark string) {
		x := clockRadius + int(math.Round(length*math.Sin(angle)))
		y := clockRadius - int(math.Round(length*math.Cos(angle)))
		if y >= 0 && y < size && x >= 0 && x < size {
			grid[y][x] = mark
		}
	}
	for h := 1; h <= 12; h++ {
		put(float64(h)*math.Pi/6, clockRadius, fmt.Sprintf("%2d", h))
	}
	minAngle := float64(c.Minutes) * math.Pi / 30
	hourAngle := (float64(c.Hours%12) + float64(c.Minutes)/60) * math.Pi / 6
	for l := 1.0; l <= clockRadius-1; l++ {
		put(minAngle, l, theme.Selected.Render("██"))
	}
	for l := 1.0; l <= clockRadius-2; l++ {
		put(hourAngle, l, lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("██"))
	}
	grid[clockRadius][clockRadius] = "()"

	rows := make([]string, size)
	for y := range grid {
		rows[y] = strings.Join(grid[y], "")
	}
	return strings.Join(rows, "\n")
}

func (v *clockView) Render(width int) string {
	digital := theme.Title.Render(v.set.String())
	out := heading(width, "Set the clock to "+v.q.TimeString) + "\n\n" +
		centered(width, face(v.set)) + "\n\n" +
		centered(width, digital)
	if v.revealed {
		ok, _ := game.Grade(v.inst, v.set)
		out += "\n\n" + verdict(width, ok, v.q.TimeString)
	}
	return out
}

func (v *clockView) Reveal() { v.revealed = true }

func (v *clockView) Hints() []layout.KeyHint {
	return append([]layout.KeyHint{
		{Key: "↑↓", Description: "Hour"},
		{Key: "←→", Description: "Minutes"},
	}, submitHints...)
}
