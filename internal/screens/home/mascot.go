package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// MascotVariant is the mood of the home-screen mascot.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // a best score was set today
	MascotSleepy                    // nothing played yet
)

type mascot struct {
	art     string
	caption string
	color   color.Color
}

var mascots = map[MascotVariant]mascot{
	MascotIdle: {
		art: `╭─────╮
│ ◕ ◕ │
│  ◡  │
╰──┬──╯
 ▲ ● ■`,
		caption: "Pick a game and let's go!",
		color:   theme.Primary,
	},
	MascotCelebrating: {
		art: `╭─────╮
│ ★ ★ │
│  ▽  │
╰──┬──╯
\▲ ● ■/`,
		caption: "New best score today!",
		color:   theme.ArcadeYellow,
	},
	MascotSleepy: {
		art: `╭─────╮
│ − − │ z
│  ○  │  z
╰──┬──╯
 ▲ ● ■`,
		caption: "Zzz... wake me up with a game",
		color:   theme.TextDim,
	},
}

// RenderMascot draws the mascot for variant with its caption underneath.
func RenderMascot(variant MascotVariant) string {
	m, ok := mascots[variant]
	if !ok {
		m = mascots[MascotIdle]
	}
	art := lipgloss.NewStyle().Foreground(m.color).Render(m.art)
	caption := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(m.caption)
	return lipgloss.JoinVertical(lipgloss.Center, art, "", caption)
}
