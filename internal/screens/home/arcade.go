package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/screens/welcome"
	"github.com/abhisek/kidarcade/internal/ui/components"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// buttonWidth is the fixed width of a bordered menu button.
const buttonWidth = 22

var (
	titleStyle  = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	playedStyle = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	topStyle    = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	playsStyle  = lipgloss.NewStyle().Foreground(theme.TextDim)
	pickedStyle = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true)
	itemStyle   = lipgloss.NewStyle().Foreground(theme.Text)
	scoreboard  = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.ArcadeCyan).
			Align(lipgloss.Center).
			Padding(0, 1)
)

func centered(cw int, block string) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(block)
}

func renderTitle(cw int, compact bool) string {
	if compact {
		return centered(cw, titleStyle.Render(welcome.BannerCompact))
	}
	return centered(cw, titleStyle.Render(welcome.BannerArt()))
}

// renderScoreboard shows games with a best score out of the catalog, the
// highest best and the number of sessions played.
func renderScoreboard(st stats, cw int, compact bool) string {
	chips := []string{
		playedStyle.Render(fmt.Sprintf("★ %d/%d GAMES", st.played, st.total)),
		topStyle.Render(fmt.Sprintf("🏆 TOP %d", st.top)),
		playsStyle.Render(fmt.Sprintf("🎮 %d PLAYS", st.sessions)),
	}
	sep := "  "
	if compact {
		chips = []string{
			playedStyle.Render(fmt.Sprintf("★%d/%d", st.played, st.total)),
			topStyle.Render(fmt.Sprintf("🏆%d", st.top)),
			playsStyle.Render(fmt.Sprintf("🎮%d", st.sessions)),
		}
		sep = " "
	}
	return scoreboard.Width(cw - 2).Render(strings.Join(chips, sep))
}

// renderMenu draws the menu as bordered arcade buttons, or as plain lines
// when there is no room for borders.
func renderMenu(labels []string, selected, cw int, bordered bool) string {
	rows := make([]string, len(labels))
	for i, label := range labels {
		switch {
		case bordered:
			rows[i] = components.ArcadeButton(label, i == selected, buttonWidth)
		case i == selected:
			rows[i] = pickedStyle.Render(" ▸ " + label + " ")
		default:
			rows[i] = itemStyle.Render("   " + label)
		}
	}
	return centered(cw, strings.Join(rows, "\n"))
}
