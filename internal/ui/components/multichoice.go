package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// MultiChoice is a row of option buttons. Arrow keys move the selection,
// Enter or a digit key chooses.
type MultiChoice struct {
	Options     []string
	Selected    int
	Submitted   bool
	ChosenIndex int
	revealed    int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:     options,
		ChosenIndex: -1,
		revealed:    -1,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "left", "up", "h", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "right", "down", "l", "j", "tab":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		m.choose(m.Selected)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Selected = n - 1
			m.choose(n - 1)
		}
	}

	return m, nil
}

func (m *MultiChoice) choose(i int) {
	m.Submitted = true
	m.ChosenIndex = i
}

// Reveal marks the option at correct so View can color the result.
func (m *MultiChoice) Reveal(correct int) {
	m.revealed = correct
}

// View renders the options side by side, wrapping to a new row when they
// would overflow width.
func (m MultiChoice) View(width int) string {
	bw := 0
	for _, opt := range m.Options {
		bw = max(bw, lipgloss.Width(opt)+6)
	}

	var rows []string
	var row []string
	rowWidth := 0
	for i, opt := range m.Options {
		label := strconv.Itoa(i+1) + "  " + opt
		btn := m.button(i, label, bw)
		w := lipgloss.Width(btn) + 1
		if rowWidth+w > width && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, btn, " ")
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func (m MultiChoice) button(i int, label string, width int) string {
	if m.revealed >= 0 {
		style := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
		switch i {
		case m.revealed:
			return style.Foreground(theme.Success).BorderForeground(theme.Success).Bold(true).Render(label)
		case m.ChosenIndex:
			return style.Foreground(theme.Error).BorderForeground(theme.Error).Render(label)
		default:
			return style.Foreground(theme.TextDim).BorderForeground(theme.Border).Render(label)
		}
	}
	return ArcadeButton(label, i == m.Selected, width)
}
