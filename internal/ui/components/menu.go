package components

import (
	tea "charm.land/bubbletea/v2"
)

// MenuItem is one entry of an arcade menu. A non-empty Hotkey activates
// the item directly from anywhere in the menu.
type MenuItem struct {
	Label  string
	Hotkey string
	Action func() tea.Cmd
}

// Menu is a vertical list of items with a wrapping cursor. Rendering is
// left to the caller.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first item.
func NewMenu(items ...MenuItem) Menu {
	return Menu{Items: items}
}

// Update moves the cursor or activates an item.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	n := len(m.Items)
	if !ok || n == 0 {
		return m, nil
	}

	switch k := key.String(); k {
	case "up", "k":
		m.Selected = (m.Selected - 1 + n) % n
	case "down", "j":
		m.Selected = (m.Selected + 1) % n
	case "home":
		m.Selected = 0
	case "end":
		m.Selected = n - 1
	case "enter", "space":
		return m, m.activate(m.Selected)
	default:
		for i, item := range m.Items {
			if item.Hotkey != "" && item.Hotkey == k {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}
	return m, nil
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

// Labels returns the item labels prefixed with their hotkeys, e.g.
// "[1] AGES 3-4".
func (m Menu) Labels() []string {
	out := make([]string, len(m.Items))
	for i, item := range m.Items {
		out[i] = item.Label
		if item.Hotkey != "" {
			out[i] = "[" + item.Hotkey + "] " + item.Label
		}
	}
	return out
}
