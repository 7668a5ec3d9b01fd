package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type picked int

func testMenu() Menu {
	item := func(label, hotkey string, n int) MenuItem {
		return MenuItem{Label: label, Hotkey: hotkey, Action: func() tea.Cmd {
			return func() tea.Msg { return picked(n) }
		}}
	}
	return NewMenu(item("ONE", "1", 1), item("TWO", "", 2), item("THREE", "t", 3))
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestMenu_Wraps(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(key("up"))
	assert.Equal(t, 2, m.Selected)
	m, _ = m.Update(key("down"))
	assert.Equal(t, 0, m.Selected)
}

func TestMenu_EnterActivatesSelected(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(key("down"))
	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, picked(2), cmd())
}

func TestMenu_Hotkey(t *testing.T) {
	m := testMenu()
	m, cmd := m.Update(key("t"))
	require.NotNil(t, cmd)
	assert.Equal(t, picked(3), cmd())
	assert.Equal(t, 2, m.Selected)

	_, cmd = m.Update(key("z"))
	assert.Nil(t, cmd)
}

func TestMenu_Labels(t *testing.T) {
	assert.Equal(t, []string{"[1] ONE", "TWO", "[t] THREE"}, testMenu().Labels())
}

func TestMenu_Empty(t *testing.T) {
	m, cmd := NewMenu().Update(key("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Selected)
}

func TestTimerBar(t *testing.T) {
	tests := []struct {
		name     string
		bar      TimerBar
		fraction float64
		urgent   bool
	}{
		{"full", TimerBar{Remaining: 30, Total: 30, UrgentAt: 5}, 1, false},
		{"half", TimerBar{Remaining: 15, Total: 30, UrgentAt: 5}, 0.5, false},
		{"urgent", TimerBar{Remaining: 5, Total: 30, UrgentAt: 5}, 1.0 / 6, true},
		{"no total", TimerBar{Remaining: 3, UrgentAt: 5}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.fraction, tt.bar.Fraction(), 1e-9)
			assert.Equal(t, tt.urgent, tt.bar.Urgent())
		})
	}

	out := TimerBar{Remaining: 12, Total: 30, Width: 40}.View()
	assert.Contains(t, out, "12s")
}

func TestWordInput_LettersOnly(t *testing.T) {
	w := NewWordInput("type", 0)
	for _, s := range []string{"C", "a", "7", "!", "t"} {
		w, _ = w.Update(key(s))
	}
	assert.Equal(t, "cat", w.Word())

	w.Mark(true)
	assert.Contains(t, w.View(), "✓")
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 44, ContentWidth(50))
	assert.Equal(t, 60, ContentWidth(200))
}

func TestKeyButton(t *testing.T) {
	out := KeyButton{Label: "Next", Key: "Enter"}.View()
	assert.True(t, strings.Contains(out, "Enter") && strings.Contains(out, "Next"))
}
