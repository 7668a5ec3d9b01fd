package views

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/ui/components"
	"github.com/abhisek/kidarcade/internal/ui/layout"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// choiceView shows a prompt and a row of option buttons.
type choiceView struct {
	inst   game.Instance
	prompt string
	mc     components.MultiChoice
	sent   bool
}

func newChoice(inst game.Instance) View {
	labels := make([]string, len(inst.Options))
	for i, opt := range inst.Options {
		labels[i] = optionLabel(inst.Type, opt)
	}
	return &choiceView{
		inst:   inst,
		prompt: prompt(inst),
		mc:     components.NewMultiChoice(labels),
	}
}

func (v *choiceView) Update(msg tea.Msg) (game.Answer, tea.Cmd) {
	if v.sent {
		return nil, nil
	}
	var cmd tea.Cmd
	v.mc, cmd = v.mc.Update(msg)
	if v.mc.Submitted {
		v.sent = true
		return v.inst.Options[v.mc.ChosenIndex], cmd
	}
	return nil, cmd
}

func (v *choiceView) Render(width int) string {
	q := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(v.prompt)
	opts := lipgloss.PlaceHorizontal(width, lipgloss.Center, v.mc.View(width))
	return q + "\n\n" + opts
}

func (v *choiceView) Reveal() {
	rule, ok := game.RuleFor(v.inst.Type)
	if !ok {
		return
	}
	for i, opt := range v.inst.Options {
		if rule.Compare(v.inst.Answer, opt) {
			v.mc.Reveal(i)
			return
		}
	}
}

func (v *choiceView) Hints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: fmt.Sprintf("1-%d", len(v.inst.Options)), Description: "Pick"},
		{Key: "Enter", Description: "Check"},
	}
}

// optionLabel formats an option for its button.
func optionLabel(t game.Type, a game.Answer) string {
	switch v := a.(type) {
	case game.Truth:
		if v {
			return "True"
		}
		return "False"
	case game.Number:
		if t == game.MoneyCounter {
			return game.Dollars(int(v))
		}
	case game.Text:
		if sym, ok := shapeSymbols[string(v)]; ok && (t == game.ShapeMatch || t == game.ShapeSorter) {
			return sym + " " + string(v)
		}
	}
	return a.String()
}

var shapeSymbols = map[string]string{
	"circle":   "●",
	"square":   "■",
	"triangle": "▲",
	"star":     "★",
	"heart":    "♥",
	"moon":     "☾",
}

var colorHex = map[string]string{
	"red":    "#EF4444",
	"blue":   "#3B82F6",
	"yellow": "#EAB308",
	"green":  "#22C55E",
	"orange": "#F97316",
	"purple": "#A855F7",
	"white":  "#F8FAFC",
	"black":  "#111827",
}

func swatch(hex string, w int) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", w))
}

func repeatIcon(icon string, n int) string {
	return strings.TrimSpace(strings.Repeat(icon+" ", n))
}

// prompt renders the question part of an option-based instance.
func prompt(inst game.Instance) string {
	switch q := inst.Question.(type) {
	case game.TapToCountQuestion:
		return repeatIcon("⭐", q.Count) + "\n\nHow many stars?"
	case game.ShapeMatchQuestion:
		return shapeSymbols[q.Shape] + "\n\nWhich shape is this?"
	case game.WhichIsMoreQuestion:
		return repeatIcon("🍎", q.Pile1) + "\n\n" + repeatIcon("🍐", q.Pile2) +
			"\n\nHow many are in the bigger pile?"
	case game.PatternNextQuestion:
		tokens := make([]string, len(q.Pattern))
		for i, tok := range q.Pattern {
			if sym, ok := shapeSymbols[tok]; ok {
				tok = sym
			}
			tokens[i] = tok
		}
		return strings.Join(tokens, "  ") + "  ?\n\nWhat comes next?"
	case game.ColorMatchQuestion:
		return swatch(q.TargetHex, 8) + "  " + q.Emoji + "\n\nWhat color is this?"
	case game.SoundMatchQuestion:
		return q.Emoji + "  \"" + q.Sound + "\"\n\nWho makes this sound?"
	case game.ShapeSorterQuestion:
		return fmt.Sprintf("Put the %s %s in its place!\n\nWhich shape is it?", q.TargetColor, q.TargetShape)
	case game.BigOrSmallQuestion:
		word := "BIGGER"
		if q.AskFor == "small" {
			word = "SMALLER"
		}
		return fmt.Sprintf("%s %s    %s %s\n\nWhich one is %s?", q.Emoji1, q.Item1, q.Emoji2, q.Item2, word)
	case game.QuickFactsQuestion:
		return q.Expression + " = ?"
	case game.OddEvenQuestion:
		return fmt.Sprintf("%d\n\nIs it odd or even?", q.Number)
	case game.ColorMixQuestion:
		return fmt.Sprintf("%s %s  +  %s %s  =  ?", swatch(colorHex[q.Color1], 4), q.Color1, swatch(colorHex[q.Color2], 4), q.Color2)
	case game.AnimalMatchQuestion:
		switch q.MatchType {
		case "sound":
			return fmt.Sprintf("What sound does a %s make?", q.Animal)
		case "baby":
			return fmt.Sprintf("What is a baby %s called?", q.Animal)
		default:
			return fmt.Sprintf("Where does a %s live?", q.Animal)
		}
	case game.EquationFixQuestion:
		return q.Equation + "\n\nWhat number is missing?"
	case game.PatternRuleQuestion:
		parts := make([]string, len(q.Sequence))
		for i, n := range q.Sequence {
			parts[i] = fmt.Sprint(n)
		}
		return strings.Join(parts, ", ") + ", ?\n\nWhat comes next?"
	case game.VisualFractionsQuestion:
		bar := strings.Repeat("█", q.Shaded*2) + strings.Repeat("░", (q.Total-q.Shaded)*2)
		return bar + "\n\nHow much is shaded?"
	case game.MoneyQuestion:
		coins := make([]string, len(q.Coins))
		for i, c := range q.Coins {
			coins[i] = "(" + c.Symbol + ")"
		}
		return strings.Join(coins, " ") + "\n\nHow much money is this?"
	case game.MentalMathQuestion:
		return q.Expression + " = ?"
	case game.InequalityQuestion:
		return q.Expression + "\n\nTrue or false?"
	case game.CoordinatesQuestion:
		return fmt.Sprintf("Go %d right and %d up.\n\nWhich point is it?", q.TargetX, q.TargetY)
	case game.DecimalPlaceQuestion:
		return fmt.Sprintf("%d ├%s┤ %d\n\nWhich number sits at %s?",
			q.Min, strings.Repeat("┼─", q.Max*10-1)+"─", q.Max, q.Decimal)
	case game.WordMathQuestion:
		return q.Problem
	case game.FactorFinderQuestion:
		return fmt.Sprintf("Which number is a factor of %d?", q.Number)
	case game.PrimeTimeQuestion:
		return fmt.Sprintf("Which number is %s?", q.AskFor)
	}
	return "?"
}
