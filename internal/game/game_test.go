package game

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestGrade_Structural(t *testing.T) {
	tests := []struct {
		name      string
		inst      Instance
		submitted Answer
		want      bool
	}{
		{"number match", New(TapToCount, TapToCountQuestion{Count: 4}, Number(4)), Number(4), true},
		{"number miss", New(TapToCount, TapToCountQuestion{Count: 4}, Number(4)), Number(5), false},
		{"kind mismatch", New(TapToCount, TapToCountQuestion{Count: 4}, Number(4)), Text("4"), false},
		{"text match", New(OddEven, OddEvenQuestion{Number: 3}, Text("odd")), Text("odd"), true},
		{"truth match", New(Inequalities, InequalityQuestion{Expression: "5 < 9"}, Truth(true)), Truth(true), true},
		{"clock match", New(ClockMaster, ClockQuestion{Hours: 3, Minutes: 15}, Clock{3, 15}), Clock{3, 15}, true},
		{"clock field differs", New(ClockMaster, ClockQuestion{Hours: 3, Minutes: 15}, Clock{3, 15}), Clock{3, 30}, false},
		{
			"grid match",
			New(SymmetryMirror, SymmetryQuestion{Size: 2}, Grid{{1, 1}, {0, 0}}),
			Grid{{1, 1}, {0, 0}},
			true,
		},
		{
			"grid one cell off",
			New(SymmetryMirror, SymmetryQuestion{Size: 2}, Grid{{1, 1}, {0, 0}}),
			Grid{{1, 1}, {0, 1}},
			false,
		},
		{
			"path order matters",
			New(MazeRunner, MazeQuestion{Size: 2}, Path{{0, 0}, {0, 1}, {1, 1}}),
			Path{{0, 0}, {1, 0}, {1, 1}},
			false,
		},
		{
			"pairing match",
			New(LogicGrid, LogicGridQuestion{}, Pairing{{"apple", "red"}, {"banana", "yellow"}}),
			Pairing{{"apple", "red"}, {"banana", "yellow"}},
			true,
		},
		{"nil submission", New(OddEven, OddEvenQuestion{Number: 2}, Text("even")), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Grade(tt.inst, tt.submitted)
			if err != nil {
				t.Fatalf("Grade() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Grade() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGrade_DecimalExactValue(t *testing.T) {
	inst := New(DecimalPlace, DecimalPlaceQuestion{Decimal: Tenths(7), Max: 1}, Tenths(7))

	tests := []struct {
		submitted string
		want      bool
	}{
		{"0.7", true},
		{"0.70", true},
		{"0.8", false},
		{"0.66", false},
		{"0.74", false},
		{"0.699", false},
	}
	for _, tt := range tests {
		t.Run(tt.submitted, func(t *testing.T) {
			got, err := Grade(inst, Decimal{Value: decimal.RequireFromString(tt.submitted)})
			if err != nil {
				t.Fatalf("Grade() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Grade(%s) = %v, want %v", tt.submitted, got, tt.want)
			}
		})
	}
}

func TestGrade_UnknownType(t *testing.T) {
	inst := Instance{ID: "x", Type: "laser-tag", Answer: Number(1)}
	_, err := Grade(inst, Number(1))
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("Grade() error = %v, want ErrUnknownType", err)
	}
}

func TestValidate(t *testing.T) {
	q := QuickFactsQuestion{Expression: "2 + 3"}
	tests := []struct {
		name    string
		inst    Instance
		wantErr string
	}{
		{"valid", New(QuickFacts, q, Number(5), Number(4), Number(5), Number(6)), ""},
		{"no options", New(NumberLine, NumberLineQuestion{Target: 3, Max: 20}, Number(3)), ""},
		{"answer missing", New(QuickFacts, q, Number(5), Number(4), Number(6)), "appears 0 times"},
		{"answer twice", New(QuickFacts, q, Number(5), Number(5), Number(5), Number(6)), "appears 2 times"},
		{"too few", New(QuickFacts, q, Number(5), Number(5)), "1 options"},
		{
			"too many",
			New(QuickFacts, q, Number(5), Number(1), Number(2), Number(3), Number(4), Number(5), Number(6)),
			"7 options",
		},
		{"question type mismatch", New(QuickFacts, OddEvenQuestion{Number: 5}, Number(5)), "does not match"},
		{"unknown type", Instance{ID: "x", Type: "nope", Question: q, Answer: Number(1)}, "unknown game type"},
		{"missing id", Instance{Type: QuickFacts, Question: q, Answer: Number(1)}, "missing id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.inst)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestRegister_CustomComparator(t *testing.T) {
	const custom Type = "case-blind"
	Register(custom, Rule{Kind: KindText, Compare: func(want, got Answer) bool {
		return strings.EqualFold(want.String(), got.String())
	}})

	inst := Instance{ID: "x", Type: custom, Answer: Text("Cat")}
	ok, err := Grade(inst, Text("cAT"))
	if err != nil || !ok {
		t.Errorf("Grade() = %v, %v; want true", ok, err)
	}
}

func TestDecodeAnswer(t *testing.T) {
	tests := []struct {
		kind Kind
		raw  string
		want Answer
	}{
		{KindNumber, `42`, Number(42)},
		{KindText, `"even"`, Text("even")},
		{KindTruth, `false`, Truth(false)},
		{KindDecimal, `0.7`, Tenths(7)},
		{KindClock, `{"hours":3,"minutes":45}`, Clock{3, 45}},
		{KindPoint, `{"x":2,"y":5}`, Point{2, 5}},
		{KindPath, `[[0,0],[0,1]]`, Path{{0, 0}, {0, 1}}},
		{KindGrid, `[[1,0],[0,1]]`, Grid{{1, 0}, {0, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, err := DecodeAnswer(tt.kind, []byte(tt.raw))
			if err != nil {
				t.Fatalf("DecodeAnswer() error: %v", err)
			}
			rule := Structural
			if tt.kind == KindDecimal {
				rule = ExactDecimal
			}
			if !rule(tt.want, got) {
				t.Errorf("DecodeAnswer() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := DecodeAnswer(KindNumber, []byte(`"x"`)); err == nil {
		t.Error("DecodeAnswer(number, string) expected error")
	}
}

func TestInstance_MarshalJSON(t *testing.T) {
	inst := New(MazeRunner, MazeQuestion{Maze: Grid{{1, 1}, {0, 1}}, Size: 2}, Path{{0, 0}, {0, 1}, {1, 1}})
	data, err := json.Marshal(inst)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"type":"maze-runner"`, `"correctAnswer":[[0,0],[0,1],[1,1]]`, `"maze":[[1,1],[0,1]]`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}
	if strings.Contains(s, `"options"`) {
		t.Errorf("JSON %s should omit empty options", s)
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 500 {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestDollars(t *testing.T) {
	if got := Dollars(41); got != "$0.41" {
		t.Errorf("Dollars(41) = %q", got)
	}
	if got := Dollars(125); got != "$1.25" {
		t.Errorf("Dollars(125) = %q", got)
	}
}
