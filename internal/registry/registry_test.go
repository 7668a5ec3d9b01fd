package registry

import (
	"strings"
	"testing"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/gamegen"
)

func TestGet_Exists(t *testing.T) {
	g, ok := Get("mini-sudoku")
	if !ok {
		t.Fatal("Get(mini-sudoku) not found")
	}
	if g.AgeRange != Age7to8 {
		t.Errorf("got age range %q, want %q", g.AgeRange, Age7to8)
	}
	if g.Name != "Mini Sudoku 4×4" {
		t.Errorf("got name %q", g.Name)
	}
}

func TestGet_NotFound(t *testing.T) {
	if _, ok := Get("laser-tag"); ok {
		t.Error("Get(laser-tag) should not be found")
	}
}

func TestAll_Count(t *testing.T) {
	if n := len(All()); n != 32 {
		t.Errorf("got %d games, want 32", n)
	}
}

func TestByAge(t *testing.T) {
	tests := []struct {
		age   AgeRange
		first string
	}{
		{Age3to4, "tap-to-count"},
		{Age5to6, "number-line"},
		{Age7to8, "mini-sudoku"},
		{Age9to10, "mental-math"},
	}
	for _, tt := range tests {
		games := ByAge(tt.age)
		if len(games) != 8 {
			t.Errorf("ByAge(%q): got %d games, want 8", tt.age, len(games))
			continue
		}
		if games[0].ID != tt.first {
			t.Errorf("ByAge(%q)[0] = %q, want %q", tt.age, games[0].ID, tt.first)
		}
		for _, g := range games {
			if g.AgeRange != tt.age {
				t.Errorf("ByAge(%q) returned %q from %q", tt.age, g.ID, g.AgeRange)
			}
		}
	}

	if games := ByAge("11-12"); len(games) != 0 {
		t.Errorf("ByAge(11-12) = %d games, want 0", len(games))
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"
	if g, _ := Get(all[0].ID); g.Name == "changed" {
		t.Error("All() should return a copy")
	}
}

func TestEveryGameHasGradingRule(t *testing.T) {
	for _, id := range IDs() {
		if !game.Known(game.Type(id)) {
			t.Errorf("game %q has no grading rule", id)
		}
	}
}

func TestValidate_SeedCatalogPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestValidateGames_DetectsProblems(t *testing.T) {
	games := []MiniGame{
		{ID: "tap-to-count", AgeRange: Age3to4, Generator: gamegen.TapToCountGen},
		{ID: "tap-to-count", AgeRange: Age3to4, Generator: gamegen.TapToCountGen},
		{ID: "odd-even", AgeRange: Age5to6, Generator: gamegen.ShapeMatchGen},
		{ID: "orphan", AgeRange: "1-2"},
	}
	err := validateGames(games)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{
		`duplicate game ID: "tap-to-count"`,
		`game "odd-even" generates type "shape-match"`,
		`unknown age range "1-2"`,
		`game "orphan" has no generator`,
		`age range "7-8" has no games`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}

func TestScoreGames(t *testing.T) {
	got := ScoreGames(ByAge(Age9to10))
	if len(got) != 8 {
		t.Fatalf("expected 8 games, got %d", len(got))
	}
	for i, g := range ByAge(Age9to10) {
		if got[i].ID != g.ID || got[i].Name != g.Name {
			t.Errorf("entry %d = %+v, want %s/%s", i, got[i], g.ID, g.Name)
		}
	}
}

func TestAgeRange_Index(t *testing.T) {
	for i, a := range AgeRanges() {
		if got := a.Index(); got != i {
			t.Errorf("%s.Index() = %d, want %d", a, got, i)
		}
	}
	if got := AgeRange("11-12").Index(); got != -1 {
		t.Errorf("unknown band index = %d, want -1", got)
	}
}
