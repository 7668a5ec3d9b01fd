package dispatch

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/gamegen"
	"github.com/abhisek/kidarcade/internal/session"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

type fakeRecorder struct {
	calls   int
	correct []bool
}

func (f *fakeRecorder) RecordAnswer(_ game.Instance, correct bool) session.Round {
	f.calls++
	f.correct = append(f.correct, correct)
	if correct {
		return session.Round{Correct: true, Points: 10, Streak: f.calls}
	}
	return session.Round{}
}

func TestSubmitCorrectThenContinue(t *testing.T) {
	rec := &fakeRecorder{}
	d := New(gamegen.QuickFactsGen, newRand(), WithRecorder(rec))
	if d.State() != Presenting {
		t.Fatalf("initial state = %v, want presenting", d.State())
	}
	first := d.Current()

	out, err := d.Submit(first.Answer)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !out.Correct || out.Round.Points != 10 {
		t.Errorf("outcome = %+v, want correct with 10 points", out)
	}
	if d.State() != Result || d.Last() == nil {
		t.Fatalf("state = %v, want result", d.State())
	}

	next, err := d.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if next.ID == first.ID {
		t.Error("Continue must draw a new instance")
	}
	if d.State() != Presenting || d.Last() != nil {
		t.Errorf("after continue: state=%v last=%v", d.State(), d.Last())
	}
	if rec.calls != 1 {
		t.Errorf("recorder calls = %d, want 1", rec.calls)
	}
}

func TestSubmitIncorrect(t *testing.T) {
	rec := &fakeRecorder{}
	d := New(gamegen.OddEvenGen, newRand(), WithRecorder(rec))

	wrong := game.Text("odd")
	if d.Current().Answer == wrong {
		wrong = game.Text("even")
	}
	out, err := d.Submit(wrong)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out.Correct {
		t.Error("expected incorrect outcome")
	}
	if len(rec.correct) != 1 || rec.correct[0] {
		t.Errorf("recorder saw %v, want [false]", rec.correct)
	}
}

func TestWrongStateTransitions(t *testing.T) {
	d := New(gamegen.TapToCountGen, newRand())

	if _, err := d.Continue(); !errors.Is(err, ErrWrongState) {
		t.Errorf("Continue while presenting: err = %v, want ErrWrongState", err)
	}
	if _, err := d.Submit(d.Current().Answer); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := d.Submit(d.Current().Answer); !errors.Is(err, ErrWrongState) {
		t.Errorf("Submit while result: err = %v, want ErrWrongState", err)
	}
}

func TestExitFromAnyState(t *testing.T) {
	d := New(gamegen.ColorMixGen, newRand())
	d.Exit()
	d.Exit()
	if d.State() != Exited {
		t.Fatalf("state = %v, want exited", d.State())
	}
	if _, err := d.Submit(d.Current().Answer); !errors.Is(err, ErrWrongState) {
		t.Errorf("Submit after exit: err = %v", err)
	}

	d = New(gamegen.ColorMixGen, newRand())
	d.Submit(d.Current().Answer)
	d.Exit()
	if d.State() != Exited {
		t.Errorf("exit from result: state = %v", d.State())
	}
}

func TestForGame(t *testing.T) {
	d := ForGame("mini-sudoku", newRand())
	if d.State() != Presenting {
		t.Fatalf("state = %v, want presenting", d.State())
	}
	if d.Current().Type != game.MiniSudoku {
		t.Errorf("type = %q, want mini-sudoku", d.Current().Type)
	}

	d = ForGame("rocket-launch", newRand())
	if d.State() != Unavailable {
		t.Errorf("unknown game state = %v, want unavailable", d.State())
	}
	d.Exit()
	if d.State() != Exited {
		t.Errorf("exit from unavailable: state = %v", d.State())
	}
}

func TestUnknownInstanceType(t *testing.T) {
	gen := func(*rand.Rand) game.Instance {
		return game.Instance{ID: game.NewID(), Type: "time-travel", Answer: game.Number(1)}
	}
	d := New(gen, newRand())
	if d.State() != Unavailable {
		t.Fatalf("state = %v, want unavailable", d.State())
	}
	if _, err := d.Submit(game.Number(1)); !errors.Is(err, ErrWrongState) {
		t.Errorf("Submit on unavailable: err = %v", err)
	}
}

func TestGradingIdempotent(t *testing.T) {
	d := New(gamegen.ClockMasterGen, newRand())
	inst := d.Current()
	for range 100 {
		d = &Dispatcher{gen: gamegen.ClockMasterGen, rng: newRand(), state: Presenting, current: inst}
		out, err := d.Submit(inst.Answer)
		if err != nil || !out.Correct {
			t.Fatalf("Submit(correct) = %+v, %v", out, err)
		}
	}
}
