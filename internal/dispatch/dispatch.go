// Package dispatch runs the present, grade, advance loop for one game.
package dispatch

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/gamegen"
	"github.com/abhisek/kidarcade/internal/registry"
	"github.com/abhisek/kidarcade/internal/session"
)

// ErrWrongState is returned when an action is not allowed in the current state.
var ErrWrongState = errors.New("action not allowed in current state")

// State is the dispatcher's position in the play loop.
type State int

const (
	Presenting  State = iota // An instance is shown, awaiting an answer
	Result                   // The last answer was graded
	Exited                   // The player backed out
	Unavailable              // Unknown game or instance type
)

func (s State) String() string {
	switch s {
	case Presenting:
		return "presenting"
	case Result:
		return "result"
	case Exited:
		return "exited"
	case Unavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Recorder is told about every graded answer.
type Recorder interface {
	RecordAnswer(inst game.Instance, correct bool) session.Round
}

// Outcome is the result of grading one submission.
type Outcome struct {
	Correct   bool
	Submitted game.Answer
	Instance  game.Instance
	Round     session.Round
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRecorder notifies r after each graded answer.
func WithRecorder(r Recorder) Option {
	return func(d *Dispatcher) { d.recorder = r }
}

// Dispatcher owns the transient present/result state for one game. It is
// not safe for concurrent use.
type Dispatcher struct {
	gen      gamegen.Generator
	rng      *rand.Rand
	recorder Recorder

	state   State
	current game.Instance
	last    *Outcome
}

// New draws the first instance from gen. A nil generator, or an instance
// whose type has no grading rule, leaves the dispatcher Unavailable.
func New(gen gamegen.Generator, rng *rand.Rand, opts ...Option) *Dispatcher {
	d := &Dispatcher{gen: gen, rng: rng}
	for _, opt := range opts {
		opt(d)
	}
	if gen == nil {
		d.state = Unavailable
		return d
	}
	d.present()
	return d
}

// ForGame looks gameID up in the registry. Unknown ids yield an
// Unavailable dispatcher rather than an error.
func ForGame(gameID string, rng *rand.Rand, opts ...Option) *Dispatcher {
	g, ok := registry.Get(gameID)
	if !ok {
		return New(nil, rng, opts...)
	}
	return New(g.Generator, rng, opts...)
}

func (d *Dispatcher) present() {
	d.current = d.gen(d.rng)
	d.last = nil
	if !game.Known(d.current.Type) {
		d.state = Unavailable
		return
	}
	d.state = Presenting
}

// State returns the current state.
func (d *Dispatcher) State() State { return d.state }

// Current returns the instance on screen. It is the zero Instance when
// the dispatcher is Unavailable before any instance was drawn.
func (d *Dispatcher) Current() game.Instance { return d.current }

// Last returns the most recent outcome, or nil while Presenting.
func (d *Dispatcher) Last() *Outcome { return d.last }

// Submit grades answer against the current instance and moves to Result.
func (d *Dispatcher) Submit(answer game.Answer) (Outcome, error) {
	if d.state != Presenting {
		return Outcome{}, fmt.Errorf("submit while %s: %w", d.state, ErrWrongState)
	}
	correct, err := game.Grade(d.current, answer)
	if err != nil {
		d.state = Unavailable
		return Outcome{}, err
	}

	out := Outcome{Correct: correct, Submitted: answer, Instance: d.current}
	if d.recorder != nil {
		out.Round = d.recorder.RecordAnswer(d.current, correct)
	}
	d.last = &out
	d.state = Result
	return out, nil
}

// Continue draws a new instance from the same generator.
func (d *Dispatcher) Continue() (game.Instance, error) {
	if d.state != Result {
		return game.Instance{}, fmt.Errorf("continue while %s: %w", d.state, ErrWrongState)
	}
	d.present()
	return d.current, nil
}

// Exit leaves the loop. It is allowed from every state and is idempotent.
func (d *Dispatcher) Exit() {
	d.state = Exited
}
