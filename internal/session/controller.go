package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/store"
)

// DefaultRaceSeconds is the race-mode countdown length.
const DefaultRaceSeconds = 30

// Mode selects untimed or race play.
type Mode int

const (
	ModeUntimed Mode = iota
	ModeRace
)

func (m Mode) String() string {
	if m == ModeRace {
		return "race"
	}
	return "untimed"
}

// Phase is the controller's lifecycle phase.
type Phase int

const (
	PhasePlaying  Phase = iota // Instances are being served
	PhaseGameOver              // Race clock ran out; waiting for Restart
	PhaseLeft                  // Player left the game
)

// BestScores is the persistence seam for per-game best scores.
// SetBestIfHigher reports whether the stored best was replaced.
type BestScores interface {
	Best(ctx context.Context, gameID string) (int, bool, error)
	SetBestIfHigher(ctx context.Context, gameID string, score int) (bool, error)
}

// Round is the result of recording one graded answer.
type Round struct {
	Correct   bool
	Points    int
	Streak    int
	Score     int
	Celebrate bool
}

// TickResult reports what a countdown tick did.
type TickResult struct {
	// Active is true when the tick was applied and the clock is still running.
	Active bool
	// Expired is true when this tick took the clock to zero.
	Expired bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithRaceSeconds overrides the race countdown length.
func WithRaceSeconds(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.raceSeconds = n
		}
	}
}

// WithEvents records rounds and sessions to the play history.
func WithEvents(repo store.EventRepo) Option {
	return func(c *Controller) { c.events = repo }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the logger used for best-effort failures.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller owns the state of one play session: score, streak, rounds,
// the optional race countdown and the best score for the game.
type Controller struct {
	gameID      string
	sessionID   string
	scores      BestScores
	events      store.EventRepo
	logger      zerolog.Logger
	now         func() time.Time
	raceSeconds int

	mode          Mode
	phase         Phase
	score         int
	streak        int
	rounds        int
	correct       int
	timeRemaining int
	timerGen      int

	best      int
	newBest   bool
	startedAt time.Time
	answerAt  time.Time
}

// New starts an untimed session for gameID and loads its best score.
// A failed read counts as no best score.
func New(ctx context.Context, gameID string, scores BestScores, opts ...Option) *Controller {
	c := &Controller{
		gameID:      gameID,
		sessionID:   uuid.NewString(),
		scores:      scores,
		logger:      log.Logger,
		now:         time.Now,
		raceSeconds: DefaultRaceSeconds,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("game", gameID).Str("session", c.sessionID).Logger()
	c.startedAt = c.now()
	c.answerAt = c.startedAt

	if scores != nil {
		best, ok, err := scores.Best(ctx, gameID)
		if err != nil {
			c.logger.Warn().Err(err).Msg("load best score")
		} else if ok {
			c.best = best
		}
	}

	c.recordSession(ctx, "start")
	return c
}

func (c *Controller) GameID() string     { return c.gameID }
func (c *Controller) SessionID() string  { return c.sessionID }
func (c *Controller) Mode() Mode         { return c.mode }
func (c *Controller) Phase() Phase       { return c.phase }
func (c *Controller) Score() int         { return c.score }
func (c *Controller) Streak() int        { return c.streak }
func (c *Controller) Rounds() int        { return c.rounds }
func (c *Controller) Correct() int       { return c.correct }
func (c *Controller) TimeRemaining() int { return c.timeRemaining }
func (c *Controller) Best() int          { return c.best }
func (c *Controller) NewBest() bool      { return c.newBest }
func (c *Controller) RaceSeconds() int   { return c.raceSeconds }

// TimerGen identifies the live countdown. Ticks carrying any other value
// are stale.
func (c *Controller) TimerGen() int { return c.timerGen }

// CanPlay reports whether new instances may be served.
func (c *Controller) CanPlay() bool { return c.phase == PhasePlaying }

// StartRace saves the best score of the run so far, resets the session and
// starts the countdown. It returns the timer generation the host must
// attach to its tick messages.
func (c *Controller) StartRace(ctx context.Context) int {
	c.persistBest(ctx)
	c.mode = ModeRace
	c.reset()
	c.timeRemaining = c.raceSeconds
	c.timerGen++
	c.logger.Debug().Int("seconds", c.raceSeconds).Msg("race started")
	return c.timerGen
}

// StopRace cancels the countdown, saves the best score and returns to a
// fresh untimed run. Race points never carry into untimed play.
func (c *Controller) StopRace(ctx context.Context) {
	if c.mode != ModeRace {
		return
	}
	c.timerGen++
	c.persistBest(ctx)
	c.mode = ModeUntimed
	c.reset()
}

// Tick applies one second of countdown for timer generation gen.
func (c *Controller) Tick(gen int) TickResult {
	if gen != c.timerGen || c.mode != ModeRace || c.phase != PhasePlaying || c.timeRemaining <= 0 {
		return TickResult{}
	}
	c.timeRemaining--
	if c.timeRemaining == 0 {
		return TickResult{Expired: true}
	}
	return TickResult{Active: true}
}

// Expire ends the race for timer generation gen: the phase becomes
// GameOver and the best score is saved. It reports whether the race
// actually ended.
func (c *Controller) Expire(ctx context.Context, gen int) bool {
	if gen != c.timerGen || c.mode != ModeRace || c.phase != PhasePlaying || c.timeRemaining > 0 {
		return false
	}
	c.phase = PhaseGameOver
	c.timerGen++
	c.persistBest(ctx)
	c.logger.Info().Int("score", c.score).Int("rounds", c.rounds).Msg("race over")
	return true
}

// Restart begins a fresh round of the current mode. In race mode it
// returns the new timer generation; otherwise 0.
func (c *Controller) Restart(ctx context.Context) int {
	if c.mode == ModeRace {
		return c.StartRace(ctx)
	}
	c.persistBest(ctx)
	c.reset()
	return 0
}

// RecordAnswer applies one graded answer. Answers outside the Playing
// phase are ignored and return a zero Round.
func (c *Controller) RecordAnswer(inst game.Instance, correct bool) Round {
	if c.phase != PhasePlaying {
		return Round{}
	}

	now := c.now()
	elapsed := now.Sub(c.answerAt)
	c.answerAt = now

	c.rounds++
	r := Round{Correct: correct}
	if correct {
		r.Points = Points(c.mode == ModeRace, c.timeRemaining, c.streak)
		c.score += r.Points
		c.streak++
		c.correct++
		r.Celebrate = IsMilestone(c.streak)
	} else {
		c.streak = 0
	}
	r.Streak = c.streak
	r.Score = c.score

	if c.events != nil {
		err := c.events.AppendRoundEvent(context.Background(), store.RoundEventData{
			SessionID:    c.sessionID,
			GameID:       c.gameID,
			InstanceID:   inst.ID,
			InstanceType: string(inst.Type),
			Correct:      correct,
			Points:       r.Points,
			Streak:       c.streak,
			Mode:         c.mode.String(),
			TimeMs:       elapsed.Milliseconds(),
		})
		if err != nil {
			c.logger.Warn().Err(err).Msg("record round")
		}
	}
	return r
}

// Leave cancels any countdown, saves the best score and closes the
// session. Calling it again does nothing.
func (c *Controller) Leave(ctx context.Context) Summary {
	if c.phase != PhaseLeft {
		c.timerGen++
		c.persistBest(ctx)
		c.phase = PhaseLeft
		c.recordSession(ctx, "end")
	}
	return BuildSummary(c)
}

func (c *Controller) reset() {
	c.phase = PhasePlaying
	c.score = 0
	c.streak = 0
	c.rounds = 0
	c.correct = 0
	c.timeRemaining = 0
	c.answerAt = c.now()
}

// persistBest saves the score when it beats the best known to this
// session. The store only accepts it when it also beats what is stored,
// which may be higher if another player wrote since New. Failures are
// logged and play continues.
func (c *Controller) persistBest(ctx context.Context) {
	if c.score <= c.best {
		return
	}
	score := c.score
	if c.scores == nil {
		c.best, c.newBest = score, true
		return
	}
	wrote, err := c.scores.SetBestIfHigher(ctx, c.gameID, score)
	switch {
	case err != nil:
		c.logger.Warn().Err(err).Int("score", score).Msg("save best score")
		c.best, c.newBest = score, true
	case wrote:
		c.best, c.newBest = score, true
		c.logger.Info().Int("score", score).Msg("new best score")
	default:
		if stored, ok, err := c.scores.Best(ctx, c.gameID); err == nil && ok {
			c.best = max(stored, score)
		}
	}
}

func (c *Controller) recordSession(ctx context.Context, action string) {
	if c.events == nil {
		return
	}
	err := c.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: c.sessionID,
		GameID:    c.gameID,
		Action:    action,
		Mode:      c.mode.String(),
		Score:     c.score,
		Rounds:    c.rounds,
		Correct:   c.correct,
		NewBest:   c.newBest,
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("action", action).Msg("record session")
	}
}
