package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/scores"
	"github.com/abhisek/kidarcade/internal/store"
)

var testInst = game.New(game.OddEven, game.OddEvenQuestion{Number: 7}, game.Text("odd"), game.Text("odd"), game.Text("even"))

func newController(t *testing.T, best BestScores, opts ...Option) *Controller {
	t.Helper()
	return New(context.Background(), "odd-even", best, opts...)
}

func TestPoints(t *testing.T) {
	tests := []struct {
		name          string
		timed         bool
		timeRemaining int
		streakBefore  int
		want          int
	}{
		{"untimed first", false, 0, 0, 10},
		{"untimed streak 2", false, 0, 2, 14},
		{"untimed ignores clock", false, 30, 0, 10},
		{"race full clock", true, 30, 0, 20},
		{"race floor", true, 29, 1, 21},
		{"race empty clock", true, 0, 3, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Points(tt.timed, tt.timeRemaining, tt.streakBefore); got != tt.want {
				t.Errorf("Points(%v, %d, %d) = %d, want %d", tt.timed, tt.timeRemaining, tt.streakBefore, got, tt.want)
			}
		})
	}
}

func TestNextStreakThreshold(t *testing.T) {
	tests := []struct{ current, want int }{
		{0, 5}, {4, 5}, {5, 10}, {9, 10}, {23, 25},
	}
	for _, tt := range tests {
		if got := NextStreakThreshold(tt.current); got != tt.want {
			t.Errorf("NextStreakThreshold(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestRecordAnswer_ThreeCorrectScore36(t *testing.T) {
	c := newController(t, nil)

	wantPoints := []int{10, 12, 14}
	for i, want := range wantPoints {
		r := c.RecordAnswer(testInst, true)
		if r.Points != want {
			t.Errorf("round %d points = %d, want %d", i+1, r.Points, want)
		}
	}
	if c.Score() != 36 {
		t.Errorf("score = %d, want 36", c.Score())
	}
	if c.Streak() != 3 {
		t.Errorf("streak = %d, want 3", c.Streak())
	}

	r := c.RecordAnswer(testInst, false)
	if r.Points != 0 || c.Streak() != 0 {
		t.Errorf("after miss: points=%d streak=%d, want 0 and 0", r.Points, c.Streak())
	}
	if c.Score() != 36 {
		t.Errorf("score after miss = %d, want 36", c.Score())
	}
	if c.Rounds() != 4 || c.Correct() != 3 {
		t.Errorf("rounds=%d correct=%d, want 4 and 3", c.Rounds(), c.Correct())
	}
}

func TestRecordAnswer_CelebrateEveryFifth(t *testing.T) {
	c := newController(t, nil)

	for i := 1; i <= 10; i++ {
		r := c.RecordAnswer(testInst, true)
		want := i == 5 || i == 10
		if r.Celebrate != want {
			t.Errorf("answer %d celebrate = %v, want %v", i, r.Celebrate, want)
		}
	}
}

func TestRace_TimeBonusAndCountdown(t *testing.T) {
	c := newController(t, nil, WithRaceSeconds(30))
	c.RecordAnswer(testInst, true)

	gen := c.StartRace(context.Background())
	if c.Score() != 0 || c.Streak() != 0 || c.Rounds() != 0 {
		t.Fatalf("race did not reset session: score=%d streak=%d rounds=%d", c.Score(), c.Streak(), c.Rounds())
	}
	if c.TimeRemaining() != 30 {
		t.Fatalf("time remaining = %d, want 30", c.TimeRemaining())
	}

	if r := c.RecordAnswer(testInst, true); r.Points != 20 {
		t.Errorf("points at 30s = %d, want 20", r.Points)
	}

	for range 28 {
		if res := c.Tick(gen); !res.Active {
			t.Fatalf("tick at %d not active", c.TimeRemaining())
		}
	}
	if c.TimeRemaining() != 2 {
		t.Fatalf("time remaining = %d, want 2", c.TimeRemaining())
	}
	if r := c.RecordAnswer(testInst, true); r.Points != 12 {
		t.Errorf("points at 2s with streak 1 = %d, want 12", r.Points)
	}

	c.Tick(gen)
	res := c.Tick(gen)
	if !res.Expired {
		t.Fatal("expected final tick to expire")
	}
	if c.Phase() != PhasePlaying {
		t.Fatal("expiry must wait for Expire")
	}
	if !c.Expire(context.Background(), gen) {
		t.Fatal("Expire returned false")
	}
	if c.Phase() != PhaseGameOver || c.CanPlay() {
		t.Errorf("phase = %v, want game over", c.Phase())
	}

	if r := c.RecordAnswer(testInst, true); r != (Round{}) {
		t.Errorf("answer after game over = %+v, want zero", r)
	}
	if c.Score() != 32 {
		t.Errorf("score = %d, want 32", c.Score())
	}
}

func TestRace_StaleTicksIgnored(t *testing.T) {
	c := newController(t, nil, WithRaceSeconds(5))
	old := c.StartRace(context.Background())
	gen := c.StartRace(context.Background())

	if res := c.Tick(old); res != (TickResult{}) {
		t.Errorf("stale tick applied: %+v", res)
	}
	if c.TimeRemaining() != 5 {
		t.Errorf("time remaining = %d, want 5", c.TimeRemaining())
	}

	c.StopRace(context.Background())
	if res := c.Tick(gen); res != (TickResult{}) {
		t.Errorf("tick after stop applied: %+v", res)
	}
	if c.Mode() != ModeUntimed {
		t.Errorf("mode = %v, want untimed", c.Mode())
	}
}

func TestRace_RestartAfterGameOver(t *testing.T) {
	c := newController(t, nil, WithRaceSeconds(1))
	gen := c.StartRace(context.Background())
	c.RecordAnswer(testInst, true)
	if !c.Tick(gen).Expired {
		t.Fatal("expected expiry")
	}
	c.Expire(context.Background(), gen)

	next := c.Restart(context.Background())
	if next == gen {
		t.Error("restart must issue a new timer generation")
	}
	if !c.CanPlay() || c.Score() != 0 || c.TimeRemaining() != 1 {
		t.Errorf("restart state: phase=%v score=%d time=%d", c.Phase(), c.Score(), c.TimeRemaining())
	}
}

func TestBestScore_PersistSequence(t *testing.T) {
	kv := store.NewMemoryKV()
	best := scores.NewStore(kv)
	ctx := context.Background()

	play := func(score int) {
		c := New(ctx, "tap-to-count", best)
		c.score = score
		c.Leave(ctx)
	}

	play(50)
	assertStored(t, kv, "50")
	play(30)
	assertStored(t, kv, "50")
	play(75)
	assertStored(t, kv, "75")
}

func assertStored(t *testing.T, kv store.KV, want string) {
	t.Helper()
	got, err := kv.Get(context.Background(), "best-score-tap-to-count")
	if err != nil {
		t.Fatalf("get best: %v", err)
	}
	if got != want {
		t.Errorf("stored best = %q, want %q", got, want)
	}
}

func TestBestScore_SavedOnExpiry(t *testing.T) {
	kv := store.NewMemoryKV()
	c := New(context.Background(), "odd-even", scores.NewStore(kv), WithRaceSeconds(1))
	gen := c.StartRace(context.Background())
	c.RecordAnswer(testInst, true)
	c.Tick(gen)
	c.Expire(context.Background(), gen)

	got, err := kv.Get(context.Background(), "best-score-odd-even")
	if err != nil || got != "10" {
		t.Errorf("best after expiry = %q, %v; want \"10\"", got, err)
	}
	if !c.NewBest() {
		t.Error("expected NewBest")
	}
}

type brokenScores struct{ writes int }

func (b *brokenScores) Best(context.Context, string) (int, bool, error) {
	return 0, false, errors.New("read failed")
}

func (b *brokenScores) SetBestIfHigher(context.Context, string, int) (bool, error) {
	b.writes++
	return false, errors.New("write failed")
}

func TestBestScore_StoreFailuresAreBestEffort(t *testing.T) {
	bs := &brokenScores{}
	c := newController(t, bs)
	if c.Best() != 0 {
		t.Errorf("best after read failure = %d, want 0", c.Best())
	}
	c.RecordAnswer(testInst, true)

	sum := c.Leave(context.Background())
	if bs.writes != 1 {
		t.Errorf("SetBestIfHigher calls = %d, want 1", bs.writes)
	}
	if sum.Score != 10 || sum.Rounds != 1 || sum.Accuracy != 1 {
		t.Errorf("summary = %+v", sum)
	}

	c.Leave(context.Background())
	if bs.sets != 1 {
		t.Errorf("second Leave wrote again: %d calls", bs.sets)
	}
}

func TestEventsRecorded(t *testing.T) {
	s, err := store.Open("file:session_events?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()
	repo := s.EventRepo()

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := newController(t, nil, WithEvents(repo), WithClock(func() time.Time {
		clock = clock.Add(2 * time.Second)
		return clock
	}))
	c.RecordAnswer(testInst, true)
	c.RecordAnswer(testInst, false)
	c.Leave(context.Background())

	ctx := context.Background()
	rounds, err := repo.QueryRounds(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query rounds: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("rounds = %d, want 2", len(rounds))
	}
	if rounds[0].Points != 10 || rounds[0].TimeMs != 2000 || rounds[0].InstanceType != "odd-even" {
		t.Errorf("first round = %+v", rounds[0])
	}

	sessions, err := repo.QuerySessions(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	if len(sessions) != 2 || sessions[0].Action != "start" || sessions[1].Action != "end" {
		t.Fatalf("sessions = %+v", sessions)
	}
	if sessions[1].Score != 10 || sessions[1].Rounds != 2 {
		t.Errorf("end event = %+v", sessions[1])
	}
}

func TestStartRace_SavesUntimedRunFirst(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()
	c := New(ctx, "tap-to-count", scores.NewStore(kv))
	c.RecordAnswer(testInst, true)
	c.RecordAnswer(testInst, true)

	c.StartRace(ctx)
	assertStored(t, kv, "22")
	if c.Score() != 0 {
		t.Errorf("score after race start = %d, want 0", c.Score())
	}
}

func TestStopRace_DoesNotCarryRacePoints(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()
	c := New(ctx, "tap-to-count", scores.NewStore(kv), WithRaceSeconds(30))
	c.StartRace(ctx)
	c.RecordAnswer(testInst, true) // 20 with a full clock

	c.StopRace(ctx)
	assertStored(t, kv, "20")
	if c.Score() != 0 || c.Rounds() != 0 || c.TimeRemaining() != 0 {
		t.Fatalf("after stop: score=%d rounds=%d time=%d", c.Score(), c.Rounds(), c.TimeRemaining())
	}

	c.RecordAnswer(testInst, true)
	c.Leave(ctx)
	assertStored(t, kv, "20")
}

func TestBestScore_StoredHigherElsewhere(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()
	c := New(ctx, "tap-to-count", scores.NewStore(kv))
	c.RecordAnswer(testInst, true)

	// Another device records 90 after this session loaded its best.
	if err := kv.Set(ctx, "best-score-tap-to-count", "90"); err != nil {
		t.Fatal(err)
	}
	c.Leave(ctx)

	assertStored(t, kv, "90")
	if c.NewBest() {
		t.Error("NewBest = true, want false")
	}
	if c.Best() != 90 {
		t.Errorf("best = %d, want 90", c.Best())
	}
}
