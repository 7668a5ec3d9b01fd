package scores

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kidarcade/internal/store"
)

func TestBest_NoScore(t *testing.T) {
	s := NewStore(store.NewMemoryKV())

	_, ok, err := s.Best(context.Background(), "tap-to-count")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBest_Malformed(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, Key("odd-even"), "lots"))

	_, ok, err := NewStore(kv).Best(ctx, "odd-even")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetBestIfHigher_Sequence(t *testing.T) {
	kv := store.NewMemoryKV()
	s := NewStore(kv)
	ctx := context.Background()

	steps := []struct {
		score     int
		wantWrite bool
		wantRaw   string
	}{
		{50, true, "50"},
		{30, false, "50"},
		{75, true, "75"},
		{75, false, "75"},
	}
	for _, st := range steps {
		wrote, err := s.SetBestIfHigher(ctx, "quick-facts", st.score)
		require.NoError(t, err)
		assert.Equal(t, st.wantWrite, wrote, "score %d", st.score)

		raw, err := kv.Get(ctx, "best-score-quick-facts")
		require.NoError(t, err)
		assert.Equal(t, st.wantRaw, raw)
	}
}

func TestSetBestIfHigher_ZeroNotStored(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()

	wrote, err := NewStore(kv).SetBestIfHigher(ctx, "maze-runner", 0)
	require.NoError(t, err)
	assert.False(t, wrote)

	_, err = kv.Get(ctx, Key("maze-runner"))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

type failingKV struct{}

var errBackend = errors.New("backend down")

func (failingKV) Get(context.Context, string) (string, error) { return "", errBackend }
func (failingKV) Set(context.Context, string, string) error    { return errBackend }
func (failingKV) Delete(context.Context, string) error         { return errBackend }

func TestStore_BackendErrorsWrapped(t *testing.T) {
	s := NewStore(failingKV{})
	ctx := context.Background()

	_, _, err := s.Best(ctx, "coordinates")
	assert.ErrorIs(t, err, errBackend)
	assert.ErrorIs(t, s.SetBest(ctx, "coordinates", 5), errBackend)
	assert.ErrorIs(t, s.Reset(ctx, []string{"coordinates"}), errBackend)
}

func TestLeaderboard_Ranking(t *testing.T) {
	s := NewStore(store.NewMemoryKV())
	ctx := context.Background()
	require.NoError(t, s.SetBest(ctx, "a", 10))
	require.NoError(t, s.SetBest(ctx, "b", 30))
	require.NoError(t, s.SetBest(ctx, "c", 20))

	games := []Game{{"a", "A"}, {"b", "B"}, {"c", "C"}, {"d", "D"}}
	got, err := Leaderboard(ctx, s, games, 0)
	require.NoError(t, err)

	want := []Entry{
		{Rank: 1, GameID: "b", Name: "B", Score: 30},
		{Rank: 2, GameID: "c", Name: "C", Score: 20},
		{Rank: 3, GameID: "a", Name: "A", Score: 10},
	}
	assert.Equal(t, want, got)
}

func TestLeaderboard_TopTenAndTies(t *testing.T) {
	s := NewStore(store.NewMemoryKV())
	ctx := context.Background()

	var games []Game
	for i := range 12 {
		id := fmt.Sprintf("g%02d", i)
		games = append(games, Game{ID: id, Name: id})
		require.NoError(t, s.SetBest(ctx, id, 100))
	}
	require.NoError(t, s.SetBest(ctx, "g11", 500))

	got, err := Leaderboard(ctx, s, games, 0)
	require.NoError(t, err)
	require.Len(t, got, LeaderboardSize)
	assert.Equal(t, "g11", got[0].GameID)
	assert.Equal(t, "g00", got[1].GameID)
	assert.Equal(t, "g08", got[9].GameID)
	assert.Equal(t, 10, got[9].Rank)
}

func TestAllAndReset(t *testing.T) {
	s := NewStore(store.NewMemoryKV())
	ctx := context.Background()
	require.NoError(t, s.SetBest(ctx, "x", 7))

	all, err := s.All(ctx, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"x": 7}, all)

	require.NoError(t, s.Reset(ctx, []string{"x", "y"}))
	all, err = s.All(ctx, []string{"x", "y"})
	require.NoError(t, err)
	assert.Empty(t, all)
}

// flakyKV fails reads for one key and passes everything else through.
type flakyKV struct {
	store.KV
	bad string
}

func (f flakyKV) Get(ctx context.Context, key string) (string, error) {
	if key == f.bad {
		return "", errBackend
	}
	return f.KV.Get(ctx, key)
}

func TestUnreadableScoreCountsAsNone(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := NewStore(flakyKV{KV: kv, bad: Key("c")})
	require.NoError(t, s.SetBest(ctx, "a", 10))
	require.NoError(t, s.SetBest(ctx, "b", 30))
	require.NoError(t, s.SetBest(ctx, "c", 50))

	got, err := Leaderboard(ctx, s, []Game{{"a", "A"}, {"b", "B"}, {"c", "C"}}, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].GameID)
	assert.Equal(t, "a", got[1].GameID)

	all, err := s.All(ctx, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 10, "b": 30}, all)
}

func TestCancelledContextStillFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewStore(failingKV{})

	_, err := s.All(ctx, []string{"a"})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = Leaderboard(ctx, s, []Game{{"a", "A"}}, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
