package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/kidarcade/internal/app"
	"github.com/abhisek/kidarcade/internal/config"
	"github.com/abhisek/kidarcade/internal/logging"
	"github.com/abhisek/kidarcade/internal/registry"
	"github.com/abhisek/kidarcade/internal/scores"
	"github.com/abhisek/kidarcade/internal/store"
)

// env holds what every command needs once flags and config are resolved.
type env struct {
	cfg    *config.Config
	store  *store.Store
	scores *scores.Store
	rng    *rand.Rand

	closers []io.Closer
}

// setup loads config, configures logging, opens the database and picks the
// score backend. Callers must Close the env.
func setup(cmd *cobra.Command) (*env, error) {
	ctx := cmd.Context()
	flags := cmd.Flags()

	cfgPath, _ := flags.GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if console, _ := flags.GetBool("log-console"); console {
		cfg.Log.Console = true
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}

	e := &env{cfg: cfg}
	logCloser, err := logging.Setup(cfg)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	e.closers = append(e.closers, logCloser)

	if err := registry.Validate(); err != nil {
		log.Warn().Err(err).Msg("game catalog has problems")
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.store = st
	e.closers = append(e.closers, st)

	switch cfg.ScoreBackend {
	case config.BackendRedis:
		kv, err := store.DialRedis(ctx, cfg.RedisAddr)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("connect score backend: %w", err)
		}
		e.closers = append(e.closers, kv)
		e.scores = scores.NewStore(kv)
	case config.BackendMemory:
		e.scores = scores.NewStore(store.NewMemoryKV())
	default:
		e.scores = scores.NewStore(st.KV())
	}

	e.rng = newRand(cfg.Seed)
	log.Info().
		Str("db", dbPath).
		Str("scores", cfg.ScoreBackend).
		Uint64("seed", cfg.Seed).
		Msg("kidarcade starting")
	return e, nil
}

// Close releases resources in reverse order of acquisition.
func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then KIDARCADE_DB or the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// newRand returns a PCG source seeded with seed, or with the clock when
// seed is zero.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, gameID string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	return app.Run(app.Options{
		Scores:      e.scores,
		Events:      e.store.EventRepo(),
		Rand:        e.rng,
		RaceSeconds: e.cfg.RaceSeconds,
		GameID:      gameID,
	})
}
