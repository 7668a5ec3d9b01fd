// Package httpapi serves the game catalog, fresh instances, grading and the
// leaderboard as JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/kidarcade/internal/dispatch"
	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/registry"
	"github.com/abhisek/kidarcade/internal/scores"
)

// Server bundles the router with the services it reads from.
type Server struct {
	r      *chi.Mux
	scores *scores.Store

	// mu guards rng; handlers run concurrently.
	mu  sync.Mutex
	rng *rand.Rand
}

// New builds the server and registers its routes. sc may be nil, in which
// case the leaderboard is always empty.
func New(sc *scores.Store, rng *rand.Rand) *Server {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &Server{r: chi.NewRouter(), scores: sc, rng: rng}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	s.r.Route("/api", func(r chi.Router) {
		r.Get("/games", s.handleListGames)
		r.Route("/games/{gameID}", func(r chi.Router) {
			r.Get("/", s.handleGetGame)
			r.Get("/instance", s.handleInstance)
			r.Post("/grade", s.handleGrade)
		})
		r.Get("/leaderboard", s.handleLeaderboard)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Handler exposes the router, for tests and http.Server.
func (s *Server) Handler() http.Handler { return s.r }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("http api listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("http api shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// gameJSON is the public description of a catalog entry.
type gameJSON struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	AgeRange    registry.AgeRange `json:"ageRange"`
	Description string            `json:"description"`
	AnswerKind  string            `json:"answerKind,omitempty"`
}

func toGameJSON(g registry.MiniGame) gameJSON {
	out := gameJSON{ID: g.ID, Name: g.Name, AgeRange: g.AgeRange, Description: g.Description}
	if rule, ok := game.RuleFor(game.Type(g.ID)); ok {
		out.AnswerKind = rule.Kind.String()
	}
	return out
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games := registry.All()
	if age := r.URL.Query().Get("age"); age != "" {
		band := registry.AgeRange(age)
		if !band.Valid() {
			writeError(w, http.StatusBadRequest, "unknown age range "+strconv.Quote(age))
			return
		}
		games = registry.ByAge(band)
	}

	out := make([]gameJSON, len(games))
	for i, g := range games {
		out[i] = toGameJSON(g)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, ok := registry.Get(chi.URLParam(r, "gameID"))
	if !ok {
		writeUnavailable(w)
		return
	}
	writeJSON(w, http.StatusOK, toGameJSON(g))
}

func (s *Server) handleInstance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "gameID")
	g, ok := registry.Get(id)
	if !ok {
		writeUnavailable(w)
		return
	}

	var inst game.Instance
	var state dispatch.State
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "seed must be an unsigned integer")
			return
		}
		d := dispatch.New(g.Generator, rand.New(rand.NewPCG(seed, seed)))
		inst, state = d.Current(), d.State()
	} else {
		s.mu.Lock()
		d := dispatch.New(g.Generator, s.rng)
		inst, state = d.Current(), d.State()
		s.mu.Unlock()
	}

	if state == dispatch.Unavailable {
		log.Warn().Str("game", id).Msg("instance type has no grading rule")
		writeUnavailable(w)
		return
	}
	writeJSON(w, http.StatusOK, inst)
}

// gradeRequest carries the instance as served plus the player's answer.
// Only the instance's type and correct answer are needed to grade.
type gradeRequest struct {
	Instance struct {
		Type          game.Type       `json:"type"`
		CorrectAnswer json.RawMessage `json:"correctAnswer"`
	} `json:"instance"`
	Answer json.RawMessage `json:"answer"`
}

type gradeResponse struct {
	Correct       bool        `json:"correct"`
	CorrectAnswer game.Answer `json:"correctAnswer"`
}

func (s *Server) handleGrade(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "gameID")
	if _, ok := registry.Get(id); !ok {
		writeUnavailable(w)
		return
	}

	var req gradeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Instance.Type != game.Type(id) {
		writeError(w, http.StatusBadRequest, "instance type does not match game")
		return
	}

	rule, ok := game.RuleFor(req.Instance.Type)
	if !ok {
		writeUnavailable(w)
		return
	}
	want, err := game.DecodeAnswer(rule.Kind, req.Instance.CorrectAnswer)
	if err != nil {
		writeError(w, http.StatusBadRequest, "instance.correctAnswer: "+err.Error())
		return
	}
	got, err := game.DecodeAnswer(rule.Kind, req.Answer)
	if err != nil {
		writeError(w, http.StatusBadRequest, "answer: "+err.Error())
		return
	}

	correct, err := game.Grade(game.Instance{Type: req.Instance.Type, Answer: want}, got)
	if err != nil {
		writeUnavailable(w)
		return
	}
	writeJSON(w, http.StatusOK, gradeResponse{Correct: correct, CorrectAnswer: want})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries := []scores.Entry{}
	if s.scores != nil {
		got, err := scores.Leaderboard(r.Context(), s.scores, registry.ScoreGames(registry.All()), scores.LeaderboardSize)
		if err != nil {
			log.Error().Err(err).Msg("build leaderboard")
			writeError(w, http.StatusInternalServerError, "leaderboard unavailable")
			return
		}
		if got != nil {
			entries = got
		}
	}
	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeUnavailable(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"status": "unavailable"})
}
