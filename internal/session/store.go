// Package session keeps the games of many players apart. Each session owns
// its own game and random source; a verb holds the session's lock for its
// whole duration, so actions on one session never interleave while
// different sessions proceed in parallel.
package session

import (
	"log/slog"
	"sync"

	"dungeon-crawler/assets"
	"dungeon-crawler/internal/errors"
	"dungeon-crawler/internal/game"
	"dungeon-crawler/internal/random"

	"github.com/google/uuid"
)

// Options configures a Store.
type Options struct {
	Balance *assets.Balance
	// Seed, when non-zero, makes sessions reproducible: the n-th session
	// created is seeded with Seed+n. Zero draws a fresh seed per session.
	Seed   int64
	RunLog *RunLog
	Logger *slog.Logger
	// Generator overrides how each run builds its dungeon.
	Generator game.Generator
}

// Store maps session ids to games.
type Store struct {
	mu       sync.Mutex // guards sessions and created only
	sessions map[uuid.UUID]*entry
	created  int64

	bal    *assets.Balance
	seed   int64
	runLog *RunLog
	logger *slog.Logger
	gen    game.Generator
}

type entry struct {
	mu   sync.Mutex
	game *game.Game
	seed int64
}

// NewStore returns an empty store.
func NewStore(opts Options) *Store {
	if opts.Balance == nil {
		opts.Balance = assets.DefaultBalance()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Store{
		sessions: make(map[uuid.UUID]*entry),
		bal:      opts.Balance,
		seed:     opts.Seed,
		runLog:   opts.RunLog,
		logger:   opts.Logger,
		gen:      opts.Generator,
	}
}

// Create registers a new, unstarted session and returns its id.
func (s *Store) Create() (uuid.UUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, errors.Wrap(errors.CodeUnknown, "create session id", err)
	}
	s.mu.Lock()
	n := s.created
	s.created++
	s.mu.Unlock()

	seed := s.seed + n
	if s.seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return uuid.Nil, errors.Wrap(errors.CodeUnknown, "seed session", err)
		}
	}
	g := game.New(random.New(seed), s.bal)
	g.SetGenerator(s.gen)
	e := &entry{game: g, seed: seed}

	s.mu.Lock()
	s.sessions[id] = e
	s.mu.Unlock()
	s.logger.Info("session created", "session", id, "seed", seed)
	return id, nil
}

// Remove forgets a session.
func (s *Store) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return errors.ErrSessionNotFound
	}
	delete(s.sessions, id)
	s.logger.Info("session removed", "session", id)
	return nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Seed returns the seed a session was created with.
func (s *Store) Seed(id uuid.UUID) (int64, error) {
	e, err := s.lookup(id)
	if err != nil {
		return 0, err
	}
	return e.seed, nil
}

func (s *Store) lookup(id uuid.UUID) (*entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	return e, nil
}

// with runs fn on the session's game while holding its lock and logs the
// action at debug level.
func (s *Store) with(id uuid.UUID, action string, fn func(g *game.Game) error) error {
	e, err := s.lookup(id)
	if err != nil {
		s.logger.Debug("action", "session", id, "action", action, "error", err)
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	err = fn(e.game)
	s.logger.Debug("action", "session", id, "action", action, "error", err)
	return err
}

// ended records a finished run.
func (s *Store) ended(id uuid.UUID, end *game.Ending) {
	if end == nil {
		return
	}
	e, err := s.lookup(id)
	var seed int64
	if err == nil {
		seed = e.seed
	}
	s.logger.Info("run ended",
		"session", id,
		"result", end.Result.String(),
		"depth", end.Stats.Depth,
		"rooms", end.Stats.Rooms,
		"kills", end.Stats.TotalKills,
		"cause", end.Stats.CauseOfDeath,
	)
	if s.runLog != nil {
		s.runLog.Append(NewRecord(id, seed, end))
	}
}
