package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"dungeon-crawler/internal/game"

	"github.com/google/uuid"
)

// Record is one line of runs.jsonl.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Session   string    `json:"session"`
	Seed      int64     `json:"seed"`
	Result    string    `json:"result"`
	game.Stats
}

// NewRecord builds the log line for a finished run.
func NewRecord(id uuid.UUID, seed int64, end *game.Ending) Record {
	return Record{
		Timestamp: time.Now().UTC(),
		Session:   id.String(),
		Seed:      seed,
		Result:    end.Result.String(),
		Stats:     end.Stats,
	}
}

// RunLog appends finished runs to runs.jsonl. Failures are logged and
// never reach the player.
type RunLog struct {
	mu     sync.Mutex
	dir    string
	logger *slog.Logger
}

// NewRunLog writes into dir, or the XDG data directory when dir is empty.
func NewRunLog(dir string, logger *slog.Logger) *RunLog {
	if logger == nil {
		logger = slog.Default()
	}
	return &RunLog{dir: dir, logger: logger}
}

// Path returns the log file path.
func (l *RunLog) Path() (string, error) {
	dir := l.dir
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, "runs.jsonl"), nil
}

// Append writes rec as a single JSON line.
func (l *RunLog) Append(rec Record) {
	path, err := l.Path()
	if err != nil {
		l.logger.Warn("run log: cannot determine data dir", "error", err)
		return
	}
	data, err := json.Marshal(rec)
	if err != nil {
		l.logger.Warn("run log: cannot marshal JSON", "error", err)
		return
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		l.logger.Warn("run log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		l.logger.Warn("run log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		l.logger.Warn("run log: cannot write", "error", err)
	}
}

// DefaultDir returns $XDG_DATA_HOME/dungeon-crawler, defaulting to
// ~/.local/share/dungeon-crawler.
func DefaultDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "dungeon-crawler"), nil
}
