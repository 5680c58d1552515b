package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"dungeon-crawler/assets"
)

// Config is the process configuration shared by the console and the
// simulator.
type Config struct {
	// Seed makes sessions reproducible; 0 draws a fresh seed per session.
	Seed int64 `env:"DUNGEON_SEED" envDefault:"0"`
	// BalanceFile replaces the embedded balance tables when set.
	BalanceFile string `env:"DUNGEON_BALANCE_FILE"`
	// RunLogDir is where runs.jsonl is written; empty means the XDG data dir.
	RunLogDir string `env:"DUNGEON_RUNLOG_DIR"`
	LogLevel  string `env:"DUNGEON_LOG_LEVEL" envDefault:"info"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BindFlags registers -seed and -balance on fs. The current values, usually
// read from the environment, become the defaults, so a flag given on the
// command line wins over the env.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Seed for reproducible sessions (0 = random)")
	fs.StringVar(&c.BalanceFile, "balance", c.BalanceFile, "YAML file replacing the built-in balance tables")
}

// Balance returns the balance tables: the override file if configured,
// the embedded defaults otherwise.
func (c Config) Balance() (*assets.Balance, error) {
	if c.BalanceFile == "" {
		return assets.DefaultBalance(), nil
	}
	return LoadBalance(c.BalanceFile)
}

// Logger builds a text logger at the configured level.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// LoadBalance reads and validates a YAML balance file.
func LoadBalance(path string) (*assets.Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read balance file: %w", err)
	}
	b, err := assets.ParseBalance(data)
	if err != nil {
		return nil, fmt.Errorf("balance file %s: %w", path, err)
	}
	return b, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
