// dungeon-crawler plays one run of the room-sequence dungeon in the terminal.
// Configuration comes from the environment: DUNGEON_SEED,
// DUNGEON_BALANCE_FILE, DUNGEON_RUNLOG_DIR and DUNGEON_LOG_LEVEL. The
// -seed and -balance flags override their env values.
package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/console"
	"dungeon-crawler/internal/session"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("error: %v", err)
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	bal, err := cfg.Balance()
	if err != nil {
		config.Exitf("error: %v", err)
	}

	// The screen owns the terminal, so logs go next to the run log.
	logOut, closeLog := openLogFile(cfg.RunLogDir)
	defer closeLog()
	logger, err := cfg.Logger(logOut)
	if err != nil {
		config.Exitf("error: %v", err)
	}

	store := session.NewStore(session.Options{
		Balance: bal,
		Seed:    cfg.Seed,
		RunLog:  session.NewRunLog(cfg.RunLogDir, logger),
		Logger:  logger,
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		config.Exitf("error: create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		config.Exitf("error: init screen: %v", err)
	}
	defer screen.Fini()

	c, err := console.New(screen, store, logger)
	if err != nil {
		screen.Fini()
		config.Exitf("error: %v", err)
	}
	c.Run()
}

func openLogFile(dir string) (io.Writer, func()) {
	if dir == "" {
		d, err := session.DefaultDir()
		if err != nil {
			return io.Discard, func() {}
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "dungeon-crawler.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
