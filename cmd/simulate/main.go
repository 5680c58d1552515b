// Command simulate plays many seeded runs headlessly and prints a summary.
// With -seed (or DUNGEON_SEED) set, run n is seeded with seed+n.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("error: %v", err)
	}
	cfg.BindFlags(flag.CommandLine)
	runs := flag.Int("runs", 100, "Number of runs to play")
	maxActions := flag.Int("max-actions", 2000, "Give up on a run after this many verbs")
	runLog := flag.Bool("runlog", false, "Append every ending to the run log")
	flag.Parse()

	bal, err := cfg.Balance()
	if err != nil {
		config.Exitf("error: %v", err)
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		config.Exitf("error: %v", err)
	}

	opts := session.Options{Balance: bal, Seed: cfg.Seed, Logger: logger}
	if *runLog {
		opts.RunLog = session.NewRunLog(cfg.RunLogDir, logger)
	}
	store := session.NewStore(opts)

	outcomes := make([]outcome, *runs)
	var wg sync.WaitGroup
	for i := range *runs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := store.Create()
			if err != nil {
				logger.Error("create session", "error", err)
				return
			}
			defer store.Remove(id)
			outcomes[i] = autoplay(store, id, *maxActions)
		}()
	}
	wg.Wait()

	sum := summarize(outcomes)
	fmt.Printf("runs:      %d\n", sum.Runs)
	fmt.Printf("wins:      %d\n", sum.Wins)
	fmt.Printf("defeats:   %d\n", sum.Defeats)
	fmt.Printf("stalled:   %d\n", sum.Stalled)
	fmt.Printf("avg depth: %.2f\n", sum.AvgDepth)
	for _, c := range sum.Causes {
		fmt.Printf("  killed by %-16s %d\n", c.Name, c.Count)
	}
}
