package main

import (
	"io"
	"log/slog"
	"testing"

	"dungeon-crawler/assets"
	"dungeon-crawler/internal/game"
	"dungeon-crawler/internal/session"
)

func newStore(seed int64) *session.Store {
	return session.NewStore(session.Options{
		Balance: assets.DefaultBalance(),
		Seed:    seed,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func playAll(t *testing.T, seed int64, runs, maxActions int) []outcome {
	t.Helper()
	s := newStore(seed)
	out := make([]outcome, 0, runs)
	for range runs {
		id, err := s.Create()
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		out = append(out, autoplay(s, id, maxActions))
	}
	return out
}

func TestAutoplayStaysWithinBudget(t *testing.T) {
	const maxActions = 500
	for i, o := range playAll(t, 11, 20, maxActions) {
		if o.Actions > maxActions+1 {
			t.Errorf("run %d: %d actions, budget %d", i, o.Actions, maxActions)
		}
		if o.Depth < 0 {
			t.Errorf("run %d: depth %d", i, o.Depth)
		}
		if o.Ended && o.Result == game.ResultWin && o.Cause != "" {
			t.Errorf("run %d: won with cause of death %q", i, o.Cause)
		}
	}
}

func TestAutoplayIsDeterministic(t *testing.T) {
	a := playAll(t, 3, 10, 400)
	b := playAll(t, 3, 10, 400)
	for i := range a {
		if a[i].Ended != b[i].Ended || a[i].Result != b[i].Result || a[i].Depth != b[i].Depth || a[i].Actions != b[i].Actions {
			t.Errorf("run %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestAutoplayMostlyFinishes(t *testing.T) {
	outs := playAll(t, 21, 30, 3000)
	sum := summarize(outs)
	if sum.Wins+sum.Defeats == 0 {
		t.Fatalf("no run ended: %+v", sum)
	}
}

func TestSummarize(t *testing.T) {
	sum := summarize([]outcome{
		{Ended: true, Result: game.ResultWin, Depth: 8},
		{Ended: true, Result: game.ResultDefeat, Depth: 3, Cause: "Skeletor"},
		{Ended: true, Result: game.ResultDefeat, Depth: 4, Cause: "Mimic"},
		{Ended: true, Result: game.ResultDefeat, Depth: 2, Cause: "Mimic"},
		{Depth: 3},
	})
	if sum.Runs != 5 || sum.Wins != 1 || sum.Defeats != 3 || sum.Stalled != 1 {
		t.Errorf("counts = %+v", sum)
	}
	if sum.AvgDepth != 4 {
		t.Errorf("avg depth = %v, want 4", sum.AvgDepth)
	}
	if len(sum.Causes) != 2 || sum.Causes[0] != (cause{"Mimic", 2}) || sum.Causes[1] != (cause{"Skeletor", 1}) {
		t.Errorf("causes = %+v", sum.Causes)
	}
	if empty := summarize(nil); empty.AvgDepth != 0 {
		t.Errorf("empty avg = %v", empty.AvgDepth)
	}
}
