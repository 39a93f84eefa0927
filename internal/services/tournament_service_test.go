package services

import (
	"context"
	"math/rand"
	"testing"

	"connectfour/internal/bot"
)

func TestTournamentTalliesEveryGame(t *testing.T) {
	pub := &recordingPublisher{}
	ts := NewTournamentService(newTestService(pub), bot.NewWithSource(rand.NewSource(7)))
	res, err := ts.Run(context.Background(), bot.Advanced, bot.Random, 6)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Games != 6 || res.WinsA+res.WinsB+res.Draws != 6 {
		t.Fatalf("tallies do not add up: %+v", res)
	}
	if res.AvgMoves < 7 || res.AvgMoves > 42 {
		t.Fatalf("average game length out of range: %v", res.AvgMoves)
	}
	if len(pub.started) != 6 || len(pub.completed) != 6 {
		t.Fatalf("expected 6 started and completed events, got %d and %d", len(pub.started), len(pub.completed))
	}
	for i, e := range pub.started {
		want := "A (advanced)"
		if i%2 == 1 {
			want = "B (random)"
		}
		if e.FirstMove != want {
			t.Fatalf("game %d: expected %s to start, got %s", i, want, e.FirstMove)
		}
	}
}

func TestTournamentRejectsBadInput(t *testing.T) {
	ts := NewTournamentService(newTestService(nil), bot.NewWithSource(rand.NewSource(1)))
	if _, err := ts.Run(context.Background(), bot.Easy, bot.Normal, 0); err == nil {
		t.Fatalf("expected error for zero games")
	}
	if _, err := ts.Run(context.Background(), bot.Difficulty(9), bot.Normal, 1); err == nil {
		t.Fatalf("expected error for unknown difficulty")
	}
}

func TestTournamentStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ts := NewTournamentService(newTestService(nil), bot.NewWithSource(rand.NewSource(1)))
	res, err := ts.Run(ctx, bot.Easy, bot.Normal, 3)
	if err == nil {
		t.Fatalf("expected context error")
	}
	if res.Games != 0 {
		t.Fatalf("no game should have been played, got %d", res.Games)
	}
}
