package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"connectfour/internal/board"
	"connectfour/internal/models"
)

type scripted struct {
	columns []int
	err     error
	calls   int
}

func (s *scripted) ChooseMove(ctx context.Context, b board.Board, token board.Token) (int, error) {
	if s.calls >= len(s.columns) {
		if s.err != nil {
			return 0, s.err
		}
		return 0, errors.New("script exhausted")
	}
	col := s.columns[s.calls]
	s.calls++
	return col, nil
}

type recordingPublisher struct {
	started   []models.GameStartedEvent
	moves     []models.MoveMadeEvent
	completed []models.GameCompletedEvent
}

func (p *recordingPublisher) PublishGameStarted(_ context.Context, e models.GameStartedEvent) error {
	p.started = append(p.started, e)
	return nil
}

func (p *recordingPublisher) PublishMoveMade(_ context.Context, e models.MoveMadeEvent) error {
	p.moves = append(p.moves, e)
	return nil
}

func (p *recordingPublisher) PublishGameCompleted(_ context.Context, e models.GameCompletedEvent) error {
	p.completed = append(p.completed, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func seats(a, b MoveProvider) (Seat, Seat) {
	return Seat{Name: "Alice", Token: board.PlayerA, Provider: a, Human: true},
		Seat{Name: "Bob", Token: board.PlayerB, Provider: b, Human: true}
}

func newTestService(p EventPublisher) *GameService {
	return NewGameServiceWithSource(p, rand.NewSource(1))
}

func TestPlayVerticalWin(t *testing.T) {
	pub := &recordingPublisher{}
	gs := newTestService(pub)
	a, b := seats(&scripted{columns: []int{0, 0, 0, 0}}, &scripted{columns: []int{1, 1, 1}})
	g, err := gs.NewGame(a, b, 0)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if err := gs.Play(context.Background(), g, nil); err != nil {
		t.Fatalf("play: %v", err)
	}

	if g.Status != models.GameStatusWon || g.Winner == nil || g.Winner.Name != "Alice" {
		t.Fatalf("expected Alice to win, got status %s winner %+v", g.Status, g.Winner)
	}
	if g.MoveCount != 7 || g.LastCell != 14 {
		t.Fatalf("expected 7 moves ending on cell 14, got %d moves cell %d", g.MoveCount, g.LastCell)
	}
	if len(pub.started) != 1 || len(pub.moves) != 7 || len(pub.completed) != 1 {
		t.Fatalf("unexpected events: %d started, %d moves, %d completed", len(pub.started), len(pub.moves), len(pub.completed))
	}
	done := pub.completed[0]
	if done.Winner == nil || *done.Winner != "Alice" || done.TotalMoves != 7 {
		t.Fatalf("unexpected completion event %+v", done)
	}
	if pub.moves[6].Cell != 14 || pub.moves[6].MoveNumber != 7 {
		t.Fatalf("unexpected last move event %+v", pub.moves[6])
	}
}

func TestPlaySecondSeatMovesFirst(t *testing.T) {
	gs := newTestService(nil)
	a, b := seats(&scripted{columns: []int{1, 1, 1}}, &scripted{columns: []int{0, 0, 0, 0}})
	g, _ := gs.NewGame(a, b, 1)
	if err := gs.Play(context.Background(), g, nil); err != nil {
		t.Fatalf("play: %v", err)
	}
	if g.Winner == nil || g.Winner.Name != "Bob" {
		t.Fatalf("expected Bob to win, got %+v", g.Winner)
	}
	if g.Board[35] != board.PlayerB {
		t.Fatalf("Bob's token should sit in the first cell played")
	}
}

const drawnBoard = "XOXOXOX/XOXOXOX/OXOXOXO/OXOXOXO/XOXOXOX/XOXOXOX"

func TestLastCellFillsBoardAsDraw(t *testing.T) {
	gs := newTestService(nil)
	a, b := seats(&scripted{columns: []int{6}}, &scripted{})
	g, _ := gs.NewGame(a, b, 0)
	full, err := board.ParseBoard(drawnBoard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	g.Board = full
	g.Board[6] = board.Empty
	g.MoveCount = board.Cells - 1

	if err := gs.Play(context.Background(), g, nil); err != nil {
		t.Fatalf("play: %v", err)
	}
	if g.Status != models.GameStatusDraw || g.Winner != nil {
		t.Fatalf("expected a draw, got %s", g.Status)
	}
	if !g.Board.IsFull() {
		t.Fatalf("board should be full")
	}
}

func TestFullBoardNeverAsksForAMove(t *testing.T) {
	gs := newTestService(nil)
	a, b := seats(&scripted{}, &scripted{})
	g, _ := gs.NewGame(a, b, 0)
	g.Board, _ = board.ParseBoard(drawnBoard)

	if err := gs.Play(context.Background(), g, nil); err != nil {
		t.Fatalf("play: %v", err)
	}
	if g.Status != models.GameStatusDraw {
		t.Fatalf("expected a draw, got %s", g.Status)
	}
	if a.Provider.(*scripted).calls != 0 || b.Provider.(*scripted).calls != 0 {
		t.Fatalf("no provider should be asked on a full board")
	}
}

func TestResignationHandsWinToOpponent(t *testing.T) {
	pub := &recordingPublisher{}
	gs := newTestService(pub)
	a, b := seats(&scripted{columns: []int{3}}, &scripted{err: models.ErrResigned})
	g, _ := gs.NewGame(a, b, 0)
	if err := gs.Play(context.Background(), g, nil); err != nil {
		t.Fatalf("play: %v", err)
	}
	if g.Status != models.GameStatusResigned || g.Winner == nil || g.Winner.Name != "Alice" {
		t.Fatalf("expected Bob's resignation to hand Alice the game, got %s %+v", g.Status, g.Winner)
	}
	if len(pub.completed) != 1 || pub.completed[0].Status != models.GameStatusResigned {
		t.Fatalf("expected a resigned completion event")
	}
}

func TestProviderErrorAbortsPlay(t *testing.T) {
	boom := errors.New("boom")
	gs := newTestService(nil)
	a, b := seats(&scripted{err: boom}, &scripted{})
	g, _ := gs.NewGame(a, b, 0)
	err := gs.Play(context.Background(), g, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
	if g.Status != models.GameStatusActive {
		t.Fatalf("aborted game should stay active, got %s", g.Status)
	}
}

func TestApplyRejectsBadColumns(t *testing.T) {
	gs := newTestService(nil)
	a, b := seats(&scripted{}, &scripted{})
	g, _ := gs.NewGame(a, b, 0)

	if _, err := g.Apply(board.Columns); !errors.Is(err, ErrInvalidColumn) {
		t.Fatalf("expected ErrInvalidColumn, got %v", err)
	}
	if _, err := g.Apply(-1); !errors.Is(err, ErrInvalidColumn) {
		t.Fatalf("expected ErrInvalidColumn, got %v", err)
	}
	for i := 0; i < board.Rows; i++ {
		if _, err := g.Apply(0); err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
	}
	if _, err := g.Apply(0); !errors.Is(err, ErrColumnFull) {
		t.Fatalf("expected ErrColumnFull, got %v", err)
	}
	if g.MoveCount != board.Rows || g.Status != models.GameStatusActive {
		t.Fatalf("rejected moves must not change the game")
	}

	g.Resign()
	if _, err := g.Apply(1); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestValidateSeats(t *testing.T) {
	p := &scripted{}
	ok := Seat{Name: "Alice", Token: board.PlayerA, Provider: p}
	cases := []struct {
		name string
		a, b Seat
	}{
		{"empty name", ok, Seat{Name: "  ", Token: board.PlayerB, Provider: p}},
		{"same name", ok, Seat{Name: "aLICE", Token: board.PlayerB, Provider: p}},
		{"same token", ok, Seat{Name: "Bob", Token: board.PlayerA, Provider: p}},
		{"empty token", ok, Seat{Name: "Bob", Token: board.Empty, Provider: p}},
		{"no provider", ok, Seat{Name: "Bob", Token: board.PlayerB}},
	}
	for _, tc := range cases {
		if err := ValidateSeats(tc.a, tc.b); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
	if err := ValidateSeats(ok, Seat{Name: "Bob", Token: board.PlayerB, Provider: p}); err != nil {
		t.Fatalf("valid seats rejected: %v", err)
	}
	if _, err := newTestService(nil).NewGame(ok, Seat{Name: "Bob", Token: board.PlayerB, Provider: p}, 2); err == nil {
		t.Fatalf("expected error for first seat 2")
	}
}

func TestRandomFirstSeat(t *testing.T) {
	gs := newTestService(nil)
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		seat := gs.RandomFirstSeat()
		if seat != 0 && seat != 1 {
			t.Fatalf("unexpected seat %d", seat)
		}
		seen[seat] = true
	}
	if len(seen) != 2 {
		t.Fatalf("expected both seats to start at some point")
	}
}
