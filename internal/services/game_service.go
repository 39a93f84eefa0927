package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"connectfour/internal/board"
	"connectfour/internal/models"
	"connectfour/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidColumn = errors.New("invalid column")
	ErrColumnFull    = errors.New("column is full")
	ErrGameOver      = errors.New("game is over")
)

// MoveProvider chooses a column for the seat holding token. Human players
// return models.ErrResigned to quit.
type MoveProvider interface {
	ChooseMove(ctx context.Context, b board.Board, token board.Token) (int, error)
}

type Seat struct {
	Name       string
	Token      board.Token
	Provider   MoveProvider
	Human      bool
	Difficulty string
}

func (s Seat) Info() models.PlayerInfo {
	return models.PlayerInfo{
		Name:       s.Name,
		Token:      s.Token,
		IsBot:      !s.Human,
		Difficulty: s.Difficulty,
	}
}

type Game struct {
	ID          uuid.UUID
	Board       board.Board
	Seats       [2]Seat
	Turn        int
	MoveCount   int
	Status      models.GameStatus
	Winner      *Seat
	LastCell    int
	StartedAt   time.Time
	CompletedAt *time.Time
}

func (g *Game) Current() *Seat {
	return &g.Seats[g.Turn]
}

func (g *Game) Opponent() *Seat {
	return &g.Seats[1-g.Turn]
}

// Apply drops the current seat's token in column and settles win, draw or
// the next turn. It returns the landing cell.
func (g *Game) Apply(column int) (int, error) {
	if g.Status != models.GameStatusActive {
		return 0, ErrGameOver
	}
	if column < 0 || column >= board.Columns {
		return 0, fmt.Errorf("%w: %d", ErrInvalidColumn, column)
	}
	if !g.Board.Playable(column) {
		return 0, fmt.Errorf("%w: %d", ErrColumnFull, column)
	}

	seat := g.Current()
	cell := g.Board.Drop(column, seat.Token)
	g.MoveCount++
	g.LastCell = cell

	switch {
	case board.HasFour(&g.Board, seat.Token, cell):
		g.finish(models.GameStatusWon, seat)
	case g.MoveCount >= board.Cells:
		g.finish(models.GameStatusDraw, nil)
	default:
		g.Turn = 1 - g.Turn
	}
	return cell, nil
}

// Resign ends the game in favour of the seat not on turn.
func (g *Game) Resign() {
	if g.Status != models.GameStatusActive {
		return
	}
	g.finish(models.GameStatusResigned, g.Opponent())
}

func (g *Game) finish(status models.GameStatus, winner *Seat) {
	now := time.Now()
	g.Status = status
	g.Winner = winner
	g.CompletedAt = &now
}

// Observer is notified as a game progresses. The console frontend uses it to
// draw the board.
type Observer interface {
	BeforeMove(g *Game)
	MoveMade(g *Game, column, cell int)
	GameOver(g *Game)
}

type NopObserver struct{}

func (NopObserver) BeforeMove(*Game)          {}
func (NopObserver) MoveMade(*Game, int, int) {}
func (NopObserver) GameOver(*Game)            {}

type GameService struct {
	publisher EventPublisher
	rngMu     sync.Mutex
	rng       *rand.Rand
}

func NewGameService(publisher EventPublisher) *GameService {
	return NewGameServiceWithSource(publisher, rand.NewSource(time.Now().UnixNano()))
}

func NewGameServiceWithSource(publisher EventPublisher, src rand.Source) *GameService {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &GameService{publisher: publisher, rng: rand.New(src)}
}

// ValidateSeats checks the two seats can play each other.
func ValidateSeats(a, b Seat) error {
	for _, s := range []Seat{a, b} {
		if strings.TrimSpace(s.Name) == "" {
			return errors.New("player name is required")
		}
		if !s.Token.Valid() {
			return fmt.Errorf("player %s has invalid token %d", s.Name, s.Token)
		}
		if s.Provider == nil {
			return fmt.Errorf("player %s has no move provider", s.Name)
		}
	}
	if strings.EqualFold(strings.TrimSpace(a.Name), strings.TrimSpace(b.Name)) {
		return fmt.Errorf("player name %s is already taken", b.Name)
	}
	if a.Token != b.Token.Opponent() {
		return errors.New("players must hold opposite tokens")
	}
	return nil
}

// RandomFirstSeat picks which seat moves first.
func (gs *GameService) RandomFirstSeat() int {
	gs.rngMu.Lock()
	defer gs.rngMu.Unlock()
	return gs.rng.Intn(2)
}

func (gs *GameService) NewGame(a, b Seat, firstSeat int) (*Game, error) {
	if err := ValidateSeats(a, b); err != nil {
		return nil, err
	}
	if firstSeat != 0 && firstSeat != 1 {
		return nil, fmt.Errorf("first seat must be 0 or 1, got %d", firstSeat)
	}
	game := &Game{
		ID:        uuid.New(),
		Board:     board.New(),
		Seats:     [2]Seat{a, b},
		Turn:      firstSeat,
		Status:    models.GameStatusActive,
		LastCell:  board.OutOfBounds,
		StartedAt: time.Now(),
	}
	logger.Log.Info("Game created",
		zap.String("game_id", game.ID.String()),
		zap.String("player1", a.Name),
		zap.String("player2", b.Name),
		zap.String("first", game.Current().Name),
	)
	return game, nil
}

// Play runs the turn loop until the game is won, drawn or resigned. A
// provider error other than resignation stops the loop and is returned.
func (gs *GameService) Play(ctx context.Context, g *Game, obs Observer) error {
	if obs == nil {
		obs = NopObserver{}
	}
	gs.publishStarted(ctx, g)

	for g.Status == models.GameStatusActive {
		if g.Board.IsFull() {
			g.finish(models.GameStatusDraw, nil)
			break
		}

		seat := g.Current()
		obs.BeforeMove(g)
		column, err := seat.Provider.ChooseMove(ctx, g.Board, seat.Token)
		if errors.Is(err, models.ErrResigned) {
			logger.Log.Info("Player resigned", zap.String("game_id", g.ID.String()), zap.String("player", seat.Name))
			g.Resign()
			break
		}
		if err != nil {
			return fmt.Errorf("move for %s: %w", seat.Name, err)
		}

		cell, err := g.Apply(column)
		if err != nil {
			return fmt.Errorf("apply move for %s: %w", seat.Name, err)
		}
		logger.Log.Debug("Move made",
			zap.String("game_id", g.ID.String()),
			zap.String("player", seat.Name),
			zap.Int("column", column),
			zap.Int("cell", cell),
			zap.Int("move", g.MoveCount),
		)
		obs.MoveMade(g, column, cell)
		gs.publishMove(ctx, g, seat, column, cell)
	}

	obs.GameOver(g)
	gs.publishCompleted(ctx, g)
	logger.Log.Info("Game completed",
		zap.String("game_id", g.ID.String()),
		zap.String("status", string(g.Status)),
		zap.Int("moves", g.MoveCount),
	)
	return nil
}

func (gs *GameService) publishStarted(ctx context.Context, g *Game) {
	event := models.GameStartedEvent{
		Type:      models.EventGameStarted,
		GameID:    g.ID,
		Player1:   g.Seats[0].Info(),
		Player2:   g.Seats[1].Info(),
		FirstMove: g.Current().Name,
		Timestamp: time.Now(),
	}
	if err := gs.publisher.PublishGameStarted(ctx, event); err != nil {
		logger.Log.Warn("Failed to publish game started", zap.Error(err))
	}
}

func (gs *GameService) publishMove(ctx context.Context, g *Game, seat *Seat, column, cell int) {
	event := models.MoveMadeEvent{
		Type:       models.EventMoveMade,
		GameID:     g.ID,
		Player:     seat.Name,
		Token:      seat.Token,
		Column:     column,
		Cell:       cell,
		MoveNumber: g.MoveCount,
		Timestamp:  time.Now(),
	}
	if err := gs.publisher.PublishMoveMade(ctx, event); err != nil {
		logger.Log.Warn("Failed to publish move", zap.Error(err))
	}
}

func (gs *GameService) publishCompleted(ctx context.Context, g *Game) {
	event := models.GameCompletedEvent{
		Type:       models.EventGameCompleted,
		GameID:     g.ID,
		Player1:    g.Seats[0].Info(),
		Player2:    g.Seats[1].Info(),
		Status:     g.Status,
		TotalMoves: g.MoveCount,
		Board:      g.Board.String(),
		Timestamp:  time.Now(),
	}
	if g.Winner != nil {
		name := g.Winner.Name
		event.Winner = &name
	}
	if g.CompletedAt != nil {
		event.DurationSeconds = g.CompletedAt.Sub(g.StartedAt).Seconds()
	}
	if err := gs.publisher.PublishGameCompleted(ctx, event); err != nil {
		logger.Log.Warn("Failed to publish game completed", zap.Error(err))
	}
}
