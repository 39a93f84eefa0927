package services

import (
	"context"
	"errors"
	"fmt"

	"connectfour/internal/board"
	"connectfour/internal/bot"
	"connectfour/internal/models"
	"connectfour/pkg/logger"

	"go.uber.org/zap"
)

type TournamentResult struct {
	Games    int            `json:"games"`
	WinsA    int            `json:"wins_a"`
	WinsB    int            `json:"wins_b"`
	Draws    int            `json:"draws"`
	AvgMoves float64        `json:"avg_moves"`
	LevelA   bot.Difficulty `json:"level_a"`
	LevelB   bot.Difficulty `json:"level_b"`
}

// TournamentService plays computer against computer.
type TournamentService struct {
	games *GameService
	bot   *bot.Bot
}

func NewTournamentService(games *GameService, b *bot.Bot) *TournamentService {
	return &TournamentService{games: games, bot: b}
}

// Run plays n games between level a and level b. Seat A moves first in even
// games and seat B in odd ones.
func (ts *TournamentService) Run(ctx context.Context, a, b bot.Difficulty, n int) (TournamentResult, error) {
	result := TournamentResult{LevelA: a, LevelB: b}
	if n <= 0 {
		return result, fmt.Errorf("game count must be positive, got %d", n)
	}
	if !a.Valid() || !b.Valid() {
		return result, errors.New("unknown difficulty")
	}

	seatA := Seat{
		Name:       "A (" + a.String() + ")",
		Token:      board.PlayerA,
		Provider:   bot.NewComputer(ts.bot, a),
		Difficulty: a.String(),
	}
	seatB := Seat{
		Name:       "B (" + b.String() + ")",
		Token:      board.PlayerB,
		Provider:   bot.NewComputer(ts.bot, b),
		Difficulty: b.String(),
	}

	totalMoves := 0
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		game, err := ts.games.NewGame(seatA, seatB, i%2)
		if err != nil {
			return result, err
		}
		if err := ts.games.Play(ctx, game, nil); err != nil {
			return result, fmt.Errorf("game %d: %w", i+1, err)
		}

		result.Games++
		totalMoves += game.MoveCount
		switch {
		case game.Status == models.GameStatusDraw:
			result.Draws++
		case game.Winner != nil && game.Winner.Token == seatA.Token:
			result.WinsA++
		case game.Winner != nil:
			result.WinsB++
		}
	}
	result.AvgMoves = float64(totalMoves) / float64(result.Games)

	logger.Log.Info("Tournament finished",
		zap.String("level_a", a.String()),
		zap.String("level_b", b.String()),
		zap.Int("games", result.Games),
		zap.Int("wins_a", result.WinsA),
		zap.Int("wins_b", result.WinsB),
		zap.Int("draws", result.Draws),
		zap.Float64("avg_moves", result.AvgMoves),
	)
	return result, nil
}
