package services

import (
	"errors"
	"fmt"

	"connectfour/internal/board"
	"connectfour/internal/bot"
	"connectfour/internal/models"
	"connectfour/pkg/logger"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

var (
	ErrBoardFull    = errors.New("board has no playable column")
	ErrInvalidToken = errors.New("token must be 1 or -1")
)

// AdvisorService answers engine queries for arbitrary positions. Evaluated
// scores are cached per position, token and difficulty.
type AdvisorService struct {
	bot   *bot.Bot
	cache *lru.Cache
}

type evalKey struct {
	position string
	token    board.Token
	level    bot.Difficulty
}

func NewAdvisorService(b *bot.Bot, cacheSize int) (*AdvisorService, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluation cache: %w", err)
	}
	return &AdvisorService{bot: b, cache: cache}, nil
}

func validatePosition(b board.Board, token board.Token, level bot.Difficulty) error {
	if !token.Valid() {
		return ErrInvalidToken
	}
	if !level.Valid() {
		return fmt.Errorf("unknown difficulty %d", level)
	}
	if b.IsFull() {
		return ErrBoardFull
	}
	return nil
}

// scores returns the cached evaluation, computing it on a miss. Callers get
// their own copy.
func (as *AdvisorService) scores(b board.Board, token board.Token, level bot.Difficulty) bot.Scores {
	key := evalKey{position: b.String(), token: token, level: level}
	if v, ok := as.cache.Get(key); ok {
		logger.Log.Debug("Evaluation cache hit", zap.String("board", key.position))
		return v.(bot.Scores).Clone()
	}
	s := as.bot.Evaluate(b, token, level)
	as.cache.Add(key, s.Clone())
	return s
}

// Suggest picks a move for token the way a computer player of that level
// would.
func (as *AdvisorService) Suggest(b board.Board, token board.Token, level bot.Difficulty) (bot.Move, error) {
	if err := validatePosition(b, token, level); err != nil {
		return bot.Move{}, err
	}
	if level == bot.Random {
		return as.bot.ChooseMove(b, token, level), nil
	}
	return as.bot.Pick(b, as.scores(b, token, level)), nil
}

// Evaluate lists the score of every playable column, left to right.
func (as *AdvisorService) Evaluate(b board.Board, token board.Token, level bot.Difficulty) ([]models.ColumnScore, error) {
	if err := validatePosition(b, token, level); err != nil {
		return nil, err
	}
	s := as.scores(b, token, level)
	out := make([]models.ColumnScore, 0, len(s))
	for _, cell := range s.Cells() {
		out = append(out, models.ColumnScore{
			Column: board.Column(cell),
			Cell:   cell,
			Score:  s[cell],
		})
	}
	return out, nil
}

// CheckWin reports whether token has four in a row through cell, and along
// which axis.
func (as *AdvisorService) CheckWin(b board.Board, token board.Token, cell int) (bool, board.Axis, error) {
	if !token.Valid() {
		return false, 0, ErrInvalidToken
	}
	if cell < 0 || cell >= board.Cells {
		return false, 0, fmt.Errorf("cell %d out of range", cell)
	}
	axis, ok := board.WinningAxis(&b, token, cell)
	return ok, axis, nil
}

func (as *AdvisorService) CacheLen() int {
	return as.cache.Len()
}
