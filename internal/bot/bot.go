package bot

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"connectfour/internal/board"
)

// Move is the engine's pick for one turn.
type Move struct {
	Column int  `json:"column"`
	Cell   int  `json:"cell"`
	Score  int  `json:"score"`
	Random bool `json:"random"`
}

// Bot is a single-ply heuristic player. The only state is the random source
// used by the Random tier and the zero-score fallback.
type Bot struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New() *Bot {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

func NewWithSource(src rand.Source) *Bot {
	return &Bot{rng: rand.New(src)}
}

// Evaluate runs the passes of level on a copy of b. The Random tier scores
// nothing and returns the bare candidate set.
func (bt *Bot) Evaluate(b board.Board, token board.Token, level Difficulty) Scores {
	if !token.Valid() {
		panic("bot: token must be a player")
	}
	work := b
	scores := Candidates(&work)
	for _, pass := range passes[level] {
		scores = pass(token, &work, scores)
	}
	return scores
}

// ChooseMove picks a column for token. b must have at least one playable
// column.
func (bt *Bot) ChooseMove(b board.Board, token board.Token, level Difficulty) Move {
	if b.IsFull() {
		panic("bot: no playable column")
	}
	if level == Random {
		return bt.randomMove(&b)
	}

	return bt.Pick(b, bt.Evaluate(b, token, level))
}

// Pick applies the selection rule to scores evaluated on b: the highest
// positive score wins, ties going to the lowest column. With no positive
// score any playable column is chosen at random.
func (bt *Bot) Pick(b board.Board, scores Scores) Move {
	cell, score, _ := scores.Best()
	if score <= 0 {
		m := bt.randomMove(&b)
		m.Score = scores[m.Cell]
		return m
	}
	return Move{Column: board.Column(cell), Cell: cell, Score: score}
}

func (bt *Bot) randomMove(b *board.Board) Move {
	cols := b.PlayableColumns()
	bt.mu.Lock()
	col := cols[bt.rng.Intn(len(cols))]
	bt.mu.Unlock()
	return Move{Column: col, Cell: board.LowestEmptyCell(b, col), Random: true}
}

// Computer plays a seat with a fixed difficulty.
type Computer struct {
	Bot   *Bot
	Level Difficulty
}

func NewComputer(bt *Bot, level Difficulty) *Computer {
	return &Computer{Bot: bt, Level: level}
}

func (c *Computer) ChooseMove(ctx context.Context, b board.Board, token board.Token) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.Bot.ChooseMove(b, token, c.Level).Column, nil
}
