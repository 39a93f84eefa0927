package models

import (
	"errors"
	"fmt"
	"time"

	"connectfour/internal/board"

	"github.com/google/uuid"
)

// ErrResigned is returned by a move provider when its player quits.
var ErrResigned = errors.New("player resigned")

type GameStatus string

const (
	GameStatusActive   GameStatus = "active"
	GameStatusWon      GameStatus = "won"
	GameStatusDraw     GameStatus = "draw"
	GameStatusResigned GameStatus = "resigned"
)

type PlayerInfo struct {
	Name       string      `json:"name"`
	Token      board.Token `json:"token"`
	IsBot      bool        `json:"is_bot"`
	Difficulty string      `json:"difficulty,omitempty"`
}

type KafkaEventType string

const (
	EventGameStarted   KafkaEventType = "GAME_STARTED"
	EventMoveMade      KafkaEventType = "MOVE_MADE"
	EventGameCompleted KafkaEventType = "GAME_COMPLETED"
)

type GameStartedEvent struct {
	Type      KafkaEventType `json:"type"`
	GameID    uuid.UUID      `json:"game_id"`
	Player1   PlayerInfo     `json:"player1"`
	Player2   PlayerInfo     `json:"player2"`
	FirstMove string         `json:"first_move"`
	Timestamp time.Time      `json:"timestamp"`
}

type MoveMadeEvent struct {
	Type       KafkaEventType `json:"type"`
	GameID     uuid.UUID      `json:"game_id"`
	Player     string         `json:"player"`
	Token      board.Token    `json:"token"`
	Column     int            `json:"column"`
	Cell       int            `json:"cell"`
	MoveNumber int            `json:"move_number"`
	Timestamp  time.Time      `json:"timestamp"`
}

type GameCompletedEvent struct {
	Type            KafkaEventType `json:"type"`
	GameID          uuid.UUID      `json:"game_id"`
	Player1         PlayerInfo     `json:"player1"`
	Player2         PlayerInfo     `json:"player2"`
	Status          GameStatus     `json:"status"`
	Winner          *string        `json:"winner,omitempty"`
	TotalMoves      int            `json:"total_moves"`
	DurationSeconds float64        `json:"duration_seconds"`
	Board           string         `json:"board"`
	Timestamp       time.Time      `json:"timestamp"`
}

type LeaderboardEntry struct {
	Username    string  `json:"username"`
	IsBot       bool    `json:"is_bot"`
	GamesPlayed int     `json:"games_played"`
	GamesWon    int     `json:"games_won"`
	GamesDrawn  int     `json:"games_drawn"`
	WinRate     float64 `json:"win_rate"`
}

// BoardPayload is the wire form of a board: 42 row-major cells, each -1, 0
// or 1.
type BoardPayload []int

func (p BoardPayload) ToBoard() (board.Board, error) {
	var b board.Board
	if len(p) != board.Cells {
		return b, fmt.Errorf("board must have %d cells, got %d", board.Cells, len(p))
	}
	for i, v := range p {
		if v < int(board.PlayerB) || v > int(board.PlayerA) {
			return b, fmt.Errorf("cell %d has invalid value %d", i, v)
		}
		b[i] = board.Token(v)
	}
	return b, nil
}

type MoveRequest struct {
	Board      BoardPayload `json:"board" binding:"required"`
	Token      int          `json:"token" binding:"required,oneof=-1 1"`
	Difficulty string       `json:"difficulty"`
}

type MoveResponse struct {
	Column     int    `json:"column"`
	Cell       int    `json:"cell"`
	Score      int    `json:"score"`
	Random     bool   `json:"random"`
	Difficulty string `json:"difficulty"`
}

type ColumnScore struct {
	Column int `json:"column"`
	Cell   int `json:"cell"`
	Score  int `json:"score"`
}

type EvaluateResponse struct {
	Difficulty string        `json:"difficulty"`
	Scores     []ColumnScore `json:"scores"`
}

type WinRequest struct {
	Board BoardPayload `json:"board" binding:"required"`
	Token int          `json:"token" binding:"required,oneof=-1 1"`
	Cell  *int         `json:"cell" binding:"required,min=0,max=41"`
}

type WinResponse struct {
	Win  bool   `json:"win"`
	Axis string `json:"axis,omitempty"`
}

type ErrorPayload struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
