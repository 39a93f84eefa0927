package handlers

import (
	"errors"
	"net/http"

	"connectfour/internal/board"
	"connectfour/internal/bot"
	"connectfour/internal/models"
	"connectfour/internal/services"
	"connectfour/internal/utils"
	"connectfour/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EngineHandler exposes the move engine over HTTP.
type EngineHandler struct {
	advisor           *services.AdvisorService
	defaultDifficulty bot.Difficulty
}

func NewEngineHandler(advisor *services.AdvisorService, defaultDifficulty bot.Difficulty) *EngineHandler {
	return &EngineHandler{
		advisor:           advisor,
		defaultDifficulty: defaultDifficulty,
	}
}

// bindPosition decodes a move request and writes a 400 on any problem.
func (h *EngineHandler) bindPosition(c *gin.Context) (board.Board, board.Token, bot.Difficulty, bool) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return board.Board{}, 0, 0, false
	}
	b, err := req.Board.ToBoard()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_BOARD", err.Error())
		return board.Board{}, 0, 0, false
	}
	if b.IsFull() {
		utils.ErrorResponse(c, http.StatusBadRequest, "BOARD_FULL", "Board has no playable column")
		return board.Board{}, 0, 0, false
	}
	level := h.defaultDifficulty
	if req.Difficulty != "" {
		level, err = bot.ParseDifficulty(req.Difficulty)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_DIFFICULTY", err.Error())
			return board.Board{}, 0, 0, false
		}
	}
	return b, board.Token(req.Token), level, true
}

// POST /api/move
func (h *EngineHandler) SuggestMove(c *gin.Context) {
	b, token, level, ok := h.bindPosition(c)
	if !ok {
		return
	}

	move, err := h.advisor.Suggest(b, token, level)
	if err != nil {
		h.engineError(c, err)
		return
	}

	logger.Log.Debug("Move suggested",
		zap.String("board", b.String()),
		zap.String("difficulty", level.String()),
		zap.Int("column", move.Column),
	)
	utils.SuccessResponse(c, http.StatusOK, models.MoveResponse{
		Column:     move.Column,
		Cell:       move.Cell,
		Score:      move.Score,
		Random:     move.Random,
		Difficulty: level.String(),
	})
}

// POST /api/evaluate
func (h *EngineHandler) Evaluate(c *gin.Context) {
	b, token, level, ok := h.bindPosition(c)
	if !ok {
		return
	}

	scores, err := h.advisor.Evaluate(b, token, level)
	if err != nil {
		h.engineError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, models.EvaluateResponse{
		Difficulty: level.String(),
		Scores:     scores,
	})
}

// POST /api/win
func (h *EngineHandler) CheckWin(c *gin.Context) {
	var req models.WinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	b, err := req.Board.ToBoard()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_BOARD", err.Error())
		return
	}

	win, axis, err := h.advisor.CheckWin(b, board.Token(req.Token), *req.Cell)
	if err != nil {
		h.engineError(c, err)
		return
	}

	resp := models.WinResponse{Win: win}
	if win {
		resp.Axis = axis.String()
	}
	utils.SuccessResponse(c, http.StatusOK, resp)
}

func (h *EngineHandler) engineError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrBoardFull) || errors.Is(err, services.ErrInvalidToken) {
		utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_POSITION", err.Error())
		return
	}
	_ = c.Error(err)
}
