package handlers

import (
	"net/http"
	"strconv"

	"connectfour/internal/services"
	"connectfour/internal/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GET /api/analytics/stats
func (ah *AnalyticsHandler) GetStatistics(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, ah.analyticsService.Snapshot())
}

// GET /api/analytics/popular-columns
func (ah *AnalyticsHandler) GetPopularColumns(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, gin.H{
		"columns": ah.analyticsService.Snapshot().PopularColumns,
	})
}

// GET /api/leaderboard
func (ah *AnalyticsHandler) GetLeaderboard(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "100")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 100
	}

	leaderboard := ah.analyticsService.Leaderboard().GetLeaderboard(limit)
	utils.SuccessResponse(c, http.StatusOK, gin.H{
		"leaderboard": leaderboard,
		"total":       len(leaderboard),
	})
}

// GET /api/player/:username
func (ah *AnalyticsHandler) GetPlayerStats(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_USERNAME", "Username is required")
		return
	}

	player := ah.analyticsService.Leaderboard().GetPlayerStats(username)
	if player == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "PLAYER_NOT_FOUND", "Player not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{
		"player": player,
	})
}
