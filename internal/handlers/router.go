package handlers

import (
	"connectfour/internal/middleware"

	"github.com/gin-gonic/gin"
)

// NewEngineRouter wires the engine API routes and middleware.
func NewEngineRouter(engine *EngineHandler, health *HealthHandler, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(origins))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")
	{
		api.GET("/health", health.GetHealth)
		api.POST("/move", engine.SuggestMove)
		api.POST("/evaluate", engine.Evaluate)
		api.POST("/win", engine.CheckWin)
	}
	return r
}

// NewAnalyticsRouter serves the analytics snapshot and the leaderboard.
func NewAnalyticsRouter(analytics *AnalyticsHandler, health *HealthHandler, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(origins))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")
	{
		api.GET("/health", health.GetHealth)
		api.GET("/analytics/stats", analytics.GetStatistics)
		api.GET("/analytics/popular-columns", analytics.GetPopularColumns)
		api.GET("/leaderboard", analytics.GetLeaderboard)
		api.GET("/player/:username", analytics.GetPlayerStats)
	}
	return r
}
