package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	startedAt    time.Time
	kafkaEnabled bool
}

func NewHealthHandler(kafkaEnabled bool) *HealthHandler {
	return &HealthHandler{startedAt: time.Now(), kafkaEnabled: kafkaEnabled}
}

func (hh *HealthHandler) GetHealth(c *gin.Context) {
	events := "disabled"
	if hh.kafkaEnabled {
		events = "kafka"
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"events": events,
		"uptime": time.Since(hh.startedAt).Round(time.Second).String(),
	})
}
