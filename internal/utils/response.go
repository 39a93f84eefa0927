package utils

import (
	"connectfour/internal/models"

	"github.com/gin-gonic/gin"
)

func SuccessResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func ErrorResponse(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   models.ErrorPayload{Code: code, Message: message},
	})
}
