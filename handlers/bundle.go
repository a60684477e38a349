// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Pages
	IndexHandler    gin.HandlerFunc
	ChatPageHandler gin.HandlerFunc
	HealthHandler   gin.HandlerFunc

	// Schedule endpoints
	ScheduleHandler gin.HandlerFunc

	// AI endpoints
	AIChatHandler gin.HandlerFunc
	QuizHandler   gin.HandlerFunc
}
