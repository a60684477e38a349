package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"studyplanner/models"
	ai "studyplanner/services/intelligence"
	"studyplanner/services/quiz"
	"studyplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// emptyChatReply is returned with a 400 when the chat message is missing.
const emptyChatReply = "ask a question"

type AIHandler struct {
	Completer ai.Completer
	Quiz      *quiz.Service
}

func NewDefaultAIHandler(completer ai.Completer) *AIHandler {
	return &AIHandler{
		Completer: completer,
		Quiz:      quiz.NewService(completer),
	}
}

// HandleChat answers a single chat message.
func (h *AIHandler) HandleChat(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, models.ChatResponse{Reply: emptyChatReply})
		return
	}

	result := h.Completer.Complete(c.Request.Context(), chatPrompt(req))
	if result.Failed() {
		logger.Warn("chat: completion failed", zap.Error(result.Err))
	}
	c.JSON(http.StatusOK, models.ChatResponse{Reply: result.Reply()})
}

// HandleQuiz renders a quiz page for the requested topic.
func (h *AIHandler) HandleQuiz(c *gin.Context) {
	logger := getLogger(c)

	countRaw := formValue(c, "count", strconv.Itoa(quiz.DefaultCount))
	count, err := strconv.Atoi(countRaw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid quiz input", fmt.Sprintf("count must be a whole number: %q", countRaw))
		return
	}
	req := models.QuizRequest{
		Topic: formValue(c, "topic", quiz.DefaultTopic),
		Count: count,
		Level: formValue(c, "level", quiz.DefaultLevel),
	}

	result := h.Quiz.Generate(c.Request.Context(), req)
	if result.Failed() {
		logger.Warn("quiz: completion failed", zap.Error(result.Err))
	}

	c.HTML(http.StatusOK, "quiz", gin.H{
		"Title":   "Quiz",
		"Online":  h.Completer.Online(),
		"Request": req,
		"Quiz":    result.Reply(),
	})
}

func chatPrompt(req models.ChatRequest) string {
	message := strings.TrimSpace(req.Message)
	style := strings.TrimSpace(req.Style)
	if style == "" {
		return message
	}
	return fmt.Sprintf("Answer in a %s style.\n\n%s", style, message)
}
