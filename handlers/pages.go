package handlers

import (
	"net/http"

	ai "studyplanner/services/intelligence"
	"studyplanner/utils"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	Completer ai.Completer
}

func NewPageHandler(completer ai.Completer) *PageHandler {
	return &PageHandler{Completer: completer}
}

func (h *PageHandler) IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{"Title": "Home", "Online": h.Completer.Online()})
}

func (h *PageHandler) ChatPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "chat", gin.H{"Title": "Chat", "Online": h.Completer.Online()})
}

// HealthHandler reports liveness, whether AI answers come from the model,
// and the last reply cache check when a cache is configured.
func (h *PageHandler) HealthHandler(c *gin.Context) {
	mode := "offline"
	if h.Completer.Online() {
		mode = "online"
	}
	resp := gin.H{"status": "ok", "mode": mode}
	if cache := utils.GetHealthStatus(); cache != nil {
		resp["cache"] = cache
	}
	c.JSON(http.StatusOK, resp)
}
