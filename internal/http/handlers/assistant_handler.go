// README: Assistant handlers (chat, AI-commented earnings prediction).
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/assistant"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/forecast"
	"github.com/xXWapixelXx/Uber-Copilot/internal/types"
)

type AssistantHandler struct {
	assistant *assistant.Service
}

func NewAssistantHandler(assistantSvc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{assistant: assistantSvc}
}

type chatRequest struct {
	Message  string `json:"message" binding:"required"`
	EarnerID string `json:"earner_id"`
}

// Chat handles POST /api/assistant/chat.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "message is required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(c, http.StatusBadRequest, "message is required")
		return
	}

	resp, err := h.assistant.Chat(c.Request.Context(), types.ID(req.EarnerID), req.Message)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}

type predictRequest struct {
	EarnerID string `json:"earner_id" binding:"required"`
	Hours    int    `json:"hours"`
	Platform string `json:"platform"`
}

// Predict handles POST /api/assistant/predict.
func (h *AssistantHandler) Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "earner_id is required")
		return
	}
	if req.Hours == 0 {
		req.Hours = defaultForecastHours
	}
	if req.Hours < 1 || req.Hours > maxForecastHours {
		writeError(c, http.StatusBadRequest, errHoursOutOfRange.Error())
		return
	}
	if req.Platform == "" {
		req.Platform = string(forecast.PlatformBoth)
	}

	resp, err := h.assistant.PredictEarnings(c.Request.Context(),
		types.ID(req.EarnerID), req.Hours, forecast.Platform(req.Platform))
	if err != nil {
		writeEngineError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}
