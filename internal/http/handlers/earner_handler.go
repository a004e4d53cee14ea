// README: Earner handlers (profile, rate estimate, insights, quests).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/dataset"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/insights"
	"github.com/xXWapixelXx/Uber-Copilot/internal/types"
)

type EarnerHandler struct {
	store    *dataset.Store
	insights *insights.Service
}

func NewEarnerHandler(store *dataset.Store, insightsSvc *insights.Service) *EarnerHandler {
	return &EarnerHandler{store: store, insights: insightsSvc}
}

// Get handles GET /api/earners/:id.
func (h *EarnerHandler) Get(c *gin.Context) {
	id := types.ID(c.Param("id"))
	earner, ok := h.store.Earner(id)
	if !ok {
		writeError(c, http.StatusNotFound, "earner not found")
		return
	}
	writeJSON(c, http.StatusOK, earner)
}

// EstimateRate handles GET /api/earners/:id/rate.
func (h *EarnerHandler) EstimateRate(c *gin.Context) {
	rate, err := h.insights.EstimateRate(types.ID(c.Param("id")))
	if err != nil {
		writeEngineError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"hourly_rate": rate})
}

// Insights handles GET /api/earners/:id/insights.
func (h *EarnerHandler) Insights(c *gin.Context) {
	insight, err := h.insights.EarnerInsights(types.ID(c.Param("id")))
	if err != nil {
		writeEngineError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, insight)
}

// Quests handles GET /api/earners/:id/quests.
func (h *EarnerHandler) Quests(c *gin.Context) {
	quests, err := h.insights.QuestInsights(types.ID(c.Param("id")))
	if err != nil {
		writeEngineError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, quests)
}
