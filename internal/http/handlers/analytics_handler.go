// README: Analytics handlers (market stats, grouped rates, hourly patterns).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/analytics"
)

type AnalyticsHandler struct {
	analytics *analytics.Service
}

func NewAnalyticsHandler(analyticsSvc *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analyticsSvc}
}

// Statistics handles GET /api/analytics/statistics.
func (h *AnalyticsHandler) Statistics(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.analytics.BasicStatistics())
}

// EarningsByCity handles GET /api/analytics/earnings/by-city.
func (h *AnalyticsHandler) EarningsByCity(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.analytics.EarningsByCity())
}

// EarningsByExperience handles GET /api/analytics/earnings/by-experience.
func (h *AnalyticsHandler) EarningsByExperience(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.analytics.EarningsByExperience())
}

// TimePatterns handles GET /api/analytics/patterns.
func (h *AnalyticsHandler) TimePatterns(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.analytics.TimePatterns())
}
