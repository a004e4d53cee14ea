// README: Forecast handler (N-hour earnings prediction).
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/forecast"
	"github.com/xXWapixelXx/Uber-Copilot/internal/types"
)

const (
	defaultForecastHours = 8
	maxForecastHours     = 24
)

type ForecastHandler struct {
	forecast *forecast.Service
}

func NewForecastHandler(forecastSvc *forecast.Service) *ForecastHandler {
	return &ForecastHandler{forecast: forecastSvc}
}

// Predict handles GET /api/forecast/:id?hours=8&platform=both.
func (h *ForecastHandler) Predict(c *gin.Context) {
	hours, err := parseHours(c.DefaultQuery("hours", strconv.Itoa(defaultForecastHours)))
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	platform := forecast.Platform(c.DefaultQuery("platform", string(forecast.PlatformBoth)))

	prediction, err := h.forecast.Predict(types.ID(c.Param("id")), hours, platform)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, prediction)
}

var errHoursOutOfRange = errors.New("hours must be an integer between 1 and 24")

func parseHours(raw string) (int, error) {
	hours, err := strconv.Atoi(raw)
	if err != nil || hours < 1 || hours > maxForecastHours {
		return 0, errHoursOutOfRange
	}
	return hours, nil
}
