// README: Base handler utilities (JSON helpers, engine error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/forecast"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/insights"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeEngineError maps engine sentinels to HTTP statuses. NotFound and
// NoData stay distinct outcomes at the API boundary.
func writeEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, insights.ErrNotFound), errors.Is(err, forecast.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, insights.ErrNoData):
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, forecast.ErrBadPlatform):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
