// README: Location handlers (city intelligence, real-time tips).
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/location"
	"github.com/xXWapixelXx/Uber-Copilot/internal/types"
)

type LocationHandler struct {
	location *location.Service
	now      func() time.Time
}

func NewLocationHandler(locationSvc *location.Service) *LocationHandler {
	return &LocationHandler{location: locationSvc, now: time.Now}
}

// Intelligence handles GET /api/locations/:city/intelligence?hexagon=....
func (h *LocationHandler) Intelligence(c *gin.Context) {
	cityID, err := parseCityID(c.Param("city"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, h.location.Intelligence(cityID, c.Query("hexagon")))
}

// Recommendations handles GET /api/locations/:city/recommendations?hour=...
// Hour defaults to the current server hour.
func (h *LocationHandler) Recommendations(c *gin.Context) {
	cityID, err := parseCityID(c.Param("city"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	hour := h.now().Hour()
	if raw := c.Query("hour"); raw != "" {
		hour, err = strconv.Atoi(raw)
		if err != nil || hour < 0 || hour > 23 {
			writeError(c, http.StatusBadRequest, "hour must be an integer between 0 and 23")
			return
		}
	}
	writeJSON(c, http.StatusOK, h.location.Recommendations(cityID, hour))
}

var errBadCityID = errors.New("city must be a numeric id")

func parseCityID(raw string) (types.CityID, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errBadCityID
	}
	return types.CityID(id), nil
}
