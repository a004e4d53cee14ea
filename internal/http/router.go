// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xXWapixelXx/Uber-Copilot/internal/http/handlers"
	"github.com/xXWapixelXx/Uber-Copilot/internal/http/middleware"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/analytics"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/assistant"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/dataset"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/forecast"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/insights"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/location"
)

type RouterDeps struct {
	Store     *dataset.Store
	Analytics *analytics.Service
	Insights  *insights.Service
	Forecast  *forecast.Service
	Location  *location.Service
	Assistant *assistant.Service
	Logger    *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	earnerHandler := handlers.NewEarnerHandler(deps.Store, deps.Insights)
	r.GET("/api/earners/:id", earnerHandler.Get)
	r.GET("/api/earners/:id/rate", earnerHandler.EstimateRate)
	r.GET("/api/earners/:id/insights", earnerHandler.Insights)
	r.GET("/api/earners/:id/quests", earnerHandler.Quests)

	analyticsHandler := handlers.NewAnalyticsHandler(deps.Analytics)
	r.GET("/api/analytics/statistics", analyticsHandler.Statistics)
	r.GET("/api/analytics/earnings/by-city", analyticsHandler.EarningsByCity)
	r.GET("/api/analytics/earnings/by-experience", analyticsHandler.EarningsByExperience)
	r.GET("/api/analytics/patterns", analyticsHandler.TimePatterns)

	forecastHandler := handlers.NewForecastHandler(deps.Forecast)
	r.GET("/api/forecast/:id", forecastHandler.Predict)

	locationHandler := handlers.NewLocationHandler(deps.Location)
	r.GET("/api/locations/:city/intelligence", locationHandler.Intelligence)
	r.GET("/api/locations/:city/recommendations", locationHandler.Recommendations)

	assistantHandler := handlers.NewAssistantHandler(deps.Assistant)
	r.POST("/api/assistant/chat", assistantHandler.Chat)
	r.POST("/api/assistant/predict", assistantHandler.Predict)

	return r
}
