// README: Location intelligence shapes (heatmap, cancellations, surge, weather).
package location

import "github.com/xXWapixelXx/Uber-Copilot/internal/types"

// HeatmapInsights summarises predicted earnings across a city's hexagons.
type HeatmapInsights struct {
	AvgEarningsPerHour  float64 `json:"avg_earnings_per_hour"`
	EarningsUncertainty float64 `json:"earnings_uncertainty"`
	HighEarningHexagons int     `json:"high_earning_hexagons"`
	TotalHexagons       int     `json:"total_hexagons"`
}

// CancellationInsights summarises rider cancellation behaviour.
type CancellationInsights struct {
	AvgCancellationRate   float64 `json:"avg_cancellation_rate"`
	HighCancellationAreas int     `json:"high_cancellation_areas"`
}

// SurgePatterns lists the surge profile of a city by hour.
type SurgePatterns struct {
	PeakHours      []int   `json:"peak_hours"`
	LowDemandHours []int   `json:"low_demand_hours"`
	AvgSurge       float64 `json:"avg_surge"`
}

// WeatherImpact counts recorded weather days by category.
type WeatherImpact struct {
	ClearDays int `json:"clear_days"`
	RainDays  int `json:"rain_days"`
	SnowDays  int `json:"snow_days"`
}

// Intelligence is the full location answer for one city (optionally
// narrowed to a single hexagon).
type Intelligence struct {
	CityID        types.CityID         `json:"city_id"`
	Heatmap       HeatmapInsights      `json:"heatmap_insights"`
	Cancellations CancellationInsights `json:"cancellation_insights"`
	Surge         SurgePatterns        `json:"surge_patterns"`
	Weather       WeatherImpact        `json:"weather_impact"`
}

// Conditions describes the current hour in a city.
type Conditions struct {
	Hour            int     `json:"hour"`
	SurgeMultiplier float64 `json:"surge_multiplier"`
	Weather         string  `json:"weather"`
}

// Recommendation is one rule-based location tip.
type Recommendation struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

// Recommendations pairs current conditions with the matched tips.
type Recommendations struct {
	CityID     types.CityID     `json:"city_id"`
	Conditions Conditions       `json:"current_conditions"`
	Items      []Recommendation `json:"recommendations"`
}
