// README: Forecast result shapes (per-platform predictions and strategy).
package forecast

import "github.com/xXWapixelXx/Uber-Copilot/internal/types"

// Platform selects which side of the marketplace to forecast.
type Platform string

const (
	PlatformRides Platform = "rides"
	PlatformEats  Platform = "eats"
	PlatformBoth  Platform = "both"
)

// Strategy names for the platform-both recommendation.
const (
	StrategyFocusRides    = "focus_rides"
	StrategyFocusEats     = "focus_eats"
	StrategyMultiPlatform = "multi_platform"
)

// PlatformPrediction is the projection for a single platform.
type PlatformPrediction struct {
	PredictedEarnings float64  `json:"predicted_earnings"`
	HourlyRate        float64  `json:"hourly_rate"`
	Confidence        float64  `json:"confidence_score"`
	Factors           []string `json:"factors"`
}

// Strategy recommends how to split time across platforms.
type Strategy struct {
	Name             string  `json:"strategy"`
	Recommendation   string  `json:"recommendation"`
	ExpectedEarnings float64 `json:"expected_earnings"`
	Reasoning        string  `json:"reasoning"`
}

// Prediction is the full forecast answer. Rides/Eats are nil when the
// requested platform excludes them; Total and OptimalStrategy are only
// set for platform "both".
type Prediction struct {
	EarnerID               types.ID            `json:"earner_id"`
	Platform               Platform            `json:"platform"`
	Hours                  int                 `json:"hours"`
	Rides                  *PlatformPrediction `json:"rides,omitempty"`
	Eats                   *PlatformPrediction `json:"eats,omitempty"`
	TotalPredictedEarnings float64             `json:"total_predicted_earnings,omitempty"`
	OptimalStrategy        *Strategy           `json:"optimal_strategy,omitempty"`
}
