// README: Aggregation result shapes (grouped rates, hourly patterns, platform stats).
package analytics

// HourStats holds the per-hour means for one platform. SurgeMultiplier is
// only populated for rides, BasketValueEUR only for eats.
type HourStats struct {
	NetEarnings     float64 `json:"net_earnings"`
	SurgeMultiplier float64 `json:"surge_multiplier,omitempty"`
	BasketValueEUR  float64 `json:"basket_value_eur,omitempty"`
	DistanceKm      float64 `json:"distance_km"`
	DurationMins    float64 `json:"duration_mins"`
	Samples         int     `json:"samples"`
}

// PeakHours lists the top-3 hours by mean net earnings per platform,
// best hour first.
type PeakHours struct {
	Rides []int `json:"rides"`
	Eats  []int `json:"eats"`
}

// TimePatterns is the full hour-of-day breakdown across both platforms.
type TimePatterns struct {
	RidePatterns map[int]HourStats `json:"ride_patterns"`
	EatsPatterns map[int]HourStats `json:"eats_patterns"`
	PeakHours    PeakHours         `json:"peak_hours"`
}

// BasicStatistics summarises the loaded earner population.
type BasicStatistics struct {
	TotalEarners        int            `json:"total_earners"`
	EarnerTypes         map[string]int `json:"earner_types"`
	VehicleTypes        map[string]int `json:"vehicle_types"`
	FuelTypes           map[string]int `json:"fuel_types"`
	StatusDistribution  map[string]int `json:"status_distribution"`
	Cities              int            `json:"cities"`
	AvgRating           float64        `json:"avg_rating"`
	AvgExperienceMonths float64        `json:"avg_experience_months"`
	EVPercentage        float64        `json:"ev_percentage"`
}
