// README: Per-earner insight shapes (competitive intelligence, demand, quests).
package insights

import "github.com/xXWapixelXx/Uber-Copilot/internal/types"

// Demand level classifications, first match wins from the top.
const (
	DemandHigh   = "HIGH"
	DemandMedium = "MEDIUM"
	DemandLow    = "LOW"
)

// CompetitiveIntelligence ranks an earner among home-city peers.
// Percentiles count peers strictly below the earner; BetterPerformers
// counts peers strictly ahead on both rating and experience at once.
type CompetitiveIntelligence struct {
	ExperiencePercentile float64 `json:"experience_percentile"`
	RatingPercentile     float64 `json:"rating_percentile"`
	BetterPerformers     int     `json:"better_performers"`
	TotalPeers           int     `json:"total_peers"`
	RankingPct           float64 `json:"ranking_pct"`
}

// MarketDemand classifies city activity from earner statuses.
type MarketDemand struct {
	Level         string  `json:"level"`
	ActivityRatio float64 `json:"activity_ratio"`
	ActiveEarners int     `json:"active_earners"`
	TotalEarners  int     `json:"total_earners"`
}

// Insight is the full per-earner analytics answer.
type Insight struct {
	EarnerID                types.ID                `json:"earner_id"`
	HourlyRate              float64                 `json:"hourly_rate"`
	CityAverage             float64                 `json:"city_average"`
	PerformanceVsCityPct    float64                 `json:"performance_vs_city_pct"`
	CompetitiveIntelligence CompetitiveIntelligence `json:"competitive_intelligence"`
	MarketDemand            MarketDemand            `json:"market_demand"`
	Recommendations         []string                `json:"recommendations"`
}

// QuestInsights summarises an earner's weekly incentive performance.
type QuestInsights struct {
	EarnerID         types.ID       `json:"earner_id"`
	TotalQuests      int            `json:"total_quests"`
	CompletedQuests  int            `json:"completed_quests"`
	CompletionRate   float64        `json:"completion_rate"`
	TotalBonusesEUR  float64        `json:"total_bonuses_eur"`
	ProgramBreakdown map[string]int `json:"program_breakdown"`
	Recommendations  []string       `json:"recommendations"`
}
