// README: Serializes engine output into the textual context blob for the model.
package assistant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/analytics"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/forecast"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/insights"
	"github.com/xXWapixelXx/Uber-Copilot/internal/types"
)

// ContextBuilder turns analytics and insight output into a plain-text
// context block. The assistant only ever consumes this text; it has no
// other view of the engine.
type ContextBuilder struct {
	analytics *analytics.Service
	insights  *insights.Service
}

func NewContextBuilder(analyticsSvc *analytics.Service, insightsSvc *insights.Service) *ContextBuilder {
	return &ContextBuilder{analytics: analyticsSvc, insights: insightsSvc}
}

// PlatformContext serializes the platform-wide picture.
func (b *ContextBuilder) PlatformContext() string {
	stats := b.analytics.BasicStatistics()
	patterns := b.analytics.TimePatterns()

	var sb strings.Builder
	sb.WriteString("You are an assistant for rideshare drivers and delivery couriers, ")
	sb.WriteString("helping them maximize earnings and work-life balance.\n\n")
	sb.WriteString("Current Data Context:\n")
	fmt.Fprintf(&sb, "- Total earners in system: %d\n", stats.TotalEarners)
	fmt.Fprintf(&sb, "- Average rating: %.2f\n", stats.AvgRating)
	fmt.Fprintf(&sb, "- Average experience: %.1f months\n", stats.AvgExperienceMonths)
	fmt.Fprintf(&sb, "- Cities: %d\n", stats.Cities)
	fmt.Fprintf(&sb, "- EV adoption: %.1f%%\n", stats.EVPercentage)

	sb.WriteString("\nEarnings by city (hourly rate):\n")
	byCity := b.analytics.EarningsByCity()
	cities := make([]int, 0, len(byCity))
	for c := range byCity {
		cities = append(cities, int(c))
	}
	sort.Ints(cities)
	for _, c := range cities {
		fmt.Fprintf(&sb, "- city %d: %.2f\n", c, byCity[types.CityID(c)])
	}

	fmt.Fprintf(&sb, "\nPeak hours: rides %v, eats %v\n",
		patterns.PeakHours.Rides, patterns.PeakHours.Eats)
	return sb.String()
}

// EarnerContext appends the personal insight block when it is available.
// NotFound/NoData simply leave the block out; the assistant answers
// generically in that case.
func (b *ContextBuilder) EarnerContext(insight *insights.Insight) string {
	if insight == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\nCurrent earner:\n")
	fmt.Fprintf(&sb, "- id: %s\n", insight.EarnerID)
	fmt.Fprintf(&sb, "- hourly rate: %.2f (city average %.2f, %+.1f%% vs city)\n",
		insight.HourlyRate, insight.CityAverage, insight.PerformanceVsCityPct)
	fmt.Fprintf(&sb, "- ranking: better than %.1f%% of %d city peers\n",
		insight.CompetitiveIntelligence.RankingPct, insight.CompetitiveIntelligence.TotalPeers)
	fmt.Fprintf(&sb, "- market demand: %s\n", insight.MarketDemand.Level)
	for _, r := range insight.Recommendations {
		fmt.Fprintf(&sb, "- tip: %s\n", r)
	}
	return sb.String()
}

// ForecastContext serializes a prediction for the earnings-advice prompt.
func (b *ContextBuilder) ForecastContext(p *forecast.Prediction) string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nForecast for the next %d hours (%s):\n", p.Hours, p.Platform)
	if p.Rides != nil {
		fmt.Fprintf(&sb, "- rides: %.2f predicted (%.2f/hr, confidence %.2f)\n",
			p.Rides.PredictedEarnings, p.Rides.HourlyRate, p.Rides.Confidence)
	}
	if p.Eats != nil {
		fmt.Fprintf(&sb, "- eats: %.2f predicted (%.2f/hr, confidence %.2f)\n",
			p.Eats.PredictedEarnings, p.Eats.HourlyRate, p.Eats.Confidence)
	}
	if p.OptimalStrategy != nil {
		fmt.Fprintf(&sb, "- strategy: %s (%s)\n",
			p.OptimalStrategy.Name, p.OptimalStrategy.Recommendation)
	}
	return sb.String()
}
