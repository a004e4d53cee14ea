// README: Insight engine; rate estimates, city comparison, peer ranking, recommendations.
package insights

import (
	"errors"
	"math"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/analytics"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/dataset"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/rates"
	"github.com/xXWapixelXx/Uber-Copilot/internal/types"
)

var (
	// ErrNotFound means the earner id is absent from the dataset.
	ErrNotFound = errors.New("earner not found")
	// ErrNoData means the earner exists but has no daily earnings rows.
	// The absence is reported as-is; no synthetic estimate is substituted.
	ErrNoData = errors.New("no earnings data for earner")
)

// Demand thresholds; exclusive lower bounds, HIGH checked first.
const (
	demandHighThreshold   = 0.7
	demandMediumThreshold = 0.4
)

type Service struct {
	store     *dataset.Store
	analytics *analytics.Service
}

func NewService(store *dataset.Store, analyticsSvc *analytics.Service) *Service {
	return &Service{store: store, analytics: analyticsSvc}
}

// EstimateRate returns the earner's hourly rate from its daily records.
func (s *Service) EstimateRate(id types.ID) (float64, error) {
	if _, ok := s.store.Earner(id); !ok {
		return 0, ErrNotFound
	}
	daily := s.store.DailyFor(id)
	if len(daily) == 0 {
		return 0, ErrNoData
	}
	return rates.HourlyRate(daily), nil
}

// EarnerInsights computes the full insight block for one earner.
func (s *Service) EarnerInsights(id types.ID) (*Insight, error) {
	earner, ok := s.store.Earner(id)
	if !ok {
		return nil, ErrNotFound
	}
	daily := s.store.DailyFor(id)
	if len(daily) == 0 {
		return nil, ErrNoData
	}

	rate := rates.HourlyRate(daily)
	cityAvg := s.analytics.EarningsByCity()[earner.HomeCityID]

	performance := 0.0
	if cityAvg != 0 {
		performance = round1((rate - cityAvg) / cityAvg * 100)
	}

	peers := s.store.EarnersByCity(earner.HomeCityID)

	return &Insight{
		EarnerID:                id,
		HourlyRate:              round2(rate),
		CityAverage:             round2(cityAvg),
		PerformanceVsCityPct:    performance,
		CompetitiveIntelligence: competitiveRank(earner, peers),
		MarketDemand:            classifyDemand(peers),
		Recommendations:         recommend(earner, rate, cityAvg),
	}, nil
}

// competitiveRank positions the earner among home-city peers. A peer only
// counts as a better performer when strictly ahead on both rating and
// experience; leading on a single axis is not enough.
func competitiveRank(earner dataset.Earner, peers []dataset.Earner) CompetitiveIntelligence {
	total := len(peers)
	if total == 0 {
		return CompetitiveIntelligence{}
	}

	expBelow, ratingBelow, better := 0, 0, 0
	for _, p := range peers {
		if p.ExperienceMonths < earner.ExperienceMonths {
			expBelow++
		}
		if p.Rating < earner.Rating {
			ratingBelow++
		}
		if p.Rating > earner.Rating && p.ExperienceMonths > earner.ExperienceMonths {
			better++
		}
	}

	return CompetitiveIntelligence{
		ExperiencePercentile: round1(float64(expBelow) / float64(total) * 100),
		RatingPercentile:     round1(float64(ratingBelow) / float64(total) * 100),
		BetterPerformers:     better,
		TotalPeers:           total,
		RankingPct:           round1(float64(total-better) / float64(total) * 100),
	}
}

func classifyDemand(peers []dataset.Earner) MarketDemand {
	total := len(peers)
	if total == 0 {
		return MarketDemand{Level: DemandLow}
	}

	active := 0
	for _, p := range peers {
		if p.Status == dataset.StatusOnline || p.Status == dataset.StatusEngaged {
			active++
		}
	}
	ratio := float64(active) / float64(total)

	level := DemandLow
	switch {
	case ratio > demandHighThreshold:
		level = DemandHigh
	case ratio > demandMediumThreshold:
		level = DemandMedium
	}

	return MarketDemand{
		Level:         level,
		ActivityRatio: ratio,
		ActiveEarners: active,
		TotalEarners:  total,
	}
}

// recommend evaluates the fixed rule list in order; every matching rule
// appends, none suppresses the others.
func recommend(earner dataset.Earner, rate, cityAvg float64) []string {
	recs := []string{}
	if earner.Rating < 4.5 {
		recs = append(recs, "Consider focusing on improving your rating through better service")
	}
	if earner.ExperienceMonths < 12 {
		recs = append(recs, "You're still new - focus on learning the best routes and times")
	}
	if rate < cityAvg {
		recs = append(recs, "Try working during peak hours to increase earnings")
	}
	if earner.VehicleType == "car" && earner.FuelType == dataset.FuelGas && !earner.IsEV {
		recs = append(recs, "Consider switching to an EV for potential cost savings")
	}
	if earner.Status == dataset.StatusOffline {
		recs = append(recs, "Go online during peak hours for better earning opportunities")
	}
	return recs
}

// QuestInsights summarises incentive performance. An earner with no quest
// rows gets the participation nudge rather than an error.
func (s *Service) QuestInsights(id types.ID) (*QuestInsights, error) {
	if _, ok := s.store.Earner(id); !ok {
		return nil, ErrNotFound
	}

	quests := s.store.IncentivesFor(id)
	out := &QuestInsights{
		EarnerID:         id,
		ProgramBreakdown: make(map[string]int),
	}
	if len(quests) == 0 {
		out.Recommendations = []string{
			"Start participating in weekly quest programs to maximize bonus earnings",
		}
		return out, nil
	}

	programAchieved := make(map[string]int)
	for _, q := range quests {
		out.TotalQuests++
		out.ProgramBreakdown[q.Program]++
		if q.Achieved {
			out.CompletedQuests++
			out.TotalBonusesEUR += q.BonusEUR
			programAchieved[q.Program]++
		}
	}
	out.CompletionRate = round2(float64(out.CompletedQuests) / float64(out.TotalQuests))
	out.TotalBonusesEUR = round2(out.TotalBonusesEUR)

	if out.CompletionRate < 0.5 {
		out.Recommendations = append(out.Recommendations,
			"Focus on completing more weekly quests to improve bonus earnings")
	}
	if out.CompletionRate > 0.8 {
		out.Recommendations = append(out.Recommendations,
			"Excellent quest completion rate! Consider taking on additional challenges")
	}
	for _, program := range []string{"rides_quest", "eats_quest"} {
		n := out.ProgramBreakdown[program]
		if n == 0 {
			continue
		}
		if float64(programAchieved[program])/float64(n) < 0.5 {
			out.Recommendations = append(out.Recommendations,
				"Focus on completing "+program+" targets for better bonus earnings")
		}
	}
	return out, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
