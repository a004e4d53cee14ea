// README: Location intelligence; heatmap/cancellation/surge/weather summaries and tips.
package location

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/dataset"
	"github.com/xXWapixelXx/Uber-Copilot/internal/types"
)

// Neutral defaults used when a city is missing reference rows. Filled in
// silently (logged, never raised) so one sparse city cannot fail a request.
const (
	DefaultSurge   = 1.0
	DefaultWeather = "clear"
)

const (
	surgePeakThreshold    = 1.2
	surgeLowThreshold     = 0.8
	highSurgeTipThreshold = 1.3
	highCancellationPct   = 10.0
	highEarningAreaRate   = 25.0
	highEarningQuantile   = 0.8
)

type Service struct {
	store  *dataset.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewService(store *dataset.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// WithClock overrides the current-time source for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Intelligence summarises a city's location signals. An empty hexID keeps
// the whole city; otherwise heatmap and cancellation views narrow to it.
func (s *Service) Intelligence(cityID types.CityID, hexID string) Intelligence {
	heatmap := s.store.HeatmapFor(cityID)
	cancellations := s.store.CancellationsFor(cityID)
	if hexID != "" {
		heatmap = filterHeatmap(heatmap, hexID)
		cancellations = filterCancellations(cancellations, hexID)
	}

	return Intelligence{
		CityID:        cityID,
		Heatmap:       heatmapInsights(heatmap),
		Cancellations: cancellationInsights(cancellations),
		Surge:         s.surgePatterns(cityID),
		Weather:       weatherImpact(s.store.WeatherDaysFor(cityID)),
	}
}

func filterHeatmap(cells []dataset.HeatmapCell, hexID string) []dataset.HeatmapCell {
	var out []dataset.HeatmapCell
	for _, c := range cells {
		if c.HexagonID == hexID {
			out = append(out, c)
		}
	}
	return out
}

func filterCancellations(rows []dataset.CancellationRate, hexID string) []dataset.CancellationRate {
	var out []dataset.CancellationRate
	for _, r := range rows {
		if r.HexagonID == hexID {
			out = append(out, r)
		}
	}
	return out
}

func heatmapInsights(cells []dataset.HeatmapCell) HeatmapInsights {
	if len(cells) == 0 {
		return HeatmapInsights{}
	}

	eph := make([]float64, len(cells))
	std := make([]float64, len(cells))
	for i, c := range cells {
		eph[i] = c.PredictedEPH
		std[i] = c.PredictedStd
	}

	sorted := append([]float64(nil), eph...)
	sort.Float64s(sorted)
	cut := stat.Quantile(highEarningQuantile, stat.Empirical, sorted, nil)

	high := 0
	for _, v := range eph {
		if v > cut {
			high++
		}
	}

	return HeatmapInsights{
		AvgEarningsPerHour:  stat.Mean(eph, nil),
		EarningsUncertainty: stat.Mean(std, nil),
		HighEarningHexagons: high,
		TotalHexagons:       len(cells),
	}
}

func cancellationInsights(rows []dataset.CancellationRate) CancellationInsights {
	if len(rows) == 0 {
		return CancellationInsights{}
	}

	rates := make([]float64, len(rows))
	high := 0
	for i, r := range rows {
		rates[i] = r.RatePct
		if r.RatePct > highCancellationPct {
			high++
		}
	}
	return CancellationInsights{
		AvgCancellationRate:   stat.Mean(rates, nil),
		HighCancellationAreas: high,
	}
}

func (s *Service) surgePatterns(cityID types.CityID) SurgePatterns {
	hours := s.store.SurgeHoursFor(cityID)
	if len(hours) == 0 {
		s.logger.Warn("no surge rows for city, using neutral default",
			zap.Int("city_id", int(cityID)))
		return SurgePatterns{AvgSurge: DefaultSurge}
	}

	keys := make([]int, 0, len(hours))
	for h := range hours {
		keys = append(keys, h)
	}
	sort.Ints(keys)

	var peak, low []int
	multipliers := make([]float64, 0, len(keys))
	for _, h := range keys {
		m := hours[h]
		multipliers = append(multipliers, m)
		if m > surgePeakThreshold {
			peak = append(peak, h)
		}
		if m < surgeLowThreshold {
			low = append(low, h)
		}
	}

	return SurgePatterns{
		PeakHours:      peak,
		LowDemandHours: low,
		AvgSurge:       stat.Mean(multipliers, nil),
	}
}

func weatherImpact(days []dataset.WeatherDay) WeatherImpact {
	var w WeatherImpact
	for _, d := range days {
		switch d.Weather {
		case "clear":
			w.ClearDays++
		case "rain":
			w.RainDays++
		case "snow":
			w.SnowDays++
		}
	}
	return w
}

// Recommendations evaluates the location tip rules for the given city and
// hour. Missing surge or weather rows degrade to neutral defaults.
func (s *Service) Recommendations(cityID types.CityID, hour int) Recommendations {
	surge, ok := s.store.SurgeFor(cityID, hour)
	if !ok {
		s.logger.Warn("missing surge row, using neutral default",
			zap.Int("city_id", int(cityID)), zap.Int("hour", hour))
		surge = DefaultSurge
	}

	weather, ok := s.store.WeatherFor(cityID, s.now())
	if !ok {
		s.logger.Warn("missing weather row, using neutral default",
			zap.Int("city_id", int(cityID)))
		weather = DefaultWeather
	}

	out := Recommendations{
		CityID:     cityID,
		Conditions: Conditions{Hour: hour, SurgeMultiplier: surge, Weather: weather},
		Items:      []Recommendation{},
	}

	if surge > highSurgeTipThreshold {
		out.Items = append(out.Items, Recommendation{
			Type:     "high_surge",
			Priority: "high",
			Message:  fmt.Sprintf("High surge detected (%.2fx)! Great time to drive.", surge),
			Action:   "Stay online and accept rides immediately",
		})
	} else if surge < surgeLowThreshold {
		out.Items = append(out.Items, Recommendation{
			Type:     "low_demand",
			Priority: "medium",
			Message:  fmt.Sprintf("Low demand period (%.2fx surge). Consider taking a break.", surge),
			Action:   "Consider resting or switching to eats delivery",
		})
	}

	if weather == "rain" {
		out.Items = append(out.Items, Recommendation{
			Type:     "weather_boost",
			Priority: "high",
			Message:  "Rainy weather typically increases demand for rides.",
			Action:   "Focus on ride requests during rain",
		})
	}

	if heatmapInsights(s.store.HeatmapFor(cityID)).AvgEarningsPerHour > highEarningAreaRate {
		out.Items = append(out.Items, Recommendation{
			Type:     "high_earning_area",
			Priority: "high",
			Message:  "You're in a high-earning area!",
			Action:   "Stay in this location for optimal earnings",
		})
	}

	return out
}
