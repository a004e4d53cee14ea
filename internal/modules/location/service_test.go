package location

import (
	"strings"
	"testing"
	"time"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/dataset"
)

func newTestService(t *testing.T, tables dataset.Tables) *Service {
	t.Helper()
	return NewService(dataset.NewStore(tables, nil), nil)
}

func cityTables() dataset.Tables {
	return dataset.Tables{
		Heatmap: []dataset.HeatmapCell{
			{CityID: 1, HexagonID: "hexA", PredictedEPH: 30, PredictedStd: 4},
			{CityID: 1, HexagonID: "hexB", PredictedEPH: 20, PredictedStd: 2},
			{CityID: 1, HexagonID: "hexC", PredictedEPH: 18, PredictedStd: 2},
			{CityID: 1, HexagonID: "hexD", PredictedEPH: 12, PredictedStd: 1},
			{CityID: 1, HexagonID: "hexE", PredictedEPH: 10, PredictedStd: 1},
		},
		CancellationRates: []dataset.CancellationRate{
			{CityID: 1, HexagonID: "hexA", RatePct: 15},
			{CityID: 1, HexagonID: "hexB", RatePct: 5},
		},
		SurgeByHour: []dataset.SurgeHour{
			{CityID: 1, Hour: 8, Multiplier: 1.3},
			{CityID: 1, Hour: 12, Multiplier: 1.0},
			{CityID: 1, Hour: 3, Multiplier: 0.7},
		},
		WeatherDaily: []dataset.WeatherDay{
			{CityID: 1, Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Weather: "rain"},
			{CityID: 1, Date: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), Weather: "clear"},
			{CityID: 1, Date: time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC), Weather: "snow"},
		},
	}
}

func TestIntelligence(t *testing.T) {
	svc := newTestService(t, cityTables())

	got := svc.Intelligence(1, "")

	if got.Heatmap.TotalHexagons != 5 {
		t.Fatalf("total hexagons = %d, want 5", got.Heatmap.TotalHexagons)
	}
	// The 0.8 quantile cuts at the upper tail; only hexA clears it.
	if got.Heatmap.HighEarningHexagons != 1 {
		t.Fatalf("high-earning hexagons = %d, want 1", got.Heatmap.HighEarningHexagons)
	}
	if got.Cancellations.HighCancellationAreas != 1 {
		t.Fatalf("high-cancellation areas = %d, want 1", got.Cancellations.HighCancellationAreas)
	}
	if got.Cancellations.AvgCancellationRate != 10 {
		t.Fatalf("avg cancellation = %v, want 10", got.Cancellations.AvgCancellationRate)
	}
	if len(got.Surge.PeakHours) != 1 || got.Surge.PeakHours[0] != 8 {
		t.Fatalf("surge peak hours = %v, want [8]", got.Surge.PeakHours)
	}
	if len(got.Surge.LowDemandHours) != 1 || got.Surge.LowDemandHours[0] != 3 {
		t.Fatalf("low demand hours = %v, want [3]", got.Surge.LowDemandHours)
	}
	if got.Weather.RainDays != 1 || got.Weather.ClearDays != 1 || got.Weather.SnowDays != 1 {
		t.Fatalf("weather impact = %+v, want one of each", got.Weather)
	}
}

func TestIntelligence_HexagonFilter(t *testing.T) {
	svc := newTestService(t, cityTables())

	got := svc.Intelligence(1, "hexB")
	if got.Heatmap.TotalHexagons != 1 {
		t.Fatalf("filtered hexagons = %d, want 1", got.Heatmap.TotalHexagons)
	}
	if got.Heatmap.AvgEarningsPerHour != 20 {
		t.Fatalf("filtered avg eph = %v, want 20", got.Heatmap.AvgEarningsPerHour)
	}
	if got.Cancellations.HighCancellationAreas != 0 {
		t.Fatalf("hexB high-cancellation areas = %d, want 0", got.Cancellations.HighCancellationAreas)
	}
}

func TestIntelligence_EmptyCityDegrades(t *testing.T) {
	svc := newTestService(t, dataset.Tables{})

	got := svc.Intelligence(42, "")
	if got.Surge.AvgSurge != DefaultSurge {
		t.Fatalf("avg surge = %v, want neutral default %v", got.Surge.AvgSurge, DefaultSurge)
	}
	if got.Heatmap.TotalHexagons != 0 {
		t.Fatalf("hexagons = %d, want 0", got.Heatmap.TotalHexagons)
	}
}

func TestRecommendations_HighSurge(t *testing.T) {
	svc := newTestService(t, cityTables()).WithClock(func() time.Time {
		return time.Date(2023, 1, 1, 8, 0, 0, 0, time.UTC)
	})

	got := svc.Recommendations(1, 8)

	if got.Conditions.SurgeMultiplier != 1.3 {
		t.Fatalf("surge = %v, want 1.3", got.Conditions.SurgeMultiplier)
	}
	if got.Conditions.Weather != "rain" {
		t.Fatalf("weather = %q, want rain", got.Conditions.Weather)
	}

	types := make(map[string]bool)
	for _, item := range got.Items {
		types[item.Type] = true
	}
	// 1.3 is not above the 1.3 tip threshold, so no surge tip fires.
	if types["high_surge"] {
		t.Fatal("surge exactly at threshold must not fire the high-surge tip")
	}
	if !types["weather_boost"] {
		t.Fatalf("expected a weather tip on a rainy day, got %+v", got.Items)
	}
}

func TestRecommendations_MissingRowsUseDefaults(t *testing.T) {
	svc := newTestService(t, dataset.Tables{}).WithClock(func() time.Time {
		return time.Date(2023, 6, 1, 15, 0, 0, 0, time.UTC)
	})

	got := svc.Recommendations(9, 15)

	if got.Conditions.SurgeMultiplier != DefaultSurge {
		t.Fatalf("surge = %v, want default %v", got.Conditions.SurgeMultiplier, DefaultSurge)
	}
	if got.Conditions.Weather != DefaultWeather {
		t.Fatalf("weather = %q, want default %q", got.Conditions.Weather, DefaultWeather)
	}
	if len(got.Items) != 0 {
		t.Fatalf("neutral conditions should produce no tips, got %+v", got.Items)
	}
}

func TestRecommendations_LowDemandAndHighEarningArea(t *testing.T) {
	tables := cityTables()
	svc := newTestService(t, tables).WithClock(func() time.Time {
		return time.Date(2023, 1, 2, 3, 0, 0, 0, time.UTC)
	})

	got := svc.Recommendations(1, 3)

	var lowDemand *Recommendation
	for i := range got.Items {
		if got.Items[i].Type == "low_demand" {
			lowDemand = &got.Items[i]
		}
	}
	if lowDemand == nil {
		t.Fatalf("expected a low-demand tip at 0.7x surge, got %+v", got.Items)
	}
	if !strings.Contains(lowDemand.Message, "0.70x") {
		t.Fatalf("low-demand message = %q, want the surge value in it", lowDemand.Message)
	}
}
