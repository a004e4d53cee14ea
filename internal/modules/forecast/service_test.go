package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/analytics"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/dataset"
)

func newTestService(t *testing.T, tables dataset.Tables) *Service {
	t.Helper()
	store := dataset.NewStore(tables, nil)
	return NewService(store, analytics.NewService(store))
}

func fixedClock(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2023, 1, 2, hour, 0, 0, 0, time.UTC)
	}
}

func TestPredict_Validation(t *testing.T) {
	svc := newTestService(t, dataset.Tables{
		Earners: []dataset.Earner{{ID: "E1", HomeCityID: 1}},
	})

	if _, err := svc.Predict("E1", 8, "scooters"); !errors.Is(err, ErrBadPlatform) {
		t.Fatalf("bad platform err = %v, want ErrBadPlatform", err)
	}
	if _, err := svc.Predict("NOBODY", 8, PlatformBoth); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown earner err = %v, want ErrNotFound", err)
	}
}

func TestPredict_DefaultsWithoutHistory(t *testing.T) {
	svc := newTestService(t, dataset.Tables{
		Earners: []dataset.Earner{{ID: "E1", HomeCityID: 1}},
	}).WithClock(fixedClock(9))

	got, err := svc.Predict("E1", 8, PlatformBoth)
	if err != nil {
		t.Fatal(err)
	}

	// No history anywhere: flat default rates, no adjustment.
	if got.Rides.PredictedEarnings != 100 {
		t.Fatalf("rides prediction = %v, want 100", got.Rides.PredictedEarnings)
	}
	if got.Eats.PredictedEarnings != 68 {
		t.Fatalf("eats prediction = %v, want 68", got.Eats.PredictedEarnings)
	}
	if got.TotalPredictedEarnings != 168 {
		t.Fatalf("total = %v, want 168", got.TotalPredictedEarnings)
	}
	if got.Rides.Confidence != 0.6 || got.Eats.Confidence != 0.6 {
		t.Fatalf("confidence = %v / %v, want 0.6 / 0.6", got.Rides.Confidence, got.Eats.Confidence)
	}
	if got.OptimalStrategy == nil || got.OptimalStrategy.Name != StrategyMultiPlatform {
		t.Fatalf("strategy = %+v, want multi_platform", got.OptimalStrategy)
	}
}

func TestPredict_SurgeAdjustment(t *testing.T) {
	svc := newTestService(t, dataset.Tables{
		Earners: []dataset.Earner{
			{ID: "E1", HomeCityID: 1},
			{ID: "E2", HomeCityID: 1},
		},
		// E2's trip defines the hour-10 surge pattern; E1 has no history of
		// its own, so the default rate applies.
		RideTrips: []dataset.RideTrip{
			{DriverID: "E2", StartTime: time.Date(2023, 1, 2, 10, 30, 0, 0, time.UTC),
				NetEarnings: 20, SurgeMultiplier: 2.0, DurationMins: 30},
		},
	}).WithClock(fixedClock(10))

	got, err := svc.Predict("E1", 1, PlatformRides)
	if err != nil {
		t.Fatal(err)
	}

	// adjustment = 1 + (2.0 - 1.0) * 0.1 = 1.1; 12.50 * 1 * 1.1 = 13.75.
	if got.Rides.PredictedEarnings != 13.75 {
		t.Fatalf("rides prediction = %v, want 13.75", got.Rides.PredictedEarnings)
	}
	if got.Eats != nil {
		t.Fatal("rides-only forecast must not include eats")
	}
}

func TestPredict_PersonalRateAndConfidence(t *testing.T) {
	trips := make([]dataset.RideTrip, 0, 12)
	for d := 1; d <= 12; d++ {
		trips = append(trips, dataset.RideTrip{
			DriverID:        "E1",
			StartTime:       time.Date(2023, 1, d, 14, 0, 0, 0, time.UTC),
			NetEarnings:     10,
			DurationMins:    30,
			SurgeMultiplier: 1.0,
		})
	}

	svc := newTestService(t, dataset.Tables{
		Earners:   []dataset.Earner{{ID: "E1", HomeCityID: 1}},
		RideTrips: trips,
	}).WithClock(fixedClock(14))

	got, err := svc.Predict("E1", 1, PlatformRides)
	if err != nil {
		t.Fatal(err)
	}

	// 120 EUR over 360 minutes = 20/h, flat surge keeps the adjustment at 1.
	if got.Rides.PredictedEarnings != 20 {
		t.Fatalf("rides prediction = %v, want 20", got.Rides.PredictedEarnings)
	}
	if got.Rides.Confidence != 0.8 {
		t.Fatalf("confidence = %v, want 0.8 with %d trips", got.Rides.Confidence, len(trips))
	}
}

func TestPredict_EatsDemandFactor(t *testing.T) {
	svc := newTestService(t, dataset.Tables{
		Earners: []dataset.Earner{
			{ID: "E1", HomeCityID: 1},
			{ID: "E2", HomeCityID: 1},
		},
		EatsOrders: []dataset.EatsOrder{
			{CourierID: "E2", StartTime: time.Date(2023, 1, 2, 19, 0, 0, 0, time.UTC),
				NetEarnings: 17, DurationMins: 20},
		},
	}).WithClock(fixedClock(19))

	got, err := svc.Predict("E1", 1, PlatformEats)
	if err != nil {
		t.Fatal(err)
	}

	// factor = 17 / 8.50 = 2; adjustment = 1 + (2-1) * 0.05 = 1.05.
	// 8.50 * 1 * 1.05 = 8.925 -> 8.93 after rounding.
	if got.Eats.PredictedEarnings != 8.93 {
		t.Fatalf("eats prediction = %v, want 8.93", got.Eats.PredictedEarnings)
	}
}

func TestRecommendStrategy(t *testing.T) {
	tests := []struct {
		name  string
		rides float64
		eats  float64
		want  string
	}{
		{"rides dominate", 300, 100, StrategyFocusRides},
		{"eats dominate", 100, 300, StrategyFocusEats},
		{"similar potential", 120, 100, StrategyMultiPlatform},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recommendStrategy(
				&PlatformPrediction{PredictedEarnings: tt.rides},
				&PlatformPrediction{PredictedEarnings: tt.eats},
			)
			if got.Name != tt.want {
				t.Fatalf("strategy = %s, want %s", got.Name, tt.want)
			}
		})
	}
}

func TestRecommendStrategy_MultiPlatformSums(t *testing.T) {
	got := recommendStrategy(
		&PlatformPrediction{PredictedEarnings: 100},
		&PlatformPrediction{PredictedEarnings: 90},
	)
	if got.ExpectedEarnings != 190 {
		t.Fatalf("expected earnings = %v, want 190", got.ExpectedEarnings)
	}
}
