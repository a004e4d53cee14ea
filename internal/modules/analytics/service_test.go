package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/dataset"
	"github.com/xXWapixelXx/Uber-Copilot/internal/types"
)

func newTestService(t *testing.T, tables dataset.Tables) *Service {
	t.Helper()
	return NewService(dataset.NewStore(tables, nil))
}

func TestEarningsByCity(t *testing.T) {
	svc := newTestService(t, dataset.Tables{
		Earners: []dataset.Earner{
			{ID: "E1", HomeCityID: 1},
			{ID: "E2", HomeCityID: 1},
			{ID: "E3", HomeCityID: 2},
		},
		DailyEarnings: []dataset.DailyEarnings{
			{EarnerID: "E1", TotalNetEarnings: 100, RidesDurationMins: 480},
			{EarnerID: "E2", TotalNetEarnings: 50, RidesDurationMins: 120},
			{EarnerID: "E3", TotalNetEarnings: 90, RidesDurationMins: 360},
		},
	})

	got := svc.EarningsByCity()

	// City 1 pools both earners: 150 EUR over 600 minutes = 15/h.
	if got[1] != 15 {
		t.Fatalf("city 1 rate = %v, want 15", got[1])
	}
	if got[2] != 15 {
		t.Fatalf("city 2 rate = %v, want 15", got[2])
	}
	if _, ok := got[types.CityID(99)]; ok {
		t.Fatal("city 99 has no data and must be absent, not zero")
	}
}

func TestExperienceBucket(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, "0-12 months"},
		{11, "0-12 months"},
		{12, "12-24 months"},
		{24, "24-36 months"},
		{36, "36-60 months"},
		{59, "36-60 months"},
		{60, "60+ months"},
		{200, "60+ months"},
	}
	for _, tt := range tests {
		if got := experienceBucket(tt.months); got != tt.want {
			t.Errorf("experienceBucket(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}

func TestEarningsByExperience(t *testing.T) {
	svc := newTestService(t, dataset.Tables{
		Earners: []dataset.Earner{
			{ID: "E1", ExperienceMonths: 6, HomeCityID: 1},
			{ID: "E2", ExperienceMonths: 72, HomeCityID: 1},
		},
		DailyEarnings: []dataset.DailyEarnings{
			{EarnerID: "E1", TotalNetEarnings: 60, RidesDurationMins: 240},
			{EarnerID: "E2", TotalNetEarnings: 100, RidesDurationMins: 240},
		},
	})

	got := svc.EarningsByExperience()
	if got["0-12 months"] != 15 {
		t.Fatalf("junior bucket = %v, want 15", got["0-12 months"])
	}
	if got["60+ months"] != 25 {
		t.Fatalf("senior bucket = %v, want 25", got["60+ months"])
	}
}

func TestPeakHours_StableTiesAndTruncation(t *testing.T) {
	patterns := map[int]HourStats{
		7:  {NetEarnings: 10},
		22: {NetEarnings: 10},
		18: {NetEarnings: 30},
		12: {NetEarnings: 20},
		3:  {NetEarnings: 5},
	}

	got := peakHours(patterns)
	want := []int{18, 12, 7} // the 10-EUR tie resolves to the earlier hour
	if len(got) != len(want) {
		t.Fatalf("peakHours = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("peakHours = %v, want %v", got, want)
		}
	}
}

func TestTimePatterns(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2023, 1, 2, hour, 15, 0, 0, time.UTC)
	}
	svc := newTestService(t, dataset.Tables{
		RideTrips: []dataset.RideTrip{
			{DriverID: "E1", StartTime: at(8), NetEarnings: 10, SurgeMultiplier: 1.0, DistanceKm: 5, DurationMins: 20},
			{DriverID: "E1", StartTime: at(8), NetEarnings: 20, SurgeMultiplier: 1.4, DistanceKm: 7, DurationMins: 30},
			{DriverID: "E1", StartTime: at(18), NetEarnings: 40, SurgeMultiplier: 1.5, DistanceKm: 9, DurationMins: 25},
		},
		EatsOrders: []dataset.EatsOrder{
			{CourierID: "E2", StartTime: at(12), NetEarnings: 8, BasketValueEUR: 24, DistanceKm: 3, DurationMins: 15},
		},
	})

	got := svc.TimePatterns()

	eight := got.RidePatterns[8]
	if eight.Samples != 2 {
		t.Fatalf("hour 8 samples = %d, want 2", eight.Samples)
	}
	if math.Abs(eight.NetEarnings-15) > 1e-9 {
		t.Fatalf("hour 8 mean net = %v, want 15", eight.NetEarnings)
	}
	if math.Abs(eight.SurgeMultiplier-1.2) > 1e-9 {
		t.Fatalf("hour 8 mean surge = %v, want 1.2", eight.SurgeMultiplier)
	}

	if len(got.PeakHours.Rides) != 2 || got.PeakHours.Rides[0] != 18 {
		t.Fatalf("ride peak hours = %v, want [18 8]", got.PeakHours.Rides)
	}
	if len(got.PeakHours.Eats) != 1 || got.PeakHours.Eats[0] != 12 {
		t.Fatalf("eats peak hours = %v, want [12]", got.PeakHours.Eats)
	}
}

func TestBasicStatistics(t *testing.T) {
	svc := newTestService(t, dataset.Tables{
		Earners: []dataset.Earner{
			{ID: "E1", Type: dataset.TypeDriver, VehicleType: "car", FuelType: dataset.FuelEV, IsEV: true,
				ExperienceMonths: 24, Rating: 4.8, Status: dataset.StatusOnline, HomeCityID: 1},
			{ID: "E2", Type: dataset.TypeCourier, VehicleType: "bike", FuelType: dataset.FuelGas,
				ExperienceMonths: 12, Rating: 4.2, Status: dataset.StatusOffline, HomeCityID: 2},
		},
	})

	got := svc.BasicStatistics()
	if got.TotalEarners != 2 || got.Cities != 2 {
		t.Fatalf("totals = %d earners / %d cities, want 2 / 2", got.TotalEarners, got.Cities)
	}
	if got.AvgRating != 4.5 {
		t.Fatalf("avg rating = %v, want 4.5", got.AvgRating)
	}
	if got.EVPercentage != 50 {
		t.Fatalf("ev percentage = %v, want 50", got.EVPercentage)
	}
	if got.FuelTypes["EV"] != 1 {
		t.Fatalf("fuel type EV count = %d, want 1", got.FuelTypes["EV"])
	}
}
