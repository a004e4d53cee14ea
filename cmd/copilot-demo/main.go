// README: Offline demo; runs the engines over a small in-memory dataset.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/analytics"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/dataset"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/forecast"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/insights"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/location"
)

func main() {
	provider := dataset.NewProvider(dataset.StaticLoader{Tables: demoTables()}, nil)
	store, err := provider.Store(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	analyticsSvc := analytics.NewService(store)
	insightsSvc := insights.NewService(store, analyticsSvc)
	forecastSvc := forecast.NewService(store, analyticsSvc)
	locationSvc := location.NewService(store, nil)

	insight, err := insightsSvc.EarnerInsights("E10001")
	if err != nil {
		log.Fatal(err)
	}
	printJSON("Insights for E10001", insight)

	prediction, err := forecastSvc.Predict("E10001", 8, forecast.PlatformBoth)
	if err != nil {
		log.Fatal(err)
	}
	printJSON("8-hour forecast for E10001", prediction)

	printJSON("Recommendations for city 1 at 18:00", locationSvc.Recommendations(1, 18))
}

func printJSON(title string, v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("== %s ==\n%s\n\n", title, b)
}

func demoTables() dataset.Tables {
	day := func(d int, hour int) time.Time {
		return time.Date(2023, time.January, d, hour, 0, 0, 0, time.UTC)
	}

	var trips []dataset.RideTrip
	for d := 1; d <= 14; d++ {
		for _, h := range []int{8, 12, 18} {
			surge := 1.0
			if h == 18 {
				surge = 1.4
			}
			trips = append(trips, dataset.RideTrip{
				DriverID:        "E10001",
				CityID:          1,
				StartTime:       day(d, h),
				EndTime:         day(d, h).Add(30 * time.Minute),
				DistanceKm:      8,
				DurationMins:    30,
				FareAmount:      14,
				NetEarnings:     10 * surge,
				SurgeMultiplier: surge,
			})
		}
	}

	var daily []dataset.DailyEarnings
	for d := 1; d <= 14; d++ {
		daily = append(daily, dataset.DailyEarnings{
			EarnerID:          "E10001",
			Date:              day(d, 0),
			CityID:            1,
			TotalNetEarnings:  90,
			RidesDurationMins: 360,
			TripsCount:        3,
		})
	}

	return dataset.Tables{
		Earners: []dataset.Earner{
			{ID: "E10001", Type: dataset.TypeDriver, VehicleType: "car", FuelType: dataset.FuelGas,
				ExperienceMonths: 30, Rating: 4.4, Status: dataset.StatusOnline, HomeCityID: 1},
			{ID: "E10002", Type: dataset.TypeDriver, VehicleType: "car", FuelType: dataset.FuelEV, IsEV: true,
				ExperienceMonths: 48, Rating: 4.8, Status: dataset.StatusOnline, HomeCityID: 1},
			{ID: "E10003", Type: dataset.TypeCourier, VehicleType: "bike", FuelType: dataset.FuelHybrid,
				ExperienceMonths: 6, Rating: 4.1, Status: dataset.StatusOffline, HomeCityID: 1},
		},
		RideTrips:     trips,
		DailyEarnings: daily,
		Incentives: []dataset.Incentive{
			{EarnerID: "E10001", Week: "2023-W01", Program: "weekend_boost",
				TargetJobs: 20, CompletedJobs: 8, BonusEUR: 40},
		},
		Heatmap: []dataset.HeatmapCell{
			{CityID: 1, HexagonID: "hexA", PredictedEPH: 28, PredictedStd: 3},
			{CityID: 1, HexagonID: "hexB", PredictedEPH: 19, PredictedStd: 2},
		},
		CancellationRates: []dataset.CancellationRate{
			{CityID: 1, HexagonID: "hexA", RatePct: 12},
			{CityID: 1, HexagonID: "hexB", RatePct: 4},
		},
		SurgeByHour: []dataset.SurgeHour{
			{CityID: 1, Hour: 8, Multiplier: 1.1},
			{CityID: 1, Hour: 18, Multiplier: 1.5},
			{CityID: 1, Hour: 3, Multiplier: 0.7},
		},
		WeatherDaily: []dataset.WeatherDay{
			{CityID: 1, Date: day(1, 0), Weather: "rain"},
			{CityID: 1, Date: day(2, 0), Weather: "clear"},
		},
	}
}
