// README: Typed rows for the nine copilot tables (earners, trips, orders, aggregates, reference data).
package dataset

import (
	"time"

	"github.com/xXWapixelXx/Uber-Copilot/internal/types"
)

type EarnerType string

const (
	TypeDriver  EarnerType = "driver"
	TypeCourier EarnerType = "courier"
)

type EarnerStatus string

const (
	StatusOnline  EarnerStatus = "online"
	StatusOffline EarnerStatus = "offline"
	StatusEngaged EarnerStatus = "engaged"
)

type FuelType string

const (
	FuelGas    FuelType = "gas"
	FuelHybrid FuelType = "hybrid"
	// FuelEV keeps the original upper-case spelling used by the source data.
	FuelEV FuelType = "EV"
)

// Earner is a driver or courier profile. Rows are immutable after load.
type Earner struct {
	ID               types.ID
	Type             EarnerType
	VehicleType      string
	FuelType         FuelType
	IsEV             bool
	ExperienceMonths int
	Rating           float64
	Status           EarnerStatus
	HomeCityID       types.CityID
}

// RideTrip is one completed rideshare trip.
type RideTrip struct {
	DriverID        types.ID
	CityID          types.CityID
	StartTime       time.Time
	EndTime         time.Time
	DistanceKm      float64
	DurationMins    float64
	FareAmount      float64
	UberFee         float64
	NetEarnings     float64
	Tips            float64
	SurgeMultiplier float64
}

// EatsOrder is one completed food delivery. Money columns are EUR.
type EatsOrder struct {
	CourierID      types.ID
	CityID         types.CityID
	StartTime      time.Time
	EndTime        time.Time
	BasketValueEUR float64
	DeliveryFeeEUR float64
	TipEUR         float64
	DistanceKm     float64
	DurationMins   float64
	NetEarnings    float64
}

// DailyEarnings aggregates one earner's day across both platforms.
type DailyEarnings struct {
	EarnerID          types.ID
	Date              time.Time
	CityID            types.CityID
	TotalNetEarnings  float64
	RidesDurationMins float64
	EatsDurationMins  float64
	TripsCount        int
	OrdersCount       int
}

// Incentive is one weekly quest program entry for an earner.
type Incentive struct {
	EarnerID      types.ID
	Week          string
	Program       string
	TargetJobs    int
	CompletedJobs int
	Achieved      bool
	BonusEUR      float64
}

// HeatmapCell carries the predicted earnings-per-hour for one hexagon.
type HeatmapCell struct {
	CityID         types.CityID
	HexagonID      string
	PredictedEPH   float64
	PredictedStd   float64
	InFinalHeatmap bool
}

// CancellationRate is the rider cancellation percentage for one hexagon.
type CancellationRate struct {
	CityID    types.CityID
	HexagonID string
	RatePct   float64
}

// SurgeHour is the historical surge multiplier for one city hour.
type SurgeHour struct {
	CityID     types.CityID
	Hour       int
	Multiplier float64
}

// WeatherDay is the recorded weather category for one city day.
type WeatherDay struct {
	CityID  types.CityID
	Date    time.Time
	Weather string
}

// Tables is the full dataset handed over by the loading collaborator.
// The loader guarantees type-coerced columns; the store only checks references.
type Tables struct {
	Earners           []Earner
	RideTrips         []RideTrip
	EatsOrders        []EatsOrder
	DailyEarnings     []DailyEarnings
	Incentives        []Incentive
	Heatmap           []HeatmapCell
	CancellationRates []CancellationRate
	SurgeByHour       []SurgeHour
	WeatherDaily      []WeatherDay
}
