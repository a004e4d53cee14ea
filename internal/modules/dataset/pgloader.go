// README: Postgres loader; materializes the nine copilot tables at startup.
package dataset

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xXWapixelXx/Uber-Copilot/internal/types"
)

// PGLoader reads the dataset tables from Postgres in one pass. The schema
// mirrors the source workbook sheets (earners, rides_trips, eats_orders,
// earnings_daily, incentives_weekly, heatmap, cancellation_rates,
// surge_by_hour, weather_daily).
type PGLoader struct {
	db *pgxpool.Pool
}

func NewPGLoader(db *pgxpool.Pool) *PGLoader {
	return &PGLoader{db: db}
}

func (l *PGLoader) Load(ctx context.Context) (Tables, error) {
	var t Tables
	var err error

	if t.Earners, err = l.loadEarners(ctx); err != nil {
		return Tables{}, fmt.Errorf("load earners: %w", err)
	}
	if t.RideTrips, err = l.loadRideTrips(ctx); err != nil {
		return Tables{}, fmt.Errorf("load rides_trips: %w", err)
	}
	if t.EatsOrders, err = l.loadEatsOrders(ctx); err != nil {
		return Tables{}, fmt.Errorf("load eats_orders: %w", err)
	}
	if t.DailyEarnings, err = l.loadDailyEarnings(ctx); err != nil {
		return Tables{}, fmt.Errorf("load earnings_daily: %w", err)
	}
	if t.Incentives, err = l.loadIncentives(ctx); err != nil {
		return Tables{}, fmt.Errorf("load incentives_weekly: %w", err)
	}
	if t.Heatmap, err = l.loadHeatmap(ctx); err != nil {
		return Tables{}, fmt.Errorf("load heatmap: %w", err)
	}
	if t.CancellationRates, err = l.loadCancellationRates(ctx); err != nil {
		return Tables{}, fmt.Errorf("load cancellation_rates: %w", err)
	}
	if t.SurgeByHour, err = l.loadSurge(ctx); err != nil {
		return Tables{}, fmt.Errorf("load surge_by_hour: %w", err)
	}
	if t.WeatherDaily, err = l.loadWeather(ctx); err != nil {
		return Tables{}, fmt.Errorf("load weather_daily: %w", err)
	}
	return t, nil
}

func (l *PGLoader) loadEarners(ctx context.Context) ([]Earner, error) {
	rows, err := l.db.Query(ctx, `
		SELECT earner_id, earner_type, vehicle_type, fuel_type, is_ev,
		       experience_months, rating, status, home_city_id
		FROM earners`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Earner
	for rows.Next() {
		var e Earner
		var id string
		var cityID int
		if err := rows.Scan(&id, &e.Type, &e.VehicleType, &e.FuelType, &e.IsEV,
			&e.ExperienceMonths, &e.Rating, &e.Status, &cityID); err != nil {
			return nil, err
		}
		e.ID = types.ID(id)
		e.HomeCityID = types.CityID(cityID)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (l *PGLoader) loadRideTrips(ctx context.Context) ([]RideTrip, error) {
	rows, err := l.db.Query(ctx, `
		SELECT driver_id, city_id, start_time, end_time, distance_km, duration_mins,
		       fare_amount, uber_fee, net_earnings, tips, surge_multiplier
		FROM rides_trips`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RideTrip
	for rows.Next() {
		var t RideTrip
		var id string
		var cityID int
		if err := rows.Scan(&id, &cityID, &t.StartTime, &t.EndTime, &t.DistanceKm,
			&t.DurationMins, &t.FareAmount, &t.UberFee, &t.NetEarnings, &t.Tips,
			&t.SurgeMultiplier); err != nil {
			return nil, err
		}
		t.DriverID = types.ID(id)
		t.CityID = types.CityID(cityID)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (l *PGLoader) loadEatsOrders(ctx context.Context) ([]EatsOrder, error) {
	rows, err := l.db.Query(ctx, `
		SELECT courier_id, city_id, start_time, end_time, basket_value_eur,
		       delivery_fee_eur, tip_eur, distance_km, duration_mins, net_earnings
		FROM eats_orders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EatsOrder
	for rows.Next() {
		var o EatsOrder
		var id string
		var cityID int
		if err := rows.Scan(&id, &cityID, &o.StartTime, &o.EndTime, &o.BasketValueEUR,
			&o.DeliveryFeeEUR, &o.TipEUR, &o.DistanceKm, &o.DurationMins,
			&o.NetEarnings); err != nil {
			return nil, err
		}
		o.CourierID = types.ID(id)
		o.CityID = types.CityID(cityID)
		out = append(out, o)
	}
	return out, rows.Err()
}

func (l *PGLoader) loadDailyEarnings(ctx context.Context) ([]DailyEarnings, error) {
	rows, err := l.db.Query(ctx, `
		SELECT earner_id, date, city_id, total_net_earnings,
		       rides_duration_mins, eats_duration_mins, trips_count, orders_count
		FROM earnings_daily`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyEarnings
	for rows.Next() {
		var d DailyEarnings
		var id string
		var cityID int
		if err := rows.Scan(&id, &d.Date, &cityID, &d.TotalNetEarnings,
			&d.RidesDurationMins, &d.EatsDurationMins, &d.TripsCount,
			&d.OrdersCount); err != nil {
			return nil, err
		}
		d.EarnerID = types.ID(id)
		d.CityID = types.CityID(cityID)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (l *PGLoader) loadIncentives(ctx context.Context) ([]Incentive, error) {
	rows, err := l.db.Query(ctx, `
		SELECT earner_id, week, program, target_jobs, completed_jobs, achieved, bonus_eur
		FROM incentives_weekly`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Incentive
	for rows.Next() {
		var q Incentive
		var id string
		if err := rows.Scan(&id, &q.Week, &q.Program, &q.TargetJobs,
			&q.CompletedJobs, &q.Achieved, &q.BonusEUR); err != nil {
			return nil, err
		}
		q.EarnerID = types.ID(id)
		out = append(out, q)
	}
	return out, rows.Err()
}

func (l *PGLoader) loadHeatmap(ctx context.Context) ([]HeatmapCell, error) {
	rows, err := l.db.Query(ctx, `
		SELECT city_id, hexagon_id, predicted_eph, predicted_std, in_final_heatmap
		FROM heatmap`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HeatmapCell
	for rows.Next() {
		var h HeatmapCell
		var cityID int
		if err := rows.Scan(&cityID, &h.HexagonID, &h.PredictedEPH,
			&h.PredictedStd, &h.InFinalHeatmap); err != nil {
			return nil, err
		}
		h.CityID = types.CityID(cityID)
		out = append(out, h)
	}
	return out, rows.Err()
}

func (l *PGLoader) loadCancellationRates(ctx context.Context) ([]CancellationRate, error) {
	rows, err := l.db.Query(ctx, `
		SELECT city_id, hexagon_id, cancellation_rate_pct
		FROM cancellation_rates`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CancellationRate
	for rows.Next() {
		var c CancellationRate
		var cityID int
		if err := rows.Scan(&cityID, &c.HexagonID, &c.RatePct); err != nil {
			return nil, err
		}
		c.CityID = types.CityID(cityID)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (l *PGLoader) loadSurge(ctx context.Context) ([]SurgeHour, error) {
	rows, err := l.db.Query(ctx, `
		SELECT city_id, hour, surge_multiplier
		FROM surge_by_hour`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SurgeHour
	for rows.Next() {
		var s SurgeHour
		var cityID int
		if err := rows.Scan(&cityID, &s.Hour, &s.Multiplier); err != nil {
			return nil, err
		}
		s.CityID = types.CityID(cityID)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (l *PGLoader) loadWeather(ctx context.Context) ([]WeatherDay, error) {
	rows, err := l.db.Query(ctx, `
		SELECT city_id, date, weather
		FROM weather_daily`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WeatherDay
	for rows.Next() {
		var w WeatherDay
		var cityID int
		if err := rows.Scan(&cityID, &w.Date, &w.Weather); err != nil {
			return nil, err
		}
		w.CityID = types.CityID(cityID)
		out = append(out, w)
	}
	return out, rows.Err()
}
