// README: In-memory entity store with keyed indexes built once after load.
package dataset

import (
	"time"

	"go.uber.org/zap"

	"github.com/xXWapixelXx/Uber-Copilot/internal/types"
)

// Store holds the loaded tables and the indexes the join layer runs on.
// All tables are immutable after NewStore returns, so every accessor is
// safe for concurrent use without locking.
type Store struct {
	tables Tables

	earnersByID        map[types.ID]*Earner
	earnersByCity      map[types.CityID][]*Earner
	tripsByDriver      map[types.ID][]RideTrip
	ordersByCourier    map[types.ID][]EatsOrder
	dailyByEarner      map[types.ID][]DailyEarnings
	incentivesByEarner map[types.ID][]Incentive
	heatmapByCity      map[types.CityID][]HeatmapCell
	cancellationByCity map[types.CityID][]CancellationRate
	surgeByCityHour    map[types.CityID]map[int]float64
	weatherByCityDate  map[types.CityID]map[string]string
}

// NewStore indexes the tables. Rows referencing an unknown earner are
// logged and left out of the per-earner indexes; they never fail the load.
func NewStore(tables Tables, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		tables:             tables,
		earnersByID:        make(map[types.ID]*Earner, len(tables.Earners)),
		earnersByCity:      make(map[types.CityID][]*Earner),
		tripsByDriver:      make(map[types.ID][]RideTrip),
		ordersByCourier:    make(map[types.ID][]EatsOrder),
		dailyByEarner:      make(map[types.ID][]DailyEarnings),
		incentivesByEarner: make(map[types.ID][]Incentive),
		heatmapByCity:      make(map[types.CityID][]HeatmapCell),
		cancellationByCity: make(map[types.CityID][]CancellationRate),
		surgeByCityHour:    make(map[types.CityID]map[int]float64),
		weatherByCityDate:  make(map[types.CityID]map[string]string),
	}

	for i := range tables.Earners {
		e := &tables.Earners[i]
		s.earnersByID[e.ID] = e
		s.earnersByCity[e.HomeCityID] = append(s.earnersByCity[e.HomeCityID], e)
	}

	danglingTrips := 0
	for _, t := range tables.RideTrips {
		if _, ok := s.earnersByID[t.DriverID]; !ok {
			danglingTrips++
			continue
		}
		s.tripsByDriver[t.DriverID] = append(s.tripsByDriver[t.DriverID], t)
	}
	if danglingTrips > 0 {
		logger.Warn("rides reference unknown drivers", zap.Int("rows", danglingTrips))
	}

	danglingOrders := 0
	for _, o := range tables.EatsOrders {
		if _, ok := s.earnersByID[o.CourierID]; !ok {
			danglingOrders++
			continue
		}
		s.ordersByCourier[o.CourierID] = append(s.ordersByCourier[o.CourierID], o)
	}
	if danglingOrders > 0 {
		logger.Warn("orders reference unknown couriers", zap.Int("rows", danglingOrders))
	}

	danglingDaily := 0
	for _, d := range tables.DailyEarnings {
		if _, ok := s.earnersByID[d.EarnerID]; !ok {
			danglingDaily++
			continue
		}
		s.dailyByEarner[d.EarnerID] = append(s.dailyByEarner[d.EarnerID], d)
	}
	if danglingDaily > 0 {
		logger.Warn("daily earnings reference unknown earners", zap.Int("rows", danglingDaily))
	}

	danglingIncentives := 0
	for _, q := range tables.Incentives {
		if _, ok := s.earnersByID[q.EarnerID]; !ok {
			danglingIncentives++
			continue
		}
		s.incentivesByEarner[q.EarnerID] = append(s.incentivesByEarner[q.EarnerID], q)
	}
	if danglingIncentives > 0 {
		logger.Warn("incentives reference unknown earners", zap.Int("rows", danglingIncentives))
	}

	for _, h := range tables.Heatmap {
		s.heatmapByCity[h.CityID] = append(s.heatmapByCity[h.CityID], h)
	}
	for _, c := range tables.CancellationRates {
		s.cancellationByCity[c.CityID] = append(s.cancellationByCity[c.CityID], c)
	}
	for _, sh := range tables.SurgeByHour {
		hours := s.surgeByCityHour[sh.CityID]
		if hours == nil {
			hours = make(map[int]float64, 24)
			s.surgeByCityHour[sh.CityID] = hours
		}
		hours[sh.Hour] = sh.Multiplier
	}
	for _, w := range tables.WeatherDaily {
		days := s.weatherByCityDate[w.CityID]
		if days == nil {
			days = make(map[string]string)
			s.weatherByCityDate[w.CityID] = days
		}
		days[w.Date.Format("2006-01-02")] = w.Weather
	}

	logger.Info("dataset indexed",
		zap.Int("earners", len(tables.Earners)),
		zap.Int("rides", len(tables.RideTrips)),
		zap.Int("orders", len(tables.EatsOrders)),
		zap.Int("daily_rows", len(tables.DailyEarnings)))

	return s
}

// Earner returns the profile for id, if present.
func (s *Store) Earner(id types.ID) (Earner, bool) {
	e, ok := s.earnersByID[id]
	if !ok {
		return Earner{}, false
	}
	return *e, true
}

// Earners returns all loaded earner profiles.
func (s *Store) Earners() []Earner {
	return s.tables.Earners
}

// EarnersByCity returns the earners whose home city is cityID.
func (s *Store) EarnersByCity(cityID types.CityID) []Earner {
	peers := s.earnersByCity[cityID]
	out := make([]Earner, len(peers))
	for i, p := range peers {
		out[i] = *p
	}
	return out
}

// Trips returns every ride trip, dangling driver references included;
// hourly pattern analysis does not join on the earner table.
func (s *Store) Trips() []RideTrip { return s.tables.RideTrips }

// Orders returns every eats order.
func (s *Store) Orders() []EatsOrder { return s.tables.EatsOrders }

// TripsFor returns the trips of one driver.
func (s *Store) TripsFor(id types.ID) []RideTrip { return s.tripsByDriver[id] }

// OrdersFor returns the deliveries of one courier.
func (s *Store) OrdersFor(id types.ID) []EatsOrder { return s.ordersByCourier[id] }

// DailyFor returns the daily earnings rows of one earner.
func (s *Store) DailyFor(id types.ID) []DailyEarnings { return s.dailyByEarner[id] }

// DailyJoined returns every valid daily earnings row joined to its earner.
// Rows with dangling earner references are not part of the index.
func (s *Store) DailyJoined() []DailyJoinedRow {
	out := make([]DailyJoinedRow, 0, len(s.tables.DailyEarnings))
	for id, rows := range s.dailyByEarner {
		e := s.earnersByID[id]
		for _, r := range rows {
			out = append(out, DailyJoinedRow{Earner: *e, Record: r})
		}
	}
	return out
}

// IncentivesFor returns the weekly quest rows of one earner.
func (s *Store) IncentivesFor(id types.ID) []Incentive { return s.incentivesByEarner[id] }

// HeatmapFor returns the heatmap cells for a city.
func (s *Store) HeatmapFor(cityID types.CityID) []HeatmapCell { return s.heatmapByCity[cityID] }

// CancellationsFor returns the per-hexagon cancellation rates for a city.
func (s *Store) CancellationsFor(cityID types.CityID) []CancellationRate {
	return s.cancellationByCity[cityID]
}

// SurgeFor returns the surge multiplier for one city hour.
func (s *Store) SurgeFor(cityID types.CityID, hour int) (float64, bool) {
	m, ok := s.surgeByCityHour[cityID][hour]
	return m, ok
}

// SurgeHoursFor returns every hour→multiplier entry for a city.
func (s *Store) SurgeHoursFor(cityID types.CityID) map[int]float64 {
	return s.surgeByCityHour[cityID]
}

// WeatherFor returns the weather category for one city day.
func (s *Store) WeatherFor(cityID types.CityID, date time.Time) (string, bool) {
	w, ok := s.weatherByCityDate[cityID][date.Format("2006-01-02")]
	return w, ok
}

// WeatherDaysFor returns all recorded weather rows for a city.
func (s *Store) WeatherDaysFor(cityID types.CityID) []WeatherDay {
	var out []WeatherDay
	for _, w := range s.tables.WeatherDaily {
		if w.CityID == cityID {
			out = append(out, w)
		}
	}
	return out
}

// DailyJoinedRow is one daily earnings record paired with its earner profile.
type DailyJoinedRow struct {
	Earner Earner
	Record DailyEarnings
}
