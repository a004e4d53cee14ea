// README: Aggregation engine; grouped hourly rates and hour-of-day patterns.
package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/dataset"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/rates"
	"github.com/xXWapixelXx/Uber-Copilot/internal/types"
)

// ExperienceBuckets are the month ranges used for experience grouping,
// lower bound inclusive, upper bound exclusive.
var ExperienceBuckets = []struct {
	Label string
	Min   int
	Max   int // -1 means open-ended
}{
	{"0-12 months", 0, 12},
	{"12-24 months", 12, 24},
	{"24-36 months", 24, 36},
	{"36-60 months", 36, 60},
	{"60+ months", 60, -1},
}

// Service computes read-only aggregates over the loaded dataset.
type Service struct {
	store *dataset.Store
}

func NewService(store *dataset.Store) *Service {
	return &Service{store: store}
}

// EarningsByCity joins daily earnings to earners and estimates one hourly
// rate per home city. Cities without records are absent from the map;
// callers must treat a missing key as "no data", not zero earnings.
func (s *Service) EarningsByCity() map[types.CityID]float64 {
	groups := make(map[types.CityID][]dataset.DailyEarnings)
	for _, row := range s.store.DailyJoined() {
		city := row.Earner.HomeCityID
		groups[city] = append(groups[city], row.Record)
	}

	out := make(map[types.CityID]float64, len(groups))
	for city, records := range groups {
		out[city] = rates.HourlyRate(records)
	}
	return out
}

// EarningsByExperience buckets earners by experience in months and
// estimates one hourly rate per bucket.
func (s *Service) EarningsByExperience() map[string]float64 {
	groups := make(map[string][]dataset.DailyEarnings)
	for _, row := range s.store.DailyJoined() {
		label := experienceBucket(row.Earner.ExperienceMonths)
		groups[label] = append(groups[label], row.Record)
	}

	out := make(map[string]float64, len(groups))
	for label, records := range groups {
		out[label] = rates.HourlyRate(records)
	}
	return out
}

func experienceBucket(months int) string {
	for _, b := range ExperienceBuckets {
		if months >= b.Min && (b.Max < 0 || months < b.Max) {
			return b.Label
		}
	}
	return ExperienceBuckets[len(ExperienceBuckets)-1].Label
}

// TimePatterns groups trips and orders by hour of day and reports mean
// earnings, surge/basket, distance and duration per hour, plus the top-3
// earning hours per platform.
func (s *Service) TimePatterns() TimePatterns {
	ridePatterns := rideHourStats(s.store.Trips())
	eatsPatterns := eatsHourStats(s.store.Orders())

	return TimePatterns{
		RidePatterns: ridePatterns,
		EatsPatterns: eatsPatterns,
		PeakHours: PeakHours{
			Rides: peakHours(ridePatterns),
			Eats:  peakHours(eatsPatterns),
		},
	}
}

func rideHourStats(trips []dataset.RideTrip) map[int]HourStats {
	type acc struct{ net, surge, dist, dur []float64 }
	byHour := make(map[int]*acc)
	for _, t := range trips {
		h := t.StartTime.Hour()
		a := byHour[h]
		if a == nil {
			a = &acc{}
			byHour[h] = a
		}
		a.net = append(a.net, t.NetEarnings)
		a.surge = append(a.surge, t.SurgeMultiplier)
		a.dist = append(a.dist, t.DistanceKm)
		a.dur = append(a.dur, t.DurationMins)
	}

	out := make(map[int]HourStats, len(byHour))
	for h, a := range byHour {
		out[h] = HourStats{
			NetEarnings:     stat.Mean(a.net, nil),
			SurgeMultiplier: stat.Mean(a.surge, nil),
			DistanceKm:      stat.Mean(a.dist, nil),
			DurationMins:    stat.Mean(a.dur, nil),
			Samples:         len(a.net),
		}
	}
	return out
}

func eatsHourStats(orders []dataset.EatsOrder) map[int]HourStats {
	type acc struct{ net, basket, dist, dur []float64 }
	byHour := make(map[int]*acc)
	for _, o := range orders {
		h := o.StartTime.Hour()
		a := byHour[h]
		if a == nil {
			a = &acc{}
			byHour[h] = a
		}
		a.net = append(a.net, o.NetEarnings)
		a.basket = append(a.basket, o.BasketValueEUR)
		a.dist = append(a.dist, o.DistanceKm)
		a.dur = append(a.dur, o.DurationMins)
	}

	out := make(map[int]HourStats, len(byHour))
	for h, a := range byHour {
		out[h] = HourStats{
			NetEarnings:    stat.Mean(a.net, nil),
			BasketValueEUR: stat.Mean(a.basket, nil),
			DistanceKm:     stat.Mean(a.dist, nil),
			DurationMins:   stat.Mean(a.dur, nil),
			Samples:        len(a.net),
		}
	}
	return out
}

// peakHours returns up to three hours sorted by descending mean net
// earnings. The sort is stable over ascending hours, so ties keep the
// earlier hour first.
func peakHours(patterns map[int]HourStats) []int {
	hours := make([]int, 0, len(patterns))
	for h := range patterns {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	sort.SliceStable(hours, func(i, j int) bool {
		return patterns[hours[i]].NetEarnings > patterns[hours[j]].NetEarnings
	})
	if len(hours) > 3 {
		hours = hours[:3]
	}
	return hours
}

// BasicStatistics summarises the earner population for dashboards and the
// assistant's context blob.
func (s *Service) BasicStatistics() BasicStatistics {
	earners := s.store.Earners()

	stats := BasicStatistics{
		TotalEarners:       len(earners),
		EarnerTypes:        make(map[string]int),
		VehicleTypes:       make(map[string]int),
		FuelTypes:          make(map[string]int),
		StatusDistribution: make(map[string]int),
	}
	if len(earners) == 0 {
		return stats
	}

	cities := make(map[types.CityID]struct{})
	ratings := make([]float64, 0, len(earners))
	experience := make([]float64, 0, len(earners))
	evCount := 0
	for _, e := range earners {
		stats.EarnerTypes[string(e.Type)]++
		stats.VehicleTypes[e.VehicleType]++
		stats.FuelTypes[string(e.FuelType)]++
		stats.StatusDistribution[string(e.Status)]++
		cities[e.HomeCityID] = struct{}{}
		ratings = append(ratings, e.Rating)
		experience = append(experience, float64(e.ExperienceMonths))
		if e.IsEV {
			evCount++
		}
	}

	stats.Cities = len(cities)
	stats.AvgRating = stat.Mean(ratings, nil)
	stats.AvgExperienceMonths = stat.Mean(experience, nil)
	stats.EVPercentage = float64(evCount) / float64(len(earners)) * 100
	return stats
}
