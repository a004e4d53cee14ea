// README: Hourly-rate estimator with a fixed fallback when no time was worked.
package rates

import (
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/dataset"
)

// DefaultHourlyRate is returned whenever a record set carries zero worked
// minutes. It matches the platform-wide base rate used by the original
// dashboard so fallback numbers stay comparable.
const DefaultHourlyRate = 15.0

// HourlyRate estimates net earnings per worked hour from daily records.
// Pure function of its input; callers may pass the rows of one earner or
// the pooled rows of a whole group.
func HourlyRate(records []dataset.DailyEarnings) float64 {
	var earnings, minutes float64
	for _, r := range records {
		earnings += r.TotalNetEarnings
		minutes += r.RidesDurationMins + r.EatsDurationMins
	}
	return FromTotals(earnings, minutes)
}

// FromTotals converts already-summed earnings and worked minutes into an
// hourly rate, short-circuiting the zero-minutes division.
func FromTotals(totalNetEarnings, workedMinutes float64) float64 {
	if workedMinutes <= 0 {
		return DefaultHourlyRate
	}
	return totalNetEarnings / (workedMinutes / 60)
}
