package rates

import (
	"testing"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/dataset"
)

func TestHourlyRate(t *testing.T) {
	tests := []struct {
		name    string
		records []dataset.DailyEarnings
		want    float64
	}{
		{
			name:    "no records falls back to default",
			records: nil,
			want:    DefaultHourlyRate,
		},
		{
			name: "zero minutes falls back to default",
			records: []dataset.DailyEarnings{
				{TotalNetEarnings: 50},
			},
			want: DefaultHourlyRate,
		},
		{
			name: "100 euros over 8 hours",
			records: []dataset.DailyEarnings{
				{TotalNetEarnings: 100, RidesDurationMins: 480},
			},
			want: 12.5,
		},
		{
			name: "rides and eats minutes pool",
			records: []dataset.DailyEarnings{
				{TotalNetEarnings: 60, RidesDurationMins: 90, EatsDurationMins: 30},
				{TotalNetEarnings: 40, RidesDurationMins: 120},
			},
			// 100 EUR over 240 minutes = 25/h
			want: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HourlyRate(tt.records); got != tt.want {
				t.Fatalf("HourlyRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromTotals_NegativeMinutes(t *testing.T) {
	if got := FromTotals(100, -5); got != DefaultHourlyRate {
		t.Fatalf("FromTotals() = %v, want default %v", got, DefaultHourlyRate)
	}
}
