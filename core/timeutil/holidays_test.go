package timeutil

import (
	"testing"
	"time"
)

func TestIsHoliday(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		country string
		want    bool
	}{
		{"swedish midsummer eve", time.Date(2024, 6, 21, 10, 0, 0, 0, time.UTC), "SE", true},
		{"swedish christmas", time.Date(2024, 12, 25, 10, 0, 0, 0, time.UTC), "SE", true},
		{"ordinary swedish workday", time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), "SE", false},
		{"unknown country never matches", time.Date(2024, 12, 25, 10, 0, 0, 0, time.UTC), "US", false},
		{"empty country never matches", time.Date(2024, 12, 25, 10, 0, 0, 0, time.UTC), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHoliday(tt.date, tt.country); got != tt.want {
				t.Errorf("IsHoliday(%v, %q) = %v, want %v", tt.date, tt.country, got, tt.want)
			}
		})
	}
}

func TestIsHolidayIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, 6, 6, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 6, 22, 30, 0, 0, time.UTC)

	if !IsHoliday(morning, "SE") || !IsHoliday(evening, "SE") {
		t.Error("holiday lookup must depend on the date only")
	}
}
