package dto

import (
	"time"

	"smart-scheduler/modules/scheduling/entity"
)

// ===================== Request DTOs =====================

// ValidateBookingRequest proposes one booking for validation.
type ValidateBookingRequest struct {
	Start           time.Time `json:"start" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,min=1"`
}

// AvailabilityQuery asks for the availability grid over a date range.
// Duration and interval fall back to the configured defaults when zero.
type AvailabilityQuery struct {
	From            time.Time `query:"from"`
	To              time.Time `query:"to"`
	DurationMinutes int       `query:"duration"`
	IntervalMinutes int       `query:"interval"`
}

// ===================== Response DTOs =====================

// AvailabilityResponse carries the generated slot grid.
type AvailabilityResponse struct {
	Slots     []entity.TimeSlot `json:"slots"`
	Total     int               `json:"total"`
	Available int               `json:"available"`
}
