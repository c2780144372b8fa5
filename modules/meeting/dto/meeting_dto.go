package dto

import (
	"time"

	"smart-scheduler/modules/meeting/entity"
)

// ===================== Request DTOs =====================

// MeetingInput is one meeting in a wholesale replacement request.
type MeetingInput struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Start           time.Time `json:"start" validate:"required"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	AttendeeEmail   string    `json:"attendee_email"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
}

// ReplaceMeetingsRequest swaps the entire meeting set. There are no
// partial or merge semantics.
type ReplaceMeetingsRequest struct {
	Meetings []MeetingInput `json:"meetings"`
}

// ===================== Response DTOs =====================

// MeetingListResponse lists the currently held meetings.
type MeetingListResponse struct {
	Meetings []entity.Meeting `json:"meetings"`
	Total    int              `json:"total"`
}
