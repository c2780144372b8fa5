package entity

import "time"

// MeetingType represents how a meeting is held.
type MeetingType string

const (
	MeetingTypeVideo    MeetingType = "video"
	MeetingTypePhone    MeetingType = "phone"
	MeetingTypeInPerson MeetingType = "in-person"
)

// MeetingStatus represents the lifecycle state of a meeting.
type MeetingStatus string

const (
	MeetingStatusConfirmed MeetingStatus = "confirmed"
	MeetingStatusPending   MeetingStatus = "pending"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// Meeting is an existing booking, immutable from the engine's perspective.
// End is trusted as supplied; the engine does not re-derive it from Start
// and DurationMinutes. Cancelled meetings are excluded from all conflict
// checks.
type Meeting struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Start           time.Time     `json:"start"`
	End             time.Time     `json:"end"`
	DurationMinutes int           `json:"duration_minutes"`
	AttendeeEmail   string        `json:"attendee_email"`
	Type            MeetingType   `json:"type"`
	Status          MeetingStatus `json:"status"`
}

// Cancelled reports whether the meeting should be ignored by conflict checks.
func (m Meeting) Cancelled() bool {
	return m.Status == MeetingStatusCancelled
}
