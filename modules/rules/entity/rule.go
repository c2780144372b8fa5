package entity

import "time"

// RuleType identifies the scheduling rule archetype.
type RuleType string

const (
	RuleTypeWeekdays    RuleType = "weekdays"
	RuleTypeHolidays    RuleType = "holidays"
	RuleTypeTimeRange   RuleType = "timeRange"
	RuleTypeMaxMeetings RuleType = "maxMeetings"
	RuleTypeDuration    RuleType = "duration"
	RuleTypeBuffer      RuleType = "buffer"
	RuleTypeCustom      RuleType = "custom"
)

// RuleConfig carries the type-specific configuration. Which fields are
// meaningful is determined by the rule type:
//
//	weekdays    → Days
//	holidays    → Country
//	timeRange   → StartTime, EndTime, Timezone
//	maxMeetings → MaxPerDay
//	duration    → AllowedDurations
//	buffer      → BufferMinutes
//	custom      → RawText
type RuleConfig struct {
	Days             []int  `json:"days,omitempty"`
	Country          string `json:"country,omitempty"`
	StartTime        string `json:"start_time,omitempty"` // "HH:MM"
	EndTime          string `json:"end_time,omitempty"`   // "HH:MM"
	Timezone         string `json:"timezone,omitempty"`
	MaxPerDay        int    `json:"max_per_day,omitempty"`
	AllowedDurations []int  `json:"allowed_durations,omitempty"`
	BufferMinutes    *int   `json:"buffer_minutes,omitempty"`
	RawText          string `json:"raw_text,omitempty"`
}

// SchedulingRule is a single constraint derived from natural-language input.
// The engine treats admitted rules as read-only; they are mutated only by
// toggling Enabled or patching Config fields through the registry.
type SchedulingRule struct {
	ID              string     `json:"id"`
	Type            RuleType   `json:"type"`
	Enabled         bool       `json:"enabled"`
	Description     string     `json:"description"`
	NaturalLanguage string     `json:"natural_language"`
	Config          RuleConfig `json:"config"`
	// Confidence is advisory parser metadata; validation never consults it.
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}
