package constants

// Server defaults
const (
	DefaultServerHost = "0.0.0.0"
	DefaultServerPort = 7070
)

// Context keys
const (
	ContextRequestID = "request_id"
)

// Scheduling window defaults. The booking window is a fixed wall-clock
// range; meetings crossing midnight are not modeled.
const (
	BusinessHoursStart = 9  // 09:00
	BusinessHoursEnd   = 17 // 17:00

	DefaultSlotDurationMinutes = 30
	DefaultSlotIntervalMinutes = 15
)

// Rule defaults applied at admission time (and defensively in checkers).
const (
	DefaultCountry           = "SE"
	DefaultMaxMeetingsPerDay = 3
	DefaultBufferMinutes     = 15
	DefaultRangeStart        = "09:00"
	DefaultRangeEnd          = "17:00"
	DefaultTimezone          = "CET"
)

// Parser confidence levels. Advisory metadata only, never consulted by
// the engine.
const (
	ConfidenceMatched = 0.8
	ConfidenceCustom  = 0.5
)

// Validation scoring and alternative-search bounds.
const (
	MaxScore                 = 100
	ScorePenaltyPerViolation = 20

	MaxSuggestions         = 3
	AlternativeSearchDays  = 7
	AlternativeLastHour    = 16 // inclusive last starting hour for same-day probes
	AlternativeStepMinutes = 15
)
