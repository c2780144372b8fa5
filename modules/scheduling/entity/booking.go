package entity

import (
	"time"

	rulesentity "smart-scheduler/modules/rules/entity"
)

// Severity grades a rule violation. Only error-severity violations make a
// booking invalid; warnings are informational.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// RuleViolation is a single rule's negative verdict on a proposed booking.
// Produced fresh per validation call, never persisted.
type RuleViolation struct {
	RuleID      string               `json:"rule_id"`
	RuleType    rulesentity.RuleType `json:"rule_type"`
	Description string               `json:"description"`
	Severity    Severity             `json:"severity"`
	Suggestion  string               `json:"suggestion,omitempty"`
}

// BookingValidationResult is the engine's verdict on one proposed booking.
type BookingValidationResult struct {
	Valid       bool            `json:"valid"`
	Violations  []RuleViolation `json:"violations"`
	Score       int             `json:"score"`
	Suggestions []time.Time     `json:"suggestions,omitempty"`
}

// TimeSlot is a derived, ephemeral projection for calendar-grid rendering.
type TimeSlot struct {
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Available      bool      `json:"available"`
	ConflictReason string    `json:"conflict_reason,omitempty"`
}
