package service

import (
	"strings"
	"time"

	"smart-scheduler/core/constants"
	meetingentity "smart-scheduler/modules/meeting/entity"
	rulesentity "smart-scheduler/modules/rules/entity"
	"smart-scheduler/modules/scheduling/entity"
)

// NoActiveRulesDescription is returned when no rule is enabled.
const NoActiveRulesDescription = "No scheduling rules are currently active."

// SchedulingRuleEngine evaluates proposed bookings against the active rule
// set and the existing meetings. It owns both lists for the lifetime of a
// booking session; callers replace them wholesale. The engine performs no
// internal locking, the host serializes access.
type SchedulingRuleEngine struct {
	rules    []rulesentity.SchedulingRule
	meetings []meetingentity.Meeting
}

// NewSchedulingRuleEngine constructs an engine holding only the enabled
// rules from the given list.
func NewSchedulingRuleEngine(rules []rulesentity.SchedulingRule, meetings []meetingentity.Meeting) *SchedulingRuleEngine {
	e := &SchedulingRuleEngine{}
	e.UpdateRules(rules)
	e.UpdateMeetings(meetings)
	return e
}

// UpdateRules replaces the rule set, keeping only enabled rules.
func (e *SchedulingRuleEngine) UpdateRules(rules []rulesentity.SchedulingRule) {
	enabled := make([]rulesentity.SchedulingRule, 0, len(rules))
	for _, r := range rules {
		if r.Enabled {
			enabled = append(enabled, r)
		}
	}
	e.rules = enabled
}

// UpdateMeetings replaces the meeting set without filtering.
func (e *SchedulingRuleEngine) UpdateMeetings(meetings []meetingentity.Meeting) {
	e.meetings = append([]meetingentity.Meeting(nil), meetings...)
}

// ValidateBooking evaluates a proposed booking against every enabled rule
// in list order. The verdict is valid when no error-severity violation was
// produced; the score drops 20 points per violation, floored at zero.
func (e *SchedulingRuleEngine) ValidateBooking(start time.Time, durationMinutes int) *entity.BookingValidationResult {
	return e.validate(start, durationMinutes, true)
}

// validate is the single validator behind both the public entry point and
// the internal probes. generateSuggestions is false for every internal
// call so that suggestion generation cannot recurse.
func (e *SchedulingRuleEngine) validate(start time.Time, durationMinutes int, generateSuggestions bool) *entity.BookingValidationResult {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	violations := []entity.RuleViolation{}
	for _, rule := range e.rules {
		if violation := e.checkRule(rule, start, end, durationMinutes); violation != nil {
			violations = append(violations, *violation)
		}
	}

	valid := true
	for _, v := range violations {
		if v.Severity == entity.SeverityError {
			valid = false
			break
		}
	}

	score := constants.MaxScore - constants.ScorePenaltyPerViolation*len(violations)
	if score < 0 {
		score = 0
	}

	result := &entity.BookingValidationResult{
		Valid:      valid,
		Violations: violations,
		Score:      score,
	}
	if generateSuggestions && len(violations) > 0 {
		result.Suggestions = e.generateAlternativeTimes(start, durationMinutes)
	}
	return result
}

// GetActiveRulesDescription joins the natural-language text of the enabled
// rules for display.
func (e *SchedulingRuleEngine) GetActiveRulesDescription() string {
	if len(e.rules) == 0 {
		return NoActiveRulesDescription
	}

	parts := make([]string, 0, len(e.rules))
	for _, r := range e.rules {
		parts = append(parts, r.NaturalLanguage)
	}
	return strings.Join(parts, ". ")
}
