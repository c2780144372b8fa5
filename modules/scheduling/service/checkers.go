package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"smart-scheduler/core/constants"
	"smart-scheduler/core/timeutil"
	rulesentity "smart-scheduler/modules/rules/entity"
	"smart-scheduler/modules/scheduling/entity"
)

// checkRule dispatches to the type-specific checker. A nil return means the
// rule is satisfied. Checkers are pure functions of the rule config, the
// proposed interval and the engine's meeting set. Defaults are normally
// applied at rule admission; the fallbacks here keep a raw engine usable.
func (e *SchedulingRuleEngine) checkRule(rule rulesentity.SchedulingRule, start, end time.Time, durationMinutes int) *entity.RuleViolation {
	switch rule.Type {
	case rulesentity.RuleTypeWeekdays:
		return e.checkWeekdays(rule, start)
	case rulesentity.RuleTypeHolidays:
		return e.checkHolidays(rule, start)
	case rulesentity.RuleTypeTimeRange:
		return e.checkTimeRange(rule, start, end)
	case rulesentity.RuleTypeMaxMeetings:
		return e.checkMaxMeetings(rule, start)
	case rulesentity.RuleTypeDuration:
		return e.checkDuration(rule, durationMinutes)
	case rulesentity.RuleTypeBuffer:
		return e.checkBuffer(rule, start, end)
	case rulesentity.RuleTypeCustom:
		return e.checkCustom(rule, start)
	default:
		return nil
	}
}

func (e *SchedulingRuleEngine) checkWeekdays(rule rulesentity.SchedulingRule, start time.Time) *entity.RuleViolation {
	days := rule.Config.Days
	if len(days) == 0 {
		days = []int{1, 2, 3, 4, 5}
	}

	weekday := timeutil.Weekday(start)
	for _, d := range days {
		if d == weekday {
			return nil
		}
	}

	return &entity.RuleViolation{
		RuleID:      rule.ID,
		RuleType:    rule.Type,
		Description: "The proposed time falls on a day meetings are not allowed",
		Severity:    entity.SeverityError,
		Suggestion:  "Pick a weekday instead",
	}
}

func (e *SchedulingRuleEngine) checkHolidays(rule rulesentity.SchedulingRule, start time.Time) *entity.RuleViolation {
	country := rule.Config.Country
	if country == "" {
		country = constants.DefaultCountry
	}

	if !timeutil.IsHoliday(start, country) {
		return nil
	}

	return &entity.RuleViolation{
		RuleID:      rule.ID,
		RuleType:    rule.Type,
		Description: fmt.Sprintf("The proposed date is a public holiday (%s)", country),
		Severity:    entity.SeverityError,
		Suggestion:  "Pick a regular working day",
	}
}

func (e *SchedulingRuleEngine) checkTimeRange(rule rulesentity.SchedulingRule, start, end time.Time) *entity.RuleViolation {
	rangeStart := parseClockMinutes(rule.Config.StartTime, constants.BusinessHoursStart*60)
	rangeEnd := parseClockMinutes(rule.Config.EndTime, constants.BusinessHoursEnd*60)

	// Wall-clock minutes only; a meeting crossing midnight is not modeled.
	startMinutes := timeutil.MinutesOfDay(start)
	endMinutes := timeutil.MinutesOfDay(end)
	if startMinutes >= rangeStart && endMinutes <= rangeEnd {
		return nil
	}

	return &entity.RuleViolation{
		RuleID:   rule.ID,
		RuleType: rule.Type,
		Description: fmt.Sprintf("The proposed time is outside the allowed window %s-%s",
			formatClockMinutes(rangeStart), formatClockMinutes(rangeEnd)),
		Severity:   entity.SeverityError,
		Suggestion: "Move the meeting inside the allowed hours",
	}
}

func (e *SchedulingRuleEngine) checkMaxMeetings(rule rulesentity.SchedulingRule, start time.Time) *entity.RuleViolation {
	maxPerDay := rule.Config.MaxPerDay
	if maxPerDay == 0 {
		maxPerDay = constants.DefaultMaxMeetingsPerDay
	}

	count := 0
	for _, m := range e.meetings {
		if m.Cancelled() {
			continue
		}
		if timeutil.SameDate(m.Start, start) {
			count++
		}
	}
	if count < maxPerDay {
		return nil
	}

	return &entity.RuleViolation{
		RuleID:      rule.ID,
		RuleType:    rule.Type,
		Description: fmt.Sprintf("The day already has %d meetings, the maximum is %d", count, maxPerDay),
		Severity:    entity.SeverityError,
		Suggestion:  "Pick another day",
	}
}

func (e *SchedulingRuleEngine) checkDuration(rule rulesentity.SchedulingRule, durationMinutes int) *entity.RuleViolation {
	allowed := rule.Config.AllowedDurations
	if len(allowed) == 0 {
		allowed = []int{15, 30, 45}
	}

	for _, d := range allowed {
		if d == durationMinutes {
			return nil
		}
	}

	labels := make([]string, len(allowed))
	for i, d := range allowed {
		labels[i] = strconv.Itoa(d)
	}
	return &entity.RuleViolation{
		RuleID:   rule.ID,
		RuleType: rule.Type,
		Description: fmt.Sprintf("A duration of %d minutes is not allowed, permitted durations are %s minutes",
			durationMinutes, strings.Join(labels, ", ")),
		Severity:   entity.SeverityError,
		Suggestion: "Use one of the permitted durations",
	}
}

// checkBuffer applies a symmetric absolute-difference test against each
// meeting edge. It measures edge proximity, not interval overlap: a
// proposal whose edges both sit farther than the buffer from a meeting's
// edges passes even when the intervals intersect.
func (e *SchedulingRuleEngine) checkBuffer(rule rulesentity.SchedulingRule, start, end time.Time) *entity.RuleViolation {
	buffer := constants.DefaultBufferMinutes
	if rule.Config.BufferMinutes != nil {
		buffer = *rule.Config.BufferMinutes
	}

	for _, m := range e.meetings {
		if m.Cancelled() {
			continue
		}

		gapAfter := absMinutes(start.Sub(m.End))
		gapBefore := absMinutes(end.Sub(m.Start))
		if gapAfter < float64(buffer) || gapBefore < float64(buffer) {
			return &entity.RuleViolation{
				RuleID:   rule.ID,
				RuleType: rule.Type,
				Description: fmt.Sprintf("The proposed time is within %d minutes of %q",
					buffer, m.Title),
				Severity:   entity.SeverityError,
				Suggestion: fmt.Sprintf("Leave at least %d minutes around existing meetings", buffer),
			}
		}
	}
	return nil
}

// checkCustom implements the single hardcoded custom pattern: text that
// mentions the first Monday of the month warns on any first-Monday date.
// All other custom text is stored for display only and never triggers.
func (e *SchedulingRuleEngine) checkCustom(rule rulesentity.SchedulingRule, start time.Time) *entity.RuleViolation {
	text := strings.ToLower(rule.Config.RawText)
	if text == "" {
		text = strings.ToLower(rule.NaturalLanguage)
	}

	if strings.Contains(text, "first monday") && timeutil.FirstMondayOfMonth(start) {
		return &entity.RuleViolation{
			RuleID:      rule.ID,
			RuleType:    rule.Type,
			Description: "The proposed date is the first Monday of the month",
			Severity:    entity.SeverityWarning,
			Suggestion:  "Check whether this conflicts with your recurring commitment",
		}
	}
	return nil
}

func absMinutes(d time.Duration) float64 {
	minutes := d.Minutes()
	if minutes < 0 {
		return -minutes
	}
	return minutes
}

// parseClockMinutes converts "HH:MM" to minutes of day, falling back to the
// given default when the value is missing or malformed.
func parseClockMinutes(clock string, fallback int) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return fallback
	}
	hour, errH := strconv.Atoi(parts[0])
	minute, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fallback
	}
	return hour*60 + minute
}

func formatClockMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
