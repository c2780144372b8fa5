package service

import (
	"fmt"

	"smart-scheduler/modules/rules/dto"
	"smart-scheduler/modules/rules/entity"
)

// ValidateRule performs the structural post-check a rule must pass before
// it is admitted to the active set. This is distinct from parsing: a parsed
// rule can still be structurally incomplete.
func (p *RuleParser) ValidateRule(rule *entity.SchedulingRule) *dto.RuleValidationResult {
	result := &dto.RuleValidationResult{Valid: true, Errors: []string{}}
	if rule == nil {
		result.Valid = false
		result.Errors = append(result.Errors, "rule is required")
		return result
	}

	addError := func(msg string) {
		result.Valid = false
		result.Errors = append(result.Errors, msg)
	}

	switch rule.Type {
	case entity.RuleTypeWeekdays:
		if len(rule.Config.Days) == 0 {
			addError("weekdays rule requires a non-empty day list")
		}
		for _, d := range rule.Config.Days {
			if d < 0 || d > 6 {
				addError(fmt.Sprintf("day %d is outside 0 (Sunday) to 6 (Saturday)", d))
			}
		}
	case entity.RuleTypeHolidays:
		if rule.Config.Country == "" {
			addError("holidays rule requires a country code")
		}
	case entity.RuleTypeTimeRange:
		if rule.Config.StartTime == "" || rule.Config.EndTime == "" {
			addError("time range rule requires both a start and an end time")
		}
	case entity.RuleTypeMaxMeetings:
		if rule.Config.MaxPerDay < 1 {
			addError("max meetings rule requires max_per_day of at least 1")
		}
	case entity.RuleTypeDuration:
		if len(rule.Config.AllowedDurations) == 0 {
			addError("duration rule requires a non-empty list of allowed durations")
		}
		for _, d := range rule.Config.AllowedDurations {
			if d <= 0 {
				addError(fmt.Sprintf("allowed duration %d must be positive", d))
			}
		}
	case entity.RuleTypeBuffer:
		if rule.Config.BufferMinutes == nil {
			addError("buffer rule requires buffer_minutes")
		} else if *rule.Config.BufferMinutes < 0 {
			addError("buffer_minutes must not be negative")
		}
	case entity.RuleTypeCustom:
		if rule.Config.RawText == "" && rule.NaturalLanguage == "" {
			addError("custom rule requires the original text")
		}
	default:
		addError(fmt.Sprintf("unknown rule type %q", rule.Type))
	}

	return result
}
