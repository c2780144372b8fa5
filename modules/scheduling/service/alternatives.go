package service

import (
	"time"

	"smart-scheduler/core/constants"
	"smart-scheduler/core/timeutil"
)

// generateAlternativeTimes searches for up to three admissible replacements
// for a rejected proposal. Strategy: first the same calendar day between
// 09:00 and 16:45 in 15 minute steps, skipping the original instant; then
// the next seven days at the original wall-clock time. Every probe uses the
// suggestion-free validator so the search cannot recurse.
func (e *SchedulingRuleEngine) generateAlternativeTimes(original time.Time, durationMinutes int) []time.Time {
	alternatives := make([]time.Time, 0, constants.MaxSuggestions)

	// Same day first.
	for hour := constants.BusinessHoursStart; hour <= constants.AlternativeLastHour; hour++ {
		for minute := 0; minute < 60; minute += constants.AlternativeStepMinutes {
			if len(alternatives) >= constants.MaxSuggestions {
				return alternatives
			}

			candidate := timeutil.AtTime(original, hour, minute)
			if candidate.Equal(original) {
				continue
			}
			if e.validate(candidate, durationMinutes, false).Valid {
				alternatives = append(alternatives, candidate)
			}
		}
	}

	// Then the following days at the original time.
	for day := 1; day <= constants.AlternativeSearchDays; day++ {
		if len(alternatives) >= constants.MaxSuggestions {
			break
		}

		candidate := original.AddDate(0, 0, day)
		if e.validate(candidate, durationMinutes, false).Valid {
			alternatives = append(alternatives, candidate)
		}
	}

	return alternatives
}
