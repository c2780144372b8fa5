package service

import "strings"

// GenerateRuleSuggestions returns static hint strings keyed by substring
// matches on the input. Purely advisory UI copy; nothing here affects
// validation behavior.
func (p *RuleParser) GenerateRuleSuggestions(text string) []string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	suggestions := []string{}

	if strings.Contains(normalized, "weekend") || strings.Contains(normalized, "weekday") {
		suggestions = append(suggestions, `Try "Only book meetings on weekdays"`)
	}
	if strings.Contains(normalized, "holiday") {
		suggestions = append(suggestions, `Try "No meetings on Swedish holidays"`)
	}
	if strings.Contains(normalized, "hour") || strings.Contains(normalized, "time") ||
		strings.Contains(normalized, "am") || strings.Contains(normalized, "pm") {
		suggestions = append(suggestions, `Try "Meetings between 9am and 5pm"`)
	}
	if strings.Contains(normalized, "buffer") || strings.Contains(normalized, "break") ||
		strings.Contains(normalized, "gap") {
		suggestions = append(suggestions, `Try "15 minute buffer between meetings"`)
	}
	if strings.Contains(normalized, "long") || strings.Contains(normalized, "duration") ||
		strings.Contains(normalized, "minute") {
		suggestions = append(suggestions, `Try "Meetings can be 15, 30 or 45 minutes"`)
	}
	if strings.Contains(normalized, "max") || strings.Contains(normalized, "many") ||
		strings.Contains(normalized, "day") {
		suggestions = append(suggestions, `Try "Max 3 meetings per day"`)
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			`Try "Only book meetings on weekdays"`,
			`Try "Meetings between 9am and 5pm"`,
			`Try "Max 3 meetings per day"`,
		)
	}
	return suggestions
}
