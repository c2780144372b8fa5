package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"smart-scheduler/core/constants"
	"smart-scheduler/core/logger"
	"smart-scheduler/core/utils"
	"smart-scheduler/modules/rules/dto"
	"smart-scheduler/modules/rules/entity"
)

// archetype pairs a rule type with its trigger patterns and config extractor.
// Archetypes are evaluated in fixed order with early return; reordering would
// change which rule wins on ambiguous input.
type archetype struct {
	ruleType entity.RuleType
	patterns []*regexp.Regexp
	extract  func(normalized string) (entity.RuleConfig, string, bool)
}

// RuleParserInterface defines the parser contract.
type RuleParserInterface interface {
	ParseNaturalLanguageRule(text string) *dto.ParseRuleResponse
	ValidateRule(rule *entity.SchedulingRule) *dto.RuleValidationResult
	GenerateRuleSuggestions(text string) []string
}

// RuleParser converts natural-language text into scheduling rules via
// ordered pattern matching. It is not NLP; unmatched input becomes an
// opaque custom rule.
type RuleParser struct {
	archetypes []archetype
}

// NewRuleParser creates a parser with the built-in archetype table.
func NewRuleParser() RuleParserInterface {
	p := &RuleParser{}
	p.archetypes = []archetype{
		{
			ruleType: entity.RuleTypeWeekdays,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`only\s+(?:book\s+)?(?:meetings?\s+)?(?:on\s+)?weekdays`),
				regexp.MustCompile(`weekdays\s+only`),
				regexp.MustCompile(`monday\s*(?:-|to|through|until)\s*friday`),
				regexp.MustCompile(`no\s+weekends?`),
				regexp.MustCompile(`not?\s+on\s+(?:the\s+)?weekends?`),
				regexp.MustCompile(`business\s+days\s+only`),
			},
			extract: extractWeekdays,
		},
		{
			ruleType: entity.RuleTypeHolidays,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`no\s+(?:meetings?\s+)?(?:on\s+)?(?:\w+\s+)?holidays?`),
				regexp.MustCompile(`not?\s+on\s+holidays?`),
				regexp.MustCompile(`(?:except|skip|avoid)\s+(?:\w+\s+)?holidays?`),
				regexp.MustCompile(`swedish\s+holidays?`),
			},
			extract: extractHolidays,
		},
		{
			ruleType: entity.RuleTypeTimeRange,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`between\s+.+\s+and\s+.+`),
				regexp.MustCompile(`\d{1,2}(?::\d{2})?\s*(?:am|pm)?\s*(?:to|until|till|-)\s*\d{1,2}(?::\d{2})?\s*(?:am|pm)?`),
			},
			extract: extractTimeRange,
		},
		{
			ruleType: entity.RuleTypeMaxMeetings,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`max(?:imum)?\s+(?:of\s+)?\d+\s+meetings?`),
				regexp.MustCompile(`no\s+more\s+than\s+\d+\s+meetings?`),
				regexp.MustCompile(`\d+\s+meetings?\s+(?:per|a|each)\s+day`),
			},
			extract: extractMaxMeetings,
		},
		{
			ruleType: entity.RuleTypeDuration,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`meetings?\s+(?:can|should|must)\s+(?:be|last)`),
				regexp.MustCompile(`durations?\s+(?:of|are|:)`),
				regexp.MustCompile(`\d+\s*(?:,|or|and)\s*\d+.*min`),
			},
			extract: extractDuration,
		},
		{
			ruleType: entity.RuleTypeBuffer,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`\d+\s*min(?:ute)?s?\s+(?:buffer|break|gap)`),
				regexp.MustCompile(`buffer\s+of\s+\d+`),
				regexp.MustCompile(`(?:buffer|break|gap)\s+(?:of\s+)?\d+\s*min`),
			},
			extract: extractBuffer,
		},
	}
	return p
}

// ParseNaturalLanguageRule lower-cases and trims the input, then walks the
// archetype table. The first archetype whose first matching pattern succeeds
// wins. If no archetype matches, or a matched archetype's extractor fails,
// the raw text is wrapped in a custom rule with low confidence.
func (p *RuleParser) ParseNaturalLanguageRule(text string) *dto.ParseRuleResponse {
	original := strings.TrimSpace(text)
	if original == "" {
		return &dto.ParseRuleResponse{
			Success:     false,
			Errors:      []string{"rule text is empty"},
			Suggestions: p.GenerateRuleSuggestions(""),
		}
	}
	normalized := strings.ToLower(original)

	for _, a := range p.archetypes {
		matched := false
		for _, re := range a.patterns {
			if re.MatchString(normalized) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		cfg, description, ok := a.extract(normalized)
		if !ok {
			// Extractor failure falls through to the custom rule, not to
			// later archetypes.
			logger.Debug("RuleParser:Parse:ExtractorFailed", "type", a.ruleType, "text", normalized)
			break
		}

		return &dto.ParseRuleResponse{
			Success: true,
			Rule:    p.newRule(a.ruleType, description, original, cfg, constants.ConfidenceMatched),
		}
	}

	custom := p.newRule(
		entity.RuleTypeCustom,
		fmt.Sprintf("Custom rule: %s", original),
		original,
		entity.RuleConfig{RawText: original},
		constants.ConfidenceCustom,
	)
	return &dto.ParseRuleResponse{
		Success:     true,
		Rule:        custom,
		Suggestions: p.GenerateRuleSuggestions(original),
	}
}

func (p *RuleParser) newRule(ruleType entity.RuleType, description, original string, cfg entity.RuleConfig, confidence float64) *entity.SchedulingRule {
	return &entity.SchedulingRule{
		ID:              utils.GenerateSluggedID(string(ruleType)),
		Type:            ruleType,
		Enabled:         true,
		Description:     description,
		NaturalLanguage: original,
		Config:          cfg,
		Confidence:      confidence,
		CreatedAt:       time.Now(),
	}
}

// ===================== Extractors =====================

func extractWeekdays(string) (entity.RuleConfig, string, bool) {
	return entity.RuleConfig{Days: []int{1, 2, 3, 4, 5}},
		"Meetings are only allowed on weekdays (Monday to Friday)", true
}

func extractHolidays(normalized string) (entity.RuleConfig, string, bool) {
	country := "US"
	if strings.Contains(normalized, "swedish") {
		country = "SE"
	}
	return entity.RuleConfig{Country: country},
		fmt.Sprintf("No meetings on public holidays (%s)", country), true
}

var timeTokenPattern = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

func extractTimeRange(normalized string) (entity.RuleConfig, string, bool) {
	matches := timeTokenPattern.FindAllStringSubmatch(normalized, -1)
	if len(matches) < 2 {
		return entity.RuleConfig{}, "", false
	}

	start, ok := parseTimeToken(matches[0][1], matches[0][2], matches[0][3])
	if !ok {
		return entity.RuleConfig{}, "", false
	}
	end, ok := parseTimeToken(matches[1][1], matches[1][2], matches[1][3])
	if !ok {
		return entity.RuleConfig{}, "", false
	}

	cfg := entity.RuleConfig{
		StartTime: start,
		EndTime:   end,
		Timezone:  constants.DefaultTimezone,
	}
	return cfg, fmt.Sprintf("Meetings allowed between %s and %s", start, end), true
}

// parseTimeToken handles 12h and 24h clock tokens: pm adds 12 hours unless
// the hour is already 12, and 12am resets to 0.
func parseTimeToken(hourStr, minuteStr, meridiem string) (string, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return "", false
	}
	minute := 0
	if minuteStr != "" {
		minute, err = strconv.Atoi(minuteStr)
		if err != nil {
			return "", false
		}
	}

	switch meridiem {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

var numberPattern = regexp.MustCompile(`\d+`)

func extractMaxMeetings(normalized string) (entity.RuleConfig, string, bool) {
	number := numberPattern.FindString(normalized)
	if number == "" {
		return entity.RuleConfig{}, "", false
	}
	max, err := strconv.Atoi(number)
	if err != nil {
		return entity.RuleConfig{}, "", false
	}
	return entity.RuleConfig{MaxPerDay: max},
		fmt.Sprintf("At most %d meetings per day", max), true
}

func extractDuration(normalized string) (entity.RuleConfig, string, bool) {
	numbers := numberPattern.FindAllString(normalized, 3)
	if len(numbers) == 0 {
		return entity.RuleConfig{}, "", false
	}

	durations := make([]int, 0, len(numbers))
	for _, n := range numbers {
		d, err := strconv.Atoi(n)
		if err != nil {
			continue
		}
		durations = append(durations, d)
	}
	if len(durations) == 0 {
		return entity.RuleConfig{}, "", false
	}

	labels := make([]string, len(durations))
	for i, d := range durations {
		labels[i] = strconv.Itoa(d)
	}
	return entity.RuleConfig{AllowedDurations: durations},
		fmt.Sprintf("Meetings can be %s minutes long", strings.Join(labels, ", ")), true
}

func extractBuffer(normalized string) (entity.RuleConfig, string, bool) {
	number := numberPattern.FindString(normalized)
	if number == "" {
		return entity.RuleConfig{}, "", false
	}
	buffer, err := strconv.Atoi(number)
	if err != nil {
		return entity.RuleConfig{}, "", false
	}
	return entity.RuleConfig{BufferMinutes: &buffer},
		fmt.Sprintf("Keep a %d minute buffer between meetings", buffer), true
}
