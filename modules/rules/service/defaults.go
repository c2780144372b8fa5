package service

import (
	"time"

	"smart-scheduler/core/constants"
	"smart-scheduler/core/utils"
	"smart-scheduler/modules/rules/entity"
)

// defaultBuffer exists so the default table can hold a pointer value.
var defaultBuffer = constants.DefaultBufferMinutes

// defaultConfigs is the per-type default table applied once at admission
// time, instead of scattering fallbacks through the engine checkers.
var defaultConfigs = map[entity.RuleType]entity.RuleConfig{
	entity.RuleTypeWeekdays: {Days: []int{1, 2, 3, 4, 5}},
	entity.RuleTypeHolidays: {Country: constants.DefaultCountry},
	entity.RuleTypeTimeRange: {
		StartTime: constants.DefaultRangeStart,
		EndTime:   constants.DefaultRangeEnd,
		Timezone:  constants.DefaultTimezone,
	},
	entity.RuleTypeMaxMeetings: {MaxPerDay: constants.DefaultMaxMeetingsPerDay},
	entity.RuleTypeDuration:    {AllowedDurations: []int{15, 30, 45}},
	entity.RuleTypeBuffer:      {BufferMinutes: &defaultBuffer},
}

// ApplyDefaults fills missing config fields from the per-type default table.
// Fields already set by the parser or the caller are left untouched.
func ApplyDefaults(rule *entity.SchedulingRule) {
	defaults, ok := defaultConfigs[rule.Type]
	if !ok {
		return
	}

	cfg := &rule.Config
	if len(cfg.Days) == 0 && len(defaults.Days) > 0 {
		cfg.Days = append([]int(nil), defaults.Days...)
	}
	if cfg.Country == "" {
		cfg.Country = defaults.Country
	}
	if cfg.StartTime == "" {
		cfg.StartTime = defaults.StartTime
	}
	if cfg.EndTime == "" {
		cfg.EndTime = defaults.EndTime
	}
	if cfg.Timezone == "" {
		cfg.Timezone = defaults.Timezone
	}
	if cfg.MaxPerDay == 0 {
		cfg.MaxPerDay = defaults.MaxPerDay
	}
	if len(cfg.AllowedDurations) == 0 && len(defaults.AllowedDurations) > 0 {
		cfg.AllowedDurations = append([]int(nil), defaults.AllowedDurations...)
	}
	if cfg.BufferMinutes == nil && defaults.BufferMinutes != nil {
		buffer := *defaults.BufferMinutes
		cfg.BufferMinutes = &buffer
	}
}

// SeedRules returns the default rule set a fresh registry starts with:
// weekdays only plus standard business hours.
func SeedRules() []entity.SchedulingRule {
	now := time.Now()
	return []entity.SchedulingRule{
		{
			ID:              utils.GenerateSluggedID(string(entity.RuleTypeWeekdays)),
			Type:            entity.RuleTypeWeekdays,
			Enabled:         true,
			Description:     "Meetings are only allowed on weekdays (Monday to Friday)",
			NaturalLanguage: "Only book meetings on weekdays",
			Config:          entity.RuleConfig{Days: []int{1, 2, 3, 4, 5}},
			Confidence:      constants.ConfidenceMatched,
			CreatedAt:       now,
		},
		{
			ID:              utils.GenerateSluggedID(string(entity.RuleTypeTimeRange)),
			Type:            entity.RuleTypeTimeRange,
			Enabled:         true,
			Description:     "Meetings allowed between 09:00 and 17:00",
			NaturalLanguage: "Meetings between 9am and 5pm",
			Config: entity.RuleConfig{
				StartTime: constants.DefaultRangeStart,
				EndTime:   constants.DefaultRangeEnd,
				Timezone:  constants.DefaultTimezone,
			},
			Confidence: constants.ConfidenceMatched,
			CreatedAt:  now,
		},
	}
}
