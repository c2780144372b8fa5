package dto

import "smart-scheduler/modules/rules/entity"

// ===================== Request DTOs =====================

// ParseRuleRequest carries the natural-language text to parse.
type ParseRuleRequest struct {
	Text string `json:"text" validate:"required"`
}

// CreateRuleRequest admits a rule from natural language. When Enabled is
// omitted the rule is admitted enabled.
type CreateRuleRequest struct {
	Text    string `json:"text" validate:"required"`
	Enabled *bool  `json:"enabled"`
}

// PatchRuleRequest toggles a rule or patches its config fields.
type PatchRuleRequest struct {
	Enabled *bool              `json:"enabled"`
	Config  *entity.RuleConfig `json:"config"`
}

// ===================== Response DTOs =====================

// ParseRuleResponse is the parser verdict for one input string.
type ParseRuleResponse struct {
	Success     bool                   `json:"success"`
	Rule        *entity.SchedulingRule `json:"rule,omitempty"`
	Errors      []string               `json:"errors,omitempty"`
	Suggestions []string               `json:"suggestions,omitempty"`
}

// RuleValidationResult reports structural validity of a rule config.
type RuleValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// RuleListResponse lists admitted rules.
type RuleListResponse struct {
	Rules []entity.SchedulingRule `json:"rules"`
	Total int                     `json:"total"`
}

// ActiveRulesDescriptionResponse joins the natural-language text of the
// enabled rules.
type ActiveRulesDescriptionResponse struct {
	Description string `json:"description"`
	ActiveRules int    `json:"active_rules"`
}
