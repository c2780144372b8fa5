package service

import (
	"strings"
	"sync"

	"smart-scheduler/core/errors"
	"smart-scheduler/core/logger"
	"smart-scheduler/core/utils"
	"smart-scheduler/modules/rules/entity"
)

// RuleRegistryInterface is the in-memory store of admitted rules.
type RuleRegistryInterface interface {
	Admit(rule entity.SchedulingRule) (*entity.SchedulingRule, *errors.AppError)
	SetEnabled(id string, enabled bool) (*entity.SchedulingRule, *errors.AppError)
	PatchConfig(id string, cfg entity.RuleConfig) (*entity.SchedulingRule, *errors.AppError)
	Remove(id string) *errors.AppError
	Get(id string) (*entity.SchedulingRule, *errors.AppError)
	List() []entity.SchedulingRule
	Replace(rules []entity.SchedulingRule)
}

// RuleRegistry owns the admitted rule set. Every rule passes structural
// validation and receives its type defaults exactly once, on admission;
// the engine downstream never mutates rules.
type RuleRegistry struct {
	mu     sync.RWMutex
	rules  []entity.SchedulingRule
	parser RuleParserInterface
}

// NewRuleRegistry creates a registry, optionally pre-populated with the
// default seed rules.
func NewRuleRegistry(parser RuleParserInterface, seed bool) *RuleRegistry {
	r := &RuleRegistry{parser: parser}
	if seed {
		r.rules = SeedRules()
		logger.Info("RuleRegistry:Seeded", "count", len(r.rules))
	}
	return r
}

// Admit validates the rule, applies type defaults and stores it.
func (r *RuleRegistry) Admit(rule entity.SchedulingRule) (*entity.SchedulingRule, *errors.AppError) {
	validation := r.parser.ValidateRule(&rule)
	if !validation.Valid {
		return nil, errors.NewAppError(errors.ErrUnprocessable,
			"rule failed validation: "+strings.Join(validation.Errors, "; "), nil)
	}

	ApplyDefaults(&rule)
	if rule.ID == "" {
		rule.ID = utils.GenerateSluggedID(string(rule.Type))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rules {
		if existing.ID == rule.ID {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "rule already admitted", nil)
		}
	}
	r.rules = append(r.rules, rule)

	logger.Info("RuleRegistry:Admit", "rule_id", rule.ID, "type", rule.Type, "enabled", rule.Enabled)
	admitted := rule
	return &admitted, nil
}

// SetEnabled toggles a rule without touching its config.
func (r *RuleRegistry) SetEnabled(id string, enabled bool) (*entity.SchedulingRule, *errors.AppError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rules {
		if r.rules[i].ID == id {
			r.rules[i].Enabled = enabled
			updated := r.rules[i]
			return &updated, nil
		}
	}
	return nil, errors.NewAppError(errors.ErrNotFound, "rule not found", nil)
}

// PatchConfig overwrites the set fields of a rule's config, then re-validates
// the result so a patch can never leave a structurally broken rule behind.
func (r *RuleRegistry) PatchConfig(id string, cfg entity.RuleConfig) (*entity.SchedulingRule, *errors.AppError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rules {
		if r.rules[i].ID != id {
			continue
		}

		patched := r.rules[i]
		mergeConfig(&patched.Config, cfg)

		validation := r.parser.ValidateRule(&patched)
		if !validation.Valid {
			return nil, errors.NewAppError(errors.ErrUnprocessable,
				"patched rule failed validation: "+strings.Join(validation.Errors, "; "), nil)
		}

		r.rules[i] = patched
		updated := r.rules[i]
		return &updated, nil
	}
	return nil, errors.NewAppError(errors.ErrNotFound, "rule not found", nil)
}

func mergeConfig(dst *entity.RuleConfig, patch entity.RuleConfig) {
	if len(patch.Days) > 0 {
		dst.Days = append([]int(nil), patch.Days...)
	}
	if patch.Country != "" {
		dst.Country = patch.Country
	}
	if patch.StartTime != "" {
		dst.StartTime = patch.StartTime
	}
	if patch.EndTime != "" {
		dst.EndTime = patch.EndTime
	}
	if patch.Timezone != "" {
		dst.Timezone = patch.Timezone
	}
	if patch.MaxPerDay != 0 {
		dst.MaxPerDay = patch.MaxPerDay
	}
	if len(patch.AllowedDurations) > 0 {
		dst.AllowedDurations = append([]int(nil), patch.AllowedDurations...)
	}
	if patch.BufferMinutes != nil {
		buffer := *patch.BufferMinutes
		dst.BufferMinutes = &buffer
	}
	if patch.RawText != "" {
		dst.RawText = patch.RawText
	}
}

// Remove deletes a rule from the registry.
func (r *RuleRegistry) Remove(id string) *errors.AppError {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rules {
		if r.rules[i].ID == id {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			logger.Info("RuleRegistry:Remove", "rule_id", id)
			return nil
		}
	}
	return errors.NewAppError(errors.ErrNotFound, "rule not found", nil)
}

// Get returns a copy of one rule.
func (r *RuleRegistry) Get(id string) (*entity.SchedulingRule, *errors.AppError) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rule := range r.rules {
		if rule.ID == id {
			found := rule
			return &found, nil
		}
	}
	return nil, errors.NewAppError(errors.ErrNotFound, "rule not found", nil)
}

// List returns a copy of all admitted rules, enabled or not.
func (r *RuleRegistry) List() []entity.SchedulingRule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.SchedulingRule(nil), r.rules...)
}

// Replace swaps the whole rule set. No merging; callers own the full list.
func (r *RuleRegistry) Replace(rules []entity.SchedulingRule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append([]entity.SchedulingRule(nil), rules...)
	logger.Info("RuleRegistry:Replace", "count", len(r.rules))
}
