package controller

import (
	"smart-scheduler/core/controller"
	"smart-scheduler/core/errors"
	"smart-scheduler/modules/rules/dto"
	"smart-scheduler/modules/rules/service"

	"github.com/labstack/echo/v4"
)

// RuleController handles rule parsing and administration requests.
type RuleController struct {
	controller.BaseController
	Parser   service.RuleParserInterface
	Registry service.RuleRegistryInterface
}

func NewRuleController(parser service.RuleParserInterface, registry service.RuleRegistryInterface) *RuleController {
	return &RuleController{
		BaseController: controller.NewBaseController(),
		Parser:         parser,
		Registry:       registry,
	}
}

// ParseRule handles POST /rules/parse
// @Summary Parse a natural-language rule
// @Description Parses the text into a scheduling rule without admitting it
// @Tags Rules
// @Accept json
// @Produce json
// @Param request body dto.ParseRuleRequest true "Rule text"
// @Success 200 {object} dto.ParseRuleResponse
// @Failure 400 {object} errors.AppError
// @Router /rules/parse [post]
func (c *RuleController) ParseRule(ctx echo.Context) error {
	var req dto.ParseRuleRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result := c.Parser.ParseNaturalLanguageRule(req.Text)
	if !result.Success {
		return c.BadRequest(errors.ErrInvalidInput, "Could not parse rule", result)
	}
	return c.SuccessResponse(ctx, result, "Rule parsed")
}

// CreateRule handles POST /rules
// @Summary Admit a rule from natural language
// @Description Parses, validates and admits the rule to the active set
// @Tags Rules
// @Accept json
// @Produce json
// @Param request body dto.CreateRuleRequest true "Rule text"
// @Success 200 {object} entity.SchedulingRule
// @Failure 400 {object} errors.AppError
// @Failure 422 {object} errors.AppError
// @Router /rules [post]
func (c *RuleController) CreateRule(ctx echo.Context) error {
	var req dto.CreateRuleRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	parsed := c.Parser.ParseNaturalLanguageRule(req.Text)
	if !parsed.Success {
		return c.BadRequest(errors.ErrInvalidInput, "Could not parse rule", parsed)
	}

	rule := *parsed.Rule
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}

	admitted, appErr := c.Registry.Admit(rule)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, admitted, "Rule admitted")
}

// ListRules handles GET /rules
// @Summary List admitted rules
// @Tags Rules
// @Produce json
// @Success 200 {object} dto.RuleListResponse
// @Router /rules [get]
func (c *RuleController) ListRules(ctx echo.Context) error {
	rules := c.Registry.List()
	return c.SuccessResponse(ctx, &dto.RuleListResponse{Rules: rules, Total: len(rules)}, "Success")
}

// PatchRule handles PATCH /rules/:id
// @Summary Toggle a rule or patch its config
// @Tags Rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param request body dto.PatchRuleRequest true "Patch"
// @Success 200 {object} entity.SchedulingRule
// @Failure 404 {object} errors.AppError
// @Failure 422 {object} errors.AppError
// @Router /rules/{id} [patch]
func (c *RuleController) PatchRule(ctx echo.Context) error {
	id := ctx.Param("id")

	var req dto.PatchRuleRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Enabled == nil && req.Config == nil {
		return c.BadRequest(errors.ErrInvalidInput, "Nothing to patch")
	}

	if req.Config != nil {
		if _, appErr := c.Registry.PatchConfig(id, *req.Config); appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
	}
	if req.Enabled != nil {
		if _, appErr := c.Registry.SetEnabled(id, *req.Enabled); appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
	}

	rule, appErr := c.Registry.Get(id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, rule, "Rule updated")
}

// DeleteRule handles DELETE /rules/:id
// @Summary Remove a rule
// @Tags Rules
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /rules/{id} [delete]
func (c *RuleController) DeleteRule(ctx echo.Context) error {
	if appErr := c.Registry.Remove(ctx.Param("id")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Rule removed")
}

// SuggestRules handles POST /rules/suggestions
// @Summary Advisory hint strings for rule authoring
// @Tags Rules
// @Accept json
// @Produce json
// @Param request body dto.ParseRuleRequest true "Partial rule text"
// @Success 200 {object} controller.SuccessResponse
// @Router /rules/suggestions [post]
func (c *RuleController) SuggestRules(ctx echo.Context) error {
	var req dto.ParseRuleRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	return c.SuccessResponse(ctx, c.Parser.GenerateRuleSuggestions(req.Text), "Success")
}
