package router

import (
	"smart-scheduler/modules/rules/controller"

	"github.com/labstack/echo/v4"
)

// RuleRouter registers rule administration routes.
type RuleRouter struct {
	Controller *controller.RuleController
}

func NewRuleRouter(ctrl *controller.RuleController) *RuleRouter {
	return &RuleRouter{Controller: ctrl}
}

// Setup registers rule routes.
func (r *RuleRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	rules := v1.Group("/rules")

	rules.POST("", r.Controller.CreateRule)
	rules.GET("", r.Controller.ListRules)
	rules.POST("/parse", r.Controller.ParseRule)
	rules.POST("/suggestions", r.Controller.SuggestRules)
	rules.PATCH("/:id", r.Controller.PatchRule)
	rules.DELETE("/:id", r.Controller.DeleteRule)
}
