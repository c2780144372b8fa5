package rules

import (
	"smart-scheduler/modules/rules/controller"
	"smart-scheduler/modules/rules/router"
	"smart-scheduler/modules/rules/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the rules module and registers its routes. The parser
// and registry are created by the server and shared with the scheduling
// module.
func Init(e *echo.Echo, parser service.RuleParserInterface, registry service.RuleRegistryInterface) {
	ctrl := controller.NewRuleController(parser, registry)
	router.NewRuleRouter(ctrl).Setup(e)
}
