package scheduling

import (
	meetingservice "smart-scheduler/modules/meeting/service"
	rulesservice "smart-scheduler/modules/rules/service"
	"smart-scheduler/modules/scheduling/controller"
	"smart-scheduler/modules/scheduling/router"
	"smart-scheduler/modules/scheduling/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the scheduling module and registers its routes. It
// consumes the shared rule registry and meeting store created by the
// server.
func Init(e *echo.Echo, registry rulesservice.RuleRegistryInterface, store *meetingservice.MeetingStore) {
	svc := service.NewBookingService(registry, store)
	ctrl := controller.NewBookingController(svc)
	router.NewBookingRouter(ctrl).Setup(e)
}
