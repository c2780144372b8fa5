package meeting

import (
	"smart-scheduler/modules/meeting/controller"
	"smart-scheduler/modules/meeting/router"
	"smart-scheduler/modules/meeting/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the meeting module and registers its routes. The store
// is created by the server and shared with the scheduling module.
func Init(e *echo.Echo, store *service.MeetingStore) {
	svc := service.NewMeetingService(store)
	ctrl := controller.NewMeetingController(svc)
	router.NewMeetingRouter(ctrl).Setup(e)
}
