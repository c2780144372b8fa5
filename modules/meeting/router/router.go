package router

import (
	"smart-scheduler/modules/meeting/controller"

	"github.com/labstack/echo/v4"
)

// MeetingRouter registers meeting routes.
type MeetingRouter struct {
	MeetingController *controller.MeetingController
}

func NewMeetingRouter(ctrl *controller.MeetingController) *MeetingRouter {
	return &MeetingRouter{MeetingController: ctrl}
}

// Setup registers meeting routes.
func (r *MeetingRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	meetings := v1.Group("/meetings")

	meetings.PUT("", r.MeetingController.ReplaceMeetings)
	meetings.GET("", r.MeetingController.ListMeetings)
}
