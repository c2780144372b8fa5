package router

import (
	"smart-scheduler/modules/scheduling/controller"

	"github.com/labstack/echo/v4"
)

// BookingRouter registers booking validation and availability routes.
type BookingRouter struct {
	Controller *controller.BookingController
}

func NewBookingRouter(ctrl *controller.BookingController) *BookingRouter {
	return &BookingRouter{Controller: ctrl}
}

// Setup registers booking routes.
func (r *BookingRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/bookings/validate", r.Controller.ValidateBooking)
	v1.GET("/availability", r.Controller.Availability)
	v1.GET("/rules/description", r.Controller.ActiveRulesDescription)
}
