package controller

import (
	"fmt"
	"strconv"
	"time"

	"smart-scheduler/core/controller"
	"smart-scheduler/core/errors"
	"smart-scheduler/modules/scheduling/dto"
	"smart-scheduler/modules/scheduling/service"

	"github.com/labstack/echo/v4"
)

// bindAvailabilityQuery parses the availability query parameters. Dates
// accept RFC3339 or plain "2006-01-02".
func bindAvailabilityQuery(ctx echo.Context) (*dto.AvailabilityQuery, error) {
	query := &dto.AvailabilityQuery{}

	var err error
	if query.From, err = parseDateParam(ctx.QueryParam("from")); err != nil {
		return nil, fmt.Errorf("invalid from date: %w", err)
	}
	if query.To, err = parseDateParam(ctx.QueryParam("to")); err != nil {
		return nil, fmt.Errorf("invalid to date: %w", err)
	}
	if query.DurationMinutes, err = parseIntParam(ctx.QueryParam("duration")); err != nil {
		return nil, fmt.Errorf("invalid duration: %w", err)
	}
	if query.IntervalMinutes, err = parseIntParam(ctx.QueryParam("interval")); err != nil {
		return nil, fmt.Errorf("invalid interval: %w", err)
	}
	return query, nil
}

func parseDateParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func parseIntParam(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

// BookingController handles booking validation and availability requests.
type BookingController struct {
	controller.BaseController
	BookingService service.BookingServiceInterface
}

func NewBookingController(svc service.BookingServiceInterface) *BookingController {
	return &BookingController{
		BaseController: controller.NewBaseController(),
		BookingService: svc,
	}
}

// ValidateBooking handles POST /bookings/validate
// @Summary Validate a proposed booking
// @Description Evaluates the proposal against every enabled rule. A rejected
// @Description booking is a normal 200 response with valid=false, violations
// @Description and up to three alternative suggestions.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body dto.ValidateBookingRequest true "Proposal"
// @Success 200 {object} entity.BookingValidationResult
// @Failure 400 {object} errors.AppError
// @Router /bookings/validate [post]
func (c *BookingController) ValidateBooking(ctx echo.Context) error {
	var req dto.ValidateBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.BookingService.ValidateBooking(&req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Booking validated")
}

// Availability handles GET /availability
// @Summary Generate the availability grid for a date range
// @Tags Bookings
// @Produce json
// @Param from query string true "Range start (RFC3339)"
// @Param to query string true "Range end (RFC3339)"
// @Param duration query int false "Slot duration in minutes"
// @Param interval query int false "Slot step in minutes"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} errors.AppError
// @Router /availability [get]
func (c *BookingController) Availability(ctx echo.Context) error {
	query, err := bindAvailabilityQuery(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, err.Error())
	}

	result, appErr := c.BookingService.Availability(query)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ActiveRulesDescription handles GET /rules/description
// @Summary Describe the enabled rules in natural language
// @Tags Rules
// @Produce json
// @Success 200 {object} dto.ActiveRulesDescriptionResponse
// @Router /rules/description [get]
func (c *BookingController) ActiveRulesDescription(ctx echo.Context) error {
	return c.SuccessResponse(ctx, c.BookingService.ActiveRulesDescription(), "Success")
}
