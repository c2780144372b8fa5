package controller

import (
	"smart-scheduler/core/controller"
	"smart-scheduler/core/errors"
	"smart-scheduler/modules/meeting/dto"
	"smart-scheduler/modules/meeting/service"

	"github.com/labstack/echo/v4"
)

// MeetingController handles the existing-meeting HTTP requests.
type MeetingController struct {
	controller.BaseController
	MeetingService service.MeetingServiceInterface
}

func NewMeetingController(svc service.MeetingServiceInterface) *MeetingController {
	return &MeetingController{
		BaseController: controller.NewBaseController(),
		MeetingService: svc,
	}
}

// ReplaceMeetings handles PUT /meetings
// @Summary Replace the existing-meeting set
// @Description Swaps the whole meeting list; no partial or merge semantics
// @Tags Meetings
// @Accept json
// @Produce json
// @Param request body dto.ReplaceMeetingsRequest true "Meetings"
// @Success 200 {object} dto.MeetingListResponse
// @Failure 400 {object} errors.AppError
// @Router /meetings [put]
func (c *MeetingController) ReplaceMeetings(ctx echo.Context) error {
	var req dto.ReplaceMeetingsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.MeetingService.ReplaceMeetings(&req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Meetings replaced")
}

// ListMeetings handles GET /meetings
// @Summary List the held meetings
// @Tags Meetings
// @Produce json
// @Success 200 {object} dto.MeetingListResponse
// @Router /meetings [get]
func (c *MeetingController) ListMeetings(ctx echo.Context) error {
	return c.SuccessResponse(ctx, c.MeetingService.ListMeetings(), "Success")
}
