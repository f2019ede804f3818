package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lineworks/workforce-system/internal/core/domain"
	"github.com/lineworks/workforce-system/internal/core/ports"
)

// WorkLogHandler handles HTTP requests for work sessions.
type WorkLogHandler struct {
	service ports.WorkLogService
}

func NewWorkLogHandler(service ports.WorkLogService) *WorkLogHandler {
	return &WorkLogHandler{service: service}
}

type startWorkLogRequest struct {
	LineID    string `json:"line_id"`
	ProcessID string `json:"process_id"`
	ShiftType string `json:"shift_type" validate:"required,oneof=DAY NIGHT"`
}

// Start handles POST /v1/work-logs. The worker identity comes from the
// verified token, never from the request body.
//
// @Summary      Start a work session
// @Tags         work-logs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      startWorkLogRequest  true  "Session details"
// @Success      201   {object}  domain.WorkLog
// @Failure      403   {object}  map[string]string
// @Router       /v1/work-logs [post]
func (h *WorkLogHandler) Start(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req startWorkLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	log, err := h.service.Start(c.Request().Context(), ports.StartWorkLogInput{
		WorkerID:  actor.UserID,
		LineID:    req.LineID,
		ProcessID: req.ProcessID,
		ShiftType: domain.ShiftType(req.ShiftType),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, log)
}

// End handles PUT /v1/work-logs/:id/end.
//
// @Summary      End a work session
// @Tags         work-logs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Work log id"
// @Success      200  {object}  domain.WorkLog
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/work-logs/{id}/end [put]
func (h *WorkLogHandler) End(c echo.Context) error {
	log, err := h.service.End(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, log)
}

// List handles GET /v1/work-logs/:workerId.
//
// @Summary      List a worker's work sessions
// @Tags         work-logs
// @Produce      json
// @Security     BearerAuth
// @Param        workerId  path      string  true  "Worker id"
// @Success      200       {array}   domain.WorkLog
// @Failure      404       {object}  map[string]string
// @Router       /v1/work-logs/{workerId} [get]
func (h *WorkLogHandler) List(c echo.Context) error {
	logs, err := h.service.ListByWorker(c.Request().Context(), c.Param("workerId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, logs)
}
