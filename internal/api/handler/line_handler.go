package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lineworks/workforce-system/internal/core/domain"
	"github.com/lineworks/workforce-system/internal/core/ports"
)

// LineHandler handles HTTP requests for line/process/shift operations.
type LineHandler struct {
	service ports.LineService
}

func NewLineHandler(service ports.LineService) *LineHandler {
	return &LineHandler{service: service}
}

// Board handles GET /v1/lines — the full board with aggregate statuses.
//
// @Summary      List all lines with aggregate shift statuses
// @Tags         lines
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.LineBoard
// @Failure      401  {object}  map[string]string
// @Router       /v1/lines [get]
func (h *LineHandler) Board(c echo.Context) error {
	boards, err := h.service.Board(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, boards)
}

// Summary handles GET /v1/lines/:id/summary.
//
// @Summary      Get the flattened summary of one line
// @Tags         lines
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Line id"
// @Success      200  {object}  domain.LineSummary
// @Failure      404  {object}  map[string]string
// @Router       /v1/lines/{id}/summary [get]
func (h *LineHandler) Summary(c echo.Context) error {
	summary, err := h.service.LineSummary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, summary)
}

// CreateLine handles POST /v1/lines.
//
// @Summary      Create a production line
// @Tags         lines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLineRequest  true  "Line details"
// @Success      201   {object}  domain.Line
// @Failure      422   {object}  map[string]string
// @Router       /v1/lines [post]
func (h *LineHandler) CreateLine(c echo.Context) error {
	var req createLineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	line, err := h.service.CreateLine(c.Request().Context(), ports.CreateLineInput{
		Name:  req.Name,
		Order: req.Order,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, line)
}

// CreateProcess handles POST /v1/lines/:id/processes.
//
// @Summary      Create a process on a line
// @Tags         lines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Line id"
// @Param        body  body      createProcessRequest  true  "Process details"
// @Success      201   {object}  domain.Process
// @Failure      404   {object}  map[string]string
// @Router       /v1/lines/{id}/processes [post]
func (h *LineHandler) CreateProcess(c echo.Context) error {
	var req createProcessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	process, err := h.service.CreateProcess(c.Request().Context(), ports.CreateProcessInput{
		LineID: c.Param("id"),
		Name:   req.Name,
		Order:  req.Order,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, process)
}

// UpdateShiftStatus handles PUT /v1/line-status.
//
// @Summary      Set the work status of one (process, shift) pair
// @Tags         lines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateShiftStatusRequest  true  "Status update"
// @Success      200   {object}  ports.LineBoard
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/line-status [put]
func (h *LineHandler) UpdateShiftStatus(c echo.Context) error {
	var req updateShiftStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	board, err := h.service.UpdateShiftStatus(c.Request().Context(), ports.UpdateShiftStatusInput{
		ProcessID:  req.ProcessID,
		ShiftType:  domain.ShiftType(req.ShiftType),
		WorkStatus: domain.WorkStatus(req.WorkStatus),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, board)
}

// AssignWaitingWorker handles PUT /v1/waiting-worker.
//
// @Summary      Place a worker on the waiting slot of one (process, shift) pair
// @Tags         lines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignWaitingWorkerRequest  true  "Assignment"
// @Success      200   {object}  ports.LineBoard
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/waiting-worker [put]
func (h *LineHandler) AssignWaitingWorker(c echo.Context) error {
	var req assignWaitingWorkerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	board, err := h.service.AssignWaitingWorker(c.Request().Context(), ports.AssignWaitingWorkerInput{
		ProcessID: req.ProcessID,
		ShiftType: domain.ShiftType(req.ShiftType),
		WorkerID:  req.WorkerID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, board)
}

// RemoveWaitingWorker handles DELETE /v1/waiting-worker?process_id=&shift_type=.
//
// @Summary      Clear the waiting-worker slot of one (process, shift) pair
// @Tags         lines
// @Produce      json
// @Security     BearerAuth
// @Param        process_id  query     string  true  "Process id"
// @Param        shift_type  query     string  true  "DAY or NIGHT"
// @Success      200         {object}  ports.RemoveWaitingWorkerResult
// @Failure      404         {object}  map[string]string
// @Router       /v1/waiting-worker [delete]
func (h *LineHandler) RemoveWaitingWorker(c echo.Context) error {
	processID := c.QueryParam("process_id")
	shiftType := c.QueryParam("shift_type")
	if processID == "" || shiftType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "process_id and shift_type are required")
	}

	result, err := h.service.RemoveWaitingWorker(c.Request().Context(), ports.RemoveWaitingWorkerInput{
		ProcessID: processID,
		ShiftType: domain.ShiftType(shiftType),
	})
	if err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, result, "waiting worker removed")
}
