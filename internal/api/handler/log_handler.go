package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lineworks/workforce-system/internal/core/domain"
	"github.com/lineworks/workforce-system/internal/core/ports"
)

// LogHandler handles HTTP requests for training and defect logs.
type LogHandler struct {
	service ports.LogService
}

func NewLogHandler(service ports.LogService) *LogHandler {
	return &LogHandler{service: service}
}

type createLogRequest struct {
	WorkerID  string `json:"worker_id"  validate:"required"`
	LineID    string `json:"line_id"    validate:"required"`
	ProcessID string `json:"process_id" validate:"required"`
	ShiftType string `json:"shift_type" validate:"required,oneof=DAY NIGHT"`
	Memo      string `json:"memo"`
}

func (r createLogRequest) toInput() ports.CreateLogInput {
	return ports.CreateLogInput{
		WorkerID:  r.WorkerID,
		LineID:    r.LineID,
		ProcessID: r.ProcessID,
		ShiftType: domain.ShiftType(r.ShiftType),
		Memo:      r.Memo,
	}
}

// CreateTraining handles POST /v1/training-logs.
//
// @Summary      Record a completed training
// @Tags         logs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLogRequest  true  "Training log details"
// @Success      201   {object}  domain.TrainingLog
// @Failure      404   {object}  map[string]string
// @Router       /v1/training-logs [post]
func (h *LogHandler) CreateTraining(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req createLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	log, err := h.service.CreateTrainingLog(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, log)
}

// ListTraining handles GET /v1/training-logs/:workerId.
//
// @Summary      List a worker's training logs
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        workerId  path      string  true  "Worker id"
// @Success      200       {array}   domain.TrainingLog
// @Failure      404       {object}  map[string]string
// @Router       /v1/training-logs/{workerId} [get]
func (h *LogHandler) ListTraining(c echo.Context) error {
	logs, err := h.service.ListTrainingLogs(c.Request().Context(), c.Param("workerId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, logs)
}

// DeleteTraining handles DELETE /v1/training-logs/:id.
//
// @Summary      Delete a training log
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Training log id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/training-logs/{id} [delete]
func (h *LogHandler) DeleteTraining(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteTrainingLog(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, nil, "training log deleted")
}

// CreateDefect handles POST /v1/defect-logs.
//
// @Summary      Record a defect occurrence
// @Tags         logs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLogRequest  true  "Defect log details"
// @Success      201   {object}  domain.DefectLog
// @Failure      404   {object}  map[string]string
// @Router       /v1/defect-logs [post]
func (h *LogHandler) CreateDefect(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req createLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	log, err := h.service.CreateDefectLog(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, log)
}

// ListDefects handles GET /v1/defect-logs/:workerId.
//
// @Summary      List a worker's defect logs
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        workerId  path      string  true  "Worker id"
// @Success      200       {array}   domain.DefectLog
// @Failure      404       {object}  map[string]string
// @Router       /v1/defect-logs/{workerId} [get]
func (h *LogHandler) ListDefects(c echo.Context) error {
	logs, err := h.service.ListDefectLogs(c.Request().Context(), c.Param("workerId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, logs)
}

// DeleteDefect handles DELETE /v1/defect-logs/:id.
//
// @Summary      Delete a defect log
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Defect log id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/defect-logs/{id} [delete]
func (h *LogHandler) DeleteDefect(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteDefectLog(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, nil, "defect log deleted")
}
