package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lineworks/workforce-system/internal/core/ports"
)

// BackupHandler handles HTTP requests for the backup schedule.
type BackupHandler struct {
	service ports.BackupService
}

func NewBackupHandler(service ports.BackupService) *BackupHandler {
	return &BackupHandler{service: service}
}

type updateBackupScheduleRequest struct {
	Times []string `json:"times" validate:"required"`
}

// Get handles GET /v1/backup-schedule.
//
// @Summary      Get the backup schedule
// @Tags         backup
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.BackupSchedule
// @Router       /v1/backup-schedule [get]
func (h *BackupHandler) Get(c echo.Context) error {
	schedule, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, schedule)
}

// Update handles PUT /v1/backup-schedule.
//
// @Summary      Replace the backup schedule
// @Tags         backup
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateBackupScheduleRequest  true  "HH:mm firing times"
// @Success      200   {object}  domain.BackupSchedule
// @Failure      400   {object}  map[string]string
// @Router       /v1/backup-schedule [put]
func (h *BackupHandler) Update(c echo.Context) error {
	var req updateBackupScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	schedule, err := h.service.Update(c.Request().Context(), req.Times)
	if err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, schedule, "backup schedule updated")
}
