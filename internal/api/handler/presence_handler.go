package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lineworks/workforce-system/internal/api/metrics"
)

// PresenceTracker is the interface the handler uses to record presence.
type PresenceTracker interface {
	Heartbeat(ctx context.Context, lineID, workerID string) (bool, error)
	Leave(ctx context.Context, lineID, workerID string) (bool, error)
	Online(ctx context.Context, lineID string) ([]string, error)
}

// ChannelNamer maps a line id to the realtime channel clients subscribe to.
type ChannelNamer func(lineID string) string

// PresenceHandler handles worker presence heartbeats and queries.
type PresenceHandler struct {
	tracker PresenceTracker
	channel ChannelNamer
}

func NewPresenceHandler(tracker PresenceTracker, channel ChannelNamer) *PresenceHandler {
	return &PresenceHandler{tracker: tracker, channel: channel}
}

type heartbeatRequest struct {
	LineID string `json:"line_id" validate:"required"`
}

type presenceResponse struct {
	LineID  string   `json:"line_id"`
	Channel string   `json:"channel"`
	Online  []string `json:"online,omitempty"`
	Joined  bool     `json:"joined,omitempty"`
}

// Heartbeat handles POST /v1/presence/heartbeat. The worker identity comes
// from the verified token.
//
// @Summary      Report the caller as present on a line
// @Tags         presence
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      heartbeatRequest  true  "Line to report presence on"
// @Success      200   {object}  presenceResponse
// @Router       /v1/presence/heartbeat [post]
func (h *PresenceHandler) Heartbeat(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req heartbeatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	joined, err := h.tracker.Heartbeat(c.Request().Context(), req.LineID, actor.UserID)
	if err != nil {
		return err
	}
	if joined {
		metrics.PresenceEventsTotal.WithLabelValues("join").Inc()
	}

	return respond(c, http.StatusOK, presenceResponse{
		LineID:  req.LineID,
		Channel: h.channel(req.LineID),
		Joined:  joined,
	})
}

// Leave handles DELETE /v1/presence?line_id=.
//
// @Summary      Remove the caller's presence from a line
// @Tags         presence
// @Produce      json
// @Security     BearerAuth
// @Param        line_id  query     string  true  "Line id"
// @Success      200      {object}  presenceResponse
// @Router       /v1/presence [delete]
func (h *PresenceHandler) Leave(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	lineID := c.QueryParam("line_id")
	if lineID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "line_id is required")
	}

	left, err := h.tracker.Leave(c.Request().Context(), lineID, actor.UserID)
	if err != nil {
		return err
	}
	if left {
		metrics.PresenceEventsTotal.WithLabelValues("leave").Inc()
	}

	return respond(c, http.StatusOK, presenceResponse{
		LineID:  lineID,
		Channel: h.channel(lineID),
	})
}

// Online handles GET /v1/presence/lines/:id.
//
// @Summary      List workers currently present on a line
// @Tags         presence
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Line id"
// @Success      200  {object}  presenceResponse
// @Router       /v1/presence/lines/{id} [get]
func (h *PresenceHandler) Online(c echo.Context) error {
	lineID := c.Param("id")
	online, err := h.tracker.Online(c.Request().Context(), lineID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, presenceResponse{
		LineID:  lineID,
		Channel: h.channel(lineID),
		Online:  online,
	})
}
