package handler

import (
	"log/slog"
	"net/http"

	"zumap/internal/delivery/api/response"
	"zumap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// SessionHandler serves long-lived map sessions keyed by a client chosen ID
type SessionHandler struct {
	mapUC  usecase.MapUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		mapUC:  params.MapUC,
		logger: params.Logger,
	}
}

// UpdatePosition records the session position, {} meaning unknown, and returns fresh markers
func (h *SessionHandler) UpdatePosition(c echo.Context) error {
	position, err := bindPosition(c, true)
	if err != nil {
		return rejectRequest(c, err)
	}

	markers, err := h.mapUC.UpdateSessionPosition(c.Request().Context(), c.Param("id"), position)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, markers)
}

// Markers returns the markers of the session's latest pass
func (h *SessionHandler) Markers(c echo.Context) error {
	markers, err := h.mapUC.SessionMarkers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, markers)
}

// Collect activates the collect action bound for a drop in the session
func (h *SessionHandler) Collect(c echo.Context) error {
	result, err := h.mapUC.CollectInSession(c.Request().Context(), c.Param("id"), c.Param("dropId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCollectResponse(result))
}

// End discards a session
func (h *SessionHandler) End(c echo.Context) error {
	if err := h.mapUC.EndSession(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
