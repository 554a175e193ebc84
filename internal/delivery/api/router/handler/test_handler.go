package handler

import (
	"log/slog"
	"net/http"

	"zumap/internal/delivery/api/response"
	"zumap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	DropUC usecase.DropUsecase
	Logger *slog.Logger
}

// TestHandler serves helpers for test environments. Its routes are only
// registered when test routes are enabled.
type TestHandler struct {
	dropUC usecase.DropUsecase
	logger *slog.Logger
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{
		dropUC: params.DropUC,
		logger: params.Logger,
	}
}

// ResetDrops deletes every drop and stored payload
func (h *TestHandler) ResetDrops(c echo.Context) error {
	removed, err := h.dropUC.ResetDrops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.WarnContext(c.Request().Context(), "All drops removed through test route", slog.Int64("removed", removed))

	return response.Success(c, http.StatusOK, map[string]int64{"removed": removed})
}
