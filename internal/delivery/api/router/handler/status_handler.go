package handler

import (
	"net/http"

	"zumap/internal/delivery/api/response"
	"zumap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthCheck reports that the process is serving
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// StatusHandlerParams holds dependencies for StatusHandler, injected by Fx.
type StatusHandlerParams struct {
	fx.In

	StatusUC usecase.StatusUsecase
}

// StatusHandler serves the network and feed status shown by clients
type StatusHandler struct {
	statusUC usecase.StatusUsecase
}

// NewStatusHandler is the constructor for StatusHandler
func NewStatusHandler(params StatusHandlerParams) *StatusHandler {
	return &StatusHandler{statusUC: params.StatusUC}
}

// Status returns the current status report
func (h *StatusHandler) Status(c echo.Context) error {
	report, err := h.statusUC.Status(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
