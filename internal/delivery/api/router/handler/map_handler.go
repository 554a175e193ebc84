package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"zumap/internal/delivery/api/response"
	"zumap/internal/errors"
	"zumap/internal/infra/export"
	"zumap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const mimeGeoJSON = "application/geo+json"

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// MapHandler serves stateless marker passes
type MapHandler struct {
	mapUC  usecase.MapUsecase
	logger *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		mapUC:  params.MapUC,
		logger: params.Logger,
	}
}

// Markers evaluates the drop feed against the optional ?lat=&lng= position
func (h *MapHandler) Markers(c echo.Context) error {
	position, err := bindPosition(c, false)
	if err != nil {
		return rejectRequest(c, err)
	}

	markers, err := h.mapUC.Markers(c.Request().Context(), position)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, markers)
}

// MarkersGeoJSON returns the same pass as a GeoJSON feature collection
func (h *MapHandler) MarkersGeoJSON(c echo.Context) error {
	position, err := bindPosition(c, false)
	if err != nil {
		return rejectRequest(c, err)
	}

	markers, err := h.mapUC.Markers(c.Request().Context(), position)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := json.Marshal(export.MarkersGeoJSON(markers))
	if err != nil {
		return errors.Wrap(err, "failed to encode geojson")
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}
