package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"zumap/internal/delivery/api/response"
	"zumap/internal/delivery/api/validator"
	"zumap/internal/domain/entity"
	"zumap/internal/domain/geofence"
	"zumap/internal/domain/spatial"
	"zumap/internal/errors"
	"zumap/internal/infra/export"
	"zumap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	mimeKML     = "application/vnd.google-earth.kml+xml"
	mimePNG     = "image/png"
	formFileKey = "file"
)

// DropHandlerParams holds dependencies for DropHandler, injected by Fx.
type DropHandlerParams struct {
	fx.In

	DropUC usecase.DropUsecase
	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// DropHandler serves drop authoring, listing, sharing and stateless collects
type DropHandler struct {
	dropUC usecase.DropUsecase
	mapUC  usecase.MapUsecase
	logger *slog.Logger
}

// NewDropHandler is the constructor for DropHandler
func NewDropHandler(params DropHandlerParams) *DropHandler {
	return &DropHandler{
		dropUC: params.DropUC,
		mapUC:  params.MapUC,
		logger: params.Logger,
	}
}

// DropSummary is the public view of a drop. Content never leaves through it.
type DropSummary struct {
	ID             string             `json:"id"`
	Latitude       float64            `json:"lat"`
	Longitude      float64            `json:"lng"`
	ContentType    entity.ContentType `json:"content_type"`
	Icon           geofence.Icon      `json:"icon"`
	Teaser         string             `json:"teaser,omitempty"`
	RevealDistance float64            `json:"reveal_distance"`
	CreatedAt      *time.Time         `json:"created_at,omitempty"`
}

// NearbyDropSummary is a drop summary with its distance from the query center.
type NearbyDropSummary struct {
	DropSummary
	DistanceMeters float64 `json:"distance_meters"`
	DistanceLabel  string  `json:"distance_label"`
}

func toDropSummary(drop entity.Drop) DropSummary {
	summary := DropSummary{
		ID:             drop.ID,
		Latitude:       drop.Position.Lat,
		Longitude:      drop.Position.Lng,
		ContentType:    drop.ContentType,
		Icon:           geofence.IconFor(drop.ContentType),
		Teaser:         drop.Teaser,
		RevealDistance: geofence.ResolveRevealDistance(drop),
	}
	if !drop.CreatedAt.IsZero() {
		createdAt := drop.CreatedAt
		summary.CreatedAt = &createdAt
	}

	return summary
}

// CreateDropRequest is accepted as JSON for text drops and as a multipart form
// for file drops, with the payload in the "file" part.
type CreateDropRequest struct {
	Latitude       float64 `json:"lat" form:"lat"`
	Longitude      float64 `json:"lng" form:"lng"`
	ContentType    string  `json:"content_type" form:"content_type" validate:"required,content_type"`
	Text           string  `json:"text" form:"text"`
	Teaser         string  `json:"teaser" form:"teaser" validate:"max=140"`
	RevealDistance float64 `json:"reveal_distance" form:"reveal_distance" validate:"gte=0"`
}

// ResolveQRRequest carries decoded share code data
type ResolveQRRequest struct {
	Data string `json:"data" validate:"required"`
}

// CollectResponse is the payload revealed by a successful collect
type CollectResponse struct {
	EventID        string             `json:"event_id"`
	DropID         string             `json:"drop_id"`
	ContentType    entity.ContentType `json:"content_type"`
	Text           string             `json:"text,omitempty"`
	ContentURL     string             `json:"content_url,omitempty"`
	DistanceMeters float64            `json:"distance_meters"`
	CollectedAt    time.Time          `json:"collected_at"`
}

func toCollectResponse(result *usecase.CollectResult) CollectResponse {
	return CollectResponse{
		EventID:        result.EventID,
		DropID:         result.DropID,
		ContentType:    result.ContentType,
		Text:           result.Text,
		ContentURL:     result.ContentURL,
		DistanceMeters: result.DistanceMeters,
		CollectedAt:    result.CollectedAt,
	}
}

// ListDrops returns the public summaries of the current drop feed
func (h *DropHandler) ListDrops(c echo.Context) error {
	drops, err := h.dropUC.ListDrops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summaries := make([]DropSummary, 0, len(drops))
	for _, drop := range drops {
		summaries = append(summaries, toDropSummary(drop))
	}

	return response.Success(c, http.StatusOK, summaries)
}

// NearbyDrops lists drops around ?lat=&lng=, nearest first. An absent or zero
// radius selects the configured maximum.
func (h *DropHandler) NearbyDrops(c echo.Context) error {
	var radius float64
	if err := echo.QueryParamsBinder(c).Float64("radius", &radius).BindError(); err != nil {
		return response.BindingError(c, "Invalid nearby radius")
	}

	center, err := bindPosition(c, false)
	if err != nil {
		return rejectRequest(c, err)
	}
	if center == nil {
		return response.ValidationError(c, []validator.FieldError{
			{Field: "lat", Rule: "required"},
			{Field: "lng", Rule: "required"},
		})
	}

	nearby, err := h.dropUC.Nearby(c.Request().Context(), *center, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNearbySummaries(nearby))
}

func toNearbySummaries(nearby []spatial.NearbyDrop) []NearbyDropSummary {
	summaries := make([]NearbyDropSummary, 0, len(nearby))
	for _, n := range nearby {
		summaries = append(summaries, NearbyDropSummary{
			DropSummary:    toDropSummary(n.Drop),
			DistanceMeters: n.DistanceMeters,
			DistanceLabel:  geofence.FormatDistance(n.DistanceMeters),
		})
	}

	return summaries
}

// CreateDrop authors a new drop
func (h *DropHandler) CreateDrop(c echo.Context) error {
	var req CreateDropRequest
	if err := bindAndValidate(c, &req, "Invalid drop input"); err != nil {
		return rejectRequest(c, err)
	}

	input := &usecase.CreateDropInput{
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		ContentType:    req.ContentType,
		Text:           req.Text,
		Teaser:         req.Teaser,
		RevealDistance: req.RevealDistance,
	}

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		file, err := readFormFile(c)
		if err != nil {
			return rejectRequest(c, err)
		}
		input.File = file
	}

	drop, err := h.dropUC.CreateDrop(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toDropSummary(*drop))
}

// readFormFile returns the uploaded payload, or nil when no file part was sent.
func readFormFile(c echo.Context) ([]byte, error) {
	header, err := c.FormFile(formFileKey)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, newBindingError("Invalid file upload")
	}

	file, err := header.Open()
	if err != nil {
		return nil, newBindingError("Invalid file upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, newBindingError("Invalid file upload")
	}

	return data, nil
}

// GetDrop returns the public summary of one drop
func (h *DropHandler) GetDrop(c echo.Context) error {
	drop, err := h.dropUC.GetDrop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDropSummary(*drop))
}

// ShareQR renders a PNG share code for a drop
func (h *DropHandler) ShareQR(c echo.Context) error {
	png, err := h.dropUC.ShareQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, mimePNG, png)
}

// ResolveQR resolves scanned share code data to its drop
func (h *DropHandler) ResolveQR(c echo.Context) error {
	var req ResolveQRRequest
	if err := bindAndValidate(c, &req, "Invalid share code input"); err != nil {
		return rejectRequest(c, err)
	}

	drop, err := h.dropUC.ResolveQR(c.Request().Context(), req.Data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDropSummary(*drop))
}

// CollectDrop reveals a drop to a user standing within its reveal distance
func (h *DropHandler) CollectDrop(c echo.Context) error {
	position, err := bindPosition(c, true)
	if err != nil {
		return rejectRequest(c, err)
	}

	result, err := h.mapUC.Collect(c.Request().Context(), c.Param("id"), position)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCollectResponse(result))
}

// ExportKML writes every drop as a KML placemark
func (h *DropHandler) ExportKML(c echo.Context) error {
	drops, err := h.dropUC.ListDrops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteKML(&buf, drops); err != nil {
		return errors.Wrap(err, "failed to write kml")
	}

	return c.Blob(http.StatusOK, mimeKML, buf.Bytes())
}
