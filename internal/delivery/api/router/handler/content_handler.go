package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"zumap/internal/delivery/api/response"
	"zumap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// contentCacheControl applies to payloads, whose keys are content addresses.
const contentCacheControl = "public, max-age=31536000, immutable"

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	DropUC usecase.DropUsecase
	Logger *slog.Logger
}

// ContentHandler streams stored drop payloads
type ContentHandler struct {
	dropUC usecase.DropUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		dropUC: params.DropUC,
		logger: params.Logger,
	}
}

// Open streams the payload stored under the wildcard key
func (h *ContentHandler) Open(c echo.Context) error {
	reader, info, err := h.dropUC.OpenContent(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer reader.Close()

	header := c.Response().Header()
	header.Set("Cache-Control", contentCacheControl)
	if info.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, reader)
}
