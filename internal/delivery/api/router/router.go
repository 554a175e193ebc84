// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"
	"strconv"

	"zumap/config"
	"zumap/internal/delivery/api/router/handler"
	"zumap/internal/infra/metrics"
	"zumap/internal/util"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const (
	dropsPath = "/api/v1/drops"

	// multipartOverhead leaves room for form fields next to a maximum size upload.
	multipartOverhead = 64 << 10
)

type RouterParams struct {
	fx.In

	DropHandler    *handler.DropHandler
	MapHandler     *handler.MapHandler
	SessionHandler *handler.SessionHandler
	ContentHandler *handler.ContentHandler
	StatusHandler  *handler.StatusHandler
	TestHandler    *handler.TestHandler
	Metrics        *metrics.Collector `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	dropHandler    *handler.DropHandler
	mapHandler     *handler.MapHandler
	sessionHandler *handler.SessionHandler
	contentHandler *handler.ContentHandler
	statusHandler  *handler.StatusHandler
	testHandler    *handler.TestHandler
	metrics        *metrics.Collector
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dropHandler:    params.DropHandler,
		mapHandler:     params.MapHandler,
		sessionHandler: params.SessionHandler,
		contentHandler: params.ContentHandler,
		statusHandler:  params.StatusHandler,
		testHandler:    params.TestHandler,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// IsUploadRoute reports whether the request creates a drop. Those requests
// carry file payloads and get the upload size limit instead of the general one.
func IsUploadRoute(c echo.Context) bool {
	return c.Request().Method == http.MethodPost && c.Path() == dropsPath
}

// uploadBodyLimit returns the body limit of the drop creation route.
func (r *router) uploadBodyLimit() string {
	maxUpload, err := util.ParseBytes(r.config.Blob.MaxUploadSize)
	if err != nil {
		return r.config.Blob.MaxUploadSize
	}

	return strconv.FormatInt(maxUpload+multipartOverhead, 10)
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/status", r.statusHandler.Status)

	dropsGroup := apiV1.Group("/drops")
	{
		dropsGroup.GET("", r.dropHandler.ListDrops)
		dropsGroup.POST("", r.dropHandler.CreateDrop, echomiddleware.BodyLimit(r.uploadBodyLimit()))
		dropsGroup.GET("/nearby", r.dropHandler.NearbyDrops)
		dropsGroup.POST("/qr", r.dropHandler.ResolveQR)
		dropsGroup.GET("/:id", r.dropHandler.GetDrop)
		dropsGroup.GET("/:id/qr", r.dropHandler.ShareQR)
		dropsGroup.POST("/:id/collect", r.dropHandler.CollectDrop)
	}
	apiV1.GET("/drops.kml", r.dropHandler.ExportKML)

	apiV1.GET("/map", r.mapHandler.Markers)
	apiV1.GET("/map.geojson", r.mapHandler.MarkersGeoJSON)

	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.PUT("/:id/position", r.sessionHandler.UpdatePosition)
		sessionsGroup.GET("/:id/markers", r.sessionHandler.Markers)
		sessionsGroup.POST("/:id/collect/:dropId", r.sessionHandler.Collect)
		sessionsGroup.DELETE("/:id", r.sessionHandler.End)
	}

	apiV1.GET("/content/*", r.contentHandler.Open)
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.DELETE("/drops", r.testHandler.ResetDrops)
}
