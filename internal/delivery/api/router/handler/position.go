package handler

import (
	"zumap/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// PositionRequest is an optional user position. Both fields absent means the
// position is unknown; range checks happen in the use cases.
type PositionRequest struct {
	Lat *float64 `json:"lat" validate:"required_with=Lng"`
	Lng *float64 `json:"lng" validate:"required_with=Lat"`
}

// Coordinate returns nil when the position is unknown.
func (p PositionRequest) Coordinate() *entity.Coordinate {
	if p.Lat == nil || p.Lng == nil {
		return nil
	}

	return &entity.Coordinate{Lat: *p.Lat, Lng: *p.Lng}
}

// queryPosition reads ?lat=&lng= into a position.
func queryPosition(c echo.Context) (PositionRequest, error) {
	var (
		p        PositionRequest
		lat, lng float64
	)
	if err := echo.QueryParamsBinder(c).Float64("lat", &lat).Float64("lng", &lng).BindError(); err != nil {
		return p, err
	}
	if c.QueryParam("lat") != "" {
		p.Lat = &lat
	}
	if c.QueryParam("lng") != "" {
		p.Lng = &lng
	}

	return p, nil
}

// bindPosition decodes and validates a position from the query string or,
// when body is true, the JSON body.
func bindPosition(c echo.Context, body bool) (*entity.Coordinate, error) {
	var (
		p   PositionRequest
		err error
	)
	if body {
		err = c.Bind(&p)
	} else {
		p, err = queryPosition(c)
	}
	if err != nil {
		return nil, newBindingError("Invalid position")
	}
	if err := c.Validate(&p); err != nil {
		return nil, err
	}

	return p.Coordinate(), nil
}
