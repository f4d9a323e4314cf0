package handler

import (
	"net/http"
	"strconv"

	"saathi/internal/delivery/http/response"
	"saathi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WeatherHandler serves the weather view endpoints.
type WeatherHandler struct {
	uc usecase.WeatherUsecase
}

// NewWeatherHandler is the constructor for WeatherHandler.
func NewWeatherHandler(uc usecase.WeatherUsecase) *WeatherHandler {
	return &WeatherHandler{uc: uc}
}

func parseCoordinates(c echo.Context) (float64, float64, error) {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return 0, 0, errors.New("query parameter 'lat' must be a number")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return 0, 0, errors.New("query parameter 'lon' must be a number")
	}

	return lat, lon, nil
}

// Forecast returns the 3-day forecast for a coordinate, served from cache
// when the upstream provider is down.
func (h *WeatherHandler) Forecast(c echo.Context) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	report, err := h.uc.Forecast(c.Request().Context(), lat, lon)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "")
}

// Advisory returns the AI farming advisory for the current forecast.
func (h *WeatherHandler) Advisory(c echo.Context) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	advisory, err := h.uc.Advisory(c.Request().Context(), lat, lon)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"advisory": advisory}, "")
}
