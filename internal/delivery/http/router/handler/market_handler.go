package handler

import (
	"net/http"

	"saathi/internal/delivery/http/response"
	"saathi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MarketHandler serves the market prices view.
type MarketHandler struct {
	uc usecase.MarketUsecase
}

// NewMarketHandler is the constructor for MarketHandler.
func NewMarketHandler(uc usecase.MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

func marketParams(c echo.Context) (string, string, bool) {
	crop := c.QueryParam("crop")
	region := c.QueryParam("region")

	return crop, region, crop != "" && region != ""
}

// Prices returns the current quote and 90-day history for a crop in a region.
func (h *MarketHandler) Prices(c echo.Context) error {
	crop, region, ok := marketParams(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameters 'crop' and 'region' are required")
	}

	data, err := h.uc.Fetch(c.Request().Context(), crop, region)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, data, "")
}

// Forecast returns the AI 7/30-day price outlook.
func (h *MarketHandler) Forecast(c echo.Context) error {
	crop, region, ok := marketParams(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameters 'crop' and 'region' are required")
	}

	forecast, err := h.uc.Forecast(c.Request().Context(), crop, region)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, forecast, "")
}
