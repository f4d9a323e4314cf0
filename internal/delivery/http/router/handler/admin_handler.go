package handler

import (
	"net/http"

	deliverycontext "saathi/internal/delivery/context"
	"saathi/internal/delivery/http/response"
	"saathi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler serves the admin dashboard endpoints.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Farmers lists every registered farmer.
func (h *AdminHandler) Farmers(c echo.Context) error {
	farmers, err := h.uc.Farmers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, farmers, "")
}

// Analytics returns the crop distribution and pest-report series.
func (h *AdminHandler) Analytics(c echo.Context) error {
	analytics, err := h.uc.Analytics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, analytics, "")
}

// Devices returns sensor device summaries with 24h history.
func (h *AdminHandler) Devices(c echo.Context) error {
	devices, err := h.uc.DeviceOverview(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "")
}

// PublishAlert stores an outbreak alert and pushes it to registered devices.
func (h *AdminHandler) PublishAlert(c echo.Context) error {
	var input *usecase.PublishAlertInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.PublishAlert(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Alert published")
}

// RegisterDevice records the caller's device token for alert pushes.
func (h *AdminHandler) RegisterDevice(c echo.Context) error {
	var input *usecase.RegisterDeviceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	username := deliverycontext.GetUsername(c.Request().Context())
	if username == "" {
		return response.Unauthorized(c, "SESSION_MISSING", "No authenticated user")
	}

	if err := h.uc.RegisterDevice(c.Request().Context(), username, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device registered")
}
