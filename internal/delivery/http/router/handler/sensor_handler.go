package handler

import (
	"net/http"

	"saathi/internal/delivery/http/response"
	"saathi/internal/domain/entity"
	"saathi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SensorHandler serves the live farm-data view.
type SensorHandler struct {
	uc usecase.SensorUsecase
}

// NewSensorHandler is the constructor for SensorHandler.
func NewSensorHandler(uc usecase.SensorUsecase) *SensorHandler {
	return &SensorHandler{uc: uc}
}

type togglePumpInput struct {
	Pump entity.PumpState `json:"pump" validate:"required,oneof=ON OFF"`
}

// Snapshot performs a blocking sensor read.
func (h *SensorHandler) Snapshot(c echo.Context) error {
	snapshot, err := h.uc.Snapshot(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "")
}

// TogglePump switches the water pump. On failure the previous state is
// restored server-side and the error surfaces to the client.
func (h *SensorHandler) TogglePump(c echo.Context) error {
	var input *togglePumpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pump input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	snapshot, err := h.uc.TogglePump(c.Request().Context(), input.Pump)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Pump state updated")
}
