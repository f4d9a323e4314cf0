package handler

import (
	"net/http"
	"strconv"

	"saathi/internal/delivery/http/response"
	"saathi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler serves schemes, allocations, and outbreak alerts.
type ContentHandler struct {
	uc usecase.ContentUsecase
}

// NewContentHandler is the constructor for ContentHandler.
func NewContentHandler(uc usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// Schemes lists the government schemes.
func (h *ContentHandler) Schemes(c echo.Context) error {
	schemes, err := h.uc.Schemes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, schemes, "")
}

// SchemeQR renders a scheme's application link as a QR code PNG.
func (h *ContentHandler) SchemeQR(c echo.Context) error {
	schemeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Scheme ID must be a number")
	}

	png, err := h.uc.SchemeQR(c.Request().Context(), schemeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Allocations lists the farmer's seed/fertilizer/subsidy allocations.
func (h *ContentHandler) Allocations(c echo.Context) error {
	allocations, err := h.uc.Allocations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, allocations, "")
}

// Alerts lists published outbreak alerts, newest first.
func (h *ContentHandler) Alerts(c echo.Context) error {
	alerts, err := h.uc.Alerts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alerts, "")
}
