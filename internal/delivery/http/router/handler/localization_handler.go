package handler

import (
	"net/http"

	"saathi/internal/delivery/http/response"
	"saathi/internal/domain/entity"
	"saathi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocalizationHandler serves the language picker and translate lookups.
type LocalizationHandler struct {
	uc usecase.LocalizationUsecase
}

// NewLocalizationHandler is the constructor for LocalizationHandler.
func NewLocalizationHandler(uc usecase.LocalizationUsecase) *LocalizationHandler {
	return &LocalizationHandler{uc: uc}
}

type setLanguageInput struct {
	Language entity.Language `json:"language" validate:"required"`
}

// Languages lists the supported language set plus the active choice.
func (h *LocalizationHandler) Languages(c echo.Context) error {
	data := map[string]any{
		"active":    h.uc.ActiveLanguage(c.Request().Context()),
		"languages": h.uc.SupportedLanguages(),
	}

	return response.Success(c, http.StatusOK, data, "")
}

// SetLanguage switches the active UI language.
func (h *LocalizationHandler) SetLanguage(c echo.Context) error {
	var input *setLanguageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid language input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetLanguage(c.Request().Context(), input.Language); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"language": input.Language}, "Language updated")
}

// Resolve translates a dot-delimited key against the active catalog. Unknown
// keys echo back literally; this endpoint never fails on a miss.
func (h *LocalizationHandler) Resolve(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'key' is required")
	}

	data := map[string]string{
		"key":   key,
		"value": h.uc.Translate(c.Request().Context(), key),
	}

	return response.Success(c, http.StatusOK, data, "")
}
