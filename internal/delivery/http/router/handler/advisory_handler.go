package handler

import (
	"io"
	"net/http"

	deliverycontext "saathi/internal/delivery/context"
	"saathi/internal/delivery/http/response"
	"saathi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Uploaded leaf images are capped at 8 MB before decoding.
const maxImageBytes = 8 << 20

// AdvisoryHandler serves the generative-AI endpoints.
type AdvisoryHandler struct {
	uc usecase.AdvisoryUsecase
}

// NewAdvisoryHandler is the constructor for AdvisoryHandler.
func NewAdvisoryHandler(uc usecase.AdvisoryUsecase) *AdvisoryHandler {
	return &AdvisoryHandler{uc: uc}
}

// RecommendCrops returns the top crop suggestions for the submitted farm
// conditions.
func (h *AdvisoryHandler) RecommendCrops(c echo.Context) error {
	var input *usecase.CropAdviceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid crop advice input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	recommendations, err := h.uc.RecommendCrops(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recommendations, "")
}

// AnalyzePest diagnoses an uploaded leaf image. Expects a multipart form with
// an "image" file field.
func (h *AdvisoryHandler) AnalyzePest(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field 'image' is required")
	}
	if fileHeader.Size > maxImageBytes {
		return response.BadRequest(c, "IMAGE_TOO_LARGE", "Image exceeds the 8 MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.WithStack(err)
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	input := &usecase.PestAnalysisInput{
		Image:    data,
		MimeType: mimeType,
		Username: deliverycontext.GetUsername(c.Request().Context()),
	}

	output, err := h.uc.AnalyzePest(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Chat answers one assistant message.
func (h *AdvisoryHandler) Chat(c echo.Context) error {
	var input *usecase.ChatInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.Chat(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "")
}
