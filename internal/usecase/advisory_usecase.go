package usecase

import (
	"context"

	"saathi/internal/domain/entity"
)

// CropAdviceInput carries the farm details form plus whether to enrich the
// prompt with a live sensor reading.
type CropAdviceInput struct {
	SoilType          string `json:"soilType" validate:"required"`
	WaterAvailability string `json:"waterAvailability" validate:"required"`
	Season            string `json:"season" validate:"required"`
	PreviousCrop      string `json:"previousCrop"`
	UseSensor         bool   `json:"useSensor"`
}

// PestAnalysisInput is an uploaded leaf image.
type PestAnalysisInput struct {
	Image    []byte
	MimeType string
	Username string
}

// ChatInput is one user turn of the assistant conversation.
type ChatInput struct {
	Message  string          `json:"message" validate:"required"`
	Language entity.Language `json:"language"`
}

// PestAnalysisOutput pairs the diagnosis with the stored image reference.
type PestAnalysisOutput struct {
	Analysis *entity.PestAnalysis `json:"analysis"`
	ImageRef string               `json:"imageRef,omitempty"`
}

// AdvisoryUsecase fronts the generative-AI collaborator for the farmer views.
type AdvisoryUsecase interface {
	// RecommendCrops asks for the top crops for the given conditions,
	// optionally refined with a live sensor snapshot.
	RecommendCrops(ctx context.Context, input *CropAdviceInput) ([]entity.CropRecommendation, error)

	// AnalyzePest stores the leaf image, requests a diagnosis, and publishes
	// a pest-report event for the admin analytics series.
	AnalyzePest(ctx context.Context, input *PestAnalysisInput) (*PestAnalysisOutput, error)

	// Chat answers one assistant message in the requested language. When the
	// language is empty the active UI language is used.
	Chat(ctx context.Context, input *ChatInput) (*entity.ChatMessage, error)
}
