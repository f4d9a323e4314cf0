package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "saathi/internal/delivery/context"
	"saathi/internal/domain/entity"
	"saathi/internal/domain/service"
	"saathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// advisoryService implements the AdvisoryUsecase interface.
type advisoryService struct {
	advisory     service.AdvisoryService
	sensor       service.SensorService
	imageStore   service.ImageStore
	publisher    service.EventPublisher
	localization usecase.LocalizationUsecase
	logger       *slog.Logger
}

// AdvisoryServiceParams holds dependencies injected by Fx.
type AdvisoryServiceParams struct {
	fx.In

	Advisory     service.AdvisoryService
	Sensor       service.SensorService
	ImageStore   service.ImageStore
	Publisher    service.EventPublisher
	Localization usecase.LocalizationUsecase
	Logger       *slog.Logger
}

// NewAdvisoryService is the constructor for advisoryService.
func NewAdvisoryService(params AdvisoryServiceParams) usecase.AdvisoryUsecase {
	return &advisoryService{
		advisory:     params.Advisory,
		sensor:       params.Sensor,
		imageStore:   params.ImageStore,
		publisher:    params.Publisher,
		localization: params.Localization,
		logger:       params.Logger,
	}
}

func (srv *advisoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecommendCrops forwards the farm conditions to the model. When UseSensor is
// set a live reading is attached; a failed reading degrades to a plain
// recommendation instead of failing the request.
func (srv *advisoryService) RecommendCrops(ctx context.Context, input *usecase.CropAdviceInput) ([]entity.CropRecommendation, error) {
	cond := service.CropConditions{
		SoilType:          input.SoilType,
		WaterAvailability: input.WaterAvailability,
		Season:            input.Season,
		PreviousCrop:      input.PreviousCrop,
	}

	if input.UseSensor {
		snapshot, err := srv.sensor.Read(ctx)
		if err != nil {
			srv.log(ctx).Warn("Sensor unavailable for crop advice, continuing without readings", slog.Any("error", err))
		} else {
			cond.Sensor = snapshot
		}
	}

	recommendations, err := srv.advisory.RecommendCrops(ctx, cond)
	if err != nil {
		return nil, err
	}

	return recommendations, nil
}

// AnalyzePest stores the leaf image, requests the diagnosis, and publishes a
// pest-report event. Storage and publishing are best effort: neither failure
// blocks the farmer from getting an answer.
func (srv *advisoryService) AnalyzePest(ctx context.Context, input *usecase.PestAnalysisInput) (*usecase.PestAnalysisOutput, error) {
	imageRef, err := srv.imageStore.Save(ctx, input.Image, input.MimeType)
	if err != nil {
		srv.log(ctx).Warn("Failed to store leaf image", slog.Any("error", err))
		imageRef = ""
	}

	analysis, err := srv.advisory.AnalyzePest(ctx, input.Image, input.MimeType)
	if err != nil {
		return nil, err
	}

	event := &service.PestReportEvent{
		ID:         uuid.New().String(),
		Username:   input.Username,
		Disease:    analysis.Disease,
		Confidence: analysis.Confidence,
		ImageRef:   imageRef,
		ReportedAt: time.Now().UTC(),
	}
	if err := srv.publisher.PublishPestReport(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish pest report event", slog.Any("error", err))
	}

	return &usecase.PestAnalysisOutput{Analysis: analysis, ImageRef: imageRef}, nil
}

// Chat answers one message in the requested language, defaulting to the
// active UI language. The AI side of the exchange gets a fresh message ID.
func (srv *advisoryService) Chat(ctx context.Context, input *usecase.ChatInput) (*entity.ChatMessage, error) {
	lang := input.Language
	if lang == "" {
		lang = srv.localization.ActiveLanguage(ctx)
	}
	if !entity.IsSupportedLanguage(lang) {
		return nil, errors.Errorf("unsupported chat language %q", lang)
	}

	text, err := srv.advisory.Chat(ctx, input.Message, lang)
	if err != nil {
		return nil, err
	}

	return &entity.ChatMessage{
		ID:     uuid.New().String(),
		Sender: entity.ChatSenderAI,
		Text:   text,
	}, nil
}
