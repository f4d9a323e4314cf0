package impl

import (
	"context"
	"log/slog"

	deliverycontext "saathi/internal/delivery/context"
	"saathi/internal/domain/entity"
	domainerrors "saathi/internal/domain/errors"
	"saathi/internal/domain/repository"
	"saathi/internal/domain/service"
	"saathi/internal/usecase"

	"go.uber.org/fx"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	content   service.ContentService
	qrcode    service.QRCodeService
	alertRepo repository.AlertRepository
	logger    *slog.Logger
}

// ContentServiceParams holds dependencies injected by Fx.
type ContentServiceParams struct {
	fx.In

	Content   service.ContentService
	QRCode    service.QRCodeService
	AlertRepo repository.AlertRepository
	Logger    *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		content:   params.Content,
		qrcode:    params.QRCode,
		alertRepo: params.AlertRepo,
		logger:    params.Logger,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *contentService) Schemes(ctx context.Context) ([]entity.Scheme, error) {
	return srv.content.Schemes(ctx)
}

// SchemeQR renders the scheme's application link as a QR code PNG.
func (srv *contentService) SchemeQR(ctx context.Context, schemeID int) ([]byte, error) {
	schemes, err := srv.content.Schemes(ctx)
	if err != nil {
		return nil, err
	}

	for _, scheme := range schemes {
		if scheme.ID != schemeID {
			continue
		}

		png, err := srv.qrcode.Generate(scheme.ApplicationLink)
		if err != nil {
			srv.log(ctx).Error("Failed to render scheme QR code", slog.Int("schemeID", schemeID), slog.Any("error", err))

			return nil, domainerrors.ErrInternalError
		}

		return png, nil
	}

	return nil, domainerrors.ErrNotFound.WrapMessage("No such scheme.")
}

func (srv *contentService) Allocations(ctx context.Context) ([]entity.Allocation, error) {
	return srv.content.Allocations(ctx)
}

// Alerts returns admin-published outbreak alerts, newest first.
func (srv *contentService) Alerts(ctx context.Context) ([]*entity.OutbreakAlert, error) {
	return srv.alertRepo.List(ctx)
}
