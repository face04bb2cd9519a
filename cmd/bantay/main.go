package main

import (
	"context"
	"log/slog"
	"os"

	"bantay/config"
	"bantay/internal/delivery"
	"bantay/internal/delivery/http"
	"bantay/internal/delivery/http/middleware"
	"bantay/internal/delivery/http/router/handler"
	"bantay/internal/domain/service"
	"bantay/internal/infra/export"
	logs "bantay/internal/infra/log"
	"bantay/internal/infra/persistence/postgres"
	"bantay/internal/infra/phone"
	"bantay/internal/infra/qrcode"
	"bantay/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTindahanRepository,
			postgres.NewInspectionRepository,
			postgres.NewViolationRepository,
			postgres.NewReportRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPhoneValidator,
			newQRCodeService,
			export.NewExcelExporter,
		),
	)
}

// newPhoneValidator creates the contact number validator from config
func newPhoneValidator(cfg *config.Config) service.PhoneValidator {
	return phone.NewPhoneValidator(cfg.Phone.Region)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTindahanService,
			impl.NewInspectionService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTindahanHandler,
			handler.NewInspectionHandler,
			handler.NewReportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
