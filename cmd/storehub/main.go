package main

import (
	"context"
	"log/slog"
	"os"

	"storehub/config"
	"storehub/internal/binding"
	"storehub/internal/delivery"
	"storehub/internal/delivery/http"
	"storehub/internal/delivery/http/middleware"
	"storehub/internal/delivery/http/router/handler"
	"storehub/internal/delivery/worker"
	"storehub/internal/domain/service"
	"storehub/internal/infra/firestore"
	logs "storehub/internal/infra/log"
	"storehub/internal/infra/pubsub"
	"storehub/internal/infra/qrcode"
	"storehub/internal/usecase/impl"

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
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
		firestore.NewChannel,
		pubsub.NewEventPublisher,
		binding.NewManager,
		newQRCodeService,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSaleService,
			impl.NewCatalogService,
			impl.NewStaffService,
			impl.NewCustomerService,
			impl.NewReservationService,
			impl.NewScheduleService,
			impl.NewProvisionService,
			impl.NewDashboardService,
			impl.NewAlertService,
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
			handler.NewSaleHandler,
			handler.NewProvisionHandler,
			handler.NewCatalogHandler,
			handler.NewStaffHandler,
			handler.NewScheduleHandler,
			handler.NewCustomerHandler,
			handler.NewReservationHandler,
			handler.NewDashboardHandler,
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
			fx.Annotate(
				worker.NewReminderWorker,
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
