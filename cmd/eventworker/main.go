package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"storehub/config"
	"storehub/internal/delivery"
	"storehub/internal/delivery/worker"
	"storehub/internal/delivery/worker/handler"
	"storehub/internal/domain/service"
	logs "storehub/internal/infra/log"
	"storehub/internal/infra/notification"

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
		newPushSender,
	)
}

// newPushSender creates a Firebase push sender with dependency injection
func newPushSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Notify == nil || !cfg.Notify.Enabled || cfg.Firestore == nil {
		return nil, nil // Push notifications are optional
	}

	sender, err := notification.NewFirebaseSender(ctx, cfg.Firestore.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase sender: %w", err)
	}

	return sender, nil
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
