package main

import (
	"context"
	"log/slog"
	"os"

	"phonebook/config"
	"phonebook/internal/delivery"
	"phonebook/internal/delivery/http"
	"phonebook/internal/delivery/http/middleware"
	"phonebook/internal/delivery/http/router/handler"
	"phonebook/internal/infra/auth"
	"phonebook/internal/infra/identifier"
	logs "phonebook/internal/infra/log"
	"phonebook/internal/infra/metrics"
	"phonebook/internal/infra/persistence/postgres"
	"phonebook/internal/infra/pubsub"
	"phonebook/internal/infra/qrcode"
	"phonebook/internal/usecase"
	"phonebook/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.NewRegistry,
			newRegisterer,
			metrics.New,
			metrics.NewRecorder,
		),
		pubsub.Module,
	)
}

// newRegisterer exposes the application registry to metric constructors.
func newRegisterer(registry *prometheus.Registry) prometheus.Registerer {
	return registry
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			identifier.NewCodec,
			qrcode.NewQRCodeServiceFromConfig,
			usecase.NewValidator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEntryService,
			impl.NewSearchService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEntryHandler,
			handler.NewSearchHandler,
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
