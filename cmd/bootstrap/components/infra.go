package components

import (
	"log/slog"

	"payref-console/internal/domain/notification"
	"payref-console/internal/infra/bus"
	"payref-console/internal/infra/cache"
	"payref-console/internal/infra/gateway"
	"payref-console/internal/infra/repository"
	"payref-console/internal/infra/storage"
	"payref-console/internal/pkg/clock"
	"payref-console/internal/pkg/config"
	"payref-console/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			bus.NewNotificationBus,
			fx.As(new(shared.NotificationCenter)),
			fx.As(new(bus.Publisher)),
		),
		fx.Annotate(
			NewPaymentCache,
			fx.As(new(shared.DetailCache)),
		),
		fx.Annotate(
			NewGatewayClient,
			fx.As(new(shared.PaymentGateway)),
		),
		fx.Annotate(
			repository.NewPaymentsRepository,
			fx.As(new(shared.PaymentsRepository)),
		),
	),
	fx.Invoke(subscribeToastLogger),
)

func NewPaymentCache(cfg config.Config, clk clock.Clock) *cache.PaymentCache {
	return cache.NewPaymentCache(cfg.Cache.TTL, clk)
}

func NewGatewayClient(cfg config.Config, store *storage.Store, clk clock.Clock, publisher bus.Publisher) *gateway.Client {
	return gateway.NewClient(cfg.Gateway, store, clk, publisher)
}

// subscribeToastLogger surfaces every published event immediately, at a log
// level matching its severity.
func subscribeToastLogger(center shared.NotificationCenter) {
	b, ok := center.(*bus.NotificationBus)
	if !ok {
		return
	}
	b.Subscribe(func(evt notification.Event) {
		switch evt.Severity {
		case notification.SeverityWarning:
			slog.Warn(evt.Message, "reference_id", evt.ReferenceID, "status", evt.Status.String())
		default:
			slog.Info(evt.Message, "reference_id", evt.ReferenceID, "status", evt.Status.String())
		}
	})
}
