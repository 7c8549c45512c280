package components

import (
	"context"
	"log/slog"

	"resort-engine/internal/infra/cache"
	"resort-engine/internal/infra/metrics"
	"resort-engine/internal/infra/notify"
	"resort-engine/internal/pkg/config"
	"resort-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewMetrics,
		fx.Annotate(
			func(m *metrics.Metrics) *metrics.Metrics { return m },
			fx.As(new(shared.Metrics)),
		),
		NewQuoteCache,
		NewNotifier,
	),
)

func NewMetrics() *metrics.Metrics {
	return metrics.New("resort")
}

// NewQuoteCache falls back to no caching when REDIS_ADDR is empty.
func NewQuoteCache(lc fx.Lifecycle, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) (shared.QuoteCache, error) {
	if !cfg.Redis.Enabled() {
		logger.Info("quote cache disabled")
		return shared.NopQuoteCache{}, nil
	}

	client, err := cache.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("quote cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.QuoteTTL)
	return m.InstrumentQuoteCache(cache.NewQuoteCache(client, cfg.Redis.QuoteTTL, logger)), nil
}

// NewNotifier publishes to RabbitMQ when AMQP_URL is set and logs otherwise.
// Delivery is asynchronous in both cases.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Notifier, error) {
	var sink notify.Sink = notify.NewLogSink(logger)
	var closeSink func() error

	if cfg.Broker.Enabled() {
		amqpSink, err := notify.DialAMQP(cfg.Broker)
		if err != nil {
			return nil, err
		}
		sink, closeSink = amqpSink, amqpSink.Close
	}

	d := notify.NewDispatcher(sink, cfg.Broker.Workers, cfg.Broker.QueueSize, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := d.Stop(ctx)
			if closeSink != nil {
				if cerr := closeSink(); cerr != nil && err == nil {
					err = cerr
				}
			}
			return err
		},
	})
	return d, nil
}
