package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Codinho_Go/internal/event"
	"github.com/osse101/Codinho_Go/internal/metrics"
)

// InitializeEventSystem creates the event bus and subscribes the metrics collector to it
func InitializeEventSystem() (event.Bus, error) {
	eventBus := event.NewMemoryBus()

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(eventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	slog.Info(LogMsgEventSystemInitialized)
	return eventBus, nil
}
