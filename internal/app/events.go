package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/portfolio-service/internal/domain"
	"github.com/jsamuelsen/portfolio-service/internal/ports"
)

// publish sends a change notification. Delivery is best effort: views refresh
// on the next read anyway, so failures are logged and dropped.
func publish(ctx context.Context, events ports.EventPublisher, logger *slog.Logger, change domain.Change) {
	if events == nil {
		return
	}

	if err := events.Publish(ctx, change); err != nil {
		logger.DebugContext(ctx, "change not published",
			slog.String("event", change.EventType()),
			slog.Any("error", err),
		)
	}
}
