package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/portfolio-service/internal/platform/logging"
)

// withFallback is the one fallback policy every todo operation uses: try the
// remote API; on any failure log it, count it, degrade the session to offline
// and run the local equivalent against the mirror instead.
func withFallback[T any](
	ctx context.Context,
	s *TodoService,
	operation string,
	remote func(context.Context) (T, error),
	local func(context.Context) (T, error),
) (T, error) {
	v, err := remote(ctx)
	if err == nil {
		return v, nil
	}

	logging.FromContextOr(ctx, s.logger).WarnContext(ctx, "todo api call failed, using local mirror",
		slog.String("operation", operation),
		slog.Any("error", err),
	)

	s.onFallback(operation)
	s.session.setMode(ModeOffline)

	return local(ctx)
}
