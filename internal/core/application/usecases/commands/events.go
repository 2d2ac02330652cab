package commands

import (
	"context"
	"log/slog"

	"distribution/internal/core/ports"
)

// publish emits a workflow event after the surrounding transaction has
// committed. Delivery is best-effort: a failure is logged and swallowed, it
// never fails the committed operation.
func publish(ctx context.Context, publisher ports.EventPublisher, name string, payload any) {
	if err := publisher.Publish(ctx, ports.Event{Name: name, Payload: payload}); err != nil {
		slog.WarnContext(ctx, "event publish failed", "event", name, "error", err)
	}
}
