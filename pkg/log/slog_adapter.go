package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes journal events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event as one slog record.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("hub", event.Hub),
		slog.String("actor", event.Actor.String()),
		slog.String("category", event.Category.String()),
	}

	if event.UserID != "" {
		attrs = append(attrs, slog.String("user_id", event.UserID))
	}

	switch {
	case event.Catalog != nil:
		attrs = append(attrs,
			slog.Int("index", event.Catalog.Index),
			slog.String("command", event.Catalog.Name),
			slog.String("kind", event.Catalog.Kind),
		)
	case event.Subscription != nil:
		attrs = append(attrs,
			slog.String("action", event.Subscription.Action.String()),
			slog.Int("observers", event.Subscription.Observers),
		)
	case event.Delivery != nil:
		attrs = append(attrs, slog.Int("size", event.Delivery.Size))
		if event.Delivery.Observers > 0 {
			attrs = append(attrs, slog.Int("observers", event.Delivery.Observers))
		}
	case event.Execution != nil:
		attrs = append(attrs,
			slog.Int("index", event.Execution.Index),
			slog.String("command", event.Execution.Name),
			slog.String("kind", event.Execution.Kind),
			slog.Duration("duration", event.Execution.Duration),
		)
		if event.Execution.Output != "" {
			attrs = append(attrs, slog.String("output", event.Execution.Output))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
		if event.Error.Index != nil {
			attrs = append(attrs, slog.Int("index", *event.Error.Index))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "journal", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
