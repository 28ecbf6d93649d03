package notifier

import (
	"context"
	"log/slog"

	"github.com/growplan/engine/internal/domain"
)

// durationClassSeconds maps a notification's priority to the on-screen
// duration class the transport contract specifies.
func durationClassSeconds(p domain.TaskPriority) int {
	switch p {
	case domain.PriorityCritical:
		return 20
	case domain.PriorityHigh:
		return 15
	case domain.PriorityMedium:
		return 10
	default:
		return 5
	}
}

// Transport is the platform-abstract delivery surface: show(title, body,
// durationClass). The core does not depend on delivery confirmation.
type Transport interface {
	Show(ctx context.Context, title, body string, durationClassSeconds int) error
}

// SlogTransport is the logger-fallback Transport, used directly in tests
// and as the fallback path when a richer transport fails (§4.4 failure
// semantics: fall back to minimal logger delivery, still persist the
// record).
type SlogTransport struct {
	Log *slog.Logger
}

// NewSlogTransport constructs a SlogTransport. log may be nil, in which
// case slog.Default() is used.
func NewSlogTransport(log *slog.Logger) *SlogTransport {
	if log == nil {
		log = slog.Default()
	}
	return &SlogTransport{Log: log}
}

func (t *SlogTransport) Show(ctx context.Context, title, body string, durationClass int) error {
	t.Log.InfoContext(ctx, "notification", "title", title, "body", body, "duration_class_seconds", durationClass)
	return nil
}
