package coordinator

import (
	"context"
	"time"

	"github.com/growplan/engine/internal/domain"
)

// PendingTask is one pending task joined with its owning garden's location,
// the shape the Coordinator's fetch step needs (step 1).
type PendingTask struct {
	Task           domain.Task
	GardenLocation *string
}

// Repository is the slice of storage the Daily Coordinator depends on.
type Repository interface {
	// ListPendingInWindow returns every incomplete task belonging to an
	// active garden whose DueOn falls in [start, end), ordered by priority
	// descending then DueOn ascending.
	ListPendingInWindow(ctx context.Context, start, end time.Time) ([]PendingTask, error)
}
