package generator

import (
	"context"

	"github.com/growplan/engine/internal/domain"
)

// Repository is the slice of storage the Task Generator depends on. It owns
// this interface (Interface Segregation): the Coordinator and Notifier each
// declare their own narrower view of the same underlying store.
type Repository interface {
	// GetActiveGarden returns the garden with id, provided it is active.
	// Returns an error wrapping domain.ErrGardenNotFound if it does not
	// exist or is inactive.
	GetActiveGarden(ctx context.Context, gardenID string) (domain.Garden, error)

	// ListActiveGardens returns every garden with IsActive set.
	ListActiveGardens(ctx context.Context) ([]domain.Garden, error)

	// TaskExistsWithTitle reports whether a task with the exact title
	// already exists for gardenID, regardless of age. Backs the
	// frequency==0 (one-shot) eligibility rule.
	TaskExistsWithTitle(ctx context.Context, gardenID, title string) (bool, error)

	// MostRecentTaskContainingTitle returns the most recently created task
	// for gardenID whose title contains fragment, or ok=false if none
	// exists. Backs the frequency>0 eligibility rule.
	MostRecentTaskContainingTitle(ctx context.Context, gardenID, fragment string) (task domain.Task, ok bool, err error)

	// CreateTask persists a newly synthesised task.
	CreateTask(ctx context.Context, task domain.Task) error
}
