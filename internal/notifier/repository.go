package notifier

import (
	"context"
	"time"

	"github.com/growplan/engine/internal/domain"
)

// Repository is the slice of storage the Notifier depends on.
type Repository interface {
	// ListPendingTasksDueWithin returns incomplete tasks whose DueOn falls
	// in (from, to].
	ListPendingTasksDueWithin(ctx context.Context, from, to time.Time) ([]domain.Task, error)

	// ListOverdueTasks returns incomplete tasks whose DueOn is before asOf.
	ListOverdueTasks(ctx context.Context, asOf time.Time) ([]domain.Task, error)

	// ListActiveGardens returns every garden with IsActive set.
	ListActiveGardens(ctx context.Context) ([]domain.Garden, error)

	// UpdateGardenStage atomically sets a garden's current stage and
	// stage-started timestamp.
	UpdateGardenStage(ctx context.Context, gardenID string, stage domain.GrowthStage, stageStartedOn time.Time) error

	// RecordGrowthMilestone atomically updates a garden's stage and
	// persists the accompanying milestone notification record as one
	// indivisible write. Used instead of UpdateGardenStage followed by a
	// separate CreateNotification, so a crash or store failure between the
	// two can never leave a stage change visible to future scans without
	// its notification record: the scan's mismatch check (expected vs.
	// current stage) would otherwise never fire again for that garden.
	RecordGrowthMilestone(ctx context.Context, gardenID string, stage domain.GrowthStage, stageStartedOn time.Time, notification domain.NotificationRecord) error

	// ListLowStockItems returns inventory items with 0 < current <= threshold.
	ListLowStockItems(ctx context.Context) ([]domain.InventoryItem, error)

	// HasRecentNotification reports whether a notification of notifType
	// whose task reference or garden reference equals referenceID was
	// recorded at or after since.
	HasRecentNotification(ctx context.Context, notifType domain.NotificationType, referenceID string, since time.Time) (bool, error)

	// CreateNotification persists a notification record. Must complete
	// before the next scan cycle begins, so de-duplication windows stay
	// accurate.
	CreateNotification(ctx context.Context, record domain.NotificationRecord) error

	// GetPreferences returns the current user preferences, re-read on
	// every cycle (no caching) so settings changes take effect within one
	// cycle.
	GetPreferences(ctx context.Context) (domain.UserPreferences, error)
}
