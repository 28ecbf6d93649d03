// Package storecompliance runs one behavioral contract against any store
// implementation backing the Generator, Coordinator, and Notifier, so the
// in-memory and Postgres-backed stores can be verified against identical
// expectations.
package storecompliance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growplan/engine/internal/coordinator"
	"github.com/growplan/engine/internal/domain"
	"github.com/growplan/engine/internal/generator"
	"github.com/growplan/engine/internal/notifier"
)

// Store is the union every backing implementation must satisfy, plus the
// seed helpers this suite needs to set up fixtures without going through
// the narrow Repository interfaces (which are write-restricted by design).
type Store interface {
	generator.Repository
	coordinator.Repository
	notifier.Repository

	PutGarden(domain.Garden)
	PutInventoryItem(domain.InventoryItem)
	SetPreferences(domain.UserPreferences)
}

// Run exercises Store against a standard set of scenarios. setup returns a
// fresh, empty store for each subtest.
func Run(t *testing.T, setup func() Store) {
	t.Run("CreateAndFetchActiveGarden", func(t *testing.T) {
		store := setup()
		ctx := context.Background()

		garden := domain.Garden{ID: uuid.New().String(), Name: "Tent 1", GrowingMethod: domain.MethodHydroponic, IsActive: true}
		store.PutGarden(garden)

		fetched, err := store.GetActiveGarden(ctx, garden.ID)
		require.NoError(t, err)
		assert.Equal(t, garden.Name, fetched.Name)
	})

	t.Run("GetActiveGarden_InactiveOrMissing_ReturnsNotFound", func(t *testing.T) {
		store := setup()
		ctx := context.Background()

		_, err := store.GetActiveGarden(ctx, "does-not-exist")
		assert.Error(t, err)

		inactive := domain.Garden{ID: uuid.New().String(), Name: "Tent 2", IsActive: false}
		store.PutGarden(inactive)
		_, err = store.GetActiveGarden(ctx, inactive.ID)
		assert.Error(t, err)
	})

	t.Run("CreateTask_ThenTaskExistsWithTitle", func(t *testing.T) {
		store := setup()
		ctx := context.Background()

		garden := domain.Garden{ID: uuid.New().String(), IsActive: true}
		store.PutGarden(garden)

		task := domain.Task{ID: uuid.New().String(), GardenID: garden.ID, Title: "Inspect roots", CreatedOn: time.Now(), DueOn: time.Now().Add(24 * time.Hour)}
		require.NoError(t, store.CreateTask(ctx, task))

		exists, err := store.TaskExistsWithTitle(ctx, garden.ID, "Inspect roots")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = store.TaskExistsWithTitle(ctx, garden.ID, "Nonexistent task")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("MostRecentTaskContainingTitle_PicksNewest", func(t *testing.T) {
		store := setup()
		ctx := context.Background()

		garden := domain.Garden{ID: uuid.New().String(), IsActive: true}
		store.PutGarden(garden)

		older := domain.Task{ID: uuid.New().String(), GardenID: garden.ID, Title: "Weekly Feed", CreatedOn: time.Now().Add(-48 * time.Hour)}
		newer := domain.Task{ID: uuid.New().String(), GardenID: garden.ID, Title: "Weekly Feed", CreatedOn: time.Now().Add(-1 * time.Hour)}
		require.NoError(t, store.CreateTask(ctx, older))
		require.NoError(t, store.CreateTask(ctx, newer))

		found, ok, err := store.MostRecentTaskContainingTitle(ctx, garden.ID, "Weekly Feed")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, newer.ID, found.ID)
	})

	t.Run("ListPendingInWindow_ExcludesCompletedAndOutOfWindow", func(t *testing.T) {
		store := setup()
		ctx := context.Background()

		garden := domain.Garden{ID: uuid.New().String(), IsActive: true}
		store.PutGarden(garden)

		now := time.Now()
		inWindow := domain.Task{ID: uuid.New().String(), GardenID: garden.ID, DueOn: now.Add(2 * time.Hour)}
		completed := domain.Task{ID: uuid.New().String(), GardenID: garden.ID, DueOn: now.Add(3 * time.Hour), Completed: true}
		outOfWindow := domain.Task{ID: uuid.New().String(), GardenID: garden.ID, DueOn: now.Add(48 * time.Hour)}

		for _, task := range []domain.Task{inWindow, completed, outOfWindow} {
			require.NoError(t, store.CreateTask(ctx, task))
		}

		pending, err := store.ListPendingInWindow(ctx, now, now.Add(24*time.Hour))
		require.NoError(t, err)

		ids := map[string]bool{}
		for _, p := range pending {
			ids[p.Task.ID] = true
		}
		assert.True(t, ids[inWindow.ID])
		assert.False(t, ids[completed.ID])
		assert.False(t, ids[outOfWindow.ID])
	})

	t.Run("UpdateGardenStage_PersistsAcrossReads", func(t *testing.T) {
		store := setup()
		ctx := context.Background()

		garden := domain.Garden{ID: uuid.New().String(), IsActive: true, CurrentStage: domain.StageGermination}
		store.PutGarden(garden)

		require.NoError(t, store.UpdateGardenStage(ctx, garden.ID, domain.StageSeedling, time.Now()))

		gardens, err := store.ListActiveGardens(ctx)
		require.NoError(t, err)
		require.Len(t, gardens, 1)
		assert.Equal(t, domain.StageSeedling, gardens[0].CurrentStage)
	})

	t.Run("RecordGrowthMilestone_PersistsStageAndNotificationTogether", func(t *testing.T) {
		store := setup()
		ctx := context.Background()

		garden := domain.Garden{ID: uuid.New().String(), IsActive: true, CurrentStage: domain.StageGermination}
		store.PutGarden(garden)

		gardenID := garden.ID
		notification := domain.NotificationRecord{
			ID: uuid.New().String(), Type: domain.NotificationGrowthMilestone,
			Title: "Growth stage advanced", Body: "moved to seedling", Priority: domain.PriorityMedium,
			GardenID: &gardenID, SentOn: time.Now(),
		}
		require.NoError(t, store.RecordGrowthMilestone(ctx, garden.ID, domain.StageSeedling, time.Now(), notification))

		gardens, err := store.ListActiveGardens(ctx)
		require.NoError(t, err)
		require.Len(t, gardens, 1)
		assert.Equal(t, domain.StageSeedling, gardens[0].CurrentStage)

		recent, err := store.HasRecentNotification(ctx, domain.NotificationGrowthMilestone, garden.ID, time.Now().Add(-time.Minute))
		require.NoError(t, err)
		assert.True(t, recent)
	})

	t.Run("LowStockItems_FiltersByThreshold", func(t *testing.T) {
		store := setup()
		ctx := context.Background()

		store.PutInventoryItem(domain.InventoryItem{ID: uuid.New().String(), Name: "Low", CurrentQuantity: 1, MinimumThreshold: 10})
		store.PutInventoryItem(domain.InventoryItem{ID: uuid.New().String(), Name: "Plenty", CurrentQuantity: 50, MinimumThreshold: 10})

		items, err := store.ListLowStockItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Low", items[0].Name)
	})

	t.Run("NotificationDedupe_HonorsSinceWindow", func(t *testing.T) {
		store := setup()
		ctx := context.Background()

		taskID := uuid.New().String()
		require.NoError(t, store.CreateNotification(ctx, domain.NotificationRecord{
			ID: uuid.New().String(), Type: domain.NotificationTaskReminder, TaskID: &taskID, SentOn: time.Now(),
		}))

		recent, err := store.HasRecentNotification(ctx, domain.NotificationTaskReminder, taskID, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.True(t, recent)

		recent, err = store.HasRecentNotification(ctx, domain.NotificationTaskReminder, taskID, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, recent)
	})

	t.Run("Preferences_RoundTrip", func(t *testing.T) {
		store := setup()
		ctx := context.Background()

		prefs := domain.UserPreferences{Enabled: true, ReminderLeadMinutes: 45, QuietHoursStart: 22, QuietHoursEnd: 7}
		store.SetPreferences(prefs)

		got, err := store.GetPreferences(ctx)
		require.NoError(t, err)
		assert.Equal(t, prefs, got)
	})
}
