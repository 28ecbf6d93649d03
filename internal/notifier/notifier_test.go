package notifier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growplan/engine/internal/domain"
)

// fakeRepo is a minimal in-memory Repository double, local to this test
// file so notifier tests do not depend on the store/memory package.
type fakeRepo struct {
	mu            sync.Mutex
	tasks         []domain.Task
	gardens       map[string]domain.Garden
	items         []domain.InventoryItem
	notifications []domain.NotificationRecord
	prefs         domain.UserPreferences
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		gardens: map[string]domain.Garden{},
		prefs: domain.UserPreferences{
			Enabled:             true,
			RemindersEnabled:    true,
			OverdueEnabled:      true,
			GrowthEnabled:       true,
			ResourceEnabled:     true,
			SystemEnabled:       true,
			ReminderLeadMinutes: 60,
			QuietHoursStart:     22,
			QuietHoursEnd:       7,
		},
	}
}

func (f *fakeRepo) ListPendingTasksDueWithin(ctx context.Context, from, to time.Time) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Task
	for _, t := range f.tasks {
		if t.Completed {
			continue
		}
		if t.DueOn.After(from) && !t.DueOn.After(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListOverdueTasks(ctx context.Context, asOf time.Time) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Task
	for _, t := range f.tasks {
		if !t.Completed && t.DueOn.Before(asOf) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActiveGardens(ctx context.Context) ([]domain.Garden, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Garden
	for _, g := range f.gardens {
		if g.IsActive {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateGardenStage(ctx context.Context, gardenID string, stage domain.GrowthStage, stageStartedOn time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.gardens[gardenID]
	if !ok {
		return domain.ErrGardenNotFound
	}
	g.CurrentStage = stage
	g.StageStartedOn = stageStartedOn
	f.gardens[gardenID] = g
	return nil
}

func (f *fakeRepo) RecordGrowthMilestone(ctx context.Context, gardenID string, stage domain.GrowthStage, stageStartedOn time.Time, notification domain.NotificationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.gardens[gardenID]
	if !ok {
		return domain.ErrGardenNotFound
	}
	g.CurrentStage = stage
	g.StageStartedOn = stageStartedOn
	f.gardens[gardenID] = g
	f.notifications = append(f.notifications, notification)
	return nil
}

func (f *fakeRepo) ListLowStockItems(ctx context.Context) ([]domain.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.InventoryItem
	for _, i := range f.items {
		if i.IsLowStock() {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeRepo) HasRecentNotification(ctx context.Context, notifType domain.NotificationType, referenceID string, since time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.notifications {
		if n.Type != notifType {
			continue
		}
		if n.TaskID != nil && *n.TaskID == referenceID && !n.SentOn.Before(since) {
			return true, nil
		}
		if n.GardenID != nil && *n.GardenID == referenceID && !n.SentOn.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateNotification(ctx context.Context, record domain.NotificationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, record)
	return nil
}

func (f *fakeRepo) GetPreferences(ctx context.Context) (domain.UserPreferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prefs, nil
}

func seedlingStageGarden(id string, plantedDaysAgo int) domain.Garden {
	return domain.Garden{
		ID:            id,
		Name:          "Tent 1",
		GrowingMethod: domain.MethodHydroponic,
		PlantedOn:     time.Now().AddDate(0, 0, -plantedDaysAgo),
		CurrentStage:  domain.StageGermination,
		IsActive:      true,
	}
}

func TestRunCycleOnce_GrowthMilestone_AdvancesStageAndNotifies(t *testing.T) {
	repo := newFakeRepo()
	garden := seedlingStageGarden("g1", 20) // well past germination threshold
	repo.gardens[garden.ID] = garden

	w := New(repo, nil)
	err := w.RunCycleOnce(context.Background())
	require.NoError(t, err)

	updated := repo.gardens["g1"]
	assert.NotEqual(t, domain.StageGermination, updated.CurrentStage)
	assert.Equal(t, updated.CurrentStage, updated.ExpectedStage(time.Now()))

	var foundMilestone bool
	for _, n := range repo.notifications {
		if n.Type == domain.NotificationGrowthMilestone {
			foundMilestone = true
		}
	}
	assert.True(t, foundMilestone)
}

func TestRunCycleOnce_OverdueTask_EscalatesPriorityWithLateness(t *testing.T) {
	repo := newFakeRepo()
	now := time.Now()
	repo.tasks = append(repo.tasks,
		domain.Task{ID: "barely-late", GardenID: "g1", Title: "Water", DueOn: now.Add(-1 * time.Hour)},
		domain.Task{ID: "very-late", GardenID: "g1", Title: "Feed", DueOn: now.Add(-13 * time.Hour)},
	)

	w := New(repo, nil)
	err := w.RunCycleOnce(context.Background())
	require.NoError(t, err)

	priorities := map[string]domain.TaskPriority{}
	for _, n := range repo.notifications {
		if n.Type == domain.NotificationTaskOverdue && n.TaskID != nil {
			priorities[*n.TaskID] = n.Priority
		}
	}
	require.Contains(t, priorities, "barely-late")
	require.Contains(t, priorities, "very-late")
	assert.Equal(t, domain.PriorityMedium, priorities["barely-late"])
	assert.Equal(t, domain.PriorityCritical, priorities["very-late"])
}

func TestRunCycleOnce_OverdueTask_DeduplicatesWithinWindow(t *testing.T) {
	repo := newFakeRepo()
	now := time.Now()
	taskID := "late"
	repo.tasks = append(repo.tasks, domain.Task{ID: taskID, GardenID: "g1", Title: "Water", DueOn: now.Add(-1 * time.Hour)})
	repo.notifications = append(repo.notifications, domain.NotificationRecord{
		Type:   domain.NotificationTaskOverdue,
		TaskID: &taskID,
		SentOn: now.Add(-1 * time.Hour),
	})

	w := New(repo, nil)
	err := w.RunCycleOnce(context.Background())
	require.NoError(t, err)

	var count int
	for _, n := range repo.notifications {
		if n.Type == domain.NotificationTaskOverdue && n.TaskID != nil && *n.TaskID == taskID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRunCycleOnce_LowStockItem_ProducesResourceAlert(t *testing.T) {
	repo := newFakeRepo()
	repo.items = append(repo.items, domain.InventoryItem{
		ID: "nutrients-a", Name: "Grow Nutrients A", CurrentQuantity: 2, MinimumThreshold: 10,
	})

	w := New(repo, nil)
	err := w.RunCycleOnce(context.Background())
	require.NoError(t, err)

	var found bool
	for _, n := range repo.notifications {
		if n.Type == domain.NotificationResourceAlert {
			found = true
			assert.Equal(t, domain.PriorityHigh, n.Priority)
		}
	}
	assert.True(t, found)
}

func TestRunCycleOnce_DisabledPreferences_SuppressesAllScans(t *testing.T) {
	repo := newFakeRepo()
	repo.prefs.Enabled = false
	repo.items = append(repo.items, domain.InventoryItem{
		ID: "x", Name: "Low Item", CurrentQuantity: 1, MinimumThreshold: 10,
	})

	w := New(repo, nil)
	err := w.RunCycleOnce(context.Background())
	require.NoError(t, err)
	assert.Empty(t, repo.notifications)
}

func TestQuietHours_WrappingBoundary_MatchesWorkedExample(t *testing.T) {
	prefs := domain.UserPreferences{QuietHoursStart: 22, QuietHoursEnd: 7}
	assert.True(t, prefs.InQuietHours(22))
	assert.True(t, prefs.InQuietHours(6))
	assert.False(t, prefs.InQuietHours(7))
}

func TestDeliveryQueue_DelaysNonCriticalDuringQuietHoursAndDeliversLater(t *testing.T) {
	prefs := domain.UserPreferences{QuietHoursStart: 22, QuietHoursEnd: 7}
	q := newDeliveryQueue()
	q.enqueue([]candidate{
		{Type: domain.NotificationTaskReminder, Priority: domain.PriorityLow},
		{Type: domain.NotificationTaskOverdue, Priority: domain.PriorityCritical},
	})

	sent := q.drain(prefs, 23) // deep in quiet hours
	require.Len(t, sent, 1)
	assert.Equal(t, domain.PriorityCritical, sent[0].Priority)
	assert.Equal(t, 1, q.len())

	sent = q.drain(prefs, 9) // outside quiet hours
	require.Len(t, sent, 1)
	assert.Equal(t, domain.PriorityLow, sent[0].Priority)
	assert.Equal(t, 0, q.len())
}

func TestSendManual_PersistsRecordEvenWhenTransportFails(t *testing.T) {
	repo := newFakeRepo()
	w := New(repo, nil, WithTransport(failingTransport{}))

	err := w.SendManual(context.Background(), "Heads up", "manual message", domain.PriorityMedium)
	require.NoError(t, err)
	require.Len(t, repo.notifications, 1)
	assert.Equal(t, domain.NotificationSystemAlert, repo.notifications[0].Type)
}

type failingTransport struct{}

func (failingTransport) Show(ctx context.Context, title, body string, durationClassSeconds int) error {
	return assert.AnError
}
