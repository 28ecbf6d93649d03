// Package memory implements an in-process, mutex-guarded store satisfying
// the Generator's, Coordinator's, and Notifier's narrow Repository
// interfaces at once, for tests and for running the full engine without a
// database.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/growplan/engine/internal/coordinator"
	"github.com/growplan/engine/internal/domain"
)

// Store is a single mutex-guarded holding area for every entity the engine
// touches. It satisfies generator.Repository, coordinator.Repository, and
// notifier.Repository simultaneously.
type Store struct {
	mu sync.RWMutex

	gardens       map[string]domain.Garden
	tasks         map[string]domain.Task
	items         map[string]domain.InventoryItem
	notifications []domain.NotificationRecord
	prefs         domain.UserPreferences
}

// New constructs an empty Store with the given default preferences.
func New(prefs domain.UserPreferences) *Store {
	return &Store{
		gardens: map[string]domain.Garden{},
		tasks:   map[string]domain.Task{},
		items:   map[string]domain.InventoryItem{},
		prefs:   prefs,
	}
}

// --- seeding / administration, used by the cmd harnesses and tests ---

func (s *Store) PutGarden(g domain.Garden) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gardens[g.ID] = g
}

func (s *Store) PutInventoryItem(i domain.InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[i.ID] = i
}

func (s *Store) SetPreferences(p domain.UserPreferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p
}

// --- generator.Repository ---

func (s *Store) GetActiveGarden(ctx context.Context, gardenID string) (domain.Garden, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.gardens[gardenID]
	if !ok || !g.IsActive {
		return domain.Garden{}, fmt.Errorf("memory store: garden %s: %w", gardenID, domain.ErrGardenNotFound)
	}
	return g, nil
}

func (s *Store) ListActiveGardens(ctx context.Context) ([]domain.Garden, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Garden
	for _, g := range s.gardens {
		if g.IsActive {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) TaskExistsWithTitle(ctx context.Context, gardenID, title string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.GardenID == gardenID && t.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) MostRecentTaskContainingTitle(ctx context.Context, gardenID, fragment string) (domain.Task, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var best domain.Task
	found := false
	for _, t := range s.tasks {
		if t.GardenID != gardenID || !strings.Contains(t.Title, fragment) {
			continue
		}
		if !found || t.CreatedOn.After(best.CreatedOn) {
			best = t
			found = true
		}
	}
	return best, found, nil
}

func (s *Store) CreateTask(ctx context.Context, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if task.ID == "" {
		return fmt.Errorf("memory store: create task: %w", domain.ErrInvalidID)
	}
	s.tasks[task.ID] = task
	return nil
}

// --- coordinator.Repository ---

func (s *Store) ListPendingInWindow(ctx context.Context, start, end time.Time) ([]coordinator.PendingTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []coordinator.PendingTask
	for _, t := range s.tasks {
		if t.Completed {
			continue
		}
		if t.DueOn.Before(start) || !t.DueOn.Before(end) {
			continue
		}
		garden, ok := s.gardens[t.GardenID]
		if !ok || !garden.IsActive {
			continue
		}
		out = append(out, coordinator.PendingTask{Task: t, GardenLocation: garden.Location})
	}

	sort.Slice(out, func(i, j int) bool {
		ri, rj := out[i].Task.Priority.Rank(), out[j].Task.Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return out[i].Task.DueOn.Before(out[j].Task.DueOn)
	})
	return out, nil
}

// --- notifier.Repository ---

func (s *Store) ListPendingTasksDueWithin(ctx context.Context, from, to time.Time) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Task
	for _, t := range s.tasks {
		if t.Completed {
			continue
		}
		if t.DueOn.After(from) && !t.DueOn.After(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Store) ListOverdueTasks(ctx context.Context, asOf time.Time) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Task
	for _, t := range s.tasks {
		if !t.Completed && t.DueOn.Before(asOf) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Store) UpdateGardenStage(ctx context.Context, gardenID string, stage domain.GrowthStage, stageStartedOn time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gardens[gardenID]
	if !ok {
		return fmt.Errorf("memory store: update stage: garden %s: %w", gardenID, domain.ErrGardenNotFound)
	}
	g.CurrentStage = stage
	g.StageStartedOn = stageStartedOn
	s.gardens[gardenID] = g
	return nil
}

func (s *Store) RecordGrowthMilestone(ctx context.Context, gardenID string, stage domain.GrowthStage, stageStartedOn time.Time, notification domain.NotificationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gardens[gardenID]
	if !ok {
		return fmt.Errorf("memory store: record growth milestone: garden %s: %w", gardenID, domain.ErrGardenNotFound)
	}
	g.CurrentStage = stage
	g.StageStartedOn = stageStartedOn
	s.gardens[gardenID] = g
	s.notifications = append(s.notifications, notification)
	return nil
}

func (s *Store) ListLowStockItems(ctx context.Context) ([]domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.InventoryItem
	for _, i := range s.items {
		if i.IsLowStock() {
			out = append(out, i)
		}
	}
	return out, nil
}

func (s *Store) HasRecentNotification(ctx context.Context, notifType domain.NotificationType, referenceID string, since time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notifications {
		if n.Type != notifType || n.SentOn.Before(since) {
			continue
		}
		if (n.TaskID != nil && *n.TaskID == referenceID) || (n.GardenID != nil && *n.GardenID == referenceID) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreateNotification(ctx context.Context, record domain.NotificationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, record)
	return nil
}

func (s *Store) GetPreferences(ctx context.Context) (domain.UserPreferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs, nil
}
