package coordinator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growplan/engine/internal/domain"
)

type fakeRepo struct {
	tasks []PendingTask
	err   error
}

func (f *fakeRepo) ListPendingInWindow(ctx context.Context, start, end time.Time) ([]PendingTask, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []PendingTask
	for _, t := range f.tasks {
		if !t.Task.DueOn.Before(start) && t.Task.DueOn.Before(end) {
			out = append(out, t)
		}
	}
	return out, nil
}

func feedingTask(id, gardenID string, due time.Time, priority domain.TaskPriority) domain.Task {
	return domain.Task{
		ID:                id,
		GardenID:          gardenID,
		Title:             "Feed " + id,
		Type:              domain.TaskFeeding,
		Priority:          priority,
		DueOn:             due,
		EstimatedDuration: 30 * time.Minute,
	}
}

func TestCoordinate_BatchesCompatibleFeedingTasks(t *testing.T) {
	day := time.Date(2026, 7, 31, 0, 0, 0, 0, time.Local)
	base := time.Date(2026, 7, 31, 9, 0, 0, 0, time.Local)

	repo := &fakeRepo{tasks: []PendingTask{
		{Task: feedingTask("t1", "g1", base, domain.PriorityHigh)},
		{Task: feedingTask("t2", "g1", base.Add(30 * time.Minute), domain.PriorityHigh)},
		{Task: feedingTask("t3", "g2", base.Add(60 * time.Minute), domain.PriorityHigh)},
	}}

	c := New(repo, nil)
	result, err := c.Coordinate(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, result.Batches, 1)

	batch := result.Batches[0]
	assert.Len(t, batch.Tasks, 3)
	assert.GreaterOrEqual(t, batch.Efficiency, 85.0)
	assert.Equal(t, base, batch.OptimalStart)

	want := map[domain.ResourceTag]bool{
		domain.ResourceNutrients: true, domain.ResourceWater: true,
		domain.ResourceEquipment: true, domain.ResourceTime: true,
	}
	got := map[domain.ResourceTag]bool{}
	for _, tag := range batch.SharedResources {
		got[tag] = true
	}
	for tag := range want {
		assert.True(t, got[tag], "missing shared resource %s", tag)
	}
}

func TestCoordinate_ResourceConflictShiftsLowerPriorityTask(t *testing.T) {
	day := time.Date(2026, 7, 31, 0, 0, 0, 0, time.Local)
	due := time.Date(2026, 7, 31, 9, 0, 0, 0, time.Local)

	repo := &fakeRepo{tasks: []PendingTask{
		{Task: feedingTask("high", "g1", due, domain.PriorityHigh)},
		{Task: feedingTask("low", "g2", due, domain.PriorityLow)},
	}}

	c := New(repo, nil)
	result, err := c.Coordinate(context.Background(), day)
	require.NoError(t, err)

	var lowTask, highTask domain.Task
	for _, b := range result.Batches {
		for _, task := range b.Tasks {
			switch task.ID {
			case "low":
				lowTask = task
			case "high":
				highTask = task
			}
		}
	}

	require.NotZero(t, highTask.DueOn)
	assert.Equal(t, due, highTask.DueOn)
	assert.Equal(t, due.Add(30*time.Minute), lowTask.DueOn)
	assert.False(t, lowTask.DueOn.Before(highTask.EndsAt()))
}

func TestCoordinate_EmptyWindow_ReturnsZeroResult(t *testing.T) {
	repo := &fakeRepo{}
	c := New(repo, nil)

	result, err := c.Coordinate(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, result.Batches)
	assert.Zero(t, result.Efficiency)
}

func TestCoordinate_AllBatchTasksDueWithinWindow(t *testing.T) {
	day := time.Date(2026, 7, 31, 0, 0, 0, 0, time.Local)
	windowStart := day
	windowEnd := day.Add(24 * time.Hour)

	repo := &fakeRepo{tasks: []PendingTask{
		{Task: feedingTask("t1", "g1", day.Add(9*time.Hour), domain.PriorityMedium)},
		{Task: feedingTask("t2", "g2", day.Add(15*time.Hour), domain.PriorityMedium)},
	}}

	c := New(repo, nil)
	result, err := c.Coordinate(context.Background(), day)
	require.NoError(t, err)

	for _, b := range result.Batches {
		for _, task := range b.Tasks {
			assert.False(t, task.DueOn.Before(windowStart))
			assert.True(t, task.DueOn.Before(windowEnd))
		}
	}
}
