// Package coordinator implements the Daily Coordinator: for a target date,
// it pulls all pending tasks, analyses resource requirements, detects and
// resolves conflicts, batches compatible tasks, orders batches, and reports
// sharing opportunities and utilisation. It is pure with respect to the
// store at invocation time: it never mutates tasks.
package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/growplan/engine/internal/domain"
	"github.com/growplan/engine/internal/engineerrors"
)

// Resource capacity constants, preserved as documented-but-unsourced
// figures from the original resource_inventory (see DESIGN.md): a grower's
// assumed daily time budget and per-resource ceilings.
const (
	DailyCapacityMinutes = 480
	NutrientsCapacity     = 100 // litres
	WaterCapacity         = 500 // litres
	EquipmentCapacity     = 10  // units
)

// Coordinator produces a daily execution plan from a store snapshot. It
// holds no mutable state across calls and is safe to call concurrently for
// different dates.
type Coordinator struct {
	repo Repository
	log  *slog.Logger
}

// New constructs a Coordinator backed by repo.
func New(repo Repository, log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	return &Coordinator{repo: repo, log: log}
}

// Coordinate runs the full nine-step pipeline for date's [date, date+1day)
// window. A store read failure is retried once, then surfaced as a
// StoreTransient error (§7); a cancelled context returns early without any
// output.
func (c *Coordinator) Coordinate(ctx context.Context, date time.Time) (CoordinationResult, error) {
	windowStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	windowEnd := windowStart.Add(24 * time.Hour)

	pending, err := c.fetchWithRetry(ctx, windowStart, windowEnd)
	if err != nil {
		if ctx.Err() != nil {
			return CoordinationResult{}, engineerrors.Cancelled("coordinate", ctx.Err())
		}
		return CoordinationResult{}, engineerrors.Transient("fetching pending tasks", err)
	}

	if len(pending) == 0 {
		return CoordinationResult{}, nil
	}

	working := make([]*workingTask, len(pending))
	byID := make(map[string]*workingTask, len(pending))
	for i, p := range pending {
		wt := &workingTask{
			task:         p.Task,
			location:     p.GardenLocation,
			dueOn:        p.Task.DueOn,
			requirements: requirementsFor(p.Task.Type, int(p.Task.EstimatedDuration.Minutes())),
		}
		working[i] = wt
		byID[p.Task.ID] = wt
	}

	resourceConflicts := detectResourceConflicts(working)
	spaceConflicts := detectSpaceConflicts(working)
	conflicts := append(append([]Conflict{}, resourceConflicts...), spaceConflicts...)

	resolveConflicts(byID, conflicts)

	if err := ctx.Err(); err != nil {
		return CoordinationResult{}, engineerrors.Cancelled("coordinate", err)
	}

	batches := createBatches(working)
	ordered := orderExecution(batches, time.Now())
	opportunities := identifySharingOpportunities(ordered)

	result := CoordinationResult{
		Batches:              ordered,
		Conflicts:            conflicts,
		SharingOpportunities: opportunities,
		TimeSavingsMinutes:   timeSavings(ordered),
		Efficiency:           overallEfficiency(ordered),
	}

	c.log.InfoContext(ctx, "coordinate: completed",
		"date", windowStart.Format("2006-01-02"),
		"tasks", len(pending), "batches", len(ordered), "conflicts", len(conflicts))

	return result, nil
}

func (c *Coordinator) fetchWithRetry(ctx context.Context, start, end time.Time) ([]PendingTask, error) {
	pending, err := c.repo.ListPendingInWindow(ctx, start, end)
	if err == nil {
		return pending, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	c.log.WarnContext(ctx, "coordinate: transient fetch failure, retrying once", "error", err)
	pending, retryErr := c.repo.ListPendingInWindow(ctx, start, end)
	if retryErr != nil {
		return nil, fmt.Errorf("after retry: %w", retryErr)
	}
	return pending, nil
}

// ResourceUtilization reports, per resource tag, usage as a fraction of the
// documented capacity constants. It is a read-only helper for an external
// utilisation dashboard; it does not feed back into scheduling decisions.
type ResourceUtilization struct {
	TimeFraction       float64
	NutrientsFraction  float64
	WaterFraction      float64
	EquipmentFraction  float64
}

// Utilization computes resource usage fractions from a CoordinationResult
// already produced by Coordinate.
func Utilization(result CoordinationResult) ResourceUtilization {
	var timeMinutes, nutrients, water, equipment float64

	for _, b := range result.Batches {
		for _, tag := range b.SharedResources {
			switch tag {
			case domain.ResourceTime:
				timeMinutes += b.TotalDuration.Minutes()
			case domain.ResourceNutrients:
				nutrients += 2 * float64(len(b.Tasks))
			case domain.ResourceWater:
				water += 10 * float64(len(b.Tasks))
			case domain.ResourceEquipment:
				equipment += float64(len(b.Tasks))
			}
		}
	}

	return ResourceUtilization{
		TimeFraction:      timeMinutes / DailyCapacityMinutes,
		NutrientsFraction: nutrients / NutrientsCapacity,
		WaterFraction:     water / WaterCapacity,
		EquipmentFraction: equipment / EquipmentCapacity,
	}
}
