package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/growplan/engine/internal/domain"
	"github.com/growplan/engine/internal/ptr"
)

// reminderDedupeWindow and overdueDedupeWindow are the rolling windows
// within which a duplicate record of the same type for the same task is
// suppressed.
const (
	reminderDedupeWindow = 24 * time.Hour
	overdueDedupeWindow  = 4 * time.Hour
)

// candidate is a notification not yet persisted: the scans below produce
// these, and the Worker's queue/delivery path turns them into
// domain.NotificationRecord values once sent.
type candidate struct {
	Type     domain.NotificationType
	Title    string
	Body     string
	Priority domain.TaskPriority
	TaskID   *string
	GardenID *string

	// recorded is set when the notification record has already been
	// persisted atomically with some other store write (see
	// scanGrowthMilestones), so deliver must not persist it again.
	recorded bool
}

// scanReminders implements §4.4 scan 1: pending tasks due within (now, now
// + leadTime], skipping tasks that already have a recent task-reminder
// record.
func scanReminders(ctx context.Context, repo Repository, prefs domain.UserPreferences, now time.Time, log *slog.Logger) []candidate {
	leadTime := time.Duration(prefs.ReminderLeadMinutes) * time.Minute
	tasks, err := repo.ListPendingTasksDueWithin(ctx, now, now.Add(leadTime))
	if err != nil {
		log.WarnContext(ctx, "notifier: reminder scan failed", "error", err)
		return nil
	}

	var out []candidate
	for _, task := range tasks {
		recent, err := repo.HasRecentNotification(ctx, domain.NotificationTaskReminder, task.ID, now.Add(-reminderDedupeWindow))
		if err != nil {
			log.WarnContext(ctx, "notifier: reminder dedupe check failed", "task_id", task.ID, "error", err)
			continue
		}
		if recent {
			continue
		}

		priority := domain.PriorityLow
		if task.Priority == domain.PriorityHigh || task.Priority == domain.PriorityCritical {
			priority = domain.PriorityMedium
		}

		out = append(out, candidate{
			Type:     domain.NotificationTaskReminder,
			Title:    "Upcoming task",
			Body:     fmt.Sprintf("%s is due soon", task.Title),
			Priority: priority,
			TaskID:   ptr.To(task.ID),
		})
	}
	return out
}

// scanOverdue implements §4.4 scan 2: pending tasks whose due time has
// passed, with priority escalating by lateness, skipping tasks with a
// recent task-overdue record.
func scanOverdue(ctx context.Context, repo Repository, now time.Time, log *slog.Logger) []candidate {
	tasks, err := repo.ListOverdueTasks(ctx, now)
	if err != nil {
		log.WarnContext(ctx, "notifier: overdue scan failed", "error", err)
		return nil
	}

	var out []candidate
	for _, task := range tasks {
		recent, err := repo.HasRecentNotification(ctx, domain.NotificationTaskOverdue, task.ID, now.Add(-overdueDedupeWindow))
		if err != nil {
			log.WarnContext(ctx, "notifier: overdue dedupe check failed", "task_id", task.ID, "error", err)
			continue
		}
		if recent {
			continue
		}

		lateness := now.Sub(task.DueOn)
		priority := overduePriority(lateness)

		out = append(out, candidate{
			Type:     domain.NotificationTaskOverdue,
			Title:    "Overdue task",
			Body:     fmt.Sprintf("%s is overdue", task.Title),
			Priority: priority,
			TaskID:   ptr.To(task.ID),
		})
	}
	return out
}

// overduePriority escalates with lateness: <2h medium, <12h high, >=12h
// critical.
func overduePriority(lateness time.Duration) domain.TaskPriority {
	switch {
	case lateness >= 12*time.Hour:
		return domain.PriorityCritical
	case lateness >= 2*time.Hour:
		return domain.PriorityHigh
	default:
		return domain.PriorityMedium
	}
}

// scanGrowthMilestones implements §4.4 scan 3: for each active garden,
// compares the expected stage (via the shared threshold function the
// Generator also uses) to the garden's recorded stage; on mismatch it
// atomically updates the garden's stage and persists the milestone
// notification record as a single store write (see
// Repository.RecordGrowthMilestone), then returns a candidate already
// marked recorded so the delivery path only shows it, never re-persists it.
func scanGrowthMilestones(ctx context.Context, repo Repository, now time.Time, log *slog.Logger) []candidate {
	gardens, err := repo.ListActiveGardens(ctx)
	if err != nil {
		log.WarnContext(ctx, "notifier: growth milestone scan failed", "error", err)
		return nil
	}

	var out []candidate
	for _, garden := range gardens {
		expected := garden.ExpectedStage(now)
		if expected == garden.CurrentStage {
			continue
		}

		id, err := newID()
		if err != nil {
			log.WarnContext(ctx, "notifier: mint milestone id failed", "garden_id", garden.ID, "error", err)
			continue
		}

		title := "Growth stage advanced"
		body := fmt.Sprintf("%s has entered the %s stage", garden.Name, expected)
		record := domain.NotificationRecord{
			ID:       id,
			Type:     domain.NotificationGrowthMilestone,
			Title:    title,
			Body:     body,
			Priority: domain.PriorityMedium,
			GardenID: ptr.To(garden.ID),
			SentOn:   now,
		}

		if err := repo.RecordGrowthMilestone(ctx, garden.ID, expected, now, record); err != nil {
			log.WarnContext(ctx, "notifier: stage update failed", "garden_id", garden.ID, "error", err)
			continue
		}

		out = append(out, candidate{
			Type:     domain.NotificationGrowthMilestone,
			Title:    title,
			Body:     body,
			Priority: domain.PriorityMedium,
			GardenID: ptr.To(garden.ID),
			recorded: true,
		})
	}
	return out
}

// scanResourceAlerts implements §4.4 scan 4: low-stock inventory items.
func scanResourceAlerts(ctx context.Context, repo Repository, log *slog.Logger) []candidate {
	items, err := repo.ListLowStockItems(ctx)
	if err != nil {
		log.WarnContext(ctx, "notifier: resource alert scan failed", "error", err)
		return nil
	}

	var out []candidate
	for _, item := range items {
		if !item.IsLowStock() {
			continue
		}
		out = append(out, candidate{
			Type:     domain.NotificationResourceAlert,
			Title:    "Low stock",
			Body:     fmt.Sprintf("%s is running low (%.0f remaining)", item.Name, item.CurrentQuantity),
			Priority: domain.PriorityHigh,
		})
	}
	return out
}
