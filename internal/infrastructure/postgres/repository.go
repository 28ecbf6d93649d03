package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/growplan/engine/internal/coordinator"
	"github.com/growplan/engine/internal/domain"
)

// --- generator.Repository ---

func (s *Store) GetActiveGarden(ctx context.Context, gardenID string) (domain.Garden, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, growing_method, plant_type, planted_on, current_stage, stage_started_on, is_active, location
		FROM gardens WHERE id = $1 AND is_active`, gardenID)

	garden, err := scanGarden(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Garden{}, fmt.Errorf("postgres: garden %s: %w", gardenID, domain.ErrGardenNotFound)
		}
		return domain.Garden{}, fmt.Errorf("postgres: get active garden: %w", err)
	}
	return garden, nil
}

func (s *Store) ListActiveGardens(ctx context.Context) ([]domain.Garden, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, growing_method, plant_type, planted_on, current_stage, stage_started_on, is_active, location
		FROM gardens WHERE is_active ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("postgres: list active gardens: %w", err)
	}
	defer rows.Close()

	var out []domain.Garden
	for rows.Next() {
		garden, err := scanGarden(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan garden: %w", err)
		}
		out = append(out, garden)
	}
	return out, rows.Err()
}

func (s *Store) TaskExistsWithTitle(ctx context.Context, gardenID, title string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM tasks WHERE garden_id = $1 AND title = $2)`,
		gardenID, title).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("postgres: task exists with title: %w", err)
	}
	return exists, nil
}

func (s *Store) MostRecentTaskContainingTitle(ctx context.Context, gardenID, fragment string) (domain.Task, bool, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, garden_id, plant_id, title, description, type, priority, due_on, estimated_duration,
		       completed, completed_on, recurrence_pattern, auto_generated, created_on
		FROM tasks
		WHERE garden_id = $1 AND title LIKE '%' || $2 || '%'
		ORDER BY created_on DESC LIMIT 1`, gardenID, fragment)

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Task{}, false, nil
		}
		return domain.Task{}, false, fmt.Errorf("postgres: most recent task containing title: %w", err)
	}
	return task, true, nil
}

func (s *Store) CreateTask(ctx context.Context, task domain.Task) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO tasks (id, garden_id, plant_id, title, description, type, priority, due_on,
		                    estimated_duration, completed, completed_on, recurrence_pattern, auto_generated, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		task.ID, task.GardenID, task.PlantID, task.Title, task.Description, string(task.Type), string(task.Priority),
		task.DueOn, int64(task.EstimatedDuration), task.Completed, task.CompletedOn, task.RecurrencePattern,
		task.AutoGenerated, task.CreatedOn)
	if err != nil {
		return fmt.Errorf("postgres: create task: %w", err)
	}
	return nil
}

// --- coordinator.Repository ---

func (s *Store) ListPendingInWindow(ctx context.Context, start, end time.Time) ([]coordinator.PendingTask, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT t.id, t.garden_id, t.plant_id, t.title, t.description, t.type, t.priority, t.due_on,
		       t.estimated_duration, t.completed, t.completed_on, t.recurrence_pattern, t.auto_generated, t.created_on,
		       g.location
		FROM tasks t
		JOIN gardens g ON g.id = t.garden_id
		WHERE NOT t.completed AND g.is_active AND t.due_on >= $1 AND t.due_on < $2
		ORDER BY
			CASE t.priority
				WHEN 'critical' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 ELSE 4
			END,
			t.due_on`, start, end)
	if err != nil {
		return nil, fmt.Errorf("postgres: list pending in window: %w", err)
	}
	defer rows.Close()

	var out []coordinator.PendingTask
	for rows.Next() {
		var task domain.Task
		var location *string
		var taskType, priority string
		if err := rows.Scan(&task.ID, &task.GardenID, &task.PlantID, &task.Title, &task.Description,
			&taskType, &priority, &task.DueOn, (*int64)(&task.EstimatedDuration), &task.Completed,
			&task.CompletedOn, &task.RecurrencePattern, &task.AutoGenerated, &task.CreatedOn, &location); err != nil {
			return nil, fmt.Errorf("postgres: scan pending task: %w", err)
		}
		task.Type = domain.TaskType(taskType)
		task.Priority = domain.TaskPriority(priority)
		out = append(out, coordinator.PendingTask{Task: task, GardenLocation: location})
	}
	return out, rows.Err()
}

// --- notifier.Repository ---

func (s *Store) ListPendingTasksDueWithin(ctx context.Context, from, to time.Time) ([]domain.Task, error) {
	return s.listTasks(ctx, `
		SELECT id, garden_id, plant_id, title, description, type, priority, due_on, estimated_duration,
		       completed, completed_on, recurrence_pattern, auto_generated, created_on
		FROM tasks WHERE NOT completed AND due_on > $1 AND due_on <= $2`, from, to)
}

func (s *Store) ListOverdueTasks(ctx context.Context, asOf time.Time) ([]domain.Task, error) {
	return s.listTasks(ctx, `
		SELECT id, garden_id, plant_id, title, description, type, priority, due_on, estimated_duration,
		       completed, completed_on, recurrence_pattern, auto_generated, created_on
		FROM tasks WHERE NOT completed AND due_on < $1`, asOf)
}

func (s *Store) listTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: list tasks: %w", err)
	}
	defer rows.Close()

	var out []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan task: %w", err)
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (s *Store) UpdateGardenStage(ctx context.Context, gardenID string, stage domain.GrowthStage, stageStartedOn time.Time) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE gardens SET current_stage = $2, stage_started_on = $3 WHERE id = $1`,
		gardenID, string(stage), stageStartedOn)
	if err != nil {
		return fmt.Errorf("postgres: update garden stage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("postgres: update garden stage: garden %s: %w", gardenID, domain.ErrGardenNotFound)
	}
	return nil
}

// RecordGrowthMilestone updates a garden's stage and inserts the matching
// milestone notification record inside one transaction, so the two writes
// commit or roll back together.
func (s *Store) RecordGrowthMilestone(ctx context.Context, gardenID string, stage domain.GrowthStage, stageStartedOn time.Time, notification domain.NotificationRecord) error {
	return s.executeInTransaction(ctx, "record_growth_milestone", func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE gardens SET current_stage = $2, stage_started_on = $3 WHERE id = $1`,
			gardenID, string(stage), stageStartedOn)
		if err != nil {
			return fmt.Errorf("update garden stage: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("update garden stage: garden %s: %w", gardenID, domain.ErrGardenNotFound)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO notifications (id, type, title, body, priority, task_id, garden_id, sent_on)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			notification.ID, string(notification.Type), notification.Title, notification.Body,
			string(notification.Priority), notification.TaskID, notification.GardenID, notification.SentOn)
		if err != nil {
			return fmt.Errorf("insert milestone notification: %w", err)
		}
		return nil
	})
}

func (s *Store) ListLowStockItems(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, current_quantity, minimum_threshold
		FROM inventory_items
		WHERE current_quantity > 0 AND current_quantity <= minimum_threshold`)
	if err != nil {
		return nil, fmt.Errorf("postgres: list low stock items: %w", err)
	}
	defer rows.Close()

	var out []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.CurrentQuantity, &item.MinimumThreshold); err != nil {
			return nil, fmt.Errorf("postgres: scan inventory item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (s *Store) HasRecentNotification(ctx context.Context, notifType domain.NotificationType, referenceID string, since time.Time) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM notifications
			WHERE type = $1 AND (task_id = $2 OR garden_id = $2) AND sent_on >= $3
		)`, string(notifType), referenceID, since).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("postgres: has recent notification: %w", err)
	}
	return exists, nil
}

func (s *Store) CreateNotification(ctx context.Context, record domain.NotificationRecord) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO notifications (id, type, title, body, priority, task_id, garden_id, sent_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.ID, string(record.Type), record.Title, record.Body, string(record.Priority),
		record.TaskID, record.GardenID, record.SentOn)
	if err != nil {
		return fmt.Errorf("postgres: create notification: %w", err)
	}
	return nil
}

func (s *Store) GetPreferences(ctx context.Context) (domain.UserPreferences, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT enabled, reminders_enabled, overdue_enabled, growth_enabled, resource_enabled,
		       system_enabled, sound_enabled, reminder_lead_minutes, quiet_hours_start, quiet_hours_end
		FROM preferences WHERE id`)

	var p domain.UserPreferences
	err := row.Scan(&p.Enabled, &p.RemindersEnabled, &p.OverdueEnabled, &p.GrowthEnabled, &p.ResourceEnabled,
		&p.SystemEnabled, &p.SoundEnabled, &p.ReminderLeadMinutes, &p.QuietHoursStart, &p.QuietHoursEnd)
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("postgres: get preferences: %w", err)
	}
	return p, nil
}

// --- seed helpers, used by the storecompliance suite and cmd harnesses ---

func (s *Store) PutGarden(g domain.Garden) {
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO gardens (id, name, growing_method, plant_type, planted_on, current_stage, stage_started_on, is_active, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, growing_method = EXCLUDED.growing_method, plant_type = EXCLUDED.plant_type,
			planted_on = EXCLUDED.planted_on, current_stage = EXCLUDED.current_stage,
			stage_started_on = EXCLUDED.stage_started_on, is_active = EXCLUDED.is_active, location = EXCLUDED.location`,
		g.ID, g.Name, string(g.GrowingMethod), g.PlantType, g.PlantedOn, string(g.CurrentStage), g.StageStartedOn, g.IsActive, g.Location)
	if err != nil {
		panic(fmt.Sprintf("postgres: put garden: %v", err))
	}
}

func (s *Store) PutInventoryItem(i domain.InventoryItem) {
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO inventory_items (id, name, current_quantity, minimum_threshold)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, current_quantity = EXCLUDED.current_quantity,
			minimum_threshold = EXCLUDED.minimum_threshold`,
		i.ID, i.Name, i.CurrentQuantity, i.MinimumThreshold)
	if err != nil {
		panic(fmt.Sprintf("postgres: put inventory item: %v", err))
	}
}

func (s *Store) SetPreferences(p domain.UserPreferences) {
	_, err := s.pool.Exec(context.Background(), `
		UPDATE preferences SET enabled = $1, reminders_enabled = $2, overdue_enabled = $3, growth_enabled = $4,
			resource_enabled = $5, system_enabled = $6, sound_enabled = $7, reminder_lead_minutes = $8,
			quiet_hours_start = $9, quiet_hours_end = $10 WHERE id`,
		p.Enabled, p.RemindersEnabled, p.OverdueEnabled, p.GrowthEnabled, p.ResourceEnabled,
		p.SystemEnabled, p.SoundEnabled, p.ReminderLeadMinutes, p.QuietHoursStart, p.QuietHoursEnd)
	if err != nil {
		panic(fmt.Sprintf("postgres: set preferences: %v", err))
	}
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanGarden(row rowScanner) (domain.Garden, error) {
	var g domain.Garden
	var method, stage string
	err := row.Scan(&g.ID, &g.Name, &method, &g.PlantType, &g.PlantedOn, &stage, &g.StageStartedOn, &g.IsActive, &g.Location)
	if err != nil {
		return domain.Garden{}, err
	}
	g.GrowingMethod = domain.GrowingMethod(method)
	g.CurrentStage = domain.GrowthStage(stage)
	return g, nil
}

func scanTask(row rowScanner) (domain.Task, error) {
	var t domain.Task
	var taskType, priority string
	var durationNanos int64
	err := row.Scan(&t.ID, &t.GardenID, &t.PlantID, &t.Title, &t.Description, &taskType, &priority, &t.DueOn,
		&durationNanos, &t.Completed, &t.CompletedOn, &t.RecurrencePattern, &t.AutoGenerated, &t.CreatedOn)
	if err != nil {
		return domain.Task{}, err
	}
	t.Type = domain.TaskType(taskType)
	t.Priority = domain.TaskPriority(priority)
	t.EstimatedDuration = time.Duration(durationNanos)
	return t, nil
}
