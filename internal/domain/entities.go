package domain

import "time"

// Garden is an aggregate root representing one growing space with its own
// plant cohort, lifecycle, and stage history.
//
// Mutated by the Generator only through reads; mutated by the Notifier when
// it detects a stage transition (current stage + stage-started timestamp,
// written atomically together). Destroyed only by deliberate external
// action, which cascades to owned tasks.
type Garden struct {
	ID             string
	Name           string
	GrowingMethod  GrowingMethod
	PlantType      string
	PlantedOn      time.Time
	CurrentStage   GrowthStage
	StageStartedOn time.Time
	IsActive       bool
	Location       *string // optional; nil means no physical location recorded
}

// DaysSincePlanted returns the elapsed whole days between PlantedOn and at.
func (g Garden) DaysSincePlanted(at time.Time) int {
	d := at.Sub(g.PlantedOn)
	if d < 0 {
		return 0
	}
	return int(d.Hours() / 24)
}

// ExpectedStage returns the stage the garden should be in at time at,
// derived solely from days-since-planted via the shared threshold table.
func (g Garden) ExpectedStage(at time.Time) GrowthStage {
	return StageForDaysSincePlanted(g.DaysSincePlanted(at))
}

// Task is an actionable, dated, prioritised unit of work owned by a garden.
//
// Invariants: Completed ⇔ CompletedOn set; DueOn ≥ CreatedOn minus a small
// slack; if AutoGenerated, Title is derived from template name and garden
// name (see internal/generator).
type Task struct {
	ID                string
	GardenID          string
	PlantID           *string
	Title             string
	Description       string
	Type              TaskType
	Priority          TaskPriority
	DueOn             time.Time
	EstimatedDuration time.Duration
	Completed         bool
	CompletedOn       *time.Time
	RecurrencePattern *string
	AutoGenerated     bool
	CreatedOn         time.Time
}

// IsOverdue reports whether the task is pending and its due time has
// already passed as of at.
func (t Task) IsOverdue(at time.Time) bool {
	return !t.Completed && t.DueOn.Before(at)
}

// EndsAt returns the task's scheduled end time: DueOn + EstimatedDuration.
func (t Task) EndsAt() time.Time {
	return t.DueOn.Add(t.EstimatedDuration)
}

// InventoryItem is read-only to the core: a trackable consumable or
// supply with a minimum-stock threshold.
type InventoryItem struct {
	ID               string
	Name             string
	CurrentQuantity  float64
	MinimumThreshold float64
}

// IsLowStock reports whether the item is at or below threshold but not
// fully depleted: 0 < current ≤ threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.CurrentQuantity > 0 && i.CurrentQuantity <= i.MinimumThreshold
}

// NotificationRecord is write-only from the core: a persisted record of a
// delivered (or attempted) notification, used to suppress duplicates.
type NotificationRecord struct {
	ID       string
	Type     NotificationType
	Title    string
	Body     string
	Priority TaskPriority
	TaskID   *string
	GardenID *string
	SentOn   time.Time
}

// UserPreferences is read-only to the core: notification settings that
// gate the Notifier's scans and control quiet hours.
type UserPreferences struct {
	Enabled             bool
	RemindersEnabled    bool
	OverdueEnabled      bool
	GrowthEnabled       bool
	ResourceEnabled     bool
	SystemEnabled       bool
	SoundEnabled        bool
	ReminderLeadMinutes int
	QuietHoursStart     int // hour-of-day, 0-23
	QuietHoursEnd       int // hour-of-day, 0-23; may be < start (wraps midnight)
}

// InQuietHours reports whether hour falls within the wrapping
// [QuietHoursStart, QuietHoursEnd) interval. If start > end the interval
// wraps midnight: for {start=22, end=7}, hours 22 and 6 are quiet, hour 7
// is not (the end bound is exclusive in both the wrapping and
// non-wrapping case).
func (p UserPreferences) InQuietHours(hour int) bool {
	start, end := p.QuietHoursStart, p.QuietHoursEnd
	if start == end {
		return false
	}
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

// ResourceRequirement is a transient value describing one resource a task
// consumes, produced by the Coordinator's requirement analysis and
// discarded at the end of one coordination run.
type ResourceRequirement struct {
	Tag             ResourceTag
	Quantity        float64
	DurationMinutes int
	FlexibilityMins int
}

// Batch is a transient group of tasks the Coordinator decided to execute
// together because they share a time window, location, and resources.
type Batch struct {
	Tasks            []Task
	TotalDuration    time.Duration
	SharedResources  []ResourceTag
	OptimalStart     time.Time
	Efficiency       float64
	Gardens          []string
	ScheduledStart   time.Time
}
