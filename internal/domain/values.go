package domain

// GrowingMethod identifies the cultivation technique a garden uses.
// Value object - immutable string enum.
type GrowingMethod string

const (
	MethodSoil       GrowingMethod = "soil"
	MethodHydroponic GrowingMethod = "hydroponic"
	MethodAeroponic  GrowingMethod = "aeroponic"
	MethodCoco       GrowingMethod = "coco"
	MethodSoilless   GrowingMethod = "soilless"
	MethodGreenhouse GrowingMethod = "greenhouse"
	MethodOutdoor    GrowingMethod = "outdoor"
	MethodMixed      GrowingMethod = "mixed"
)

// GrowthStage is a phase of a plant's lifecycle that determines which
// task templates apply.
type GrowthStage string

const (
	StageGermination GrowthStage = "germination"
	StageSeedling    GrowthStage = "seedling"
	StageVegetative  GrowthStage = "vegetative"
	StageFlowering   GrowthStage = "flowering"
	StageHarvest     GrowthStage = "harvest"
	StageCuring      GrowthStage = "curing"
)

// stageThreshold pairs a stage with the day count (since planting) at which
// it begins. Ordered ascending; the last entry has no upper bound.
type stageThreshold struct {
	stage    GrowthStage
	fromDays int
}

// stageThresholds is the single source of truth for stage derivation.
// Both the Generator and the Notifier call StageForDaysSincePlanted so the
// two can never disagree about "what stage should this garden be in".
//
// curing has no derivation rule: nothing in days-since-planted ever produces
// it automatically. A garden only reaches curing via explicit external
// action (see Open Questions in DESIGN.md).
var stageThresholds = []stageThreshold{
	{StageGermination, 0},
	{StageSeedling, 7},
	{StageVegetative, 21},
	{StageFlowering, 56},
	{StageHarvest, 112},
}

// StageForDaysSincePlanted maps an elapsed day count to the growth stage a
// garden following the default progression should be in.
func StageForDaysSincePlanted(days int) GrowthStage {
	stage := stageThresholds[0].stage
	for _, t := range stageThresholds {
		if days < t.fromDays {
			break
		}
		stage = t.stage
	}
	return stage
}

// DaysInStage returns how many days a garden has spent in its current stage,
// given the total days since planting. Negative inputs clamp to zero.
func DaysInStage(days int) int {
	stage := StageForDaysSincePlanted(days)
	for _, t := range stageThresholds {
		if t.stage == stage {
			d := days - t.fromDays
			if d < 0 {
				return 0
			}
			return d
		}
	}
	return 0
}

// TaskType classifies the kind of work a task represents; the type drives
// both resource-requirement analysis and default template behaviour.
type TaskType string

const (
	TaskWatering      TaskType = "watering"
	TaskFeeding       TaskType = "feeding"
	TaskMonitoring    TaskType = "monitoring"
	TaskPruning       TaskType = "pruning"
	TaskTraining      TaskType = "training"
	TaskHarvesting    TaskType = "harvesting"
	TaskMaintenance   TaskType = "maintenance"
	TaskEnvironmental TaskType = "environmental"
	TaskTransplanting TaskType = "transplanting"
	TaskInspection    TaskType = "inspection"
	TaskLighting      TaskType = "lighting"
	TaskGeneral       TaskType = "general"
)

// physicalPresenceTypes are task types that require the grower to be
// physically present at the garden's location (space conflicts).
var physicalPresenceTypes = map[TaskType]bool{
	TaskPruning:     true,
	TaskTraining:    true,
	TaskHarvesting:  true,
	TaskMaintenance: true,
}

// RequiresPhysicalPresence reports whether t is one of the task types that
// can produce a space conflict with another physical-presence task.
func (t TaskType) RequiresPhysicalPresence() bool {
	return physicalPresenceTypes[t]
}

// TaskPriority orders tasks for scheduling and conflict resolution.
type TaskPriority string

const (
	PriorityCritical TaskPriority = "critical"
	PriorityHigh     TaskPriority = "high"
	PriorityMedium   TaskPriority = "medium"
	PriorityLow      TaskPriority = "low"
)

// priorityRank gives lower numbers to higher urgency, so sorting ascending
// by rank produces critical-first ordering.
var priorityRank = map[TaskPriority]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

// Rank returns the sort rank of p; lower ranks are more urgent.
// Unknown priorities rank below PriorityLow so they sort last, never first.
func (p TaskPriority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

// Weight returns the urgency weight used by the Coordinator's execution
// ordering: critical=100, high=75, medium=50, low=25.
func (p TaskPriority) Weight() float64 {
	switch p {
	case PriorityCritical:
		return 100
	case PriorityHigh:
		return 75
	case PriorityMedium:
		return 50
	case PriorityLow:
		return 25
	default:
		return 0
	}
}

// NotificationType classifies a NotificationRecord and gates it against the
// matching UserPreferences toggle.
type NotificationType string

const (
	NotificationTaskReminder    NotificationType = "task-reminder"
	NotificationTaskOverdue     NotificationType = "task-overdue"
	NotificationSystemAlert     NotificationType = "system-alert"
	NotificationGrowthMilestone NotificationType = "growth-milestone"
	NotificationResourceAlert   NotificationType = "resource-alert"
	NotificationHarvestReady    NotificationType = "harvest-ready"
)

// ResourceTag identifies a shared resource a task consumes.
type ResourceTag string

const (
	ResourceNutrients ResourceTag = "nutrients"
	ResourceWater     ResourceTag = "water"
	ResourceEquipment ResourceTag = "equipment"
	ResourceLighting  ResourceTag = "lighting"
	ResourceTime      ResourceTag = "time"
	ResourceSpace     ResourceTag = "space"
)
