package domain

import (
	"fmt"
	"strings"
)

// Name is a validated, trimmed name value object (1-200 characters). Used
// for garden names and task titles alike.
type Name struct {
	value string
}

// NewName creates a Name, trimming surrounding whitespace and validating
// length.
func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)

	if s == "" {
		return Name{}, ErrNameRequired
	}

	if len(s) > 200 {
		return Name{}, ErrNameTooLong
	}

	return Name{value: s}, nil
}

// String returns the underlying name value.
func (n Name) String() string {
	return n.value
}

// NewGrowingMethod validates and normalizes a GrowingMethod string.
func NewGrowingMethod(s string) (GrowingMethod, error) {
	method := GrowingMethod(strings.ToLower(strings.TrimSpace(s)))

	switch method {
	case MethodSoil, MethodHydroponic, MethodAeroponic, MethodCoco,
		MethodSoilless, MethodGreenhouse, MethodOutdoor, MethodMixed:
		return method, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidGrowingMethod, s)
	}
}

// NewGrowthStage validates and normalizes a GrowthStage string.
func NewGrowthStage(s string) (GrowthStage, error) {
	stage := GrowthStage(strings.ToLower(strings.TrimSpace(s)))

	switch stage {
	case StageGermination, StageSeedling, StageVegetative, StageFlowering,
		StageHarvest, StageCuring:
		return stage, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidGrowthStage, s)
	}
}

// NewTaskType validates and normalizes a TaskType string.
func NewTaskType(s string) (TaskType, error) {
	t := TaskType(strings.ToLower(strings.TrimSpace(s)))

	switch t {
	case TaskWatering, TaskFeeding, TaskMonitoring, TaskPruning, TaskTraining,
		TaskHarvesting, TaskMaintenance, TaskEnvironmental, TaskTransplanting,
		TaskInspection, TaskLighting, TaskGeneral:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidTaskType, s)
	}
}

// NewTaskPriority validates and normalizes a TaskPriority string. An empty
// string defaults to PriorityMedium, matching how generated tasks without an
// explicit override behave.
func NewTaskPriority(s string) (TaskPriority, error) {
	if s == "" {
		return PriorityMedium, nil
	}

	p := TaskPriority(strings.ToLower(strings.TrimSpace(s)))

	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidTaskPriority, s)
	}
}

// NewNotificationType validates and normalizes a NotificationType string.
func NewNotificationType(s string) (NotificationType, error) {
	nt := NotificationType(strings.ToLower(strings.TrimSpace(s)))

	switch nt {
	case NotificationTaskReminder, NotificationTaskOverdue, NotificationSystemAlert,
		NotificationGrowthMilestone, NotificationResourceAlert, NotificationHarvestReady:
		return nt, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidNotificationType, s)
	}
}

// NewResourceTag validates and normalizes a ResourceTag string.
func NewResourceTag(s string) (ResourceTag, error) {
	r := ResourceTag(strings.ToLower(strings.TrimSpace(s)))

	switch r {
	case ResourceNutrients, ResourceWater, ResourceEquipment, ResourceLighting,
		ResourceTime, ResourceSpace:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidResourceTag, s)
	}
}
