package coordinator

import "github.com/growplan/engine/internal/domain"

// defaultFlexibilityMinutes matches the reference ResourceRequirement's
// default flexibility for requirements that do not name an explicit one.
const defaultFlexibilityMinutes = 60

// requirementsFor maps a task's type to the resource requirements it
// generates (step 2). This is the one place the tag-to-requirement rules
// live, per the Design Notes' guidance on centralising type-tagged
// dispatch.
func requirementsFor(taskType domain.TaskType, durationMinutes int) []domain.ResourceRequirement {
	switch taskType {
	case domain.TaskFeeding:
		return []domain.ResourceRequirement{
			{Tag: domain.ResourceNutrients, Quantity: 2, DurationMinutes: durationMinutes, FlexibilityMins: defaultFlexibilityMinutes},
			{Tag: domain.ResourceWater, Quantity: 10, DurationMinutes: durationMinutes, FlexibilityMins: defaultFlexibilityMinutes},
			{Tag: domain.ResourceEquipment, Quantity: 1, DurationMinutes: durationMinutes, FlexibilityMins: defaultFlexibilityMinutes},
			{Tag: domain.ResourceTime, Quantity: float64(durationMinutes), DurationMinutes: durationMinutes, FlexibilityMins: 30},
		}
	case domain.TaskWatering:
		return []domain.ResourceRequirement{
			{Tag: domain.ResourceWater, Quantity: 5, DurationMinutes: durationMinutes, FlexibilityMins: defaultFlexibilityMinutes},
			{Tag: domain.ResourceTime, Quantity: float64(durationMinutes), DurationMinutes: durationMinutes, FlexibilityMins: 60},
		}
	case domain.TaskPruning:
		return []domain.ResourceRequirement{
			{Tag: domain.ResourceEquipment, Quantity: 1, DurationMinutes: durationMinutes, FlexibilityMins: defaultFlexibilityMinutes},
			{Tag: domain.ResourceTime, Quantity: float64(durationMinutes), DurationMinutes: durationMinutes, FlexibilityMins: 120},
		}
	case domain.TaskMonitoring:
		return []domain.ResourceRequirement{
			{Tag: domain.ResourceEquipment, Quantity: 1, DurationMinutes: durationMinutes, FlexibilityMins: defaultFlexibilityMinutes},
			{Tag: domain.ResourceTime, Quantity: float64(durationMinutes), DurationMinutes: durationMinutes, FlexibilityMins: 180},
		}
	default:
		return []domain.ResourceRequirement{
			{Tag: domain.ResourceTime, Quantity: float64(durationMinutes), DurationMinutes: durationMinutes, FlexibilityMins: 60},
		}
	}
}

// compatibilityBonus gives a fixed score bonus to certain task-type pairs,
// order-insensitive, used by the batching step's scoring formula.
var compatibilityBonus = map[[2]domain.TaskType]float64{
	{domain.TaskFeeding, domain.TaskMonitoring}: 3,
	{domain.TaskPruning, domain.TaskTraining}:   4,
	{domain.TaskWatering, domain.TaskMonitoring}: 2,
}

func compatibilityBonusFor(a, b domain.TaskType) float64 {
	if score, ok := compatibilityBonus[[2]domain.TaskType{a, b}]; ok {
		return score
	}
	if score, ok := compatibilityBonus[[2]domain.TaskType{b, a}]; ok {
		return score
	}
	return 0
}
