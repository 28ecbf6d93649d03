package templates

import "github.com/growplan/engine/internal/domain"

// aeroponicTemplates covers misting-system gardens. The reference source
// only sketched one aeroponic template ("Add more aeroponic-specific
// templates..."); this set fills in the remaining stage coverage around
// that nozzle-maintenance core.
var aeroponicTemplates = []Template{
	{
		Name:               "Check Seed Germination",
		Description:        "Monitor seeds for germination progress",
		Type:               domain.TaskMonitoring,
		Stage:              domain.StageGermination,
		DaysFromStageStart: 1,
		FrequencyDays:      1,
		Priority:           domain.PriorityHigh,
		DurationMinutes:    5,
		RequiredMaterials:  []string{"Magnifying glass"},
		Instructions:       "Check for root emergence in the germination cloner",
	},
	{
		Name:               "Maintain Germination Environment",
		Description:        "Ensure proper mist cycle and humidity for germination",
		Type:               domain.TaskEnvironmental,
		Stage:              domain.StageGermination,
		DaysFromStageStart: 0,
		FrequencyDays:      1,
		Priority:           domain.PriorityCritical,
		DurationMinutes:    10,
		RequiredMaterials:  []string{"Thermometer", "Humidity gauge"},
		Instructions:       "Maintain fine mist cycle and 80-90% humidity",
	},
	{
		Name:               "Check Spray Nozzles",
		Description:        "Ensure all spray nozzles are functioning",
		Type:               domain.TaskMaintenance,
		Stage:              domain.StageVegetative,
		DaysFromStageStart: 0,
		FrequencyDays:      3,
		Priority:           domain.PriorityCritical,
		DurationMinutes:    15,
		RequiredMaterials:  []string{"Cleaning tools", "Replacement nozzles"},
		Instructions:       "Clean or replace any clogged nozzles, verify mist cycle timing",
	},
	{
		Name:               "Weekly Nutrient Solution Change",
		Description:        "Replace nutrient reservoir for optimal growth",
		Type:               domain.TaskFeeding,
		Stage:              domain.StageVegetative,
		DaysFromStageStart: 0,
		FrequencyDays:      7,
		Priority:           domain.PriorityCritical,
		DurationMinutes:    40,
		RequiredMaterials:  []string{"Fresh nutrients", "pH adjuster"},
		Instructions:       "Full reservoir change, EC 1.2-1.6, pH 5.5-6.5",
	},
	{
		Name:               "Prune Lower Leaves",
		Description:        "Remove lower yellowing leaves to focus energy",
		Type:               domain.TaskPruning,
		Stage:              domain.StageVegetative,
		DaysFromStageStart: 14,
		FrequencyDays:      14,
		Priority:           domain.PriorityMedium,
		DurationMinutes:    20,
		RequiredMaterials:  []string{"Clean scissors", "Sanitizer"},
		Instructions:       "Remove yellowing lower leaves and any dead growth",
	},
	{
		Name:               "Switch to Flowering Nutrients",
		Description:        "Change to flowering-specific nutrient formula",
		Type:               domain.TaskFeeding,
		Stage:              domain.StageFlowering,
		DaysFromStageStart: 0,
		FrequencyDays:      0,
		Priority:           domain.PriorityCritical,
		DurationMinutes:    30,
		RequiredMaterials:  []string{"Flowering nutrients", "pH adjuster"},
		Instructions:       "Switch to high P-K flowering formula, reduce nitrogen",
	},
	{
		Name:               "Check Spray Nozzles",
		Description:        "Ensure all spray nozzles are functioning",
		Type:               domain.TaskMaintenance,
		Stage:              domain.StageFlowering,
		DaysFromStageStart: 0,
		FrequencyDays:      3,
		Priority:           domain.PriorityCritical,
		DurationMinutes:    15,
		RequiredMaterials:  []string{"Cleaning tools", "Replacement nozzles"},
		Instructions:       "Clogged nozzles in flower cause rapid root desiccation, check closely",
	},
	{
		Name:               "Monitor Flower Development",
		Description:        "Check flowering progress and identify issues",
		Type:               domain.TaskMonitoring,
		Stage:              domain.StageFlowering,
		DaysFromStageStart: 7,
		FrequencyDays:      3,
		Priority:           domain.PriorityHigh,
		DurationMinutes:    15,
		RequiredMaterials:  []string{"Magnifying glass", "Notebook"},
		Instructions:       "Check for pistil development, pollen sacs, or hermaphrodites",
	},
	{
		Name:               "Check Trichome Development",
		Description:        "Monitor trichomes for harvest readiness",
		Type:               domain.TaskMonitoring,
		Stage:              domain.StageHarvest,
		DaysFromStageStart: 0,
		FrequencyDays:      2,
		Priority:           domain.PriorityCritical,
		DurationMinutes:    10,
		RequiredMaterials:  []string{"60x magnifying glass", "Jeweler's loupe"},
		Instructions:       "Look for milky white trichomes with some amber",
	},
	{
		Name:               "Harvest Plants",
		Description:        "Cut and prepare plants for drying",
		Type:               domain.TaskHarvesting,
		Stage:              domain.StageHarvest,
		DaysFromStageStart: 7,
		FrequencyDays:      0,
		Priority:           domain.PriorityCritical,
		DurationMinutes:    120,
		RequiredMaterials:  []string{"Sharp scissors", "Gloves", "Drying racks"},
		Instructions:       "Cut at base, trim fan leaves, hang to dry in controlled environment",
	},
}
