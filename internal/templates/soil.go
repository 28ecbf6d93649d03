package templates

import "github.com/growplan/engine/internal/domain"

// soilTemplates covers soil-grown gardens. The reference source only ever
// sketched one soil template ("Add more soil-specific templates..."); this
// set fills in the rest of the stage coverage the hydroponic catalogue has,
// substituting soil-appropriate watering and feeding practices.
var soilTemplates = []Template{
	{
		Name:               "Check Seed Germination",
		Description:        "Monitor seeds for germination progress in soil",
		Type:               domain.TaskMonitoring,
		Stage:              domain.StageGermination,
		DaysFromStageStart: 1,
		FrequencyDays:      1,
		Priority:           domain.PriorityHigh,
		DurationMinutes:    5,
		RequiredMaterials:  []string{"Magnifying glass"},
		Instructions:       "Check for emergence; keep soil surface moist but not waterlogged",
	},
	{
		Name:               "Maintain Germination Environment",
		Description:        "Ensure proper temperature and humidity for germination",
		Type:               domain.TaskEnvironmental,
		Stage:              domain.StageGermination,
		DaysFromStageStart: 0,
		FrequencyDays:      1,
		Priority:           domain.PriorityCritical,
		DurationMinutes:    10,
		RequiredMaterials:  []string{"Thermometer", "Humidity dome"},
		Instructions:       "Maintain 70-75F soil temperature under a humidity dome",
	},
	{
		Name:               "Water Check - Soil",
		Description:        "Check soil moisture and water if needed",
		Type:               domain.TaskWatering,
		Stage:              domain.StageSeedling,
		DaysFromStageStart: 0,
		FrequencyDays:      2,
		Priority:           domain.PriorityHigh,
		DurationMinutes:    10,
		RequiredMaterials:  []string{"Watering can", "Moisture meter"},
		Instructions:       "Water when the top inch of soil is dry",
	},
	{
		Name:               "Transplant to Final Container",
		Description:        "Move seedlings to their final pot size",
		Type:               domain.TaskMaintenance,
		Stage:              domain.StageSeedling,
		DaysFromStageStart: 14,
		FrequencyDays:      0,
		Priority:           domain.PriorityCritical,
		DurationMinutes:    30,
		RequiredMaterials:  []string{"Pots", "Potting soil"},
		Instructions:       "Transplant once 2-3 true leaves are present, avoid root disturbance",
	},
	{
		Name:               "Water Check - Soil",
		Description:        "Check soil moisture and water if needed",
		Type:               domain.TaskWatering,
		Stage:              domain.StageVegetative,
		DaysFromStageStart: 0,
		FrequencyDays:      2,
		Priority:           domain.PriorityHigh,
		DurationMinutes:    10,
		RequiredMaterials:  []string{"Watering can", "Moisture meter"},
		Instructions:       "Water when top inch of soil is dry",
	},
	{
		Name:               "Vegetative Feeding",
		Description:        "Apply balanced organic or synthetic fertilizer",
		Type:               domain.TaskFeeding,
		Stage:              domain.StageVegetative,
		DaysFromStageStart: 7,
		FrequencyDays:      14,
		Priority:           domain.PriorityHigh,
		DurationMinutes:    20,
		RequiredMaterials:  []string{"Vegetative fertilizer", "Watering can"},
		Instructions:       "Apply at half label strength to start, watch for nutrient burn",
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
		Name:               "Switch to Flowering Fertilizer",
		Description:        "Change to a bloom-formula fertilizer",
		Type:               domain.TaskFeeding,
		Stage:              domain.StageFlowering,
		DaysFromStageStart: 0,
		FrequencyDays:      0,
		Priority:           domain.PriorityCritical,
		DurationMinutes:    20,
		RequiredMaterials:  []string{"Bloom fertilizer"},
		Instructions:       "Switch to a high P-K bloom formula, taper nitrogen",
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
		Instructions:       "Check for pistil development and signs of stress",
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
		RequiredMaterials:  []string{"60x magnifying glass"},
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
