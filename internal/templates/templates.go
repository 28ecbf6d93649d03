// Package templates holds the compiled-in, read-only task template
// catalogue: the Template Library component. It exposes a single lookup,
// ForMethod, and validates its own data at package init so a bad catalogue
// entry fails the process at startup rather than at first generation.
package templates

import (
	"fmt"

	"github.com/growplan/engine/internal/domain"
)

// Template is a parameterised recipe for synthesising a task, keyed by
// growing method and growth stage.
type Template struct {
	Name                string
	Description         string
	Type                domain.TaskType
	Stage               domain.GrowthStage
	DaysFromStageStart  int
	FrequencyDays       int // 0 means one-shot
	Priority            domain.TaskPriority
	DurationMinutes     int
	Instructions        string
	RequiredMaterials   []string
}

// catalogue maps a growing method to its ordered template sequence. Methods
// absent from this map fall back to the hydroponic set in ForMethod.
var catalogue = map[domain.GrowingMethod][]Template{
	domain.MethodHydroponic: hydroponicTemplates,
	domain.MethodSoil:       soilTemplates,
	domain.MethodAeroponic:  aeroponicTemplates,
}

// ForMethod returns the ordered template sequence for method. Methods with
// no catalogue entry, or an empty one, resolve to the hydroponic set.
func ForMethod(method domain.GrowingMethod) []Template {
	if list, ok := catalogue[method]; ok && len(list) > 0 {
		return list
	}
	return hydroponicTemplates
}

func init() {
	if len(hydroponicTemplates) == 0 {
		panic(fmt.Errorf("%w: hydroponic catalogue must not be empty (fallback target for all methods)",
			domain.ErrTemplateCatalogInvalid))
	}

	for method, list := range catalogue {
		for _, t := range list {
			if t.Name == "" {
				panic(fmt.Errorf("%w: method %s has a template with an empty name", domain.ErrTemplateCatalogInvalid, method))
			}
			switch t.Stage {
			case domain.StageGermination, domain.StageSeedling, domain.StageVegetative,
				domain.StageFlowering, domain.StageHarvest, domain.StageCuring:
			default:
				panic(fmt.Errorf("%w: method %s template %q names unknown stage %q",
					domain.ErrTemplateCatalogInvalid, method, t.Name, t.Stage))
			}
			if t.FrequencyDays < 0 {
				panic(fmt.Errorf("%w: method %s template %q has negative frequency",
					domain.ErrTemplateCatalogInvalid, method, t.Name))
			}
		}
	}
}
