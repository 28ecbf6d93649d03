package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growplan/engine/internal/domain"
)

func TestForMethod_KnownMethodReturnsItsCatalogue(t *testing.T) {
	list := ForMethod(domain.MethodSoil)
	require.NotEmpty(t, list)
	for _, tpl := range list {
		assert.NotEmpty(t, tpl.Name)
	}
}

func TestForMethod_UnknownMethodFallsBackToHydroponic(t *testing.T) {
	list := ForMethod(domain.MethodGreenhouse)
	assert.Equal(t, hydroponicTemplates, list)

	list = ForMethod(domain.MethodMixed)
	assert.Equal(t, hydroponicTemplates, list)
}

func TestHydroponicCatalogue_CoversEveryStageThroughHarvest(t *testing.T) {
	seen := map[domain.GrowthStage]bool{}
	for _, tpl := range hydroponicTemplates {
		seen[tpl.Stage] = true
	}

	for _, stage := range []domain.GrowthStage{
		domain.StageGermination,
		domain.StageSeedling,
		domain.StageVegetative,
		domain.StageFlowering,
		domain.StageHarvest,
	} {
		assert.True(t, seen[stage], "hydroponic catalogue missing stage %s", stage)
	}
}

func TestCatalogue_AllTemplatesHaveNonNegativeFrequencyAndPositiveDuration(t *testing.T) {
	for method, list := range catalogue {
		for _, tpl := range list {
			assert.GreaterOrEqual(t, tpl.FrequencyDays, 0, "method %s template %q", method, tpl.Name)
			assert.Greater(t, tpl.DurationMinutes, 0, "method %s template %q", method, tpl.Name)
		}
	}
}
