// Package refdata exposes read-only reference-data lookups: growing guides
// and nutrient recipe hints consulted only to enrich a task's instruction
// text. It never feeds eligibility or scheduling logic; treat every lookup
// here as compiled-in constants, not as something the store could ever
// invalidate.
package refdata

import "github.com/growplan/engine/internal/domain"

// GrowingGuide is a short, static hint attached to a growing method for
// display purposes.
type GrowingGuide struct {
	Method  domain.GrowingMethod
	Summary string
}

var guides = map[domain.GrowingMethod]GrowingGuide{
	domain.MethodHydroponic: {domain.MethodHydroponic, "Nutrient solution delivered directly to roots; monitor EC and pH closely."},
	domain.MethodSoil:       {domain.MethodSoil, "Water when the top inch of soil is dry; buffer nutrients less aggressively than hydro."},
	domain.MethodAeroponic:  {domain.MethodAeroponic, "Roots are misted on a timed cycle; nozzle clogs are the leading failure mode."},
	domain.MethodCoco:       {domain.MethodCoco, "Coco coir behaves like a fast hydroponic medium; feed little and often."},
	domain.MethodSoilless:   {domain.MethodSoilless, "Soilless mixes drain fast; watch for underfeeding more than overfeeding."},
	domain.MethodGreenhouse: {domain.MethodGreenhouse, "Ambient conditions swing with the weather; ventilation timing matters most."},
	domain.MethodOutdoor:    {domain.MethodOutdoor, "Subject to natural photoperiod and weather; plan around the local season."},
	domain.MethodMixed:      {domain.MethodMixed, "Mixed-method garden; default to the hydroponic guide unless a zone overrides it."},
}

// Lookup returns a short guide summary for method, enriching a template's
// instruction text for display. The bool reports whether a dedicated guide
// exists for method; when false, callers should fall back to the template's
// own instructions unchanged.
func Lookup(method domain.GrowingMethod) (GrowingGuide, bool) {
	g, ok := guides[method]
	return g, ok
}
