package coordinator

import (
	"time"

	"github.com/growplan/engine/internal/domain"
)

// maxSharingSavingsMinutes caps the potential-savings estimate for any one
// sharing opportunity.
const maxSharingSavingsMinutes = 30

// savingsPerSharedResource is the per-resource-tag minutes credited toward
// a sharing opportunity's potential savings.
const savingsPerSharedResource = 5

// identifySharingOpportunities implements step 8: for every pair of
// batches (in final execution order) whose gap is more than 0 and less than
// 60 minutes and which share at least one resource tag, emit an opportunity.
func identifySharingOpportunities(batches []domain.Batch) []SharingOpportunity {
	var opportunities []SharingOpportunity

	for i := 0; i < len(batches); i++ {
		for j := i + 1; j < len(batches); j++ {
			shared := sharedTags(batches[i].SharedResources, batches[j].SharedResources)
			if len(shared) == 0 {
				continue
			}

			end := batches[i].ScheduledStart.Add(batches[i].TotalDuration)
			gap := batches[j].ScheduledStart.Sub(end)
			if gap <= 0 || gap >= 60*time.Minute {
				continue
			}

			savings := savingsPerSharedResource * len(shared)
			if savings > maxSharingSavingsMinutes {
				savings = maxSharingSavingsMinutes
			}

			opportunities = append(opportunities, SharingOpportunity{
				BatchIndexA:     i,
				BatchIndexB:     j,
				SharedResources: shared,
				SavingsMinutes:  savings,
			})
		}
	}
	return opportunities
}

func sharedTags(a, b []domain.ResourceTag) []domain.ResourceTag {
	set := map[domain.ResourceTag]bool{}
	for _, t := range a {
		set[t] = true
	}
	var shared []domain.ResourceTag
	for _, t := range b {
		if set[t] {
			shared = append(shared, t)
		}
	}
	return shared
}
