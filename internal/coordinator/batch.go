package coordinator

import (
	"sort"
	"time"

	"github.com/growplan/engine/internal/domain"
)

// maxBatchableCandidates is the number of top-scoring candidates added to a
// seed's batch per round (step 5.4): 4 candidates + the seed = 5 total.
const maxBatchableCandidates = 4

// batchTimeWindow is how close two tasks' due times must be to be
// batchable at all (step 5.2).
const batchTimeWindow = 120 * time.Minute

// createBatches greedily groups workingTasks into batches (step 5) and
// computes each batch's metadata (step 6).
func createBatches(tasks []*workingTask) []domain.Batch {
	remaining := make([]*workingTask, len(tasks))
	copy(remaining, tasks)

	var batches []domain.Batch
	for len(remaining) > 0 {
		sort.SliceStable(remaining, func(i, j int) bool {
			pi, pj := remaining[i].task.Priority.Rank(), remaining[j].task.Priority.Rank()
			if pi != pj {
				return pi < pj // lower rank = more urgent = sorts first
			}
			return remaining[i].dueOn.Before(remaining[j].dueOn)
		})

		seed := remaining[0]
		rest := remaining[1:]

		var candidates []*workingTask
		for _, t := range rest {
			if batchable(seed, t) {
				candidates = append(candidates, t)
			}
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return score(seed, candidates[i]) > score(seed, candidates[j])
		})

		take := candidates
		if len(take) > maxBatchableCandidates {
			take = take[:maxBatchableCandidates]
		}

		members := append([]*workingTask{seed}, take...)
		batches = append(batches, buildBatch(members))

		assigned := map[string]bool{seed.task.ID: true}
		for _, t := range take {
			assigned[t.task.ID] = true
		}
		var next []*workingTask
		for _, t := range remaining {
			if !assigned[t.task.ID] {
				next = append(next, t)
			}
		}
		remaining = next
	}
	return batches
}

// batchable implements step 5.2: same location (or seed's location is
// null), at least one shared resource tag, and due-on within 120 minutes.
func batchable(seed, other *workingTask) bool {
	if seed.location != nil && other.location != nil && *seed.location != *other.location {
		return false
	}

	if !shareResource(seed, other) {
		return false
	}

	diff := other.dueOn.Sub(seed.dueOn)
	if diff < 0 {
		diff = -diff
	}
	return diff <= batchTimeWindow
}

func shareResource(a, b *workingTask) bool {
	tags := map[domain.ResourceTag]bool{}
	for _, r := range a.requirements {
		tags[r.Tag] = true
	}
	for _, r := range b.requirements {
		if tags[r.Tag] {
			return true
		}
	}
	return false
}

// score implements step 5.3's compatibility scoring formula.
func score(seed, other *workingTask) float64 {
	var s float64

	if seed.task.GardenID == other.task.GardenID {
		s += 10
	}
	if seed.location != nil && other.location != nil && *seed.location == *other.location {
		s += 5
	}

	s += float64(sharedResourceCount(seed, other)) * 2

	diff := other.dueOn.Sub(seed.dueOn).Minutes()
	if diff < 0 {
		diff = -diff
	}
	proximity := 60 - diff
	if proximity < 0 {
		proximity = 0
	}
	s += proximity * 0.1

	s += compatibilityBonusFor(seed.task.Type, other.task.Type)
	return s
}

func sharedResourceCount(a, b *workingTask) int {
	tags := map[domain.ResourceTag]bool{}
	for _, r := range a.requirements {
		tags[r.Tag] = true
	}
	count := 0
	seen := map[domain.ResourceTag]bool{}
	for _, r := range b.requirements {
		if tags[r.Tag] && !seen[r.Tag] {
			count++
			seen[r.Tag] = true
		}
	}
	return count
}

// buildBatch computes a batch's metadata (step 6) from its member tasks.
func buildBatch(members []*workingTask) domain.Batch {
	var totalDuration time.Duration
	resourceSet := map[domain.ResourceTag]bool{}
	gardenSet := map[string]bool{}
	earliest := members[0].dueOn
	tasks := make([]domain.Task, 0, len(members))

	for _, m := range members {
		totalDuration += m.task.EstimatedDuration
		gardenSet[m.task.GardenID] = true
		if m.dueOn.Before(earliest) {
			earliest = m.dueOn
		}
		for _, r := range m.requirements {
			resourceSet[r.Tag] = true
		}
		task := m.task
		task.DueOn = m.dueOn
		tasks = append(tasks, task)
	}

	var sharedResources []domain.ResourceTag
	for tag := range resourceSet {
		sharedResources = append(sharedResources, tag)
	}
	sort.Slice(sharedResources, func(i, j int) bool { return sharedResources[i] < sharedResources[j] })

	var gardens []string
	for id := range gardenSet {
		gardens = append(gardens, id)
	}
	sort.Strings(gardens)

	efficiency := 50.0 +
		10.0*float64(len(members)) +
		5.0*float64(len(sharedResources))
	if len(gardenSet) == 1 {
		efficiency += 15.0
	}
	totalMinutes := totalDuration.Minutes()
	if totalMinutes > 120 {
		efficiency -= (totalMinutes - 120) * 0.1
	}
	if efficiency < 0 {
		efficiency = 0
	}
	if efficiency > 100 {
		efficiency = 100
	}

	return domain.Batch{
		Tasks:           tasks,
		TotalDuration:   totalDuration,
		SharedResources: sharedResources,
		OptimalStart:    earliest,
		Efficiency:      efficiency,
		Gardens:         gardens,
	}
}
