package coordinator

import (
	"sort"
	"time"

	"github.com/growplan/engine/internal/domain"
)

// spaceConflictGap is the minimum gap physical-presence tasks at different
// locations must leave between them before a space conflict is raised.
const spaceConflictGap = 15 * time.Minute

// spaceConflictShift is how far the later task is shifted to resolve a
// space conflict (step 4).
const spaceConflictShift = 15 * time.Minute

type resourceOccurrence struct {
	taskID   string
	start    time.Time
	end      time.Time
	flexMins int
}

// detectResourceConflicts scans, per resource tag, occurrences sorted by
// start time and flags adjacent pairs whose intervals overlap (step 3,
// resource conflict).
func detectResourceConflicts(tasks []*workingTask) []Conflict {
	byResource := map[domain.ResourceTag][]resourceOccurrence{}

	for _, wt := range tasks {
		for _, req := range wt.requirements {
			byResource[req.Tag] = append(byResource[req.Tag], resourceOccurrence{
				taskID:   wt.task.ID,
				start:    wt.dueOn,
				end:      wt.dueOn.Add(time.Duration(req.DurationMinutes) * time.Minute),
				flexMins: req.FlexibilityMins,
			})
		}
	}

	var conflicts []Conflict
	for resource, occurrences := range byResource {
		sort.Slice(occurrences, func(i, j int) bool { return occurrences[i].start.Before(occurrences[j].start) })

		for i := 0; i < len(occurrences)-1; i++ {
			current := occurrences[i]
			next := occurrences[i+1]
			if current.end.After(next.start) {
				overlap := current.end.Sub(next.start).Minutes()
				flex := current.flexMins
				if next.flexMins < flex {
					flex = next.flexMins
				}
				conflicts = append(conflicts, Conflict{
					Kind:           ConflictResource,
					TaskAID:        current.taskID,
					TaskBID:        next.taskID,
					Resource:       resource,
					OverlapMinutes: overlap,
					MinFlexMinutes: flex,
				})
			}
		}
	}
	return conflicts
}

// detectSpaceConflicts flags physical-presence tasks at different non-null
// locations with less than a 15-minute gap between them (step 3, space
// conflict).
func detectSpaceConflicts(tasks []*workingTask) []Conflict {
	var physical []*workingTask
	for _, wt := range tasks {
		if wt.task.Type.RequiresPhysicalPresence() {
			physical = append(physical, wt)
		}
	}

	sort.Slice(physical, func(i, j int) bool { return physical[i].dueOn.Before(physical[j].dueOn) })

	var conflicts []Conflict
	for i := 0; i < len(physical)-1; i++ {
		current := physical[i]
		next := physical[i+1]

		if current.location == nil || next.location == nil {
			continue
		}
		if *current.location == *next.location {
			continue
		}

		gap := next.dueOn.Sub(current.endsAt())
		if gap < spaceConflictGap {
			conflicts = append(conflicts, Conflict{
				Kind:    ConflictSpace,
				TaskAID: current.task.ID,
				TaskBID: next.task.ID,
			})
		}
	}
	return conflicts
}
