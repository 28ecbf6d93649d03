package coordinator

import (
	"time"

	"github.com/growplan/engine/internal/domain"
)

// ConflictKind distinguishes the two conflict classes the Coordinator
// detects in step 3.
type ConflictKind string

const (
	ConflictResource ConflictKind = "resource"
	ConflictSpace    ConflictKind = "space"
)

// Conflict records one detected scheduling conflict between exactly two
// tasks, before resolution shifts either of them.
type Conflict struct {
	Kind             ConflictKind
	TaskAID          string
	TaskBID          string
	Resource         domain.ResourceTag // zero value for ConflictSpace
	OverlapMinutes   float64
	MinFlexMinutes   int
}

// SharingOpportunity is an emitted hint (step 8): two batches (not
// necessarily consecutive) that share a resource and sit close enough in
// time to combine setup/cleanup.
type SharingOpportunity struct {
	BatchIndexA      int
	BatchIndexB      int
	SharedResources  []domain.ResourceTag
	SavingsMinutes   int
}

// CoordinationResult is the Daily Coordinator's transient output.
type CoordinationResult struct {
	Batches              []domain.Batch
	Conflicts            []Conflict
	SharingOpportunities []SharingOpportunity
	TimeSavingsMinutes   int
	Efficiency           float64
}

// workingTask is the Coordinator's mutable per-run copy of a pending task:
// DueOn may be shifted during conflict resolution (step 4), which never
// touches the store.
type workingTask struct {
	task         domain.Task
	location     *string
	dueOn        time.Time
	requirements []domain.ResourceRequirement
}

func (w workingTask) endsAt() time.Time {
	return w.dueOn.Add(w.task.EstimatedDuration)
}
