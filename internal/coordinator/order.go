package coordinator

import (
	"sort"
	"time"

	"github.com/growplan/engine/internal/domain"
)

// executionStartHour is the wall-clock hour batches begin executing at.
const executionStartHour = 8

// interBatchBuffer is inserted between consecutive batches' wall-clock
// start times.
const interBatchBuffer = 15 * time.Minute

// orderExecution implements step 7: sorts batches by combined
// efficiency/urgency score and assigns wall-clock start times beginning at
// 08:00 local with a buffer between batches. Returns batches in their new
// execution order with ScheduledStart populated.
func orderExecution(batches []domain.Batch, now time.Time) []domain.Batch {
	type scored struct {
		batch domain.Batch
		score float64
	}

	scoredBatches := make([]scored, len(batches))
	for i, b := range batches {
		scoredBatches[i] = scored{batch: b, score: 0.6*b.Efficiency + 0.4*urgency(b)}
	}

	sort.SliceStable(scoredBatches, func(i, j int) bool { return scoredBatches[i].score > scoredBatches[j].score })

	start := time.Date(now.Year(), now.Month(), now.Day(), executionStartHour, 0, 0, 0, now.Location())
	ordered := make([]domain.Batch, len(scoredBatches))
	for i, s := range scoredBatches {
		b := s.batch
		b.ScheduledStart = start
		ordered[i] = b
		start = start.Add(b.TotalDuration + interBatchBuffer)
	}
	return ordered
}

// urgency is the mean per-task priority weight within a batch.
func urgency(b domain.Batch) float64 {
	if len(b.Tasks) == 0 {
		return 0
	}
	var sum float64
	for _, t := range b.Tasks {
		sum += t.Priority.Weight()
	}
	return sum / float64(len(b.Tasks))
}
