package notifier

import "github.com/growplan/engine/internal/domain"

// maxDeliveriesPerCycle caps how many queued events a single scan cycle
// drains, so one noisy cycle cannot starve the ticker loop.
const maxDeliveriesPerCycle = 5

// pendingEvent is a candidate notification waiting on either delivery or a
// quiet-hours window to close.
type pendingEvent struct {
	candidate candidate
	delayed   bool
}

// deliveryQueue is the Worker's in-memory holding area for notifications
// produced by a scan but not yet shown, either because the cycle's
// delivery budget was exhausted or because quiet hours deferred them.
type deliveryQueue struct {
	events []pendingEvent
}

func newDeliveryQueue() *deliveryQueue {
	return &deliveryQueue{}
}

// enqueue adds freshly scanned candidates to the back of the queue.
func (q *deliveryQueue) enqueue(cands []candidate) {
	for _, c := range cands {
		q.events = append(q.events, pendingEvent{candidate: c})
	}
}

// drain pops up to maxDeliveriesPerCycle events for delivery, skipping (and
// re-queuing) any whose priority is not urgent enough to cross quiet hours
// while currentHour falls inside the quiet window. Non-critical events
// found quiet are marked delayed and pushed to the back.
func (q *deliveryQueue) drain(prefs domain.UserPreferences, currentHour int) []candidate {
	var toSend []candidate
	var requeue []pendingEvent

	for _, ev := range q.events {
		if len(toSend) >= maxDeliveriesPerCycle {
			requeue = append(requeue, ev)
			continue
		}

		if prefs.InQuietHours(currentHour) && ev.candidate.Priority != domain.PriorityCritical {
			ev.delayed = true
			requeue = append(requeue, ev)
			continue
		}

		toSend = append(toSend, ev.candidate)
	}

	q.events = requeue
	return toSend
}

func (q *deliveryQueue) len() int {
	return len(q.events)
}
