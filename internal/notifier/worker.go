package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/growplan/engine/internal/domain"
)

// defaultScanInterval is the ticker cadence for each of the four scans.
const defaultScanInterval = 60 * time.Second

// Worker runs the Notifier's scan/queue/deliver cycle on a ticker: one
// goroutine per process, a context for cancellation, and a done channel
// for explicit Stop().
type Worker struct {
	repo         Repository
	transport    Transport
	log          *slog.Logger
	scanInterval time.Duration
	queue        *deliveryQueue
	mu           sync.Mutex
	done         chan struct{}
	wg           sync.WaitGroup
}

// Option configures a Worker.
type Option func(*Worker)

// WithScanInterval overrides the default 60-second scan cadence.
func WithScanInterval(d time.Duration) Option {
	return func(w *Worker) { w.scanInterval = d }
}

// WithTransport overrides the default SlogTransport.
func WithTransport(t Transport) Option {
	return func(w *Worker) { w.transport = t }
}

// New constructs a Worker. log may be nil, in which case slog.Default()
// is used and also backs the default Transport.
func New(repo Repository, log *slog.Logger, opts ...Option) *Worker {
	if log == nil {
		log = slog.Default()
	}
	w := &Worker{
		repo:         repo,
		transport:    NewSlogTransport(log),
		log:          log,
		scanInterval: defaultScanInterval,
		queue:        newDeliveryQueue(),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start runs the scan/deliver loop until ctx is cancelled or Stop is
// called. Runs one cycle immediately on startup, then on every tick.
func (w *Worker) Start(ctx context.Context) error {
	w.log.InfoContext(ctx, "notifier worker started", "scan_interval", w.scanInterval)

	if err := w.RunCycleOnce(ctx); err != nil {
		w.log.WarnContext(ctx, "notifier: startup cycle failed", "error", err)
	}

	ticker := time.NewTicker(w.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.wg.Add(1)
			go func() {
				defer w.wg.Done()
				if err := w.RunCycleOnce(ctx); err != nil {
					w.log.WarnContext(ctx, "notifier: cycle failed", "error", err)
				}
			}()
		case <-ctx.Done():
			w.log.InfoContext(context.Background(), "notifier worker context cancelled, shutting down")
			w.wg.Wait()
			return ctx.Err()
		case <-w.done:
			w.log.Info("notifier worker stopped")
			w.wg.Wait()
			return nil
		}
	}
}

// Stop gracefully stops the worker.
func (w *Worker) Stop() error {
	close(w.done)
	return nil
}

// RunCycleOnce runs all four scans, enqueues their candidates, then
// drains and delivers whatever the current hour and delivery budget
// allow. Exposed directly for tests and for a one-shot CLI invocation.
func (w *Worker) RunCycleOnce(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	prefs, err := w.repo.GetPreferences(ctx)
	if err != nil {
		return fmt.Errorf("notifier: load preferences: %w", err)
	}
	if !prefs.Enabled {
		return nil
	}

	now := time.Now()
	var fresh []candidate

	if prefs.RemindersEnabled {
		fresh = append(fresh, scanReminders(ctx, w.repo, prefs, now, w.log)...)
	}
	if prefs.OverdueEnabled {
		fresh = append(fresh, scanOverdue(ctx, w.repo, now, w.log)...)
	}
	if prefs.GrowthEnabled {
		fresh = append(fresh, scanGrowthMilestones(ctx, w.repo, now, w.log)...)
	}
	if prefs.ResourceEnabled {
		fresh = append(fresh, scanResourceAlerts(ctx, w.repo, w.log)...)
	}

	w.queue.enqueue(fresh)

	toSend := w.queue.drain(prefs, now.Hour())
	for _, c := range toSend {
		if err := w.deliver(ctx, c); err != nil {
			w.log.WarnContext(ctx, "notifier: delivery failed", "type", c.Type, "error", err)
		}
	}

	return nil
}

// SendManual delivers a one-off notification outside the scan cycle,
// still subject to persistence but not to quiet hours or dedupe.
func (w *Worker) SendManual(ctx context.Context, title, body string, priority domain.TaskPriority) error {
	return w.deliver(ctx, candidate{
		Type:     domain.NotificationSystemAlert,
		Title:    title,
		Body:     body,
		Priority: priority,
	})
}

// deliver shows the notification via the configured Transport and
// persists a record regardless of transport outcome, per the contract
// that fallback delivery must still be recorded. Candidates whose record
// was already persisted atomically with another store write (see
// scanGrowthMilestones/RecordGrowthMilestone) are shown only, never
// persisted a second time.
func (w *Worker) deliver(ctx context.Context, c candidate) error {
	showErr := w.transport.Show(ctx, c.Title, c.Body, durationClassSeconds(c.Priority))
	if showErr != nil {
		w.log.WarnContext(ctx, "notifier: transport failed, falling back to log delivery",
			"type", c.Type, "error", showErr)
		_ = NewSlogTransport(w.log).Show(ctx, c.Title, c.Body, durationClassSeconds(c.Priority))
	}

	if c.recorded {
		return nil
	}

	id, err := newID()
	if err != nil {
		return fmt.Errorf("notifier: mint id: %w", err)
	}

	record := domain.NotificationRecord{
		ID:       id,
		Type:     c.Type,
		Title:    c.Title,
		Body:     c.Body,
		Priority: c.Priority,
		TaskID:   c.TaskID,
		GardenID: c.GardenID,
		SentOn:   time.Now(),
	}
	if err := w.repo.CreateNotification(ctx, record); err != nil {
		return fmt.Errorf("notifier: persist record: %w", err)
	}
	return nil
}
