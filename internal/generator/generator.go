// Package generator implements the Task Generator: for one garden, it
// synthesises the tasks that should exist today given its growth stage,
// age, growing method, and prior task history, enforcing each template's
// frequency or one-shot idempotency rule.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/growplan/engine/internal/domain"
	"github.com/growplan/engine/internal/engineerrors"
	"github.com/growplan/engine/internal/refdata"
	"github.com/growplan/engine/internal/templates"
)

// dueOffset is the fixed horizon a freshly synthesised task is due in.
const dueOffset = 24 * time.Hour

// maxConcurrentGenerate bounds the fan-out GenerateAll uses across gardens.
const maxConcurrentGenerate = 8

// Generator synthesises tasks from the template catalogue for one garden at
// a time, serialising concurrent calls per garden so two racing requests
// for the same garden can never double-create a task.
type Generator struct {
	repo  Repository
	log   *slog.Logger
	locks sync.Map // garden ID -> *sync.Mutex
}

// New constructs a Generator backed by repo. log may be nil, in which case
// slog.Default() is used.
func New(repo Repository, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{repo: repo, log: log}
}

func (g *Generator) lockFor(gardenID string) *sync.Mutex {
	m, _ := g.locks.LoadOrStore(gardenID, &sync.Mutex{})
	return m.(*sync.Mutex)
}

// Generate synthesises and persists the tasks that should exist for
// gardenID right now. A garden that does not exist (or is inactive) yields
// an empty result with no error, per the NotFound policy in §7. Per-template
// synthesis failures are isolated: a failed template does not abort the
// rest of the batch.
func (g *Generator) Generate(ctx context.Context, gardenID string) ([]domain.Task, error) {
	lock := g.lockFor(gardenID)
	lock.Lock()
	defer lock.Unlock()

	garden, err := g.repo.GetActiveGarden(ctx, gardenID)
	if err != nil {
		if engineerrors.IsNotFound(err) || errors.Is(err, domain.ErrGardenNotFound) {
			g.log.InfoContext(ctx, "generate: garden not found, skipping", "garden_id", gardenID)
			return nil, nil
		}
		return nil, fmt.Errorf("generate: loading garden %s: %w", gardenID, err)
	}

	now := time.Now()
	daysSincePlanted := garden.DaysSincePlanted(now)
	stage := domain.StageForDaysSincePlanted(daysSincePlanted)
	daysInStage := domain.DaysInStage(daysSincePlanted)

	candidates := templates.ForMethod(garden.GrowingMethod)

	var created []domain.Task
	for _, tpl := range candidates {
		eligible, err := g.eligible(ctx, garden, tpl, stage, daysInStage, now)
		if err != nil {
			g.log.WarnContext(ctx, "generate: eligibility check failed, skipping template",
				"garden_id", gardenID, "template", tpl.Name, "error", err)
			continue
		}
		if !eligible {
			continue
		}

		task := synthesize(garden, tpl, now)
		if err := g.repo.CreateTask(ctx, task); err != nil {
			return created, fmt.Errorf("generate: persisting task %q for garden %s: %w", task.Title, gardenID, err)
		}
		created = append(created, task)
	}

	g.log.InfoContext(ctx, "generate: completed", "garden_id", gardenID, "created", len(created))
	return created, nil
}

// GenerateAll invokes Generate for every active garden, bounding
// concurrency across gardens, and returns the total number of tasks
// created.
func (g *Generator) GenerateAll(ctx context.Context) (int, error) {
	gardens, err := g.repo.ListActiveGardens(ctx)
	if err != nil {
		return 0, fmt.Errorf("generateAll: listing active gardens: %w", err)
	}

	var total int
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentGenerate)

	for _, garden := range gardens {
		gardenID := garden.ID
		eg.Go(func() error {
			created, err := g.Generate(egCtx, gardenID)
			if err != nil {
				return err
			}
			mu.Lock()
			total += len(created)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return total, fmt.Errorf("generateAll: %w", err)
	}
	return total, nil
}

// eligible implements the four-part eligibility test from the template
// contract.
func (g *Generator) eligible(ctx context.Context, garden domain.Garden, tpl templates.Template, stage domain.GrowthStage, daysInStage int, now time.Time) (bool, error) {
	if tpl.Stage != stage {
		return false, nil
	}
	if daysInStage < tpl.DaysFromStageStart {
		return false, nil
	}

	if tpl.FrequencyDays > 0 {
		prior, ok, err := g.repo.MostRecentTaskContainingTitle(ctx, garden.ID, tpl.Name)
		if err != nil {
			return false, fmt.Errorf("checking prior occurrences of %q: %w", tpl.Name, err)
		}
		if ok {
			elapsed := now.Sub(prior.CreatedOn)
			if elapsed < time.Duration(tpl.FrequencyDays)*24*time.Hour {
				return false, nil
			}
		}
		return true, nil
	}

	title := taskTitle(tpl.Name, garden.Name)
	exists, err := g.repo.TaskExistsWithTitle(ctx, garden.ID, title)
	if err != nil {
		return false, fmt.Errorf("checking one-shot existence of %q: %w", title, err)
	}
	return !exists, nil
}

func taskTitle(templateName, gardenName string) string {
	return fmt.Sprintf("%s — %s", templateName, gardenName)
}

func synthesize(garden domain.Garden, tpl templates.Template, now time.Time) domain.Task {
	description := tpl.Description + "\n\nInstructions: " + tpl.Instructions
	if len(tpl.RequiredMaterials) > 0 {
		description += "\n[Required materials: " + strings.Join(tpl.RequiredMaterials, ", ") + "]"
	}
	if guide, ok := refdata.Lookup(garden.GrowingMethod); ok {
		description += "\n" + guide.Summary
	}
	description += fmt.Sprintf("\nEstimated duration: %d minutes", tpl.DurationMinutes)

	id, err := uuid.NewV7()
	if err != nil {
		// uuid.NewV7 only fails if the runtime's random source is broken;
		// fall back to a v4 ID rather than fail task creation outright.
		id = uuid.New()
	}

	return domain.Task{
		ID:                id.String(),
		GardenID:          garden.ID,
		Title:             taskTitle(tpl.Name, garden.Name),
		Description:       description,
		Type:              tpl.Type,
		Priority:          tpl.Priority,
		DueOn:             now.Add(dueOffset),
		EstimatedDuration: time.Duration(tpl.DurationMinutes) * time.Minute,
		AutoGenerated:     true,
		CreatedOn:         now,
	}
}
