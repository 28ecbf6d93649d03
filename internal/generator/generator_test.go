package generator

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growplan/engine/internal/domain"
)

// fakeRepo is a minimal in-memory Repository double, local to this test
// file so generator tests do not depend on the store/memory package.
type fakeRepo struct {
	mu      sync.Mutex
	gardens map[string]domain.Garden
	tasks   []domain.Task
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{gardens: map[string]domain.Garden{}}
}

func (f *fakeRepo) GetActiveGarden(ctx context.Context, id string) (domain.Garden, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.gardens[id]
	if !ok || !g.IsActive {
		return domain.Garden{}, domain.ErrGardenNotFound
	}
	return g, nil
}

func (f *fakeRepo) ListActiveGardens(ctx context.Context) ([]domain.Garden, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Garden
	for _, g := range f.gardens {
		if g.IsActive {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeRepo) TaskExistsWithTitle(ctx context.Context, gardenID, title string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.GardenID == gardenID && t.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) MostRecentTaskContainingTitle(ctx context.Context, gardenID, fragment string) (domain.Task, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var best domain.Task
	found := false
	for _, t := range f.tasks {
		if t.GardenID != gardenID || !strings.Contains(t.Title, fragment) {
			continue
		}
		if !found || t.CreatedOn.After(best.CreatedOn) {
			best = t
			found = true
		}
	}
	return best, found, nil
}

func (f *fakeRepo) CreateTask(ctx context.Context, task domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task)
	return nil
}

func freshHydroponicGarden(id string) domain.Garden {
	return domain.Garden{
		ID:            id,
		Name:          "Tent 1",
		GrowingMethod: domain.MethodHydroponic,
		PlantedOn:     time.Now(),
		CurrentStage:  domain.StageGermination,
		IsActive:      true,
	}
}

func TestGenerate_FreshGarden_CreatesGerminationTasks(t *testing.T) {
	repo := newFakeRepo()
	garden := freshHydroponicGarden("g1")
	repo.gardens[garden.ID] = garden

	gen := New(repo, nil)

	tasks, err := gen.Generate(context.Background(), garden.ID)
	require.NoError(t, err)
	require.NotEmpty(t, tasks)

	var titles []string
	for _, task := range tasks {
		titles = append(titles, task.Title)
		assert.True(t, task.AutoGenerated)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), task.DueOn, 5*time.Second)
	}
	assert.Contains(t, strings.Join(titles, "|"), "Maintain Germination Environment")
}

func TestGenerate_IsIdempotentWhenCalledImmediatelyAgain(t *testing.T) {
	repo := newFakeRepo()
	garden := freshHydroponicGarden("g1")
	repo.gardens[garden.ID] = garden

	gen := New(repo, nil)
	ctx := context.Background()

	first, err := gen.Generate(ctx, garden.ID)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := gen.Generate(ctx, garden.ID)
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestGenerate_UnknownGarden_ReturnsEmptyNoError(t *testing.T) {
	repo := newFakeRepo()
	gen := New(repo, nil)

	tasks, err := gen.Generate(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestGenerate_FrequencyRule_BlocksReissueWithinWindow(t *testing.T) {
	repo := newFakeRepo()
	garden := domain.Garden{
		ID:            "g1",
		Name:          "Tent 1",
		GrowingMethod: domain.MethodHydroponic,
		PlantedOn:     time.Now().AddDate(0, 0, -21), // first day of vegetative
		IsActive:      true,
	}
	repo.gardens[garden.ID] = garden

	repo.tasks = append(repo.tasks, domain.Task{
		GardenID:  garden.ID,
		Title:     "Weekly Nutrient Solution Change — Tent 1",
		CreatedOn: time.Now().Add(-2 * 24 * time.Hour), // 2 days ago, frequency is 7
	})

	gen := New(repo, nil)
	tasks, err := gen.Generate(context.Background(), garden.ID)
	require.NoError(t, err)

	for _, task := range tasks {
		assert.NotContains(t, task.Title, "Weekly Nutrient Solution Change")
	}
}

func TestGenerateAll_SumsCountsAcrossGardens(t *testing.T) {
	repo := newFakeRepo()
	repo.gardens["g1"] = freshHydroponicGarden("g1")
	repo.gardens["g2"] = freshHydroponicGarden("g2")
	repo.gardens["g2"] = func() domain.Garden {
		g := repo.gardens["g2"]
		g.Name = "Tent 2"
		return g
	}()

	gen := New(repo, nil)
	total, err := gen.GenerateAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(repo.tasks), total)
	assert.Greater(t, total, 0)
}
