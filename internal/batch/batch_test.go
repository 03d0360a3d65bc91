package batch

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/generator"
	"svw.info/puzzlegen/internal/rating"
	"svw.info/puzzlegen/internal/solver"
	"svw.info/puzzlegen/internal/usecase"
	"svw.info/puzzlegen/internal/validator"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// memStore keeps saved puzzles in memory for assertions.
type memStore struct {
	mu      sync.Mutex
	puzzles map[string]*domain.Puzzle
}

func newMemStore() *memStore { return &memStore{puzzles: map[string]*domain.Puzzle{}} }

func (s *memStore) Save(ctx context.Context, p *domain.Puzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles[p.ID] = p
	return nil
}

func (s *memStore) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puzzles[id], nil
}

func (s *memStore) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	return nil, nil
}

func newService(store *memStore) *usecase.Service {
	s := solver.NewDLXSolver()
	return usecase.NewService(s, generator.New(s), validator.New(), rating.NewSinglesRater(), store)
}

func TestExpandDerivesSeedsAndTargets(t *testing.T) {
	specs := []Spec{
		{Difficulty: domain.Easy, Count: 2},
		{Difficulty: domain.Hard, Count: 1, TargetClues: 25},
	}
	jobs := Expand(specs, 100)
	require.Len(t, jobs, 3)
	assert.Equal(t, int64(100), jobs[0].Seed)
	assert.Equal(t, int64(101), jobs[1].Seed)
	assert.Equal(t, int64(102), jobs[2].Seed)
	assert.Equal(t, domain.Easy.TargetClues(), jobs[0].TargetClues)
	assert.Equal(t, 25, jobs[2].TargetClues)
}

func TestExpandZeroSeedIsTimeDerived(t *testing.T) {
	jobs := Expand([]Spec{{Difficulty: domain.Medium, Count: 1}}, 0)
	require.Len(t, jobs, 1)
	assert.NotZero(t, jobs[0].Seed)
}

func TestRunGeneratesAndSaves(t *testing.T) {
	store := newMemStore()
	r := NewRunner(newService(store), zap.NewNop(), 4)

	jobs := Expand([]Spec{{Difficulty: domain.Easy, Count: 4}}, 500)
	puzzles, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, puzzles, 4)

	seen := map[string]bool{}
	for i, p := range puzzles {
		require.NotNil(t, p, "job %d missing result", i)
		assert.NotEmpty(t, p.ID)
		assert.False(t, seen[p.ID], "duplicate puzzle ID")
		seen[p.ID] = true
		assert.GreaterOrEqual(t, p.ClueCount, p.TargetClues)
		assert.NotEmpty(t, p.Technique)
	}
	assert.Len(t, store.puzzles, 4)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(newService(newMemStore()), zap.NewNop(), 2)
	jobs := Expand([]Spec{{Difficulty: domain.Medium, Count: 3}}, 9)
	_, err := r.Run(ctx, jobs)
	require.Error(t, err)
}

func TestRunReproducible(t *testing.T) {
	r := NewRunner(newService(newMemStore()), zap.NewNop(), 1)
	jobs := Expand([]Spec{{Difficulty: domain.Medium, Count: 2}}, 77)

	first, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)
	second, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].InitialGrid, second[i].InitialGrid)
		assert.Equal(t, first[i].SolutionGrid, second[i].SolutionGrid)
	}
}
