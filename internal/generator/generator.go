// Package generator produces Sudoku puzzles with verified unique
// solutions. A complete grid is filled by randomized backtracking, then
// clues are removed in random order, keeping any cell whose removal
// would admit a second solution. The final puzzle is re-solved and
// compared against the generating grid before it is returned.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/ports"
)

const (
	// MinTargetClues is the theoretical minimum for a unique-solution
	// Sudoku. Lower targets can never be met, so they are rejected
	// outright instead of silently overshooting.
	MinTargetClues = 17
	MaxTargetClues = 81

	// DefaultMaxAttempts bounds full regeneration after a verification
	// failure. Verification failing at all indicates a solver bug, so
	// the bound exists to fail loudly instead of looping forever.
	DefaultMaxAttempts = 10
)

var (
	ErrInvalidTargetClues = errors.New("target clues must be between 17 and 81")
	ErrGenerationFailed   = errors.New("failed to generate verified puzzle")
)

// Engine creates puzzles with a unique solution using a provided Solver
// for uniqueness checks.
type Engine struct {
	Solver      ports.Solver
	MaxAttempts int
}

// New wires an engine that uses the given solver for uniqueness checks.
func New(s ports.Solver) *Engine {
	return &Engine{Solver: s, MaxAttempts: DefaultMaxAttempts}
}

// Generate creates a puzzle from seed with the given difficulty label
// and target clue count. The returned puzzle retains at least
// targetClues givens; it keeps more when removals had to be rejected to
// preserve uniqueness.
func (g *Engine) Generate(ctx context.Context, seed int64, diff domain.Difficulty, targetClues int) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if targetClues < MinTargetClues || targetClues > MaxTargetClues {
		return nil, ports.Stats{}, fmt.Errorf("%w: got %d", ErrInvalidTargetClues, targetClues)
	}
	rng := rand.New(rand.NewSource(seed))
	attempts := g.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	nodes := 0
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		var solution domain.Grid
		if !fillRandom(ctx, rng, &solution) {
			// cannot happen from an empty grid unless canceled; retry
			continue
		}
		puzzle, clues, st := g.carve(ctx, rng, solution, targetClues)
		nodes += st.Nodes

		vn, err := g.verify(ctx, &puzzle, &solution)
		nodes += vn
		if err != nil {
			if ctx.Err() != nil {
				return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
			}
			// verification failure: regenerate from a fresh grid
			continue
		}

		p := &domain.Puzzle{
			Seed:         seed,
			Difficulty:   diff,
			InitialGrid:  puzzle,
			SolutionGrid: solution,
			ClueCount:    clues,
			TargetClues:  targetClues,
			CreatedAt:    time.Now().UnixNano(),
		}
		return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
	}
	return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)},
		fmt.Errorf("%w after %d attempts", ErrGenerationFailed, attempts)
}

// carve removes cells from a copy of solution in random position order,
// reverting any removal that breaks uniqueness. It stops as soon as the
// live clue count reaches target.
func (g *Engine) carve(ctx context.Context, rng *rand.Rand, solution domain.Grid, target int) (domain.Grid, int, ports.Stats) {
	puz := solution
	clues := 81
	nodes := 0
	start := time.Now()

	positions := rng.Perm(81)
	for _, pos := range positions {
		if clues <= target || ctx.Err() != nil {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		if old == 0 {
			continue
		}
		puz[r][c] = 0
		unique, st, _ := g.Solver.Unique(ctx, &domain.Board{Values: puz})
		nodes += st.Nodes
		if unique {
			clues--
		} else {
			puz[r][c] = old
		}
	}
	return puz, clues, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}

// verify checks that puzzle has exactly one completion and that it is
// solution, cell for cell. Removal preserving uniqueness should make
// this impossible to fail; it guards against solver defects.
func (g *Engine) verify(ctx context.Context, puzzle, solution *domain.Grid) (int, error) {
	sols, st, err := g.Solver.CountSolutions(ctx, &domain.Board{Values: *puzzle}, 2)
	if err != nil {
		return st.Nodes, err
	}
	if len(sols) != 1 {
		return st.Nodes, fmt.Errorf("expected unique solution, found %d", len(sols))
	}
	if sols[0] != *solution {
		return st.Nodes, errors.New("completion differs from generating grid")
	}
	return st.Nodes, nil
}
