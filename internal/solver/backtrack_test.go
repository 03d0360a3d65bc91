package solver

import (
	"context"
	"testing"
	"time"

	"svw.info/puzzlegen/internal/domain"
)

// A classic, solvable Sudoku (0 = empty).
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestBacktrackingSolveUnder1s(t *testing.T) {
	in := &domain.Board{Values: sample}
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if !out.Values.Full() {
		t.Fatalf("solution has empty cells")
	}
	if _, ok := buildMasks(&out.Values); !ok {
		t.Fatalf("solution violates constraints")
	}
	// the solution must extend the givens
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sample[r][c] != 0 && out.Values[r][c] != sample[r][c] {
				t.Fatalf("given overwritten at r=%d c=%d", r, c)
			}
		}
	}
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestCountSolutionsUniquePuzzle(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx := context.Background()

	sols, _, err := s.CountSolutions(ctx, &domain.Board{Values: sample}, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if len(sols) != 1 {
		t.Fatalf("expected exactly 1 solution, got %d", len(sols))
	}
	unique, _, err := s.Unique(ctx, &domain.Board{Values: sample})
	if err != nil || !unique {
		t.Fatalf("Unique = %v, err = %v; want true", unique, err)
	}
}

func TestCountSolutionsHaltsAtLimit(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx := context.Background()

	// an empty board has a vast number of completions; the limit must
	// bound the enumeration
	for _, limit := range []int{1, 2, 3} {
		sols, _, err := s.CountSolutions(ctx, &domain.Board{}, limit)
		if err != nil {
			t.Fatalf("CountSolutions(limit=%d) failed: %v", limit, err)
		}
		if len(sols) != limit {
			t.Fatalf("limit=%d: got %d solutions", limit, len(sols))
		}
	}
	unique, _, err := s.Unique(ctx, &domain.Board{})
	if err != nil || unique {
		t.Fatalf("empty board reported unique")
	}
}

func TestCountSolutionsDistinct(t *testing.T) {
	s := NewBacktrackingSolver()
	sols, _, err := s.CountSolutions(context.Background(), &domain.Board{}, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if len(sols) == 2 && sols[0] == sols[1] {
		t.Fatalf("enumerated the same completion twice")
	}
}

func TestCountSolutionsBadLimit(t *testing.T) {
	s := NewBacktrackingSolver()
	if _, _, err := s.CountSolutions(context.Background(), &domain.Board{Values: sample}, 0); err == nil {
		t.Fatalf("expected error for limit 0")
	}
}

func TestCountSolutionsContradictoryGivens(t *testing.T) {
	bad := sample
	bad[0][2] = 5 // duplicates the 5 in row 0
	s := NewBacktrackingSolver()
	sols, _, err := s.CountSolutions(context.Background(), &domain.Board{Values: bad}, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if len(sols) != 0 {
		t.Fatalf("contradictory grid has %d solutions", len(sols))
	}
}

func TestSolveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewBacktrackingSolver()
	if _, _, err := s.Solve(ctx, &domain.Board{}); err == nil {
		t.Fatalf("expected error on canceled context")
	}
}
