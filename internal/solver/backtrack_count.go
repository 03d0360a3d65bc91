package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/ports"
)

var errBadLimit = errors.New("solution limit must be positive")

// CountSolutions enumerates completions of b, halting the instant the
// limit is reached. The early exit bounds the cost of multi-solution
// grids: uniqueness checks pass limit 2 and never pay for a full count.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, b *domain.Board, limit int) ([]domain.Grid, ports.Stats, error) {
	start := time.Now()
	if limit <= 0 {
		return nil, ports.Stats{}, errBadLimit
	}
	grid := b.Values
	m, ok := buildMasks(&grid)
	if !ok {
		return nil, ports.Stats{Duration: time.Since(start)}, nil
	}
	nodes := 0
	found := make([]domain.Grid, 0, limit)

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return true // stop search
		}
		r, c, empty := findEmpty(&grid)
		if !empty {
			found = append(found, grid)
			return len(found) >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if m.allowed(r, c, v) {
				grid[r][c] = v
				m.place(r, c, v)
				stop := dfs()
				grid[r][c] = 0
				m.remove(r, c, v)
				if stop {
					return true
				}
			}
		}
		return false
	}
	_ = dfs()
	return found, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}

// Unique reports whether b has exactly one completion.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	sols, st, err := s.CountSolutions(ctx, b, 2)
	return len(sols) == 1, st, err
}
