package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/ports"
)

var errNoSolution = errors.New("unsolvable or canceled")

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	m, ok := buildMasks(&grid)
	if !ok {
		return nil, ports.Stats{Duration: time.Since(start)}, errNoSolution
	}
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, empty := findEmpty(&grid)
		if !empty {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if m.allowed(r, c, v) {
				grid[r][c] = v
				m.place(r, c, v)
				if dfs() {
					return true
				}
				grid[r][c] = 0
				m.remove(r, c, v)
			}
		}
		return false
	}
	if !dfs() {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errNoSolution
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
