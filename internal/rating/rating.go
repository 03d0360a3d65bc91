// Package rating classifies puzzles by the coarsest technique that
// solves them: naked singles alone, or backtracking search. It is not a
// graded difficulty score.
package rating

import (
	"context"

	"svw.info/puzzlegen/internal/domain"
)

type SinglesRater struct{}

func NewSinglesRater() *SinglesRater { return &SinglesRater{} }

// Rate repeatedly fills cells with a sole remaining candidate. If that
// alone completes the board the puzzle falls to singles; otherwise it
// requires search.
func (ra *SinglesRater) Rate(ctx context.Context, b *domain.Board) (domain.Technique, error) {
	grid := b.Values
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		progressed := false
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if grid[r][c] != 0 {
					continue
				}
				if v, ok := soleCandidate(&grid, r, c); ok {
					grid[r][c] = v
					progressed = true
				}
			}
		}
		if !progressed {
			break
		}
	}
	if grid.Full() {
		return domain.TechniqueSingles, nil
	}
	return domain.TechniqueSearch, nil
}

func soleCandidate(g *domain.Grid, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if allowed(g, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}

func allowed(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
