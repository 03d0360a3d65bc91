package ports

import (
	"context"
	"time"

	"svw.info/puzzlegen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a board and can bound-count its completions.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	// CountSolutions enumerates completions of b, stopping as soon as
	// limit grids have been found. Callers testing uniqueness pass 2.
	CountSolutions(ctx context.Context, b *domain.Board, limit int) ([]domain.Grid, Stats, error)
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Generator creates puzzles with a unique solution at a target clue count.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty, targetClues int) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
	Complete(ctx context.Context, b *domain.Board) bool
}

// Rater classifies the solving technique a puzzle requires.
type Rater interface {
	Rate(ctx context.Context, b *domain.Board) (domain.Technique, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
