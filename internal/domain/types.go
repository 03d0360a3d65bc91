package domain

// Grid is a 9x9 Sudoku grid. 0 marks an empty cell, 1-9 a placed digit.
// Grids are value types: assignment copies, so callers never share
// mutable state by accident.
type Grid [9][9]uint8

// ClueCount returns the number of non-zero cells.
func (g *Grid) ClueCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Full reports whether every cell holds a digit.
func (g *Grid) Full() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// Board holds current values and which cells are fixed givens.
type Board struct {
	Values Grid       `json:"board"`
	Fixed  [9][9]bool `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a generated Sudoku with its solution and metadata.
// InitialGrid is the puzzle as presented; every non-zero cell equals
// the same position in SolutionGrid, and InitialGrid has exactly one
// completion: SolutionGrid.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`

	InitialGrid  Grid `json:"initialGrid"`
	SolutionGrid Grid `json:"solutionGrid"`

	// ClueCount is the number of givens actually retained. It may
	// exceed TargetClues when removals were rejected to preserve
	// uniqueness; it never falls below.
	ClueCount   int `json:"clueCount"`
	TargetClues int `json:"targetClues"`

	// Technique records the coarse solving class (singles vs search),
	// not a graded difficulty score.
	Technique Technique `json:"technique,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	ClueCount  int        `json:"clueCount"`
	CreatedAt  int64      `json:"createdAt"`
}
