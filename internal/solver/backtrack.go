package solver

import "svw.info/puzzlegen/internal/domain"

// BacktrackingSolver is a straightforward recursive solver. It keeps
// digit bitmasks per row/column/box so constraint checks are O(1)
// inside the search loop.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// masks tracks which digits are already used per unit. Bit v is set
// when digit v (1-9) is present.
type masks struct {
	rows, cols, boxes [9]uint16
}

func boxOf(r, c int) int { return (r/3)*3 + c/3 }

func buildMasks(g *domain.Grid) (masks, bool) {
	var m masks
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			bit := uint16(1) << v
			b := boxOf(r, c)
			if m.rows[r]&bit != 0 || m.cols[c]&bit != 0 || m.boxes[b]&bit != 0 {
				return m, false // contradictory givens
			}
			m.rows[r] |= bit
			m.cols[c] |= bit
			m.boxes[b] |= bit
		}
	}
	return m, true
}

func (m *masks) allowed(r, c int, v uint8) bool {
	bit := uint16(1) << v
	return m.rows[r]&bit == 0 && m.cols[c]&bit == 0 && m.boxes[boxOf(r, c)]&bit == 0
}

func (m *masks) place(r, c int, v uint8) {
	bit := uint16(1) << v
	m.rows[r] |= bit
	m.cols[c] |= bit
	m.boxes[boxOf(r, c)] |= bit
}

func (m *masks) remove(r, c int, v uint8) {
	bit := ^(uint16(1) << v)
	m.rows[r] &= bit
	m.cols[c] &= bit
	m.boxes[boxOf(r, c)] &= bit
}

func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
