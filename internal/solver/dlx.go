package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/ports"
)

// DLXSolver implements Algorithm X / Dancing Links for Sudoku.
// Exact-cover mapping: 324 columns (constraints), 729 rows (r,c,v candidates).
// Columns: 0..80   -> cell (r,c) holds some digit
//
//	81..161 -> row r has digit v
//	162..242-> col c has digit v
//	243..323-> box b has digit v, b = (r/3)*3 + (c/3)
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

const (
	nSize  = 9
	nCells = nSize * nSize  // 81
	nCols  = 4 * nCells     // 324
	nRows  = nCells * nSize // 729 (r,c,v)

	colCell   = 0
	colRowNum = 81
	colColNum = 162
	colBoxNum = 243
)

type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxCol
	rowIdx                int // 0..728 identifies (r,c,v)
}

type dlxCol struct {
	head dlxNode
	size int
}

// matrix is the linked exact-cover matrix with a root header ring.
// Covered columns are unlinked from the ring, so the ring being empty
// means every constraint is satisfied.
type matrix struct {
	root    dlxNode
	cols    [nCols]dlxCol
	rowHead [nRows]*dlxNode
	chosen  [nCells]*dlxNode
	depth   int
	nodes   int
}

func newMatrix() *matrix {
	m := &matrix{}
	m.root.left = &m.root
	m.root.right = &m.root
	for i := 0; i < nCols; i++ {
		c := &m.cols[i]
		c.head.col = c
		c.head.up = &c.head
		c.head.down = &c.head
		// link into the header ring, left of root
		c.head.right = &m.root
		c.head.left = m.root.left
		m.root.left.right = &c.head
		m.root.left = &c.head
	}
	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			for v := 1; v <= nSize; v++ {
				row := candIndex(r, c, v)
				var first, prev *dlxNode
				for _, colID := range candColumns(r, c, v) {
					col := &m.cols[colID]
					n := &dlxNode{col: col, rowIdx: row}
					n.down = &col.head
					n.up = col.head.up
					col.head.up.down = n
					col.head.up = n
					col.size++
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				m.rowHead[row] = first
			}
		}
	}
	return m
}

func candIndex(r, c, v int) int {
	return (r*nSize+c)*nSize + (v - 1) // 0..728
}

func candColumns(r, c, v int) [4]int {
	cell := colCell + r*nSize + c
	rowN := colRowNum + r*nSize + (v - 1)
	colN := colColNum + c*nSize + (v - 1)
	box := (r/3)*3 + c/3
	boxN := colBoxNum + box*nSize + (v - 1)
	return [4]int{cell, rowN, colN, boxN}
}

func (m *matrix) cover(col *dlxCol) {
	h := &col.head
	h.right.left = h.left
	h.left.right = h.right
	for i := h.down; i != h; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (m *matrix) uncover(col *dlxCol) {
	h := &col.head
	for i := h.up; i != h; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	h.right.left = h
	h.left.right = h
}

// chooseColumn walks the header ring for the smallest uncovered column.
func (m *matrix) chooseColumn() *dlxCol {
	var best *dlxCol
	for h := m.root.right; h != &m.root; h = h.right {
		c := h.col
		if best == nil || c.size < best.size {
			best = c
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

// selectRow commits a candidate row: records it and covers its columns.
func (m *matrix) selectRow(n *dlxNode) {
	m.chosen[m.depth] = n
	m.depth++
	for j := n; ; {
		m.cover(j.col)
		j = j.right
		if j == n {
			break
		}
	}
}

// search enumerates exact covers, emitting each completed assignment,
// and stops when emit returns false or the context is canceled.
func (m *matrix) search(ctx context.Context, emit func() bool) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	if m.root.right == &m.root {
		return !emit()
	}
	c := m.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	m.cover(c)
	for r := c.head.down; r != &c.head; r = r.down {
		m.nodes++
		m.chosen[m.depth] = r
		m.depth++
		for j := r.right; j != r; j = j.right {
			m.cover(j.col)
		}
		stop := m.search(ctx, emit)
		for j := r.left; j != r; j = j.left {
			m.uncover(j.col)
		}
		m.depth--
		if stop {
			m.uncover(c)
			return true
		}
	}
	m.uncover(c)
	return false
}

// applyGivens validates the board and commits each given's candidate row.
func (m *matrix) applyGivens(b *domain.Board) error {
	grid := b.Values
	if _, ok := buildMasks(&grid); !ok {
		return errors.New("conflicting givens")
	}
	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			v := int(b.Values[r][c])
			if v == 0 {
				continue
			}
			if v < 1 || v > 9 {
				return errors.New("invalid given")
			}
			m.selectRow(m.rowHead[candIndex(r, c, v)])
		}
	}
	return nil
}

// assignment decodes the chosen rows into a grid.
func (m *matrix) assignment() domain.Grid {
	var g domain.Grid
	for i := 0; i < m.depth; i++ {
		row := m.chosen[i].rowIdx
		cell := row / nSize
		g[cell/nSize][cell%nSize] = uint8(row%nSize) + 1
	}
	return g
}

func (s *DLXSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	m := newMatrix()
	if err := m.applyGivens(b); err != nil {
		return nil, ports.Stats{}, err
	}
	var sol domain.Grid
	found := false
	_ = m.search(ctx, func() bool {
		sol = m.assignment()
		found = true
		return false // one is enough
	})
	st := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if !found {
		return nil, st, errNoSolution
	}
	return &domain.Board{Values: sol, Fixed: b.Fixed}, st, nil
}

func (s *DLXSolver) CountSolutions(ctx context.Context, b *domain.Board, limit int) ([]domain.Grid, ports.Stats, error) {
	start := time.Now()
	if limit <= 0 {
		return nil, ports.Stats{}, errBadLimit
	}
	m := newMatrix()
	if err := m.applyGivens(b); err != nil {
		// contradictory boards simply have zero completions
		return nil, ports.Stats{Duration: time.Since(start)}, nil
	}
	found := make([]domain.Grid, 0, limit)
	_ = m.search(ctx, func() bool {
		found = append(found, m.assignment())
		return len(found) < limit
	})
	return found, ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}, ctx.Err()
}

func (s *DLXSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	sols, st, err := s.CountSolutions(ctx, b, 2)
	return len(sols) == 1, st, err
}
