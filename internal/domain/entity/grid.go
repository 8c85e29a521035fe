package entity

import "errors"

var (
	// ErrLastRow is returned when removing a row would leave the grid without rows.
	ErrLastRow = errors.New("cannot remove the last row")
	// ErrLastColumn is returned when removing a column would leave the grid without columns.
	ErrLastColumn = errors.New("cannot remove the last column")
)

// PaneMaker builds a fresh pane for a newly created grid cell.
type PaneMaker func() *Pane

// Grid is a rectangular matrix of panes stored row by row.
// All rows hold the same number of panes between operations.
type Grid struct {
	rows [][]*Pane
}

// NewGrid returns an empty grid. Callers seed it with AddRow followed by AddColumn.
func NewGrid() *Grid {
	return &Grid{}
}

// RowCount returns the number of rows.
func (g *Grid) RowCount() int {
	return len(g.rows)
}

// ColumnCount returns the column count read from the first row, or 0 when empty.
func (g *Grid) ColumnCount() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// Dimensions returns rows and columns.
func (g *Grid) Dimensions() (rows, columns int) {
	return g.RowCount(), g.ColumnCount()
}

// Len returns the total number of panes.
func (g *Grid) Len() int {
	n := 0
	for _, row := range g.rows {
		n += len(row)
	}
	return n
}

// IsEmpty reports whether the grid holds no panes.
func (g *Grid) IsEmpty() bool {
	return g.Len() == 0
}

// Row returns a copy of the panes in row r, or nil if out of range.
func (g *Grid) Row(r int) []*Pane {
	if r < 0 || r >= len(g.rows) {
		return nil
	}
	out := make([]*Pane, len(g.rows[r]))
	copy(out, g.rows[r])
	return out
}

// PaneAt returns the pane at (row, column), or nil if out of range.
func (g *Grid) PaneAt(row, column int) *Pane {
	if row < 0 || row >= len(g.rows) {
		return nil
	}
	if column < 0 || column >= len(g.rows[row]) {
		return nil
	}
	return g.rows[row][column]
}

// Panes returns all panes in row-major order.
func (g *Grid) Panes() []*Pane {
	out := make([]*Pane, 0, g.Len())
	for _, row := range g.rows {
		out = append(out, row...)
	}
	return out
}

// Find returns the position of the pane with the given ID.
func (g *Grid) Find(id PaneID) (row, column int, ok bool) {
	for r, panes := range g.rows {
		for c, p := range panes {
			if p.ID == id {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// Contains reports whether a pane with the given ID is in the grid.
func (g *Grid) Contains(id PaneID) bool {
	_, _, ok := g.Find(id)
	return ok
}

// IsRectangular reports whether every row has the same column count.
func (g *Grid) IsRectangular() bool {
	want := g.ColumnCount()
	for _, row := range g.rows {
		if len(row) != want {
			return false
		}
	}
	return true
}

// AddRow appends a row with as many new panes as the first row has columns.
// On an empty grid the column count is 0, so an empty row is appended.
func (g *Grid) AddRow(makePane PaneMaker) []*Pane {
	columns := g.ColumnCount()
	row := make([]*Pane, 0, columns)
	for i := 0; i < columns; i++ {
		row = append(row, makePane())
	}
	g.rows = append(g.rows, row)

	added := make([]*Pane, len(row))
	copy(added, row)
	return added
}

// RemoveRow drops the last row and returns its panes.
func (g *Grid) RemoveRow() ([]*Pane, error) {
	if len(g.rows) <= 1 {
		return nil, ErrLastRow
	}
	last := len(g.rows) - 1
	removed := g.rows[last]
	g.rows[last] = nil
	g.rows = g.rows[:last]
	return removed, nil
}

// AddColumn appends one new pane to every row and returns them top to bottom.
func (g *Grid) AddColumn(makePane PaneMaker) []*Pane {
	added := make([]*Pane, 0, len(g.rows))
	for r := range g.rows {
		p := makePane()
		g.rows[r] = append(g.rows[r], p)
		added = append(added, p)
	}
	return added
}

// RemoveColumn drops the last pane of every row and returns them top to bottom.
// The first row's width decides whether removal is allowed.
func (g *Grid) RemoveColumn() ([]*Pane, error) {
	if len(g.rows) == 0 || len(g.rows[0]) <= 1 {
		return nil, ErrLastColumn
	}
	removed := make([]*Pane, 0, len(g.rows))
	for r, row := range g.rows {
		if len(row) == 0 {
			continue
		}
		last := len(row) - 1
		removed = append(removed, row[last])
		row[last] = nil
		g.rows[r] = row[:last]
	}
	return removed, nil
}
