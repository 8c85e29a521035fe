package entity

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialMaker() PaneMaker {
	n := 0
	return func() *Pane {
		n++
		return NewPane(PaneID(fmt.Sprintf("pane-%d", n)), DefaultPaneURL)
	}
}

func seededGrid(t *testing.T, rows, columns int) (*Grid, PaneMaker) {
	t.Helper()
	mk := sequentialMaker()
	g := NewGrid()
	g.AddRow(mk)
	for c := 0; c < columns; c++ {
		g.AddColumn(mk)
	}
	for r := 1; r < rows; r++ {
		g.AddRow(mk)
	}
	require.Equal(t, rows, g.RowCount())
	require.Equal(t, columns, g.ColumnCount())
	return g, mk
}

func TestGrid_AddRowOnEmptyGridAppendsEmptyRow(t *testing.T) {
	g := NewGrid()

	added := g.AddRow(sequentialMaker())

	assert.Empty(t, added)
	assert.Equal(t, 1, g.RowCount())
	assert.Equal(t, 0, g.ColumnCount())
	assert.True(t, g.IsEmpty())
	assert.True(t, g.IsRectangular())
}

func TestGrid_SeedingProducesSinglePane(t *testing.T) {
	g, _ := seededGrid(t, 1, 1)

	p := g.PaneAt(0, 0)
	require.NotNil(t, p)
	assert.Equal(t, PaneID("pane-1"), p.ID)
	assert.Equal(t, DefaultPaneURL, p.URI)
}

func TestGrid_AddColumnOnSingleRow(t *testing.T) {
	g, mk := seededGrid(t, 1, 1)
	first := g.PaneAt(0, 0)

	added := g.AddColumn(mk)

	require.Len(t, added, 1)
	rows, cols := g.Dimensions()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 2, cols)
	assert.Same(t, first, g.PaneAt(0, 0))
	assert.Same(t, added[0], g.PaneAt(0, 1))
	assert.Equal(t, DefaultPaneURL, added[0].URI)
}

func TestGrid_AddRowCopiesColumnCount(t *testing.T) {
	g, mk := seededGrid(t, 1, 2)
	before := g.Row(0)

	added := g.AddRow(mk)

	require.Len(t, added, 2)
	rows, cols := g.Dimensions()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, before, g.Row(0))
	assert.Equal(t, added, g.Row(1))
	for _, p := range added {
		assert.NotContains(t, before, p)
		assert.Equal(t, DefaultPaneURL, p.URI)
	}
}

func TestGrid_RemoveRowOnSingleRowIsRejected(t *testing.T) {
	g, _ := seededGrid(t, 1, 3)
	before := g.Panes()

	removed, err := g.RemoveRow()

	assert.ErrorIs(t, err, ErrLastRow)
	assert.Nil(t, removed)
	assert.Equal(t, 1, g.RowCount())
	assert.Equal(t, before, g.Panes())
}

func TestGrid_RemoveRowOnEmptyGridIsRejected(t *testing.T) {
	g := NewGrid()

	_, err := g.RemoveRow()

	assert.ErrorIs(t, err, ErrLastRow)
	assert.Equal(t, 0, g.RowCount())
}

func TestGrid_RemoveRowDropsLastRow(t *testing.T) {
	g, _ := seededGrid(t, 3, 2)
	last := g.Row(2)

	removed, err := g.RemoveRow()

	require.NoError(t, err)
	assert.Equal(t, last, removed)
	assert.Equal(t, 2, g.RowCount())
	for _, p := range removed {
		assert.False(t, g.Contains(p.ID))
	}
}

func TestGrid_RemoveColumnOnSingleColumnIsRejected(t *testing.T) {
	g, _ := seededGrid(t, 3, 1)
	before := g.Panes()

	removed, err := g.RemoveColumn()

	assert.ErrorIs(t, err, ErrLastColumn)
	assert.Nil(t, removed)
	assert.Equal(t, 1, g.ColumnCount())
	assert.Equal(t, before, g.Panes())
}

func TestGrid_RemoveColumnOnEmptyGridIsRejected(t *testing.T) {
	g := NewGrid()
	g.AddRow(sequentialMaker())

	_, err := g.RemoveColumn()

	assert.ErrorIs(t, err, ErrLastColumn)
}

func TestGrid_RemoveColumnDropsLastPaneOfEveryRow(t *testing.T) {
	g, _ := seededGrid(t, 2, 3)
	want := []*Pane{g.PaneAt(0, 2), g.PaneAt(1, 2)}

	removed, err := g.RemoveColumn()

	require.NoError(t, err)
	assert.Equal(t, want, removed)
	rows, cols := g.Dimensions()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.True(t, g.IsRectangular())
}

func TestGrid_Find(t *testing.T) {
	g, _ := seededGrid(t, 2, 2)
	target := g.PaneAt(1, 0)

	r, c, ok := g.Find(target.ID)
	assert.True(t, ok)
	assert.Equal(t, 1, r)
	assert.Equal(t, 0, c)

	_, _, ok = g.Find("missing")
	assert.False(t, ok)
}

func TestGrid_PanesAreRowMajor(t *testing.T) {
	g, _ := seededGrid(t, 2, 2)

	ids := make([]PaneID, 0, 4)
	for _, p := range g.Panes() {
		ids = append(ids, p.ID)
	}

	// Seeding adds row 0 column by column, then row 1 in one go.
	assert.Equal(t, []PaneID{"pane-1", "pane-2", "pane-3", "pane-4"}, ids)
}

func TestGrid_OutOfRangeAccessors(t *testing.T) {
	g, _ := seededGrid(t, 1, 1)

	assert.Nil(t, g.PaneAt(-1, 0))
	assert.Nil(t, g.PaneAt(0, 5))
	assert.Nil(t, g.PaneAt(3, 0))
	assert.Nil(t, g.Row(4))
}

func TestGrid_StaysRectangularUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g, mk := seededGrid(t, 1, 1)

	for i := 0; i < 500; i++ {
		switch rng.Intn(4) {
		case 0:
			g.AddRow(mk)
		case 1:
			_, _ = g.RemoveRow()
		case 2:
			g.AddColumn(mk)
		case 3:
			_, _ = g.RemoveColumn()
		}

		require.True(t, g.IsRectangular(), "step %d", i)
		require.GreaterOrEqual(t, g.RowCount(), 1, "step %d", i)
		require.GreaterOrEqual(t, g.ColumnCount(), 1, "step %d", i)
		require.Equal(t, g.RowCount()*g.ColumnCount(), g.Len(), "step %d", i)
	}
}
