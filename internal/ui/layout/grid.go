package layout

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/gridbrowser/internal/domain/entity"
)

// ErrNilGrid is returned when Sync is called without a grid.
var ErrNilGrid = errors.New("grid is nil")

// ErrMissingPaneWidget is returned when a pane in the grid has no widget.
var ErrMissingPaneWidget = errors.New("pane has no widget")

// Spacing between rows and between panes within a row.
const gridSpacing = 0

// rowSlot tracks one rendered row: its box and the panes placed in it, in order.
type rowSlot struct {
	box     BoxWidget
	ids     []entity.PaneID
	widgets []Widget
}

// GridRenderer reconciles a GTK widget hierarchy with an entity.Grid.
//
// The root is a vertical homogeneous box holding one horizontal homogeneous
// box per row, so every row gets equal height and every pane in a row equal
// width. Sync only touches what differs: panes that stay in place are never
// reparented.
type GridRenderer struct {
	factory WidgetFactory
	panes   PaneWidgetProvider
	logger  zerolog.Logger

	root BoxWidget
	rows []*rowSlot
}

// NewGridRenderer creates a renderer with an empty root box.
func NewGridRenderer(factory WidgetFactory, panes PaneWidgetProvider, logger zerolog.Logger) *GridRenderer {
	root := factory.NewBox(OrientationVertical, gridSpacing)
	root.SetHomogeneous(true)
	root.SetHexpand(true)
	root.SetVexpand(true)
	root.AddCssClass("pane-grid")

	return &GridRenderer{
		factory: factory,
		panes:   panes,
		logger:  logger.With().Str("component", "grid-renderer").Logger(),
		root:    root,
	}
}

// Root returns the widget to embed in the window.
func (r *GridRenderer) Root() Widget {
	return r.root
}

// RowCount returns the number of rendered rows.
func (r *GridRenderer) RowCount() int {
	return len(r.rows)
}

// Placed returns the pane IDs rendered in row, in order.
func (r *GridRenderer) Placed(row int) []entity.PaneID {
	if row < 0 || row >= len(r.rows) {
		return nil
	}
	out := make([]entity.PaneID, len(r.rows[row].ids))
	copy(out, r.rows[row].ids)
	return out
}

// Sync brings the widget hierarchy in line with grid. Detached pane widgets
// are removed from their row box but not destroyed.
func (r *GridRenderer) Sync(grid *entity.Grid) error {
	if grid == nil {
		return ErrNilGrid
	}

	target := grid.RowCount()

	for len(r.rows) > target {
		last := r.rows[len(r.rows)-1]
		r.truncateRow(last, 0)
		r.root.Remove(last.box)
		r.rows = r.rows[:len(r.rows)-1]
	}

	for len(r.rows) < target {
		box := r.factory.NewBox(OrientationHorizontal, gridSpacing)
		box.SetHomogeneous(true)
		box.SetHexpand(true)
		box.SetVexpand(true)
		box.AddCssClass("pane-grid-row")
		r.root.Append(box)
		r.rows = append(r.rows, &rowSlot{box: box})
	}

	for i, slot := range r.rows {
		if err := r.syncRow(slot, grid.Row(i)); err != nil {
			return fmt.Errorf("sync row %d: %w", i, err)
		}
	}

	r.logger.Debug().
		Int("rows", grid.RowCount()).
		Int("columns", grid.ColumnCount()).
		Msg("grid synced")
	return nil
}

func (r *GridRenderer) syncRow(slot *rowSlot, panes []*entity.Pane) error {
	keep := 0
	for keep < len(slot.ids) && keep < len(panes) && slot.ids[keep] == panes[keep].ID {
		keep++
	}
	r.truncateRow(slot, keep)

	for _, pane := range panes[keep:] {
		w := r.panes.PaneWidget(pane.ID)
		if w == nil {
			return fmt.Errorf("%w: %s", ErrMissingPaneWidget, pane.ID)
		}
		slot.box.Append(w)
		slot.ids = append(slot.ids, pane.ID)
		slot.widgets = append(slot.widgets, w)
	}
	return nil
}

// truncateRow removes every placed widget from index n on.
func (r *GridRenderer) truncateRow(slot *rowSlot, n int) {
	for i := len(slot.widgets) - 1; i >= n; i-- {
		slot.box.Remove(slot.widgets[i])
	}
	slot.ids = slot.ids[:n]
	slot.widgets = slot.widgets[:n]
}
