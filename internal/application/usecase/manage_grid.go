package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/bnema/gridbrowser/internal/domain/entity"
	"github.com/bnema/gridbrowser/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// NewSequentialIDGenerator returns an IDGenerator yielding prefix-1, prefix-2, ...
func NewSequentialIDGenerator(prefix string) IDGenerator {
	var n atomic.Uint64
	return func() string {
		return prefix + "-" + strconv.FormatUint(n.Add(1), 10)
	}
}

// GridAxis selects which dimension of the grid an adjustment applies to.
type GridAxis string

const (
	AxisRows    GridAxis = "rows"
	AxisColumns GridAxis = "columns"
)

// AdjustOperation selects between growing and shrinking the grid.
type AdjustOperation string

const (
	AdjustAdd    AdjustOperation = "add"
	AdjustRemove AdjustOperation = "remove"
)

// ErrUnknownAdjustment is returned for an axis or operation outside the known set.
var ErrUnknownAdjustment = errors.New("unknown grid adjustment")

// ManageGridUseCase adds and removes rows and columns while keeping the grid rectangular.
type ManageGridUseCase struct {
	idGenerator IDGenerator
	defaultURL  string
}

// NewManageGridUseCase creates a new grid management use case.
// New panes start at defaultURL, or entity.DefaultPaneURL when empty.
func NewManageGridUseCase(idGenerator IDGenerator, defaultURL string) *ManageGridUseCase {
	if idGenerator == nil {
		idGenerator = NewSequentialIDGenerator("pane")
	}
	if defaultURL == "" {
		defaultURL = entity.DefaultPaneURL
	}
	return &ManageGridUseCase{
		idGenerator: idGenerator,
		defaultURL:  defaultURL,
	}
}

// DefaultURL returns the URL new panes start at.
func (uc *ManageGridUseCase) DefaultURL() string {
	return uc.defaultURL
}

// AdjustGridInput contains parameters for a row or column adjustment.
type AdjustGridInput struct {
	Grid      *entity.Grid
	Axis      GridAxis
	Operation AdjustOperation
}

// GridChangeOutput describes the panes created or detached by an operation.
type GridChangeOutput struct {
	Added   []*entity.Pane
	Removed []*entity.Pane
	Rows    int
	Columns int
}

// Adjust dispatches to the row or column operation named by the input.
func (uc *ManageGridUseCase) Adjust(ctx context.Context, input AdjustGridInput) (*GridChangeOutput, error) {
	switch {
	case input.Axis == AxisRows && input.Operation == AdjustAdd:
		return uc.AddRow(ctx, input.Grid)
	case input.Axis == AxisRows && input.Operation == AdjustRemove:
		return uc.RemoveRow(ctx, input.Grid)
	case input.Axis == AxisColumns && input.Operation == AdjustAdd:
		return uc.AddColumn(ctx, input.Grid)
	case input.Axis == AxisColumns && input.Operation == AdjustRemove:
		return uc.RemoveColumn(ctx, input.Grid)
	}
	return nil, fmt.Errorf("%w: %s %s", ErrUnknownAdjustment, input.Operation, input.Axis)
}

// AddRow appends a row sized to the current column count.
func (uc *ManageGridUseCase) AddRow(ctx context.Context, grid *entity.Grid) (*GridChangeOutput, error) {
	if grid == nil {
		return nil, fmt.Errorf("grid is required")
	}

	added := grid.AddRow(uc.newPane)

	out := uc.output(grid, added, nil)
	logging.FromContext(ctx).Debug().
		Int("added", len(added)).
		Int("rows", out.Rows).
		Int("columns", out.Columns).
		Msg("row added")
	return out, nil
}

// RemoveRow drops the last row. Returns entity.ErrLastRow when one row remains.
func (uc *ManageGridUseCase) RemoveRow(ctx context.Context, grid *entity.Grid) (*GridChangeOutput, error) {
	if grid == nil {
		return nil, fmt.Errorf("grid is required")
	}

	removed, err := grid.RemoveRow()
	if err != nil {
		return nil, fmt.Errorf("remove row: %w", err)
	}

	out := uc.output(grid, nil, removed)
	logging.FromContext(ctx).Debug().
		Int("removed", len(removed)).
		Int("rows", out.Rows).
		Int("columns", out.Columns).
		Msg("row removed")
	return out, nil
}

// AddColumn appends one pane to every row.
func (uc *ManageGridUseCase) AddColumn(ctx context.Context, grid *entity.Grid) (*GridChangeOutput, error) {
	if grid == nil {
		return nil, fmt.Errorf("grid is required")
	}

	added := grid.AddColumn(uc.newPane)

	out := uc.output(grid, added, nil)
	logging.FromContext(ctx).Debug().
		Int("added", len(added)).
		Int("rows", out.Rows).
		Int("columns", out.Columns).
		Msg("column added")
	return out, nil
}

// RemoveColumn drops the last pane of every row. Returns entity.ErrLastColumn
// when the first row has a single column.
func (uc *ManageGridUseCase) RemoveColumn(ctx context.Context, grid *entity.Grid) (*GridChangeOutput, error) {
	if grid == nil {
		return nil, fmt.Errorf("grid is required")
	}

	removed, err := grid.RemoveColumn()
	if err != nil {
		return nil, fmt.Errorf("remove column: %w", err)
	}

	out := uc.output(grid, nil, removed)
	logging.FromContext(ctx).Debug().
		Int("removed", len(removed)).
		Int("rows", out.Rows).
		Int("columns", out.Columns).
		Msg("column removed")
	return out, nil
}

func (uc *ManageGridUseCase) newPane() *entity.Pane {
	return entity.NewPane(entity.PaneID(uc.idGenerator()), uc.defaultURL)
}

func (*ManageGridUseCase) output(grid *entity.Grid, added, removed []*entity.Pane) *GridChangeOutput {
	rows, columns := grid.Dimensions()
	return &GridChangeOutput{
		Added:   added,
		Removed: removed,
		Rows:    rows,
		Columns: columns,
	}
}
