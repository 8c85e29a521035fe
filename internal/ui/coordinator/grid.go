package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/gridbrowser/internal/application/port"
	"github.com/bnema/gridbrowser/internal/application/usecase"
	"github.com/bnema/gridbrowser/internal/domain/entity"
	domainurl "github.com/bnema/gridbrowser/internal/domain/url"
	"github.com/bnema/gridbrowser/internal/logging"
	"github.com/bnema/gridbrowser/internal/ui/layout"
)

// PaneView is the visual wrapper of one pane: the web view plus its highlight.
type PaneView interface {
	Widget() layout.Widget
	SetSelected(selected bool)
	Destroy()
}

// PaneViewFactory builds pane views. Clicks the gate admits are reported
// through onClick.
type PaneViewFactory interface {
	CreatePaneView(paneID entity.PaneID, webView port.WebView, gate port.ClickGate, onClick func(entity.PaneID)) PaneView
}

// GridSyncer is the render step run after every grid mutation.
type GridSyncer interface {
	Sync(grid *entity.Grid) error
}

// paneResources holds what the coordinator owns for one pane.
type paneResources struct {
	webView port.WebView
	view    PaneView
}

// GridCoordinator owns the grid and the single selection, and routes toolbar
// actions to the selected pane. All methods run on the GTK main thread.
type GridCoordinator struct {
	ctx context.Context

	gridUC     *usecase.ManageGridUseCase
	navigateUC *usecase.NavigateUseCase
	webViews   port.WebViewFactory
	paneViews  PaneViewFactory

	renderer GridSyncer
	address  port.AddressDisplay

	grid      *entity.Grid
	selection entity.Selection
	panes     map[entity.PaneID]*paneResources
}

var (
	_ port.ClickGate            = (*GridCoordinator)(nil)
	_ port.NavigationObserver   = (*GridCoordinator)(nil)
	_ layout.PaneWidgetProvider = (*GridCoordinator)(nil)
)

// NewGridCoordinator creates a coordinator with an empty grid. ctx is used
// for callbacks arriving from GTK signals.
func NewGridCoordinator(
	ctx context.Context,
	gridUC *usecase.ManageGridUseCase,
	navigateUC *usecase.NavigateUseCase,
	webViews port.WebViewFactory,
	paneViews PaneViewFactory,
) *GridCoordinator {
	ctx = logging.WithComponent(ctx, "grid-coordinator")
	logging.FromContext(ctx).Debug().Msg("creating grid coordinator")

	return &GridCoordinator{
		ctx:        ctx,
		gridUC:     gridUC,
		navigateUC: navigateUC,
		webViews:   webViews,
		paneViews:  paneViews,
		grid:       entity.NewGrid(),
		panes:      make(map[entity.PaneID]*paneResources),
	}
}

// SetRenderer sets the render step run after each grid change.
func (c *GridCoordinator) SetRenderer(renderer GridSyncer) {
	c.renderer = renderer
}

// SetAddressDisplay sets the address entry mirrored to the selected pane.
func (c *GridCoordinator) SetAddressDisplay(address port.AddressDisplay) {
	c.address = address
}

// Grid returns the live grid. Callers must not mutate it.
func (c *GridCoordinator) Grid() *entity.Grid {
	return c.grid
}

// Selected returns the selected pane ID.
func (c *GridCoordinator) Selected() (entity.PaneID, bool) {
	return c.selection.Current()
}

// Init seeds the grid with a single pane, then grows it to rows x columns.
func (c *GridCoordinator) Init(ctx context.Context, rows, columns int) error {
	if c.grid.RowCount() > 0 {
		return errors.New("grid already initialized")
	}
	rows = max(rows, 1)
	columns = max(columns, 1)

	// An empty grid gets an empty row first; the first column then creates
	// the first pane.
	if err := c.addPanes(ctx, usecase.AxisRows); err != nil {
		return err
	}
	for range columns {
		if err := c.addPanes(ctx, usecase.AxisColumns); err != nil {
			return err
		}
	}
	for range rows - 1 {
		if err := c.addPanes(ctx, usecase.AxisRows); err != nil {
			return err
		}
	}

	logging.FromContext(ctx).Info().
		Int("rows", c.grid.RowCount()).
		Int("columns", c.grid.ColumnCount()).
		Msg("grid initialized")
	return nil
}

// AdjustRows adds or removes the last row. Removing the only row is a no-op.
func (c *GridCoordinator) AdjustRows(ctx context.Context, op usecase.AdjustOperation) error {
	return c.adjust(ctx, usecase.AxisRows, op)
}

// AdjustColumns adds or removes the last column. Removing the only column is a no-op.
func (c *GridCoordinator) AdjustColumns(ctx context.Context, op usecase.AdjustOperation) error {
	return c.adjust(ctx, usecase.AxisColumns, op)
}

func (c *GridCoordinator) adjust(ctx context.Context, axis usecase.GridAxis, op usecase.AdjustOperation) error {
	switch op {
	case usecase.AdjustAdd:
		return c.addPanes(ctx, axis)
	case usecase.AdjustRemove:
		return c.removePanes(ctx, axis)
	}
	return fmt.Errorf("%w: %s %s", usecase.ErrUnknownAdjustment, op, axis)
}

// addPanes creates every web view the operation needs before touching the
// grid, so a creation failure leaves the grid unchanged.
func (c *GridCoordinator) addPanes(ctx context.Context, axis usecase.GridAxis) error {
	needed := c.grid.ColumnCount()
	if axis == usecase.AxisColumns {
		needed = c.grid.RowCount()
	}

	webViews := make([]port.WebView, 0, needed)
	for range needed {
		wv, err := c.webViews.Create(ctx)
		if err != nil {
			for _, created := range webViews {
				created.Destroy()
			}
			return fmt.Errorf("create web view: %w", err)
		}
		webViews = append(webViews, wv)
	}

	out, err := c.gridUC.Adjust(ctx, usecase.AdjustGridInput{
		Grid:      c.grid,
		Axis:      axis,
		Operation: usecase.AdjustAdd,
	})
	if err != nil {
		for _, created := range webViews {
			created.Destroy()
		}
		return err
	}

	for i, pane := range out.Added {
		c.attachPane(ctx, pane, webViews[i])
	}

	// The grid already changed; finish loads and selection before
	// reporting a render failure.
	renderErr := c.render()

	for i, pane := range out.Added {
		if err := webViews[i].LoadURI(ctx, pane.URI); err != nil {
			logging.FromContext(logging.WithPaneID(ctx, string(pane.ID))).
				Warn().Err(err).Msg("initial load failed")
		}
	}

	for _, pane := range out.Added {
		if !c.selection.HasSelection() {
			c.selectPane(ctx, pane.ID)
		}
	}
	return renderErr
}

func (c *GridCoordinator) attachPane(ctx context.Context, pane *entity.Pane, wv port.WebView) {
	id := pane.ID
	wv.SetOnLoadCommitted(func(uri string) {
		c.OnNavigationCommitted(c.ctx, id, uri)
	})

	view := c.paneViews.CreatePaneView(id, wv, c, func(clicked entity.PaneID) {
		c.HandlePaneClicked(c.ctx, clicked)
	})
	c.panes[id] = &paneResources{webView: wv, view: view}

	logging.FromContext(logging.WithPaneID(ctx, string(id))).Debug().
		Uint64("webview_id", uint64(wv.ID())).
		Msg("pane attached")
}

func (c *GridCoordinator) removePanes(ctx context.Context, axis usecase.GridAxis) error {
	log := logging.FromContext(ctx)

	selRow, selCol := -1, -1
	if id, ok := c.selection.Current(); ok {
		selRow, selCol, _ = c.grid.Find(id)
	}

	out, err := c.gridUC.Adjust(ctx, usecase.AdjustGridInput{
		Grid:      c.grid,
		Axis:      axis,
		Operation: usecase.AdjustRemove,
	})
	if errors.Is(err, entity.ErrLastRow) || errors.Is(err, entity.ErrLastColumn) {
		log.Debug().Err(err).Str("axis", string(axis)).Msg("remove ignored")
		return nil
	}
	if err != nil {
		return err
	}

	// Detach widgets before their web views go away.
	renderErr := c.render()

	selectionLost := false
	for _, pane := range out.Removed {
		if c.selection.IsSelected(pane.ID) {
			c.selection.Clear()
			selectionLost = true
		}
		c.destroyPane(ctx, pane.ID)
	}

	if selectionLost && selRow >= 0 {
		r := min(selRow, c.grid.RowCount()-1)
		col := min(selCol, c.grid.ColumnCount()-1)
		if fallback := c.grid.PaneAt(r, col); fallback != nil {
			c.selectPane(ctx, fallback.ID)
		}
	}
	return renderErr
}

func (c *GridCoordinator) destroyPane(ctx context.Context, id entity.PaneID) {
	res, ok := c.panes[id]
	if !ok {
		return
	}
	delete(c.panes, id)

	res.webView.SetOnLoadCommitted(nil)
	res.view.Destroy()
	res.webView.Destroy()

	logging.FromContext(logging.WithPaneID(ctx, string(id))).Debug().Msg("pane destroyed")
}

func (c *GridCoordinator) render() error {
	if c.renderer == nil {
		return nil
	}
	if err := c.renderer.Sync(c.grid); err != nil {
		return fmt.Errorf("render grid: %w", err)
	}
	return nil
}

// selectPane moves the selection, the highlight and the address text to id.
func (c *GridCoordinator) selectPane(ctx context.Context, id entity.PaneID) {
	res, ok := c.panes[id]
	if !ok {
		return
	}

	prev, hadPrev, changed := c.selection.Select(id)
	if !changed {
		return
	}
	if hadPrev {
		if old, ok := c.panes[prev]; ok {
			old.view.SetSelected(false)
		}
	}
	res.view.SetSelected(true)

	uri := res.webView.URI()
	if c.address != nil {
		c.address.SetText(uri)
	}

	logging.FromContext(logging.WithPaneID(ctx, string(id))).Debug().
		Str("previous", string(prev)).
		Str("uri", uri).
		Msg("pane selected")
}

// HandlePaneClicked selects the clicked pane. Clicks on the selected pane are
// stopped by ShouldAdmitClick before they get here.
func (c *GridCoordinator) HandlePaneClicked(ctx context.Context, id entity.PaneID) {
	if c.selection.IsSelected(id) || !c.grid.Contains(id) {
		return
	}
	c.selectPane(ctx, id)
}

// ShouldAdmitClick refuses clicks on the selected pane so the web engine
// handles them natively. Panes no longer in the grid are refused too.
func (c *GridCoordinator) ShouldAdmitClick(id entity.PaneID) bool {
	return c.grid.Contains(id) && !c.selection.IsSelected(id)
}

// OnNavigationCommitted records the pane's URI and mirrors it to the address
// display when the pane is selected.
func (c *GridCoordinator) OnNavigationCommitted(ctx context.Context, source entity.PaneID, uri string) {
	if pane := c.findPane(source); pane != nil {
		pane.URI = uri
	}

	if !c.selection.IsSelected(source) {
		return
	}
	if c.address != nil {
		c.address.SetText(uri)
	}
	logging.FromContext(logging.WithPaneID(ctx, string(source))).Debug().
		Str("uri", uri).
		Msg("address updated from navigation")
}

func (c *GridCoordinator) findPane(id entity.PaneID) *entity.Pane {
	r, col, ok := c.grid.Find(id)
	if !ok {
		return nil
	}
	return c.grid.PaneAt(r, col)
}

// SubmitURL loads text in the selected pane. Text that is not a URL is ignored.
func (c *GridCoordinator) SubmitURL(ctx context.Context, text string) {
	log := logging.FromContext(ctx)

	wv := c.selectedWebView()
	if wv == nil {
		log.Debug().Msg("submit ignored: no pane selected")
		return
	}

	_, err := c.navigateUC.Execute(ctx, usecase.NavigateInput{Input: text, WebView: wv})
	switch {
	case err == nil:
	case errors.Is(err, domainurl.ErrInvalidURL), errors.Is(err, domainurl.ErrEmptyURL):
		log.Debug().Err(err).Msg("submit ignored: not a URL")
	default:
		log.Warn().Err(err).Msg("navigation failed")
	}
}

// Navigate goes back or forward in the selected pane.
func (c *GridCoordinator) Navigate(ctx context.Context, direction usecase.HistoryDirection) {
	log := logging.FromContext(ctx)

	wv := c.selectedWebView()
	if wv == nil {
		log.Debug().Str("direction", string(direction)).Msg("navigate ignored: no pane selected")
		return
	}

	if err := c.navigateUC.Traverse(ctx, usecase.TraverseInput{Direction: direction, WebView: wv}); err != nil {
		log.Warn().Err(err).Str("direction", string(direction)).Msg("history traversal failed")
	}
}

func (c *GridCoordinator) selectedWebView() port.WebView {
	id, ok := c.selection.Current()
	if !ok {
		return nil
	}
	res, ok := c.panes[id]
	if !ok {
		return nil
	}
	return res.webView
}

// PaneWidget returns the widget of the pane's view, or nil.
func (c *GridCoordinator) PaneWidget(id entity.PaneID) layout.Widget {
	res, ok := c.panes[id]
	if !ok {
		return nil
	}
	return res.view.Widget()
}

// Shutdown destroys every pane.
func (c *GridCoordinator) Shutdown(ctx context.Context) {
	for _, pane := range c.grid.Panes() {
		c.destroyPane(ctx, pane.ID)
	}
	c.selection.Clear()
}
