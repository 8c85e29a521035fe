package component

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/gridbrowser/internal/application/port"
	"github.com/bnema/gridbrowser/internal/application/usecase"
	"github.com/bnema/gridbrowser/internal/logging"
	"github.com/bnema/gridbrowser/internal/ui/theme"
)

// ToolbarHandler receives the toolbar's four signals.
type ToolbarHandler interface {
	SubmitURL(ctx context.Context, text string)
	Navigate(ctx context.Context, direction usecase.HistoryDirection)
	AdjustRows(ctx context.Context, op usecase.AdjustOperation) error
	AdjustColumns(ctx context.Context, op usecase.AdjustOperation) error
}

// Toolbar is the header bar: history buttons, address entry and grid size
// controls. The address entry doubles as the window's AddressDisplay.
type Toolbar struct {
	ctx     context.Context
	handler ToolbarHandler

	header *gtk.HeaderBar
	entry  *gtk.Entry
}

var _ port.AddressDisplay = (*Toolbar)(nil)

// NewToolbar builds the header bar. Must be called on the GTK main thread.
func NewToolbar(ctx context.Context, handler ToolbarHandler) *Toolbar {
	tb := &Toolbar{
		ctx:     logging.WithComponent(ctx, "toolbar"),
		handler: handler,
	}

	tb.header = gtk.NewHeaderBar()

	history := linkedBox(
		tb.iconButton("go-previous-symbolic", "Back", func() { tb.navigate(usecase.HistoryBack) }),
		tb.iconButton("go-next-symbolic", "Forward", func() { tb.navigate(usecase.HistoryForward) }),
	)
	tb.header.PackStart(history)

	tb.entry = gtk.NewEntry()
	tb.entry.SetHExpand(true)
	tb.entry.SetPlaceholderText("Enter address")
	tb.entry.SetInputPurpose(gtk.InputPurposeURL)
	tb.entry.AddCSSClass(theme.ClassAddressEntry)
	tb.entry.ConnectActivate(func() {
		tb.submit(tb.entry.Text())
	})
	tb.header.SetTitleWidget(tb.entry)

	columns := linkedBox(
		tb.iconButton("list-remove-symbolic", "Remove column", func() { tb.adjust(usecase.AxisColumns, usecase.AdjustRemove) }),
		gtk.NewLabel("Columns"),
		tb.iconButton("list-add-symbolic", "Add column", func() { tb.adjust(usecase.AxisColumns, usecase.AdjustAdd) }),
	)
	rows := linkedBox(
		tb.iconButton("list-remove-symbolic", "Remove row", func() { tb.adjust(usecase.AxisRows, usecase.AdjustRemove) }),
		gtk.NewLabel("Rows"),
		tb.iconButton("list-add-symbolic", "Add row", func() { tb.adjust(usecase.AxisRows, usecase.AdjustAdd) }),
	)
	tb.header.PackEnd(columns)
	tb.header.PackEnd(rows)

	return tb
}

func (tb *Toolbar) iconButton(icon, tooltip string, onClick func()) *gtk.Button {
	button := gtk.NewButtonFromIconName(icon)
	button.SetTooltipText(tooltip)
	button.ConnectClicked(onClick)
	return button
}

func linkedBox(children ...gtk.Widgetter) *gtk.Box {
	box := gtk.NewBox(gtk.OrientationHorizontal, 0)
	box.AddCSSClass("linked")
	for _, child := range children {
		box.Append(child)
	}
	return box
}

// SetHandler sets the receiver of toolbar actions.
func (tb *Toolbar) SetHandler(handler ToolbarHandler) {
	tb.handler = handler
}

// Widget returns the header bar for use as the window titlebar.
func (tb *Toolbar) Widget() *gtk.HeaderBar {
	return tb.header
}

// SetText replaces the address entry text.
func (tb *Toolbar) SetText(text string) {
	if tb.entry == nil {
		return
	}
	tb.entry.SetText(text)
}

// Text returns the address entry text.
func (tb *Toolbar) Text() string {
	if tb.entry == nil {
		return ""
	}
	return tb.entry.Text()
}

func (tb *Toolbar) submit(text string) {
	if tb.handler == nil {
		return
	}
	tb.handler.SubmitURL(tb.ctx, text)
}

func (tb *Toolbar) navigate(direction usecase.HistoryDirection) {
	if tb.handler == nil {
		return
	}
	tb.handler.Navigate(tb.ctx, direction)
}

func (tb *Toolbar) adjust(axis usecase.GridAxis, op usecase.AdjustOperation) {
	if tb.handler == nil {
		return
	}

	var err error
	switch axis {
	case usecase.AxisRows:
		err = tb.handler.AdjustRows(tb.ctx, op)
	case usecase.AxisColumns:
		err = tb.handler.AdjustColumns(tb.ctx, op)
	}
	if err != nil {
		logging.FromContext(tb.ctx).Error().Err(err).
			Str("axis", string(axis)).
			Str("op", string(op)).
			Msg("grid adjustment failed")
	}
}
