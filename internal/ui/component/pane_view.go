// Package component provides UI components for the browser.
package component

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/gridbrowser/internal/application/port"
	"github.com/bnema/gridbrowser/internal/domain/entity"
	"github.com/bnema/gridbrowser/internal/ui/coordinator"
	"github.com/bnema/gridbrowser/internal/ui/layout"
	"github.com/bnema/gridbrowser/internal/ui/theme"
)

// PaneView is a container for a single WebView with selected state indication.
// It uses an overlay to display a border around the selected pane.
type PaneView struct {
	overlay       layout.OverlayWidget
	webViewWidget layout.Widget
	borderBox     layout.BoxWidget
	paneID        entity.PaneID
	selected      bool

	gate    port.ClickGate
	onClick func(entity.PaneID)
}

var _ coordinator.PaneView = (*PaneView)(nil)

// NewPaneView creates a new pane view container for a WebView widget.
func NewPaneView(
	factory layout.WidgetFactory,
	paneID entity.PaneID,
	webViewWidget layout.Widget,
	gate port.ClickGate,
	onClick func(entity.PaneID),
) *PaneView {
	overlay := factory.NewOverlay()
	overlay.SetHexpand(true)
	overlay.SetVexpand(true)
	overlay.AddCssClass("pane-overlay")

	if webViewWidget != nil {
		overlay.SetChild(webViewWidget)
	}

	// Empty box styled via CSS; pointer events pass through to the WebView.
	borderBox := factory.NewBox(layout.OrientationVertical, 0)
	borderBox.SetCanTarget(false)
	borderBox.AddCssClass(theme.ClassPaneHighlight)
	borderBox.SetHexpand(true)
	borderBox.SetVexpand(true)
	borderBox.SetVisible(false)
	overlay.AddOverlay(borderBox)

	return &PaneView{
		overlay:       overlay,
		webViewWidget: webViewWidget,
		borderBox:     borderBox,
		paneID:        paneID,
		gate:          gate,
		onClick:       onClick,
	}
}

// PaneID returns the pane this view displays.
func (pv *PaneView) PaneID() entity.PaneID {
	return pv.paneID
}

// Widget returns the overlay to place in the grid.
func (pv *PaneView) Widget() layout.Widget {
	return pv.overlay
}

// WebViewWidget returns the embedded WebView widget.
func (pv *PaneView) WebViewWidget() layout.Widget {
	return pv.webViewWidget
}

// IsSelected reports whether the highlight is shown.
func (pv *PaneView) IsSelected() bool {
	return pv.selected
}

// SetSelected shows or hides the accent border.
func (pv *PaneView) SetSelected(selected bool) {
	if pv.selected == selected {
		return
	}
	pv.selected = selected

	if selected {
		pv.borderBox.AddCssClass(theme.ClassPaneSelected)
	} else {
		pv.borderBox.RemoveCssClass(theme.ClassPaneSelected)
	}
	pv.borderBox.SetVisible(selected)
}

// HandlePress runs the click policy for one press. Returns false when the
// gate refused it, in which case the press belongs to the web engine.
func (pv *PaneView) HandlePress() bool {
	if pv.gate != nil && !pv.gate.ShouldAdmitClick(pv.paneID) {
		return false
	}
	if pv.onClick != nil {
		pv.onClick(pv.paneID)
	}
	return true
}

// Destroy releases the WebView widget from the overlay.
func (pv *PaneView) Destroy() {
	if pv.webViewWidget != nil {
		pv.overlay.SetChild(nil)
	}
	pv.gate = nil
	pv.onClick = nil
}

// AttachClickGesture installs a capture-phase primary-button recognizer on
// the pane overlay. Refused presses are denied so the event continues to
// the WebView untouched.
func (pv *PaneView) AttachClickGesture() {
	target := pv.overlay.GtkWidget()
	if target == nil {
		return
	}

	gesture := gtk.NewGestureClick()
	gesture.SetButton(1)
	gesture.SetPropagationPhase(gtk.PhaseCapture)
	gesture.ConnectPressed(func(_ int, _, _ float64) {
		if !pv.HandlePress() {
			gesture.SetState(gtk.EventSequenceDenied)
		}
	})
	target.AddController(gesture)
}

// GtkPaneViewFactory builds PaneViews around WebKit web views.
type GtkPaneViewFactory struct {
	widgets layout.WidgetFactory
}

var _ coordinator.PaneViewFactory = (*GtkPaneViewFactory)(nil)

// NewGtkPaneViewFactory creates a factory using widgets for its containers.
func NewGtkPaneViewFactory(widgets layout.WidgetFactory) *GtkPaneViewFactory {
	return &GtkPaneViewFactory{widgets: widgets}
}

// gtkBacked is implemented by web views that expose their GTK widget.
type gtkBacked interface {
	GtkWidget() *gtk.Widget
}

// CreatePaneView wraps webView in a PaneView and attaches the click gesture.
func (f *GtkPaneViewFactory) CreatePaneView(
	paneID entity.PaneID,
	webView port.WebView,
	gate port.ClickGate,
	onClick func(entity.PaneID),
) coordinator.PaneView {
	var child layout.Widget
	if backed, ok := webView.(gtkBacked); ok {
		child = f.widgets.WrapWidget(backed.GtkWidget())
	}

	pv := NewPaneView(f.widgets, paneID, child, gate, onClick)
	pv.AttachClickGesture()
	return pv
}
