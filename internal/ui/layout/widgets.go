// Package layout provides GTK widget abstractions and the grid render step.
// It defines interfaces that wrap GTK types, enabling unit testing without GTK runtime.
package layout

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/gridbrowser/internal/domain/entity"
)

// Orientation represents the orientation for layout widgets.
type Orientation = gtk.Orientation

// Orientation constants matching GTK values.
const (
	OrientationHorizontal = gtk.OrientationHorizontal
	OrientationVertical   = gtk.OrientationVertical
)

// Widget is the base interface that all GTK widgets implement.
type Widget interface {
	SetVisible(visible bool)
	IsVisible() bool

	// Pointer events
	SetCanTarget(canTarget bool)

	// Layout
	SetHexpand(expand bool)
	SetVexpand(expand bool)

	// CSS styling
	AddCssClass(cssClass string)
	RemoveCssClass(cssClass string)
	HasCssClass(cssClass string) bool

	// Parent management
	Unparent()
	HasParent() bool

	// GTK interop - returns the underlying GTK widget for embedding
	GtkWidget() *gtk.Widget
}

// BoxWidget wraps gtk.Box for linear layouts.
type BoxWidget interface {
	Widget

	Append(child Widget)
	Remove(child Widget)

	SetHomogeneous(homogeneous bool)
	SetSpacing(spacing int)
}

// OverlayWidget wraps gtk.Overlay for layered content.
type OverlayWidget interface {
	Widget

	SetChild(child Widget)
	AddOverlay(overlay Widget)
}

// WidgetFactory creates widget instances.
// This abstraction allows tests to inject mock factories.
type WidgetFactory interface {
	NewBox(orientation Orientation, spacing int) BoxWidget
	NewOverlay() OverlayWidget

	// Wrap existing GTK widget
	WrapWidget(w *gtk.Widget) Widget
}

// PaneWidgetProvider resolves the widget that displays a pane.
// This decouples the grid renderer from the concrete pane view.
type PaneWidgetProvider interface {
	// PaneWidget returns nil when the pane has no view.
	PaneWidget(id entity.PaneID) Widget
}
