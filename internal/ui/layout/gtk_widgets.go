package layout

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Ensure implementations satisfy interfaces at compile time.
var (
	_ Widget        = (*gtkWidget)(nil)
	_ BoxWidget     = (*gtkBox)(nil)
	_ OverlayWidget = (*gtkOverlay)(nil)
	_ WidgetFactory = (*GtkWidgetFactory)(nil)
)

// gtkWidget wraps a gtk.Widget to implement the Widget interface.
type gtkWidget struct {
	inner *gtk.Widget
}

func (w *gtkWidget) SetVisible(visible bool)       { w.inner.SetVisible(visible) }
func (w *gtkWidget) IsVisible() bool               { return w.inner.Visible() }
func (w *gtkWidget) SetCanTarget(canTarget bool)   { w.inner.SetCanTarget(canTarget) }
func (w *gtkWidget) SetHexpand(expand bool)        { w.inner.SetHExpand(expand) }
func (w *gtkWidget) SetVexpand(expand bool)        { w.inner.SetVExpand(expand) }
func (w *gtkWidget) AddCssClass(class string)      { w.inner.AddCSSClass(class) }
func (w *gtkWidget) RemoveCssClass(class string)   { w.inner.RemoveCSSClass(class) }
func (w *gtkWidget) HasCssClass(class string) bool { return w.inner.HasCSSClass(class) }
func (w *gtkWidget) Unparent()                     { w.inner.Unparent() }
func (w *gtkWidget) HasParent() bool               { return w.inner.Parent() != nil }
func (w *gtkWidget) GtkWidget() *gtk.Widget        { return w.inner }

// gtkBox wraps gtk.Box to implement BoxWidget.
type gtkBox struct {
	gtkWidget
	box *gtk.Box
}

func (b *gtkBox) Append(child Widget) {
	if child == nil {
		return
	}
	b.box.Append(child.GtkWidget())
}

func (b *gtkBox) Remove(child Widget) {
	if child == nil {
		return
	}
	b.box.Remove(child.GtkWidget())
}

func (b *gtkBox) SetHomogeneous(homogeneous bool) { b.box.SetHomogeneous(homogeneous) }
func (b *gtkBox) SetSpacing(spacing int)          { b.box.SetSpacing(spacing) }

// gtkOverlay wraps gtk.Overlay to implement OverlayWidget.
type gtkOverlay struct {
	gtkWidget
	overlay *gtk.Overlay
}

func (o *gtkOverlay) SetChild(child Widget) {
	if child == nil {
		o.overlay.SetChild(nil)
		return
	}
	o.overlay.SetChild(child.GtkWidget())
}

func (o *gtkOverlay) AddOverlay(overlay Widget) {
	if overlay == nil {
		return
	}
	o.overlay.AddOverlay(overlay.GtkWidget())
}

// GtkWidgetFactory creates real GTK widgets. Must be used on the GTK main thread.
type GtkWidgetFactory struct{}

// NewGtkWidgetFactory creates a new GtkWidgetFactory.
func NewGtkWidgetFactory() *GtkWidgetFactory {
	return &GtkWidgetFactory{}
}

// NewBox creates a gtk.Box with the given orientation and spacing.
func (*GtkWidgetFactory) NewBox(orientation Orientation, spacing int) BoxWidget {
	box := gtk.NewBox(orientation, spacing)
	return &gtkBox{gtkWidget: gtkWidget{inner: &box.Widget}, box: box}
}

// NewOverlay creates a gtk.Overlay.
func (*GtkWidgetFactory) NewOverlay() OverlayWidget {
	overlay := gtk.NewOverlay()
	return &gtkOverlay{gtkWidget: gtkWidget{inner: &overlay.Widget}, overlay: overlay}
}

// WrapWidget wraps an existing GTK widget. Returns nil for a nil widget.
func (*GtkWidgetFactory) WrapWidget(w *gtk.Widget) Widget {
	if w == nil {
		return nil
	}
	return &gtkWidget{inner: w}
}
