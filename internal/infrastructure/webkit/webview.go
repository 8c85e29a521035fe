// Package webkit adapts WebKitGTK web views to the application ports.
package webkit

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/gridbrowser/internal/application/port"
)

var (
	// ErrWebViewDestroyed is returned by operations on a destroyed web view.
	ErrWebViewDestroyed = errors.New("webkit: webview has been destroyed")
	// ErrWebViewNotInitialized is returned when WebKitGTK could not create a view.
	ErrWebViewNotInitialized = errors.New("webkit: webview not initialized")
)

var viewIDCounter atomic.Uint64

var _ port.WebView = (*WebView)(nil)

// WebView wraps a WebKitGTK WebView and implements port.WebView.
type WebView struct {
	view *webkit.WebView
	id   port.WebViewID

	mu            sync.RWMutex
	destroyed     bool
	onCommitted   func(uri string)
	loadChangedID coreglib.SignalHandle
}

func newWebView(view *webkit.WebView) *WebView {
	wv := &WebView{
		view: view,
		id:   port.WebViewID(viewIDCounter.Add(1)),
	}
	wv.loadChangedID = view.ConnectLoadChanged(wv.handleLoadChanged)
	return wv
}

func (w *WebView) handleLoadChanged(event webkit.LoadEvent) {
	if event != webkit.LoadCommitted {
		return
	}

	w.mu.RLock()
	fn := w.onCommitted
	destroyed := w.destroyed
	w.mu.RUnlock()

	if destroyed || fn == nil {
		return
	}
	fn(w.view.URI())
}

// ID returns the unique identifier for this WebView.
func (w *WebView) ID() port.WebViewID {
	return w.id
}

// LoadURI starts loading uri. Loading is asynchronous.
func (w *WebView) LoadURI(_ context.Context, uri string) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}
	w.view.LoadURI(uri)
	return nil
}

// GoBack navigates back in history. A view without history does nothing.
func (w *WebView) GoBack(_ context.Context) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}
	if w.view.CanGoBack() {
		w.view.GoBack()
	}
	return nil
}

// GoForward navigates forward in history. A view without history does nothing.
func (w *WebView) GoForward(_ context.Context) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}
	if w.view.CanGoForward() {
		w.view.GoForward()
	}
	return nil
}

// URI returns the current URI, or "" when nothing was loaded.
func (w *WebView) URI() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ""
	}
	return w.view.URI()
}

// SetOnLoadCommitted registers the load-committed callback. nil clears it.
func (w *WebView) SetOnLoadCommitted(fn func(uri string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onCommitted = fn
}

// Destroy stops loading and disconnects signals. The GTK widget itself is
// released once it has no parent.
func (w *WebView) Destroy() {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return
	}
	w.destroyed = true
	w.onCommitted = nil
	w.mu.Unlock()

	// StopLoading may emit load-changed synchronously; the lock must be free.
	w.view.HandlerDisconnect(w.loadChangedID)
	w.view.StopLoading()
}

// GtkWidget returns the web view as a GTK widget for embedding.
func (w *WebView) GtkWidget() *gtk.Widget {
	return &w.view.Widget
}
