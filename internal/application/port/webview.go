// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import (
	"context"
)

// WebViewID uniquely identifies a WebView instance.
type WebViewID uint64

// WebView defines the port interface for the embedded browser engine of one pane.
// Implementations deliver callbacks on the main thread.
type WebView interface {
	// ID returns the unique identifier for this WebView.
	ID() WebViewID

	// LoadURI navigates to the specified URI. Starting a new load supersedes
	// any load in flight.
	LoadURI(ctx context.Context, uri string) error

	// GoBack navigates back in history. No-op without a back entry.
	GoBack(ctx context.Context) error

	// GoForward navigates forward in history. No-op without a forward entry.
	GoForward(ctx context.Context) error

	// URI returns the current URI, or "" before anything committed.
	URI() string

	// SetOnLoadCommitted registers the callback fired when a new page has
	// started loading. Passing nil removes it.
	SetOnLoadCommitted(fn func(uri string))

	// Destroy releases the engine and everything it holds.
	Destroy()
}

// WebViewFactory creates WebView instances, one per pane.
type WebViewFactory interface {
	Create(ctx context.Context) (WebView, error)
}
