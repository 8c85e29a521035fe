package webkit

import (
	"context"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/gridbrowser/internal/application/port"
	"github.com/bnema/gridbrowser/internal/logging"
)

var _ port.WebViewFactory = (*WebViewFactory)(nil)

// Settings holds the engine settings applied to every new web view.
type Settings struct {
	EnableJavaScript bool
	EnableWebGL      bool
	// HardwareAcceleration forces GPU compositing when true, lets WebKit decide otherwise.
	HardwareAcceleration bool
}

// DefaultSettings enables JavaScript and WebGL.
func DefaultSettings() Settings {
	return Settings{
		EnableJavaScript: true,
		EnableWebGL:      true,
	}
}

// WebViewFactory creates WebView instances. Must be used on the GTK main thread.
type WebViewFactory struct {
	settings Settings
}

// NewWebViewFactory creates a new WebViewFactory.
func NewWebViewFactory(settings Settings) *WebViewFactory {
	return &WebViewFactory{settings: settings}
}

// Create creates a new, empty web view.
func (f *WebViewFactory) Create(ctx context.Context) (port.WebView, error) {
	log := logging.FromContext(ctx)

	view := webkit.NewWebView()
	if view == nil {
		return nil, ErrWebViewNotInitialized
	}
	view.SetHExpand(true)
	view.SetVExpand(true)
	f.applySettings(view)

	wv := newWebView(view)
	log.Debug().Uint64("webview_id", uint64(wv.ID())).Msg("webview created")
	return wv, nil
}

func (f *WebViewFactory) applySettings(view *webkit.WebView) {
	settings := view.Settings()
	if settings == nil {
		return
	}
	settings.SetEnableJavascript(f.settings.EnableJavaScript)
	settings.SetEnableWebgl(f.settings.EnableWebGL)
	if f.settings.HardwareAcceleration {
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	}
}
