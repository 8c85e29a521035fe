package ui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/gridbrowser/internal/infrastructure/config"
	"github.com/bnema/gridbrowser/internal/logging"
	"github.com/bnema/gridbrowser/internal/ui/component"
	"github.com/bnema/gridbrowser/internal/ui/coordinator"
	"github.com/bnema/gridbrowser/internal/ui/layout"
	"github.com/bnema/gridbrowser/internal/ui/theme"
)

const (
	// AppID is the application identifier for GTK.
	AppID = "com.github.bnema.gridbrowser"
)

var _ component.ToolbarHandler = (*coordinator.GridCoordinator)(nil)

// App wraps the GTK Application and manages the browser lifecycle.
type App struct {
	deps   *Dependencies
	gtkApp *gtk.Application
	window *gtk.ApplicationWindow

	toolbar   *component.Toolbar
	renderer  *layout.GridRenderer
	gridCoord *coordinator.GridCoordinator

	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancelCause(deps.Ctx)
	deps.Ctx = ctx
	if deps.Theme == nil {
		deps.Theme = theme.NewManager(ctx, deps.Config)
	}

	return &App{
		deps:   deps,
		cancel: cancel,
	}, nil
}

func gtkApplicationFlags() gio.ApplicationFlags {
	return gio.ApplicationNonUnique
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication(AppID, gtkApplicationFlags())
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}

	a.gtkApp.ConnectActivate(func() {
		a.onActivate(ctx)
	})
	a.gtkApp.ConnectShutdown(func() {
		a.onShutdown(ctx)
	})

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

// onActivate is called when the GTK application is activated.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	if a.window != nil {
		a.window.Present()
		return
	}

	a.createMainWindow(ctx)
	a.initGrid(ctx)

	cfg := a.deps.Config
	if err := a.gridCoord.Init(ctx, cfg.Grid.InitialRows, cfg.Grid.InitialColumns); err != nil {
		log.Error().Err(err).Msg("failed to build initial grid")
		a.gtkApp.Quit()
		return
	}

	a.initConfigWatcher(ctx)
	a.window.Present()
}

func (a *App) createMainWindow(ctx context.Context) {
	cfg := a.deps.Config

	a.window = gtk.NewApplicationWindow(a.gtkApp)
	a.window.SetTitle(cfg.Window.Title)
	a.window.SetDefaultSize(cfg.Window.Width, cfg.Window.Height)

	a.toolbar = component.NewToolbar(ctx, nil)
	a.window.SetTitlebar(a.toolbar.Widget())

	if display := gdk.DisplayGetDefault(); display != nil {
		a.deps.Theme.ApplyToDisplay(ctx, display)
	}
}

// initGrid wires the coordinator, renderer and toolbar together.
func (a *App) initGrid(ctx context.Context) {
	widgets := layout.NewGtkWidgetFactory()

	a.gridCoord = coordinator.NewGridCoordinator(
		ctx,
		a.deps.GridUC,
		a.deps.NavigateUC,
		a.deps.WebViews,
		component.NewGtkPaneViewFactory(widgets),
	)
	a.renderer = layout.NewGridRenderer(widgets, a.gridCoord, *logging.FromContext(ctx))

	a.gridCoord.SetRenderer(a.renderer)
	a.gridCoord.SetAddressDisplay(a.toolbar)
	a.toolbar.SetHandler(a.gridCoord)

	a.window.SetChild(a.renderer.Root().GtkWidget())
}

func (a *App) initConfigWatcher(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.deps.ConfigManager == nil {
		log.Debug().Msg("no config manager available, skipping watcher")
		return
	}

	// Callbacks arrive on the fsnotify goroutine.
	a.deps.ConfigManager.OnConfigChange(func(newCfg *config.Config) {
		coreglib.IdleAdd(func() {
			a.applyAppearanceConfig(ctx, newCfg)
		})
	})

	if err := a.deps.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("failed to start config watcher")
		return
	}
	log.Debug().Msg("config watcher initialized")
}

func (a *App) applyAppearanceConfig(ctx context.Context, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if a.deps.Theme.UpdateFromConfig(ctx, cfg, gdk.DisplayGetDefault()) {
		logging.FromContext(ctx).Info().Msg("appearance config updated")
	}
}

func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	if a.gridCoord != nil {
		a.gridCoord.Shutdown(ctx)
	}
	if a.cancel != nil {
		a.cancel(context.Canceled)
	}
}

// Quit requests the GTK application to exit.
func (a *App) Quit() {
	if a.gtkApp != nil {
		a.gtkApp.Quit()
	}
}

// RunWithArgs creates and runs the application. Command line flags were
// already consumed by cobra, so GTK only sees the program name.
func RunWithArgs(ctx context.Context, deps *Dependencies) int {
	app, err := New(deps)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to create app")
		return 1
	}
	setupSignalHandler(deps.Ctx, app)
	return app.Run(deps.Ctx, os.Args[:1])
}

func setupSignalHandler(ctx context.Context, app *App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		coreglib.IdleAdd(app.Quit)
	}()
}
