package ui

import (
	"context"
	"testing"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gridbrowser/internal/application/port/mocks"
	"github.com/bnema/gridbrowser/internal/application/usecase"
	"github.com/bnema/gridbrowser/internal/infrastructure/config"
)

func TestGTKApplicationFlags_AreNonUnique(t *testing.T) {
	flags := gtkApplicationFlags()

	assert.Equal(t, gio.ApplicationNonUnique, flags)
	assert.NotEqual(t, gio.ApplicationFlagsNone, flags)
}

func validDeps(t *testing.T) *Dependencies {
	t.Helper()
	return &Dependencies{
		Ctx:        context.Background(),
		Config:     config.DefaultConfig(),
		WebViews:   mocks.NewMockWebViewFactory(t),
		GridUC:     usecase.NewManageGridUseCase(usecase.NewSequentialIDGenerator("pane"), "about:blank"),
		NavigateUC: usecase.NewNavigateUseCase(false),
	}
}

func TestDependencies_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Dependencies)
		missing string
	}{
		{name: "complete", mutate: func(*Dependencies) {}},
		{name: "no context", mutate: func(d *Dependencies) { d.Ctx = nil }, missing: "Ctx"},
		{name: "no config", mutate: func(d *Dependencies) { d.Config = nil }, missing: "Config"},
		{name: "no web view factory", mutate: func(d *Dependencies) { d.WebViews = nil }, missing: "WebViews"},
		{name: "no grid use case", mutate: func(d *Dependencies) { d.GridUC = nil }, missing: "GridUC"},
		{name: "no navigate use case", mutate: func(d *Dependencies) { d.NavigateUC = nil }, missing: "NavigateUC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDeps(t)
			tt.mutate(d)

			err := d.Validate()
			if tt.missing == "" {
				assert.NoError(t, err)
				return
			}
			var depErr DependencyError
			require.ErrorAs(t, err, &depErr)
			assert.Equal(t, tt.missing, depErr.Name)
		})
	}
}

func TestNew_DefaultsThemeManager(t *testing.T) {
	d := validDeps(t)

	app, err := New(d)

	require.NoError(t, err)
	assert.NotNil(t, app.deps.Theme)
}
