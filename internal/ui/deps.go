// Package ui provides the GTK4 presentation layer for the grid browser.
package ui

import (
	"context"

	"github.com/bnema/gridbrowser/internal/application/port"
	"github.com/bnema/gridbrowser/internal/application/usecase"
	"github.com/bnema/gridbrowser/internal/infrastructure/config"
	"github.com/bnema/gridbrowser/internal/ui/theme"
)

// Dependencies holds all injected dependencies for the UI layer.
// This struct is created once at startup and passed to UI components.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config
	// ConfigManager enables hot reload of appearance settings (optional).
	ConfigManager *config.Manager

	Theme *theme.Manager

	WebViews port.WebViewFactory

	GridUC     *usecase.ManageGridUseCase
	NavigateUC *usecase.NavigateUseCase
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d == nil {
		return ErrMissingDependency("Dependencies")
	}
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.WebViews == nil {
		return ErrMissingDependency("WebViews")
	}
	if d.GridUC == nil {
		return ErrMissingDependency("GridUC")
	}
	if d.NavigateUC == nil {
		return ErrMissingDependency("NavigateUC")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
