package port

import (
	"context"

	"github.com/bnema/gridbrowser/internal/domain/entity"
)

// AddressDisplay is the window-level address entry showing the selected pane's URI.
type AddressDisplay interface {
	SetText(text string)
	Text() string
}

// NavigationObserver receives load-committed events tagged with their source pane.
type NavigationObserver interface {
	OnNavigationCommitted(ctx context.Context, source entity.PaneID, uri string)
}

// ClickGate decides, per click attempt, whether a pane click should be recognized.
type ClickGate interface {
	ShouldAdmitClick(id entity.PaneID) bool
}
