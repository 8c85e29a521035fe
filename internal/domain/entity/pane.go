// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "time"

// DefaultPaneURL is the page every freshly created pane starts loading.
const DefaultPaneURL = "http://www.apple.com"

// PaneID uniquely identifies a pane within the grid.
type PaneID string

// Pane represents a single browsing context (one web view cell of the grid).
// Each pane navigates independently and keeps its own current URI.
type Pane struct {
	ID        PaneID
	URI       string
	CreatedAt time.Time
}

// NewPane creates a new pane that will start at the given URI.
func NewPane(id PaneID, uri string) *Pane {
	return &Pane{
		ID:        id,
		URI:       uri,
		CreatedAt: time.Now(),
	}
}
