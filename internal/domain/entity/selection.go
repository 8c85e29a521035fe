package entity

// Selection holds the identity of at most one selected pane.
// It stores an ID rather than a pointer so a removed pane can be detected.
type Selection struct {
	id     PaneID
	active bool
}

// Current returns the selected pane ID and whether anything is selected.
func (s *Selection) Current() (PaneID, bool) {
	return s.id, s.active
}

// IsSelected reports whether id is the selected pane.
func (s *Selection) IsSelected(id PaneID) bool {
	return s.active && s.id == id
}

// HasSelection reports whether a pane is selected.
func (s *Selection) HasSelection() bool {
	return s.active
}

// Select makes id the selected pane and returns the previous selection.
// changed is false when id was already selected.
func (s *Selection) Select(id PaneID) (previous PaneID, hadPrevious, changed bool) {
	previous, hadPrevious = s.id, s.active
	if hadPrevious && previous == id {
		return previous, hadPrevious, false
	}
	s.id = id
	s.active = true
	return previous, hadPrevious, true
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.id = ""
	s.active = false
}
