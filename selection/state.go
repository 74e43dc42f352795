// Package selection holds the map's interaction state and the pure transitions over it.
//
// State is a value. Toggle, ClearAll and SetActive take the current state and return
// the next one without mutating their input, so any earlier State stays valid.
package selection

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/worldmap/catalog"
)

// ErrNotSelected is returned when activating a region outside the selection
var ErrNotSelected = errors.New("region not selected")

// Lookup resolves region attributes, satisfied by *catalog.Catalog
type Lookup interface {
	Lookup(id catalog.RegionID) (catalog.Attributes, bool)
}

// Entry is one selected region with its attribute snapshot
type Entry struct {
	ID catalog.RegionID
	catalog.Attributes
}

// State is the set of selected regions plus the active one.
// Invariants: every selected id came from the catalog; active is none or selected.
// The zero value is the empty state.
type State struct {
	selected map[catalog.RegionID]catalog.Attributes
	order    []catalog.RegionID // insertion order, display only
	active   catalog.RegionID
}

// Toggle deselects id if selected, clearing active when it pointed at id.
// Otherwise it selects id with a copy of its catalog attributes and makes it active.
// An id missing from the catalog leaves the state unchanged and returns ErrUnknownRegion.
func Toggle(s State, cat Lookup, id catalog.RegionID) (State, error) {
	if _, ok := s.selected[id]; ok {
		next := s.without(id)
		if next.active == id {
			next.active = catalog.None
		}
		return next, nil
	}

	attrs, ok := cat.Lookup(id)
	if !ok {
		return s, fmt.Errorf("toggle %q: %w", id, catalog.ErrUnknownRegion)
	}
	next := s.with(id, attrs)
	next.active = id
	return next, nil
}

// ClearAll returns the empty state
func ClearAll(State) State {
	return State{}
}

// SetActive makes id the active region, or clears it when id is none.
// A non-selected id leaves the state unchanged and returns ErrNotSelected.
func SetActive(s State, id catalog.RegionID) (State, error) {
	if id.IsNone() {
		s.active = catalog.None
		return s, nil
	}
	if _, ok := s.selected[id]; !ok {
		return s, fmt.Errorf("activate %q: %w", id, ErrNotSelected)
	}
	s.active = id
	return s, nil
}

// with returns a copy of s with id added at the end of the display order
func (s State) with(id catalog.RegionID, attrs catalog.Attributes) State {
	sel := make(map[catalog.RegionID]catalog.Attributes, len(s.selected)+1)
	for k, v := range s.selected {
		sel[k] = v
	}
	sel[id] = attrs

	order := make([]catalog.RegionID, len(s.order), len(s.order)+1)
	copy(order, s.order)
	order = append(order, id)

	return State{selected: sel, order: order, active: s.active}
}

// without returns a copy of s with id removed
func (s State) without(id catalog.RegionID) State {
	sel := make(map[catalog.RegionID]catalog.Attributes, len(s.selected))
	for k, v := range s.selected {
		if k != id {
			sel[k] = v
		}
	}

	order := make([]catalog.RegionID, 0, len(s.order))
	for _, k := range s.order {
		if k != id {
			order = append(order, k)
		}
	}

	return State{selected: sel, order: order, active: s.active}
}

// Count returns the number of selected regions
func (s State) Count() int {
	return len(s.selected)
}

func (s State) IsSelected(id catalog.RegionID) bool {
	_, ok := s.selected[id]
	return ok
}

// Attributes returns the snapshot stored for a selected region
func (s State) Attributes(id catalog.RegionID) (catalog.Attributes, bool) {
	a, ok := s.selected[id]
	return a, ok
}

// Selected returns the selection in insertion order
func (s State) Selected() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Entry{ID: id, Attributes: s.selected[id]})
	}
	return out
}

// Active returns the active region id, if any
func (s State) Active() (catalog.RegionID, bool) {
	return s.active, !s.active.IsNone()
}

// Panel returns the entry whose detail panel is shown.
// Shown only when active is set and still selected.
func (s State) Panel() (Entry, bool) {
	if s.active.IsNone() {
		return Entry{}, false
	}
	attrs, ok := s.selected[s.active]
	if !ok {
		return Entry{}, false
	}
	return Entry{ID: s.active, Attributes: attrs}, true
}

// FillColor returns the selected color for id, or unselected
func (s State) FillColor(id catalog.RegionID, unselected string) string {
	if attrs, ok := s.selected[id]; ok {
		return attrs.Color
	}
	return unselected
}

// CountLabel renders the selection count with singular/plural noun
func (s State) CountLabel() string {
	n := s.Count()
	if n == 1 {
		return "1 country selected"
	}
	return fmt.Sprintf("%d countries selected", n)
}
