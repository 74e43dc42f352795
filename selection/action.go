package selection

import (
	"fmt"

	"github.com/lixenwraith/worldmap/catalog"
)

// Kind identifies a user-initiated transition
type Kind uint8

const (
	KindNone      Kind = iota
	KindToggle         // click on a region shape
	KindClearAll       // click on "Clear All"
	KindSetActive      // click on a selected region card
	KindDismiss        // click on the panel's dismiss control
)

var kindNames = [...]string{
	KindNone:      "none",
	KindToggle:    "toggle",
	KindClearAll:  "clear-all",
	KindSetActive: "set-active",
	KindDismiss:   "dismiss",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Action is one dispatched transition; ID is unused for ClearAll and Dismiss
type Action struct {
	Kind Kind
	ID   catalog.RegionID
}

func ToggleRegion(id catalog.RegionID) Action { return Action{Kind: KindToggle, ID: id} }
func Clear() Action                           { return Action{Kind: KindClearAll} }
func Activate(id catalog.RegionID) Action     { return Action{Kind: KindSetActive, ID: id} }
func Dismiss() Action                         { return Action{Kind: KindDismiss} }

func (a Action) String() string {
	if a.ID.IsNone() {
		return a.Kind.String()
	}
	return a.Kind.String() + " " + string(a.ID)
}

// Apply runs the transition named by a. KindNone returns s unchanged.
func Apply(s State, cat Lookup, a Action) (State, error) {
	switch a.Kind {
	case KindNone:
		return s, nil
	case KindToggle:
		return Toggle(s, cat, a.ID)
	case KindClearAll:
		return ClearAll(s), nil
	case KindSetActive:
		return SetActive(s, a.ID)
	case KindDismiss:
		return SetActive(s, catalog.None)
	default:
		return s, fmt.Errorf("apply: unknown action %s", a.Kind)
	}
}
