package sound

import (
	"time"

	"github.com/lixenwraith/worldmap/selection"
)

// Cue identifies a feedback sound
type Cue int

const (
	CueNone Cue = iota
	CueSelect
	CueDeselect
	CueClear
)

func (c Cue) String() string {
	switch c {
	case CueNone:
		return "none"
	case CueSelect:
		return "select"
	case CueDeselect:
		return "deselect"
	case CueClear:
		return "clear"
	}
	return "cue"
}

var cueNotes = map[Cue][]Note{
	CueSelect:   {{Freq: 880, Duration: 80 * time.Millisecond}},
	CueDeselect: {{Freq: 440, Duration: 80 * time.Millisecond}},
	CueClear: {
		{Freq: 660, Duration: 70 * time.Millisecond},
		{Freq: 330, Duration: 110 * time.Millisecond},
	},
}

// Notes returns the notes played for a cue
func (c Cue) Notes() []Note {
	return cueNotes[c]
}

// CueFor picks the sound for a dispatched action. Rejected and
// state-preserving actions are silent.
func CueFor(a selection.Action, prev, next selection.State) Cue {
	switch a.Kind {
	case selection.KindToggle:
		wasSelected, isSelected := prev.IsSelected(a.ID), next.IsSelected(a.ID)
		switch {
		case !wasSelected && isSelected:
			return CueSelect
		case wasSelected && !isSelected:
			return CueDeselect
		}
	case selection.KindClearAll:
		if prev.Count() > 0 {
			return CueClear
		}
	}
	return CueNone
}
