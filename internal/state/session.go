package state

import (
	"time"

	"github.com/five82/pokesearch/internal/pokedex"
)

// Phase reports whether a roster has been loaded yet.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseLoaded
)

func (p Phase) String() string {
	if p == PhaseLoaded {
		return "loaded"
	}
	return "empty"
}

// Session is the per-run application state. Transitions return a new value
// and leave the receiver untouched.
type Session struct {
	Roster     []pokedex.Creature
	Filter     string
	Selected   *pokedex.Creature
	Loaded     bool
	LastLoaded time.Time
}

// Phase returns PhaseLoaded once any fetch has succeeded.
func (s Session) Phase() Phase {
	if s.Loaded {
		return PhaseLoaded
	}
	return PhaseEmpty
}

// WithRoster replaces the roster wholesale. Filter and selection are kept,
// even if the selected record is no longer in the new roster.
func (s Session) WithRoster(roster []pokedex.Creature) Session {
	s.Roster = cloneRoster(roster)
	s.Loaded = true
	s.LastLoaded = time.Now()
	return s
}

// WithFilter sets the filter text.
func (s Session) WithFilter(text string) Session {
	s.Filter = text
	return s
}

// WithSelection selects a copy of c, replacing any earlier selection.
func (s Session) WithSelection(c pokedex.Creature) Session {
	s.Selected = &c
	return s
}

// Visible derives the rows to render from the roster and filter.
func (s Session) Visible() []pokedex.Creature {
	return pokedex.Filter(s.Roster, s.Filter)
}

// ShowNoFilterHeading reports whether the "no filter" heading is shown,
// which happens whenever the filter is empty regardless of selection.
func (s Session) ShowNoFilterHeading() bool {
	return s.Filter == ""
}

func cloneRoster(items []pokedex.Creature) []pokedex.Creature {
	if len(items) == 0 {
		return nil
	}
	dup := make([]pokedex.Creature, len(items))
	copy(dup, items)
	return dup
}
