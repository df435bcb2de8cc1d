// Package view models calendar navigation as explicit state transitions.
// Sessions are values; every transition returns the next session.
package view

import "cropcare/pkg/calendar"

type State int

const (
	NoSelection State = iota
	CropSelected
	DetailView
)

func (s State) String() string {
	switch s {
	case NoSelection:
		return "NoSelection"
	case CropSelected:
		return "CropSelected"
	case DetailView:
		return "DetailView"
	}
	return "Unknown"
}

type Session struct {
	State     State  `json:"state"`
	CropID    string `json:"crop_id,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// SelectCrop moves NoSelection to CropSelected. Picking a crop from any other
// state is ignored.
func (s Session) SelectCrop(cropID string) Session {
	if s.State != NoSelection || cropID == "" {
		return s
	}
	return Session{State: CropSelected, CropID: cropID}
}

// SelectDate opens the detail view only when idx has a record for the
// selected crop at timestamp. Otherwise the session is unchanged.
func (s Session) SelectDate(idx calendar.Index, timestamp string) Session {
	if s.State != CropSelected {
		return s
	}
	if _, err := idx.Lookup(s.CropID, timestamp); err != nil {
		return s
	}
	return Session{State: DetailView, CropID: s.CropID, Timestamp: timestamp}
}

func (s Session) Back() Session {
	switch s.State {
	case DetailView:
		return Session{State: CropSelected, CropID: s.CropID}
	case CropSelected:
		return Session{State: NoSelection}
	}
	return s
}
