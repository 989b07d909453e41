package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diegoclair/map-rotation-bot/internal/domain/rotation"
)

// Control identifiers carried by the message buttons
const (
	ControlHome = "view_overview"

	controlModePrefix  = "view_mode_"
	controlMapPrefix   = "view_map_"
	controlEventPrefix = "view_event_"
)

var ErrUnknownControl = errors.New("unknown control")

// Mode selects which button set a message shows
type Mode string

const (
	ModeMap   Mode = "map"
	ModeMajor Mode = "major"
	ModeMinor Mode = "minor"
)

// Action is a parsed button press. The set of implementations is closed.
type Action interface {
	ControlID() string
	isAction()
}

type GoHome struct{}

type SwitchMode struct {
	Mode Mode
}

type SelectLocation struct {
	Location rotation.Location
}

type SelectEvent struct {
	Event rotation.Condition
}

func (GoHome) ControlID() string           { return ControlHome }
func (a SwitchMode) ControlID() string     { return controlModePrefix + string(a.Mode) }
func (a SelectLocation) ControlID() string { return controlMapPrefix + a.Location.ID() }
func (a SelectEvent) ControlID() string    { return controlEventPrefix + string(a.Event) }

func (GoHome) isAction()         {}
func (SwitchMode) isAction()     {}
func (SelectLocation) isAction() {}
func (SelectEvent) isAction()    {}

// ParseControl turns a control identifier into an Action
func ParseControl(id string) (Action, error) {
	switch {
	case id == ControlHome:
		return GoHome{}, nil

	case strings.HasPrefix(id, controlModePrefix):
		switch m := Mode(strings.TrimPrefix(id, controlModePrefix)); m {
		case ModeMap, ModeMajor, ModeMinor:
			return SwitchMode{Mode: m}, nil
		}

	case strings.HasPrefix(id, controlMapPrefix):
		if l, ok := rotation.ParseLocation(strings.TrimPrefix(id, controlMapPrefix)); ok {
			return SelectLocation{Location: l}, nil
		}

	case strings.HasPrefix(id, controlEventPrefix):
		c, ok := rotation.ParseCondition(strings.TrimPrefix(id, controlEventPrefix))
		if ok && c != rotation.None {
			return SelectEvent{Event: c}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownControl, id)
}
