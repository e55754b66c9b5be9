package tui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dungeon/internal/input"
)

// Control is a key handled by the front end rather than the simulation.
type Control int

const (
	ControlNone Control = iota
	ControlInterrupt
	ControlScreenshot
	ControlPause
	ControlRestart
)

// KeyMapper translates Bubble Tea key and mouse messages to raw input events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapControl reports whether the key is a front-end control.
func (km *KeyMapper) MapControl(msg tea.KeyMsg) Control {
	switch msg.String() {
	case "ctrl+c":
		return ControlInterrupt
	case "ctrl+s":
		return ControlScreenshot
	case "p", "P":
		return ControlPause
	case "r", "R":
		return ControlRestart
	}
	return ControlNone
}

// MapKey returns the tracker key name of a key message. Letters are folded to
// lower case so bindings work with caps lock. Pastes are dropped.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (input.Key, bool) {
	if msg.Paste {
		return "", false
	}

	name := msg.String()
	switch name {
	case "", "ctrl+@":
		return "", false
	case " ", "space":
		return input.KeySpace, true
	}

	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 {
		return input.Key(string(unicode.ToLower(msg.Runes[0]))), true
	}
	return input.Key(strings.ToLower(name)), true
}

// MapMouse converts a mouse message to tracker events at screen coordinates.
// Terminals that report releases without a button release every held button,
// so held is consulted for the buttons currently down.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, held func(input.Input) bool) []input.RawEvent {
	x, y := msg.X, msg.Y

	switch msg.Action {
	case tea.MouseActionPress:
		if s, ok := wheel(msg.Button); ok {
			return []input.RawEvent{input.ScrollEvent(s, x, y)}
		}
		if b, ok := button(msg.Button); ok {
			return []input.RawEvent{input.MousePressEvent(b, x, y)}
		}
		return []input.RawEvent{input.MouseMoveEvent(x, y)}

	case tea.MouseActionRelease:
		if b, ok := button(msg.Button); ok {
			return []input.RawEvent{input.MouseReleaseEvent(b, x, y)}
		}
		var events []input.RawEvent
		for _, b := range []input.Button{input.ButtonLeft, input.ButtonRight, input.ButtonMiddle} {
			if held != nil && held(mouseInput(b)) {
				events = append(events, input.MouseReleaseEvent(b, x, y))
			}
		}
		if len(events) == 0 {
			events = append(events, input.MouseMoveEvent(x, y))
		}
		return events

	case tea.MouseActionMotion:
		return []input.RawEvent{input.MouseMoveEvent(x, y)}
	}

	return nil
}

func button(b tea.MouseButton) (input.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return input.ButtonLeft, true
	case tea.MouseButtonRight:
		return input.ButtonRight, true
	case tea.MouseButtonMiddle:
		return input.ButtonMiddle, true
	default:
		return input.ButtonNone, false
	}
}

func wheel(b tea.MouseButton) (input.Scroll, bool) {
	switch b {
	case tea.MouseButtonWheelUp:
		return input.ScrollUp, true
	case tea.MouseButtonWheelDown:
		return input.ScrollDown, true
	case tea.MouseButtonWheelLeft:
		return input.ScrollLeft, true
	case tea.MouseButtonWheelRight:
		return input.ScrollRight, true
	default:
		return input.ScrollNone, false
	}
}

func mouseInput(b input.Button) input.Input {
	switch b {
	case input.ButtonRight:
		return input.MouseRight
	case input.ButtonMiddle:
		return input.MouseMiddle
	default:
		return input.MouseLeft
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ", "space":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
