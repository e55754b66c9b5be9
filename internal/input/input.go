// Package input turns raw press/release hardware events into per-frame
// semantic input states. It knows nothing about terminals: the platform layer
// translates its own key and mouse messages into RawEvent values.
package input

import (
	"fmt"
	"sort"
)

// Key names a keyboard key, e.g. "a", "up", "esc".
type Key string

// Named keys used by the dungeon bindings.
const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyEsc   Key = "esc"
	KeyEnter Key = "enter"
	KeySpace Key = "space"
)

// Button is a mouse button with a held state.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// Scroll is a wheel direction. Scrolling has no held state.
type Scroll uint8

const (
	ScrollNone Scroll = iota
	ScrollUp
	ScrollDown
	ScrollLeft
	ScrollRight
)

// Kind discriminates the Input union.
type Kind uint8

const (
	KindKey Kind = iota
	KindMouseLeft
	KindMouseRight
	KindMouseMiddle
	KindScrollUp
	KindScrollDown
	KindScrollLeft
	KindScrollRight
)

// Input is a single physical input. It is a comparable value so it can be
// used as a map key; Key is only meaningful for KindKey.
type Input struct {
	Kind Kind
	Key  Key
}

// Predefined mouse inputs.
var (
	MouseLeft   = Input{Kind: KindMouseLeft}
	MouseRight  = Input{Kind: KindMouseRight}
	MouseMiddle = Input{Kind: KindMouseMiddle}
	WheelUp     = Input{Kind: KindScrollUp}
	WheelDown   = Input{Kind: KindScrollDown}
	WheelLeft   = Input{Kind: KindScrollLeft}
	WheelRight  = Input{Kind: KindScrollRight}
)

// KeyInput wraps a key as an Input.
func KeyInput(k Key) Input {
	return Input{Kind: KindKey, Key: k}
}

// String returns a readable form used in trace logs.
func (i Input) String() string {
	switch i.Kind {
	case KindKey:
		return "key:" + string(i.Key)
	case KindMouseLeft:
		return "mouse:left"
	case KindMouseRight:
		return "mouse:right"
	case KindMouseMiddle:
		return "mouse:middle"
	case KindScrollUp:
		return "scroll:up"
	case KindScrollDown:
		return "scroll:down"
	case KindScrollLeft:
		return "scroll:left"
	case KindScrollRight:
		return "scroll:right"
	default:
		return "unknown"
	}
}

func (b Button) input() (Input, bool) {
	switch b {
	case ButtonLeft:
		return MouseLeft, true
	case ButtonRight:
		return MouseRight, true
	case ButtonMiddle:
		return MouseMiddle, true
	default:
		return Input{}, false
	}
}

func (s Scroll) input() (Input, bool) {
	switch s {
	case ScrollUp:
		return WheelUp, true
	case ScrollDown:
		return WheelDown, true
	case ScrollLeft:
		return WheelLeft, true
	case ScrollRight:
		return WheelRight, true
	default:
		return Input{}, false
	}
}

// Tag is the semantic state of an input within one frame.
type Tag uint8

const (
	TagPress Tag = iota
	TagActive
	TagRelease
)

// String returns the tag name.
func (t Tag) String() string {
	switch t {
	case TagPress:
		return "Press"
	case TagActive:
		return "Active"
	case TagRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// State pairs an input with its frame tag.
type State struct {
	Tag   Tag
	Input Input
}

// Press builds a Press state.
func Press(i Input) State { return State{Tag: TagPress, Input: i} }

// Active builds an Active state.
func Active(i Input) State { return State{Tag: TagActive, Input: i} }

// Release builds a Release state.
func Release(i Input) State { return State{Tag: TagRelease, Input: i} }

// String formats the state as Tag(input).
func (s State) String() string {
	return fmt.Sprintf("%s(%s)", s.Tag, s.Input)
}

// StateSet is the deduplicated set of states of one frame.
type StateSet map[State]struct{}

// NewStateSet builds a set from the given states.
func NewStateSet(states ...State) StateSet {
	set := make(StateSet, len(states))
	for _, s := range states {
		set.add(s)
	}
	return set
}

func (set StateSet) add(s State) {
	set[s] = struct{}{}
}

// Has reports whether the state is present.
func (set StateSet) Has(s State) bool {
	_, ok := set[s]
	return ok
}

// Len returns the number of states.
func (set StateSet) Len() int {
	return len(set)
}

// Sorted returns the states in a stable order: by tag, then kind, then key.
// Map iteration is random, so anything order-dependent must use this.
func (set StateSet) Sorted() []State {
	out := make([]State, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Tag != b.Tag {
			return a.Tag < b.Tag
		}
		if a.Input.Kind != b.Input.Kind {
			return a.Input.Kind < b.Input.Kind
		}
		return a.Input.Key < b.Input.Key
	})
	return out
}

// Pointer is the last known mouse position in screen cells.
type Pointer struct {
	X, Y int
}

// EventType discriminates RawEvent.
type EventType uint8

const (
	EventNone EventType = iota
	EventKeyPress
	EventKeyRelease
	EventMousePress
	EventMouseRelease
	EventMouseMove
	EventScroll
)

// RawEvent is one hardware event as delivered by the platform.
// Mouse events always carry the pointer position in X and Y.
type RawEvent struct {
	Type   EventType
	Key    Key
	Button Button
	Scroll Scroll
	X, Y   int
}

// KeyPressEvent is a convenience constructor.
func KeyPressEvent(k Key) RawEvent { return RawEvent{Type: EventKeyPress, Key: k} }

// KeyReleaseEvent is a convenience constructor.
func KeyReleaseEvent(k Key) RawEvent { return RawEvent{Type: EventKeyRelease, Key: k} }

// MousePressEvent is a convenience constructor.
func MousePressEvent(b Button, x, y int) RawEvent {
	return RawEvent{Type: EventMousePress, Button: b, X: x, Y: y}
}

// MouseReleaseEvent is a convenience constructor.
func MouseReleaseEvent(b Button, x, y int) RawEvent {
	return RawEvent{Type: EventMouseRelease, Button: b, X: x, Y: y}
}

// MouseMoveEvent is a convenience constructor.
func MouseMoveEvent(x, y int) RawEvent {
	return RawEvent{Type: EventMouseMove, X: x, Y: y}
}

// ScrollEvent is a convenience constructor.
func ScrollEvent(s Scroll, x, y int) RawEvent {
	return RawEvent{Type: EventScroll, Scroll: s, X: x, Y: y}
}

func (e RawEvent) isMouse() bool {
	switch e.Type {
	case EventMousePress, EventMouseRelease, EventMouseMove, EventScroll:
		return true
	default:
		return false
	}
}
