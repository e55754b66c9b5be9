package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dungeon/internal/input"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected input.Key
		ok       bool
	}{
		{"letter", runeKey('w'), "w", true},
		{"caps letter", runeKey('W'), "w", true},
		{"digit", runeKey('3'), "3", true},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, input.KeyUp, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, input.KeyEsc, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, input.KeyEnter, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, input.KeySpace, true},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("wasd"), Paste: true}, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := km.MapKey(tc.msg)
			if got != tc.expected || ok != tc.ok {
				t.Errorf("MapKey(%q) = %q, %v, expected %q, %v", tc.msg.String(), got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestMapControl(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected Control
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ControlInterrupt},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, ControlScreenshot},
		{runeKey('p'), ControlPause},
		{runeKey('R'), ControlRestart},
		{runeKey('w'), ControlNone},
		{tea.KeyMsg{Type: tea.KeyEsc}, ControlNone},
	}

	for _, tc := range tests {
		if got := km.MapControl(tc.msg); got != tc.expected {
			t.Errorf("MapControl(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	nothingHeld := func(input.Input) bool { return false }

	tests := []struct {
		name     string
		msg      tea.MouseMsg
		expected input.RawEvent
	}{
		{
			"left press",
			tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			input.MousePressEvent(input.ButtonLeft, 4, 2),
		},
		{
			"right release",
			tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight},
			input.MouseReleaseEvent(input.ButtonRight, 1, 1),
		},
		{
			"wheel",
			tea.MouseMsg{X: 7, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
			input.ScrollEvent(input.ScrollDown, 7, 8),
		},
		{
			"motion",
			tea.MouseMsg{X: 9, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
			input.MouseMoveEvent(9, 3),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := km.MapMouse(tc.msg, nothingHeld)
			if len(got) != 1 || got[0] != tc.expected {
				t.Errorf("MapMouse() = %v, expected [%v]", got, tc.expected)
			}
		})
	}
}

func TestMapMouseAnonymousRelease(t *testing.T) {
	km := NewKeyMapper()
	leftHeld := func(i input.Input) bool { return i == input.MouseLeft }

	msg := tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
	got := km.MapMouse(msg, leftHeld)
	if len(got) != 1 || got[0] != input.MouseReleaseEvent(input.ButtonLeft, 3, 3) {
		t.Errorf("MapMouse() = %v, expected a left release", got)
	}

	got = km.MapMouse(msg, func(input.Input) bool { return false })
	if len(got) != 1 || got[0].Type != input.EventMouseMove {
		t.Errorf("MapMouse() with nothing held = %v, expected a move", got)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('q'), MenuActionQuit},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
