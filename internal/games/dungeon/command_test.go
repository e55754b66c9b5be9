package dungeon

import (
	"testing"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/input"
)

func key(k string) input.Input {
	return input.KeyInput(input.Key(k))
}

func TestDecodeMovement(t *testing.T) {
	tests := []struct {
		name     string
		states   []input.State
		expected core.Vec
	}{
		{"nothing", nil, core.V(0, 0)},
		{"arrow up", []input.State{input.Active(key("up"))}, core.V(0, -1)},
		{"wasd right", []input.State{input.Active(key("d"))}, core.V(1, 0)},
		{"diagonal", []input.State{input.Active(key("up")), input.Active(key("right"))}, core.V(1, -1)},
		{"opposites cancel", []input.State{input.Active(key("a")), input.Active(key("d"))}, core.V(0, 0)},
		{"press alone does not walk", []input.State{input.Press(key("left"))}, core.V(0, 0)},
		{"release does not walk", []input.State{input.Release(key("left"))}, core.V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Decode(input.NewStateSet(tc.states...))
			if got.Movement != tc.expected {
				t.Errorf("Decode().Movement = %v, expected %v", got.Movement, tc.expected)
			}
		})
	}
}

func TestDecodeActions(t *testing.T) {
	tests := []struct {
		name     string
		state    input.State
		expected []Command
	}{
		{"evoke up", input.Press(key("i")), []Command{{Kind: CmdEvoke, Dir: core.DirUp}}},
		{"evoke left", input.Press(key("j")), []Command{{Kind: CmdEvoke, Dir: core.DirLeft}}},
		{"evoke down", input.Press(key("k")), []Command{{Kind: CmdEvoke, Dir: core.DirDown}}},
		{"evoke right", input.Press(key("l")), []Command{{Kind: CmdEvoke, Dir: core.DirRight}}},
		{"held evoke key", input.Active(key("l")), nil},
		{"mouse", input.Press(input.MouseLeft), []Command{{Kind: CmdEvokeMouse}}},
		{"right mouse", input.Press(input.MouseRight), nil},
		{"cycle back q", input.Press(key("q")), []Command{{Kind: CmdCycleSpell, Forward: false}}},
		{"cycle back u", input.Press(key("u")), []Command{{Kind: CmdCycleSpell, Forward: false}}},
		{"cycle forward e", input.Press(key("e")), []Command{{Kind: CmdCycleSpell, Forward: true}}},
		{"cycle forward o", input.Press(key("o")), []Command{{Kind: CmdCycleSpell, Forward: true}}},
		{"select 1", input.Press(key("1")), []Command{{Kind: CmdSelectSpell, Index: 0}}},
		{"select 9", input.Press(key("9")), []Command{{Kind: CmdSelectSpell, Index: 8}}},
		{"zero is unbound", input.Press(key("0")), nil},
		{"quit", input.Press(key("esc")), []Command{{Kind: CmdQuit}}},
		{"unbound key", input.Press(key("x")), nil},
		{"scroll", input.Press(input.WheelUp), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Decode(input.NewStateSet(tc.state)).Actions
			if len(got) != len(tc.expected) {
				t.Fatalf("Decode().Actions = %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("Decode().Actions[%d] = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestDecodeActionOrder(t *testing.T) {
	states := input.NewStateSet(
		input.Press(key("esc")),
		input.Press(key("2")),
		input.Press(key("l")),
		input.Press(key("i")),
		input.Press(input.MouseLeft),
		input.Press(key("e")),
		input.Press(key("q")),
	)

	expected := []Command{
		{Kind: CmdEvoke, Dir: core.DirUp},
		{Kind: CmdEvoke, Dir: core.DirRight},
		{Kind: CmdEvokeMouse},
		{Kind: CmdCycleSpell, Forward: false},
		{Kind: CmdCycleSpell, Forward: true},
		{Kind: CmdSelectSpell, Index: 1},
		{Kind: CmdQuit},
	}

	got := Decode(states)
	if len(got.Actions) != len(expected) {
		t.Fatalf("Decode().Actions = %v, expected %v", got.Actions, expected)
	}
	for i := range expected {
		if got.Actions[i] != expected[i] {
			t.Errorf("Actions[%d] = %v, expected %v", i, got.Actions[i], expected[i])
		}
	}
	if !got.Quit() {
		t.Error("Quit() should be true")
	}
}

func TestCommandsCasts(t *testing.T) {
	tests := []struct {
		name     string
		states   []input.State
		expected bool
	}{
		{"nothing", nil, false},
		{"move only", []input.State{input.Active(key("w"))}, false},
		{"cycle only", []input.State{input.Press(key("e"))}, false},
		{"evoke key", []input.State{input.Press(key("i"))}, true},
		{"mouse click", []input.State{input.Press(input.MouseLeft)}, true},
		{"held evoke key", []input.State{input.Active(key("i"))}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decode(input.NewStateSet(tc.states...)).Casts(); got != tc.expected {
				t.Errorf("Casts() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
