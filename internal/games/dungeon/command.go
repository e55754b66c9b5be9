package dungeon

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/input"
)

// CommandKind identifies a decoded command.
type CommandKind uint8

const (
	CmdMove CommandKind = iota
	CmdEvoke
	CmdEvokeMouse
	CmdCycleSpell
	CmdSelectSpell
	CmdQuit
)

// String returns the command name.
func (k CommandKind) String() string {
	switch k {
	case CmdMove:
		return "Move"
	case CmdEvoke:
		return "Evoke"
	case CmdEvokeMouse:
		return "EvokeMouse"
	case CmdCycleSpell:
		return "CycleSpell"
	case CmdSelectSpell:
		return "SelectSpell"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is one decoded player intent. Dir is set for Move and Evoke,
// Forward for CycleSpell and Index for SelectSpell.
type Command struct {
	Kind    CommandKind
	Dir     core.Direction
	Forward bool
	Index   int
}

// String formats the command with its argument.
func (c Command) String() string {
	switch c.Kind {
	case CmdMove, CmdEvoke:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Dir)
	case CmdCycleSpell:
		return fmt.Sprintf("%s(forward=%t)", c.Kind, c.Forward)
	case CmdSelectSpell:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Index)
	default:
		return c.Kind.String()
	}
}

// Commands is one frame's decoded input.
type Commands struct {
	// Movement is the sum of unit vectors of every active move key. It is not
	// normalized, so two perpendicular keys give a diagonal.
	Movement core.Vec
	Moves    []Command // Move commands behind Movement, for tracing
	Actions  []Command // One-shot commands, in kind order
}

// Quit reports whether a Quit command was decoded.
func (c Commands) Quit() bool {
	for _, a := range c.Actions {
		if a.Kind == CmdQuit {
			return true
		}
	}
	return false
}

// Casts reports whether an Evoke or EvokeMouse command was decoded.
func (c Commands) Casts() bool {
	for _, a := range c.Actions {
		if a.Kind == CmdEvoke || a.Kind == CmdEvokeMouse {
			return true
		}
	}
	return false
}

var moveKeys = map[input.Key]core.Direction{
	input.KeyUp:    core.DirUp,
	input.KeyDown:  core.DirDown,
	input.KeyLeft:  core.DirLeft,
	input.KeyRight: core.DirRight,
	"w":            core.DirUp,
	"s":            core.DirDown,
	"a":            core.DirLeft,
	"d":            core.DirRight,
}

var evokeKeys = map[input.Key]core.Direction{
	"i": core.DirUp,
	"k": core.DirDown,
	"j": core.DirLeft,
	"l": core.DirRight,
}

var cycleKeys = map[input.Key]bool{
	"q": false,
	"u": false,
	"e": true,
	"o": true,
}

// Decode folds a frame's input states into commands. Movement comes from
// Active states so holding a key keeps walking; everything else fires on
// Press only so holding a cast key does not recast every frame.
func Decode(states input.StateSet) Commands {
	var cmds Commands

	for _, s := range states.Sorted() {
		switch s.Tag {
		case input.TagActive:
			if s.Input.Kind != input.KindKey {
				continue
			}
			if dir, ok := moveKeys[s.Input.Key]; ok {
				cmds.Movement = cmds.Movement.Add(dir.Vec())
				cmds.Moves = append(cmds.Moves, Command{Kind: CmdMove, Dir: dir})
			}

		case input.TagPress:
			if cmd, ok := decodePress(s.Input); ok {
				cmds.Actions = append(cmds.Actions, cmd)
			}
		}
	}

	sort.SliceStable(cmds.Actions, func(i, j int) bool {
		a, b := cmds.Actions[i], cmds.Actions[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Dir != b.Dir {
			return a.Dir < b.Dir
		}
		if a.Forward != b.Forward {
			return !a.Forward
		}
		return a.Index < b.Index
	})

	return cmds
}

func decodePress(in input.Input) (Command, bool) {
	if in == input.MouseLeft {
		return Command{Kind: CmdEvokeMouse}, true
	}
	if in.Kind != input.KindKey {
		return Command{}, false
	}

	k := in.Key
	if dir, ok := evokeKeys[k]; ok {
		return Command{Kind: CmdEvoke, Dir: dir}, true
	}
	if fwd, ok := cycleKeys[k]; ok {
		return Command{Kind: CmdCycleSpell, Forward: fwd}, true
	}
	if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		return Command{Kind: CmdSelectSpell, Index: int(k[0] - '1')}, true
	}
	if k == input.KeyEsc {
		return Command{Kind: CmdQuit}, true
	}
	return Command{}, false
}
