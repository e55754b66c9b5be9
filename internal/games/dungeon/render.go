package dungeon

import (
	"fmt"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// Symbol tags what a render event draws.
type Symbol uint8

const (
	SymbolPlayer Symbol = iota
	SymbolMonster
	SymbolFireball
	SymbolSphere
	SymbolInferno
	SymbolExit
)

// Rune returns the single-width glyph for the symbol.
func (s Symbol) Rune() rune {
	switch s {
	case SymbolPlayer:
		return '@'
	case SymbolMonster:
		return 'M'
	case SymbolFireball:
		return '*'
	case SymbolSphere:
		return 'o'
	case SymbolInferno:
		return '#'
	case SymbolExit:
		return '>'
	default:
		return '?'
	}
}

// Color returns the colour tag the symbol is drawn with.
func (s Symbol) Color() core.Color {
	switch s {
	case SymbolPlayer:
		return core.ColorBrightYellow
	case SymbolMonster:
		return core.ColorBrightGreen
	case SymbolFireball:
		return core.ColorRed
	case SymbolSphere:
		return core.ColorBlue
	case SymbolInferno:
		return core.ColorOrange
	case SymbolExit:
		return core.ColorCyan
	default:
		return core.ColorDefault
	}
}

// String returns the symbol name.
func (s Symbol) String() string {
	switch s {
	case SymbolPlayer:
		return "player"
	case SymbolMonster:
		return "monster"
	case SymbolFireball:
		return "fireball"
	case SymbolSphere:
		return "sphere"
	case SymbolInferno:
		return "inferno"
	case SymbolExit:
		return "exit"
	default:
		return "unknown"
	}
}

// SpellSymbol returns the projectile symbol of a spell.
func SpellSymbol(k SpellKind) Symbol {
	switch k {
	case Sphere:
		return SymbolSphere
	case Inferno:
		return SymbolInferno
	default:
		return SymbolFireball
	}
}

// RenderKind discriminates RenderEvent.
type RenderKind uint8

const (
	RenderCreate RenderKind = iota
	RenderMove
	RenderRemove
)

// RenderEvent tells the presentation layer that an entity appeared, moved or
// disappeared. Old is only set for RenderMove; Color is unset for RenderRemove.
type RenderEvent struct {
	Kind   RenderKind
	Symbol Symbol
	Color  core.Color
	Pos    core.Vec
	Old    core.Vec
}

// CreateEvent builds a Create event.
func CreateEvent(sym Symbol, pos core.Vec) RenderEvent {
	return RenderEvent{Kind: RenderCreate, Symbol: sym, Color: sym.Color(), Pos: pos}
}

// MoveEvent builds a Move event.
func MoveEvent(sym Symbol, old, pos core.Vec) RenderEvent {
	return RenderEvent{Kind: RenderMove, Symbol: sym, Color: sym.Color(), Old: old, Pos: pos}
}

// RemoveEvent builds a Remove event.
func RemoveEvent(sym Symbol, pos core.Vec) RenderEvent {
	return RenderEvent{Kind: RenderRemove, Symbol: sym, Pos: pos}
}

// String formats the event for trace logs.
func (e RenderEvent) String() string {
	switch e.Kind {
	case RenderCreate:
		return fmt.Sprintf("Create{%s %v}", e.Symbol, e.Pos.Cell())
	case RenderMove:
		return fmt.Sprintf("Move{%s %v->%v}", e.Symbol, e.Old.Cell(), e.Pos.Cell())
	case RenderRemove:
		return fmt.Sprintf("Remove{%s %v}", e.Symbol, e.Pos.Cell())
	default:
		return "Unknown{}"
	}
}
