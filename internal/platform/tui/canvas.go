package tui

import (
	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon"
	"github.com/vovakirdan/tui-dungeon/internal/input"
)

// Arena origin inside the canvas, leaving room for the border.
const (
	arenaX = 1
	arenaY = 1
)

// Canvas is the framed arena drawing surface. Full redraws render the whole
// game; between them render events are applied incrementally.
type Canvas struct {
	screen *core.Screen
	width  int       // Arena width in cells
	height int       // Arena height in cells
	arena  core.Rect // Arena cells, relative to the arena origin

	// occupants counts the entities of each symbol standing in a cell.
	occupants map[core.Cell]map[dungeon.Symbol]int
}

// NewCanvas creates a canvas for an arena of the given size.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		screen:    core.NewScreen(width+2, height+2),
		width:     width,
		height:    height,
		arena:     core.NewRect(0, 0, width, height),
		occupants: make(map[core.Cell]map[dungeon.Symbol]int),
	}
	c.drawBorder()
	return c
}

// Screen returns the underlying buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// ArenaPoint converts a pointer in screen cells to arena coordinates.
func (c *Canvas) ArenaPoint(p input.Pointer) core.Vec {
	return core.V(float64(p.X-arenaX), float64(p.Y-arenaY))
}

// Reset blanks the arena and forgets every occupant.
func (c *Canvas) Reset() {
	c.screen.Clear()
	c.drawBorder()
	clear(c.occupants)
}

// Redraw repaints the border and every entity of g.
func (c *Canvas) Redraw(g *dungeon.Game) {
	c.Reset()
	c.enter(g.Exit().Cell(), dungeon.SymbolExit)
	for _, p := range g.Projectiles() {
		c.enter(p.Position().Cell(), dungeon.SpellSymbol(p.Kind()))
	}
	for _, m := range g.Monsters() {
		c.enter(m.Position().Cell(), dungeon.SymbolMonster)
	}
	c.enter(g.Player().Position().Cell(), dungeon.SymbolPlayer)
	g.Render(c.screen, arenaX, arenaY)
}

// Apply draws one frame of render events. Every cell an event touches is
// repainted once with the highest ranked symbol still standing in it, so a
// mover leaving a cell uncovers whatever stays behind.
func (c *Canvas) Apply(events []dungeon.RenderEvent) {
	if len(events) == 0 {
		return
	}

	touched := make(map[core.Cell]struct{})
	for _, e := range events {
		switch e.Kind {
		case dungeon.RenderCreate:
			cell := e.Pos.Cell()
			c.enter(cell, e.Symbol)
			touched[cell] = struct{}{}

		case dungeon.RenderMove:
			old, cell := e.Old.Cell(), e.Pos.Cell()
			c.leave(old, e.Symbol)
			c.enter(cell, e.Symbol)
			touched[old] = struct{}{}
			touched[cell] = struct{}{}

		case dungeon.RenderRemove:
			cell := e.Pos.Cell()
			c.leave(cell, e.Symbol)
			touched[cell] = struct{}{}
		}
	}

	for cell := range touched {
		c.paint(cell)
	}
}

func (c *Canvas) enter(cell core.Cell, sym dungeon.Symbol) {
	syms := c.occupants[cell]
	if syms == nil {
		syms = make(map[dungeon.Symbol]int)
		c.occupants[cell] = syms
	}
	syms[sym]++
}

// leave removes one occupant. Untracked occupants are ignored.
func (c *Canvas) leave(cell core.Cell, sym dungeon.Symbol) {
	syms := c.occupants[cell]
	if syms[sym] == 0 {
		return
	}
	syms[sym]--
	if syms[sym] == 0 {
		delete(syms, sym)
	}
	if len(syms) == 0 {
		delete(c.occupants, cell)
	}
}

// paint draws the top occupant of a cell, or blanks it.
func (c *Canvas) paint(cell core.Cell) {
	top, found := dungeon.Symbol(0), false
	for sym := range c.occupants[cell] {
		if !found || rank(sym) > rank(top) {
			top, found = sym, true
		}
	}
	if !found {
		c.draw(cell, core.Glyph{Rune: ' ', Color: core.ColorDefault})
		return
	}
	c.draw(cell, glyph(top))
}

// rank orders symbols sharing a cell, matching the layering of a full redraw.
func rank(s dungeon.Symbol) int {
	switch s {
	case dungeon.SymbolPlayer:
		return 3
	case dungeon.SymbolMonster:
		return 2
	case dungeon.SymbolExit:
		return 0
	default:
		return 1
	}
}

// draw writes a glyph at an arena cell. Cells outside the arena are ignored
// so the border is never overwritten.
func (c *Canvas) draw(cell core.Cell, g core.Glyph) {
	if !c.arena.Contains(cell.X, cell.Y) {
		return
	}
	c.screen.SetGlyph(arenaX+cell.X, arenaY+cell.Y, g)
}

func (c *Canvas) drawBorder() {
	c.screen.DrawBox(core.NewRect(0, 0, c.width+2, c.height+2), core.ColorGray)
}

func glyph(s dungeon.Symbol) core.Glyph {
	return core.Glyph{Rune: s.Rune(), Color: s.Color()}
}
