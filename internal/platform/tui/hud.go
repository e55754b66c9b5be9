package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon"
)

// loadingGlyphs are the bar levels of the energy and cooldown gauges.
var loadingGlyphs = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hudValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	slotActiveStyle = lipgloss.NewStyle().Background(lipgloss.Color("57")).Foreground(lipgloss.Color("229"))
	slotActiveDim   = lipgloss.NewStyle().Background(lipgloss.Color("57")).Foreground(lipgloss.Color("238"))
	slotIdleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	slotIdleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// gauge returns the bar glyph for a fill fraction in [0, 1].
func gauge(frac float64) rune {
	i := core.Clamp(int(frac*float64(len(loadingGlyphs))), 0, len(loadingGlyphs)-1)
	return loadingGlyphs[i]
}

// renderHUD draws the status lines under the arena: clock, score, kills,
// energy and the spell loadout as of ticker value now.
func renderHUD(g *dungeon.Game, now uint64, high int) string {
	p := g.Player()

	stats := []string{
		hudLabelStyle.Render("Time ") + hudValueStyle.Render(fmt.Sprintf("%ds", g.Elapsed()/1000)),
		hudLabelStyle.Render("Score ") + hudValueStyle.Render(fmt.Sprintf("%d", g.Score())),
		hudLabelStyle.Render("Kills ") + hudValueStyle.Render(fmt.Sprintf("%d", g.Kills())),
		hudLabelStyle.Render("Best ") + hudValueStyle.Render(fmt.Sprintf("%d", high)),
		hudLabelStyle.Render("Energy ") + hudValueStyle.Render(fmt.Sprintf("%3d%c", p.Energy(), energyGauge(p))),
	}

	return strings.Join(stats, "  ") + "\n" + renderSpells(p, now)
}

func energyGauge(p *dungeon.Player) rune {
	if p.MaxEnergy() == 0 {
		return loadingGlyphs[0]
	}
	return gauge(float64(p.Energy()) / float64(p.MaxEnergy()))
}

// renderSpells draws one slot per spell: symbol, remaining cooldown bar and
// cost. The active slot is highlighted; spells the player cannot afford are
// dimmed.
func renderSpells(p *dungeon.Player, now uint64) string {
	slots := make([]string, 0, len(p.Spells()))
	for i, s := range p.Spells() {
		affordable := p.Energy() >= s.Cost()

		var style lipgloss.Style
		switch {
		case i == p.ActiveIndex() && affordable:
			style = slotActiveStyle
		case i == p.ActiveIndex():
			style = slotActiveDim
		case affordable:
			style = slotIdleStyle
		default:
			style = slotIdleDim
		}

		sym := dungeon.SpellSymbol(s.Kind())
		cooldown := loadingGlyphs[0]
		if s.Cooldown() > 0 {
			cooldown = gauge(float64(s.RemainingCooldown(now)) / float64(s.Cooldown()))
		}

		slot := style.Render(fmt.Sprintf("%d ", i+1)) +
			styleFor(sym.Color()).Inherit(style).Render(string([]rune{sym.Rune(), cooldown})) +
			style.Render(fmt.Sprintf(" %02d", s.Cost()))
		slots = append(slots, slot)
	}
	return hudLabelStyle.Render("Spells ") + strings.Join(slots, hudLabelStyle.Render(" ═ "))
}

// helpLine lists the bindings.
func helpLine() string {
	return hudHelpStyle.Render("wasd/arrows move · ijkl/click cast · q/e cycle · 1-9 select · p pause · esc quit")
}
