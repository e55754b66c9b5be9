package dungeon

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/core"
)

func newTestPlayer(t *testing.T, startEnergy uint32) *Player {
	t.Helper()
	cfg := config.DefaultDungeonConfig()
	cfg.Player.Start = config.Point{X: 5, Y: 5}
	cfg.Player.StartEnergy = startEnergy

	spells, err := NewLoadout(cfg.Player.Loadout, cfg.Spells)
	if err != nil {
		t.Fatalf("NewLoadout() error: %v", err)
	}
	return NewPlayer(cfg.Player, spells, 0)
}

func TestPlayerNextLocation(t *testing.T) {
	p := newTestPlayer(t, 100)

	tests := []struct {
		name     string
		dir      core.Vec
		now      uint64
		expected core.Vec
	}{
		{"right for one second", core.V(1, 0), 1000, core.V(10, 5)},
		{"unnormalized input", core.V(0, -4), 200, core.V(5, 4)},
		{"diagonal keeps speed", core.V(1, 1), 1000, core.V(5+5/math.Sqrt2, 5+5/math.Sqrt2)},
		{"zero vector stays", core.V(0, 0), 5000, core.V(5, 5)},
		{"no time elapsed", core.V(1, 0), 0, core.V(5, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.NextLocation(tc.dir, tc.now)
			if !got.Near(tc.expected, 1e-9) {
				t.Errorf("NextLocation(%v, %d) = %v, expected %v", tc.dir, tc.now, got, tc.expected)
			}
		})
	}

	if p.Position() != core.V(5, 5) {
		t.Errorf("NextLocation should not move the player, got %v", p.Position())
	}
}

func TestPlayerSetLocationIdle(t *testing.T) {
	p := newTestPlayer(t, 100)

	next := p.NextLocation(core.V(1, 0), 400)
	p.SetLocation(next, 400)

	if got := p.NextLocation(core.V(0, 0), 400); got != next {
		t.Errorf("NextLocation(zero) after SetLocation = %v, expected %v", got, next)
	}
	if got := p.NextLocation(core.V(0, 0), 9000); got != next {
		t.Errorf("NextLocation(zero) later = %v, expected %v", got, next)
	}
}

func TestPlayerRefreshKeepsPosition(t *testing.T) {
	p := newTestPlayer(t, 100)
	p.Refresh(1000)

	if p.Position() != core.V(5, 5) {
		t.Errorf("Refresh() moved the player to %v", p.Position())
	}
	// Only the time after the refresh counts toward the next move.
	got := p.NextLocation(core.V(1, 0), 1200)
	if !got.Near(core.V(6, 5), 1e-9) {
		t.Errorf("NextLocation() after Refresh = %v, expected (6, 5)", got)
	}
}

func TestPlayerFireballCast(t *testing.T) {
	p := newTestPlayer(t, 100)
	const now = 3000

	if !p.ActiveSpellCanEvoke(now) {
		t.Fatal("fresh player should be able to cast")
	}
	shots := p.ActiveSpellEvoke(core.V(1, 0), now)
	if len(shots) != 1 {
		t.Fatalf("ActiveSpellEvoke() returned %d projectiles, expected 1", len(shots))
	}
	if p.Energy() != 90 {
		t.Errorf("Energy() = %d, expected 90", p.Energy())
	}

	fireball := p.ActiveSpell()
	if !fireball.OnCooldown(now + 1) {
		t.Error("OnCooldown(now+1) should be true")
	}
	if fireball.OnCooldown(now + 801) {
		t.Error("OnCooldown(now+801) should be false")
	}
	if p.ActiveSpellCanEvoke(now + 500) {
		t.Error("ActiveSpellCanEvoke() should be false during cooldown")
	}
}

func TestPlayerInfernoCostDeductedOnce(t *testing.T) {
	p := newTestPlayer(t, 100)
	p.SelectSpell(2)

	shots := p.ActiveSpellEvoke(core.V(0, 0), 0)
	if len(shots) != 24 {
		t.Errorf("Inferno returned %d projectiles, expected 24", len(shots))
	}
	if p.Energy() != 20 {
		t.Errorf("Energy() = %d, expected 20", p.Energy())
	}
}

func TestPlayerEvokeWithoutEnergyPanics(t *testing.T) {
	p := newTestPlayer(t, 5)

	if p.ActiveSpellCanEvoke(0) {
		t.Fatal("ActiveSpellCanEvoke() should be false with 5 energy")
	}

	defer func() {
		if recover() == nil {
			t.Error("ActiveSpellEvoke() should panic when the spell cannot be evoked")
		}
	}()
	p.ActiveSpellEvoke(core.V(1, 0), 0)
}

func TestPlayerChargeEnergy(t *testing.T) {
	p := newTestPlayer(t, 50)

	steps := []struct {
		now      uint64
		expected uint32
	}{
		{500, 50},  // idle delay not reached
		{1000, 50}, // exactly the delay, still not past it
		{1400, 52}, // 400 accumulated ticks
		{1500, 52}, // 100 carried
		{1600, 53}, // carry completes a point
		{3600, 63},
	}

	for _, s := range steps {
		p.ChargeEnergy(s.now)
		if p.Energy() != s.expected {
			t.Errorf("ChargeEnergy(%d): Energy() = %d, expected %d", s.now, p.Energy(), s.expected)
		}
	}
}

func TestPlayerChargeEnergyClampsAtMax(t *testing.T) {
	p := newTestPlayer(t, 99)

	p.ChargeEnergy(5000)
	if p.Energy() != 100 {
		t.Errorf("Energy() = %d, expected 100", p.Energy())
	}
	if p.recharge != 0 {
		t.Errorf("accumulator = %d, expected reset at max energy", p.recharge)
	}
}

func TestPlayerMovementBlocksRecharge(t *testing.T) {
	p := newTestPlayer(t, 50)

	p.SetLocation(core.V(6, 5), 2000)
	p.ChargeEnergy(2500)
	if p.Energy() != 50 {
		t.Errorf("Energy() = %d, expected no recharge right after moving", p.Energy())
	}
}

func TestPlayerEnergyStaysInRange(t *testing.T) {
	p := newTestPlayer(t, 100)

	for now := uint64(0); now < 60000; now += 50 {
		if now%700 == 0 && p.ActiveSpellCanEvoke(now) {
			p.ActiveSpellEvoke(core.V(1, 0), now)
		} else {
			p.ChargeEnergy(now)
		}
		if p.Energy() > p.MaxEnergy() {
			t.Fatalf("Energy() = %d exceeds max %d at tick %d", p.Energy(), p.MaxEnergy(), now)
		}
	}
}

func TestPlayerSpellSelection(t *testing.T) {
	tests := []struct {
		name     string
		apply    func(p *Player)
		expected int
	}{
		{"cycle forward", func(p *Player) { p.CycleSpell(true) }, 1},
		{"cycle backward wraps", func(p *Player) { p.CycleSpell(false) }, 2},
		{"cycle forward wraps", func(p *Player) { p.SelectSpell(2); p.CycleSpell(true) }, 0},
		{"select valid", func(p *Player) { p.SelectSpell(1) }, 1},
		{"select out of range", func(p *Player) { p.SelectSpell(7) }, 0},
		{"select negative", func(p *Player) { p.SelectSpell(-1) }, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer(t, 100)
			tc.apply(p)
			if p.ActiveIndex() != tc.expected {
				t.Errorf("ActiveIndex() = %d, expected %d", p.ActiveIndex(), tc.expected)
			}
		})
	}
}
