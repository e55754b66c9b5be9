package dungeon

import (
	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// Player is the user-controlled caster.
type Player struct {
	pos   core.Vec
	speed float64 // Distance per tick

	energy           uint32
	maxEnergy        uint32
	rechargeDelay    uint64 // Idle ticks before recharge starts
	rechargeInterval uint64 // Accumulated ticks per energy point
	recharge         uint64 // Accumulator, always < rechargeInterval

	spells []*Spell
	active int

	lastTick       uint64
	lastActionTick uint64
}

// NewPlayer creates a player from config. Speed in cfg is units per second.
func NewPlayer(cfg config.PlayerConfig, spells []*Spell, now uint64) *Player {
	interval := cfg.RechargeInterval
	if interval == 0 {
		interval = 1
	}
	active := cfg.ActiveSpell
	if active < 0 || active >= len(spells) {
		active = 0
	}
	return &Player{
		pos:              core.V(cfg.Start.X, cfg.Start.Y),
		speed:            cfg.Speed / 1000,
		energy:           min(cfg.StartEnergy, cfg.MaxEnergy),
		maxEnergy:        cfg.MaxEnergy,
		rechargeDelay:    cfg.RechargeDelay,
		rechargeInterval: interval,
		spells:           spells,
		active:           active,
		lastTick:         now,
		lastActionTick:   now,
	}
}

// Position returns the current position.
func (p *Player) Position() core.Vec { return p.pos }

// Energy returns the current energy.
func (p *Player) Energy() uint32 { return p.energy }

// MaxEnergy returns the energy cap.
func (p *Player) MaxEnergy() uint32 { return p.maxEnergy }

// Spells returns the loadout in slot order.
func (p *Player) Spells() []*Spell { return p.spells }

// ActiveIndex returns the selected loadout slot.
func (p *Player) ActiveIndex() int { return p.active }

// ActiveSpell returns the selected spell, or nil with an empty loadout.
func (p *Player) ActiveSpell() *Spell {
	if len(p.spells) == 0 {
		return nil
	}
	return p.spells[p.active]
}

// ActiveSpellCanEvoke reports whether the selected spell is off cooldown and affordable.
func (p *Player) ActiveSpellCanEvoke(now uint64) bool {
	s := p.ActiveSpell()
	if s == nil {
		return false
	}
	return !s.OnCooldown(now) && p.energy >= s.Cost()
}

// ActiveSpellEvoke casts the selected spell toward direction.
// It panics if ActiveSpellCanEvoke(now) is false.
func (p *Player) ActiveSpellEvoke(direction core.Vec, now uint64) []*Projectile {
	if !p.ActiveSpellCanEvoke(now) {
		panic("dungeon: ActiveSpellEvoke called while the active spell cannot be evoked")
	}
	s := p.ActiveSpell()
	p.energy -= s.Cost()
	p.lastActionTick = now
	return s.Evoke(p.pos, direction, now)
}

// NextLocation returns where a move along direction would end at now.
// The player is not modified.
func (p *Player) NextLocation(direction core.Vec, now uint64) core.Vec {
	step := direction.Normalize().Scale(p.speed * float64(elapsed(p.lastTick, now)))
	return p.pos.Add(step)
}

// SetLocation commits a move.
func (p *Player) SetLocation(pos core.Vec, now uint64) {
	p.pos = pos
	p.lastTick = now
	p.lastActionTick = now
}

// Refresh advances the tick reference without moving. Used for blocked moves.
func (p *Player) Refresh(now uint64) {
	p.lastTick = now
}

// ChargeEnergy recharges energy after the player has been idle long enough.
// It must only be called on frames without movement or casts.
func (p *Player) ChargeEnergy(now uint64) {
	if elapsed(p.lastActionTick, now) > p.rechargeDelay {
		p.recharge += elapsed(p.lastTick, now)
		gain := p.recharge / p.rechargeInterval
		p.recharge %= p.rechargeInterval

		if uint64(p.maxEnergy-p.energy) <= gain {
			p.energy = p.maxEnergy
		} else {
			p.energy += uint32(gain) //#nosec G115 -- gain is below maxEnergy-energy
		}
		if p.energy == p.maxEnergy {
			p.recharge = 0
		}
	}
	p.lastTick = now
}

// CycleSpell moves the active slot forward or backward with wraparound.
func (p *Player) CycleSpell(forward bool) {
	n := len(p.spells)
	if n == 0 {
		return
	}
	if forward {
		p.active = (p.active + 1) % n
	} else {
		p.active = (p.active - 1 + n) % n
	}
}

// SelectSpell activates slot i. Invalid slots are ignored.
func (p *Player) SelectSpell(i int) {
	if i < 0 || i >= len(p.spells) {
		return
	}
	p.active = i
}
