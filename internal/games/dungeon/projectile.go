package dungeon

import "github.com/vovakirdan/tui-dungeon/internal/core"

// Projectile is a spell shot travelling in a straight line.
type Projectile struct {
	kind     SpellKind
	pos      core.Vec
	velocity core.Vec // Distance per tick
	lastTick uint64
}

// NewProjectile creates a projectile moving along direction at speed units per tick.
// A zero direction yields a stationary projectile.
func NewProjectile(kind SpellKind, pos, direction core.Vec, speed float64, now uint64) *Projectile {
	return &Projectile{
		kind:     kind,
		pos:      pos,
		velocity: direction.Normalize().Scale(speed),
		lastTick: now,
	}
}

// Kind returns the spell that produced the projectile.
func (p *Projectile) Kind() SpellKind { return p.kind }

// Position returns the current position.
func (p *Projectile) Position() core.Vec { return p.pos }

// Velocity returns the per-tick displacement.
func (p *Projectile) Velocity() core.Vec { return p.velocity }

// NextLocation returns where the projectile would be at now.
func (p *Projectile) NextLocation(now uint64) core.Vec {
	return p.pos.Add(p.velocity.Scale(float64(elapsed(p.lastTick, now))))
}

// SetLocation commits a move.
func (p *Projectile) SetLocation(pos core.Vec, now uint64) {
	p.pos = pos
	p.lastTick = now
}

// elapsed returns now-since, or 0 if the ticker has not advanced.
func elapsed(since, now uint64) uint64 {
	if now <= since {
		return 0
	}
	return now - since
}
