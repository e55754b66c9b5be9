package dungeon

import (
	"fmt"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// SpellKind identifies a spell variant.
type SpellKind uint8

const (
	Fireball SpellKind = iota
	Sphere
	Inferno
)

// String returns the spell name as used in config files.
func (k SpellKind) String() string {
	switch k {
	case Fireball:
		return config.SpellFireball
	case Sphere:
		return config.SpellSphere
	case Inferno:
		return config.SpellInferno
	default:
		return "unknown"
	}
}

// ParseSpellKind maps a config spell name to its kind.
func ParseSpellKind(name string) (SpellKind, error) {
	switch name {
	case config.SpellFireball:
		return Fireball, nil
	case config.SpellSphere:
		return Sphere, nil
	case config.SpellInferno:
		return Inferno, nil
	default:
		return 0, fmt.Errorf("dungeon: unknown spell %q", name)
	}
}

// Spell is one castable spell with its own cooldown tracker.
// Cost and cooldown never change after construction.
type Spell struct {
	kind     SpellKind
	cost     uint32
	cooldown uint64
	speed    float64 // Projectile distance per tick

	lastCast uint64
	cast     bool // lastCast is only meaningful once cast is set
}

// NewSpell creates a spell of the given kind. cfg.Speed is in units per second.
func NewSpell(kind SpellKind, cfg config.SpellConfig) *Spell {
	return &Spell{
		kind:     kind,
		cost:     cfg.Cost,
		cooldown: cfg.Cooldown,
		speed:    cfg.Speed / 1000,
	}
}

// NewLoadout builds the player's ordered spell list from config names.
func NewLoadout(names []string, cfg config.SpellsConfig) ([]*Spell, error) {
	spells := make([]*Spell, 0, len(names))
	for _, name := range names {
		kind, err := ParseSpellKind(name)
		if err != nil {
			return nil, err
		}
		var sc config.SpellConfig
		switch kind {
		case Fireball:
			sc = cfg.Fireball
		case Sphere:
			sc = cfg.Sphere
		case Inferno:
			sc = cfg.Inferno
		}
		spells = append(spells, NewSpell(kind, sc))
	}
	return spells, nil
}

// Kind returns the spell variant.
func (s *Spell) Kind() SpellKind { return s.kind }

// Cost returns the energy cost of one cast.
func (s *Spell) Cost() uint32 { return s.cost }

// Cooldown returns the ticks between casts.
func (s *Spell) Cooldown() uint64 { return s.cooldown }

// Speed returns the projectile speed in distance per tick.
func (s *Spell) Speed() float64 { return s.speed }

// RemainingCooldown returns max(0, lastCast+cooldown-now), or 0 before the first cast.
func (s *Spell) RemainingCooldown(now uint64) uint64 {
	if !s.cast {
		return 0
	}
	ready := s.lastCast + s.cooldown
	if now >= ready {
		return 0
	}
	return ready - now
}

// OnCooldown reports whether the spell cannot be cast yet.
func (s *Spell) OnCooldown(now uint64) bool {
	return s.RemainingCooldown(now) > 0
}

// Evoke starts the cooldown and returns the spell's projectiles.
// Cost and cooldown are not checked here; the caster does that.
func (s *Spell) Evoke(origin, direction core.Vec, now uint64) []*Projectile {
	s.lastCast = now
	s.cast = true

	switch s.kind {
	case Inferno:
		out := make([]*Projectile, 0, len(infernoPattern))
		for _, shot := range infernoPattern {
			out = append(out, NewProjectile(s.kind, origin.Add(shot.offset), shot.direction, s.speed, now))
		}
		return out
	default:
		return []*Projectile{
			NewProjectile(s.kind, origin.Add(direction.Normalize()), direction, s.speed, now),
		}
	}
}

type infernoShot struct {
	offset    core.Vec
	direction core.Vec
}

// infernoPattern is the 24-shot ring: eight clusters around the caster, each
// firing straight out plus two shots skewed toward the neighbouring clusters.
var infernoPattern = buildInfernoPattern()

func buildInfernoPattern() []infernoShot {
	u := core.DirUp.Vec()
	d := core.DirDown.Vec()
	l := core.DirLeft.Vec()
	r := core.DirRight.Vec()

	clusters := []struct {
		offset core.Vec
		dirs   [3]core.Vec
	}{
		{u.Add(l), [3]core.Vec{u.Add(l.Scale(2)), u.Add(l), u.Scale(2).Add(l)}},
		{u, [3]core.Vec{u.Scale(2).Add(l), u, u.Scale(2).Add(r)}},
		{u.Add(r), [3]core.Vec{u.Scale(2).Add(r), u.Add(r), u.Add(r.Scale(2))}},
		{r, [3]core.Vec{r.Scale(2).Add(u), r, r.Scale(2).Add(d)}},
		{d.Add(r), [3]core.Vec{d.Add(r.Scale(2)), d.Add(r), d.Scale(2).Add(r)}},
		{d, [3]core.Vec{d.Scale(2).Add(r), d, d.Scale(2).Add(l)}},
		{d.Add(l), [3]core.Vec{d.Scale(2).Add(l), d.Add(l), d.Add(l.Scale(2))}},
		{l, [3]core.Vec{l.Scale(2).Add(d), l, l.Scale(2).Add(u)}},
	}

	shots := make([]infernoShot, 0, 24)
	for _, c := range clusters {
		for _, dir := range c.dirs {
			shots = append(shots, infernoShot{offset: c.offset, direction: dir})
		}
	}
	return shots
}
