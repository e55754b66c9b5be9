// Package config provides YAML-based dungeon configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
	"math"
)

// DungeonConfig contains all tunable constants of a dungeon run.
type DungeonConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Spells     SpellsConfig     `yaml:"spells"`
	Monsters   []MonsterConfig  `yaml:"monsters"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Point is a continuous arena position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ArenaConfig defines the playable area.
type ArenaConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Exit      Point   `yaml:"exit"`
	Proximity float64 `yaml:"proximity"` // Distance below which two entities collide
}

// PlayerConfig defines the player's movement and energy economy.
type PlayerConfig struct {
	Start            Point    `yaml:"start"`
	Speed            float64  `yaml:"speed"` // Units per second
	MaxEnergy        uint32   `yaml:"max_energy"`
	StartEnergy      uint32   `yaml:"start_energy"`
	RechargeDelay    uint64   `yaml:"recharge_delay"`    // Idle ticks before recharge starts
	RechargeInterval uint64   `yaml:"recharge_interval"` // Ticks per energy point
	Loadout          []string `yaml:"loadout"`           // Spell names in slot order
	ActiveSpell      int      `yaml:"active_spell"`
}

// SpellConfig defines one spell's economy and projectile speed.
type SpellConfig struct {
	Cost     uint32  `yaml:"cost"`
	Cooldown uint64  `yaml:"cooldown"` // Ticks
	Speed    float64 `yaml:"speed"`    // Units per second
}

// SpellsConfig holds the parameters of every spell kind.
type SpellsConfig struct {
	Fireball SpellConfig `yaml:"fireball"`
	Sphere   SpellConfig `yaml:"sphere"`
	Inferno  SpellConfig `yaml:"inferno"`
}

// MonsterConfig defines a monster present at the start of a run.
type MonsterConfig struct {
	Position Point   `yaml:"position"`
	Logic    int     `yaml:"logic"` // AI denominator, larger = steadier pursuit
	Speed    float64 `yaml:"speed"` // Units per second
}

// SpawnConfig defines periodic monster reinforcements.
type SpawnConfig struct {
	MaxLive  int     `yaml:"max_live"` // Spawn only while fewer monsters are alive
	Interval uint64  `yaml:"interval"` // Minimum ticks between spawns
	Position Point   `yaml:"position"`
	Logic    int     `yaml:"logic"`
	Speed    float64 `yaml:"speed"`
}

// InputConfig tunes the terminal input adapter.
type InputConfig struct {
	// KeyHoldMs is how long a key counts as held after its last press or
	// auto-repeat when the terminal does not report key releases.
	KeyHoldMs int `yaml:"key_hold_ms"`
}

// Spell names accepted in PlayerConfig.Loadout.
const (
	SpellFireball = "fireball"
	SpellSphere   = "sphere"
	SpellInferno  = "inferno"
)

// Validate checks the config for values the simulation cannot run with.
// All problems are reported together.
func (c DungeonConfig) Validate() error {
	var errs []error

	if c.Arena.Width < 3 || c.Arena.Height < 3 {
		errs = append(errs, fmt.Errorf("arena: size %dx%d is below 3x3", c.Arena.Width, c.Arena.Height))
	}
	if !(c.Arena.Proximity > 0) || math.IsInf(c.Arena.Proximity, 0) {
		errs = append(errs, fmt.Errorf("arena: proximity must be positive and finite, got %v", c.Arena.Proximity))
	}
	errs = appendPoint(errs, "arena: exit", c.Arena.Exit)
	errs = appendPoint(errs, "player: start", c.Player.Start)
	errs = appendSpeed(errs, "player", c.Player.Speed)
	if c.Player.StartEnergy > c.Player.MaxEnergy {
		errs = append(errs, fmt.Errorf("player: start_energy %d exceeds max_energy %d", c.Player.StartEnergy, c.Player.MaxEnergy))
	}
	if c.Player.RechargeInterval == 0 {
		errs = append(errs, errors.New("player: recharge_interval must be positive"))
	}
	if len(c.Player.Loadout) == 0 {
		errs = append(errs, errors.New("player: loadout is empty"))
	}
	for i, name := range c.Player.Loadout {
		switch name {
		case SpellFireball, SpellSphere, SpellInferno:
		default:
			errs = append(errs, fmt.Errorf("player: loadout[%d]: unknown spell %q", i, name))
		}
	}
	if c.Player.ActiveSpell < 0 || c.Player.ActiveSpell >= len(c.Player.Loadout) {
		errs = append(errs, fmt.Errorf("player: active_spell %d is not a loadout slot", c.Player.ActiveSpell))
	}
	errs = appendSpeed(errs, "spells: fireball", c.Spells.Fireball.Speed)
	errs = appendSpeed(errs, "spells: sphere", c.Spells.Sphere.Speed)
	errs = appendSpeed(errs, "spells: inferno", c.Spells.Inferno.Speed)
	for i, m := range c.Monsters {
		name := fmt.Sprintf("monsters[%d]", i)
		if m.Logic <= 0 {
			errs = append(errs, fmt.Errorf("%s: logic must be positive, got %d", name, m.Logic))
		}
		errs = appendPoint(errs, name+": position", m.Position)
		errs = appendSpeed(errs, name, m.Speed)
	}
	if c.Spawn.Logic <= 0 {
		errs = append(errs, fmt.Errorf("spawn: logic must be positive, got %d", c.Spawn.Logic))
	}
	errs = appendPoint(errs, "spawn: position", c.Spawn.Position)
	errs = appendSpeed(errs, "spawn", c.Spawn.Speed)

	return errors.Join(errs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// appendPoint reports a position with a NaN or infinite coordinate.
func appendPoint(errs []error, name string, p Point) []error {
	if !finite(p.X) || !finite(p.Y) {
		return append(errs, fmt.Errorf("%s: coordinates must be finite, got (%v, %v)", name, p.X, p.Y))
	}
	return errs
}

// appendSpeed reports a negative, NaN or infinite speed.
func appendSpeed(errs []error, name string, v float64) []error {
	switch {
	case !finite(v):
		return append(errs, fmt.Errorf("%s: speed must be finite, got %v", name, v))
	case v < 0:
		return append(errs, fmt.Errorf("%s: negative speed %v", name, v))
	}
	return errs
}
