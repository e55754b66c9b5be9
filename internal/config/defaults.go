package config

import (
	_ "embed"
)

//go:embed defaults/dungeon.yaml
var defaultDungeonYAML []byte

// DefaultDungeonConfig returns the built-in dungeon configuration.
// It mirrors defaults/dungeon.yaml and is used when the embedded file cannot be parsed.
func DefaultDungeonConfig() DungeonConfig {
	return DungeonConfig{
		Arena: ArenaConfig{
			Width:     40,
			Height:    20,
			Exit:      Point{X: 1, Y: 1},
			Proximity: 1.0,
		},
		Player: PlayerConfig{
			Start:            Point{X: 20, Y: 10},
			Speed:            5,
			MaxEnergy:        100,
			StartEnergy:      100,
			RechargeDelay:    1000,
			RechargeInterval: 200,
			Loadout:          []string{SpellFireball, SpellSphere, SpellInferno},
			ActiveSpell:      0,
		},
		Spells: SpellsConfig{
			Fireball: SpellConfig{Cost: 10, Cooldown: 800, Speed: 10},
			Sphere:   SpellConfig{Cost: 5, Cooldown: 400, Speed: 5},
			Inferno:  SpellConfig{Cost: 80, Cooldown: 40000, Speed: 10},
		},
		Monsters: []MonsterConfig{
			{Position: Point{X: 10, Y: 5}, Logic: 100, Speed: 2},
			{Position: Point{X: 30, Y: 5}, Logic: 40, Speed: 0.7},
			{Position: Point{X: 30, Y: 15}, Logic: 500, Speed: 2},
			{Position: Point{X: 10, Y: 15}, Logic: 200, Speed: 2},
		},
		Spawn: SpawnConfig{
			MaxLive:  3,
			Interval: 5000,
			Position: Point{X: 38, Y: 18},
			Logic:    100,
			Speed:    2,
		},
		Input: InputConfig{
			KeyHoldMs: 550,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 180000, // 3 minutes of ticks
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnReduction:  3000,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDungeonYAML
}
