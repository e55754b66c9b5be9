package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledUsesInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 1000},
	})

	if got := d.Level(50, 999999); got != 0.4 {
		t.Errorf("Level() = %v, expected 0.4", got)
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name     string
		cfg      DifficultyConfig
		score    int
		ticks    uint64
		expected float64
	}{
		{"time start", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "time", MaxAt: 1000}}, 0, 0, 0},
		{"time half", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "time", MaxAt: 1000}}, 0, 500, 0.5},
		{"time capped", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "time", MaxAt: 1000}}, 0, 5000, 1},
		{"score with base", DifficultyConfig{Enabled: true, InitialLevel: 0.5, Progression: ProgressionConfig{Type: "score", MaxAt: 10}}, 5, 0, 0.75},
		{"none", DifficultyConfig{Enabled: true, InitialLevel: 0.2, Progression: ProgressionConfig{Type: "none", MaxAt: 10}}, 5, 5, 0.2},
		{"initial clamped", DifficultyConfig{InitialLevel: 3}, 0, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewDifficultyManager(tc.cfg).Level(tc.score, tc.ticks)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Level() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := d.Speed(0.002, 0, 0); got != 0.002 {
		t.Errorf("Speed() at start = %v, expected 0.002", got)
	}
	if got := d.Speed(0.002, 0, 1000); math.Abs(got-0.004) > 1e-12 {
		t.Errorf("Speed() at max = %v, expected 0.004", got)
	}
}

func TestDifficultySpawnInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 1000},
		Scaling:     ScalingConfig{SpawnReduction: 3000},
	})

	tests := []struct {
		base     uint64
		ticks    uint64
		expected uint64
	}{
		{5000, 0, 5000},
		{5000, 500, 3500},
		{5000, 1000, 2000},
		{3000, 1000, 1000}, // floored
		{800, 1000, 800},   // already below the floor
	}

	for _, tc := range tests {
		if got := d.SpawnInterval(tc.base, 0, tc.ticks); got != tc.expected {
			t.Errorf("SpawnInterval(%d, ticks=%d) = %d, expected %d", tc.base, tc.ticks, got, tc.expected)
		}
	}
}

func TestPresets(t *testing.T) {
	if InitialLevelForPreset(DifficultyHard) <= InitialLevelForPreset(DifficultyNormal) {
		t.Error("hard should start above normal")
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyEasy) {
		t.Error("IsFixedPreset() mismatch")
	}
}
