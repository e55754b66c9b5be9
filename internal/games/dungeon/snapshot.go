package dungeon

import "math"

// Snapshot contains the complete simulation state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	PlayerX     float64
	PlayerY     float64
	Energy      uint32
	ActiveSpell int
	Score       int
	Kills       int
	Outcome     int
	LastSpawn   uint64

	// Remaining cooldown per loadout slot
	Cooldowns []uint64

	// Monster state (each monster is 4 values: ID, X bits, Y bits, Logic)
	MonsterCount int
	MonsterData  []uint64

	// Projectile state (each projectile is 3 values: Kind, X bits, Y bits)
	ProjectileCount int
	ProjectileData  []uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	cooldowns := make([]uint64, len(g.player.spells))
	for i, s := range g.player.spells {
		cooldowns[i] = s.RemainingCooldown(g.lastTick)
	}

	monsterData := make([]uint64, 0, len(g.monsters)*4)
	for _, m := range g.monsters {
		monsterData = append(monsterData,
			m.id,
			math.Float64bits(m.pos.X),
			math.Float64bits(m.pos.Y),
			uint64(m.Logic()), //#nosec G115 -- logic is validated positive
		)
	}

	projectileData := make([]uint64, 0, len(g.projectiles)*3)
	for _, p := range g.projectiles {
		projectileData = append(projectileData,
			uint64(p.kind),
			math.Float64bits(p.pos.X),
			math.Float64bits(p.pos.Y),
		)
	}

	return Snapshot{
		Tick:        g.lastTick - g.startTick,
		PlayerX:     g.player.pos.X,
		PlayerY:     g.player.pos.Y,
		Energy:      g.player.energy,
		ActiveSpell: g.player.active,
		Score:       g.score,
		Kills:       g.kills,
		Outcome:     int(g.outcome),
		LastSpawn:   g.lastSpawn - g.startTick,

		Cooldowns: cooldowns,

		MonsterCount:    len(g.monsters),
		MonsterData:     monsterData,
		ProjectileCount: len(g.projectiles),
		ProjectileData:  projectileData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(snap.Energy)
	h = h*31 + uint64(snap.ActiveSpell) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)     //#nosec G115 -- hash computation
	h = h*31 + snap.LastSpawn
	h = h*31 + uint64(snap.MonsterCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation

	for _, v := range snap.Cooldowns {
		h = h*31 + v
	}

	for _, v := range snap.MonsterData {
		h = h*31 + v
	}

	for _, v := range snap.ProjectileData {
		h = h*31 + v
	}

	return h
}
