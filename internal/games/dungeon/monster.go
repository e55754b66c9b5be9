package dungeon

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// seekWindow is how many ticks a monster keeps the same AI decision.
const seekWindow = 2000

// Monster is a roaming enemy that pursues the player.
type Monster struct {
	id        uint64
	pos       core.Vec
	logic     int     // Draw denominator; larger means steadier pursuit
	baseSpeed float64 // Distance per tick before difficulty scaling
	speed     float64
	lastTick  uint64
}

// NewMonster creates a monster. speed is in units per second.
func NewMonster(id uint64, pos core.Vec, logic int, speed float64, now uint64) *Monster {
	return &Monster{
		id:        id,
		pos:       pos,
		logic:     logic,
		baseSpeed: speed / 1000,
		speed:     speed / 1000,
		lastTick:  now,
	}
}

// ID returns the monster's stable identifier.
func (m *Monster) ID() uint64 { return m.id }

// Position returns the current position.
func (m *Monster) Position() core.Vec { return m.pos }

// Logic returns the AI denominator.
func (m *Monster) Logic() int { return m.logic }

// Speed returns the current distance per tick.
func (m *Monster) Speed() float64 { return m.speed }

// BaseSpeed returns the configured distance per tick.
func (m *Monster) BaseSpeed() float64 { return m.baseSpeed }

// SetSpeed overrides the distance per tick.
func (m *Monster) SetSpeed(speed float64) { m.speed = speed }

// SetLocation commits a move.
func (m *Monster) SetLocation(pos core.Vec, now uint64) {
	m.pos = pos
	m.lastTick = now
}

// Refresh advances the tick reference without moving.
func (m *Monster) Refresh(now uint64) {
	m.lastTick = now
}

// Seek picks this frame's step toward target. It returns false when the
// monster chooses not to move. The decision is a pure function of
// (now/seekWindow, id), so it stays stable for a whole window.
func (m *Monster) Seek(target core.Vec, now uint64) (core.Vec, bool) {
	if m.logic <= 0 {
		return m.pos, false
	}

	rng := rand.New(rand.NewPCG(now/seekWindow, m.id)) //#nosec G404 -- gameplay randomness
	draw := rng.Uint64() % uint64(m.logic)

	var step core.Vec
	switch {
	case draw < 40:
		step = target.Sub(m.pos)
	case draw < 60:
		step = core.V(target.X-m.pos.X, 0)
	case draw < 80:
		step = core.V(0, target.Y-m.pos.Y)
	case draw < 85:
		step = core.DirRight.Vec()
	case draw < 90:
		step = core.DirLeft.Vec()
	case draw < 95:
		step = core.DirUp.Vec()
	case draw < 100:
		step = core.DirDown.Vec()
	default:
		return m.pos, false
	}

	dist := m.speed * float64(elapsed(m.lastTick, now))
	return m.pos.Add(step.Normalize().Scale(dist)), true
}
