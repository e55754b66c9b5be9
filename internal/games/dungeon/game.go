// Package dungeon implements the real-time dungeon simulation: a caster
// moving through continuous space, spells that launch projectiles, and
// monsters that hunt the player until they reach the exit.
package dungeon

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/input"
)

// Outcome is the run status after a frame.
type Outcome uint8

const (
	Running Outcome = iota
	Won
	Lost
	Quit
)

// String returns the outcome name, also used in stored run records.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// StepResult is what one frame hands to the presentation layer.
type StepResult struct {
	Events  []RenderEvent
	Score   int
	Kills   int
	Outcome Outcome
}

// Game owns the player, monsters and projectiles and advances them one frame
// at a time. It is not safe for concurrent use.
type Game struct {
	cfg        config.DungeonConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	logger     *log.Logger

	bounds    core.Bounds
	exit      core.Vec
	proximity float64

	player      *Player
	monsters    []*Monster
	projectiles []*Projectile

	ids       *rand.Rand // Monster identities
	score     int
	kills     int
	outcome   Outcome
	startTick uint64
	lastTick  uint64
	lastSpawn uint64

	events []RenderEvent
}

// New creates a game from a validated config. now is the current ticker value.
func New(cfg config.DungeonConfig, runtime core.RuntimeConfig, now uint64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dungeon: %w", err)
	}
	g := &Game{logger: log.New(io.Discard)}
	if err := g.Reset(cfg, runtime, now); err != nil {
		return nil, err
	}
	return g, nil
}

// SetLogger attaches a trace logger. Frame details are logged at debug level.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Reset restarts the run with a fresh roster.
func (g *Game) Reset(cfg config.DungeonConfig, runtime core.RuntimeConfig, now uint64) error {
	spells, err := NewLoadout(cfg.Player.Loadout, cfg.Spells)
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.runtime = runtime
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.bounds = core.Bounds{Width: cfg.Arena.Width, Height: cfg.Arena.Height}
	g.exit = core.V(cfg.Arena.Exit.X, cfg.Arena.Exit.Y)
	g.proximity = cfg.Arena.Proximity

	seed := uint64(runtime.Seed) //#nosec G115 -- seed bits are reused as-is
	g.ids = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	g.player = NewPlayer(cfg.Player, spells, now)
	g.monsters = make([]*Monster, 0, len(cfg.Monsters)+cfg.Spawn.MaxLive)
	for _, mc := range cfg.Monsters {
		g.monsters = append(g.monsters, NewMonster(g.ids.Uint64(), core.V(mc.Position.X, mc.Position.Y), mc.Logic, mc.Speed, now))
	}
	g.projectiles = nil

	g.score = 0
	g.kills = 0
	g.outcome = Running
	g.startTick = now
	g.lastTick = now
	g.lastSpawn = now
	g.events = nil
	return nil
}

// Start returns the Create events for everything present at the start of a run.
func (g *Game) Start() []RenderEvent {
	events := make([]RenderEvent, 0, len(g.monsters)+2)
	events = append(events, CreateEvent(SymbolExit, g.exit))
	events = append(events, CreateEvent(SymbolPlayer, g.player.Position()))
	for _, m := range g.monsters {
		events = append(events, CreateEvent(SymbolMonster, m.Position()))
	}
	return events
}

// Step runs one frame at ticker value now. pointer is the mouse position in
// arena coordinates. Once the run has ended Step does nothing.
func (g *Game) Step(states input.StateSet, pointer core.Vec, now uint64) StepResult {
	g.events = nil
	if g.outcome != Running {
		return g.result()
	}
	if now < g.lastTick {
		now = g.lastTick
	}
	g.lastTick = now

	g.stepProjectiles(now)
	quit := g.stepPlayer(Decode(states), pointer, now)
	lost := g.stepMonsters(now)
	g.spawn(now)

	switch {
	case lost:
		g.score = 0
		g.outcome = Lost
	case g.player.Position().Near(g.exit, g.proximity):
		g.outcome = Won
	case quit:
		g.outcome = Quit
	}
	if g.outcome != Running {
		g.logger.Info("run ended", "outcome", g.outcome, "score", g.score, "kills", g.kills, "ticks", now-g.startTick)
	}

	return g.result()
}

func (g *Game) result() StepResult {
	return StepResult{
		Events:  g.events,
		Score:   g.score,
		Kills:   g.kills,
		Outcome: g.outcome,
	}
}

func (g *Game) emit(e RenderEvent) {
	g.events = append(g.events, e)
}

// stepProjectiles advances every projectile and resolves hits.
func (g *Game) stepProjectiles(now uint64) {
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		sym := SpellSymbol(p.Kind())
		old := p.Position()
		next := p.NextLocation(now)

		if !g.bounds.Contains(next) {
			g.emit(RemoveEvent(sym, old))
			continue
		}

		if i := g.monsterNear(next, -1); i >= 0 {
			m := g.monsters[i]
			g.emit(RemoveEvent(SymbolMonster, m.Position()))
			g.emit(RemoveEvent(sym, old))
			g.monsters = append(g.monsters[:i], g.monsters[i+1:]...)
			g.score++
			g.kills++
			g.logger.Debug("monster killed", "spell", p.Kind(), "monster", m.ID(), "score", g.score)
			continue
		}

		p.SetLocation(next, now)
		g.emit(MoveEvent(sym, old, next))
		kept = append(kept, p)
	}
	clear(g.projectiles[len(kept):])
	g.projectiles = kept
}

// stepPlayer applies movement and one-shot commands. Energy recharges only on
// frames without movement or casts. It reports whether Quit was issued.
func (g *Game) stepPlayer(cmds Commands, pointer core.Vec, now uint64) bool {
	if !cmds.Movement.IsZero() {
		old := g.player.Position()
		next := g.player.NextLocation(cmds.Movement, now)
		if g.bounds.Contains(next) {
			g.player.SetLocation(next, now)
			g.emit(MoveEvent(SymbolPlayer, old, next))
		} else {
			g.player.Refresh(now)
		}
	} else if cmds.Casts() {
		// Cast frames do not recharge; the elapsed time is dropped.
		g.player.Refresh(now)
	} else {
		g.player.ChargeEnergy(now)
	}

	quit := false
	for _, c := range cmds.Actions {
		switch c.Kind {
		case CmdEvoke:
			g.evoke(c.Dir.Vec(), now)
		case CmdEvokeMouse:
			g.evoke(pointer.Sub(g.player.Position()), now)
		case CmdCycleSpell:
			g.player.CycleSpell(c.Forward)
		case CmdSelectSpell:
			g.player.SelectSpell(c.Index)
		case CmdQuit:
			quit = true
		}
	}
	return quit
}

// evoke casts the active spell if possible and registers its projectiles.
func (g *Game) evoke(direction core.Vec, now uint64) {
	spell := g.player.ActiveSpell()
	if spell == nil {
		return
	}
	// A directed spell needs a direction; Inferno ignores it.
	if direction.IsZero() && spell.Kind() != Inferno {
		return
	}
	if !g.player.ActiveSpellCanEvoke(now) {
		g.logger.Debug("cast refused", "spell", spell.Kind(), "energy", g.player.Energy(), "cooldown", spell.RemainingCooldown(now))
		return
	}

	shots := g.player.ActiveSpellEvoke(direction, now)
	g.logger.Debug("cast", "spell", spell.Kind(), "projectiles", len(shots), "energy", g.player.Energy())
	for _, p := range shots {
		if !g.bounds.Contains(p.Position()) {
			continue
		}
		g.projectiles = append(g.projectiles, p)
		g.emit(CreateEvent(SpellSymbol(p.Kind()), p.Position()))
	}
}

// stepMonsters runs the AI for every monster against pre-frame positions.
// It reports whether any monster reached the player.
func (g *Game) stepMonsters(now uint64) bool {
	before := make([]core.Vec, len(g.monsters))
	for i, m := range g.monsters {
		before[i] = m.Position()
	}

	target := g.player.Position()
	lost := false
	for i, m := range g.monsters {
		m.SetSpeed(g.difficulty.Speed(m.BaseSpeed(), g.score, now-g.startTick))

		next, ok := m.Seek(target, now)
		switch {
		case !ok || next == m.Position():
			m.Refresh(now)
		case !g.bounds.Contains(next) || nearAny(next, before, i, g.proximity):
			m.Refresh(now)
		default:
			old := m.Position()
			m.SetLocation(next, now)
			g.emit(MoveEvent(SymbolMonster, old, next))
		}

		if m.Position().Near(target, g.proximity) {
			lost = true
		}
	}
	return lost
}

// spawn adds a reinforcement when the roster is short and the interval has passed.
func (g *Game) spawn(now uint64) {
	sc := g.cfg.Spawn
	if len(g.monsters) >= sc.MaxLive {
		return
	}
	interval := g.difficulty.SpawnInterval(sc.Interval, g.score, now-g.startTick)
	if now-g.lastSpawn < interval {
		return
	}
	pos := core.V(sc.Position.X, sc.Position.Y)
	if g.monsterNear(pos, -1) >= 0 {
		// Spawn point occupied; retry next frame.
		return
	}

	m := NewMonster(g.ids.Uint64(), pos, sc.Logic, sc.Speed, now)
	g.monsters = append(g.monsters, m)
	g.lastSpawn = now
	g.emit(CreateEvent(SymbolMonster, pos))
	g.logger.Debug("monster spawned", "monster", m.ID(), "logic", m.Logic(), "live", len(g.monsters))
}

// monsterNear returns the index of the first monster within the proximity
// threshold of pos, skipping index skip, or -1.
func (g *Game) monsterNear(pos core.Vec, skip int) int {
	for i, m := range g.monsters {
		if i != skip && m.Position().Near(pos, g.proximity) {
			return i
		}
	}
	return -1
}

func nearAny(pos core.Vec, others []core.Vec, skip int, threshold float64) bool {
	for j, o := range others {
		if j != skip && pos.Near(o, threshold) {
			return true
		}
	}
	return false
}

// Player returns the player.
func (g *Game) Player() *Player { return g.player }

// Monsters returns the live monsters.
func (g *Game) Monsters() []*Monster { return g.monsters }

// Projectiles returns the live projectiles.
func (g *Game) Projectiles() []*Projectile { return g.projectiles }

// Bounds returns the arena size.
func (g *Game) Bounds() core.Bounds { return g.bounds }

// Exit returns the exit position.
func (g *Game) Exit() core.Vec { return g.exit }

// Outcome returns the run status.
func (g *Game) Outcome() Outcome { return g.outcome }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Kills returns the monsters destroyed this run.
func (g *Game) Kills() int { return g.kills }

// Elapsed returns the ticks since the run started, as of the last frame.
func (g *Game) Elapsed() uint64 { return g.lastTick - g.startTick }

// Config returns the config the run was started with.
func (g *Game) Config() config.DungeonConfig { return g.cfg }

// State returns the platform-facing status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Kills:    g.kills,
		GameOver: g.outcome != Running,
	}
}

// Render draws every entity into dst with the arena origin at (ox, oy).
// Used for full redraws; incremental redraws apply Step's events instead.
func (g *Game) Render(dst *core.Screen, ox, oy int) {
	draw := func(sym Symbol, pos core.Vec) {
		c := pos.Cell()
		dst.SetGlyph(ox+c.X, oy+c.Y, core.Glyph{Rune: sym.Rune(), Color: sym.Color()})
	}
	draw(SymbolExit, g.exit)
	for _, p := range g.projectiles {
		draw(SpellSymbol(p.Kind()), p.Position())
	}
	for _, m := range g.monsters {
		draw(SymbolMonster, m.Position())
	}
	draw(SymbolPlayer, g.player.Position())
}
