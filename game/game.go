// Package game owns the simulation loop: the ECS critter world, the
// creature, the spatial index, the camera, input sampling, rendering and
// telemetry.
package game

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/Joshua861/lucas/camera"
	"github.com/Joshua861/lucas/components"
	"github.com/Joshua861/lucas/config"
	"github.com/Joshua861/lucas/creature"
	"github.com/Joshua861/lucas/systems"
	"github.com/Joshua861/lucas/telemetry"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	OutputDir      string
	StatsWindowSec float64
	StepsPerUpdate int
}

// Game holds the complete simulation state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	critterMapper *ecs.Map6[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Body,
		components.Health,
		components.Critter,
	]
	critterFilter *ecs.Filter6[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Body,
		components.Health,
		components.Critter,
	]

	// Individual component mappers for lookups
	posMap    *ecs.Map1[components.Position]
	velMap    *ecs.Map1[components.Velocity]
	bodyMap   *ecs.Map1[components.Body]
	healthMap *ecs.Map1[components.Health]
	critMap   *ecs.Map1[components.Critter]

	// Critter ID to entity, for the physics bridge
	byID   map[uint32]ecs.Entity
	nextID uint32

	lucas *creature.Creature

	spatialGrid *systems.SpatialGrid
	cam         *camera.Camera

	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	logStats      bool
	lastHead      creature.Vec2

	wander        systems.WanderParams
	critterRadius float32
	maxHealth     float32

	// Scratch buffers reused across ticks
	neighborBuf []systems.Neighbor
	contactBuf  []creature.Contact

	tick           int32
	paused         bool
	headless       bool
	stepsPerUpdate int
	aliveCount     int
	predCount      int

	// Debug overlay state
	debugOverlay   bool
	showBodyPoints bool
	showVertices   bool
	showFootRange  bool
	showGridStats  bool

	worldWidth, worldHeight float32
}

// NewGameWithOptions creates a game instance from the loaded config.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}

	g := &Game{
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		critterMapper: ecs.NewMap6[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Body,
			components.Health,
			components.Critter,
		](world),
		critterFilter: ecs.NewFilter6[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Body,
			components.Health,
			components.Critter,
		](world),
		posMap:         ecs.NewMap1[components.Position](world),
		velMap:         ecs.NewMap1[components.Velocity](world),
		bodyMap:        ecs.NewMap1[components.Body](world),
		healthMap:      ecs.NewMap1[components.Health](world),
		critMap:        ecs.NewMap1[components.Critter](world),
		byID:           make(map[uint32]ecs.Entity),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: opts.StepsPerUpdate,
		worldWidth:     cfg.Derived.WorldW32,
		worldHeight:    cfg.Derived.WorldH32,
	}

	g.wander = systems.WanderParams{
		MaxSpeed: float32(cfg.Critters.MaxSpeed),
		TurnRate: float32(cfg.Critters.TurnRate),
		Drag:     float32(cfg.Critters.Drag),
		WorldW:   g.worldWidth,
		WorldH:   g.worldHeight,
	}
	g.critterRadius = float32(cfg.Critters.BodyRadius)
	g.maxHealth = float32(cfg.Critters.MaxHealth)

	g.spatialGrid = systems.NewSpatialGrid(g.worldWidth, g.worldHeight, float32(cfg.Physics.GridCellSize))

	origin := creature.Vec2{X: g.worldWidth / 2, Y: g.worldHeight / 2}
	g.lucas = creature.New(creatureParams(cfg), &physicsBridge{g: g}, origin)
	g.lastHead = g.lucas.Head()

	g.cam = camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, origin.X, origin.Y)

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow, cfg.Derived.DT32)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else {
		g.outputManager = om
		if err := g.outputManager.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	g.spawnCritters(cfg.Critters.Count, float32(cfg.Critters.PredatorChance))

	slog.Info("game created",
		"seed", opts.Seed,
		"critters", g.aliveCount,
		"predators", g.predCount,
		"world_w", g.worldWidth,
		"world_h", g.worldHeight,
	)

	return g
}

// creatureParams maps the config's creature section onto creature.Params.
func creatureParams(cfg *config.Config) creature.Params {
	return creature.Params{
		DT:             cfg.Derived.DT32,
		FollowStep:     float32(cfg.Creature.FollowStep),
		FollowDeadzone: float32(cfg.Creature.FollowDeadzone),
		GrappleStep:    float32(cfg.Creature.GrappleStep),
		GrappleRelease: float32(cfg.Creature.GrappleRelease),
		GrappleRange:   float32(cfg.Creature.GrappleRange),
		GrappleImpulse: float32(cfg.Creature.GrappleImpulse),
		AttackTicks:    cfg.Creature.AttackTicks,
		AttackRadius:   float32(cfg.Creature.AttackRadius),
		AttackDamage:   float32(cfg.Creature.AttackDamage),
		AttackImpulse:  float32(cfg.Creature.AttackImpulse),
	}
}

// spawnCritters populates the world with wandering critters.
func (g *Game) spawnCritters(count int, predatorChance float32) {
	for i := 0; i < count; i++ {
		x := g.rng.Float32() * g.worldWidth
		y := g.rng.Float32() * g.worldHeight
		heading := g.rng.Float32() * 2 * math.Pi

		kind := components.KindPrey
		if g.rng.Float32() < predatorChance {
			kind = components.KindPredator
		}

		g.spawnCritter(x, y, heading, kind)
	}
}

// spawnCritter creates one critter entity.
func (g *Game) spawnCritter(x, y, heading float32, kind components.Kind) ecs.Entity {
	id := g.nextID
	g.nextID++

	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{}
	rot := components.Rotation{Heading: heading}
	body := components.Body{Radius: g.critterRadius}
	health := components.Health{Value: g.maxHealth, Alive: true}
	crit := components.Critter{ID: id, Kind: kind}

	entity := g.critterMapper.NewEntity(&pos, &vel, &rot, &body, &health, &crit)
	g.byID[id] = entity
	g.aliveCount++
	if kind == components.KindPredator {
		g.predCount++
	}

	return entity
}

// Update runs input handling and simulation steps for one frame.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	in := g.readInput()
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep(in)
	}
}

// simulationStep runs a single tick of the simulation.
func (g *Game) simulationStep(in creature.Input) {
	// 1. Rebuild spatial index
	g.updateSpatialGrid()

	// 2. Wander critters
	g.updateCritters()

	// 3. Advance the creature
	ev := g.lucas.Update(in)

	// 4. Remove critters killed this tick
	g.cleanupDead()

	// 5. Track the creature's head
	head := g.lucas.Head()
	g.cam.Follow(head.X, head.Y, float32(config.Cfg().Camera.FollowSmoothing))

	// 6. Telemetry
	headSpeed := float64(head.Sub(g.lastHead).Len())
	g.lastHead = head
	g.collector.RecordTick(ev, headSpeed)
	g.flushTelemetry()

	g.tick++
}

// updateSpatialGrid rebuilds the spatial index from living critters.
func (g *Game) updateSpatialGrid() {
	g.spatialGrid.Clear()

	query := g.critterFilter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, _, _, _, health, _ := query.Get()

		if health.Alive {
			g.spatialGrid.Insert(entity, pos.X, pos.Y)
		}
	}
}

// updateCritters advances every living critter's wander motion.
func (g *Game) updateCritters() {
	dt := config.Cfg().Derived.DT32

	query := g.critterFilter.Query()
	for query.Next() {
		pos, vel, rot, _, health, _ := query.Get()

		if !health.Alive {
			continue
		}

		systems.UpdateWander(pos, vel, rot, g.rng, g.wander, dt)
	}
}

// cleanupDead removes dead critters from the world.
func (g *Game) cleanupDead() {
	// First pass: collect dead entities (must complete before modifying)
	type deadInfo struct {
		entity ecs.Entity
		id     uint32
		kind   components.Kind
	}
	var toRemove []deadInfo

	query := g.critterFilter.Query()
	for query.Next() {
		entity := query.Entity()
		_, _, _, _, health, crit := query.Get()

		if !health.Alive {
			toRemove = append(toRemove, deadInfo{entity: entity, id: crit.ID, kind: crit.Kind})
		}
	}

	// Second pass: remove entities (query iteration complete)
	for _, dead := range toRemove {
		g.critterMapper.Remove(dead.entity)
		delete(g.byID, dead.id)
		g.aliveCount--
		if dead.kind == components.KindPredator {
			g.predCount--
		}
		slog.Debug("critter removed", "id", dead.id, "tick", g.tick)
	}
}

// Unload releases output resources.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}
