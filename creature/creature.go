// Package creature implements the procedural body-and-limb animation for the
// segmented creature: a rigid-link body chain following a steered head, a
// polygon outline derived from the chain, iteratively relaxed legs, and the
// grapple / spin / attack actions that override or augment head steering.
//
// The package is pure math on float32 vectors. Everything the creature needs
// from the outside world (raycasts, overlap queries, impulses, damage) goes
// through the Physics interface; everything it produces (outline vertices,
// leg polylines, head position) is exposed through accessors that the caller
// reads after each Update.
package creature

// sizes is the body width profile: wide at the head, tapering to the tail.
var sizes = [...]float32{
	4, 5, 5, 5, 5, 5, 5, 5, 4.8, 4.4, 4, 3.6, 3.4, 3.2, 3, 2.8, 2.7, 2.3, 1.5,
	1, 1, 1, 1, 0.5,
}

const (
	// numPoints is the body chain length M.
	numPoints = len(sizes)

	// chainRadius is the exact spacing R enforced between adjacent body points.
	chainRadius float32 = 2.0

	// numVertices is the outline buffer size: two side vertices per body
	// point plus the two extra head-cap vertices, 2*(M+1) in total.
	numVertices = 2 * (numPoints + 1)

	numLegs   = 4
	numJoints = 3

	// relaxIterations is the fixed leg relaxation budget per tick.
	// Convergence is assumed, not checked.
	relaxIterations = 5

	// footStepThresholdSq is the squared drift distance beyond which a leg
	// adopts a new foot target ("takes a step").
	footStepThresholdSq float32 = 150.0

	// maxSpinStep caps the per-tick spin rotation in radians.
	maxSpinStep float32 = 0.2
)

// Params holds the tunable constants of the creature. Zero values are not
// usable; start from DefaultParams.
type Params struct {
	DT float32 // simulation seconds per tick, accumulated while spinning

	FollowStep     float32 // head step per tick in free pointer-follow
	FollowDeadzone float32 // pointer distance below which the head holds still

	GrappleStep    float32 // head step per tick while chasing a grapple target
	GrappleRelease float32 // head distance at which the grapple target clears
	GrappleRange   float32 // raycast length of a grapple shot
	GrappleImpulse float32 // impulse magnitude applied to a grappled predator

	AttackTicks   int     // countdown length of the attack window
	AttackRadius  float32 // hit volume radius around the head
	AttackDamage  float32 // damage applied to each overlapping predator
	AttackImpulse float32 // repelling impulse applied to each hit predator
}

// DefaultParams returns the standard creature tuning.
func DefaultParams() Params {
	return Params{
		DT:             1.0 / 60.0,
		FollowStep:     0.9,
		FollowDeadzone: 10.0,
		GrappleStep:    2.0,
		GrappleRelease: 1.0,
		GrappleRange:   100.0,
		GrappleImpulse: 40.0,
		AttackTicks:    10,
		AttackRadius:   8.0,
		AttackDamage:   1.0,
		AttackImpulse:  60.0,
	}
}

// Hit describes the nearest entity struck by a raycast.
type Hit struct {
	Point    Vec2
	Entity   uint32
	Predator bool
}

// Contact describes an entity overlapping a query volume.
type Contact struct {
	Entity   uint32
	Pos      Vec2
	Predator bool
}

// Physics is the collision and entity-mutation capability the creature
// consumes. Implementations are read during Update only; the creature never
// retains slices returned by QueryOverlap across ticks.
type Physics interface {
	// RayCast casts from origin along the unit direction dir up to maxLen
	// and reports the nearest hit, if any.
	RayCast(origin, dir Vec2, maxLen float32) (Hit, bool)

	// QueryOverlap returns entities overlapping the given circle.
	QueryOverlap(center Vec2, radius float32) []Contact

	// ApplyImpulse adds a velocity impulse to an entity.
	ApplyImpulse(id uint32, impulse Vec2)

	// ApplyDamage applies damage to an entity.
	ApplyDamage(id uint32, amount float32)
}

// Input is the per-tick input sample the creature consumes.
type Input struct {
	Pointer Vec2 // cursor position in world space
	Fire    bool // grapple fire event
	Attack  bool // attack pulse event
	Spin    bool // spin input, held
}

// Mode identifies the head-steering policy selected for a tick.
// Exactly one policy applies per tick, picked in priority order
// spin > grapple > free.
type Mode uint8

const (
	ModeFree Mode = iota
	ModeGrapple
	ModeSpin
)

// String returns the mode name for logs.
func (m Mode) String() string {
	switch m {
	case ModeGrapple:
		return "grapple"
	case ModeSpin:
		return "spin"
	default:
		return "free"
	}
}

// Events reports what happened during one Update, for telemetry and logging.
type Events struct {
	Mode            Mode
	GrappleFired    bool
	GrappleHit      bool
	GrappleReleased bool
	FootSteps       int
	AttackStarted   bool
	AttackHits      int
}

// Creature owns all mutable animation state. All arrays are allocated once
// at construction and mutated in place every tick; no aliasing between
// update stages within a tick.
type Creature struct {
	params Params
	phys   Physics

	body  [numPoints]Vec2
	verts []Vec2 // raw outline buffer, len numVertices
	legs  [numLegs]Leg

	// Grapple target. While active it overrides free pointer-follow.
	grappleActive bool
	grapplePoint  Vec2

	// Spin state. Duration accumulates DT while the input is held and
	// resets to zero on release.
	spinHeld     bool
	spinDuration float32

	// Attack window countdown; 0 means inactive.
	attackTicks int

	events Events
}

// New creates a creature with every body point, leg joint and foot target
// at the shared origin. The degenerate relative angles this implies settle
// within the first few ticks of motion.
func New(params Params, phys Physics, origin Vec2) *Creature {
	c := &Creature{
		params: params,
		phys:   phys,
		verts:  make([]Vec2, numVertices),
	}
	for i := range c.body {
		c.body[i] = origin
	}
	c.legs = [numLegs]Leg{
		newLeg(10, 4),
		newLeg(30, 12),
		newLeg(11, 3),
		newLeg(31, 12),
	}
	for i := range c.legs {
		for j := range c.legs[i].Joints {
			c.legs[i].Joints[j] = origin
		}
		c.legs[i].Foot = origin
	}
	c.buildOutline(0)
	return c
}

// Update advances the creature by one fixed tick and reports what happened.
// Stage order: actions (spin/grapple/attack inputs), steering policy
// selection, head motion, chain propagation, outline rebuild, leg solve,
// attack countdown.
func (c *Creature) Update(in Input) Events {
	c.events = Events{}

	c.updateSpinInput(in.Spin)
	if in.Fire {
		c.fireGrapple(in.Pointer)
	}
	if in.Attack {
		c.startAttack()
	}

	mode := c.selectMode()
	c.events.Mode = mode

	switch mode {
	case ModeSpin:
		c.applySpin()
	case ModeGrapple:
		c.chaseTarget()
	default:
		c.followPointer(in.Pointer)
	}

	c.propagate()
	c.buildOutline(c.headAngle(in.Pointer, mode))
	c.updateLegs()
	c.updateAttack()

	return c.events
}

// selectMode picks the single steering policy for this tick.
func (c *Creature) selectMode() Mode {
	switch {
	case c.spinHeld:
		return ModeSpin
	case c.grappleActive:
		return ModeGrapple
	default:
		return ModeFree
	}
}

// headAngle returns the reference angle used for the head's outline cap:
// the direction from the steer point to the head, or the chain's own
// first-to-second direction while spinning.
func (c *Creature) headAngle(pointer Vec2, mode Mode) float32 {
	switch mode {
	case ModeSpin:
		return c.body[1].Sub(c.body[0]).Angle()
	case ModeGrapple:
		return c.body[0].Sub(c.grapplePoint).Angle()
	default:
		return c.body[0].Sub(pointer).Angle()
	}
}

// Head returns the current head position (camera follow point).
func (c *Creature) Head() Vec2 { return c.body[0] }

// BodyPoints returns the body chain. The slice aliases internal state and
// is valid until the next Update.
func (c *Creature) BodyPoints() []Vec2 { return c.body[:] }

// Vertices returns the raw outline buffer, rebuilt every tick. The slice
// aliases internal state and is valid until the next Update.
func (c *Creature) Vertices() []Vec2 { return c.verts }

// EyeMarkers returns the two cosmetic eye overlay points, taken from fixed
// indices of the raw vertex buffer.
func (c *Creature) EyeMarkers() (Vec2, Vec2) { return c.verts[2], c.verts[3] }

// Legs returns the leg chains for rendering as polylines.
func (c *Creature) Legs() []Leg { return c.legs[:] }

// GrappleLine returns the transient head-to-target line while a grapple is
// active.
func (c *Creature) GrappleLine() (from, to Vec2, active bool) {
	return c.body[0], c.grapplePoint, c.grappleActive
}

// AttackActive reports whether the attack hit window is open, along with
// its radius for debug rendering.
func (c *Creature) AttackActive() (float32, bool) {
	return c.params.AttackRadius, c.attackTicks > 0
}
