package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"github.com/Joshua861/lucas/creature"
)

// Collector accumulates per-tick events within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32

	freeTicks    int
	grappleTicks int
	spinTicks    int

	grappleFires    int
	grappleHits     int
	grappleReleases int
	footSteps       int
	attacksStarted  int
	attackHits      int

	headSpeeds []float64
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordTick records one tick's creature events and head speed (world
// units per tick).
func (c *Collector) RecordTick(ev creature.Events, headSpeed float64) {
	switch ev.Mode {
	case creature.ModeGrapple:
		c.grappleTicks++
	case creature.ModeSpin:
		c.spinTicks++
	default:
		c.freeTicks++
	}

	if ev.GrappleFired {
		c.grappleFires++
	}
	if ev.GrappleHit {
		c.grappleHits++
	}
	if ev.GrappleReleased {
		c.grappleReleases++
	}
	if ev.AttackStarted {
		c.attacksStarted++
	}
	c.footSteps += ev.FootSteps
	c.attackHits += ev.AttackHits

	c.headSpeeds = append(c.headSpeeds, headSpeed)
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, crittersAlive, predators int) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		FreeTicks:    c.freeTicks,
		GrappleTicks: c.grappleTicks,
		SpinTicks:    c.spinTicks,

		GrappleFires:    c.grappleFires,
		GrappleHits:     c.grappleHits,
		GrappleReleases: c.grappleReleases,
		FootSteps:       c.footSteps,
		AttacksStarted:  c.attacksStarted,
		AttackHits:      c.attackHits,

		CrittersAlive: crittersAlive,
		Predators:     predators,
	}

	if len(c.headSpeeds) > 0 {
		stats.HeadSpeedMean = stat.Mean(c.headSpeeds, nil)
	}
	if len(c.headSpeeds) > 1 {
		stats.HeadSpeedStd = stat.StdDev(c.headSpeeds, nil)
	}

	c.windowStartTick = currentTick
	c.freeTicks = 0
	c.grappleTicks = 0
	c.spinTicks = 0
	c.grappleFires = 0
	c.grappleHits = 0
	c.grappleReleases = 0
	c.footSteps = 0
	c.attacksStarted = 0
	c.attackHits = 0
	c.headSpeeds = c.headSpeeds[:0]

	return stats
}
