package game

import (
	"math"

	"github.com/Joshua861/lucas/creature"
)

// Scripted input schedule for headless soaks, in ticks.
const (
	scriptFirePeriod   = 240
	scriptAttackPeriod = 360
	scriptSpinPeriod   = 1200
	scriptSpinHold     = 180
)

// UpdateHeadless runs simulation steps without raylib. Input comes from a
// deterministic script: the pointer orbits the world center while grapple,
// attack and spin fire on fixed periods, exercising every steering mode.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep(g.scriptedInput())
	}
}

// scriptedInput derives the current tick's input from the schedule.
func (g *Game) scriptedInput() creature.Input {
	t := float64(g.tick)

	angle := t * 0.005
	pointer := creature.Vec2{
		X: g.worldWidth/2 + float32(math.Cos(angle))*g.worldWidth*0.3,
		Y: g.worldHeight/2 + float32(math.Sin(angle))*g.worldHeight*0.3,
	}

	spinPhase := g.tick % scriptSpinPeriod
	return creature.Input{
		Pointer: pointer,
		Fire:    g.tick%scriptFirePeriod == 0 && g.tick > 0,
		Attack:  g.tick%scriptAttackPeriod == 0 && g.tick > 0,
		Spin:    spinPhase >= scriptSpinPeriod-scriptSpinHold,
	}
}
