package game

import (
	"log/slog"

	"github.com/Joshua861/lucas/telemetry"
)

// flushTelemetry flushes the stats window when it is full, logging and
// writing CSV output as configured.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.aliveCount, g.predCount)

	if g.logStats {
		logWindowStats(stats)
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
}

// logWindowStats emits one structured log record per stats window.
func logWindowStats(stats telemetry.WindowStats) {
	slog.Info("window stats",
		"tick", stats.WindowEndTick,
		"sim_time", stats.SimTimeSec,
		"free_ticks", stats.FreeTicks,
		"grapple_ticks", stats.GrappleTicks,
		"spin_ticks", stats.SpinTicks,
		"grapple_fires", stats.GrappleFires,
		"grapple_hits", stats.GrappleHits,
		"grapple_releases", stats.GrappleReleases,
		"foot_steps", stats.FootSteps,
		"attacks_started", stats.AttacksStarted,
		"attack_hits", stats.AttackHits,
		"head_speed_mean", stats.HeadSpeedMean,
		"head_speed_std", stats.HeadSpeedStd,
		"critters_alive", stats.CrittersAlive,
		"predators", stats.Predators,
	)
}
