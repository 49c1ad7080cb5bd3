// Package telemetry collects windowed simulation statistics and writes
// them to CSV.
package telemetry

// WindowStats summarizes one stats window for CSV output and logging.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Ticks spent in each steering mode
	FreeTicks    int `csv:"free_ticks"`
	GrappleTicks int `csv:"grapple_ticks"`
	SpinTicks    int `csv:"spin_ticks"`

	// Action events
	GrappleFires    int `csv:"grapple_fires"`
	GrappleHits     int `csv:"grapple_hits"`
	GrappleReleases int `csv:"grapple_releases"`
	FootSteps       int `csv:"foot_steps"`
	AttacksStarted  int `csv:"attacks_started"`
	AttackHits      int `csv:"attack_hits"`

	// Head motion over the window
	HeadSpeedMean float64 `csv:"head_speed_mean"`
	HeadSpeedStd  float64 `csv:"head_speed_std"`

	// Critter population at flush time
	CrittersAlive int `csv:"critters_alive"`
	Predators     int `csv:"predators"`
}
