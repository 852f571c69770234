package renderer

import "time"

type TracerStat struct {
	// The tracer id.
	Id string

	// The photon count and the percentage of the batch it represents.
	Photons      uint32
	BatchPercent float32

	// Trace time for the assigned range on the last batch.
	TraceTime time.Duration
}

type FrameStats struct {
	// Individual tracer stats.
	Tracers []TracerStat

	// Photons that reached the sensor across all passes.
	Hits uint64

	// Total render time for the entire frame.
	RenderTime time.Duration
}
