package tracer

import "math"

// The BatchScheduler interface is implemented by all batch scheduling algorithms.
type BatchScheduler interface {
	// Split a photon batch into contiguous slot ranges and assign them to
	// the pool of tracers.
	//
	// This function returns the photon count assignment for each tracer
	// in the input list; the counts always add up to batchSize.
	Schedule(tracers []Tracer, batchSize uint32) []uint32
}

// The naive scheduler statically splits each batch proportionally to the
// tracers' speed estimates.
type naiveScheduler struct {
}

// Create a new naive scheduler instance.
func NaiveScheduler() BatchScheduler {
	return &naiveScheduler{}
}

func (sch *naiveScheduler) Schedule(tracers []Tracer, batchSize uint32) []uint32 {
	return scheduleBySpeed(tracers, batchSize)
}

// The perfect scheduler assumes that the volume of tracing work between two
// subsequent batches is approximately the same and uses the throughput
// observed on the previous batch to size the next assignment.
type perfectScheduler struct {
	assignment []uint32
}

// Create a new perfect scheduler instance.
func PerfectScheduler() BatchScheduler {
	return &perfectScheduler{}
}

// Split a photon batch into per-tracer slot counts using feedback collected
// from the previous batch.
//
// The workload estimate for tracer w on batch i+1 is
// (count,w_i / time,w_i) / Σ(count_i / time_i). The first call, or any call
// after the tracer pool changed, falls back to the static speed split.
func (sch *perfectScheduler) Schedule(tracers []Tracer, batchSize uint32) []uint32 {
	// If this is the first time we try to schedule or the number of tracers
	// has changed we need to reset the assignments
	if len(sch.assignment) != len(tracers) {
		sch.assignment = scheduleBySpeed(tracers, batchSize)
		return sch.assignment
	}

	// Use last batch statistics
	var total float64
	var stats *Stats
	for _, tr := range tracers {
		stats = tr.Stats()
		total += float64(stats.Count) / float64(stats.TraceTime)
	}

	scaler := float64(batchSize) / total
	var scheduled uint32
	for idx, tr := range tracers {
		stats = tr.Stats()
		sch.assignment[idx] = uint32(math.Max(1.0, math.Floor(float64(stats.Count)/float64(stats.TraceTime)*scaler)))
		scheduled += sch.assignment[idx]
	}

	// In case counts don't add up to the batch size hand the missing slots
	// to the first tracer
	sch.assignment[0] += batchSize - scheduled

	return sch.assignment
}

// Assign photon counts proportionally to the tracers' speed estimates.
func scheduleBySpeed(tracers []Tracer, batchSize uint32) []uint32 {
	assignment := make([]uint32, len(tracers))

	var total float64
	for _, tr := range tracers {
		total += float64(tr.Speed())
	}
	scaler := float64(batchSize) / total

	var scheduled uint32
	for idx, tr := range tracers {
		assignment[idx] = uint32(math.Max(1.0, math.Floor(float64(tr.Speed())*scaler)))
		scheduled += assignment[idx]
	}

	assignment[0] += batchSize - scheduled

	return assignment
}
