package tracer

import (
	"time"

	"github.com/natty-misc/foxel/scene"
	"github.com/natty-misc/foxel/types"
)

type UpdateType uint8

const (
	UpdateScene UpdateType = iota
	UpdateCamera
)

// Terminal states of a traced photon.
type Outcome uint8

const (
	// The photon spent its whole step budget without reaching the sensor.
	Exhausted Outcome = iota

	// The photon crossed the aperture plane and projected onto the sensor.
	Hit

	// The photon fell below the event horizon.
	Captured

	// The photon got too far from the camera to ever return within its
	// remaining step budget.
	Escaped
)

func (o Outcome) String() string {
	switch o {
	case Exhausted:
		return "exhausted"
	case Hit:
		return "hit"
	case Captured:
		return "captured"
	case Escaped:
		return "escaped"
	}
	return "unknown"
}

// Screen coordinates written for photons that never hit the sensor; outside
// the valid [0,1] range on both axes.
var noHit = types.XY(-1, -1)

// The per-photon tracing result: how the photon terminated, the normalized
// sensor coordinates (only valid for Hit outcomes), the photon state at the
// moment of termination and the number of integration steps performed.
type Intersection struct {
	Outcome Outcome
	Screen  types.Vec2
	Photon  scene.Photon
	Steps   int
}

// Report whether the photon reached the sensor.
func (in Intersection) Intersects() bool {
	return in.Outcome == Hit
}

// A unit of work processed by a tracer: a contiguous range of slots over a
// shared pair of photon/record arrays. Ranges assigned to different tracers
// never overlap, so no locking is needed around the arrays.
type BatchRequest struct {
	// First slot index and slot count assigned to the tracer.
	Start uint32
	Count uint32

	// The shared batch arrays; the tracer reads Photons and writes Records
	// only inside its assigned range.
	Photons []scene.Photon
	Records []Intersection

	// A channel to signal on range completion with the number of traced photons.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// Tracer statistics.
type Stats struct {
	// Photons traced in the last batch.
	Count uint32

	// Time spent tracing the last batch.
	TraceTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Get the tracer's computation speed estimate relative to its peers.
	Speed() uint32

	// Start the tracer's request processor.
	Init() error

	// Shutdown and cleanup tracer.
	Close()

	// Enqueue batch request.
	Enqueue(BatchRequest)

	// Queue a scene or camera swap to be applied before the next batch.
	Update(UpdateType, interface{})

	// Retrieve last batch statistics.
	Stats() *Stats
}
