package scene

import (
	"math/rand"

	"github.com/natty-misc/foxel/types"
)

// Wavelength assigned to emitted photons unless the emitter is configured
// otherwise (yellow, roughly the middle of the visible band).
const DefaultWavelength float32 = 580.0

// An emitter generates batches of initial photon states for the tracer to
// consume. Emitters are not safe for concurrent use; the renderer drives a
// single emitter from its render loop.
type Emitter interface {
	// Fill dst with fresh photon states and return it.
	Emit(dst []Photon) []Photon
}

// A volume emitter launches photons from uniformly random positions inside
// an axis-aligned box, each travelling in a uniformly random direction.
// This mimics a glowing cloud of matter around the black hole.
type VolumeEmitter struct {
	Min        types.Vec3
	Max        types.Vec3
	Wavelength float32

	rng *rand.Rand
}

func NewVolumeEmitter(min, max types.Vec3, wavelength float32, seed int64) *VolumeEmitter {
	return &VolumeEmitter{
		Min:        min,
		Max:        max,
		Wavelength: wavelength,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// The emitting volume used by the default scene: a flat slab straddling the
// black hole, wide enough to fill the camera's field of view.
func DefaultVolumeEmitter(seed int64) *VolumeEmitter {
	return NewVolumeEmitter(
		types.XYZ(-4.8, -0.4, -4.8),
		types.XYZ(4.8, 0.4, 4.8),
		DefaultWavelength,
		seed,
	)
}

func (em *VolumeEmitter) Emit(dst []Photon) []Photon {
	span := em.Max.Sub(em.Min)
	for i := range dst {
		dst[i] = Photon{
			Pos: types.XYZ(
				em.Min[0]+em.rng.Float32()*span[0],
				em.Min[1]+em.rng.Float32()*span[1],
				em.Min[2]+em.rng.Float32()*span[2],
			),
			Dir:        randomDir(em.rng),
			Wavelength: em.Wavelength,
		}
	}
	return dst
}

// A point emitter radiates photons isotropically from a single world
// position, approximating a distant star behind the lens.
type PointEmitter struct {
	Position   types.Vec3
	Wavelength float32

	rng *rand.Rand
}

func NewPointEmitter(position types.Vec3, wavelength float32, seed int64) *PointEmitter {
	return &PointEmitter{
		Position:   position,
		Wavelength: wavelength,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

func (em *PointEmitter) Emit(dst []Photon) []Photon {
	for i := range dst {
		dst[i] = Photon{
			Pos:        em.Position,
			Dir:        randomDir(em.rng),
			Wavelength: em.Wavelength,
		}
	}
	return dst
}

// Sample a random direction: component-wise uniform in [-1, 1), normalized.
func randomDir(rng *rand.Rand) types.Vec3 {
	return types.XYZ(
		rng.Float32()*2.0-1.0,
		rng.Float32()*2.0-1.0,
		rng.Float32()*2.0-1.0,
	).Normalize()
}
