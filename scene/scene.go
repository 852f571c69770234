package scene

import "github.com/natty-misc/foxel/types"

// Physical and integration constants used when no scene file overrides them.
const (
	DefaultG          float32 = 6.67e-11
	DefaultC          float32 = 3e8
	DefaultTimeScale  float32 = 0.015
	DefaultIterations         = 600
)

// A scene bundles the simulation constants shared read-only by every traced
// photon: the black hole, the camera and the integration parameters. A scene
// must not be mutated while a batch is in flight; swapping constants between
// batches is fine.
type Scene struct {
	BlackHole BlackHole
	Camera    *Camera

	// Gravitational constant and speed of light.
	G float32
	C float32

	// Integration step size relative to light speed scale.
	TimeScale float32

	// Per-photon step budget.
	Iterations int
}

// Create a scene with the stock black hole and camera setup: a 2e26 kg hole
// at the origin observed from (0, 1.5, 2.5) through a 0.02 aperture.
func Default(aspect float32) *Scene {
	return &Scene{
		BlackHole: BlackHole{
			Position: types.XYZ(0, 0, 0),
			Mass:     2.0e26,
		},
		Camera: NewCamera(
			types.XYZ(0, 1.5, 2.5),
			types.XYZ(0, -1.5, -2.5),
			types.XYZ(0, 1, 0),
			aspect,
			0.02,
			1.0,
		),
		G:          DefaultG,
		C:          DefaultC,
		TimeScale:  DefaultTimeScale,
		Iterations: DefaultIterations,
	}
}

// The event horizon radius for this scene's constants.
func (sc *Scene) SchwarzschildRadius() float32 {
	return sc.BlackHole.SchwarzschildRadius(sc.G, sc.C)
}
