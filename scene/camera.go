package scene

import "github.com/natty-misc/foxel/types"

const (
	// Tolerated camera-space distance from the aperture plane when testing
	// photons for sensor intersections. Photons cross the plane in discrete
	// steps so the plane needs a thickness comparable to the step size.
	planeEpsilon float32 = 0.08

	// Minimum camera-space approach speed along -Z. Photons moving slower
	// than this towards the sensor are rejected; this also guards the
	// division in the sensor projection below.
	dirEpsilon float32 = 0.0001
)

// The camera type models a pinhole camera floating in world space: a
// circular aperture disk centered on Position and facing LookDir, with a
// physical sensor of SensorWidth x SensorWidth/Aspect behind it. Photons
// are tested against it in camera-local coordinates obtained by rotating
// world space so that LookDir maps onto +Z.
type Camera struct {
	Position types.Vec3
	LookDir  types.Vec3
	Up       types.Vec3

	Aspect      float32
	Aperture    float32
	FocalLength float32
	SensorWidth float32

	rot types.Quat
}

func NewCamera(position, lookDir, up types.Vec3, aspect, aperture, focalLength float32) *Camera {
	c := &Camera{
		Position:    position,
		LookDir:     lookDir,
		Up:          up,
		Aspect:      aspect,
		Aperture:    aperture,
		FocalLength: focalLength,
		SensorWidth: 5.0,
	}
	c.Update()
	return c
}

// Update camera. Recomputes the world-to-camera rotation; must be called
// after mutating Position or LookDir.
func (c *Camera) Update() {
	c.LookDir = c.LookDir.Normalize()
	c.rot = types.QuatBetweenVectors(c.LookDir, types.XYZ(0, 0, 1))
}

// Test a photon against the camera aperture and sensor. When the photon
// lies inside the aperture disk, close enough to the aperture plane and
// travelling towards the sensor, its camera-space position is projected
// onto the sensor and mapped to normalized [0,1]x[0,1] screen coordinates
// (inverted on both axes so the image comes out upright). The second
// return value reports whether the photon intersects the sensor.
func (c *Camera) Intersect(ph *Photon) (types.Vec2, bool) {
	mapped := c.rot.Rotate(ph.Pos.Sub(c.Position))

	if abs32(mapped[2]) > planeEpsilon {
		return types.Vec2{}, false
	}

	if mapped[0]*mapped[0]+mapped[1]*mapped[1] > c.Aperture*c.Aperture {
		return types.Vec2{}, false
	}

	mappedDir := c.rot.Rotate(ph.Dir)

	if mappedDir[2] > -dirEpsilon {
		return types.Vec2{}, false
	}

	x := mapped[0] + mappedDir[0]/-mappedDir[2]*c.FocalLength*2.0
	y := mapped[1] + mappedDir[1]/-mappedDir[2]*c.FocalLength*2.0

	sensorW := c.SensorWidth
	sensorH := sensorW / c.Aspect

	if abs32(x) > sensorW/2.0 || abs32(y) > sensorH/2.0 {
		return types.Vec2{}, false
	}

	return types.XY(-x/sensorW+0.5, -y/sensorH+0.5), true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
