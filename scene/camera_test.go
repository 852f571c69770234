package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/natty-misc/foxel/types"
)

// A camera at (0, 0, 5) looking towards the origin. Photons reach it from
// the front by travelling in world +Z.
func axisCamera() *Camera {
	return NewCamera(
		types.XYZ(0, 0, 5),
		types.XYZ(0, 0, -1),
		types.XYZ(0, 1, 0),
		1.0,
		0.02,
		1.0,
	)
}

func TestCameraCenterIntersection(t *testing.T) {
	cam := axisCamera()

	ph := &Photon{
		Pos: types.XYZ(0, 0, 4.99),
		Dir: types.XYZ(0, 0, 1),
	}

	uv, ok := cam.Intersect(ph)
	if !ok {
		t.Fatal("expected a photon on the optical axis to intersect the sensor")
	}

	assert.InDelta(t, 0.5, float64(uv[0]), 1e-4)
	assert.InDelta(t, 0.5, float64(uv[1]), 1e-4)
}

func TestCameraRejections(t *testing.T) {
	cam := axisCamera()

	type spec struct {
		descr string
		pos   types.Vec3
		dir   types.Vec3
	}
	specs := []spec{
		{"too far from the aperture plane", types.XYZ(0, 0, 4), types.XYZ(0, 0, 1)},
		{"outside the aperture disk", types.XYZ(0.05, 0, 4.99), types.XYZ(0, 0, 1)},
		{"moving away from the sensor", types.XYZ(0, 0, 4.99), types.XYZ(0, 0, -1)},
		{"moving parallel to the aperture plane", types.XYZ(0, 0, 4.99), types.XYZ(0, 1, 0)},
	}

	for index, s := range specs {
		if _, ok := cam.Intersect(&Photon{Pos: s.pos, Dir: s.dir}); ok {
			t.Fatalf("[spec %d] expected photon %s to be rejected", index, s.descr)
		}
	}
}

func TestCameraSensorBounds(t *testing.T) {
	cam := axisCamera()

	// Inside the aperture but grazing at a steep angle; the projection
	// lands outside the sensor half-width.
	ph := &Photon{
		Pos: types.XYZ(0, 0, 4.99),
		Dir: types.XYZ(0.97, 0, 0.25).Normalize(),
	}

	if _, ok := cam.Intersect(ph); ok {
		t.Fatal("expected a steeply grazing photon to miss the sensor")
	}
}

func TestCameraProjectionSymmetry(t *testing.T) {
	cam := axisCamera()

	uvl, okl := cam.Intersect(&Photon{
		Pos: types.XYZ(0, 0, 4.99),
		Dir: types.XYZ(-0.1, 0, 1).Normalize(),
	})
	uvr, okr := cam.Intersect(&Photon{
		Pos: types.XYZ(0, 0, 4.99),
		Dir: types.XYZ(0.1, 0, 1).Normalize(),
	})

	if !okl || !okr {
		t.Fatal("expected both mirrored photons to intersect the sensor")
	}

	assert.InDelta(t, 1.0, float64(uvl[0]+uvr[0]), 1e-4)
	assert.InDelta(t, float64(uvl[1]), float64(uvr[1]), 1e-5)
}

func TestCameraScreenMappingOrientation(t *testing.T) {
	cam := axisCamera()

	// Arrives drifting towards world -X and -Y; the inverted screen
	// mapping puts it left of center and below it.
	uv, ok := cam.Intersect(&Photon{
		Pos: types.XYZ(0, 0, 4.99),
		Dir: types.XYZ(-0.1, -0.1, 1).Normalize(),
	})
	if !ok {
		t.Fatal("expected an oblique photon to intersect the sensor")
	}

	if uv[0] >= 0.5 {
		t.Fatalf("expected screen X left of center; got %f", uv[0])
	}
	if uv[1] <= 0.5 {
		t.Fatalf("expected screen Y below center; got %f", uv[1])
	}
}
