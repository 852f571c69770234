package renderer

import (
	"testing"

	"github.com/natty-misc/foxel/scene"
	"github.com/natty-misc/foxel/tracer"
	"github.com/natty-misc/foxel/types"
)

func testOptions() Options {
	return Options{
		FrameW:     16,
		FrameH:     16,
		BatchSize:  256,
		Passes:     2,
		NumWorkers: 2,
	}
}

func TestNewDefaultValidation(t *testing.T) {
	sc := scene.Default(1.0)
	emitter := scene.DefaultVolumeEmitter(1)

	if _, err := NewDefault(nil, emitter, tracer.NaiveScheduler(), testOptions()); err != ErrSceneNotDefined {
		t.Fatalf("expected ErrSceneNotDefined; got %v", err)
	}

	noCamera := *sc
	noCamera.Camera = nil
	if _, err := NewDefault(&noCamera, emitter, tracer.NaiveScheduler(), testOptions()); err != ErrCameraNotDefined {
		t.Fatalf("expected ErrCameraNotDefined; got %v", err)
	}

	if _, err := NewDefault(sc, nil, tracer.NaiveScheduler(), testOptions()); err != ErrEmitterNotDefined {
		t.Fatalf("expected ErrEmitterNotDefined; got %v", err)
	}
}

func TestTraceBatchSizeMismatch(t *testing.T) {
	sc := scene.Default(1.0)

	r, err := NewDefault(sc, scene.DefaultVolumeEmitter(1), tracer.NaiveScheduler(), testOptions())
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	defer r.Close()

	err = r.TraceBatch(make([]scene.Photon, 4), make([]tracer.Intersection, 8))
	if err != ErrBatchSizeMismatch {
		t.Fatalf("expected ErrBatchSizeMismatch; got %v", err)
	}
}

func TestTraceBatchMatchesSequentialTrace(t *testing.T) {
	sc := scene.Default(1.0)
	photons := scene.DefaultVolumeEmitter(9).Emit(make([]scene.Photon, 128))

	opts := testOptions()
	opts.NumWorkers = 4

	r, err := NewDefault(sc, scene.DefaultVolumeEmitter(9), tracer.PerfectScheduler(), opts)
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	defer r.Close()

	records := make([]tracer.Intersection, len(photons))
	if err = r.TraceBatch(photons, records); err != nil {
		t.Fatalf("batch trace failed: %v", err)
	}

	expected := tracer.TraceBatch(sc, photons)
	for i := range expected {
		if records[i] != expected[i] {
			t.Fatalf("[photon %d] parallel record diverges from the sequential trace", i)
		}
	}
}

func TestRenderFrame(t *testing.T) {
	// Gravity off with a beam emitter aimed straight into the camera so
	// the frame is guaranteed to collect hits.
	sc := scene.Default(1.0)
	sc.BlackHole.Mass = 0
	sc.Camera = scene.NewCamera(
		types.XYZ(0, 0, 5),
		types.XYZ(0, 0, -1),
		types.XYZ(0, 1, 0),
		1.0,
		0.02,
		1.0,
	)

	r, err := NewDefault(sc, beamEmitter{}, tracer.PerfectScheduler(), testOptions())
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	defer r.Close()

	img, err := r.Render()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 16 {
		t.Fatalf("expected a 16x16 frame; got %v", bounds)
	}

	stats := r.Stats()
	if stats.Hits == 0 {
		t.Fatal("expected the beam to register sensor hits")
	}
	if len(stats.Tracers) != 2 {
		t.Fatalf("expected stats for 2 tracers; got %d", len(stats.Tracers))
	}

	var total uint32
	for _, ts := range stats.Tracers {
		total += ts.Photons
	}
	if total != testOptions().BatchSize {
		t.Fatalf("expected the last batch to cover %d photons; got %d", testOptions().BatchSize, total)
	}

	center := img.RGBAAt(8, 8)
	if center.R == 0 && center.G == 0 && center.B == 0 {
		t.Fatal("expected the beam to light up the center pixel")
	}
}

// An emitter that fires every photon down the camera's optical axis.
type beamEmitter struct {
}

func (beamEmitter) Emit(dst []scene.Photon) []scene.Photon {
	for i := range dst {
		dst[i] = scene.Photon{
			Pos:        types.XYZ(0, 0, 0),
			Dir:        types.XYZ(0, 0, 1),
			Wavelength: scene.DefaultWavelength,
		}
	}
	return dst
}
