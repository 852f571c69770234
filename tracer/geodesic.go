package tracer

import "github.com/natty-misc/foxel/scene"

// March integrates a single photon through the scene's gravitational field
// until it terminates, and returns its intersection record. The deflection
// model is a Newtonian-force analog of geodesic bending: each step the
// direction gains G·M/d² / c² worth of velocity towards the black hole and
// is renormalized to unit length.
//
// Each step, in order: the pre-step state is tested against the camera
// sensor; the position advances by one explicit-Euler step; photons that
// can no longer reach the camera within their remaining budget are pruned;
// photons below the event horizon are captured; otherwise the direction is
// deflected and the wavelength picks up the gravitational shift for the
// step.
//
// March is a pure function of its inputs and shares no state between calls,
// so any number of photons may be marched concurrently against the same
// scene. A direction that degenerates to near-zero length under extreme
// deflection would propagate NaNs; the camera's approach-speed tolerance is
// the only guard, which holds for physically sensible scene constants.
func March(sc *scene.Scene, ph scene.Photon) Intersection {
	horizon := sc.SchwarzschildRadius()
	ts := sc.TimeScale
	c2 := sc.C * sc.C

	for i := 0; i < sc.Iterations; i++ {
		if uv, ok := sc.Camera.Intersect(&ph); ok {
			return Intersection{Outcome: Hit, Screen: uv, Photon: ph, Steps: i}
		}

		distBefore := ph.Pos.Distance(sc.BlackHole.Position)
		ph.Pos = ph.Pos.Add(ph.Dir.Mul(ts))

		if ph.Pos.Distance(sc.Camera.Position) > float32(sc.Iterations-i)*ts {
			return Intersection{Outcome: Escaped, Screen: noHit, Photon: ph, Steps: i + 1}
		}

		toHole := sc.BlackHole.Position.Sub(ph.Pos)
		dist := toHole.Len()
		if dist < horizon {
			return Intersection{Outcome: Captured, Screen: noHit, Photon: ph, Steps: i + 1}
		}

		accel := sc.G * sc.BlackHole.Mass / (dist * dist)
		ph.Wavelength *= 1.0 + accel*(dist-distBefore)/c2
		ph.Dir = ph.Dir.Add(toHole.Mul(1.0 / dist).Mul(accel / c2 * ts)).Normalize()
	}

	return Intersection{Outcome: Exhausted, Screen: noHit, Photon: ph, Steps: sc.Iterations}
}

// TraceBatch marches every photon in the batch and returns one intersection
// record per input slot, in input order.
func TraceBatch(sc *scene.Scene, photons []scene.Photon) []Intersection {
	records := make([]Intersection, len(photons))
	for i := range photons {
		records[i] = March(sc, photons[i])
	}
	return records
}
