package scene

import "github.com/natty-misc/foxel/types"

// A photon is the mutable state of one simulated light ray. Position and
// direction are expressed in world space; the direction is always a unit
// vector. The wavelength (in nm) accumulates the gravitational shift picked
// up along the path and has no effect on the photon's dynamics.
type Photon struct {
	Pos        types.Vec3
	Dir        types.Vec3
	Wavelength float32
}
