package scene

import "github.com/natty-misc/foxel/types"

// A non-rotating black hole. It only interacts with photons through its
// gravitational pull; it is shared read-only by every traced photon.
type BlackHole struct {
	Position types.Vec3
	Mass     float32
}

// Calculate the event horizon radius 2GM/c² for the given gravitational
// constant and speed of light.
func (bh BlackHole) SchwarzschildRadius(g, c float32) float32 {
	return 2.0 * g * bh.Mass / (c * c)
}
