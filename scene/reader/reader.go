// Package reader loads scene definitions from YAML files. Every field is
// optional; omitted values fall back to the stock scene so a definition only
// needs to spell out what it changes.
package reader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/natty-misc/foxel/scene"
	"github.com/natty-misc/foxel/types"
)

type vec3File [3]float32

func (v vec3File) vec3() types.Vec3 {
	return types.XYZ(v[0], v[1], v[2])
}

type sceneFile struct {
	BlackHole struct {
		Position *vec3File `yaml:"position"`
		Mass     *float32  `yaml:"mass"`
	} `yaml:"black_hole"`

	Camera struct {
		Position    *vec3File `yaml:"position"`
		LookAt      *vec3File `yaml:"look_at"`
		Up          *vec3File `yaml:"up"`
		Aperture    *float32  `yaml:"aperture"`
		FocalLength *float32  `yaml:"focal_length"`
		SensorWidth *float32  `yaml:"sensor_width"`
	} `yaml:"camera"`

	Simulation struct {
		TimeScale             *float32 `yaml:"time_scale"`
		Iterations            *int     `yaml:"iterations"`
		GravitationalConstant *float32 `yaml:"gravitational_constant"`
		LightSpeed            *float32 `yaml:"light_speed"`
	} `yaml:"simulation"`

	Emitter struct {
		Type       string    `yaml:"type"`
		Min        *vec3File `yaml:"min"`
		Max        *vec3File `yaml:"max"`
		Position   *vec3File `yaml:"position"`
		Wavelength *float32  `yaml:"wavelength"`
	} `yaml:"emitter"`
}

// ReadScene parses a YAML scene definition, applies it on top of the stock
// scene and builds the emitter it describes. The seed feeds the emitter's
// random source so renders are reproducible.
func ReadScene(path string, seed int64) (*scene.Scene, scene.Emitter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reader: %v", err)
	}

	return parseScene(data, seed)
}

func parseScene(data []byte, seed int64) (*scene.Scene, scene.Emitter, error) {
	var sf sceneFile
	if err := yaml.UnmarshalStrict(data, &sf); err != nil {
		return nil, nil, fmt.Errorf("reader: malformed scene definition: %v", err)
	}

	sc := scene.Default(1.0)

	if sf.BlackHole.Position != nil {
		sc.BlackHole.Position = sf.BlackHole.Position.vec3()
	}
	if sf.BlackHole.Mass != nil {
		sc.BlackHole.Mass = *sf.BlackHole.Mass
	}

	cam := sc.Camera
	if sf.Camera.Position != nil {
		cam.Position = sf.Camera.Position.vec3()
	}
	if sf.Camera.LookAt != nil {
		cam.LookDir = sf.Camera.LookAt.vec3().Sub(cam.Position)
	}
	if sf.Camera.Up != nil {
		cam.Up = sf.Camera.Up.vec3()
	}
	if sf.Camera.Aperture != nil {
		cam.Aperture = *sf.Camera.Aperture
	}
	if sf.Camera.FocalLength != nil {
		cam.FocalLength = *sf.Camera.FocalLength
	}
	if sf.Camera.SensorWidth != nil {
		cam.SensorWidth = *sf.Camera.SensorWidth
	}
	cam.Update()

	if sf.Simulation.TimeScale != nil {
		sc.TimeScale = *sf.Simulation.TimeScale
	}
	if sf.Simulation.Iterations != nil {
		sc.Iterations = *sf.Simulation.Iterations
	}
	if sf.Simulation.GravitationalConstant != nil {
		sc.G = *sf.Simulation.GravitationalConstant
	}
	if sf.Simulation.LightSpeed != nil {
		sc.C = *sf.Simulation.LightSpeed
	}

	emitter, err := buildEmitter(&sf, seed)
	if err != nil {
		return nil, nil, err
	}

	return sc, emitter, nil
}

func buildEmitter(sf *sceneFile, seed int64) (scene.Emitter, error) {
	wavelength := scene.DefaultWavelength
	if sf.Emitter.Wavelength != nil {
		wavelength = *sf.Emitter.Wavelength
	}

	switch sf.Emitter.Type {
	case "", "volume":
		em := scene.DefaultVolumeEmitter(seed)
		em.Wavelength = wavelength
		if sf.Emitter.Min != nil {
			em.Min = sf.Emitter.Min.vec3()
		}
		if sf.Emitter.Max != nil {
			em.Max = sf.Emitter.Max.vec3()
		}
		return em, nil
	case "point":
		position := types.Vec3{}
		if sf.Emitter.Position != nil {
			position = sf.Emitter.Position.vec3()
		}
		return scene.NewPointEmitter(position, wavelength, seed), nil
	default:
		return nil, fmt.Errorf("reader: unsupported emitter type %q", sf.Emitter.Type)
	}
}
