package cmd

import (
	"bytes"
	"fmt"

	"github.com/urfave/cli"
)

// Print the simulation constants for a scene, including the derived event
// horizon radius.
func DescribeScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, _, err := loadScene(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("\nScene constants:\n\n")
	buf.WriteString(fmt.Sprintf("[Black hole]\n  Position             %v\n  Mass                 %.3e kg\n  Schwarzschild radius %.4f\n\n",
		sc.BlackHole.Position, sc.BlackHole.Mass, sc.SchwarzschildRadius()))
	buf.WriteString(fmt.Sprintf("[Camera]\n  Position     %v\n  Look dir     %v\n  Aperture     %.4f\n  Focal length %.2f\n  Sensor width %.2f\n\n",
		sc.Camera.Position, sc.Camera.LookDir, sc.Camera.Aperture, sc.Camera.FocalLength, sc.Camera.SensorWidth))
	buf.WriteString(fmt.Sprintf("[Integration]\n  G          %.3e\n  c          %.3e\n  Time scale %.4f\n  Iterations %d\n",
		sc.G, sc.C, sc.TimeScale, sc.Iterations))

	logger.Notice(buf.String())

	return nil
}
