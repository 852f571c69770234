package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/natty-misc/foxel/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "foxel"
	app.Usage = "render gravitationally lensed images of a black hole"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Trace batches of photons through the gravitational field of a black hole and
accumulate the ones that reach the camera sensor into a PNG image.

An optional YAML scene definition overrides the stock black hole, camera and
emitter; see scene/reader for the accepted keys.`,
			ArgsUsage: "[scene_file.yml]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "batch",
					Value: 1 << 20,
					Usage: "photons traced per pass",
				},
				cli.IntFlag{
					Name:  "passes",
					Value: 16,
					Usage: "number of accumulated passes",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of CPU tracers (0 selects one per core)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "photon emitter random seed",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:      "describe",
			Usage:     "print the simulation constants for a scene",
			ArgsUsage: "[scene_file.yml]",
			Action:    cmd.DescribeScene,
		},
	}

	app.Run(os.Args)
}
