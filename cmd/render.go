package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/natty-misc/foxel/renderer"
	"github.com/natty-misc/foxel/scene"
	"github.com/natty-misc/foxel/scene/reader"
	"github.com/natty-misc/foxel/tracer"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderer.Options{
		FrameW:     uint32(ctx.Int("width")),
		FrameH:     uint32(ctx.Int("height")),
		BatchSize:  uint32(ctx.Int("batch")),
		Passes:     uint32(ctx.Int("passes")),
		NumWorkers: ctx.Int("workers"),
	}

	sc, emitter, err := loadScene(ctx)
	if err != nil {
		return err
	}

	// The sensor aspect follows the output frame
	sc.Camera.Aspect = float32(opts.FrameW) / float32(opts.FrameH)
	sc.Camera.Update()

	r, err := renderer.NewDefault(sc, emitter, tracer.PerfectScheduler(), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Noticef("tracing %d passes of %d photons", opts.Passes, opts.BatchSize)
	frame, err := r.Render()
	if err != nil {
		return err
	}

	imgFile := ctx.String("out")
	f, err := os.Create(imgFile)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	if err = png.Encode(f, frame); err != nil {
		return err
	}
	logger.Infof("wrote frame to %s in %d ms", imgFile, time.Since(start).Nanoseconds()/1000000)

	displayFrameStats(r.Stats())

	return nil
}

// Load the scene definition argument or fall back to the stock scene.
func loadScene(ctx *cli.Context) (*scene.Scene, scene.Emitter, error) {
	seed := ctx.Int64("seed")

	if ctx.NArg() == 1 {
		return reader.ReadScene(ctx.Args().First(), seed)
	}

	return scene.Default(1.0), scene.DefaultVolumeEmitter(seed), nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Photons", "% of batch", "Trace time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.Photons),
			fmt.Sprintf("%02.1f %%", stat.BatchPercent),
			fmt.Sprintf("%s", stat.TraceTime),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics (%d sensor hits)\n%s", stats.Hits, buf.String())
}
