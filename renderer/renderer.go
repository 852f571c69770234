package renderer

import (
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/natty-misc/foxel/log"
	"github.com/natty-misc/foxel/scene"
	"github.com/natty-misc/foxel/tracer"
)

type Renderer interface {
	// Render frame.
	Render() (*image.RGBA, error)

	// Trace a single photon batch, writing one intersection record per
	// input slot. Returns after every attached tracer has completed its
	// assigned range.
	TraceBatch(photons []scene.Photon, records []tracer.Intersection) error

	// Shutdown renderer and any attached tracers.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

// The default renderer drives a pool of CPU tracers: each pass it pulls a
// fresh photon batch from the emitter, splits it across the tracers, waits
// on the batch barrier and blends the resulting hits into its film.
type defaultRenderer struct {
	logger log.Logger

	sc      *scene.Scene
	emitter scene.Emitter

	tracers   []tracer.Tracer
	scheduler tracer.BatchScheduler

	options Options
	film    *Film
	stats   FrameStats

	// Batch buffers, reused across passes.
	photons []scene.Photon
	records []tracer.Intersection

	// Barrier channels shared by all dispatches.
	doneChan chan uint32
	errChan  chan error
}

// Create a renderer using the specified emitter and batch scheduler. One
// CPU tracer is attached per requested worker.
func NewDefault(sc *scene.Scene, emitter scene.Emitter, scheduler tracer.BatchScheduler, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if emitter == nil {
		return nil, ErrEmitterNotDefined
	}

	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	r := &defaultRenderer{
		logger:    log.New("renderer"),
		sc:        sc,
		emitter:   emitter,
		scheduler: scheduler,
		options:   opts,
		film:      NewFilm(int(opts.FrameW), int(opts.FrameH)),
		photons:   make([]scene.Photon, opts.BatchSize),
		records:   make([]tracer.Intersection, opts.BatchSize),
		doneChan:  make(chan uint32, numWorkers),
		errChan:   make(chan error, numWorkers),
	}

	for i := 0; i < numWorkers; i++ {
		tr := tracer.NewCPU(fmt.Sprintf("cpu-%d", i), sc)
		if err := tr.Init(); err != nil {
			r.Close()
			return nil, err
		}
		r.tracers = append(r.tracers, tr)
	}

	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}

	return r, nil
}

// Render frame. Each pass traces one emitted batch and accumulates its
// sensor hits; the film keeps sharpening until all passes complete.
func (r *defaultRenderer) Render() (*image.RGBA, error) {
	startTime := time.Now()

	var hits uint64
	for pass := uint32(0); pass < r.options.Passes; pass++ {
		r.emitter.Emit(r.photons)

		if err := r.TraceBatch(r.photons, r.records); err != nil {
			return nil, err
		}

		blended := r.film.Splat(r.records)
		hits += uint64(blended)
		r.logger.Debugf("pass %d/%d: %d photons reached the sensor", pass+1, r.options.Passes, blended)
	}

	r.collectStats(hits, time.Since(startTime))

	return r.film.Image(), nil
}

// Trace a single photon batch. The batch is split into contiguous slot
// ranges by the scheduler, one per tracer; this method blocks until every
// range has been traced, the single synchronization point around the
// parallel computation.
func (r *defaultRenderer) TraceBatch(photons []scene.Photon, records []tracer.Intersection) error {
	if len(photons) != len(records) {
		return ErrBatchSizeMismatch
	}
	if len(r.tracers) == 0 {
		return ErrNoTracers
	}

	assignment := r.scheduler.Schedule(r.tracers, uint32(len(photons)))

	var start uint32
	var pending int
	for idx, tr := range r.tracers {
		count := assignment[idx]
		if count == 0 {
			continue
		}

		tr.Enqueue(tracer.BatchRequest{
			Start:    start,
			Count:    count,
			Photons:  photons,
			Records:  records,
			DoneChan: r.doneChan,
			ErrChan:  r.errChan,
		})
		start += count
		pending++
	}

	var err error
	for ; pending > 0; pending-- {
		select {
		case <-r.doneChan:
		case trErr := <-r.errChan:
			err = trErr
		}
	}

	return err
}

// Shutdown renderer and any attached tracers.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

func (r *defaultRenderer) collectStats(hits uint64, renderTime time.Duration) {
	r.stats = FrameStats{
		Tracers:    make([]TracerStat, len(r.tracers)),
		Hits:       hits,
		RenderTime: renderTime,
	}

	for idx, tr := range r.tracers {
		trStats := tr.Stats()
		r.stats.Tracers[idx] = TracerStat{
			Id:           tr.Id(),
			Photons:      trStats.Count,
			BatchPercent: float32(trStats.Count) / float32(r.options.BatchSize) * 100.0,
			TraceTime:    trStats.TraceTime,
		}
	}
}
