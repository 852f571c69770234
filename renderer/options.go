package renderer

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of photons traced per dispatch.
	BatchSize uint32

	// Number of batches accumulated into the frame.
	Passes uint32

	// Number of CPU tracers to attach. Zero attaches one per logical core.
	NumWorkers int
}
