package tracer

import (
	"fmt"
	"sync"
	"time"

	"github.com/natty-misc/foxel/log"
	"github.com/natty-misc/foxel/scene"
)

type cpuTracer struct {
	logger log.Logger

	sync.Mutex
	wg sync.WaitGroup

	// The tracer id.
	id string

	// The scene constants used when marching photons.
	sc *scene.Scene

	// A buffer for queuing updates. Updates are grouped by type and
	// latest updates always overwrite the previous ones.
	updateBuffer map[UpdateType]interface{}

	// A channel for receiving batch requests from the renderer.
	batchReqChan chan BatchRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for the last traced batch.
	stats *Stats
}

// Create a tracer that marches photons on a single OS thread's worth of CPU.
// The renderer typically attaches one per logical core.
func NewCPU(id string, sc *scene.Scene) Tracer {
	return &cpuTracer{
		logger:       log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:           id,
		sc:           sc,
		updateBuffer: make(map[UpdateType]interface{}),
		batchReqChan: make(chan BatchRequest),
		stats:        &Stats{},
	}
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Get the computation speed estimate. All CPU tracers are equal peers.
func (tr *cpuTracer) Speed() uint32 {
	return 1
}

// Initialize tracer and start its request processor.
func (tr *cpuTracer) Init() error {
	tr.Lock()
	defer tr.Unlock()

	if tr.sc == nil {
		return ErrNoSceneData
	}

	if tr.closeChan == nil {
		tr.startWorker()
	}

	return nil
}

// Shutdown and cleanup tracer.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	if tr.closeChan != nil {
		tr.closeChan <- struct{}{}

		// wait for worker to ack close and shutdown channel
		<-tr.closeChan
		close(tr.closeChan)
		tr.closeChan = nil
	}
}

// Enqueue batch request.
func (tr *cpuTracer) Enqueue(batchReq BatchRequest) {
	select {
	case tr.batchReqChan <- batchReq:
	default:
		// drop the request if worker is not listening
		tr.logger.Error("request processor did not receive batch request")
	}
}

// Append a change to the tracer's update buffer.
func (tr *cpuTracer) Update(updateType UpdateType, data interface{}) {
	tr.updateBuffer[updateType] = data
}

// Retrieve last batch statistics.
func (tr *cpuTracer) Stats() *Stats {
	return tr.stats
}

// Commit queued changes. New constants only take effect on batch
// boundaries; in-flight batches always run against a consistent scene.
func (tr *cpuTracer) commitUpdates() error {
	var err error
	for updateType, data := range tr.updateBuffer {
		switch updateType {
		case UpdateScene:
			tr.sc = data.(*scene.Scene)
		case UpdateCamera:
			tr.sc.Camera = data.(*scene.Camera)
		default:
			err = fmt.Errorf("unsupported update type %d", updateType)
		}

		if err != nil {
			return err
		}
	}

	tr.updateBuffer = make(map[UpdateType]interface{})
	return nil
}

// Spawn a go-routine to process batch requests.
func (tr *cpuTracer) startWorker() {
	tr.closeChan = make(chan struct{})

	readyChan := make(chan struct{})
	tr.wg.Add(1)
	go func() {
		defer tr.wg.Done()
		var batchReq BatchRequest
		var startTime time.Time
		var err error
		close(readyChan)
		for {
			select {
			case batchReq = <-tr.batchReqChan:
				// Apply any pending changes
				if len(tr.updateBuffer) != 0 {
					err = tr.commitUpdates()
					if err != nil {
						batchReq.ErrChan <- err
						continue
					}
				}

				startTime = time.Now()
				err = tr.traceRange(&batchReq)
				if err != nil {
					batchReq.ErrChan <- err
					continue
				}

				// Update stats
				tr.stats.Count = batchReq.Count
				tr.stats.TraceTime = time.Since(startTime)

				batchReq.DoneChan <- batchReq.Count
			case <-tr.closeChan:
				// Ack close
				tr.closeChan <- struct{}{}
				return
			}
		}
	}()

	// Wait for go-routine to start
	<-readyChan
}

// March every photon in the assigned slot range and write one record per slot.
func (tr *cpuTracer) traceRange(batchReq *BatchRequest) error {
	if tr.sc == nil {
		return ErrNoSceneData
	}

	end := batchReq.Start + batchReq.Count
	if end > uint32(len(batchReq.Photons)) || len(batchReq.Photons) != len(batchReq.Records) {
		return ErrInvalidBatchRange
	}

	for i := batchReq.Start; i < end; i++ {
		batchReq.Records[i] = March(tr.sc, batchReq.Photons[i])
	}

	return nil
}
