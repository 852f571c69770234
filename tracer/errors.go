package tracer

import "errors"

var (
	ErrNoSceneData       = errors.New("tracer: no scene data")
	ErrInvalidBatchRange = errors.New("tracer: batch range exceeds photon array bounds")
)
