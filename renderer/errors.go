package renderer

import "errors"

var (
	ErrNoTracers         = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined   = errors.New("renderer: no scene defined")
	ErrCameraNotDefined  = errors.New("renderer: no camera defined")
	ErrEmitterNotDefined = errors.New("renderer: no emitter defined")
	ErrBatchSizeMismatch = errors.New("renderer: photon and record arrays differ in length")
)
