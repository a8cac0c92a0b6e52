// Package detect wraps the opaque frame classifier and maps its raw
// detections to violation categories.
package detect

import (
	"context"
	"image"
)

// Detection is one labeled bounding box returned by the frame classifier
// for a single frame.
type Detection struct {
	Label      string
	Confidence float64
	Box        image.Rectangle
}

// Detector analyzes one encoded video frame and returns the labeled
// bounding boxes found in it. Implementations wrap an external model; the
// model itself is not part of this repository.
type Detector interface {
	Detect(ctx context.Context, frame []byte) ([]Detection, error)
}

// FrameSource produces encoded video frames for the inference loop, one
// per call.
type FrameSource interface {
	Next(ctx context.Context) ([]byte, error)
}
