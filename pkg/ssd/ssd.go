// Package ssd runs a MobileNet-SSD Caffe network through OpenCV's DNN module.
package ssd

import (
	"fmt"
	"image"
	"os"

	"github.com/teslashibe/rtdetect/pkg/debug"
	"github.com/teslashibe/rtdetect/pkg/detection"
	"gocv.io/x/gocv"
)

// Input recipe the network was trained with. Not configurable.
const (
	InputSize   = 300
	ScaleFactor = 0.007843 // ~1/127.5
	MeanValue   = 127.5
)

// Config holds the model file locations.
type Config struct {
	ModelPath  string // Caffe weights (.caffemodel)
	ConfigPath string // Network topology (.prototxt)
}

// Detector owns the loaded network. It is not safe for concurrent use; the
// capture loop drives it from a single goroutine.
type Detector struct {
	net    gocv.Net
	closed bool
}

// New loads the network and pins it to the OpenCV backend on the CPU.
// Any failure is returned and no network is left allocated.
func New(cfg Config) (*Detector, error) {
	for _, p := range []string{cfg.ModelPath, cfg.ConfigPath} {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, p)
		}
	}

	// A parse failure leaves a nil net; Empty must not be called on it
	net := gocv.ReadNetFromCaffe(cfg.ConfigPath, cfg.ModelPath)
	if err := gocv.LastExceptionError(); err != nil {
		return nil, fmt.Errorf("%w: %s, %s: %v", ErrLoadFailed, cfg.ModelPath, cfg.ConfigPath, err)
	}
	if net.Empty() {
		net.Close()
		return nil, fmt.Errorf("%w: %s, %s", ErrEmptyNetwork, cfg.ModelPath, cfg.ConfigPath)
	}

	// Static preference, no fallback to another backend or target
	net.SetPreferableBackend(gocv.NetBackendOpenCV)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	return &Detector{net: net}, nil
}

// Blob builds the normalized 1x3x300x300 input tensor for frame.
// The caller must Close the result.
func Blob(frame gocv.Mat) gocv.Mat {
	return gocv.BlobFromImage(
		frame,
		ScaleFactor,
		image.Pt(InputSize, InputSize),
		gocv.NewScalar(MeanValue, MeanValue, MeanValue, 0),
		false, // no channel swap
		false, // no crop
	)
}

// Forward runs one blocking forward pass. The output has shape [1,1,N,7]
// and must be closed by the caller.
func (d *Detector) Forward(blob gocv.Mat) (gocv.Mat, error) {
	if d.closed {
		return gocv.NewMat(), ErrClosed
	}
	d.net.SetInput(blob, "")
	if err := gocv.LastExceptionError(); err != nil {
		return gocv.NewMat(), fmt.Errorf("set input: %w", err)
	}
	out := d.net.Forward("")
	if err := gocv.LastExceptionError(); err != nil {
		return gocv.NewMat(), fmt.Errorf("forward: %w", err)
	}
	return out, nil
}

// Detect preprocesses frame, runs inference and returns the above-threshold
// detections in frame pixel coordinates.
func (d *Detector) Detect(frame gocv.Mat) ([]detection.Detection, error) {
	if frame.Empty() {
		return nil, ErrEmptyFrame
	}

	blob := Blob(frame)
	defer blob.Close()

	out, err := d.Forward(blob)
	defer out.Close()
	if err != nil {
		return nil, err
	}

	data, err := out.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("read output: %w", err)
	}

	dets := detection.Parse(data, frame.Cols(), frame.Rows())
	if len(dets) > 0 {
		debug.Log("🔍 SSD found %d object(s)\n", len(dets))
	}
	return dets, nil
}

// Close releases the network. Calling it again is a no-op.
func (d *Detector) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.net.Close()
}
