// Package pipeline runs the capture, detect, render, display loop.
//
// The loop is single-threaded and blocking at every stage. It ends when a
// frame cannot be captured, when the escape key is pressed, or when inference
// or drawing fails. The source and display are closed on every exit path.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/teslashibe/rtdetect/pkg/debug"
	"github.com/teslashibe/rtdetect/pkg/detection"
	"github.com/teslashibe/rtdetect/pkg/overlay"
	"gocv.io/x/gocv"
)

// Source yields frames. Read overwrites dst and returns false at end of stream.
type Source interface {
	Read(dst *gocv.Mat) bool
	Close() error
}

// Detector runs inference on one frame.
type Detector interface {
	Detect(frame gocv.Mat) ([]detection.Detection, error)
}

// Display shows rendered frames and reports key presses.
type Display interface {
	Show(frame gocv.Mat)
	WaitKey(delay int) int
	Close() error
}

// Renderer draws detections onto frame in place.
type Renderer func(frame *gocv.Mat, dets []detection.Detection) error

// Reason says why the loop stopped.
type Reason int

const (
	ReasonCaptureFailed Reason = iota
	ReasonEscape
	ReasonInferenceFailed
	ReasonRenderFailed
)

func (r Reason) String() string {
	switch r {
	case ReasonCaptureFailed:
		return "capture_failed"
	case ReasonEscape:
		return "escape"
	case ReasonInferenceFailed:
		return "inference_failed"
	case ReasonRenderFailed:
		return "render_failed"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Result summarises a finished run.
type Result struct {
	Frames     int // frames captured
	Inferences int // forward passes completed
	Renders    int // frames shown
	Reason     Reason
}

// Config wires the loop to its stages.
type Config struct {
	Source   Source
	Detector Detector
	Display  Display
	Render   Renderer // defaults to overlay.Draw

	EscapeKey int // key code that stops the loop
	KeyDelay  int // WaitKey delay in milliseconds

	Logger *slog.Logger
}

// Pipeline is a configured capture loop.
type Pipeline struct {
	cfg Config
	log *slog.Logger
}

// New validates cfg and returns a pipeline ready to Run.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Source == nil || cfg.Detector == nil || cfg.Display == nil {
		return nil, errors.New("pipeline: source, detector and display are required")
	}
	if cfg.Render == nil {
		cfg.Render = overlay.Draw
	}
	if cfg.KeyDelay <= 0 {
		cfg.KeyDelay = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{cfg: cfg, log: logger}, nil
}

// Run drives the loop until an exit condition, then releases the source and
// display. Inference and drawing failures are returned as errors; capture
// failure and escape are normal terminations.
func (p *Pipeline) Run() (res Result, err error) {
	defer p.cleanup()

	frame := gocv.NewMat()
	defer frame.Close()

	for {
		if !p.cfg.Source.Read(&frame) || frame.Empty() {
			p.log.Error("no frame captured from camera, exiting", "frames", res.Frames)
			res.Reason = ReasonCaptureFailed
			return res, nil
		}
		res.Frames++

		start := time.Now()
		dets, err := p.cfg.Detector.Detect(frame)
		if err != nil {
			res.Reason = ReasonInferenceFailed
			return res, fmt.Errorf("detect frame %d: %w", res.Frames, err)
		}
		res.Inferences++
		debug.Log("frame %d: %d detection(s) in %v\n", res.Frames, len(dets), time.Since(start))

		if err := p.cfg.Render(&frame, dets); err != nil {
			res.Reason = ReasonRenderFailed
			return res, fmt.Errorf("render frame %d: %w", res.Frames, err)
		}

		p.cfg.Display.Show(frame)
		res.Renders++

		if p.cfg.Display.WaitKey(p.cfg.KeyDelay) == p.cfg.EscapeKey {
			p.log.Info("escape pressed, exiting", "frames", res.Frames)
			res.Reason = ReasonEscape
			return res, nil
		}
	}
}

func (p *Pipeline) cleanup() {
	if err := p.cfg.Source.Close(); err != nil {
		p.log.Warn("release capture device", "error", err)
	}
	if err := p.cfg.Display.Close(); err != nil {
		p.log.Warn("close display", "error", err)
	}
}
