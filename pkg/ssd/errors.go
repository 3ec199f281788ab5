package ssd

import "errors"

// Sentinel errors for network loading and inference.
var (
	// ErrModelNotFound is returned when the weights or topology file is missing.
	ErrModelNotFound = errors.New("ssd: model file not found")

	// ErrLoadFailed is returned when OpenCV cannot parse the model files.
	ErrLoadFailed = errors.New("ssd: cannot parse model")

	// ErrEmptyNetwork is returned when OpenCV parsed the files into an empty net.
	ErrEmptyNetwork = errors.New("ssd: network is empty")

	// ErrEmptyFrame is returned when asked to run on an empty frame.
	ErrEmptyFrame = errors.New("ssd: empty frame")

	// ErrClosed is returned when the detector is used after Close.
	ErrClosed = errors.New("ssd: detector closed")
)
