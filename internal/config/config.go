// Package config provides configuration helpers for the rtdetect command.
package config

import (
	"errors"
	"fmt"
	"os"
)

// Fixed runtime settings. The detection recipe itself lives in pkg/ssd.
const (
	CameraDevice = 0
	WindowTitle  = "Real-Time Object Detection"
	EscapeKey    = 27
	WaitKeyDelay = 1 // milliseconds
)

// ErrUsage is returned when the positional arguments are missing.
var ErrUsage = errors.New("config: model and config paths required")

// Args holds the positional command line arguments.
type Args struct {
	ModelPath  string // Caffe weights (.caffemodel)
	ConfigPath string // Network topology (.prototxt)
}

// ParseArgs reads <model-weights-path> <model-config-path> from argv
// (program name excluded). There are no flags, so paths starting with "-"
// are taken as paths. Extra arguments are ignored.
func ParseArgs(argv []string) (Args, error) {
	if len(argv) < 2 {
		return Args{}, ErrUsage
	}
	return Args{
		ModelPath:  argv[0],
		ConfigPath: argv[1],
	}, nil
}

// Usage returns the usage line for the command.
func Usage(name string) string {
	return fmt.Sprintf("Usage: %s <caffemodel> <prototxt>", name)
}

// LogLevel returns the log level from LOG_LEVEL env var.
// Falls back to "info" if not set.
func LogLevel() string {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}

// DebugEnabled reports whether RTDETECT_DEBUG is set to a true value.
func DebugEnabled() bool {
	switch os.Getenv("RTDETECT_DEBUG") {
	case "1", "true", "yes":
		return true
	}
	return false
}
