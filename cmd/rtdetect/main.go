// rtdetect - real-time object detection from the default camera
//
// Runs every frame through a MobileNet-SSD Caffe network and shows the
// annotated stream until ESC is pressed or the camera stops delivering frames.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/teslashibe/rtdetect/internal/config"
	"github.com/teslashibe/rtdetect/internal/log"
	"github.com/teslashibe/rtdetect/pkg/capture"
	"github.com/teslashibe/rtdetect/pkg/debug"
	"github.com/teslashibe/rtdetect/pkg/display"
	"github.com/teslashibe/rtdetect/pkg/pipeline"
	"github.com/teslashibe/rtdetect/pkg/ssd"
	"gocv.io/x/gocv"
)

func main() {
	os.Exit(run())
}

func run() int {
	name := filepath.Base(os.Args[0])
	args, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Println(config.Usage(name))
		return 0
	}

	log.Init(config.LogLevel())
	debug.Enabled = config.DebugEnabled()
	logger := log.With("run", uuid.New().String())

	logger.Info("opencv loaded", "gocv", gocv.Version(), "opencv", gocv.OpenCVVersion())

	det, err := ssd.New(ssd.Config{ModelPath: args.ModelPath, ConfigPath: args.ConfigPath})
	if err != nil {
		logger.Error("failed to load network, check model and config paths", "error", err)
		return 1
	}
	defer det.Close()

	cam, err := capture.Open(config.CameraDevice)
	if err != nil {
		logger.Error("cannot open camera", "device", config.CameraDevice, "error", err)
		return 1
	}
	logger.Info("camera opened", "device", cam.Device())

	win := display.Open(config.WindowTitle)

	// The pipeline owns cam and win from here and releases them on exit
	p, err := pipeline.New(pipeline.Config{
		Source:    cam,
		Detector:  det,
		Display:   win,
		EscapeKey: config.EscapeKey,
		KeyDelay:  config.WaitKeyDelay,
		Logger:    logger,
	})
	if err != nil {
		cam.Close()
		win.Close()
		logger.Error("pipeline setup failed", "error", err)
		return 1
	}

	fmt.Println("Starting real-time detection. Press ESC in the window to exit.")

	res, err := p.Run()
	logger.Info("stopped",
		"reason", res.Reason.String(),
		"frames", res.Frames,
		"inferences", res.Inferences,
	)
	if err != nil {
		logger.Error("detection failed", "error", err)
		return 1
	}
	return 0
}
