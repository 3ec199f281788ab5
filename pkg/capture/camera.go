// Package capture reads frames from a local camera device.
package capture

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Camera is an opened capture device. Read and Close must be called from the
// same goroutine.
type Camera struct {
	vc     *gocv.VideoCapture
	device int
	closed bool
}

// Open opens the camera with the given device index.
func Open(device int) (*Camera, error) {
	vc, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("%w (%d): %v", ErrNotOpened, device, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("%w (%d)", ErrNotOpened, device)
	}
	return &Camera{vc: vc, device: device}, nil
}

// Device returns the device index the camera was opened with.
func (c *Camera) Device() int {
	return c.device
}

// Read overwrites dst with the next frame. It blocks until a frame is ready
// and returns false when the device fails or has been closed.
func (c *Camera) Read(dst *gocv.Mat) bool {
	if c.closed {
		return false
	}
	return c.vc.Read(dst)
}

// Close releases the device. Calling it again is a no-op.
func (c *Camera) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.vc.Close()
}
