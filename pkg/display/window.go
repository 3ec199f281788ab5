// Package display shows frames in a desktop window.
package display

import "gocv.io/x/gocv"

// Window is a single titled display window.
type Window struct {
	w      *gocv.Window
	closed bool
}

// Open creates the window.
func Open(title string) *Window {
	return &Window{w: gocv.NewWindow(title)}
}

// Show draws frame into the window.
func (w *Window) Show(frame gocv.Mat) {
	w.w.IMShow(frame)
}

// WaitKey polls the keyboard for up to delay milliseconds and returns the
// key code, or -1 if none was pressed.
func (w *Window) WaitKey(delay int) int {
	return w.w.WaitKey(delay)
}

// Close destroys the window. Calling it again is a no-op.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.w.Close()
}
