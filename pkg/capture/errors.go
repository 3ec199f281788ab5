package capture

import "errors"

// ErrNotOpened is returned when the camera device cannot be opened.
var ErrNotOpened = errors.New("capture: cannot open camera")
