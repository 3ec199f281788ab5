package debug

import (
	"bytes"
	"testing"
)

func TestLog_Gated(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevEnabled := Output, Enabled
	t.Cleanup(func() { Output, Enabled = prevOut, prevEnabled })
	Output = &buf

	Enabled = false
	Log("frame %d\n", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected no output when disabled, got %q", buf.String())
	}

	Enabled = true
	Log("frame %d: %d detection(s)\n", 2, 3)
	if got, want := buf.String(), "frame 2: 3 detection(s)\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
