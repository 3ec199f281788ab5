package detection

import (
	"image"
	"math"
	"testing"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{0, "background"},
		{1, "aeroplane"},
		{15, "person"},
		{20, "tvmonitor"},
		{21, "id:21"},
		{-1, "id:-1"},
		{999, "id:999"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := Label(tc.id); got != tc.want {
				t.Errorf("Label(%d) = %q, want %q", tc.id, got, tc.want)
			}
		})
	}
}

func TestLabel_CoversTable(t *testing.T) {
	for id, name := range Classes {
		if got := Label(id); got != name {
			t.Errorf("Label(%d) = %q, want %q", id, got, name)
		}
	}
}

func TestCaption(t *testing.T) {
	tests := []struct {
		name string
		det  Detection
		want string
	}{
		{"rounds down", Detection{ClassID: 15, Confidence: 0.874}, "person: 0.87"},
		{"rounds up", Detection{ClassID: 7, Confidence: 0.996}, "car: 1.00"},
		{"unknown class", Detection{ClassID: 42, Confidence: 0.5001}, "id:42: 0.50"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.det.Caption(); got != tc.want {
				t.Errorf("Caption = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float32
		w, h           int
		want           Box
	}{
		{"full frame", 0, 0, 1, 1, 640, 480, Box{0, 0, 640, 480}},
		{"quarter", 0.25, 0.5, 0.75, 1, 640, 480, Box{160, 240, 480, 480}},
		{"outside frame not clamped", -0.125, 0.5, 1.25, 1.5, 800, 600, Box{-100, 300, 1000, 900}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Scale(tc.x0, tc.y0, tc.x1, tc.y1, tc.w, tc.h)
			if got != tc.want {
				t.Errorf("Scale = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParse_Threshold(t *testing.T) {
	nan := float32(math.NaN())
	out := []float32{
		0, 15, nan, 0, 0, 1, 1, // NaN score: dropped
		0, 15, 0.5, 0, 0, 1, 1, // exactly at threshold: dropped
		0, 7, 0.50001, 0, 0, 1, 1, // just above: kept
		0, 3, 0.1, 0, 0, 1, 1, // low: dropped
		0, 12, 0.99, 0.5, 0.5, 1, 1, // kept
	}

	dets := Parse(out, 100, 200)
	if len(dets) != 2 {
		t.Fatalf("expected 2 detections, got %d: %+v", len(dets), dets)
	}
	if dets[0].ClassID != 7 || dets[1].ClassID != 12 {
		t.Errorf("unexpected classes/order: %+v", dets)
	}
	if dets[1].Box != (Box{50, 100, 100, 200}) {
		t.Errorf("unexpected box: %+v", dets[1].Box)
	}
}

func TestParse_KeepsOverlaps(t *testing.T) {
	out := []float32{
		0, 15, 0.9, 0.1, 0.1, 0.5, 0.5,
		0, 15, 0.8, 0.1, 0.1, 0.5, 0.5,
	}
	if got := len(Parse(out, 300, 300)); got != 2 {
		t.Errorf("expected both overlapping rows, got %d", got)
	}
}

func TestParse_PartialRowIgnored(t *testing.T) {
	out := []float32{
		0, 15, 0.9, 0, 0, 1, 1,
		0, 8, 0.9, 0, // truncated
	}
	dets := Parse(out, 10, 10)
	if len(dets) != 1 || dets[0].ClassID != 15 {
		t.Errorf("expected the single complete row, got %+v", dets)
	}
}

func TestParse_Empty(t *testing.T) {
	if dets := Parse(nil, 640, 480); dets != nil {
		t.Errorf("expected nil, got %+v", dets)
	}
}

func TestBox_Rect(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want image.Rectangle
	}{
		{"nearest", Box{X0: 10.4, Y0: 10.6, X1: 98.7, Y1: 50}, image.Rect(10, 11, 99, 50)},
		{"halves to even", Box{X0: 2.5, Y0: 3.5, X1: 98.5, Y1: 99.5}, image.Rect(2, 4, 98, 100)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.box.Rect(); got != tc.want {
				t.Errorf("Rect = %v, want %v", got, tc.want)
			}
		})
	}
}
