// Package detection turns raw SSD output rows into labelled pixel-space detections.
package detection

import (
	"fmt"
	"image"
	"math"
)

// RowSize is the number of values per SSD output row:
// batch index, class id, confidence, xmin, ymin, xmax, ymax.
const RowSize = 7

// ConfidenceThresh is the fixed cutoff. Rows must score strictly above it.
const ConfidenceThresh = 0.5

// Classes contains the 21 MobileNet-SSD (PASCAL VOC) class names, indexed by class id.
var Classes = [21]string{
	"background", "aeroplane", "bicycle", "bird", "boat", "bottle",
	"bus", "car", "cat", "chair", "cow", "diningtable", "dog",
	"horse", "motorbike", "person", "pottedplant", "sheep", "sofa",
	"train", "tvmonitor",
}

// Box is a bounding box in pixel coordinates, not clamped to the frame.
type Box struct {
	X0, Y0 float32 // left, top
	X1, Y1 float32 // right, bottom
}

// Rect rounds the box to integer pixels for drawing, half to even like cvRound.
func (b Box) Rect() image.Rectangle {
	return image.Rect(round(b.X0), round(b.Y0), round(b.X1), round(b.Y1))
}

// Detection is one above-threshold row of a single frame's output.
type Detection struct {
	ClassID    int
	Confidence float32
	Box        Box
}

// Label returns the class name for the detection.
func (d Detection) Label() string {
	return Label(d.ClassID)
}

// Caption returns the text drawn next to the box, e.g. "person: 0.87".
func (d Detection) Caption() string {
	return fmt.Sprintf("%s: %.2f", d.Label(), d.Confidence)
}

// Label resolves a class id, falling back to "id:<n>" outside the table.
func Label(classID int) string {
	if classID >= 0 && classID < len(Classes) {
		return Classes[classID]
	}
	return fmt.Sprintf("id:%d", classID)
}

// Scale maps normalized coordinates to a width x height frame.
func Scale(x0, y0, x1, y1 float32, width, height int) Box {
	w, h := float32(width), float32(height)
	return Box{X0: x0 * w, Y0: y0 * h, X1: x1 * w, Y1: y1 * h}
}

// Parse scans a flattened [1,1,N,7] output tensor and returns every row whose
// confidence is above ConfidenceThresh, in output order. Overlapping rows are
// all kept. A trailing partial row is ignored.
func Parse(out []float32, width, height int) []Detection {
	var dets []Detection
	for i := 0; i+RowSize <= len(out); i += RowSize {
		row := out[i : i+RowSize]
		conf := row[2]
		// Negated so NaN scores are dropped too
		if !(conf > ConfidenceThresh) {
			continue
		}
		dets = append(dets, Detection{
			ClassID:    int(row[1]),
			Confidence: conf,
			Box:        Scale(row[3], row[4], row[5], row[6], width, height),
		})
	}
	return dets
}

func round(v float32) int {
	return int(math.RoundToEven(float64(v)))
}
