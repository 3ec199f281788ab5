// Package overlay draws detection boxes and captions onto a frame in place.
package overlay

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/teslashibe/rtdetect/pkg/detection"
	"gocv.io/x/gocv"
)

// Drawing style.
const (
	FontFace      = gocv.FontHersheySimplex
	FontScale     = 0.5
	FontThickness = 1
	BoxThickness  = 2

	filled = -1
)

var (
	BoxColor        = color.RGBA{0, 255, 0, 0}
	LabelBackground = color.RGBA{255, 255, 255, 0}
	TextColor       = color.RGBA{0, 0, 0, 0}
)

// Label is where a caption goes relative to its box.
type Label struct {
	Background image.Rectangle // filled area behind the text
	Origin     image.Point     // baseline-left of the text
}

// Layout positions a caption of size text (with baseline) for box.
// The anchor is max(box top, text height), which pushes the label down when
// the box touches the top edge of the frame.
func Layout(box detection.Box, text image.Point, baseline int) Label {
	top := int(max(box.Y0, float32(text.Y)))
	left := round(box.X0)
	return Label{
		Background: image.Rectangle{
			Min: image.Pt(left, top-text.Y-8),
			Max: image.Pt(round(box.X0+float32(text.X)), top+baseline),
		},
		Origin: image.Pt(left, top-4),
	}
}

// Draw renders every detection onto frame. Detections are drawn
// independently; overlapping boxes are not merged. It stops at the first
// drawing error.
func Draw(frame *gocv.Mat, dets []detection.Detection) error {
	for i, d := range dets {
		if err := DrawOne(frame, d); err != nil {
			return fmt.Errorf("draw detection %d: %w", i, err)
		}
	}
	return nil
}

// DrawOne renders a single box with its caption.
func DrawOne(frame *gocv.Mat, d detection.Detection) error {
	if err := gocv.RectangleWithParams(frame, d.Box.Rect(), BoxColor, BoxThickness, gocv.Line8, 0); err != nil {
		return fmt.Errorf("box: %w", err)
	}

	caption := d.Caption()
	size, baseline := gocv.GetTextSizeWithBaseline(caption, FontFace, FontScale, FontThickness)
	l := Layout(d.Box, size, baseline)

	return errors.Join(
		gocv.RectangleWithParams(frame, l.Background, LabelBackground, filled, gocv.Line8, 0),
		gocv.PutTextWithParams(frame, caption, l.Origin, FontFace, FontScale, TextColor, FontThickness, gocv.Line8, false),
	)
}

func round(v float32) int {
	return int(math.RoundToEven(float64(v)))
}
