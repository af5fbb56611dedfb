package render

import (
	"image/color"
	"io"

	"github.com/TheIllusionist93/DOCTOR/internal/domain"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Baseline int

const (
	BaselineAlphabetic Baseline = iota
	BaselineTop
	BaselineMiddle
)

// Shadow is drawn under text, offset by (DX, DY).
type Shadow struct {
	DX, DY float64
	Color  color.Color
}

type TextStyle struct {
	Size     float64
	Bold     bool
	Align    Align
	Baseline Baseline
	Color    color.Color
	Shadow   *Shadow
}

// Canvas is the drawing surface the painter targets. Implementations must
// be usable for exactly one image.
type Canvas interface {
	Size() (width, height int)
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	DrawCircle(x, y, radius float64, c color.Color)
	// DrawCurve strokes a quadratic curve from from to to bent toward control.
	DrawCurve(from, control, to domain.Point, c color.Color, width float64)
	// DrawText draws text anchored at (x, y) and returns its measured width.
	DrawText(x, y float64, text string, style TextStyle) float64
	MeasureText(text string, size float64, bold bool) float64
	Encode(w io.Writer) error
}

func anchorFactors(align Align, baseline Baseline) (ax, ay float64) {
	switch align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	switch baseline {
	case BaselineTop:
		ay = 1
	case BaselineMiddle:
		ay = 0.5
	}
	return ax, ay
}
