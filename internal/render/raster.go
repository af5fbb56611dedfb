package render

import (
	"image"
	"image/color"
	"io"

	"github.com/TheIllusionist93/DOCTOR/internal/domain"
	"github.com/fogleman/gg"
)

// RasterCanvas draws into an RGBA image and encodes it as PNG.
type RasterCanvas struct {
	dc    *gg.Context
	fonts *fontSet
}

var _ Canvas = (*RasterCanvas)(nil)

// NewRasterCanvas creates a width×height canvas. fontPath may be empty.
func NewRasterCanvas(width, height int, fontPath string) (*RasterCanvas, error) {
	fonts, err := loadFonts(fontPath)
	if err != nil {
		return nil, err
	}
	return &RasterCanvas{dc: gg.NewContext(width, height), fonts: fonts}, nil
}

func (r *RasterCanvas) Size() (int, int) {
	return r.dc.Width(), r.dc.Height()
}

func (r *RasterCanvas) Clear(c color.Color) {
	r.dc.SetColor(c)
	r.dc.Clear()
}

func (r *RasterCanvas) FillRect(x, y, w, h float64, c color.Color) {
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *RasterCanvas) DrawCircle(x, y, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	r.dc.DrawCircle(x, y, radius)
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *RasterCanvas) DrawCurve(from, control, to domain.Point, c color.Color, width float64) {
	r.dc.NewSubPath()
	r.dc.MoveTo(from.X, from.Y)
	r.dc.QuadraticTo(control.X, control.Y, to.X, to.Y)
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.SetLineCap(gg.LineCapRound)
	r.dc.Stroke()
}

func (r *RasterCanvas) DrawText(x, y float64, text string, style TextStyle) float64 {
	r.dc.SetFontFace(r.fonts.face(style.Size, style.Bold))
	ax, ay := anchorFactors(style.Align, style.Baseline)
	if style.Shadow != nil {
		r.dc.SetColor(style.Shadow.Color)
		r.dc.DrawStringAnchored(text, x+style.Shadow.DX, y+style.Shadow.DY, ax, ay)
	}
	r.dc.SetColor(style.Color)
	r.dc.DrawStringAnchored(text, x, y, ax, ay)
	w, _ := r.dc.MeasureString(text)
	return w
}

func (r *RasterCanvas) MeasureText(text string, size float64, bold bool) float64 {
	r.dc.SetFontFace(r.fonts.face(size, bold))
	w, _ := r.dc.MeasureString(text)
	return w
}

// Image exposes the underlying pixels.
func (r *RasterCanvas) Image() image.Image {
	return r.dc.Image()
}

func (r *RasterCanvas) Encode(w io.Writer) error {
	return r.dc.EncodePNG(w)
}
