package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/TheIllusionist93/DOCTOR/internal/domain"
)

// SVGCanvas records drawing calls as SVG elements. Text widths are estimated
// because no font metrics are available.
type SVGCanvas struct {
	width, height int
	fontFamily    string
	body          strings.Builder
}

var _ Canvas = (*SVGCanvas)(nil)

func NewSVGCanvas(width, height int) *SVGCanvas {
	return &SVGCanvas{width: width, height: height, fontFamily: "Helvetica, Arial, sans-serif"}
}

func (s *SVGCanvas) Size() (int, int) {
	return s.width, s.height
}

func (s *SVGCanvas) Clear(c color.Color) {
	s.body.Reset()
	s.FillRect(0, 0, float64(s.width), float64(s.height), c)
}

func (s *SVGCanvas) FillRect(x, y, w, h float64, c color.Color) {
	fmt.Fprintf(&s.body, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" %s/>`+"\n",
		x, y, w, h, fillAttr(c))
}

func (s *SVGCanvas) DrawCircle(x, y, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	fmt.Fprintf(&s.body, `<circle cx="%.2f" cy="%.2f" r="%.2f" %s/>`+"\n", x, y, radius, fillAttr(c))
}

func (s *SVGCanvas) DrawCurve(from, control, to domain.Point, c color.Color, width float64) {
	fmt.Fprintf(&s.body,
		`<path d="M %.2f %.2f Q %.2f %.2f %.2f %.2f" fill="none" stroke="%s" stroke-opacity="%.3g" stroke-width="%.2f" stroke-linecap="round"/>`+"\n",
		from.X, from.Y, control.X, control.Y, to.X, to.Y, HexString(c), opacity(c), width)
}

func (s *SVGCanvas) DrawText(x, y float64, text string, style TextStyle) float64 {
	if style.Shadow != nil {
		s.text(x+style.Shadow.DX, y+style.Shadow.DY, text, style, style.Shadow.Color)
	}
	s.text(x, y, text, style, style.Color)
	return s.MeasureText(text, style.Size, style.Bold)
}

func (s *SVGCanvas) text(x, y float64, text string, style TextStyle, c color.Color) {
	weight := "normal"
	if style.Bold {
		weight = "bold"
	}
	fmt.Fprintf(&s.body,
		`<text x="%.2f" y="%.2f" text-anchor="%s" dominant-baseline="%s" font-family="%s" font-size="%.1f" font-weight="%s" %s>%s</text>`+"\n",
		x, y, textAnchor(style.Align), dominantBaseline(style.Baseline), s.fontFamily, style.Size, weight, fillAttr(c), escapeXML(text))
}

// MeasureText estimates width as 0.6 em per rune, a little wider for bold.
func (s *SVGCanvas) MeasureText(text string, size float64, bold bool) float64 {
	per := size * 0.6
	if bold {
		per *= 1.05
	}
	return float64(utf8.RuneCountInString(text)) * per
}

func (s *SVGCanvas) Encode(w io.Writer) error {
	if _, err := fmt.Fprintf(w,
		`<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		s.width, s.height, s.width, s.height); err != nil {
		return err
	}
	if _, err := io.WriteString(w, s.body.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}

func fillAttr(c color.Color) string {
	if a := opacity(c); a < 1 {
		return fmt.Sprintf(`fill="%s" fill-opacity="%.3g"`, HexString(c), a)
	}
	return fmt.Sprintf(`fill="%s"`, HexString(c))
}

func textAnchor(a Align) string {
	switch a {
	case AlignCenter:
		return "middle"
	case AlignRight:
		return "end"
	default:
		return "start"
	}
}

func dominantBaseline(b Baseline) string {
	switch b {
	case BaselineTop:
		return "hanging"
	case BaselineMiddle:
		return "middle"
	default:
		return "alphabetic"
	}
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
