package xlsnap

import (
	"image/color"
	"strconv"

	"github.com/tdewolff/canvas"
)

var (
	black         = color.RGBA{0, 0, 0, 255}
	white         = color.RGBA{255, 255, 255, 255}
	gridlineColor = canvas.Hex("#d9d9d9")
)

// hexColor parses a "RRGGBB" (or "#RRGGBB"/"AARRGGBB") hex string. Malformed
// or empty input yields the fallback; style errors never fail a render.
func hexColor(s string, fallback color.RGBA) color.RGBA {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) == 8 {
		s = s[2:] // drop the alpha channel of ARGB values
	}
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}

// strokeWidth maps a border style to its stroke width in pixels. The mapping
// is total: unrecognized styles stroke like thin.
func strokeWidth(bs BorderStyle) float64 {
	switch bs {
	case BorderNone:
		return 0
	case BorderHairline:
		return 0.5
	case BorderMedium, BorderMediumDashed, BorderMediumDashDot,
		BorderMediumDashDotDot, BorderDashDot, BorderDashDotDot,
		BorderSlantDashDot:
		return 2
	case BorderThick:
		return 3
	default:
		return 1
	}
}

// dashPattern maps a border style to its on/off dash lengths; nil means a
// solid stroke.
func dashPattern(bs BorderStyle) []float64 {
	switch bs {
	case BorderDotted:
		return []float64{2, 2}
	case BorderDashed, BorderMediumDashed:
		return []float64{5, 3}
	case BorderDashDot, BorderMediumDashDot, BorderSlantDashDot:
		return []float64{5, 3, 2, 3}
	case BorderDashDotDot, BorderMediumDashDotDot:
		return []float64{5, 3, 2, 3, 2, 3}
	default:
		return nil
	}
}

// strokeLine strokes a single segment from (x1,y1) to (x2,y2).
func strokeLine(ctx *canvas.Context, col color.RGBA, width float64, dashes []float64, x1, y1, x2, y2 float64) {
	ctx.SetStrokeColor(col)
	ctx.SetStrokeWidth(width)
	ctx.SetDashes(0, dashes...)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(x2-x1, y2-y1)
	ctx.DrawPath(x1, y1, p)
	ctx.SetDashes(0)
}

// drawEdge draws one cell edge. BorderNone is a no-op; a missing color falls
// back to black. The double style becomes two parallel 1px strokes offset
// perpendicular to the edge's axis.
func drawEdge(ctx *canvas.Context, b Border, x1, y1, x2, y2 float64) {
	if b.Style == BorderNone {
		return
	}
	col := hexColor(b.Color, black)
	ctx.SetFillColor(color.RGBA{})

	if b.Style == BorderDouble {
		if y1 == y2 { // horizontal edge: offset vertically
			strokeLine(ctx, col, 1, nil, x1, y1-3, x2, y2-3)
			strokeLine(ctx, col, 1, nil, x1, y1+3, x2, y2+3)
		} else {
			strokeLine(ctx, col, 1, nil, x1-3, y1, x2-3, y2)
			strokeLine(ctx, col, 1, nil, x1+3, y1, x2+3, y2)
		}
		return
	}

	strokeLine(ctx, col, strokeWidth(b.Style), dashPattern(b.Style), x1, y1, x2, y2)
}

// drawCellBorders paints the four edges of the cell box at (x, y, w, h).
// When every edge is BorderNone it instead draws the default gridline
// rectangle, matching the fallback appearance of an unstyled sheet.
func drawCellBorders(ctx *canvas.Context, c Cell, x, y, w, h float64) {
	if c.Top.Style == BorderNone && c.Bottom.Style == BorderNone &&
		c.Left.Style == BorderNone && c.Right.Style == BorderNone {
		drawGridline(ctx, x, y, w, h)
		return
	}
	drawEdge(ctx, c.Top, x, y, x+w, y)
	drawEdge(ctx, c.Bottom, x, y+h, x+w, y+h)
	drawEdge(ctx, c.Left, x, y, x, y+h)
	drawEdge(ctx, c.Right, x+w, y, x+w, y+h)
}

// drawGridline strokes a light hairline rectangle around the box.
func drawGridline(ctx *canvas.Context, x, y, w, h float64) {
	ctx.SetFillColor(color.RGBA{})
	ctx.SetStrokeColor(gridlineColor)
	ctx.SetStrokeWidth(0.5)
	ctx.SetDashes(0)
	ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}
