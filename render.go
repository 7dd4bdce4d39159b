package xlsnap

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
)

var (
	nameBandFill  = canvas.Hex("#333333")
	headerFill    = canvas.Hex("#f0f0f0")
	headerText    = canvas.Hex("#333333")
	placeholderFg = canvas.Hex("#808080")
)

// Renderer paints normalized worksheets into PNG buffers. A Renderer is
// safe for concurrent use: each render allocates its own canvas and layout
// tables and only the font cache is shared.
type Renderer struct {
	opts  *Options
	fonts *fontCache
}

// New creates a Renderer with the given options.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Renderer{opts: o, fonts: newFontCache(o.fontFamilies)}
}

// RenderSheet renders one worksheet: name band, column and row headers, then
// the visible cells in row-major order. Sheets without a used range produce
// the fixed placeholder image. The worksheet is never mutated.
func (r *Renderer) RenderSheet(s Sheet) (*RenderedSheet, error) {
	g, ok := layoutSheet(s, r.opts.maxColumns, r.opts.maxRows)
	if !ok {
		return r.placeholder(s.Name())
	}

	c := canvas.New(g.width, g.height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // origin at top-left, like the layout
	fillRect(ctx, white, 0, 0, g.width, g.height)

	if err := r.drawChrome(ctx, &g, s.Name()); err != nil {
		return nil, fmt.Errorf("render %q: %w", s.Name(), err)
	}
	if err := r.drawCells(ctx, &g, s); err != nil {
		return nil, fmt.Errorf("render %q: %w", s.Name(), err)
	}

	return r.snapshot(c, s.Name())
}

// drawChrome paints the worksheet-name band and the column/row header bands.
func (r *Renderer) drawChrome(ctx *canvas.Context, g *gridLayout, name string) error {
	titleFace, err := r.fonts.face(Font{Size: 11, Bold: true}, white)
	if err != nil {
		return err
	}
	labelFace, err := r.fonts.face(Font{Size: defaultFontSize}, headerText)
	if err != nil {
		return err
	}

	fillRect(ctx, nameBandFill, 0, 0, g.width, nameBandHeight)
	title := canvas.NewTextLine(titleFace, name, canvas.Left)
	ctx.DrawText(cellTextInset, baselineFor(titleFace, 0, nameBandHeight), title)

	// Corner box above the row headers.
	fillRect(ctx, headerFill, 0, nameBandHeight, rowHeaderWidth, colHeaderHeight)
	drawGridline(ctx, 0, nameBandHeight, rowHeaderWidth, colHeaderHeight)

	for i, b := range g.cols {
		if b.Size == 0 {
			continue
		}
		fillRect(ctx, headerFill, b.Offset, nameBandHeight, b.Size, colHeaderHeight)
		drawGridline(ctx, b.Offset, nameBandHeight, b.Size, colHeaderHeight)
		drawCenteredText(ctx, labelFace, columnName(g.firstCol+i+1),
			b.Offset+b.Size/2, nameBandHeight, colHeaderHeight)
	}
	for i, b := range g.rows {
		if b.Size == 0 {
			continue
		}
		fillRect(ctx, headerFill, 0, b.Offset, rowHeaderWidth, b.Size)
		drawGridline(ctx, 0, b.Offset, rowHeaderWidth, b.Size)
		drawCenteredText(ctx, labelFace, strconv.Itoa(g.firstRow+i+1),
			rowHeaderWidth/2, b.Offset, b.Size)
	}
	return nil
}

// drawCells scans visible rows × columns, skipping members a prior merge
// already painted, and paints fill, borders and text for each box.
func (r *Renderer) drawCells(ctx *canvas.Context, g *gridLayout, s Sheet) error {
	painted := newPaintedGrid(g)
	for row := g.firstRow; row <= g.lastRow(); row++ {
		for col := g.firstCol; col <= g.lastCol(); col++ {
			if painted.painted(row, col) {
				continue
			}
			cell := s.Cell(row, col)

			var x, y, w, h float64
			if cell.Merged {
				region := g.clamp(cell.Merge)
				painted.markRegion(region)
				x, y, w, h = g.box(region)
			} else {
				cb, _ := g.col(col)
				rb, _ := g.row(row)
				x, y, w, h = cb.Offset, rb.Offset, cb.Size, rb.Size
			}
			if w == 0 || h == 0 { // hidden row or column
				continue
			}

			fillRect(ctx, hexColor(cell.Fill, white), x, y, w, h)
			drawCellBorders(ctx, cell, x, y, w, h)

			if cell.Text != "" {
				face, err := r.fonts.face(cell.Font, black)
				if err != nil {
					return err
				}
				drawCellText(ctx, face, cell.Text, x, y, w, h)
			}
		}
	}
	return nil
}

// placeholder renders the fixed-size image substituted for a worksheet with
// no used range.
func (r *Renderer) placeholder(name string) (*RenderedSheet, error) {
	c := canvas.New(placeholderWidth, placeholderHeight)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	fillRect(ctx, white, 0, 0, placeholderWidth, placeholderHeight)

	face, err := r.fonts.face(Font{Size: 12}, placeholderFg)
	if err != nil {
		return nil, fmt.Errorf("render %q: %w", name, err)
	}
	drawCenteredText(ctx, face, "(Empty Worksheet)", placeholderWidth/2, 0, placeholderHeight)

	return r.snapshot(c, name)
}

// snapshot rasterizes the canvas at one pixel per unit and encodes it as PNG.
func (r *Renderer) snapshot(c *canvas.Canvas, name string) (*RenderedSheet, error) {
	img := rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
	buf, err := encodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", name, err)
	}
	return &RenderedSheet{
		Name:   name,
		PNG:    buf,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}

func fillRect(ctx *canvas.Context, col color.RGBA, x, y, w, h float64) {
	ctx.SetFillColor(col)
	ctx.SetStrokeColor(color.RGBA{})
	ctx.SetStrokeWidth(0)
	ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
