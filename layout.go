package xlsnap

import "math"

// Fixed pixel geometry of the rendered sheet.
const (
	pxPerWidthUnit = 7.5 // spreadsheet width unit → pixels

	defaultColWidth  = 64.0
	defaultRowHeight = 20.0

	rowHeaderWidth  = 40.0 // left band carrying row numbers
	nameBandHeight  = 30.0 // top band carrying the worksheet name
	colHeaderHeight = 20.0 // band carrying column letters

	cellTextInset  = 5.0  // left inset for cell text
	cellInsetTotal = 10.0 // horizontal padding subtracted before fitting text

	placeholderWidth  = 400
	placeholderHeight = 100

	compositeGap = 10.0 // vertical gap between stacked sheets
)

// band is one column's or row's pixel geometry.
type band struct {
	Offset float64
	Size   float64
}

// gridLayout holds the pixel geometry for the visible region of one sheet.
// Offsets are contiguous: band i's offset plus its size equals band i+1's
// offset, for both axes.
type gridLayout struct {
	firstRow int
	firstCol int
	cols     []band
	rows     []band

	width  float64 // canvas width including header bands
	height float64 // canvas height including header bands
}

// layoutSheet computes pixel geometry for the visible rows and columns of s,
// clamped to maxCols × maxRows. ok is false when the sheet has no used range,
// in which case the caller substitutes the placeholder image.
func layoutSheet(s Sheet, maxCols, maxRows int) (g gridLayout, ok bool) {
	used, ok := s.UsedRange()
	if !ok {
		return gridLayout{}, false
	}

	lastCol := used.LastCol
	if max := used.FirstCol + maxCols - 1; lastCol > max {
		lastCol = max
	}
	lastRow := used.LastRow
	if max := used.FirstRow + maxRows - 1; lastRow > max {
		lastRow = max
	}

	g.firstCol = used.FirstCol
	g.firstRow = used.FirstRow

	x := rowHeaderWidth
	for col := used.FirstCol; col <= lastCol; col++ {
		w := s.ColWidth(col) * pxPerWidthUnit
		if w < 1 {
			w = defaultColWidth
		}
		if s.ColHidden(col) {
			w = 0
		}
		g.cols = append(g.cols, band{Offset: x, Size: w})
		x += w
	}

	y := nameBandHeight + colHeaderHeight
	for row := used.FirstRow; row <= lastRow; row++ {
		h := s.RowHeight(row)
		if h < 1 {
			h = defaultRowHeight
		}
		if s.RowHidden(row) {
			h = 0
		}
		g.rows = append(g.rows, band{Offset: y, Size: h})
		y += h
	}

	// +1 guards against anti-aliased edges clipping at the canvas boundary.
	g.width = math.Ceil(x) + 1
	g.height = math.Ceil(y) + 1
	return g, true
}

// col returns the band for an absolute column index, and false when the
// column lies outside the visible range.
func (g *gridLayout) col(col int) (band, bool) {
	i := col - g.firstCol
	if i < 0 || i >= len(g.cols) {
		return band{}, false
	}
	return g.cols[i], true
}

// row returns the band for an absolute row index.
func (g *gridLayout) row(row int) (band, bool) {
	i := row - g.firstRow
	if i < 0 || i >= len(g.rows) {
		return band{}, false
	}
	return g.rows[i], true
}

func (g *gridLayout) lastCol() int { return g.firstCol + len(g.cols) - 1 }
func (g *gridLayout) lastRow() int { return g.firstRow + len(g.rows) - 1 }

// clamp truncates r to the visible range. Merge regions reaching past the
// render boundary are cut off there rather than skipped.
func (g *gridLayout) clamp(r Range) Range {
	if r.FirstCol < g.firstCol {
		r.FirstCol = g.firstCol
	}
	if r.FirstRow < g.firstRow {
		r.FirstRow = g.firstRow
	}
	if last := g.lastCol(); r.LastCol > last {
		r.LastCol = last
	}
	if last := g.lastRow(); r.LastRow > last {
		r.LastRow = last
	}
	return r
}

// box resolves a clamped region to its pixel rectangle: anchored at the
// top-left member's offset, spanning the summed sizes of all visible members.
func (g *gridLayout) box(r Range) (x, y, w, h float64) {
	first, _ := g.col(r.FirstCol)
	x = first.Offset
	for col := r.FirstCol; col <= r.LastCol; col++ {
		if b, ok := g.col(col); ok {
			w += b.Size
		}
	}
	top, _ := g.row(r.FirstRow)
	y = top.Offset
	for row := r.FirstRow; row <= r.LastRow; row++ {
		if b, ok := g.row(row); ok {
			h += b.Size
		}
	}
	return x, y, w, h
}

// paintedGrid tracks which visible cells have already been painted, so the
// row-major scan never redraws an interior member of a merge region.
// Dense bool grid addressed by (row-firstRow, col-firstCol).
type paintedGrid struct {
	firstRow int
	firstCol int
	cols     int
	done     []bool
}

func newPaintedGrid(g *gridLayout) *paintedGrid {
	return &paintedGrid{
		firstRow: g.firstRow,
		firstCol: g.firstCol,
		cols:     len(g.cols),
		done:     make([]bool, len(g.rows)*len(g.cols)),
	}
}

func (p *paintedGrid) index(row, col int) (int, bool) {
	r, c := row-p.firstRow, col-p.firstCol
	if r < 0 || c < 0 || c >= p.cols || p.cols == 0 {
		return 0, false
	}
	i := r*p.cols + c
	if i >= len(p.done) {
		return 0, false
	}
	return i, true
}

func (p *paintedGrid) painted(row, col int) bool {
	i, ok := p.index(row, col)
	return ok && p.done[i]
}

// markRegion marks every member of r as painted.
func (p *paintedGrid) markRegion(r Range) {
	for row := r.FirstRow; row <= r.LastRow; row++ {
		for col := r.FirstCol; col <= r.LastCol; col++ {
			if i, ok := p.index(row, col); ok {
				p.done[i] = true
			}
		}
	}
}

// columnName converts a 1-based column number to its spreadsheet letter name:
// 1→"A", 26→"Z", 27→"AA", 703→"AAA".
func columnName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}
