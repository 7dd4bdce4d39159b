// Package xlsnap renders spreadsheet grids to PNG images.
//
// The engine is adapter-agnostic: it consumes the Workbook/Sheet contracts
// defined here and paints headers, gridlines, fills, borders and clipped cell
// text onto a raster canvas. The goxls and uoffice subpackages supply thin
// adapters for the excelize and unioffice workbook models.
package xlsnap

// Range is a rectangular cell region with 0-based inclusive bounds.
type Range struct {
	FirstRow int
	FirstCol int
	LastRow  int
	LastCol  int
}

// Contains reports whether (row, col) lies inside the range.
func (r Range) Contains(row, col int) bool {
	return row >= r.FirstRow && row <= r.LastRow && col >= r.FirstCol && col <= r.LastCol
}

// Rows returns the number of rows covered by the range.
func (r Range) Rows() int { return r.LastRow - r.FirstRow + 1 }

// Cols returns the number of columns covered by the range.
func (r Range) Cols() int { return r.LastCol - r.FirstCol + 1 }

// BorderStyle identifies the line style of one cell edge.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderHairline
	BorderThin
	BorderMedium
	BorderThick
	BorderDouble
	BorderDotted
	BorderDashed
	BorderDashDot
	BorderDashDotDot
	BorderMediumDashed
	BorderMediumDashDot
	BorderMediumDashDotDot
	BorderSlantDashDot
)

// String returns a human-readable name for the BorderStyle.
func (bs BorderStyle) String() string {
	switch bs {
	case BorderNone:
		return "none"
	case BorderHairline:
		return "hairline"
	case BorderThin:
		return "thin"
	case BorderMedium:
		return "medium"
	case BorderThick:
		return "thick"
	case BorderDouble:
		return "double"
	case BorderDotted:
		return "dotted"
	case BorderDashed:
		return "dashed"
	case BorderDashDot:
		return "dashDot"
	case BorderDashDotDot:
		return "dashDotDot"
	case BorderMediumDashed:
		return "mediumDashed"
	case BorderMediumDashDot:
		return "mediumDashDot"
	case BorderMediumDashDotDot:
		return "mediumDashDotDot"
	case BorderSlantDashDot:
		return "slantDashDot"
	default:
		return "unknown"
	}
}

// Border describes one edge of a cell. Color is a "RRGGBB" hex string; an
// empty color falls back to black when the edge is drawn.
type Border struct {
	Style BorderStyle
	Color string
}

// Font describes the typeface attributes of a cell's text. Color is a
// "RRGGBB" hex string; empty means the default text color.
type Font struct {
	Size   float64
	Bold   bool
	Italic bool
	Color  string
}

// Cell is the normalized view of a single cell that adapters produce.
// Text arrives pre-formatted: numeric/date formatting and error markers such
// as "#ERROR" have already been applied by the workbook model.
type Cell struct {
	Text   string
	Fill   string // "RRGGBB" background, empty = default (white)
	Font   Font
	Top    Border
	Bottom Border
	Left   Border
	Right  Border
	Merged bool
	Merge  Range // valid only when Merged
}

// Sheet is the read-only worksheet view the engine renders from. Row and
// column indices are 0-based; adapters normalize their native indexing.
type Sheet interface {
	// Name returns the worksheet's display name.
	Name() string

	// UsedRange returns the minimal region containing any cell with content
	// or formatting, and false if the sheet has none.
	UsedRange() (Range, bool)

	// ColWidth returns the column width in spreadsheet width units.
	// Zero or negative means unset.
	ColWidth(col int) float64

	// RowHeight returns the row height in approximate pixels.
	// Zero or negative means unset.
	RowHeight(row int) float64

	// ColHidden reports whether the column is hidden.
	ColHidden(col int) bool

	// RowHidden reports whether the row is hidden.
	RowHidden(row int) bool

	// Cell returns the normalized cell at (row, col). Positions without a
	// stored cell yield the zero Cell.
	Cell(row, col int) Cell
}

// Workbook is an ordered collection of sheets; order is display order.
type Workbook interface {
	Sheets() []Sheet
}

// RenderedSheet is the result of rendering one worksheet. It is immutable
// after creation and owned by the caller.
type RenderedSheet struct {
	Name   string
	PNG    []byte
	Width  int
	Height int
}
