// Package uoffice adapts a unioffice spreadsheet workbook to the xlsnap
// cell model. Unlike the goxls adapter it snapshots all cell data up front,
// since unioffice exposes rows as slices rather than by random access.
package uoffice

import (
	"fmt"
	"io"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/xlsnap/xlsnap"
)

// Profile returns the renderer options conventionally used with this
// adapter: up to 20 columns and 50 rows per sheet.
func Profile() []xlsnap.Option {
	return []xlsnap.Option{xlsnap.WithMaxColumns(20), xlsnap.WithMaxRows(50)}
}

// Workbook wraps a *spreadsheet.Workbook as an xlsnap.Workbook.
type Workbook struct {
	wb     *spreadsheet.Workbook
	sheets []xlsnap.Sheet
}

// Open reads an xlsx workbook from disk.
func Open(path string) (*Workbook, error) {
	wb, err := spreadsheet.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	return New(wb), nil
}

// Read reads an xlsx workbook from r.
func Read(r io.ReaderAt, size int64) (*Workbook, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	return New(wb), nil
}

// New wraps an already-open unioffice workbook, snapshotting its cell data.
func New(wb *spreadsheet.Workbook) *Workbook {
	w := &Workbook{wb: wb}
	for _, sh := range wb.Sheets() {
		w.sheets = append(w.sheets, newSheet(wb, sh))
	}
	return w
}

// Sheets returns the worksheets in display order.
func (w *Workbook) Sheets() []xlsnap.Sheet { return w.sheets }

type sheet struct {
	name       string
	used       xlsnap.Range
	hasUsed    bool
	merges     []xlsnap.Range
	colWidths  map[int]float64
	colHidden  map[int]bool
	rowHeights map[int]float64
	rowHidden  map[int]bool
	cells      map[[2]int]xlsnap.Cell
}

const ptToPx = 1.333

func newSheet(wb *spreadsheet.Workbook, sh spreadsheet.Sheet) *sheet {
	s := &sheet{
		name:       sh.Name(),
		colWidths:  map[int]float64{},
		colHidden:  map[int]bool{},
		rowHeights: map[int]float64{},
		rowHidden:  map[int]bool{},
		cells:      map[[2]int]xlsnap.Cell{},
	}

	maxCols := 0
	for _, row := range sh.Rows() {
		if n := len(row.Cells()); n > maxCols {
			maxCols = n
		}
	}
	for c := 0; c < maxCols; c++ {
		col := sh.Column(uint32(c + 1))
		if col.X().CustomWidthAttr != nil && *col.X().CustomWidthAttr && col.X().WidthAttr != nil {
			s.colWidths[c] = *col.X().WidthAttr
		}
		if col.X().HiddenAttr != nil && *col.X().HiddenAttr {
			s.colHidden[c] = true
		}
	}

	if mc := sh.X().MergeCells; mc != nil {
		for _, m := range mc.MergeCell {
			from, to, err := reference.ParseRangeReference(m.RefAttr)
			if err != nil {
				continue
			}
			s.merges = append(s.merges, xlsnap.Range{
				FirstRow: int(from.RowIdx) - 1,
				FirstCol: int(from.ColumnIdx),
				LastRow:  int(to.RowIdx) - 1,
				LastCol:  int(to.ColumnIdx),
			})
		}
	}

	for _, row := range sh.Rows() {
		rowIdx := int(row.RowNumber()) - 1
		if rowIdx < 0 {
			continue
		}
		if row.X().CustomHeightAttr != nil && *row.X().CustomHeightAttr && row.X().HtAttr != nil {
			s.rowHeights[rowIdx] = *row.X().HtAttr * ptToPx
		}
		if row.IsHidden() {
			s.rowHidden[rowIdx] = true
		}

		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			colIdx := int(reference.ColumnToIndex(colName))

			c := xlsnap.Cell{Text: cell.GetFormattedValue()}
			styled := false
			if cell.X().SAttr != nil {
				styled = resolveStyle(wb, *cell.X().SAttr, &c)
			}
			if c.Text == "" && !styled {
				continue
			}
			s.cells[[2]int{rowIdx, colIdx}] = c
			s.extendUsed(rowIdx, colIdx)
		}
	}

	for _, rg := range s.merges {
		s.extendUsed(rg.FirstRow, rg.FirstCol)
		s.extendUsed(rg.LastRow, rg.LastCol)
	}
	return s
}

func (s *sheet) extendUsed(row, col int) {
	if !s.hasUsed {
		s.used = xlsnap.Range{FirstRow: row, FirstCol: col, LastRow: row, LastCol: col}
		s.hasUsed = true
		return
	}
	if row < s.used.FirstRow {
		s.used.FirstRow = row
	}
	if row > s.used.LastRow {
		s.used.LastRow = row
	}
	if col < s.used.FirstCol {
		s.used.FirstCol = col
	}
	if col > s.used.LastCol {
		s.used.LastCol = col
	}
}

func (s *sheet) Name() string { return s.name }

func (s *sheet) UsedRange() (xlsnap.Range, bool) { return s.used, s.hasUsed }

func (s *sheet) ColWidth(col int) float64 { return s.colWidths[col] }

func (s *sheet) RowHeight(row int) float64 { return s.rowHeights[row] }

func (s *sheet) ColHidden(col int) bool { return s.colHidden[col] }

func (s *sheet) RowHidden(row int) bool { return s.rowHidden[row] }

func (s *sheet) Cell(row, col int) xlsnap.Cell {
	c := s.cells[[2]int{row, col}]
	for _, rg := range s.merges {
		if rg.Contains(row, col) {
			c.Merged = true
			c.Merge = rg
			break
		}
	}
	return c
}
