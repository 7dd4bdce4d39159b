// Package goxls adapts an excelize workbook to the xlsnap cell model.
package goxls

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/xlsnap/xlsnap"
)

// Profile returns the renderer options conventionally used with this
// adapter: up to 100 columns and 100 rows per sheet.
func Profile() []xlsnap.Option {
	return []xlsnap.Option{xlsnap.WithMaxColumns(100), xlsnap.WithMaxRows(100)}
}

// Workbook wraps an *excelize.File as an xlsnap.Workbook.
type Workbook struct {
	f      *excelize.File
	sheets []xlsnap.Sheet
}

// Open reads an xlsx workbook from disk.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	return New(f)
}

// OpenReader reads an xlsx workbook from r.
func OpenReader(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook reader: %w", err)
	}
	return New(f)
}

// New wraps an already-open excelize file. The file must stay open for the
// lifetime of the Workbook; xlsnap treats it as a read-only snapshot.
func New(f *excelize.File) (*Workbook, error) {
	wb := &Workbook{f: f}
	for _, name := range f.GetSheetList() {
		s, err := newSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		wb.sheets = append(wb.sheets, s)
	}
	return wb, nil
}

// Sheets returns the worksheets in display order.
func (w *Workbook) Sheets() []xlsnap.Sheet { return w.sheets }

// Close releases the underlying excelize file.
func (w *Workbook) Close() error { return w.f.Close() }

type sheet struct {
	f       *excelize.File
	name    string
	used    xlsnap.Range
	hasUsed bool
	merges  []xlsnap.Range
}

func newSheet(f *excelize.File, name string) (*sheet, error) {
	s := &sheet{f: f, name: name}

	merges, err := f.GetMergeCells(name)
	if err != nil {
		return nil, fmt.Errorf("merge cells: %w", err)
	}
	for _, m := range merges {
		rg, err := parseRange(m.GetStartAxis(), m.GetEndAxis())
		if err != nil {
			continue
		}
		s.merges = append(s.merges, rg)
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	for ri, row := range rows {
		for ci, val := range row {
			if val == "" {
				continue
			}
			s.extendUsed(ri, ci)
		}
	}
	for _, rg := range s.merges {
		s.extendUsed(rg.FirstRow, rg.FirstCol)
		s.extendUsed(rg.LastRow, rg.LastCol)
	}
	return s, nil
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

func (s *sheet) ColWidth(col int) float64 {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return 0
	}
	w, err := s.f.GetColWidth(s.name, name)
	if err != nil {
		return 0
	}
	return w
}

func (s *sheet) RowHeight(row int) float64 {
	h, err := s.f.GetRowHeight(s.name, row+1)
	if err != nil {
		return 0
	}
	return h * ptToPx
}

func (s *sheet) ColHidden(col int) bool {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return false
	}
	visible, err := s.f.GetColVisible(s.name, name)
	return err == nil && !visible
}

func (s *sheet) RowHidden(row int) bool {
	visible, err := s.f.GetRowVisible(s.name, row+1)
	return err == nil && !visible
}

func (s *sheet) Cell(row, col int) xlsnap.Cell {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return xlsnap.Cell{}
	}

	var c xlsnap.Cell
	c.Text, _ = s.f.GetCellValue(s.name, axis)
	if t, err := s.f.GetCellType(s.name, axis); err == nil &&
		t == excelize.CellTypeError && c.Text == "" {
		c.Text = errorToken
	}

	if idx, err := s.f.GetCellStyle(s.name, axis); err == nil && idx != 0 {
		if style, err := s.f.GetStyle(idx); err == nil && style != nil {
			applyStyle(&c, style)
		}
	}

	for _, rg := range s.merges {
		if rg.Contains(row, col) {
			c.Merged = true
			c.Merge = rg
			break
		}
	}
	return c
}

// ptToPx approximates the point → pixel conversion for row heights.
const ptToPx = 1.333

// errorToken replaces the value of error cells whose cached result is empty.
const errorToken = "#ERROR"

func applyStyle(c *xlsnap.Cell, style *excelize.Style) {
	if style.Font != nil {
		c.Font = xlsnap.Font{
			Size:   style.Font.Size,
			Bold:   style.Font.Bold,
			Italic: style.Font.Italic,
			Color:  style.Font.Color,
		}
	}
	if style.Fill.Type == "pattern" && style.Fill.Pattern > 0 && len(style.Fill.Color) > 0 {
		c.Fill = style.Fill.Color[0]
	}
	for _, b := range style.Border {
		edge := xlsnap.Border{Style: borderStyle(b.Style), Color: b.Color}
		switch b.Type {
		case "top":
			c.Top = edge
		case "bottom":
			c.Bottom = edge
		case "left":
			c.Left = edge
		case "right":
			c.Right = edge
		}
	}
}

// borderStyle maps excelize's numeric border style index to the engine enum.
func borderStyle(n int) xlsnap.BorderStyle {
	switch n {
	case 1:
		return xlsnap.BorderThin
	case 2:
		return xlsnap.BorderMedium
	case 3:
		return xlsnap.BorderDashed
	case 4:
		return xlsnap.BorderDotted
	case 5:
		return xlsnap.BorderThick
	case 6:
		return xlsnap.BorderDouble
	case 7:
		return xlsnap.BorderHairline
	case 8:
		return xlsnap.BorderMediumDashed
	case 9:
		return xlsnap.BorderDashDot
	case 10:
		return xlsnap.BorderMediumDashDot
	case 11:
		return xlsnap.BorderDashDotDot
	case 12:
		return xlsnap.BorderMediumDashDotDot
	case 13:
		return xlsnap.BorderSlantDashDot
	default:
		return xlsnap.BorderNone
	}
}

func parseRange(start, end string) (xlsnap.Range, error) {
	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return xlsnap.Range{}, err
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return xlsnap.Range{}, err
	}
	return xlsnap.Range{
		FirstRow: r1 - 1, FirstCol: c1 - 1,
		LastRow: r2 - 1, LastCol: c2 - 1,
	}, nil
}
