package uoffice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/xlsnap/xlsnap"
)

func createWorkbook(t *testing.T) *spreadsheet.Workbook {
	t.Helper()
	wb := spreadsheet.New()
	sheet := wb.AddSheet()
	sheet.Cell("A1").SetString("Hello")
	sheet.Cell("B2").SetNumber(42)
	sheet.AddMergedCells("C1", "D2")
	return wb
}

func TestWorkbook_Sheets(t *testing.T) {
	wb := New(createWorkbook(t))
	sheets := wb.Sheets()
	require.Len(t, sheets, 1)
	assert.NotEmpty(t, sheets[0].Name())
}

func TestSheet_UsedRange(t *testing.T) {
	wb := New(createWorkbook(t))
	used, ok := wb.Sheets()[0].UsedRange()
	require.True(t, ok)
	// A1, B2 plus the C1:D2 merge
	assert.Equal(t, xlsnap.Range{FirstRow: 0, FirstCol: 0, LastRow: 1, LastCol: 3}, used)
}

func TestSheet_UsedRangeEmpty(t *testing.T) {
	wb := spreadsheet.New()
	wb.AddSheet()

	_, ok := New(wb).Sheets()[0].UsedRange()
	assert.False(t, ok)
}

func TestSheet_CellValues(t *testing.T) {
	wb := New(createWorkbook(t))
	s := wb.Sheets()[0]

	assert.Equal(t, "Hello", s.Cell(0, 0).Text)
	assert.NotEmpty(t, s.Cell(1, 1).Text)
	assert.Equal(t, xlsnap.Cell{}, s.Cell(30, 30))
}

func TestSheet_MergeMembers(t *testing.T) {
	wb := New(createWorkbook(t))
	s := wb.Sheets()[0]

	want := xlsnap.Range{FirstRow: 0, FirstCol: 2, LastRow: 1, LastCol: 3}
	for row := 0; row <= 1; row++ {
		for col := 2; col <= 3; col++ {
			c := s.Cell(row, col)
			assert.True(t, c.Merged, "(%d,%d)", row, col)
			assert.Equal(t, want, c.Merge)
		}
	}
}

func TestSheet_DefaultSizing(t *testing.T) {
	wb := New(createWorkbook(t))
	s := wb.Sheets()[0]

	// no custom sizing stored: the engine substitutes its defaults
	assert.Zero(t, s.ColWidth(0))
	assert.Zero(t, s.RowHeight(0))
	assert.False(t, s.ColHidden(0))
	assert.False(t, s.RowHidden(0))
}

func TestBorderStyle_Mapping(t *testing.T) {
	cases := map[sml.ST_BorderStyle]xlsnap.BorderStyle{
		sml.ST_BorderStyleNone:             xlsnap.BorderNone,
		sml.ST_BorderStyleThin:             xlsnap.BorderThin,
		sml.ST_BorderStyleMedium:           xlsnap.BorderMedium,
		sml.ST_BorderStyleDashed:           xlsnap.BorderDashed,
		sml.ST_BorderStyleDotted:           xlsnap.BorderDotted,
		sml.ST_BorderStyleThick:            xlsnap.BorderThick,
		sml.ST_BorderStyleDouble:           xlsnap.BorderDouble,
		sml.ST_BorderStyleHair:             xlsnap.BorderHairline,
		sml.ST_BorderStyleMediumDashed:     xlsnap.BorderMediumDashed,
		sml.ST_BorderStyleDashDot:          xlsnap.BorderDashDot,
		sml.ST_BorderStyleMediumDashDot:    xlsnap.BorderMediumDashDot,
		sml.ST_BorderStyleDashDotDot:       xlsnap.BorderDashDotDot,
		sml.ST_BorderStyleMediumDashDotDot: xlsnap.BorderMediumDashDotDot,
		sml.ST_BorderStyleSlantDashDot:     xlsnap.BorderSlantDashDot,
	}
	for in, want := range cases {
		assert.Equal(t, want, borderStyle(in), "style %v", in)
	}
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "FF0000", normalizeColor("FFFF0000"), "ARGB drops alpha")
	assert.Equal(t, "FF0000", normalizeColor("FF0000"))
	assert.Equal(t, "FF0000", normalizeColor("#FF0000"))
}

func TestRenderEndToEnd(t *testing.T) {
	wb := New(createWorkbook(t))

	r := xlsnap.New(Profile()...)
	out, err := r.RenderAll(wb)
	if err != nil {
		t.Skipf("render unavailable on this host: %v", err)
	}
	require.Len(t, out, 1)
	for _, png := range out {
		assert.NotEmpty(t, png)
	}
}
