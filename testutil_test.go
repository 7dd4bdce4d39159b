package xlsnap

// fakeSheet is an in-memory Sheet for engine tests.
type fakeSheet struct {
	name       string
	used       Range
	hasUsed    bool
	colWidths  map[int]float64
	rowHeights map[int]float64
	colHidden  map[int]bool
	rowHidden  map[int]bool
	cells      map[[2]int]Cell
}

// newFakeSheet creates a sheet whose used range spans rows×cols from (0,0).
// Sizes default to zero so the engine substitutes its default geometry.
func newFakeSheet(name string, rows, cols int) *fakeSheet {
	return &fakeSheet{
		name:       name,
		used:       Range{LastRow: rows - 1, LastCol: cols - 1},
		hasUsed:    rows > 0 && cols > 0,
		colWidths:  map[int]float64{},
		rowHeights: map[int]float64{},
		colHidden:  map[int]bool{},
		rowHidden:  map[int]bool{},
		cells:      map[[2]int]Cell{},
	}
}

func (s *fakeSheet) setCell(row, col int, c Cell) { s.cells[[2]int{row, col}] = c }

// mergeRegion marks every member of r as merged into r.
func (s *fakeSheet) mergeRegion(r Range, anchor Cell) {
	anchor.Merged = true
	anchor.Merge = r
	s.setCell(r.FirstRow, r.FirstCol, anchor)
	for row := r.FirstRow; row <= r.LastRow; row++ {
		for col := r.FirstCol; col <= r.LastCol; col++ {
			if row == r.FirstRow && col == r.FirstCol {
				continue
			}
			s.setCell(row, col, Cell{Merged: true, Merge: r})
		}
	}
}

func (s *fakeSheet) Name() string              { return s.name }
func (s *fakeSheet) UsedRange() (Range, bool)  { return s.used, s.hasUsed }
func (s *fakeSheet) ColWidth(col int) float64  { return s.colWidths[col] }
func (s *fakeSheet) RowHeight(row int) float64 { return s.rowHeights[row] }
func (s *fakeSheet) ColHidden(col int) bool    { return s.colHidden[col] }
func (s *fakeSheet) RowHidden(row int) bool    { return s.rowHidden[row] }
func (s *fakeSheet) Cell(row, col int) Cell    { return s.cells[[2]int{row, col}] }

type fakeWorkbook struct {
	sheets []Sheet
}

func (w *fakeWorkbook) Sheets() []Sheet { return w.sheets }
