package board

import "testing"

func inBoard(r, c int) bool {
	return r >= 0 && r < Rows && c >= 0 && c < Columns
}

// distance walks the grid to the edge without using the package helpers.
func distance(cell int, d Direction) int {
	dr, dc := d.delta()
	r, c := Row(cell), Column(cell)
	n := 0
	for inBoard(r+dr, c+dc) {
		r, c = r+dr, c+dc
		n++
	}
	return n
}

func TestScanLimitClipsAtEdges(t *testing.T) {
	for cell := 0; cell < Cells; cell++ {
		for _, d := range Directions {
			limit := ScanLimit(cell, d)
			if limit < 0 || limit >= Cells {
				t.Fatalf("cell %d %s: limit %d off the board", cell, d, limit)
			}
			want := min(3, distance(cell, d))
			steps := 0
			if d.Offset() != 0 {
				steps = (limit - cell) / d.Offset()
			}
			if steps != want {
				t.Fatalf("cell %d %s: expected %d steps, got %d", cell, d, want, steps)
			}
			dr, dc := d.delta()
			if Row(limit) != Row(cell)+dr*steps || Column(limit) != Column(cell)+dc*steps {
				t.Fatalf("cell %d %s: limit %d wrapped around a row", cell, d, limit)
			}
		}
	}
}

func TestScanLimitCorners(t *testing.T) {
	cases := []struct {
		cell int
		dir  Direction
		want int
	}{
		{0, Left, 0},
		{0, Up, 0},
		{0, Right, 3},
		{0, Down, 21},
		{0, DownRight, 24},
		{0, UpLeft, 0},
		{6, DownLeft, 24},
		{6, Right, 6},
		{41, UpLeft, 17},
		{41, Down, 41},
		{35, UpRight, 17},
		{38, Up, 17},
		{24, UpLeft, 0},
		{24, DownRight, 40},
	}
	for _, tc := range cases {
		if got := ScanLimit(tc.cell, tc.dir); got != tc.want {
			t.Errorf("ScanLimit(%d, %s) = %d, want %d", tc.cell, tc.dir, got, tc.want)
		}
	}
}

func TestLineBoundsPartitionEachAxis(t *testing.T) {
	for _, a := range Axes {
		covered := make(map[int]int)
		_, hiDir := a.Directions()
		dr, dc := hiDir.delta()
		for cell := 0; cell < Cells; cell++ {
			lo, hi := LineBounds(cell, a)
			if lo > cell || hi < cell {
				t.Fatalf("%s cell %d: bounds %d..%d do not contain the cell", a, cell, lo, hi)
			}
			n := (hi-lo)/a.Stride() + 1
			switch a {
			case Horizontal:
				if n != Columns {
					t.Fatalf("row through %d has %d cells", cell, n)
				}
			case Vertical:
				if n != Rows {
					t.Fatalf("column through %d has %d cells", cell, n)
				}
			default:
				if n < 1 || n > Rows {
					t.Fatalf("%s through %d has %d cells", a, cell, n)
				}
			}
			// every cell on the line must report the same bounds
			for i := lo; i <= hi; i += a.Stride() {
				l2, h2 := LineBounds(i, a)
				if l2 != lo || h2 != hi {
					t.Fatalf("%s: cells %d and %d disagree on line bounds", a, cell, i)
				}
				k := (i - lo) / a.Stride()
				if Row(i) != Row(lo)+dr*k || Column(i) != Column(lo)+dc*k {
					t.Fatalf("%s: line from %d wraps at %d", a, lo, i)
				}
			}
			covered[lo]++
		}
		want := map[Axis]int{Horizontal: Rows, Vertical: Columns, Falling: Rows + Columns - 1, Rising: Rows + Columns - 1}[a]
		if len(covered) != want {
			t.Fatalf("%s: expected %d lines, got %d", a, want, len(covered))
		}
	}
}

func TestDiagonalBounds(t *testing.T) {
	if lo, hi := DiagonalBounds(0, Falling); lo != 0 || hi != 40 {
		t.Fatalf("falling diagonal through 0: %d..%d", lo, hi)
	}
	if lo, hi := DiagonalBounds(6, Falling); lo != 6 || hi != 6 {
		t.Fatalf("falling diagonal through 6: %d..%d", lo, hi)
	}
	if lo, hi := DiagonalBounds(6, Rising); lo != 6 || hi != 36 {
		t.Fatalf("rising diagonal through 6: %d..%d", lo, hi)
	}
	if lo, hi := DiagonalBounds(35, Rising); lo != 5 || hi != 35 {
		t.Fatalf("rising diagonal through 35: %d..%d", lo, hi)
	}
	if lo, hi := DiagonalBounds(0, Rising); lo != 0 || hi != 0 {
		t.Fatalf("rising diagonal through 0: %d..%d", lo, hi)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non diagonal axis")
		}
	}()
	DiagonalBounds(10, Horizontal)
}

func TestStep(t *testing.T) {
	cases := []struct {
		cell, steps int
		dir         Direction
		want        int
	}{
		{38, 1, Up, 31},
		{3, 1, Up, OutOfBounds},
		{35, 1, Left, OutOfBounds},
		{35, 1, UpRight, 29},
		{6, 1, Right, OutOfBounds},
		{6, 5, DownLeft, 36},
		{6, 6, DownLeft, OutOfBounds},
		{0, 5, DownRight, 40},
		{41, 5, UpLeft, 1},
		{20, 0, Down, 20},
	}
	for _, tc := range cases {
		if got := Step(tc.cell, tc.steps, tc.dir); got != tc.want {
			t.Errorf("Step(%d, %d, %s) = %d, want %d", tc.cell, tc.steps, tc.dir, got, tc.want)
		}
	}
}

func TestWindowsContainCell(t *testing.T) {
	for cell := 0; cell < Cells; cell++ {
		for _, a := range Axes {
			for _, start := range Windows(cell, a) {
				w := Window(start, a)
				found := false
				for _, c := range w {
					if c < 0 || c >= Cells {
						t.Fatalf("window %v leaves the board", w)
					}
					if c == cell {
						found = true
					}
				}
				if !found {
					t.Fatalf("%s window %v does not contain %d", a, w, cell)
				}
				lo, hi := LineBounds(cell, a)
				if w[0] < lo || w[WindowSize-1] > hi {
					t.Fatalf("%s window %v crosses line %d..%d", a, w, lo, hi)
				}
			}
		}
	}
	if n := len(Windows(3, Horizontal)); n != 4 {
		t.Fatalf("middle top cell should touch 4 horizontal windows, got %d", n)
	}
	if n := len(Windows(6, Falling)); n != 0 {
		t.Fatalf("cell 6 lies on a one cell falling diagonal, got %d windows", n)
	}
}

func TestCellOutOfRangePanics(t *testing.T) {
	for _, fn := range []func(){
		func() { RowBounds(-1) },
		func() { ColumnBounds(Cells) },
		func() { ScanLimit(42, Up) },
		func() { Step(-5, 1, Down) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			fn()
		}()
	}
}
