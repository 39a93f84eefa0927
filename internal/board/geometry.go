package board

import "fmt"

type Direction uint8

const (
	Up Direction = iota
	Left
	Right
	Down
	UpLeft
	UpRight
	DownLeft
	DownRight
)

var Directions = [...]Direction{Up, Left, Right, Down, UpLeft, UpRight, DownLeft, DownRight}

var directionNames = [...]string{"up", "left", "right", "down", "up-left", "up-right", "down-left", "down-right"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// delta returns the row and column change of one step.
func (d Direction) delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case UpLeft:
		return -1, -1
	case UpRight:
		return -1, 1
	case DownLeft:
		return 1, -1
	case DownRight:
		return 1, 1
	}
	panic(fmt.Sprintf("board: unknown direction %d", uint8(d)))
}

// Offset is the change in cell index of one step.
func (d Direction) Offset() int {
	dr, dc := d.delta()
	return dr*Columns + dc
}

// Axis is one of the four line families a four-in-a-row can lie on.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
	Falling // top-left to bottom-right
	Rising  // top-right to bottom-left
)

var Axes = [...]Axis{Horizontal, Vertical, Falling, Rising}

// Stride is the index distance between neighbours on the axis.
func (a Axis) Stride() int {
	_, hi := a.Directions()
	return hi.Offset()
}

// Directions returns the axis directions pointing to the lower and higher
// cell indices.
func (a Axis) Directions() (lower, upper Direction) {
	switch a {
	case Horizontal:
		return Left, Right
	case Vertical:
		return Up, Down
	case Falling:
		return UpLeft, DownRight
	case Rising:
		return UpRight, DownLeft
	}
	panic(fmt.Sprintf("board: unknown axis %d", uint8(a)))
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Falling:
		return "falling-diagonal"
	case Rising:
		return "rising-diagonal"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// stepsToEdge counts how many steps fit between cell and the board edge.
func stepsToEdge(cell int, d Direction) int {
	r, c := Row(cell), Column(cell)
	dr, dc := d.delta()
	steps := Rows + Columns
	switch dr {
	case -1:
		steps = min(steps, r)
	case 1:
		steps = min(steps, Rows-1-r)
	}
	switch dc {
	case -1:
		steps = min(steps, c)
	case 1:
		steps = min(steps, Columns-1-c)
	}
	return steps
}

// RowBounds returns the first and last cell of the row holding cell.
func RowBounds(cell int) (left, right int) {
	mustCell(cell)
	left = Row(cell) * Columns
	return left, left + Columns - 1
}

// ColumnBounds returns the top and bottom cell of the column holding cell.
func ColumnBounds(cell int) (top, bottom int) {
	mustCell(cell)
	top = Column(cell)
	return top, top + (Rows-1)*Columns
}

// DiagonalBounds returns both ends of the diagonal through cell. Only the
// Falling and Rising axes are diagonals.
func DiagonalBounds(cell int, a Axis) (near, far int) {
	mustCell(cell)
	if a != Falling && a != Rising {
		panic(fmt.Sprintf("board: %s is not a diagonal", a))
	}
	return lineEnd(cell, a, true), lineEnd(cell, a, false)
}

// LineBounds returns both ends of the full line through cell on any axis.
func LineBounds(cell int, a Axis) (lower, upper int) {
	switch a {
	case Horizontal:
		return RowBounds(cell)
	case Vertical:
		return ColumnBounds(cell)
	}
	return DiagonalBounds(cell, a)
}

func lineEnd(cell int, a Axis, lower bool) int {
	lo, hi := a.Directions()
	d := hi
	if lower {
		d = lo
	}
	return cell + stepsToEdge(cell, d)*d.Offset()
}

// ScanLimit returns the cell up to WindowSize-1 steps away from cell along
// d, stopping at the board edge.
func ScanLimit(cell int, d Direction) int {
	mustCell(cell)
	steps := min(WindowSize-1, stepsToEdge(cell, d))
	return cell + steps*d.Offset()
}

// ScanWindow returns the range of cells on the axis that share a window with
// cell.
func ScanWindow(cell int, a Axis) (lower, upper int) {
	lo, hi := a.Directions()
	return ScanLimit(cell, lo), ScanLimit(cell, hi)
}

// Windows returns the first cell of every in-bounds window on the axis that
// contains cell.
func Windows(cell int, a Axis) []int {
	lower, upper := ScanWindow(cell, a)
	stride := a.Stride()
	span := (WindowSize - 1) * stride
	starts := make([]int, 0, WindowSize)
	for i := lower; i+span <= upper; i += stride {
		starts = append(starts, i)
	}
	return starts
}

// Window returns the cells of the window starting at start.
func Window(start int, a Axis) [WindowSize]int {
	var w [WindowSize]int
	stride := a.Stride()
	for i := range w {
		w[i] = start + i*stride
	}
	return w
}

// Step moves steps cells from cell in direction d, or returns OutOfBounds.
func Step(cell, steps int, d Direction) int {
	mustCell(cell)
	if steps < 0 || steps > stepsToEdge(cell, d) {
		return OutOfBounds
	}
	return cell + steps*d.Offset()
}
