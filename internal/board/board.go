package board

import (
	"fmt"
	"strings"
)

const (
	Rows       = 6
	Columns    = 7
	Cells      = Rows * Columns
	WindowSize = 4

	// OutOfBounds is returned by Step when the move would leave the board.
	OutOfBounds = -1
)

// Token marks a cell. The two players are opposite signs so that four equal
// cells sum to ±4.
type Token int8

const (
	Empty   Token = 0
	PlayerA Token = 1
	PlayerB Token = -1
)

func (t Token) Opponent() Token {
	return -t
}

func (t Token) Valid() bool {
	return t == PlayerA || t == PlayerB
}

func (t Token) String() string {
	switch t {
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	case Empty:
		return "."
	}
	return fmt.Sprintf("Token(%d)", int8(t))
}

// Board is the row-major 6x7 grid. Cell 0 is the top-left corner.
type Board [Cells]Token

func New() Board {
	return Board{}
}

func Row(cell int) int {
	return cell / Columns
}

func Column(cell int) int {
	return cell % Columns
}

func CellAt(row, column int) int {
	return row*Columns + column
}

func (b *Board) Playable(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	return b[column] == Empty
}

func (b *Board) PlayableColumns() []int {
	cols := make([]int, 0, Columns)
	for c := 0; c < Columns; c++ {
		if b[c] == Empty {
			cols = append(cols, c)
		}
	}
	return cols
}

func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b[c] == Empty {
			return false
		}
	}
	return true
}

func (b *Board) MoveCount() int {
	n := 0
	for _, t := range b {
		if t != Empty {
			n++
		}
	}
	return n
}

// LowestEmptyCell returns the landing cell of a token dropped into column.
// The column must have room; callers reject full columns first.
func LowestEmptyCell(b *Board, column int) int {
	if column < 0 || column >= Columns {
		panic(fmt.Sprintf("board: column %d out of range", column))
	}
	if b[column] != Empty {
		panic(fmt.Sprintf("board: column %d is full", column))
	}
	cell := column
	for i := column; i < Cells; i += Columns {
		if b[i] != Empty {
			break
		}
		cell = i
	}
	return cell
}

// Drop places token in column and returns the cell it landed on.
func (b *Board) Drop(column int, token Token) int {
	mustToken(token)
	cell := LowestEmptyCell(b, column)
	b[cell] = token
	return cell
}

// String renders the board as six rows of X, O and '.' separated by '/'.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < Columns; c++ {
			sb.WriteString(b[CellAt(r, c)].String())
		}
	}
	return sb.String()
}

// ParseBoard reads the String form. Rows may also be separated by newlines
// and surrounding whitespace is ignored.
func ParseBoard(s string) (Board, error) {
	var b Board
	rows := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '\n' || r == ' ' || r == '\t' || r == '\r'
	})
	if len(rows) != Rows {
		return b, fmt.Errorf("board: expected %d rows, got %d", Rows, len(rows))
	}
	for r, line := range rows {
		if len(line) != Columns {
			return b, fmt.Errorf("board: row %d has %d cells, want %d", r, len(line), Columns)
		}
		for c, ch := range line {
			switch ch {
			case '.':
				b[CellAt(r, c)] = Empty
			case 'X', 'x':
				b[CellAt(r, c)] = PlayerA
			case 'O', 'o':
				b[CellAt(r, c)] = PlayerB
			default:
				return b, fmt.Errorf("board: invalid cell %q at row %d column %d", ch, r, c)
			}
		}
	}
	return b, nil
}

func mustCell(cell int) {
	if cell < 0 || cell >= Cells {
		panic(fmt.Sprintf("board: cell %d out of range", cell))
	}
}

func mustToken(t Token) {
	if !t.Valid() {
		panic(fmt.Sprintf("board: token %d is not a player", int8(t)))
	}
}
