package console

import (
	"fmt"
	"io"
	"strings"

	"connectfour/internal/board"
)

const (
	ansiReset  = "\033[0m"
	ansiCyan   = "\033[36m"
	ansiRed    = "\033[30;41m"
	ansiYellow = "\033[30;43m"
	ansiClear  = "\033[H\033[2J"
)

type border int

const (
	borderTop border = iota
	borderMiddle
	borderBottom
)

// Style controls terminal colouring. The zero value renders plain text.
type Style struct {
	Color bool
}

func (s Style) paint(code, text string) string {
	if !s.Color {
		return text
	}
	return code + text + ansiReset
}

func (s Style) token(t board.Token) string {
	switch t {
	case board.PlayerA:
		return s.paint(ansiRed, " X ")
	case board.PlayerB:
		return s.paint(ansiYellow, " O ")
	}
	return "   "
}

func (s Style) line(pos border) string {
	left, mid, right := '╠', '╬', '╣'
	switch pos {
	case borderTop:
		left, mid, right = '╔', '╦', '╗'
	case borderBottom:
		left, mid, right = '╚', '╩', '╝'
	}

	var sb strings.Builder
	sb.WriteRune(left)
	for c := 0; c < board.Columns; c++ {
		sb.WriteString("═══")
		if c < board.Columns-1 {
			sb.WriteRune(mid)
		}
	}
	sb.WriteRune(right)
	return s.paint(ansiCyan, sb.String())
}

// Render draws b as a boxed grid. With options it also lists the numbers of
// the playable columns and the quit key.
func Render(w io.Writer, b board.Board, withOptions bool) {
	Style{}.Render(w, b, withOptions)
}

func (s Style) Render(w io.Writer, b board.Board, withOptions bool) {
	bar := s.paint(ansiCyan, "║")

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.line(borderTop))
	for r := 0; r < board.Rows; r++ {
		var sb strings.Builder
		for c := 0; c < board.Columns; c++ {
			sb.WriteString(bar)
			sb.WriteString(s.token(b[board.CellAt(r, c)]))
		}
		sb.WriteString(bar)
		fmt.Fprintln(w, sb.String())
		if r < board.Rows-1 {
			fmt.Fprintln(w, s.line(borderMiddle))
		}
	}
	fmt.Fprintln(w, s.line(borderBottom))

	if !withOptions {
		return
	}
	var sb strings.Builder
	for c := 0; c < board.Columns; c++ {
		if b.Playable(c) {
			fmt.Fprintf(&sb, "  %d ", c+1)
		} else {
			sb.WriteString("    ")
		}
	}
	sb.WriteString("   [Q] Quit")
	fmt.Fprintln(w, sb.String())
}
