package board

// WindowSum adds the four values of the window starting at start.
func (b *Board) WindowSum(start int, a Axis) int {
	sum := 0
	for _, cell := range Window(start, a) {
		sum += int(b[cell])
	}
	return sum
}

// HasFourInLine reports whether some window on the axis through cell holds
// four of token. Cell values are -1, 0 or 1, so only four equal tokens can
// sum to 4*token.
func HasFourInLine(b *Board, token Token, cell int, a Axis) bool {
	mustToken(token)
	target := WindowSize * int(token)
	for _, start := range Windows(cell, a) {
		if b.WindowSum(start, a) == target {
			return true
		}
	}
	return false
}

func HasFourHorizontal(b *Board, token Token, cell int) bool {
	return HasFourInLine(b, token, cell, Horizontal)
}

func HasFourVertical(b *Board, token Token, cell int) bool {
	return HasFourInLine(b, token, cell, Vertical)
}

func HasFourFalling(b *Board, token Token, cell int) bool {
	return HasFourInLine(b, token, cell, Falling)
}

func HasFourRising(b *Board, token Token, cell int) bool {
	return HasFourInLine(b, token, cell, Rising)
}

// WinningAxis returns the first axis through cell holding four of token.
func WinningAxis(b *Board, token Token, cell int) (Axis, bool) {
	for _, a := range [...]Axis{Vertical, Horizontal, Falling, Rising} {
		if HasFourInLine(b, token, cell, a) {
			return a, true
		}
	}
	return 0, false
}

// HasFour reports a four-in-a-row of token on any axis through cell.
func HasFour(b *Board, token Token, cell int) bool {
	_, ok := WinningAxis(b, token, cell)
	return ok
}
