package bot

import "connectfour/internal/board"

// Pass scores every candidate in the incoming map for token and returns a
// new map. work is a scratch copy of the game board; a pass restores every
// cell it touches before returning.
type Pass func(token board.Token, work *board.Board, in Scores) Scores

// inLine reports whether the window holds exactly count tokens and nothing
// from the other player.
func inLine(work *board.Board, token board.Token, start int, a board.Axis, count int) bool {
	for _, cell := range board.Window(start, a) {
		if v := work[cell]; v != token && v != board.Empty {
			return false
		}
	}
	return work.WindowSum(start, a) == int(token)*count
}

// lineScore adds weight(count) for every window on axes through cell holding
// count tokens, for each count in [from, to].
func lineScore(work *board.Board, token board.Token, cell, from, to int, axes []board.Axis, weight func(int) int) int {
	score := 0
	for count := from; count <= to; count++ {
		for _, a := range axes {
			for _, start := range board.Windows(cell, a) {
				if inLine(work, token, start, a, count) {
					score += weight(count)
				}
			}
		}
	}
	return score
}

func eachCandidate(in Scores, fn func(cell int) (int, bool)) Scores {
	out := in.Clone()
	for _, cell := range in.Cells() {
		if delta, ok := fn(cell); ok {
			out[cell] += delta
		}
	}
	return out
}

// ScorePlacement rewards the lines of one to four own tokens a move builds.
func ScorePlacement(token board.Token, work *board.Board, in Scores) Scores {
	return eachCandidate(in, func(cell int) (int, bool) {
		work[cell] = token
		score := lineScore(work, token, cell, 1, 4, board.Axes[:], placementWeight)
		work[cell] = board.Empty
		return score, true
	})
}

func blockPass(from int) Pass {
	return func(token board.Token, work *board.Board, in Scores) Scores {
		opp := token.Opponent()
		return eachCandidate(in, func(cell int) (int, bool) {
			work[cell] = opp
			score := lineScore(work, opp, cell, from, 4, board.Axes[:], blockWeight)
			work[cell] = board.Empty
			return score, true
		})
	}
}

// ScoreEasyBlock rewards taking a cell the opponent would use for three or
// four in a line.
func ScoreEasyBlock(token board.Token, work *board.Board, in Scores) Scores {
	return blockPass(3)(token, work, in)
}

// ScoreBlock rewards taking a cell the opponent would use for two, three or
// four in a line.
func ScoreBlock(token board.Token, work *board.Board, in Scores) Scores {
	return blockPass(2)(token, work, in)
}

// lookAbove plays token on cell and reply on the cell above it, then scores
// the lines of scored on axes through the upper cell. Top row candidates
// have no cell above and are left untouched.
func lookAbove(work *board.Board, cell int, token, reply, scored board.Token, axes []board.Axis, weight func(int) int) (int, bool) {
	above := board.Step(cell, 1, board.Up)
	if above == board.OutOfBounds {
		return 0, false
	}
	work[cell] = token
	work[above] = reply
	score := lineScore(work, scored, above, 3, 4, axes, weight)
	work[cell] = board.Empty
	work[above] = board.Empty
	return score, true
}

// ScoreGiving penalises moves that open the cell above for an opponent three
// or four in a line.
func ScoreGiving(token board.Token, work *board.Board, in Scores) Scores {
	opp := token.Opponent()
	return eachCandidate(in, func(cell int) (int, bool) {
		return lookAbove(work, cell, token, opp, opp, board.Axes[:], givingWeight)
	})
}

// losingAxes leaves out the vertical, the only axis whose windows through the
// cell above also hold the candidate cell. The token just played there is
// not a line we had waiting.
var losingAxes = []board.Axis{board.Horizontal, board.Falling, board.Rising}

// ScoreLosing penalises moves that let the opponent take the cell above,
// where we had our own three or four in a line waiting.
func ScoreLosing(token board.Token, work *board.Board, in Scores) Scores {
	return eachCandidate(in, func(cell int) (int, bool) {
		return lookAbove(work, cell, token, token, token, losingAxes, losingWeight)
	})
}

// passes lists the scoring passes of each tier in the order they run.
var passes = map[Difficulty][]Pass{
	Easy:     {ScorePlacement, ScoreEasyBlock},
	Normal:   {ScorePlacement, ScoreBlock},
	Advanced: {ScorePlacement, ScoreBlock, ScoreGiving, ScoreLosing},
}
