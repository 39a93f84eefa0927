package bot

import (
	"sort"

	"connectfour/internal/board"
)

const (
	ScoreOneToken    = 1
	ScoreTwoTokens   = 10
	ScoreThreeTokens = 100
	ScoreConnectFour = 99999

	ScoreBlockTwo   = 5
	ScoreBlockThree = 50
	ScoreBlockFour  = 9999

	ScoreEnemyGetsThree    = -50
	ScoreEnemyConnectsFour = -9999

	ScoreLoseThree       = -30
	ScoreLoseConnectFour = -9999
)

func placementWeight(count int) int {
	switch count {
	case 1:
		return ScoreOneToken
	case 2:
		return ScoreTwoTokens
	case 3:
		return ScoreThreeTokens
	case 4:
		return ScoreConnectFour
	}
	return 0
}

// blockWeight scores the opponent lines a move breaks up. count includes the
// opponent token simulated on the candidate cell.
func blockWeight(count int) int {
	switch count {
	case 2:
		return ScoreBlockTwo
	case 3:
		return ScoreBlockThree
	case 4:
		return ScoreBlockFour
	}
	return 0
}

func givingWeight(count int) int {
	switch count {
	case 3:
		return ScoreEnemyGetsThree
	case 4:
		return ScoreEnemyConnectsFour
	}
	return 0
}

func losingWeight(count int) int {
	switch count {
	case 3:
		return ScoreLoseThree
	case 4:
		return ScoreLoseConnectFour
	}
	return 0
}

// Scores maps a candidate landing cell to its accumulated score.
type Scores map[int]int

// Candidates returns a zero score for the landing cell of every playable
// column.
func Candidates(b *board.Board) Scores {
	s := make(Scores, board.Columns)
	for _, col := range b.PlayableColumns() {
		s[board.LowestEmptyCell(b, col)] = 0
	}
	return s
}

// Cells returns the candidate cells ordered by column.
func (s Scores) Cells() []int {
	cells := make([]int, 0, len(s))
	for cell := range s {
		cells = append(cells, cell)
	}
	sort.Slice(cells, func(i, j int) bool {
		return board.Column(cells[i]) < board.Column(cells[j])
	})
	return cells
}

func (s Scores) Clone() Scores {
	out := make(Scores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Best returns the highest scoring cell. Ties go to the lowest column.
func (s Scores) Best() (cell, score int, ok bool) {
	for _, c := range s.Cells() {
		if !ok || s[c] > score {
			cell, score, ok = c, s[c], true
		}
	}
	return cell, score, ok
}
