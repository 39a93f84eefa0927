package board

import "testing"

const drawnBoard = "XOXOXOX/XOXOXOX/OXOXOXO/OXOXOXO/XOXOXOX/XOXOXOX"

func mustParse(t *testing.T, s string) Board {
	t.Helper()
	b, err := ParseBoard(s)
	if err != nil {
		t.Fatalf("parse board: %v", err)
	}
	return b
}

func TestLowestEmptyCellFollowsGravity(t *testing.T) {
	b := New()
	for i, want := range []int{38, 31, 24, 17, 10, 3} {
		got := b.Drop(3, PlayerA)
		if got != want {
			t.Fatalf("drop %d: expected cell %d, got %d", i, want, got)
		}
	}
	if b.Playable(3) {
		t.Fatalf("column 3 should be full")
	}
	if got := b.PlayableColumns(); len(got) != Columns-1 {
		t.Fatalf("expected 6 playable columns, got %v", got)
	}
}

func TestLowestEmptyCellPanicsOnFullColumn(t *testing.T) {
	b := New()
	for i := 0; i < Rows; i++ {
		b.Drop(0, PlayerB)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for full column")
		}
	}()
	LowestEmptyCell(&b, 0)
}

func TestLowestEmptyCellPanicsOnBadColumn(t *testing.T) {
	for _, col := range []int{-1, Columns} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for column %d", col)
				}
			}()
			b := New()
			LowestEmptyCell(&b, col)
		}()
	}
}

func TestFullBoard(t *testing.T) {
	b := mustParse(t, drawnBoard)
	if !b.IsFull() {
		t.Fatalf("expected full board")
	}
	if n := len(b.PlayableColumns()); n != 0 {
		t.Fatalf("expected no playable columns, got %d", n)
	}
	if b.MoveCount() != Cells {
		t.Fatalf("expected %d tokens, got %d", Cells, b.MoveCount())
	}
	for cell := 0; cell < Cells; cell++ {
		if HasFour(&b, b[cell], cell) {
			t.Fatalf("drawn board has a four through cell %d", cell)
		}
	}
}

func TestParseBoardRoundTripAndErrors(t *testing.T) {
	b := mustParse(t, drawnBoard)
	if got := b.String(); got != drawnBoard {
		t.Fatalf("expected %s, got %s", drawnBoard, got)
	}
	bad := []string{
		"",
		".......",
		"......./......./......./......./......./......",
		"......./......./......./......./......./......Z",
	}
	for _, s := range bad {
		if _, err := ParseBoard(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestTokenOpponent(t *testing.T) {
	if PlayerA.Opponent() != PlayerB || PlayerB.Opponent() != PlayerA {
		t.Fatalf("opponent should negate the token")
	}
	if Empty.Valid() || !PlayerA.Valid() || !PlayerB.Valid() {
		t.Fatalf("unexpected token validity")
	}
}
