package models

import (
	"testing"

	"connectfour/internal/board"
)

func TestBoardPayloadToBoard(t *testing.T) {
	p := make(BoardPayload, board.Cells)
	p[41], p[40] = 1, -1
	b, err := p.ToBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b[41] != board.PlayerA || b[40] != board.PlayerB || b[39] != board.Empty {
		t.Fatalf("unexpected cells %v %v %v", b[41], b[40], b[39])
	}

	for _, v := range []int{2, -2, 255, 256, 257, -255} {
		bad := make(BoardPayload, board.Cells)
		bad[41] = v
		if _, err := bad.ToBoard(); err == nil {
			t.Errorf("value %d: expected error", v)
		}
	}
	if _, err := make(BoardPayload, board.Cells-1).ToBoard(); err == nil {
		t.Fatalf("expected error for short board")
	}
}
