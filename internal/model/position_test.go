package model

import (
	"reflect"
	"testing"

	"github.com/benbeisheim/chess-move-validator/internal/notation"
)

const operaGame = `1. e4 e5 2. Nf3 d6 3. d4 Bg4 4. dxe5 Bxf3 5. Qxf3 dxe5 6. Bc4 Nf6
7. Qb3 Qe7 8. Nc3 c6 9. Bg5 b5 10. Nxb5 cxb5 11. Bxb5+ Nbd7 12. O-O-O Rd8
13. Rxd7 Rxd7 14. Rd1 Qe6 15. Bxd7+ Nxd7 16. Qb8+ Nxb8 17. Rd8# 1-0`

func TestCursorMatchesReplayedPrefix(t *testing.T) {
	seq, err := notation.ParseSequence(operaGame)
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	b := NewBoard()
	if err := b.Apply(seq.Moves); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if b.PlyCount() != len(seq.Moves) {
		t.Fatalf("expected %d plies, got %d", len(seq.Moves), b.PlyCount())
	}

	c := b.Cursor()
	for k := 0; k <= len(seq.Moves); k++ {
		replay := NewBoard()
		if err := replay.Apply(seq.Moves[:k]); err != nil {
			t.Fatalf("replay %d: %v", k, err)
		}
		got, ok := c.Seek(k)
		if !ok {
			t.Fatalf("Seek(%d) out of range", k)
		}
		if want := replay.Position(); !reflect.DeepEqual(want, got) {
			t.Fatalf("ply %d: cursor %v, replay %v", k, got.BoardFEN(), want.BoardFEN())
		}
	}
}

func TestCursorBounds(t *testing.T) {
	b := NewBoard()
	mustAddMoves(t, b, "1. e4 d5")

	c := b.Cursor()
	if c.Index() != 2 {
		t.Fatalf("expected cursor at 2, got %d", c.Index())
	}
	if _, ok := c.Next(); ok {
		t.Fatalf("expected Next to stop at the latest ply")
	}

	pos, ok := c.Prev()
	if !ok || c.Index() != 1 {
		t.Fatalf("expected Prev to reach ply 1, got %d %v", c.Index(), ok)
	}
	if sq, _ := pos.Square(EPawn, true); sq != notation.E4 {
		t.Fatalf("expected e-pawn on e4 at ply 1, got %v", sq)
	}
	if sq, _ := pos.Square(DPawn, false); sq != notation.D7 {
		t.Fatalf("expected d-pawn on d7 at ply 1, got %v", sq)
	}

	if _, ok := c.Prev(); !ok || c.Index() != 0 {
		t.Fatalf("expected Prev to reach ply 0")
	}
	if _, ok := c.Prev(); ok {
		t.Fatalf("expected Prev to stop at ply 0")
	}
	if _, ok := c.Seek(5); ok || c.Index() != 0 {
		t.Fatalf("expected Seek past the end to fail and keep index 0, got %d", c.Index())
	}

	next, ok := c.Next()
	if !ok || c.Index() != 1 || len(next) != 32 {
		t.Fatalf("expected Next to ply 1 with 32 pieces, got %d %v", c.Index(), ok)
	}

	mustAddMoves(t, b, "2. exd5")
	cur := c.Curr()
	if c.Index() != 3 || len(cur) != 31 {
		t.Fatalf("expected Curr at ply 3 with 31 pieces, got %d with %d", c.Index(), len(cur))
	}
}

func TestPositionBoardFEN(t *testing.T) {
	b := NewBoard()
	if got := b.Position().BoardFEN(); got != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR" {
		t.Fatalf("unexpected initial placement %q", got)
	}
	mustAddMoves(t, b, "1. e4 d5 2. exd5")
	if got := b.Position().BoardFEN(); got != "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR" {
		t.Fatalf("unexpected placement %q", got)
	}

	key, pl, ok := b.Position().Occupant(notation.D5)
	if !ok || key != (PieceKey{Piece: EPawn, White: true}) || pl.Kind != notation.Pawn {
		t.Fatalf("expected white EPawn on d5, got %v %+v %v", key, pl, ok)
	}
	keys := b.Position().Keys()
	if len(keys) != 31 || keys[0] != (PieceKey{Piece: APawn, White: true}) {
		t.Fatalf("unexpected keys %v", keys)
	}
}
