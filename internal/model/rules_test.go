package model

import (
	"errors"
	"testing"

	"github.com/benbeisheim/chess-move-validator/internal/notation"
)

func TestRulesFor(t *testing.T) {
	kinds := []notation.Piece{notation.Pawn, notation.Rook, notation.Knight, notation.Bishop, notation.Queen, notation.King}
	for _, kind := range kinds {
		r, err := RulesFor(kind)
		if err != nil {
			t.Fatalf("RulesFor(%v): %v", kind, err)
		}
		if r.Kind() != kind {
			t.Fatalf("RulesFor(%v) returned %v rules", kind, r.Kind())
		}
	}
	if _, err := RulesFor(notation.NoPiece); !errors.Is(err, ErrInvalidPiece) {
		t.Fatalf("expected ErrInvalidPiece, got %v", err)
	}
}

func TestInitialSquares(t *testing.T) {
	cases := []struct {
		rules PieceRules
		id    UniquePiece
		white bool
		want  notation.Square
	}{
		{PawnRules{}, FPawn, true, notation.F2},
		{PawnRules{}, FPawn, false, notation.F7},
		{RookRules{}, KRook, false, notation.H8},
		{KnightRules{}, QKnight, true, notation.B1},
		{BishopRules{}, KBishop, false, notation.F8},
		{QueenRules{}, Queen, true, notation.D1},
		{KingRules{}, King, false, notation.E8},
	}
	for _, c := range cases {
		if got := c.rules.InitialSquare(c.id, c.white); got != c.want {
			t.Errorf("%T %v white=%v: expected %v, got %v", c.rules, c.id, c.white, c.want, got)
		}
	}
}

func TestLeapersFromStart(t *testing.T) {
	b := NewBoard()
	assertSquares(t, []notation.Square{notation.A3, notation.C3}, b.ValidSquaresAt(notation.B1))
	assertSquares(t, []notation.Square{notation.F6, notation.H6}, b.ValidSquaresAt(notation.G8))
	if got := b.ValidSquaresAt(notation.E1); len(got) != 0 {
		t.Fatalf("boxed-in king should have no squares, got %v", got)
	}
	for _, sq := range []notation.Square{notation.A1, notation.C1, notation.D1, notation.H8} {
		if got := b.ValidSquaresAt(sq); len(got) != 0 {
			t.Fatalf("slider on %v should be blocked, got %v", sq, got)
		}
	}
	if got := b.ValidSquaresAt(notation.E4); got != nil {
		t.Fatalf("empty square should have no squares, got %v", got)
	}
}

func TestMoveOnlyAndCaptureOnlyFiltering(t *testing.T) {
	b := NewBoard()
	mustAddMoves(t, b, "1. Nc3 d5 2. Nb5 d4")

	// b5 knight: a7 and c7 hold enemy pawns, d6 and a3/c3 are empty, d4 holds
	// an enemy pawn.
	want := []notation.Square{notation.A3, notation.C3, notation.D4, notation.D6, notation.A7, notation.C7}
	assertSquares(t, want, b.ValidSquaresAt(notation.B5))

	knight := b.PieceAt(notation.B5)
	raw := knight.Rules().MoveOnlySquares(knight, b)
	if len(raw) != 6 {
		t.Fatalf("expected 6 on-board knight offsets from b5, got %v", raw)
	}
}
