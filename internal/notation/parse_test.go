package notation

import (
	"errors"
	"testing"
)

func TestParseSequenceBasic(t *testing.T) {
	seq, err := ParseSequence("1. e4 d5 2. exd5 Nf6")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	if len(seq.Moves) != 4 {
		t.Fatalf("expected 4 moves, got %d", len(seq.Moves))
	}

	cases := []struct {
		piece   Piece
		to      Square
		from    Origin
		capture bool
		white   bool
		number  int
	}{
		{Pawn, E4, UnknownOrigin, false, true, 1},
		{Pawn, D5, UnknownOrigin, false, false, 1},
		{Pawn, D5, Origin{File: FileE, Rank: NoRank}, true, true, 2},
		{Knight, F6, UnknownOrigin, false, false, 2},
	}
	for i, c := range cases {
		m := seq.Moves[i]
		if m.Kind != BasicMove {
			t.Errorf("move %d: expected basic move, got %v", i, m.Kind)
		}
		if m.Piece != c.piece || m.To != c.to || m.From != c.from || m.Capture != c.capture {
			t.Errorf("move %d: got %+v", i, m)
		}
		if m.White != c.white || m.Number != c.number {
			t.Errorf("move %d: expected white=%v number=%d, got white=%v number=%d", i, c.white, c.number, m.White, m.Number)
		}
	}
}

func TestParseSequencePromotionAndDisambiguation(t *testing.T) {
	seq, err := ParseSequence("5. bxc8=N gxf8Q+ 6. Nbd2 R1e2 7. Qh4xe1#")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	if got := seq.Moves[0]; got.Promotion != Knight || got.From.File != FileB || !got.Capture || got.To != C8 {
		t.Fatalf("unexpected promotion move %+v", got)
	}
	if got := seq.Moves[1]; got.Promotion != Queen || got.White {
		t.Fatalf("expected black promotion to queen, got %+v", got)
	}
	if got := seq.Moves[2]; got.Piece != Knight || got.From.File != FileB || got.From.HasRank() {
		t.Fatalf("expected file-only origin, got %+v", got)
	}
	if got := seq.Moves[3]; got.Piece != Rook || got.From.Rank != Rank1 || got.From.HasFile() {
		t.Fatalf("expected rank-only origin, got %+v", got)
	}
	sq, ok := seq.Moves[4].From.Known()
	if !ok || sq != H4 {
		t.Fatalf("expected fully known origin h4, got %v %v", sq, ok)
	}
}

func TestParseSequenceCastlesAndColors(t *testing.T) {
	seq, err := ParseSequence("10. O-O 0-0-0 11... Kb8")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	if seq.Moves[0].Kind != CastleKingside || !seq.Moves[0].White {
		t.Fatalf("expected white kingside castle, got %+v", seq.Moves[0])
	}
	if seq.Moves[1].Kind != CastleQueenside || seq.Moves[1].White {
		t.Fatalf("expected black queenside castle, got %+v", seq.Moves[1])
	}
	if seq.Moves[2].White || seq.Moves[2].Number != 11 {
		t.Fatalf("expected black move 11, got %+v", seq.Moves[2])
	}
}

func TestParseSequenceSkipsCommentsAndVariations(t *testing.T) {
	text := "1.e4 {best by test} e5 (1... c5 2. Nf3 (2. c3)) ; line comment\n2. Nf3 $1 Nc6 !? 1-0"
	seq, err := ParseSequence(text)
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	if len(seq.Moves) != 4 {
		t.Fatalf("expected 4 moves, got %d: %+v", len(seq.Moves), seq.Moves)
	}
	if seq.Result != "1-0" {
		t.Fatalf("expected result 1-0, got %q", seq.Result)
	}
	if seq.Moves[2].Piece != Knight || seq.Moves[2].To != F3 {
		t.Fatalf("unexpected third move %+v", seq.Moves[2])
	}
}

func TestParseSequenceUnnumbered(t *testing.T) {
	seq, err := ParseSequence("e4 e5 Nf3")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	want := []bool{true, false, true}
	for i, w := range want {
		if seq.Moves[i].White != w || seq.Moves[i].Number != 0 {
			t.Errorf("move %d: got white=%v number=%d", i, seq.Moves[i].White, seq.Moves[i].Number)
		}
	}
}

func TestParseSequenceFromBlack(t *testing.T) {
	seq, err := ParseSequenceFrom("e5 Nf3 3... Nc6", false)
	if err != nil {
		t.Fatalf("ParseSequenceFrom: %v", err)
	}
	want := []bool{false, true, false}
	for i, w := range want {
		if seq.Moves[i].White != w {
			t.Errorf("move %d: got white=%v", i, seq.Moves[i].White)
		}
	}
	if seq.Moves[2].Number != 3 {
		t.Errorf("expected move number 3, got %d", seq.Moves[2].Number)
	}
}

func TestParseSequenceErrors(t *testing.T) {
	cases := []string{
		"1. e9",
		"1. Zf3",
		"1. e4 {open comment",
		"1. e4 (1. d4",
		"1. e4 )",
		"1. e4 1-0 e5",
		"0. e4",
	}
	for _, text := range cases {
		_, err := ParseSequence(text)
		if err == nil {
			t.Errorf("%q: expected error", text)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: expected *ParseError, got %T", text, err)
		}
	}
}

func TestParseErrorOffset(t *testing.T) {
	_, err := ParseSequence("1. e4 xx9")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Offset != 6 || perr.Token != "xx9" {
		t.Fatalf("expected offset 6 token xx9, got %d %q", perr.Offset, perr.Token)
	}
}

func TestSquareOffset(t *testing.T) {
	if sq, ok := E4.Offset(1, 1); !ok || sq != F5 {
		t.Fatalf("expected f5, got %v %v", sq, ok)
	}
	if _, ok := H8.Offset(1, 0); ok {
		t.Fatalf("expected off-board offset from h8")
	}
	if _, ok := A1.Offset(0, -1); ok {
		t.Fatalf("expected off-board offset from a1")
	}
	if sq, err := ParseSquare("g7"); err != nil || sq != G7 || sq.String() != "g7" {
		t.Fatalf("ParseSquare(g7) = %v, %v", sq, err)
	}
}
