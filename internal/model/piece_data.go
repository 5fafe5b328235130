package model

import (
	"fmt"

	"github.com/benbeisheim/chess-move-validator/internal/notation"
	"golang.org/x/exp/slices"
)

// HistoryEntry records where a piece stood from Ply onward. Square is
// notation.NoSquare once the piece is captured.
type HistoryEntry struct {
	Ply    int
	Square notation.Square
}

type rulesEntry struct {
	ply   int
	rules PieceRules
}

// PieceData is one piece and everywhere it has been. Only plies that touch
// the piece append to its history, so entries are sparse in ply.
type PieceData struct {
	Piece UniquePiece
	White bool

	rules   []rulesEntry
	history []HistoryEntry
}

func newPieceData(id UniquePiece, white bool, rules PieceRules) *PieceData {
	p := &PieceData{
		Piece: id,
		White: white,
		rules: []rulesEntry{{ply: 0, rules: rules}},
	}
	p.history = append(p.history, HistoryEntry{Ply: 0, Square: rules.InitialSquare(id, white)})
	return p
}

func NewPawn(file notation.File, white bool) (*PieceData, error) {
	if !file.Valid() {
		return nil, fmt.Errorf("%w: no pawn starts on file %v", ErrInvalidPiece, file)
	}
	return newPieceData(UniquePiece(file), white, PawnRules{}), nil
}

func NewRook(file notation.File, white bool) (*PieceData, error) {
	switch file {
	case notation.FileA:
		return newPieceData(QRook, white, RookRules{}), nil
	case notation.FileH:
		return newPieceData(KRook, white, RookRules{}), nil
	}
	return nil, fmt.Errorf("%w: no rook starts on file %v", ErrInvalidPiece, file)
}

func NewKnight(file notation.File, white bool) (*PieceData, error) {
	switch file {
	case notation.FileB:
		return newPieceData(QKnight, white, KnightRules{}), nil
	case notation.FileG:
		return newPieceData(KKnight, white, KnightRules{}), nil
	}
	return nil, fmt.Errorf("%w: no knight starts on file %v", ErrInvalidPiece, file)
}

func NewBishop(file notation.File, white bool) (*PieceData, error) {
	switch file {
	case notation.FileC:
		return newPieceData(QBishop, white, BishopRules{}), nil
	case notation.FileF:
		return newPieceData(KBishop, white, BishopRules{}), nil
	}
	return nil, fmt.Errorf("%w: no bishop starts on file %v", ErrInvalidPiece, file)
}

func NewQueen(white bool) *PieceData {
	return newPieceData(Queen, white, QueenRules{})
}

func NewKing(white bool) *PieceData {
	return newPieceData(King, white, KingRules{})
}

func (p *PieceData) Key() PieceKey {
	return PieceKey{Piece: p.Piece, White: p.White}
}

// Rules is the current movement behavior.
func (p *PieceData) Rules() PieceRules {
	return p.rules[len(p.rules)-1].rules
}

func (p *PieceData) Kind() notation.Piece {
	return p.Rules().Kind()
}

// CurrSquare is the latest history entry. ok is false for a captured piece.
func (p *PieceData) CurrSquare() (notation.Square, bool) {
	sq := p.history[len(p.history)-1].Square
	return sq, sq.Valid()
}

func (p *PieceData) Captured() bool {
	_, live := p.CurrSquare()
	return !live
}

func (p *PieceData) HasMoved() bool {
	return len(p.history) > 1
}

func (p *PieceData) History() []HistoryEntry {
	return slices.Clone(p.history)
}

// SquareAt reports where the piece stood after the given ply.
func (p *PieceData) SquareAt(ply int) (notation.Square, bool) {
	for i := len(p.history) - 1; i >= 0; i-- {
		if p.history[i].Ply <= ply {
			sq := p.history[i].Square
			return sq, sq.Valid()
		}
	}
	return notation.NoSquare, false
}

// KindAt reports the kind the piece moved as after the given ply.
func (p *PieceData) KindAt(ply int) notation.Piece {
	for i := len(p.rules) - 1; i >= 0; i-- {
		if p.rules[i].ply <= ply {
			return p.rules[i].rules.Kind()
		}
	}
	return p.rules[0].rules.Kind()
}

func (p *PieceData) moveUnchecked(ply int, sq notation.Square) {
	p.history = append(p.history, HistoryEntry{Ply: ply, Square: sq})
}

func (p *PieceData) capture(ply int) {
	p.history = append(p.history, HistoryEntry{Ply: ply, Square: notation.NoSquare})
}

func (p *PieceData) promote(ply int, rules PieceRules) {
	p.rules = append(p.rules, rulesEntry{ply: ply, rules: rules})
}

// discardFrom drops entries written at or after ply. Only used to undo a
// ply that failed part way through.
func (p *PieceData) discardFrom(ply int) {
	for len(p.history) > 1 && p.history[len(p.history)-1].Ply >= ply {
		p.history = p.history[:len(p.history)-1]
	}
	for len(p.rules) > 1 && p.rules[len(p.rules)-1].ply >= ply {
		p.rules = p.rules[:len(p.rules)-1]
	}
}
