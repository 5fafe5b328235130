package model

import (
	"fmt"

	"github.com/benbeisheim/chess-move-validator/internal/notation"
)

// PieceRules computes candidate destinations for one kind of piece. Sliding
// squares are returned as-is; move-only and capture-only squares are filtered
// against occupancy by ValidSquares.
type PieceRules interface {
	Kind() notation.Piece
	InitialSquare(id UniquePiece, white bool) notation.Square

	DiagonalSquares(p *PieceData, b *Board) []notation.Square
	StraightSquares(p *PieceData, b *Board) []notation.Square
	MoveOnlySquares(p *PieceData, b *Board) []notation.Square
	CaptureOnlySquares(p *PieceData, b *Board) []notation.Square
}

type direction struct {
	df, dr int
}

var (
	diagonalDirs = []direction{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	straightDirs = []direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	knightDirs   = []direction{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDirs     = []direction{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
)

// ValidSquares is every square the piece can reach on the current board. A
// captured piece has none.
func ValidSquares(p *PieceData, b *Board) []notation.Square {
	if p.Captured() {
		return nil
	}
	r := p.Rules()
	squares := r.DiagonalSquares(p, b)
	squares = append(squares, r.StraightSquares(p, b)...)
	for _, sq := range r.MoveOnlySquares(p, b) {
		if b.PieceAt(sq) == nil {
			squares = append(squares, sq)
		}
	}
	for _, sq := range r.CaptureOnlySquares(p, b) {
		if occupant := b.PieceAt(sq); occupant != nil && occupant.White != p.White {
			squares = append(squares, sq)
		}
	}
	return squares
}

// RulesFor maps a piece kind to its behavior.
func RulesFor(kind notation.Piece) (PieceRules, error) {
	switch kind {
	case notation.Pawn:
		return PawnRules{}, nil
	case notation.Rook:
		return RookRules{}, nil
	case notation.Knight:
		return KnightRules{}, nil
	case notation.Bishop:
		return BishopRules{}, nil
	case notation.Queen:
		return QueenRules{}, nil
	case notation.King:
		return KingRules{}, nil
	}
	return nil, fmt.Errorf("%w: no rules for %v", ErrInvalidPiece, kind)
}

// slide walks from the piece's square in one direction. An enemy piece ends
// the ray and is included; a friendly one ends it and is not.
func slide(p *PieceData, b *Board, d direction) []notation.Square {
	from, ok := p.CurrSquare()
	if !ok {
		return nil
	}
	var squares []notation.Square
	for sq, ok := from.Offset(d.df, d.dr); ok; sq, ok = sq.Offset(d.df, d.dr) {
		occupant := b.PieceAt(sq)
		if occupant == nil {
			squares = append(squares, sq)
			continue
		}
		if occupant.White != p.White {
			squares = append(squares, sq)
		}
		break
	}
	return squares
}

func slideAll(p *PieceData, b *Board, dirs []direction) []notation.Square {
	var squares []notation.Square
	for _, d := range dirs {
		squares = append(squares, slide(p, b, d)...)
	}
	return squares
}

// jumps applies fixed offsets, dropping any that leave the board.
func jumps(p *PieceData, dirs []direction) []notation.Square {
	from, ok := p.CurrSquare()
	if !ok {
		return nil
	}
	squares := make([]notation.Square, 0, len(dirs))
	for _, d := range dirs {
		if sq, ok := from.Offset(d.df, d.dr); ok {
			squares = append(squares, sq)
		}
	}
	return squares
}

type diagonalSlider struct{}

func (diagonalSlider) DiagonalSquares(p *PieceData, b *Board) []notation.Square {
	return slideAll(p, b, diagonalDirs)
}

type noDiagonals struct{}

func (noDiagonals) DiagonalSquares(*PieceData, *Board) []notation.Square { return nil }

type straightSlider struct{}

func (straightSlider) StraightSquares(p *PieceData, b *Board) []notation.Square {
	return slideAll(p, b, straightDirs)
}

type noStraights struct{}

func (noStraights) StraightSquares(*PieceData, *Board) []notation.Square { return nil }

// slider is shared by the pieces whose every move is a slide.
type slider struct{}

func (slider) MoveOnlySquares(*PieceData, *Board) []notation.Square { return nil }

func (slider) CaptureOnlySquares(*PieceData, *Board) []notation.Square { return nil }

type backRankStart struct{}

func (backRankStart) InitialSquare(id UniquePiece, white bool) notation.Square {
	rank := notation.Rank1
	if !white {
		rank = notation.Rank8
	}
	return notation.NewSquare(id.StartFile(), rank)
}
