package model

import (
	"fmt"

	"github.com/benbeisheim/chess-move-validator/internal/notation"
	"golang.org/x/exp/slices"
)

// Board owns the 32 pieces of a game and the number of plies applied to it.
// A Board is not safe for concurrent use; readers may share it only while no
// moves are being applied.
type Board struct {
	pieces []*PieceData
	plies  int
}

func NewBoard() *Board {
	return &Board{pieces: initialPieces()}
}

// initialPieces fixes the enumeration order used by disambiguation: pawns,
// rooks, knights, bishops, queens, kings, white before black within each.
func initialPieces() []*PieceData {
	pieces := make([]*PieceData, 0, 2*uniquePieceCount)
	colors := []bool{true, false}
	for _, white := range colors {
		for f := notation.FileA; f <= notation.FileH; f++ {
			pieces = append(pieces, must(NewPawn(f, white)))
		}
	}
	for _, white := range colors {
		pieces = append(pieces, must(NewRook(notation.FileA, white)), must(NewRook(notation.FileH, white)))
	}
	for _, white := range colors {
		pieces = append(pieces, must(NewKnight(notation.FileB, white)), must(NewKnight(notation.FileG, white)))
	}
	for _, white := range colors {
		pieces = append(pieces, must(NewBishop(notation.FileC, white)), must(NewBishop(notation.FileF, white)))
	}
	for _, white := range colors {
		pieces = append(pieces, NewQueen(white))
	}
	for _, white := range colors {
		pieces = append(pieces, NewKing(white))
	}
	return pieces
}

func must(p *PieceData, err error) *PieceData {
	if err != nil {
		panic(err)
	}
	return p
}

// PlyCount is the number of half-moves applied since the initial position.
func (b *Board) PlyCount() int {
	return b.plies
}

// Pieces returns every piece, captured ones included, in enumeration order.
func (b *Board) Pieces() []*PieceData {
	return slices.Clone(b.pieces)
}

// PieceAt returns the live piece on sq, or nil.
func (b *Board) PieceAt(sq notation.Square) *PieceData {
	for _, p := range b.pieces {
		if cur, ok := p.CurrSquare(); ok && cur == sq {
			return p
		}
	}
	return nil
}

// Piece looks a piece up by identity. It is never nil for a valid tag.
func (b *Board) Piece(id UniquePiece, white bool) *PieceData {
	for _, p := range b.pieces {
		if p.Piece == id && p.White == white {
			return p
		}
	}
	return nil
}

// ValidSquaresAt lists the destinations of the piece on sq, sorted. An empty
// square has none.
func (b *Board) ValidSquaresAt(sq notation.Square) []notation.Square {
	p := b.PieceAt(sq)
	if p == nil {
		return nil
	}
	return sortedSquares(ValidSquares(p, b))
}

func (b *Board) ValidSquaresFor(id UniquePiece, white bool) []notation.Square {
	p := b.Piece(id, white)
	if p == nil {
		return nil
	}
	return sortedSquares(ValidSquares(p, b))
}

func sortedSquares(squares []notation.Square) []notation.Square {
	slices.Sort(squares)
	return squares
}

// liveOfKind lists the live pieces of a color currently moving as kind,
// in enumeration order. Promoted pawns count as their new kind.
func (b *Board) liveOfKind(kind notation.Piece, white bool) []*PieceData {
	var pieces []*PieceData
	for _, p := range b.pieces {
		if p.White == white && !p.Captured() && p.Kind() == kind {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Validate checks the board invariants: 32 distinct pieces, histories that
// only move forward in ply, captured pieces that stay captured and at most
// one live piece per square.
func (b *Board) Validate() error {
	if len(b.pieces) != 2*uniquePieceCount {
		return fmt.Errorf("%w: %d pieces on board", ErrInconsistent, len(b.pieces))
	}
	seen := make(map[PieceKey]bool, len(b.pieces))
	occupied := make(map[notation.Square]PieceKey, len(b.pieces))
	for _, p := range b.pieces {
		key := p.Key()
		if seen[key] {
			return fmt.Errorf("%w: duplicate %v", ErrInconsistent, key)
		}
		seen[key] = true

		captured := false
		for i, entry := range p.history {
			if i > 0 && entry.Ply < p.history[i-1].Ply {
				return fmt.Errorf("%w: %v history out of order at ply %d", ErrInconsistent, key, entry.Ply)
			}
			if entry.Ply > b.plies {
				return fmt.Errorf("%w: %v history ahead of ply count", ErrInconsistent, key)
			}
			if captured && entry.Square.Valid() {
				return fmt.Errorf("%w: %v returned after capture", ErrInconsistent, key)
			}
			captured = !entry.Square.Valid()
		}

		if sq, ok := p.CurrSquare(); ok {
			if other, taken := occupied[sq]; taken {
				return fmt.Errorf("%w: %v and %v share %v", ErrInconsistent, other, key, sq)
			}
			occupied[sq] = key
		}
	}
	return nil
}
