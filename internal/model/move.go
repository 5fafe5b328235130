package model

import (
	"fmt"

	"github.com/benbeisheim/chess-move-validator/internal/notation"
	"golang.org/x/exp/slices"
)

// AddMoves parses movetext and applies it. Unnumbered moves continue with
// the side to move. A parse failure is returned as *notation.ParseError
// before anything on the board changes.
func (b *Board) AddMoves(text string) error {
	seq, err := notation.ParseSequenceFrom(text, b.plies%2 == 0)
	if err != nil {
		return err
	}
	return b.Apply(seq.Moves)
}

// Apply applies moves in order and stops at the first one that fails. Moves
// before it stay applied; the failure comes back as *MoveError.
func (b *Board) Apply(moves []notation.Move) error {
	for i, m := range moves {
		if err := b.ApplyMove(m); err != nil {
			return &MoveError{Index: i, Move: m, Err: err}
		}
	}
	return nil
}

// ApplyMove applies one ply. If it fails the board is unchanged.
func (b *Board) ApplyMove(m notation.Move) error {
	ply := b.plies + 1

	var err error
	switch m.Kind {
	case notation.BasicMove:
		err = b.applyBasic(ply, m)
	case notation.CastleKingside, notation.CastleQueenside:
		err = b.applyCastle(ply, m)
	default:
		err = fmt.Errorf("%w: unknown move kind %d", ErrIllegalMove, m.Kind)
	}
	if err != nil {
		b.revert(ply)
		return err
	}

	b.plies = ply
	if err := b.Validate(); err != nil {
		b.revert(ply)
		b.plies = ply - 1
		return err
	}
	return nil
}

func (b *Board) revert(ply int) {
	for _, p := range b.pieces {
		p.discardFrom(ply)
	}
}

func (b *Board) applyBasic(ply int, m notation.Move) error {
	if !m.To.Valid() {
		return illegal(m, "destination is off the board")
	}

	var promoteTo PieceRules
	if m.Promotion != notation.NoPiece {
		if m.Piece != notation.Pawn {
			return illegal(m, "only pawns promote")
		}
		switch m.Promotion {
		case notation.Rook, notation.Knight, notation.Bishop, notation.Queen:
		default:
			return illegal(m, fmt.Sprintf("cannot promote to %v", m.Promotion))
		}
		rules, err := RulesFor(m.Promotion)
		if err != nil {
			return illegal(m, err.Error())
		}
		promoteTo = rules
	}

	occupant := b.PieceAt(m.To)
	if occupant != nil && !m.Capture {
		return illegal(m, fmt.Sprintf("%v occupies the destination but the move is not a capture", occupant.Key()))
	}

	// Resolve while the occupant is still on the board so pawn captures
	// see their target.
	p, err := b.resolveOrigin(m)
	if err != nil {
		return err
	}
	if p == occupant {
		return illegalPiece(m, p, "origin and destination are the same square")
	}
	if occupant != nil {
		occupant.capture(ply)
	}
	p.moveUnchecked(ply, m.To)
	if promoteTo != nil {
		p.promote(ply, promoteTo)
	}
	return nil
}

func (b *Board) resolveOrigin(m notation.Move) (*PieceData, error) {
	from, ok := m.From.Known()
	if !ok {
		return b.disambiguate(m)
	}
	p := b.PieceAt(from)
	switch {
	case p == nil:
		return nil, illegal(m, fmt.Sprintf("no piece on %v", from))
	case p.White != m.White:
		return nil, illegalPiece(m, p, fmt.Sprintf("piece on %v belongs to %s", from, ColorName(p.White)))
	case p.Kind() != m.Piece:
		return nil, illegalPiece(m, p, fmt.Sprintf("piece on %v is a %v", from, p.Kind()))
	}
	return p, nil
}

// disambiguate picks the mover among the live pieces of the stated kind and
// color, in enumeration order. A known rank, else a known file, selects the
// first candidate standing on it without looking at the destination. With
// neither, the first candidate that can reach the destination wins.
func (b *Board) disambiguate(m notation.Move) (*PieceData, error) {
	candidates := b.liveOfKind(m.Piece, m.White)
	if m.From.HasRank() || m.From.HasFile() {
		for _, p := range candidates {
			sq, _ := p.CurrSquare()
			if m.From.HasRank() && sq.Rank() == m.From.Rank {
				return p, nil
			}
			if !m.From.HasRank() && sq.File() == m.From.File {
				return p, nil
			}
		}
		return nil, illegal(m, fmt.Sprintf("no live %s %v matches origin %v", ColorName(m.White), m.Piece, m.From))
	}

	for _, p := range candidates {
		if slices.Contains(ValidSquares(p, b), m.To) {
			return p, nil
		}
	}
	return nil, illegal(m, fmt.Sprintf("no %s %v can reach %v", ColorName(m.White), m.Piece, m.To))
}

// applyCastle relocates king and rook without checking castling rights,
// attacked squares or whether the squares between them are empty. Landing on
// an occupied square leaves two pieces on one square, which Validate rejects
// as ErrInconsistent.
func (b *Board) applyCastle(ply int, m notation.Move) error {
	rank := notation.Rank1
	if !m.White {
		rank = notation.Rank8
	}
	rookFile, kingDest, rookDest := notation.FileH, notation.FileG, notation.FileF
	if m.Kind == notation.CastleQueenside {
		rookFile, kingDest, rookDest = notation.FileA, notation.FileC, notation.FileD
	}
	kingFrom := notation.NewSquare(notation.FileE, rank)
	kingTo := notation.NewSquare(kingDest, rank)
	rookFrom := notation.NewSquare(rookFile, rank)
	rookTo := notation.NewSquare(rookDest, rank)

	castle := m
	castle.Piece = notation.King
	castle.From = notation.OriginOf(kingFrom)
	castle.To = kingTo

	king := b.PieceAt(kingFrom)
	if king == nil || king.White != m.White || king.Kind() != notation.King {
		return illegal(castle, fmt.Sprintf("no %s king on %v", ColorName(m.White), kingFrom))
	}
	rook := b.PieceAt(rookFrom)
	if rook == nil || rook.White != m.White || rook.Kind() != notation.Rook {
		return illegalPiece(castle, king, fmt.Sprintf("no %s rook on %v", ColorName(m.White), rookFrom))
	}
	king.moveUnchecked(ply, kingTo)
	rook.moveUnchecked(ply, rookTo)
	return nil
}

func illegal(m notation.Move, reason string) *IllegalMoveError {
	return &IllegalMoveError{
		Kind:   m.Piece,
		White:  m.White,
		From:   m.From,
		To:     m.To,
		Reason: reason,
	}
}

func illegalPiece(m notation.Move, p *PieceData, reason string) *IllegalMoveError {
	err := illegal(m, reason)
	err.Piece = p.Piece
	err.Resolved = true
	return err
}
