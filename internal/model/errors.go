package model

import (
	"errors"
	"fmt"

	"github.com/benbeisheim/chess-move-validator/internal/notation"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrInconsistent = errors.New("inconsistent board state")
	ErrInvalidPiece = errors.New("invalid piece")
)

// IllegalMoveError describes a move the board could not apply. Piece is only
// meaningful when Resolved is set.
type IllegalMoveError struct {
	Kind     notation.Piece
	White    bool
	Piece    UniquePiece
	Resolved bool
	From     notation.Origin
	To       notation.Square
	Reason   string
}

func (e *IllegalMoveError) Error() string {
	who := ColorName(e.White) + " " + e.Kind.String()
	if e.Resolved {
		who = PieceKey{Piece: e.Piece, White: e.White}.String()
	}
	return fmt.Sprintf("illegal move: %s from %v to %v: %s", who, e.From, e.To, e.Reason)
}

func (e *IllegalMoveError) Unwrap() error { return ErrIllegalMove }

// MoveError attributes a failure to one move of a sequence. Index is zero
// based.
type MoveError struct {
	Index int
	Move  notation.Move
	Err   error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %d (%s): %v", e.Index+1, e.Move, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }
