package model

import (
	"fmt"
	"strings"

	"github.com/benbeisheim/chess-move-validator/internal/notation"
)

// UniquePiece tags a piece by the square it started on. The tag survives
// promotion.
type UniquePiece uint8

const (
	APawn UniquePiece = iota
	BPawn
	CPawn
	DPawn
	EPawn
	FPawn
	GPawn
	HPawn
	QRook
	QKnight
	QBishop
	Queen
	King
	KBishop
	KKnight
	KRook
)

const uniquePieceCount = 16

var uniquePieceNames = [uniquePieceCount]string{
	"APawn", "BPawn", "CPawn", "DPawn", "EPawn", "FPawn", "GPawn", "HPawn",
	"QRook", "QKnight", "QBishop", "Queen", "King", "KBishop", "KKnight", "KRook",
}

func (u UniquePiece) Valid() bool { return u < uniquePieceCount }

func (u UniquePiece) String() string {
	if !u.Valid() {
		return fmt.Sprintf("UniquePiece(%d)", u)
	}
	return uniquePieceNames[u]
}

func (u UniquePiece) IsPawn() bool { return u <= HPawn }

// StartFile is the file the piece occupies in the initial position.
func (u UniquePiece) StartFile() notation.File {
	if u.IsPawn() {
		return notation.File(u)
	}
	return notation.File(u - QRook)
}

// BaseKind is the kind the piece starts as.
func (u UniquePiece) BaseKind() notation.Piece {
	switch u {
	case QRook, KRook:
		return notation.Rook
	case QKnight, KKnight:
		return notation.Knight
	case QBishop, KBishop:
		return notation.Bishop
	case Queen:
		return notation.Queen
	case King:
		return notation.King
	}
	return notation.Pawn
}

// ParseUniquePiece accepts the names printed by String, case-insensitively.
func ParseUniquePiece(name string) (UniquePiece, error) {
	for i, n := range uniquePieceNames {
		if strings.EqualFold(n, name) {
			return UniquePiece(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown piece %q", ErrInvalidPiece, name)
}

// PieceKey identifies one of the 32 pieces.
type PieceKey struct {
	Piece UniquePiece
	White bool
}

func (k PieceKey) String() string {
	return ColorName(k.White) + " " + k.Piece.String()
}

// AllPieceKeys lists the 32 keys, white first, each color in tag order.
func AllPieceKeys() []PieceKey {
	keys := make([]PieceKey, 0, 2*uniquePieceCount)
	for _, white := range []bool{true, false} {
		for id := UniquePiece(0); id < uniquePieceCount; id++ {
			keys = append(keys, PieceKey{Piece: id, White: white})
		}
	}
	return keys
}

func ColorName(white bool) string {
	if white {
		return "white"
	}
	return "black"
}

func ParseColor(name string) (bool, error) {
	switch strings.ToLower(name) {
	case "white", "w":
		return true, nil
	case "black", "b":
		return false, nil
	}
	return false, fmt.Errorf("%w: unknown color %q", ErrInvalidPiece, name)
}
