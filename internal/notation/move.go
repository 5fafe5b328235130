package notation

import "strings"

type Piece uint8

const (
	NoPiece Piece = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

func (p Piece) String() string {
	switch p {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// Letter is the SAN piece letter, empty for pawns.
func (p Piece) Letter() string {
	switch p {
	case Rook:
		return "R"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return ""
}

func pieceFromLetter(l string) Piece {
	switch l {
	case "":
		return Pawn
	case "P":
		return Pawn
	case "R":
		return Rook
	case "N":
		return Knight
	case "B":
		return Bishop
	case "Q":
		return Queen
	case "K":
		return King
	}
	return NoPiece
}

type MoveKind uint8

const (
	BasicMove MoveKind = iota
	CastleKingside
	CastleQueenside
)

// Move is one half-move as written. Piece, To, From, Capture and Promotion
// are meaningful for BasicMove only.
type Move struct {
	Kind      MoveKind
	Piece     Piece
	To        Square
	From      Origin
	Capture   bool
	Promotion Piece

	// Number is the full-move number in effect when the move was read, zero
	// when the text carried no numbers. White is the side that made the move.
	Number int
	White  bool

	Text string
}

func (m Move) IsCastle() bool {
	return m.Kind == CastleKingside || m.Kind == CastleQueenside
}

func (m Move) String() string {
	if m.Text != "" {
		return m.Text
	}
	switch m.Kind {
	case CastleKingside:
		return "O-O"
	case CastleQueenside:
		return "O-O-O"
	}
	var b strings.Builder
	b.WriteString(m.Piece.Letter())
	if m.From.HasFile() {
		b.WriteString(m.From.File.String())
	}
	if m.From.HasRank() {
		b.WriteString(m.From.Rank.String())
	}
	if m.Capture {
		b.WriteString("x")
	}
	b.WriteString(m.To.String())
	if m.Promotion != NoPiece {
		b.WriteString("=" + m.Promotion.Letter())
	}
	return b.String()
}

type Sequence struct {
	Moves []Move
	// Result is the game termination marker if one was present.
	Result string
}
