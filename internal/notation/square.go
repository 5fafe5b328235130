package notation

import "fmt"

type File int8

type Rank int8

// Square indexes the board as rank*8 + file, A1 = 0 and H8 = 63.
type Square int8

const (
	NoFile File = -1
	NoRank Rank = -1

	NoSquare Square = -1
)

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

func (f File) Valid() bool { return f >= FileA && f <= FileH }

func (r Rank) Valid() bool { return r >= Rank1 && r <= Rank8 }

func (f File) String() string {
	if !f.Valid() {
		return "-"
	}
	return string(rune('a' + f))
}

func (r Rank) String() string {
	if !r.Valid() {
		return "-"
	}
	return string(rune('1' + r))
}

// NewSquare returns NoSquare when either coordinate is off the board.
func NewSquare(f File, r Rank) Square {
	if !f.Valid() || !r.Valid() {
		return NoSquare
	}
	return Square(int8(r)*8 + int8(f))
}

func (s Square) Valid() bool { return s >= A1 && s <= H8 }

func (s Square) File() File {
	if !s.Valid() {
		return NoFile
	}
	return File(s % 8)
}

func (s Square) Rank() Rank {
	if !s.Valid() {
		return NoRank
	}
	return Rank(s / 8)
}

// Offset shifts the square by df files and dr ranks. ok is false when the
// result falls off the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	if !s.Valid() {
		return NoSquare, false
	}
	f := int(s.File()) + df
	r := int(s.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return Square(r*8 + f), true
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return s.File().String() + s.Rank().String()
}

// ParseSquare reads a coordinate such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", text)
	}
	f := File(text[0] - 'a')
	r := Rank(text[1] - '1')
	if !f.Valid() || !r.Valid() {
		return NoSquare, fmt.Errorf("invalid square %q", text)
	}
	return NewSquare(f, r), nil
}

// Origin is the possibly partial from-square of a move. Either coordinate may
// be unknown.
type Origin struct {
	File File
	Rank Rank
}

var UnknownOrigin = Origin{File: NoFile, Rank: NoRank}

func OriginOf(s Square) Origin {
	return Origin{File: s.File(), Rank: s.Rank()}
}

// Known returns the full square when both coordinates are present.
func (o Origin) Known() (Square, bool) {
	if o.File.Valid() && o.Rank.Valid() {
		return NewSquare(o.File, o.Rank), true
	}
	return NoSquare, false
}

func (o Origin) HasFile() bool { return o.File.Valid() }

func (o Origin) HasRank() bool { return o.Rank.Valid() }

func (o Origin) String() string {
	s := ""
	if o.HasFile() {
		s += o.File.String()
	}
	if o.HasRank() {
		s += o.Rank.String()
	}
	if s == "" {
		return "?"
	}
	return s
}
