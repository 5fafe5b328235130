package model

import (
	"strconv"
	"strings"

	"github.com/benbeisheim/chess-move-validator/internal/notation"
)

type Placement struct {
	Square notation.Square
	Kind   notation.Piece
}

// Position maps each live piece to where it stands at one ply.
type Position map[PieceKey]Placement

func (p Position) Square(id UniquePiece, white bool) (notation.Square, bool) {
	pl, ok := p[PieceKey{Piece: id, White: white}]
	return pl.Square, ok
}

// Occupant finds the piece standing on sq.
func (p Position) Occupant(sq notation.Square) (PieceKey, Placement, bool) {
	for key, pl := range p {
		if pl.Square == sq {
			return key, pl, true
		}
	}
	return PieceKey{}, Placement{}, false
}

// Keys lists the live pieces in the order of AllPieceKeys.
func (p Position) Keys() []PieceKey {
	var keys []PieceKey
	for _, key := range AllPieceKeys() {
		if _, ok := p[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// BoardFEN renders the piece-placement field of a FEN record.
func (p Position) BoardFEN() string {
	var grid [64]byte
	for key, pl := range p {
		if !pl.Square.Valid() {
			continue
		}
		letter := pl.Kind.Letter()
		if letter == "" {
			letter = "P"
		}
		c := letter[0]
		if !key.White {
			c += 'a' - 'A'
		}
		grid[pl.Square] = c
	}

	var b strings.Builder
	for r := notation.Rank8; r >= notation.Rank1; r-- {
		empty := 0
		for f := notation.FileA; f <= notation.FileH; f++ {
			c := grid[notation.NewSquare(f, r)]
			if c == 0 {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteByte(c)
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r > notation.Rank1 {
			b.WriteByte('/')
		}
	}
	return b.String()
}

// PositionAt rebuilds the position after ply plies. ok is false outside
// [0, PlyCount()].
func (b *Board) PositionAt(ply int) (Position, bool) {
	if ply < 0 || ply > b.plies {
		return nil, false
	}
	pos := make(Position, len(b.pieces))
	for _, p := range b.pieces {
		if sq, ok := p.SquareAt(ply); ok {
			pos[p.Key()] = Placement{Square: sq, Kind: p.KindAt(ply)}
		}
	}
	return pos, true
}

// Position is the current position.
func (b *Board) Position() Position {
	pos, _ := b.PositionAt(b.plies)
	return pos
}

// Cursor returns a cursor at the latest ply.
func (b *Board) Cursor() *PositionCursor {
	return &PositionCursor{board: b, index: b.plies}
}

// PositionCursor steps through the positions of a board. It reads the board
// on every call and must not be used while moves are being applied.
type PositionCursor struct {
	board *Board
	index int
}

func (c *PositionCursor) Index() int {
	return c.index
}

// Curr moves to the latest ply.
func (c *PositionCursor) Curr() Position {
	c.index = c.board.PlyCount()
	return c.board.Position()
}

func (c *PositionCursor) Next() (Position, bool) {
	if c.index >= c.board.PlyCount() {
		return nil, false
	}
	c.index++
	return c.board.PositionAt(c.index)
}

func (c *PositionCursor) Prev() (Position, bool) {
	if c.index <= 0 {
		return nil, false
	}
	c.index--
	return c.board.PositionAt(c.index)
}

// Seek jumps to ply, leaving the cursor where it was if ply is out of range.
func (c *PositionCursor) Seek(ply int) (Position, bool) {
	pos, ok := c.board.PositionAt(ply)
	if ok {
		c.index = ply
	}
	return pos, ok
}
