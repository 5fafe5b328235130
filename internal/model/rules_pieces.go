package model

import "github.com/benbeisheim/chess-move-validator/internal/notation"

type RookRules struct {
	backRankStart
	noDiagonals
	straightSlider
	slider
}

func (RookRules) Kind() notation.Piece { return notation.Rook }

type BishopRules struct {
	backRankStart
	diagonalSlider
	noStraights
	slider
}

func (BishopRules) Kind() notation.Piece { return notation.Bishop }

type QueenRules struct {
	backRankStart
	diagonalSlider
	straightSlider
	slider
}

func (QueenRules) Kind() notation.Piece { return notation.Queen }

// KnightRules and KingRules move and capture with the same geometry.
type KnightRules struct {
	backRankStart
	noDiagonals
	noStraights
}

func (KnightRules) Kind() notation.Piece { return notation.Knight }

func (KnightRules) MoveOnlySquares(p *PieceData, _ *Board) []notation.Square {
	return jumps(p, knightDirs)
}

func (KnightRules) CaptureOnlySquares(p *PieceData, _ *Board) []notation.Square {
	return jumps(p, knightDirs)
}

type KingRules struct {
	backRankStart
	noDiagonals
	noStraights
}

func (KingRules) Kind() notation.Piece { return notation.King }

func (KingRules) MoveOnlySquares(p *PieceData, _ *Board) []notation.Square {
	return jumps(p, kingDirs)
}

func (KingRules) CaptureOnlySquares(p *PieceData, _ *Board) []notation.Square {
	return jumps(p, kingDirs)
}

type PawnRules struct {
	noDiagonals
	noStraights
}

func (PawnRules) Kind() notation.Piece { return notation.Pawn }

func (PawnRules) InitialSquare(id UniquePiece, white bool) notation.Square {
	rank := notation.Rank2
	if !white {
		rank = notation.Rank7
	}
	return notation.NewSquare(id.StartFile(), rank)
}

// MoveOnlySquares is one step forward, plus two from an unmoved pawn.
// Occupancy of the targets is filtered by ValidSquares; the square in between
// is not looked at.
func (PawnRules) MoveOnlySquares(p *PieceData, _ *Board) []notation.Square {
	from, ok := p.CurrSquare()
	if !ok {
		return nil
	}
	dir := pawnDirection(p.White)
	single, ok := from.Offset(0, dir)
	if !ok {
		return nil
	}
	squares := []notation.Square{single}
	if !p.HasMoved() {
		if double, ok := from.Offset(0, 2*dir); ok {
			squares = append(squares, double)
		}
	}
	return squares
}

func (PawnRules) CaptureOnlySquares(p *PieceData, _ *Board) []notation.Square {
	dir := pawnDirection(p.White)
	return jumps(p, []direction{{1, dir}, {-1, dir}})
}

func pawnDirection(white bool) int {
	if white {
		return 1
	}
	return -1
}
