package service

import (
	"github.com/benbeisheim/chess-move-validator/internal/model"
	"github.com/benbeisheim/chess-move-validator/internal/notation"
)

// PieceState is the client view of one piece. Piece is the identity tag and
// Kind what it currently moves as.
type PieceState struct {
	Piece    string `json:"piece"`
	Color    string `json:"color"`
	Kind     string `json:"kind"`
	Square   string `json:"square,omitempty"`
	Captured bool   `json:"captured"`
}

type BoardState struct {
	BoardID string       `json:"boardId"`
	Plies   int          `json:"plies"`
	FEN     string       `json:"fen"`
	Pieces  []PieceState `json:"pieces"`
}

// SnapshotState is the placement after Ply plies. Captured pieces are left
// out.
type SnapshotState struct {
	Ply    int          `json:"ply"`
	FEN    string       `json:"fen"`
	Pieces []PieceState `json:"pieces"`
}

type SquaresState struct {
	Piece   PieceState `json:"piece"`
	Squares []string   `json:"squares"`
}

func newPieceState(p *model.PieceData) PieceState {
	ps := PieceState{
		Piece:    p.Piece.String(),
		Color:    model.ColorName(p.White),
		Kind:     p.Kind().String(),
		Captured: p.Captured(),
	}
	if sq, ok := p.CurrSquare(); ok {
		ps.Square = sq.String()
	}
	return ps
}

func newBoardState(id string, b *model.Board) BoardState {
	pieces := b.Pieces()
	state := BoardState{
		BoardID: id,
		Plies:   b.PlyCount(),
		FEN:     b.Position().BoardFEN(),
		Pieces:  make([]PieceState, 0, len(pieces)),
	}
	for _, p := range pieces {
		state.Pieces = append(state.Pieces, newPieceState(p))
	}
	return state
}

func newSnapshotState(ply int, pos model.Position) SnapshotState {
	keys := pos.Keys()
	state := SnapshotState{
		Ply:    ply,
		FEN:    pos.BoardFEN(),
		Pieces: make([]PieceState, 0, len(keys)),
	}
	for _, key := range keys {
		pl := pos[key]
		state.Pieces = append(state.Pieces, PieceState{
			Piece:  key.Piece.String(),
			Color:  model.ColorName(key.White),
			Kind:   pl.Kind.String(),
			Square: pl.Square.String(),
		})
	}
	return state
}

func squareNames(squares []notation.Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	return names
}
