package service

import (
	"fmt"

	"github.com/benbeisheim/chess-move-validator/internal/model"
	"github.com/benbeisheim/chess-move-validator/internal/notation"
	"github.com/benbeisheim/chess-move-validator/internal/ws"
	"github.com/google/uuid"
)

type SessionService struct {
	manager *SessionManager
}

func NewSessionService(manager *SessionManager) *SessionService {
	return &SessionService{
		manager: manager,
	}
}

func (ss *SessionService) CreateBoard() (string, error) {
	boardID := uuid.New().String()

	if _, err := ss.manager.CreateSession(boardID); err != nil {
		return "", fmt.Errorf("failed to create board: %w", err)
	}

	return boardID, nil
}

func (ss *SessionService) ListBoards() []string {
	return ss.manager.SessionIDs()
}

func (ss *SessionService) DeleteBoard(boardID string) error {
	return ss.manager.RemoveSession(boardID)
}

func (ss *SessionService) GetBoardState(boardID string) (BoardState, error) {
	s, err := ss.manager.GetSession(boardID)
	if err != nil {
		return BoardState{}, err
	}
	return s.State(), nil
}

// AddMoves applies move text to a board. The returned state is valid even
// when err reports a failing move, and reflects the moves that did apply.
func (ss *SessionService) AddMoves(boardID, text string) (BoardState, error) {
	s, err := ss.manager.GetSession(boardID)
	if err != nil {
		return BoardState{}, err
	}
	state, err := s.AddMoves(text)
	if err != nil {
		return state, fmt.Errorf("failed to add moves to board %s: %w", boardID, err)
	}
	return state, nil
}

func (ss *SessionService) ValidSquaresAt(boardID, square string) (SquaresState, error) {
	s, err := ss.manager.GetSession(boardID)
	if err != nil {
		return SquaresState{}, err
	}
	sq, err := notation.ParseSquare(square)
	if err != nil {
		return SquaresState{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return s.ValidSquaresAt(sq)
}

func (ss *SessionService) ValidSquaresFor(boardID, color, piece string) (SquaresState, error) {
	s, err := ss.manager.GetSession(boardID)
	if err != nil {
		return SquaresState{}, err
	}
	white, err := model.ParseColor(color)
	if err != nil {
		return SquaresState{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	id, err := model.ParseUniquePiece(piece)
	if err != nil {
		return SquaresState{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return s.ValidSquaresFor(id, white), nil
}

func (ss *SessionService) Occupant(boardID, square string) (PieceState, error) {
	s, err := ss.manager.GetSession(boardID)
	if err != nil {
		return PieceState{}, err
	}
	sq, err := notation.ParseSquare(square)
	if err != nil {
		return PieceState{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	ps, ok := s.Occupant(sq)
	if !ok {
		return PieceState{}, fmt.Errorf("%w: %s", ErrNoOccupant, sq)
	}
	return ps, nil
}

func (ss *SessionService) Snapshot(boardID string, ply int) (SnapshotState, error) {
	s, err := ss.manager.GetSession(boardID)
	if err != nil {
		return SnapshotState{}, err
	}
	snap, ok := s.Snapshot(ply)
	if !ok {
		return SnapshotState{}, fmt.Errorf("%w: %d", ErrPlyOutOfRange, ply)
	}
	return snap, nil
}

func (ss *SessionService) RegisterConnection(boardID, clientID string, conn Conn) error {
	s, err := ss.manager.GetSession(boardID)
	if err != nil {
		return err
	}
	return s.RegisterConnection(clientID, conn)
}

func (ss *SessionService) UnregisterConnection(boardID, clientID string, conn Conn) {
	s, err := ss.manager.GetSession(boardID)
	if err != nil {
		return
	}
	s.UnregisterConnection(clientID, conn)
}

// SendError reports a failure to one client only.
func (ss *SessionService) SendError(boardID, clientID, text string) error {
	s, err := ss.manager.GetSession(boardID)
	if err != nil {
		return err
	}
	return s.Send(clientID, ws.ErrorMessage(text))
}
