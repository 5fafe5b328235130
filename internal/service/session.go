package service

import (
	"sync"

	"github.com/benbeisheim/chess-move-validator/internal/model"
	"github.com/benbeisheim/chess-move-validator/internal/notation"
	"github.com/benbeisheim/chess-move-validator/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

// Conn is the write side of a client connection. *websocket.Conn satisfies
// it.
type Conn interface {
	WriteJSON(v interface{}) error
}

// Session is one board plus the clients watching it. The board lock guards
// every board access; the connection lock serializes writes to clients. When
// both are needed, mu is taken before connMu.
type Session struct {
	ID string

	mu    sync.RWMutex
	board *model.Board

	connMu      sync.Mutex
	connections map[string]Conn
}

func NewSession(id string) *Session {
	return &Session{
		ID:          id,
		board:       model.NewBoard(),
		connections: make(map[string]Conn),
	}
}

// AddMoves applies text to the board. Moves before a failing one stay
// applied, so watchers are told about any change even when err is non-nil.
// The broadcast happens under the board lock so watchers see states in ply
// order.
func (s *Session) AddMoves(text string) (BoardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.board.PlyCount()
	err := s.board.AddMoves(text)
	state := newBoardState(s.ID, s.board)
	if state.Plies != before {
		s.broadcast(state)
	}
	return state, err
}

func (s *Session) State() BoardState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newBoardState(s.ID, s.board)
}

func (s *Session) ValidSquaresAt(sq notation.Square) (SquaresState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.board.PieceAt(sq)
	if p == nil {
		return SquaresState{}, ErrNoOccupant
	}
	return SquaresState{
		Piece:   newPieceState(p),
		Squares: squareNames(s.board.ValidSquaresAt(sq)),
	}, nil
}

// ValidSquaresFor looks the piece up by identity. A captured piece reports no
// squares.
func (s *Session) ValidSquaresFor(id model.UniquePiece, white bool) SquaresState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return SquaresState{
		Piece:   newPieceState(s.board.Piece(id, white)),
		Squares: squareNames(s.board.ValidSquaresFor(id, white)),
	}
}

func (s *Session) Occupant(sq notation.Square) (PieceState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.board.PieceAt(sq)
	if p == nil {
		return PieceState{}, false
	}
	return newPieceState(p), true
}

// Snapshot replays the board to ply with a cursor of its own.
func (s *Session) Snapshot(ply int) (SnapshotState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.board.Cursor().Seek(ply)
	if !ok {
		return SnapshotState{}, false
	}
	return newSnapshotState(ply, pos), true
}

// RegisterConnection adds a watcher and sends it the current state. A client
// may hold one connection per session.
func (s *Session) RegisterConnection(clientID string, conn Conn) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := newBoardState(s.ID, s.board)

	s.connMu.Lock()
	defer s.connMu.Unlock()
	if _, exists := s.connections[clientID]; exists {
		return ErrAlreadyConnected
	}
	s.connections[clientID] = conn
	log.Infof("board %s: registered connection for client %s", s.ID, clientID)

	s.writeLocked(clientID, conn, ws.MessageTypeBoardState, state)
	return nil
}

// UnregisterConnection removes conn if it is still the client's current
// connection.
func (s *Session) UnregisterConnection(clientID string, conn Conn) {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if current, exists := s.connections[clientID]; exists && current == conn {
		delete(s.connections, clientID)
		log.Infof("board %s: unregistered connection for client %s", s.ID, clientID)
	}
}

func (s *Session) ConnectionCount() int {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	return len(s.connections)
}

// Send writes msg to one client.
func (s *Session) Send(clientID string, msg ws.Message) error {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	conn, ok := s.connections[clientID]
	if !ok {
		return ErrNotConnected
	}
	if err := conn.WriteJSON(msg); err != nil {
		delete(s.connections, clientID)
		return err
	}
	return nil
}

func (s *Session) broadcast(state BoardState) {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	for clientID, conn := range s.connections {
		s.writeLocked(clientID, conn, ws.MessageTypeBoardState, state)
	}
}

// writeLocked sends one message and drops the connection if the write fails.
// connMu must be held.
func (s *Session) writeLocked(clientID string, conn Conn, t ws.MessageType, payload interface{}) {
	msg, err := ws.NewMessage(t, payload)
	if err != nil {
		log.Errorf("board %s: failed to marshal %s: %v", s.ID, t, err)
		return
	}
	if err := conn.WriteJSON(msg); err != nil {
		log.Warnf("board %s: failed to send %s to client %s: %v", s.ID, t, clientID, err)
		delete(s.connections, clientID)
	}
}
