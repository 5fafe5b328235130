package service

import (
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SessionManager is the registry of live board sessions.
type SessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

func (sm *SessionManager) CreateSession(id string) (*Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[id]; exists {
		return nil, ErrBoardExists
	}

	s := NewSession(id)
	sm.sessions[id] = s
	log.Infof("created board %s", id)
	return s, nil
}

func (sm *SessionManager) GetSession(id string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	s, exists := sm.sessions[id]
	if !exists {
		return nil, ErrBoardNotFound
	}
	return s, nil
}

// RemoveSession forgets the board. Open connections are left to their
// handlers.
func (sm *SessionManager) RemoveSession(id string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[id]; !exists {
		return ErrBoardNotFound
	}
	delete(sm.sessions, id)
	log.Infof("removed board %s", id)
	return nil
}

// SessionIDs lists the live boards in sorted order.
func (sm *SessionManager) SessionIDs() []string {
	sm.mu.RLock()
	ids := maps.Keys(sm.sessions)
	sm.mu.RUnlock()

	slices.Sort(ids)
	return ids
}
