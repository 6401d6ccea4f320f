package server

import (
	stderrors "errors"
	"log/slog"
	"sync"
)

// ErrMaxSessions is returned when the session cap is reached.
var ErrMaxSessions = stderrors.New("server: maximum sessions reached")

// SessionManager tracks live sessions.
type SessionManager struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	maxSessions int
	logger      *slog.Logger

	onSessionCreate func(*Session)
	onSessionClose  func(*Session)
}

// NewSessionManager creates a SessionManager. max of 0 means no cap.
func NewSessionManager(max int, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		sessions:    make(map[string]*Session),
		maxSessions: max,
		logger:      logger.With("component", "session_manager"),
	}
}

func (sm *SessionManager) add(s *Session) error {
	sm.mu.Lock()
	if sm.maxSessions > 0 && len(sm.sessions) >= sm.maxSessions {
		sm.mu.Unlock()
		return ErrMaxSessions
	}
	sm.sessions[s.ID] = s
	fn := sm.onSessionCreate
	sm.mu.Unlock()

	if fn != nil {
		fn(s)
	}
	return nil
}

func (sm *SessionManager) remove(s *Session) {
	sm.mu.Lock()
	if have, ok := sm.sessions[s.ID]; !ok || have != s {
		sm.mu.Unlock()
		return
	}
	delete(sm.sessions, s.ID)
	fn := sm.onSessionClose
	sm.mu.Unlock()

	if fn != nil {
		fn(s)
	}
}

// Get returns the session with the given id, or nil.
func (sm *SessionManager) Get(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// Count returns the number of live sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// ForEach calls fn for every live session until fn returns false.
func (sm *SessionManager) ForEach(fn func(*Session) bool) {
	sm.mu.RLock()
	all := make([]*Session, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		all = append(all, s)
	}
	sm.mu.RUnlock()

	for _, s := range all {
		if !fn(s) {
			return
		}
	}
}

// SetOnSessionCreate registers a callback for new sessions.
func (sm *SessionManager) SetOnSessionCreate(fn func(*Session)) {
	sm.mu.Lock()
	sm.onSessionCreate = fn
	sm.mu.Unlock()
}

// SetOnSessionClose registers a callback for closed sessions.
func (sm *SessionManager) SetOnSessionClose(fn func(*Session)) {
	sm.mu.Lock()
	sm.onSessionClose = fn
	sm.mu.Unlock()
}

// Shutdown closes every session.
func (sm *SessionManager) Shutdown() {
	n := 0
	sm.ForEach(func(s *Session) bool {
		s.Close()
		n++
		return true
	})
	sm.logger.Info("sessions closed", "count", n)
}
