package mem

import (
	"sync"
	"time"
)

// SessionRegistry tracks live admin session markers. A marker exists from
// login until sign-out or process exit; there is no expiry. Tokens that
// validate cryptographically but have no marker are treated as signed out.
type SessionRegistry interface {
	Set(token string, email string)

	// Has reports whether the token still marks a live session.
	Has(token string) bool

	// Delete removes the marker (sign-out).
	Delete(token string)
}

type session struct {
	email     string
	createdAt time.Time
}

type Sessions struct {
	mu   sync.RWMutex
	data map[string]session
}

func NewSessions() *Sessions {
	return &Sessions{
		data: make(map[string]session),
	}
}

func (s *Sessions) Set(token string, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = session{
		email:     email,
		createdAt: time.Now(),
	}
}

func (s *Sessions) Has(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[token]
	return ok
}

func (s *Sessions) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, token)
}
