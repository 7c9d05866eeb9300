// Package session holds the per-user download session between link
// submission and delivery. Sessions live in memory only and do not survive a
// restart.
package session

import (
	"sync"

	"ytfetch-bot/internal/format"
)

// Session links a submitted URL and its title to the format-selection step.
// Offered records the choices presented to the user so a callback payload
// can be checked against what was actually offered. Fields are fixed at
// creation.
type Session struct {
	Link    string
	Title   string
	Offered []format.Choice
}

// Selector resolves a callback key to its yt-dlp format expression. The
// second result is false for keys that were never offered (stale or forged
// payloads).
func (s Session) Selector(key string) (string, bool) {
	for _, c := range s.Offered {
		if c.Key == key {
			return c.Selector, true
		}
	}
	return "", false
}

// Store maps user identity to the single active session. At most one session
// per user: Put overwrites unconditionally.
type Store struct {
	mu sync.RWMutex
	m  map[int64]Session
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{m: make(map[int64]Session)}
}

// Put stores the session for userID, replacing any prior one.
func (s *Store) Put(userID int64, sess Session) {
	s.mu.Lock()
	s.m[userID] = sess
	s.mu.Unlock()
}

// Get returns the active session for userID, if any.
func (s *Store) Get(userID int64) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.m[userID]
	s.mu.RUnlock()
	return sess, ok
}

// Remove deletes the session for userID. Idempotent.
func (s *Store) Remove(userID int64) {
	s.mu.Lock()
	delete(s.m, userID)
	s.mu.Unlock()
}
