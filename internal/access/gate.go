// Package access implements the admin approval gate. The approved set lives
// in memory only: it grows via /approve, never shrinks, and is lost on
// restart.
package access

import "sync"

// Role is a user's standing with the gate.
type Role int

const (
	Pending Role = iota
	Approved
	Admin
)

func (r Role) String() string {
	switch r {
	case Admin:
		return "admin"
	case Approved:
		return "approved"
	default:
		return "pending"
	}
}

// Gate guards the bot behind a static admin identity and a mutable approved
// set. A disabled gate admits everyone.
type Gate struct {
	enabled bool
	adminID int64

	mu       sync.RWMutex
	approved map[int64]struct{}
}

// NewGate builds a gate. adminID is ignored when the gate is disabled;
// config validation guarantees it is set when enabled.
func NewGate(enabled bool, adminID int64) *Gate {
	return &Gate{
		enabled:  enabled,
		adminID:  adminID,
		approved: make(map[int64]struct{}),
	}
}

// Enabled reports whether the gate is active.
func (g *Gate) Enabled() bool {
	return g.enabled
}

// Role resolves a user's role. The admin can never be demoted.
func (g *Gate) Role(userID int64) Role {
	if g.enabled && userID == g.adminID {
		return Admin
	}
	g.mu.RLock()
	_, ok := g.approved[userID]
	g.mu.RUnlock()
	if ok {
		return Approved
	}
	return Pending
}

// Allowed reports whether the user may use the download flow.
func (g *Gate) Allowed(userID int64) bool {
	if !g.enabled {
		return true
	}
	return g.Role(userID) != Pending
}

// IsAdmin reports whether userID is the configured admin.
func (g *Gate) IsAdmin(userID int64) bool {
	return g.enabled && userID == g.adminID
}

// Approve adds userID to the approved set. Idempotent.
func (g *Gate) Approve(userID int64) {
	g.mu.Lock()
	g.approved[userID] = struct{}{}
	g.mu.Unlock()
}
