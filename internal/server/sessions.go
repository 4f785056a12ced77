package server

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/smarthire/internal/session"
	"github.com/jonathan/smarthire/internal/types"
)

// userSession is one user's dashboard state. mu serializes every access to store.
type userSession struct {
	mu    sync.Mutex
	store *session.Store
	notes *session.Buffer
}

// sessionRegistry hands out one session per signed-in user over a shared pool.
type sessionRegistry struct {
	pool []types.Candidate

	mu       sync.Mutex
	sessions map[uuid.UUID]*userSession
}

func newSessionRegistry(pool []types.Candidate) *sessionRegistry {
	return &sessionRegistry{
		pool:     pool,
		sessions: make(map[uuid.UUID]*userSession),
	}
}

// get returns the user's session, creating it on first use.
func (r *sessionRegistry) get(userID uuid.UUID) *userSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[userID]; ok {
		return s
	}
	notes := &session.Buffer{}
	s := &userSession{store: session.New(r.pool, notes), notes: notes}
	r.sessions[userID] = s
	return s
}

// drop forgets the user's session.
func (r *sessionRegistry) drop(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}

func (r *sessionRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
