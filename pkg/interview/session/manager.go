package session

import (
	"mock-interview-be/internal/pkg/serverutils"
	"mock-interview-be/internal/repository/memory"
	"mock-interview-be/pkg/store"

	"github.com/google/uuid"
)

// Manager handles session lifecycle against the in-memory repository.
type Manager struct {
	sessionRepo *memory.SessionRepository
}

func NewManager(sessionRepo *memory.SessionRepository) *Manager {
	return &Manager{sessionRepo: sessionRepo}
}

// Create registers a fresh session in DOMAIN_SELECTION.
func (m *Manager) Create() *store.Session {
	s := store.NewSession(uuid.NewString())
	m.sessionRepo.Save(s)
	return s
}

// Find returns the session for the given id.
func (m *Manager) Find(sessionID string) (*store.Session, error) {
	s, found := m.sessionRepo.Get(sessionID)
	if !found {
		return nil, serverutils.NewNotFoundError("session not found or expired")
	}
	return s, nil
}

// Save persists session state back to the repository.
func (m *Manager) Save(s *store.Session) {
	m.sessionRepo.Save(s)
}
