package memory

import (
	"time"

	"mock-interview-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps interview sessions in process memory for the
// lifetime of one browser session. Nothing survives a restart.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions idle for 2 hours are purged; sweep every 10 minutes.
	c := cache.New(2*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
