package session

import (
	"context"
	"sync"
	"time"

	"github.com/liinaD3210/Tender-Expert/internal/analysis"
)

type entry struct {
	result    *analysis.AnalysisResult
	updatedAt time.Time
}

// Store holds the last AnalysisResult per session. A new run replaces the
// session's result wholesale; there is no partial-update path. Entries expire
// after the TTL so abandoned sessions do not accumulate.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
	}
}

// Put replaces the session's result atomically.
func (s *Store) Put(sessionID string, result *analysis.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = &entry{result: result, updatedAt: time.Now()}
}

// Get returns the session's last result, or nil.
func (s *Store) Get(sessionID string) *analysis.AnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	e.updatedAt = time.Now()
	return e.result
}

// Cleanup removes expired sessions.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, e := range s.sessions {
		if now.Sub(e.updatedAt) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

// Run periodically evicts expired sessions until ctx is done.
func (s *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}
