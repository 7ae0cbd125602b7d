package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Manager tracks live session stores so the server can look them up per
// resume and flush all dirty sessions on shutdown.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Store

	persister Persister
	opts      []Option
}

// NewManager creates a session manager. The persister and options are
// applied to every session it creates.
func NewManager(persister Persister, opts ...Option) *Manager {
	return &Manager{
		sessions:  make(map[uuid.UUID]*Store),
		persister: persister,
		opts:      opts,
	}
}

// Get returns the session store for a resume, creating it on first use.
func (m *Manager) Get(resumeID uuid.UUID) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[resumeID]; ok {
		return s
	}
	s := New(resumeID, m.persister, m.opts...)
	m.sessions[resumeID] = s
	return s
}

// Lookup returns the session store for a resume if one exists.
func (m *Manager) Lookup(resumeID uuid.UUID) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[resumeID]
	return s, ok
}

// Release closes a session, flushing pending changes first.
func (m *Manager) Release(ctx context.Context, resumeID uuid.UUID) error {
	m.mu.Lock()
	s, ok := m.sessions[resumeID]
	delete(m.sessions, resumeID)
	m.mu.Unlock()

	if !ok {
		return nil
	}
	err := s.Flush(ctx)
	s.Close()
	return err
}

// FlushAll flushes every dirty session in parallel. Used on shutdown to
// close the debounce-window loss gap.
func (m *Manager) FlushAll(ctx context.Context) error {
	m.mu.Lock()
	stores := make([]*Store, 0, len(m.sessions))
	for _, s := range m.sessions {
		stores = append(stores, s)
	}
	m.mu.Unlock()

	g, gCtx := errgroup.WithContext(ctx)
	for _, s := range stores {
		if !s.Dirty() {
			continue
		}
		g.Go(func() error {
			return s.Flush(gCtx)
		})
	}
	return g.Wait()
}
