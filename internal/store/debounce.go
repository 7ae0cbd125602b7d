package store

import (
	"context"
	"log"
	"time"
)

// persistSettled is the debounce timer callback: it snapshots the latest
// state and writes it out. Intermediate states inside the debounce window
// are never written; only the settled state is.
func (s *Store) persistSettled() {
	s.mu.Lock()
	if s.persister == nil || s.closed || !s.dirty {
		s.mu.Unlock()
		return
	}
	state := s.persistedStateLocked()
	s.dirty = false
	s.mu.Unlock()

	s.writeWithRetry(context.Background(), state)
}

// Flush forces a pending write immediately, bypassing the debounce window.
// Used on session teardown so navigating away does not lose the last edits.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.persister == nil || !s.dirty {
		s.mu.Unlock()
		return nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	state := s.persistedStateLocked()
	s.dirty = false
	s.mu.Unlock()

	return s.persister.Persist(ctx, state)
}

func (s *Store) persistedStateLocked() PersistedState {
	return PersistedState{
		ResumeID:       s.state.ResumeID,
		Title:          s.state.Title,
		JobDescription: s.state.JobDescription,
		Document:       s.state.Document,
		Settings:       s.state.Settings,
	}
}

// writeWithRetry attempts the persist with bounded linear backoff. After the
// final failure the write is logged and dropped: persistence is deliberately
// best-effort, but not silent and not unbounded.
func (s *Store) writeWithRetry(ctx context.Context, state PersistedState) {
	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				log.Printf("[store] persist canceled for resume %s: %v", state.ResumeID, ctx.Err())
				return
			case <-time.After(time.Duration(attempt) * s.backoff):
			}
		}
		if err = s.persister.Persist(ctx, state); err == nil {
			return
		}
		log.Printf("[store] persist attempt %d/%d failed for resume %s: %v",
			attempt+1, s.retries+1, state.ResumeID, err)
	}
	log.Printf("[store] dropping unpersisted changes for resume %s after %d attempts: %v",
		state.ResumeID, s.retries+1, err)
}
