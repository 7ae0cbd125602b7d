// Package sample carries the one-shot "generate a sample resume for this
// job title" signal into the editor's first load, and builds the starter
// document for it.
package sample

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Signal is the persisted one-shot payload.
type Signal struct {
	JobTitle  string    `json:"job_title"`
	CreatedAt time.Time `json:"created_at"`
}

// SignalStore is a small file-backed key-value store for the signal. The
// signal is consumed and cleared exactly once; a second Take finds nothing.
type SignalStore struct {
	mu   sync.Mutex
	path string
}

// NewSignalStore creates a store persisting to the given file path.
func NewSignalStore(path string) *SignalStore {
	return &SignalStore{path: path}
}

// Put writes a new signal, replacing any pending one.
func (s *SignalStore) Put(jobTitle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(Signal{JobTitle: jobTitle, CreatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal sample signal: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create signal dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write sample signal: %w", err)
	}
	return nil
}

// Take consumes the pending signal, clearing it. Returns nil when no signal
// is pending.
func (s *SignalStore) Take() (*Signal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read sample signal: %w", err)
	}

	var sig Signal
	if err := json.Unmarshal(data, &sig); err != nil {
		// A corrupt signal file is dropped rather than wedging the editor.
		_ = os.Remove(s.path)
		return nil, nil
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to clear sample signal: %w", err)
	}
	return &sig, nil
}
