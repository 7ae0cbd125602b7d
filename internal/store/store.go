// Package store holds the state for one resume edit session: the document,
// its settings, and UI flags, mutated through discrete action methods and
// persisted through a debounced write-behind channel.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// Session is a snapshot of one edit session's state.
type Session struct {
	ResumeID       uuid.UUID
	Title          string
	JobDescription string
	Document       types.ResumeDocument
	Settings       types.ResumeSettings

	// UI flags. Editing and Downloading are mutually relevant to export:
	// edit decorations must never reach the exported document.
	Editing     bool
	Downloading bool
	Loading     bool
	Err         string
}

// PersistedState is the subset of a session that is written back to storage.
type PersistedState struct {
	ResumeID       uuid.UUID
	Title          string
	JobDescription string
	Document       types.ResumeDocument
	Settings       types.ResumeSettings
}

// Persister writes the settled session state back to storage.
type Persister interface {
	Persist(ctx context.Context, state PersistedState) error
}

// Subscriber observes state transitions. Called synchronously after each
// action with the new snapshot.
type Subscriber func(Session)

// DefaultDebounce is the idle window after the last document/settings
// mutation before a persistence write fires.
const DefaultDebounce = 1 * time.Second

// Store is the single source of truth for one edit session. Actions apply
// synchronously and atomically; the debounced persist observes only the
// latest state at fire time, collapsing rapid edits into one write. A Store
// is scoped to one editor session and passed explicitly, never a global.
type Store struct {
	mu          sync.Mutex
	state       Session
	initialized bool

	subMu   sync.Mutex
	subs    map[int]Subscriber
	nextSub int

	persister Persister
	debounce  time.Duration
	retries   int
	backoff   time.Duration
	timer     *time.Timer
	dirty     bool

	closed bool
}

// Option configures a Store.
type Option func(*Store)

// WithDebounce overrides the debounce window.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// WithRetry configures how many times a failed persist is retried and the
// linear backoff between attempts.
func WithRetry(retries int, backoff time.Duration) Option {
	return func(s *Store) {
		s.retries = retries
		s.backoff = backoff
	}
}

// New creates a session store. persister may be nil, in which case state is
// held in memory only.
func New(resumeID uuid.UUID, persister Persister, opts ...Option) *Store {
	s := &Store{
		state:     Session{ResumeID: resumeID},
		subs:      make(map[int]Subscriber),
		persister: persister,
		debounce:  DefaultDebounce,
		retries:   3,
		backoff:   500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize replaces document and settings wholesale after the initial
// fetch. Mutation actions before Initialize operate on zero values and are
// not meaningful.
func (s *Store) Initialize(doc types.ResumeDocument, settings types.ResumeSettings, title, jobDescription string) {
	s.mu.Lock()
	s.state.Document = doc
	s.state.Settings = settings
	s.state.Title = title
	s.state.JobDescription = jobDescription
	s.state.Loading = false
	s.initialized = true
	snapshot := s.state
	s.mu.Unlock()

	s.notify(snapshot)
}

// Initialized reports whether Initialize has run for this session.
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// State returns a snapshot of the current session state.
func (s *Store) State() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for state transitions and returns an unsubscribe
// function.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(snapshot Session) {
	s.subMu.Lock()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// UpdateDocument shallow-merges the patch into the document and schedules a
// persist.
func (s *Store) UpdateDocument(patch types.DocumentPatch) {
	if patch.IsZero() {
		return
	}
	s.apply(true, func(state *Session) {
		state.Document = patch.Apply(state.Document)
	})
}

// UpdateSettings shallow-merges the patch into the settings and schedules a
// persist.
func (s *Store) UpdateSettings(patch types.SettingsPatch) {
	if patch.IsZero() {
		return
	}
	s.apply(true, func(state *Session) {
		state.Settings = patch.Apply(state.Settings)
	})
}

// SetTitle sets the resume title and schedules a persist.
func (s *Store) SetTitle(title string) {
	s.apply(true, func(state *Session) { state.Title = title })
}

// SetJobDescription sets the job description and schedules a persist.
func (s *Store) SetJobDescription(jd string) {
	s.apply(true, func(state *Session) { state.JobDescription = jd })
}

// SetEditingMode toggles between direct-manipulation editing and the static
// preview. UI-only; not persisted.
func (s *Store) SetEditingMode(editing bool) {
	s.apply(false, func(state *Session) { state.Editing = editing })
}

// SetDownloading gates the export-in-progress state. UI-only.
func (s *Store) SetDownloading(downloading bool) {
	s.apply(false, func(state *Session) { state.Downloading = downloading })
}

// SetLoading sets the loading flag. UI-only.
func (s *Store) SetLoading(loading bool) {
	s.apply(false, func(state *Session) { state.Loading = loading })
}

// SetError sets or clears the session error message. UI-only.
func (s *Store) SetError(msg string) {
	s.apply(false, func(state *Session) { state.Err = msg })
}

// apply runs a mutation atomically, notifies subscribers, and arms the
// debounce timer when the mutation touches persisted fields.
func (s *Store) apply(persisted bool, mutate func(*Session)) {
	s.mu.Lock()
	mutate(&s.state)
	snapshot := s.state
	if persisted {
		s.dirty = true
		s.armDebounceLocked()
	}
	s.mu.Unlock()

	s.notify(snapshot)
}

// armDebounceLocked cancels and restarts the debounce timer. Caller holds mu.
func (s *Store) armDebounceLocked() {
	if s.persister == nil || s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.persistSettled)
}

// Dirty reports whether there are unpersisted changes.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Close stops the debounce timer without flushing. Pending changes are
// dropped; call Flush first to keep them.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
