package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPersister captures every persisted state.
type recordingPersister struct {
	mu     sync.Mutex
	writes []PersistedState
	errs   []error // consumed per call; nil entries mean success
}

func (p *recordingPersister) Persist(_ context.Context, state PersistedState) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.errs) > 0 {
		err := p.errs[0]
		p.errs = p.errs[1:]
		if err != nil {
			return err
		}
	}
	p.writes = append(p.writes, state)
	return nil
}

func (p *recordingPersister) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.writes)
}

func (p *recordingPersister) last() PersistedState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes[len(p.writes)-1]
}

func TestStore_InitializeAndState(t *testing.T) {
	s := New(uuid.New(), nil)
	s.SetLoading(true)

	doc := types.ResumeDocument{PersonalInfo: types.PersonalInfo{Name: "Ada"}}
	s.Initialize(doc, types.DefaultSettings(), "Backend Resume", "Go role")

	state := s.State()
	assert.Equal(t, "Ada", state.Document.PersonalInfo.Name)
	assert.Equal(t, "Backend Resume", state.Title)
	assert.Equal(t, "Go role", state.JobDescription)
	assert.False(t, state.Loading)
}

func TestStore_UpdateDocument_ShallowMerge(t *testing.T) {
	s := New(uuid.New(), nil)
	s.Initialize(types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Skills:       []types.SkillEntry{{Order: 0, Name: "Go"}},
	}, types.DefaultSettings(), "t", "")

	info := types.PersonalInfo{Name: "Ada Lovelace", Email: "ada@example.com"}
	s.UpdateDocument(types.DocumentPatch{PersonalInfo: &info})

	state := s.State()
	assert.Equal(t, "Ada Lovelace", state.Document.PersonalInfo.Name)
	// Unpatched collections untouched.
	assert.Len(t, state.Document.Skills, 1)
}

func TestStore_Subscribe(t *testing.T) {
	s := New(uuid.New(), nil)

	var seen []string
	unsubscribe := s.Subscribe(func(state Session) {
		seen = append(seen, state.Title)
	})

	s.SetTitle("one")
	s.SetTitle("two")
	unsubscribe()
	s.SetTitle("three")

	assert.Equal(t, []string{"one", "two"}, seen)
}

func TestStore_DebounceCoalescing(t *testing.T) {
	p := &recordingPersister{}
	s := New(uuid.New(), p, WithDebounce(80*time.Millisecond))
	defer s.Close()
	s.Initialize(types.ResumeDocument{}, types.DefaultSettings(), "initial", "")

	// Three mutations inside the window produce exactly one write,
	// containing the state after the third mutation.
	s.SetTitle("first")
	time.Sleep(20 * time.Millisecond)
	s.SetTitle("second")
	time.Sleep(20 * time.Millisecond)
	s.SetTitle("third")

	assert.Equal(t, 0, p.count(), "nothing persists inside the debounce window")

	require.Eventually(t, func() bool { return p.count() == 1 },
		time.Second, 10*time.Millisecond)
	assert.Equal(t, "third", p.last().Title)

	// No trailing extra write.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 1, p.count())
	assert.False(t, s.Dirty())
}

func TestStore_UIFlagsDoNotPersist(t *testing.T) {
	p := &recordingPersister{}
	s := New(uuid.New(), p, WithDebounce(30*time.Millisecond))
	defer s.Close()

	s.SetEditingMode(true)
	s.SetDownloading(true)
	s.SetLoading(true)
	s.SetError("boom")

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, p.count())
}

func TestStore_Flush_ForcesPendingWrite(t *testing.T) {
	p := &recordingPersister{}
	s := New(uuid.New(), p, WithDebounce(10*time.Second))
	defer s.Close()

	s.SetTitle("pending")
	require.True(t, s.Dirty())

	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, 1, p.count())
	assert.Equal(t, "pending", p.last().Title)
	assert.False(t, s.Dirty())

	// Nothing pending, flush is a no-op.
	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, 1, p.count())
}

func TestStore_PersistRetry(t *testing.T) {
	p := &recordingPersister{errs: []error{errors.New("blip"), errors.New("blip")}}
	s := New(uuid.New(), p,
		WithDebounce(20*time.Millisecond),
		WithRetry(3, 5*time.Millisecond))
	defer s.Close()

	s.SetTitle("retried")

	require.Eventually(t, func() bool { return p.count() == 1 },
		time.Second, 10*time.Millisecond)
	assert.Equal(t, "retried", p.last().Title)
}

func TestManager_GetAndFlushAll(t *testing.T) {
	p := &recordingPersister{}
	m := NewManager(p, WithDebounce(10*time.Second))

	idA, idB := uuid.New(), uuid.New()
	a := m.Get(idA)
	assert.Same(t, a, m.Get(idA), "same session store per resume")

	b := m.Get(idB)
	a.SetTitle("a")
	b.SetTitle("b")

	require.NoError(t, m.FlushAll(context.Background()))
	assert.Equal(t, 2, p.count())
	assert.False(t, a.Dirty())
	assert.False(t, b.Dirty())
}

func TestManager_Release(t *testing.T) {
	p := &recordingPersister{}
	m := NewManager(p, WithDebounce(10*time.Second))

	id := uuid.New()
	s := m.Get(id)
	s.SetTitle("final")

	require.NoError(t, m.Release(context.Background(), id))
	assert.Equal(t, 1, p.count())

	_, ok := m.Lookup(id)
	assert.False(t, ok)
}
