package editor

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/cvforge/pkg/document"
)

func hydrated() (*Store, *Session) {
	st := NewStore()
	data := document.Data{
		Personal:   document.Personal{Name: "Анна Иванова"},
		Experience: []document.ExperienceItem{{Title: "Developer", Organization: "Acme"}},
	}
	return st, st.Open(uuid.New(), uuid.New(), data)
}

func TestSetMarksDirty(t *testing.T) {
	_, s := hydrated()
	require.False(t, s.Dirty())

	require.NoError(t, s.Set("experience[0].title", "Engineer"))
	assert.True(t, s.Dirty())
	assert.Equal(t, "Engineer", s.Snapshot().Experience[0].Title)
}

func TestResetDiscardsEditAndClearsDirty(t *testing.T) {
	_, s := hydrated()
	base := s.Snapshot()

	require.NoError(t, s.Set("experience[0].title", "Engineer"))
	require.True(t, s.Dirty())

	s.Reset(base)
	assert.False(t, s.Dirty())
	assert.Equal(t, "Developer", s.Snapshot().Experience[0].Title)
}

func TestUnknownPathLeavesStateIntact(t *testing.T) {
	_, s := hydrated()
	before := s.Snapshot()

	require.Error(t, s.Set("experience[0].company", "x"))
	require.Error(t, s.Set("awards[0].title", "x"))
	require.Error(t, s.Set("experience[5].title", "x"))
	assert.False(t, s.Dirty())
	assert.Equal(t, before, s.Snapshot())
}

func TestBadFieldAtAppendIndexLeavesNoPhantomEntry(t *testing.T) {
	_, s := hydrated()
	before := s.Snapshot()
	require.Len(t, before.Experience, 1)

	// Индекс добавления валиден, но поле неизвестно: новая запись
	// не должна появиться.
	require.Error(t, s.Set("experience[1].company", "x"))
	require.Error(t, s.Set("skills[0].weight", "5"))
	assert.False(t, s.Dirty())
	assert.Equal(t, before, s.Snapshot())
}

func TestAppendEntryViaTrailingIndex(t *testing.T) {
	_, s := hydrated()
	require.NoError(t, s.Set("experience[1].title", "Team Lead"))
	snap := s.Snapshot()
	require.Len(t, snap.Experience, 2)
	assert.Equal(t, "Team Lead", snap.Experience[1].Title)

	require.NoError(t, s.Set("skills[0].name", "Go"))
	assert.Equal(t, "Go", s.Snapshot().Skills[0].Name)
}

func TestSnapshotIsIsolatedCopy(t *testing.T) {
	_, s := hydrated()
	snap := s.Snapshot()
	snap.Experience[0].Title = "mutated"
	assert.Equal(t, "Developer", s.Snapshot().Experience[0].Title)
}

func TestStaleSaveAfterResetIsDiscarded(t *testing.T) {
	_, s := hydrated()
	require.NoError(t, s.Set("personal.name", "Другая версия"))

	// Сохранение уходит в сеть со снапшотом...
	snapshot, gen := s.BeginSave()
	assert.Equal(t, "Другая версия", snapshot.Personal.Name)

	// ...а пока оно летит, сессию сбросили.
	s.Reset(document.Data{Personal: document.Personal{Name: "Свежее состояние"}})

	// Устаревший ответ не должен трогать новое состояние.
	assert.False(t, s.CompleteSave(gen))
	assert.Equal(t, "Свежее состояние", s.Snapshot().Personal.Name)
	assert.False(t, s.Dirty())
}

func TestEditDuringFlightKeepsDirty(t *testing.T) {
	_, s := hydrated()
	require.NoError(t, s.Set("personal.name", "v1"))
	_, gen := s.BeginSave()

	require.NoError(t, s.Set("personal.name", "v2"))

	// Ответ для v1 устарел: правка v2 ещё не сохранена.
	assert.False(t, s.CompleteSave(gen))
	assert.True(t, s.Dirty())
}

func TestCompleteSaveClearsDirty(t *testing.T) {
	_, s := hydrated()
	require.NoError(t, s.Set("personal.name", "v1"))
	_, gen := s.BeginSave()
	assert.True(t, s.CompleteSave(gen))
	assert.False(t, s.Dirty())
}

func TestStoreLifecycle(t *testing.T) {
	st, s := hydrated()

	got, err := st.Get(s.ID, s.OwnerID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	st.Close(s.ID, s.OwnerID)
	_, err = st.Get(s.ID, s.OwnerID)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreHidesForeignSessions(t *testing.T) {
	st, s := hydrated()
	stranger := uuid.New()

	_, err := st.Get(s.ID, stranger)
	require.ErrorIs(t, err, ErrSessionNotFound)

	// Чужой Close не закрывает сессию владельца.
	st.Close(s.ID, stranger)
	_, err = st.Get(s.ID, s.OwnerID)
	require.NoError(t, err)
}
