package editor

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/artem13815/cvforge/pkg/document"
)

// ErrSessionNotFound возвращается для закрытой или несуществующей сессии.
var ErrSessionNotFound = errors.New("editor session not found")

// Store — реестр открытых сессий редактора. Одна область владения на
// каждую открытую сессию: сессии не разделяются между документами и
// не доступны глобально, только через явную передачу Store.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*Session)}
}

// Open создаёт сессию, гидратированную содержимым документа, от имени
// principal-а ownerID.
func (st *Store) Open(docID, ownerID uuid.UUID, data document.Data) *Session {
	s := newSession(docID, ownerID, data)
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get возвращает сессию её владельцу. Чужой requesterID получает
// ErrSessionNotFound: существование чужих сессий не раскрывается.
func (st *Store) Get(id, requesterID uuid.UUID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok || s.OwnerID != requesterID {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close удаляет сессию владельца; несохранённые правки отбрасываются.
func (st *Store) Close(id, requesterID uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok && s.OwnerID == requesterID {
		delete(st.sessions, id)
	}
}
