package editor

import (
	"sync"

	"github.com/google/uuid"

	"github.com/artem13815/cvforge/pkg/document"
)

// Session — изменяемая копия одного резюме на время редактирования.
// Единственный писатель на сессию; все операции защищены мьютексом.
// Состояния: clean/dirty. Set -> dirty, успешный save -> clean,
// Reset -> clean.
type Session struct {
	ID         uuid.UUID
	DocumentID uuid.UUID
	// OwnerID — principal, открывший сессию; чужим запросам сессия
	// недоступна.
	OwnerID uuid.UUID

	mu    sync.Mutex
	data  document.Data
	dirty bool
	// gen растёт на каждой мутации; защищает от применения
	// устаревшего ответа сохранения после Reset или новых правок.
	gen uint64
}

func newSession(docID, ownerID uuid.UUID, data document.Data) *Session {
	return &Session{
		ID:         uuid.New(),
		DocumentID: docID,
		OwnerID:    ownerID,
		data:       cloneData(document.Normalize(data)),
	}
}

// Set заменяет ровно одно поле по адресу path и помечает сессию dirty.
// Ошибка пути оставляет состояние нетронутым.
func (s *Session) Set(path, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := setField(&s.data, path, value); err != nil {
		return err
	}
	s.dirty = true
	s.gen++
	return nil
}

// Reset заменяет всё содержимое и снимает флаг dirty.
func (s *Session) Reset(data document.Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = cloneData(document.Normalize(data))
	s.dirty = false
	s.gen++
}

// Snapshot возвращает глубокую копию текущего содержимого.
func (s *Session) Snapshot() document.Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneData(s.data)
}

func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// BeginSave снимает снапшот для отправки и токен поколения.
// Сохранение всегда передаёт именно этот снапшот, а не ссылку на
// всё ещё изменяемое состояние.
func (s *Session) BeginSave() (document.Data, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneData(s.data), s.gen
}

// CompleteSave применяет успешный ответ сохранения. Если с момента
// BeginSave состояние менялось (правка или Reset), ответ устарел и
// отбрасывается: возвращается false, флаг dirty не трогается.
func (s *Session) CompleteSave(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return false
	}
	s.dirty = false
	return true
}

func cloneData(d document.Data) document.Data {
	out := d
	out.Experience = append([]document.ExperienceItem{}, d.Experience...)
	out.Education = append([]document.EducationItem{}, d.Education...)
	out.Skills = append([]document.Skill{}, d.Skills...)
	return out
}
