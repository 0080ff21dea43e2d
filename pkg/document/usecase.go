package document

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// UseCase инкапсулирует жизненный цикл резюме: создание, загрузка, сохранение.
type UseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID) (Document, error)
	// Import создаёт резюме, предзаполненное текстом из загруженного файла.
	Import(ctx context.Context, ownerID uuid.UUID, filename string, raw []byte) (Document, error)
	Get(ctx context.Context, id uuid.UUID) (Document, error)
	// Save валидирует сырой payload по схеме и пишет его, если ownerID — владелец.
	Save(ctx context.Context, id, ownerID uuid.UUID, raw []byte) (Document, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Document, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService returns default implementation of UseCase.
func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, ownerID uuid.UUID) (Document, error) {
	d := New(ownerID)
	if err := s.repo.Create(ctx, d); err != nil {
		return Document{}, err
	}
	return d, nil
}

func (s *service) Import(ctx context.Context, ownerID uuid.UUID, filename string, raw []byte) (Document, error) {
	data, err := ImportData(filename, raw)
	if err != nil {
		return Document{}, ErrValidation(err.Error())
	}
	d := New(ownerID)
	d.Data = data
	if err := s.repo.Create(ctx, d); err != nil {
		return Document{}, err
	}
	return d, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Document, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Save(ctx context.Context, id, ownerID uuid.UUID, raw []byte) (Document, error) {
	// Отклоняем невалидный payload до любой записи, чтобы не испортить
	// ранее валидное содержимое.
	if err := ValidateJSON(raw); err != nil {
		return Document{}, err
	}
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return Document{}, ErrValidation(err.Error())
	}
	return s.repo.Save(ctx, id, ownerID, Normalize(data))
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Document, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}
