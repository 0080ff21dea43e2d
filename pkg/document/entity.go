package document

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Document — резюме пользователя: владелец, содержимое и отметка времени.
type Document struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Data      Data      `json:"data"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Data — содержимое резюме: упорядоченные секции.
// Порядок элементов в слайсах и есть порядок отображения.
type Data struct {
	Personal   Personal         `json:"personal"`
	Experience []ExperienceItem `json:"experience"`
	Education  []EducationItem  `json:"education"`
	Skills     []Skill          `json:"skills"`
}

// Personal — контактная информация и краткое описание.
type Personal struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

type ExperienceItem struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Start        string `json:"start"` // YYYY-MM or free text
	End          string `json:"end"`   // YYYY-MM or "present"
	Description  string `json:"description"`
}

type EducationItem struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// New возвращает пустое резюме: все секции присутствуют, но пусты.
func New(ownerID uuid.UUID) Document {
	return Document{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Data:      Normalize(Data{}),
		UpdatedAt: time.Now().UTC(),
	}
}

// Common errors used by repository/use cases
var (
	ErrNotFound  = errors.New("document not found")
	ErrForbidden = errors.New("document belongs to another user")
)

// ErrValidation — ошибка формы содержимого резюме.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository — порт доступа к хранимым резюме. Поиск только по первичному ключу.
type Repository interface {
	Create(ctx context.Context, d Document) error
	Get(ctx context.Context, id uuid.UUID) (Document, error)
	// Save пишет data только если ownerID совпадает с владельцем строки.
	Save(ctx context.Context, id, ownerID uuid.UUID, data Data) (Document, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Document, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
