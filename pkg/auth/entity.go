package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a system user.
// Учётная запись либо локальная (email+пароль), либо создана неявно
// при первом входе через внешнего провайдера (provider+subject).
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Provider     string // "" для локальных аккаунтов, иначе имя провайдера ("google")
	Subject      string // стабильный subject id из токена провайдера
	CreatedAt    time.Time
}
