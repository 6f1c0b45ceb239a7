// models содержит доменные сущности социальной сети.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — внутренняя доменная модель пользователя.
// PasswordHash никогда не сериализуется наружу — клиентам отдаётся
// только санитизированная проекция UserProfile.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	ProfileImage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile возвращает санитизированную проекцию пользователя (без хэша пароля).
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		ProfileImage: u.ProfileImage,
	}
}

// UserProfile — проекция пользователя для ответов API.
type UserProfile struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	ProfileImage string    `json:"profileImage,omitempty"`
}

// UserSummary — краткая сводка об авторе, вкладываемая в публикации,
// комментарии и лайки.
type UserSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ProfileImage string    `json:"profileImage,omitempty"`
}

// AuthPayload — полезная нагрузка успешного логина/регистрации:
// санитизированный пользователь + подписанный токен.
type AuthPayload struct {
	User  *UserProfile `json:"user"`
	Token string       `json:"token"`
}
