package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
)

// UserUpdate — частичный апдейт пользователя.
// Обновляются только поля с непустыми указателями; реализация обязана
// сдвигать updated_at.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	ProfileImage *string
}

// Users — контракт репозитория пользователей.
type Users interface {
	// SaveUser создаёт нового пользователя.
	// Возвращает ErrAlreadyExists при конфликте уникальности email.
	SaveUser(ctx context.Context, user *models.User) (*models.User, error)
	// UserByEmail находит пользователя по email (ожидается нормализованный регистр).
	// Возвращает ErrNotFound, если записи нет.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID находит пользователя по идентификатору.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UpdateUser выполняет частичное обновление полей из update.
	// Возвращает ErrNotFound при отсутствии записи и ErrAlreadyExists
	// при конфликте уникальности email.
	UpdateUser(ctx context.Context, id uuid.UUID, update UserUpdate) (*models.User, error)
}
