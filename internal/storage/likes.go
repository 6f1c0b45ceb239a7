package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
)

// Likes — контракт репозитория лайков.
type Likes interface {
	// SaveLike создаёт запись лайка.
	// Возвращает ErrAlreadyExists при нарушении уникальности пары
	// (user_id, publication_id) — на этом строится разрешение гонки toggle.
	SaveLike(ctx context.Context, like *models.Like) error
	// LikeByUserAndPublication находит лайк по составному ключу.
	// ErrNotFound, если записи нет.
	LikeByUserAndPublication(ctx context.Context, userID, publicationID uuid.UUID) (*models.Like, error)
	// DeleteLike удаляет лайк по составному ключу. ErrNotFound, если записи нет.
	DeleteLike(ctx context.Context, userID, publicationID uuid.UUID) error
	// ListLikes возвращает страницу лайков публикации (created_at DESC)
	// со сводками пользователей.
	ListLikes(ctx context.Context, publicationID uuid.UUID, opts PageOptions) ([]models.Like, error)
	// CountLikes возвращает число лайков публикации.
	CountLikes(ctx context.Context, publicationID uuid.UUID) (int64, error)
}
