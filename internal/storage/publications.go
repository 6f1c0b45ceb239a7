package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
)

// PublicationUpdate — частичный апдейт публикации.
type PublicationUpdate struct {
	Title   *string
	Content *string
	Image   *string
}

// Publications — контракт репозитория публикаций.
// Списочные операции отсортированы по created_at DESC и принимают PageOptions.
type Publications interface {
	// SavePublication создаёт публикацию и возвращает её со сводкой автора.
	SavePublication(ctx context.Context, publication *models.Publication) (*models.Publication, error)
	// PublicationByID возвращает публикацию с автором, лайками и комментариями
	// (включая сводки пользователей) и счётчиками. ErrNotFound, если записи нет.
	PublicationByID(ctx context.Context, id uuid.UUID) (*models.Publication, error)
	// ListPublications возвращает страницу публикаций со сводкой автора и счётчиками.
	ListPublications(ctx context.Context, opts PageOptions) ([]models.Publication, error)
	// CountPublications возвращает общее число публикаций.
	CountPublications(ctx context.Context) (int64, error)
	// ListPublicationsByAuthor — страница публикаций конкретного автора.
	ListPublicationsByAuthor(ctx context.Context, authorID uuid.UUID, opts PageOptions) ([]models.Publication, error)
	// CountPublicationsByAuthor — число публикаций конкретного автора.
	CountPublicationsByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error)
	// UpdatePublication выполняет частичное обновление. ErrNotFound при отсутствии записи.
	UpdatePublication(ctx context.Context, id uuid.UUID, update PublicationUpdate) (*models.Publication, error)
	// DeletePublication атомарно удаляет публикацию вместе с её лайками
	// и комментариями (одна транзакция). ErrNotFound при отсутствии записи.
	DeletePublication(ctx context.Context, id uuid.UUID) error
}
