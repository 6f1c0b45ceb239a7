package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
)

// Comments — контракт репозитория комментариев.
type Comments interface {
	// SaveComment создаёт комментарий и возвращает его со сводкой автора.
	SaveComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	// ListComments возвращает страницу комментариев публикации
	// (created_at DESC) со сводками авторов.
	ListComments(ctx context.Context, publicationID uuid.UUID, opts PageOptions) ([]models.Comment, error)
	// CountComments возвращает число комментариев публикации.
	CountComments(ctx context.Context, publicationID uuid.UUID) (int64, error)
}
