package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

// commentColumns — колонки комментария вместе со сводкой автора.
const commentColumns = `
c.id, c.content, c.user_id, c.publication_id, c.created_at, u.name, u.profile_image
`

// scanComment сканирует строку комментария вместе со сводкой автора.
func scanComment(row pgx.Row) (*models.Comment, error) {
	var comment models.Comment
	var user models.UserSummary

	if err := row.Scan(
		&comment.ID,
		&comment.Content,
		&comment.UserID,
		&comment.PublicationID,
		&comment.CreatedAt,
		&user.Name,
		&user.ProfileImage,
	); err != nil {
		return nil, err
	}

	user.ID = comment.UserID
	comment.User = &user

	return &comment, nil
}

// SaveComment вставляет новый комментарий и возвращает его со сводкой автора.
func (s *Storage) SaveComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	const op = "storage/postgres/comments/SaveComment"

	q := `
	WITH c AS (
		INSERT INTO comments (id, content, user_id, publication_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, content, user_id, publication_id, created_at
	)
	SELECT ` + commentColumns + `
	FROM c JOIN users u ON u.id = c.user_id
	`

	row := s.db.QueryRow(ctx, q,
		comment.ID,
		comment.Content,
		comment.UserID,
		comment.PublicationID,
	)

	result, err := scanComment(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ListComments возвращает страницу комментариев публикации (created_at DESC)
// со сводками авторов. Публикация не проверяется на существование:
// для отсутствующей публикации возвращается пустая страница.
func (s *Storage) ListComments(ctx context.Context, publicationID uuid.UUID, opts storage.PageOptions) ([]models.Comment, error) {
	const op = "storage/postgres/comments/ListComments"

	limit, offset := clamp(opts)

	q := `
	SELECT ` + commentColumns + `
	FROM comments c JOIN users u ON u.id = c.user_id
	WHERE c.publication_id = $1
	ORDER BY c.created_at DESC, c.id DESC
	LIMIT $2 OFFSET $3
	`

	rows, err := s.db.Query(ctx, q, publicationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		comments = append(comments, *comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comments, nil
}

// CountComments возвращает число комментариев публикации.
func (s *Storage) CountComments(ctx context.Context, publicationID uuid.UUID) (int64, error) {
	const op = "storage/postgres/comments/CountComments"

	var total int64
	if err := s.db.QueryRow(ctx,
		`SELECT count(*) FROM comments WHERE publication_id = $1`, publicationID,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}
