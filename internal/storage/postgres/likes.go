package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

// scanLike сканирует строку лайка вместе со сводкой пользователя.
func scanLike(row pgx.Row) (*models.Like, error) {
	var like models.Like
	var user models.UserSummary

	if err := row.Scan(
		&like.UserID,
		&like.PublicationID,
		&like.CreatedAt,
		&user.Name,
		&user.ProfileImage,
	); err != nil {
		return nil, err
	}

	user.ID = like.UserID
	like.User = &user

	return &like, nil
}

// SaveLike вставляет запись лайка.
// Ошибки: storage.ErrAlreadyExists при нарушении уникальности пары
// (user_id, publication_id) — первичный ключ таблицы.
func (s *Storage) SaveLike(ctx context.Context, like *models.Like) error {
	const op = "storage/postgres/likes/SaveLike"

	q := `INSERT INTO likes (user_id, publication_id) VALUES ($1, $2)`

	if _, err := s.db.Exec(ctx, q, like.UserID, like.PublicationID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// LikeByUserAndPublication находит лайк по составному ключу.
// Ошибки: storage.ErrNotFound, либо ошибка выполнения запроса.
func (s *Storage) LikeByUserAndPublication(ctx context.Context, userID, publicationID uuid.UUID) (*models.Like, error) {
	const op = "storage/postgres/likes/LikeByUserAndPublication"

	q := `
	SELECT l.user_id, l.publication_id, l.created_at, u.name, u.profile_image
	FROM likes l JOIN users u ON u.id = l.user_id
	WHERE l.user_id = $1 AND l.publication_id = $2
	`

	result, err := scanLike(s.db.QueryRow(ctx, q, userID, publicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// DeleteLike удаляет лайк по составному ключу.
// Ошибки: storage.ErrNotFound, если записи не было.
func (s *Storage) DeleteLike(ctx context.Context, userID, publicationID uuid.UUID) error {
	const op = "storage/postgres/likes/DeleteLike"

	tag, err := s.db.Exec(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND publication_id = $2`,
		userID, publicationID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListLikes возвращает страницу лайков публикации (created_at DESC)
// со сводками пользователей.
func (s *Storage) ListLikes(ctx context.Context, publicationID uuid.UUID, opts storage.PageOptions) ([]models.Like, error) {
	const op = "storage/postgres/likes/ListLikes"

	limit, offset := clamp(opts)

	q := `
	SELECT l.user_id, l.publication_id, l.created_at, u.name, u.profile_image
	FROM likes l JOIN users u ON u.id = l.user_id
	WHERE l.publication_id = $1
	ORDER BY l.created_at DESC
	LIMIT $2 OFFSET $3
	`

	rows, err := s.db.Query(ctx, q, publicationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var likes []models.Like
	for rows.Next() {
		like, err := scanLike(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		likes = append(likes, *like)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return likes, nil
}

// CountLikes возвращает число лайков публикации.
func (s *Storage) CountLikes(ctx context.Context, publicationID uuid.UUID) (int64, error) {
	const op = "storage/postgres/likes/CountLikes"

	var total int64
	if err := s.db.QueryRow(ctx,
		`SELECT count(*) FROM likes WHERE publication_id = $1`, publicationID,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}
