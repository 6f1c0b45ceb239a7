package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

// publicationColumns — колонки публикации вместе со сводкой автора и счётчиками.
// Используется всеми SELECT-ами, чтобы порядок сканирования был одинаковым.
const publicationColumns = `
p.id, p.title, p.content, p.image, p.author_id, p.created_at, p.updated_at,
u.name, u.profile_image,
(SELECT count(*) FROM likes l WHERE l.publication_id = p.id),
(SELECT count(*) FROM comments c WHERE c.publication_id = p.id)
`

// scanPublication сканирует строку публикации вместе со сводкой автора
// и счётчиками лайков/комментариев.
func scanPublication(row pgx.Row) (*models.Publication, error) {
	var pub models.Publication
	var author models.UserSummary

	if err := row.Scan(
		&pub.ID,
		&pub.Title,
		&pub.Content,
		&pub.Image,
		&pub.AuthorID,
		&pub.CreatedAt,
		&pub.UpdatedAt,
		&author.Name,
		&author.ProfileImage,
		&pub.LikeCount,
		&pub.CommentCount,
	); err != nil {
		return nil, err
	}

	author.ID = pub.AuthorID
	pub.Author = &author

	return &pub, nil
}

// SavePublication вставляет новую публикацию и возвращает её со сводкой автора.
func (s *Storage) SavePublication(ctx context.Context, publication *models.Publication) (*models.Publication, error) {
	const op = "storage/postgres/publications/SavePublication"

	q := `
	WITH p AS (
		INSERT INTO publications (id, title, content, image, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, content, image, author_id, created_at, updated_at
	)
	SELECT ` + publicationColumns + `
	FROM p JOIN users u ON u.id = p.author_id
	`

	row := s.db.QueryRow(ctx, q,
		publication.ID,
		publication.Title,
		publication.Content,
		publication.Image,
		publication.AuthorID,
	)

	result, err := scanPublication(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// PublicationByID возвращает публикацию с автором, полными коллекциями
// лайков и комментариев (со сводками пользователей) и счётчиками.
// Ошибки: storage.ErrNotFound, либо ошибка выполнения запроса.
func (s *Storage) PublicationByID(ctx context.Context, id uuid.UUID) (*models.Publication, error) {
	const op = "storage/postgres/publications/PublicationByID"

	q := `
	SELECT ` + publicationColumns + `
	FROM publications p JOIN users u ON u.id = p.author_id
	WHERE p.id = $1
	`

	result, err := scanPublication(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	likes, err := s.publicationLikes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result.Likes = likes

	comments, err := s.publicationComments(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result.Comments = comments

	return result, nil
}

// publicationLikes загружает все лайки публикации со сводками пользователей.
func (s *Storage) publicationLikes(ctx context.Context, id uuid.UUID) ([]models.Like, error) {
	q := `
	SELECT l.user_id, l.publication_id, l.created_at, u.name, u.profile_image
	FROM likes l JOIN users u ON u.id = l.user_id
	WHERE l.publication_id = $1
	ORDER BY l.created_at DESC
	`

	rows, err := s.db.Query(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []models.Like
	for rows.Next() {
		like, err := scanLike(rows)
		if err != nil {
			return nil, err
		}

		likes = append(likes, *like)
	}

	return likes, rows.Err()
}

// publicationComments загружает все комментарии публикации со сводками авторов.
func (s *Storage) publicationComments(ctx context.Context, id uuid.UUID) ([]models.Comment, error) {
	q := `
	SELECT ` + commentColumns + `
	FROM comments c JOIN users u ON u.id = c.user_id
	WHERE c.publication_id = $1
	ORDER BY c.created_at DESC
	`

	rows, err := s.db.Query(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}

		comments = append(comments, *comment)
	}

	return comments, rows.Err()
}

// ListPublications возвращает страницу публикаций (created_at DESC)
// со сводкой автора и счётчиками.
func (s *Storage) ListPublications(ctx context.Context, opts storage.PageOptions) ([]models.Publication, error) {
	const op = "storage/postgres/publications/ListPublications"

	limit, offset := clamp(opts)

	q := `
	SELECT ` + publicationColumns + `
	FROM publications p JOIN users u ON u.id = p.author_id
	ORDER BY p.created_at DESC, p.id DESC
	LIMIT $1 OFFSET $2
	`

	rows, err := s.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return collectPublications(rows, op)
}

// CountPublications возвращает общее число публикаций.
func (s *Storage) CountPublications(ctx context.Context) (int64, error) {
	const op = "storage/postgres/publications/CountPublications"

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM publications`).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

// ListPublicationsByAuthor возвращает страницу публикаций конкретного автора.
func (s *Storage) ListPublicationsByAuthor(ctx context.Context, authorID uuid.UUID, opts storage.PageOptions) ([]models.Publication, error) {
	const op = "storage/postgres/publications/ListPublicationsByAuthor"

	limit, offset := clamp(opts)

	q := `
	SELECT ` + publicationColumns + `
	FROM publications p JOIN users u ON u.id = p.author_id
	WHERE p.author_id = $1
	ORDER BY p.created_at DESC, p.id DESC
	LIMIT $2 OFFSET $3
	`

	rows, err := s.db.Query(ctx, q, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return collectPublications(rows, op)
}

// CountPublicationsByAuthor возвращает число публикаций конкретного автора.
func (s *Storage) CountPublicationsByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	const op = "storage/postgres/publications/CountPublicationsByAuthor"

	var total int64
	if err := s.db.QueryRow(ctx,
		`SELECT count(*) FROM publications WHERE author_id = $1`, authorID,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

// collectPublications вычитывает все строки результата в срез моделей.
func collectPublications(rows pgx.Rows, op string) ([]models.Publication, error) {
	var pubs []models.Publication
	for rows.Next() {
		pub, err := scanPublication(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		pubs = append(pubs, *pub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pubs, nil
}

// UpdatePublication выполняет частичный апдейт: обновляет только поля,
// указанные непустыми pointer-полями, и всегда сдвигает updated_at = now().
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) UpdatePublication(ctx context.Context, id uuid.UUID, update storage.PublicationUpdate) (*models.Publication, error) {
	const op = "storage/postgres/publications/UpdatePublication"

	sets := []string{"updated_at = now()"}
	args := []any{id}
	count := 1

	if update.Title != nil {
		count++
		sets = append(sets, fmt.Sprintf("title = $%d", count))
		args = append(args, *update.Title)
	}

	if update.Content != nil {
		count++
		sets = append(sets, fmt.Sprintf("content = $%d", count))
		args = append(args, *update.Content)
	}

	if update.Image != nil {
		count++
		sets = append(sets, fmt.Sprintf("image = $%d", count))
		args = append(args, *update.Image)
	}

	q := fmt.Sprintf(`
	WITH p AS (
		UPDATE publications SET %s WHERE id = $1
		RETURNING id, title, content, image, author_id, created_at, updated_at
	)
	SELECT %s FROM p JOIN users u ON u.id = p.author_id
	`, strings.Join(sets, ", "), publicationColumns)

	result, err := scanPublication(s.db.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// DeletePublication атомарно удаляет публикацию вместе с её лайками
// и комментариями: зависимые строки удаляются первыми, всё — в одной
// транзакции, чтобы не наблюдалось промежуточных состояний.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) DeletePublication(ctx context.Context, id uuid.UUID) error {
	const op = "storage/postgres/publications/DeletePublication"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM likes WHERE publication_id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE publication_id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM publications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
