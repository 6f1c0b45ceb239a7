// postgres предоставляет реализацию storage.Storage на базе PostgreSQL.
//
// users.go — пользователи (уникальность email на уровне БД);
// publications.go — публикации с жадной подгрузкой сводки автора и счётчиков;
// comments.go — комментарии;
// likes.go — лайки с составным первичным ключом (user_id, publication_id).
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

type Storage struct {
	db *pgxpool.Pool
}

// New создаёт и инициализирует пул соединений к PostgreSQL.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage/postgres/New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Close закрывает пул соединений.
// Должен вызываться при остановке приложения.
func (s *Storage) Close() {
	s.db.Close()
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Storage)(nil)

// clamp приводит параметры пагинации к безопасным для SQL значениям:
// LIMIT >= 1, OFFSET >= 0. Семантика конверта пагинации при этом
// остаётся на вызывающем — сюда попадают только параметры запроса.
func clamp(opts storage.PageOptions) (limit, offset int) {
	limit = opts.Limit
	if limit <= 0 {
		limit = 1
	}

	offset = opts.Skip()
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
