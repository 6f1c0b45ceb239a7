// storage содержит контракты слоя хранилищ сервиса.
//
// users.go — операции над пользователями (создание/поиск/частичное обновление);
// publications.go — операции над публикациями, включая каскадное удаление;
// comments.go — комментарии к публикациям;
// likes.go — лайки с составным ключом (user_id, publication_id);
// images.go — контракт объектного хранилища изображений (S3/MinIO).
package storage

import "errors"

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email / пара user+publication).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument — нарушены ограничения запроса (тип/размер файла).
	ErrInvalidArgument = errors.New("invalid argument")
)

// PageOptions — параметры offset-пагинации списочных запросов.
// Page/Limit — 1-based; Skip вычисляется как (page-1)*limit.
type PageOptions struct {
	Page  int
	Limit int
}

// Skip возвращает смещение для OFFSET.
func (p PageOptions) Skip() int {
	return (p.Page - 1) * p.Limit
}

// Storage — верхнеуровневый контракт реляционного хранилища.
type Storage interface {
	Users
	Publications
	Comments
	Likes
	Close()
}
