package storage

import (
	"context"

	"github.com/pribylovaa/go-social-network/internal/models"
)

// Images — контракт объектного хранилища изображений.
type Images interface {
	// UploadImage загружает изображение и возвращает его публичный URL.
	// Ошибка сигнализирует о неудачной загрузке; частично загруженных
	// объектов после ошибки не остаётся.
	UploadImage(ctx context.Context, file models.ImageFile) (string, error)
	// DeleteImage удаляет изображение по его публичному URL.
	// Best-effort: ошибки логируются и не возвращаются вызывающему,
	// политика «не более одной попытки удаления».
	DeleteImage(ctx context.Context, imageURL string)
}

// ImagesStorage — алиас-обёртка для внедрения зависимости.
type ImagesStorage interface {
	Images
}
