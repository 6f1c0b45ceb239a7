package minio

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/pkg/log"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

// keyPrefix — префикс ключей изображений в бакете.
const keyPrefix = "publications"

// UploadImage загружает изображение в бакет и возвращает публичный URL.
// Валидирует тип и размер согласно конфигу, формирует ключ вида
// "publications/<uuid>.<ext>" (расширение — из исходного имени файла).
func (s *ImagesStorage) UploadImage(ctx context.Context, file models.ImageFile) (string, error) {
	const op = "storage/minio/images/UploadImage"

	size := int64(len(file.Bytes))
	if size <= 0 || size > s.cfg.Image.MaxSizeBytes {
		return "", storage.ErrInvalidArgument
	}

	if !isAllowedContentType(s.cfg.Image.AllowedContentTypes, file.ContentType) {
		return "", storage.ErrInvalidArgument
	}

	key := path.Join(keyPrefix, uuid.NewString()+strings.ToLower(path.Ext(file.Filename)))

	_, err := s.client.PutObject(ctx, s.cfg.S3.Bucket, key,
		bytes.NewReader(file.Bytes), size,
		mclient.PutObjectOptions{ContentType: file.ContentType},
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return s.publicURL(key), nil
}

// DeleteImage удаляет изображение по его публичному URL.
// Best-effort: ошибки (включая чужой/неразборчивый URL) логируются
// и не возвращаются вызывающему — не более одной попытки удаления.
func (s *ImagesStorage) DeleteImage(ctx context.Context, imageURL string) {
	const op = "storage/minio/images/DeleteImage"

	lg := log.From(ctx).With("op", op)

	key := s.keyFromURL(imageURL)
	if key == "" {
		lg.Warn("skip delete: unrecognized image url", "url", imageURL)

		return
	}

	if err := s.client.RemoveObject(ctx, s.cfg.S3.Bucket, key, mclient.RemoveObjectOptions{}); err != nil {
		lg.Warn("image delete failed", "key", key, "err", err)
	}
}

// publicURL собирает публичный URL объекта. Если PublicBaseURL задан —
// используется он, иначе URL строится от endpoint и бакета.
func (s *ImagesStorage) publicURL(key string) string {
	if base := strings.TrimRight(s.cfg.S3.PublicBaseURL, "/"); base != "" {
		return base + "/" + key
	}

	endpoint := strings.TrimRight(s.cfg.S3.Endpoint, "/")
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}

	return endpoint + "/" + s.cfg.S3.Bucket + "/" + key
}

// keyFromURL восстанавливает ключ объекта из публичного URL:
// берёт последний сегмент пути и дополняет его префиксом.
func (s *ImagesStorage) keyFromURL(imageURL string) string {
	idx := strings.LastIndex(imageURL, "/")
	if idx < 0 || idx == len(imageURL)-1 {
		return ""
	}

	return path.Join(keyPrefix, imageURL[idx+1:])
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}
