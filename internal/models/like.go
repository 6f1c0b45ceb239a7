package models

import (
	"time"

	"github.com/google/uuid"
)

// Like — отметка «нравится». Составная идентичность (UserID, PublicationID):
// на пару пользователь/публикация существует не более одной записи,
// уникальность гарантируется ограничением БД.
type Like struct {
	UserID        uuid.UUID    `json:"userId"`
	PublicationID uuid.UUID    `json:"publicationId"`
	CreatedAt     time.Time    `json:"createdAt"`
	User          *UserSummary `json:"user,omitempty"`
}

// LikeState — результат переключения лайка.
type LikeState struct {
	Liked bool `json:"liked"`
}
