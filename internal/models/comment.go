package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment — комментарий к публикации.
// User — краткая сводка об авторе комментария (заполняется при чтении).
type Comment struct {
	ID            uuid.UUID    `json:"id"`
	Content       string       `json:"content"`
	UserID        uuid.UUID    `json:"userId"`
	PublicationID uuid.UUID    `json:"publicationId"`
	CreatedAt     time.Time    `json:"createdAt"`
	User          *UserSummary `json:"user,omitempty"`
}
