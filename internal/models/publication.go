package models

import (
	"time"

	"github.com/google/uuid"
)

// Publication — публикация (пост) пользователя.
// Author/Likes/Comments заполняются хранилищем при чтении:
// списки несут автора и счётчики, точечное чтение — полные коллекции.
type Publication struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Content      string       `json:"content"`
	Image        string       `json:"image,omitempty"`
	AuthorID     uuid.UUID    `json:"authorId"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	Author       *UserSummary `json:"author,omitempty"`
	Likes        []Like       `json:"likes,omitempty"`
	Comments     []Comment    `json:"comments,omitempty"`
	LikeCount    int64        `json:"likeCount"`
	CommentCount int64        `json:"commentCount"`
}
