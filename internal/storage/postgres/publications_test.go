package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

// TestIntegration_SavePublication_ReturnsAuthorSummary — вставка сразу
// возвращает сводку автора и нулевые счётчики.
func TestIntegration_SavePublication_ReturnsAuthorSummary(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	author := seedUser(t, st, "author@example.com")
	p := seedPublication(t, st, author)

	require.NotNil(t, p.Author)
	require.Equal(t, author.ID, p.Author.ID)
	require.Equal(t, author.Name, p.Author.Name)
	require.Zero(t, p.LikeCount)
	require.Zero(t, p.CommentCount)
	require.False(t, p.CreatedAt.IsZero())
}

// TestIntegration_PublicationByID_LoadsCollections — точечное чтение
// подтягивает полные коллекции лайков и комментариев со сводками.
func TestIntegration_PublicationByID_LoadsCollections(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	author := seedUser(t, st, "author@example.com")
	commenter := seedUser(t, st, "commenter@example.com")
	p := seedPublication(t, st, author)

	_, err := st.SaveComment(context.Background(), &models.Comment{
		ID:            uuid.New(),
		Content:       "First!",
		UserID:        commenter.ID,
		PublicationID: p.ID,
	})
	require.NoError(t, err)

	require.NoError(t, st.SaveLike(context.Background(), &models.Like{
		UserID:        commenter.ID,
		PublicationID: p.ID,
	}))

	got, err := st.PublicationByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	require.Len(t, got.Likes, 1)
	require.Equal(t, int64(1), got.LikeCount)
	require.Equal(t, int64(1), got.CommentCount)
	require.NotNil(t, got.Comments[0].User)
	require.Equal(t, commenter.ID, got.Comments[0].User.ID)
	require.NotNil(t, got.Likes[0].User)
}

// TestIntegration_ListPublications_OrderAndPaging — created_at DESC,
// LIMIT/OFFSET по странице.
func TestIntegration_ListPublications_OrderAndPaging(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	author := seedUser(t, st, "author@example.com")

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		p := seedPublication(t, st, author)
		ids = append(ids, p.ID)
		time.Sleep(10 * time.Millisecond) // разводим created_at
	}

	page1, err := st.ListPublications(context.Background(), storage.PageOptions{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page1, 2)
	// Новые первыми.
	require.Equal(t, ids[2], page1[0].ID)
	require.Equal(t, ids[1], page1[1].ID)

	page2, err := st.ListPublications(context.Background(), storage.PageOptions{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	require.Equal(t, ids[0], page2[0].ID)

	total, err := st.CountPublications(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
}

// TestIntegration_ListPublicationsByAuthor — выборка и счётчик по автору.
func TestIntegration_ListPublicationsByAuthor(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	a := seedUser(t, st, "a@example.com")
	b := seedUser(t, st, "b@example.com")
	seedPublication(t, st, a)
	seedPublication(t, st, a)
	seedPublication(t, st, b)

	pubs, err := st.ListPublicationsByAuthor(context.Background(), a.ID, storage.PageOptions{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, pubs, 2)

	total, err := st.CountPublicationsByAuthor(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
}

// TestIntegration_UpdatePublication_Partial.
func TestIntegration_UpdatePublication_Partial(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	author := seedUser(t, st, "author@example.com")
	p := seedPublication(t, st, author)

	title := "Renamed"
	updated, err := st.UpdatePublication(context.Background(), p.ID, storage.PublicationUpdate{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)
	require.Equal(t, p.Content, updated.Content)
}

// TestIntegration_UpdatePublication_NotFound.
func TestIntegration_UpdatePublication_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	title := "x"
	_, err := st.UpdatePublication(context.Background(), uuid.New(), storage.PublicationUpdate{Title: &title})
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_DeletePublication_Cascade — удаление забирает с собой
// лайки и комментарии; промежуточных состояний не остаётся.
func TestIntegration_DeletePublication_Cascade(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	author := seedUser(t, st, "author@example.com")
	p := seedPublication(t, st, author)

	_, err := st.SaveComment(context.Background(), &models.Comment{
		ID:            uuid.New(),
		Content:       "bye",
		UserID:        author.ID,
		PublicationID: p.ID,
	})
	require.NoError(t, err)
	require.NoError(t, st.SaveLike(context.Background(), &models.Like{
		UserID:        author.ID,
		PublicationID: p.ID,
	}))

	require.NoError(t, st.DeletePublication(context.Background(), p.ID))

	_, err = st.PublicationByID(context.Background(), p.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	comments, err := st.CountComments(context.Background(), p.ID)
	require.NoError(t, err)
	require.Zero(t, comments)

	likes, err := st.CountLikes(context.Background(), p.ID)
	require.NoError(t, err)
	require.Zero(t, likes)
}

// TestIntegration_DeletePublication_NotFound.
func TestIntegration_DeletePublication_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	err := st.DeletePublication(context.Background(), uuid.New())
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
