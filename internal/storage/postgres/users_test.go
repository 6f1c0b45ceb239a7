package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

// TestIntegration_SaveUser_And_Lookup_OK — happy-path: создание и поиск
// по email и ID; RETURNING заполняет таймстемпы.
func TestIntegration_SaveUser_And_Lookup_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := seedUser(t, st, "user@example.com")
	require.False(t, u.CreatedAt.IsZero())
	require.False(t, u.UpdatedAt.IsZero())

	byEmail, err := st.UserByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	byID, err := st.UserByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)
}

// TestIntegration_SaveUser_UniqueEmail_CaseInsensitive — CITEXT:
// конфликт уникальности при различии только в регистре.
func TestIntegration_SaveUser_UniqueEmail_CaseInsensitive(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	seedUser(t, st, "user@example.com")

	_, err := st.SaveUser(context.Background(), &models.User{
		ID:           uuid.New(),
		Email:        "USER@EXAMPLE.COM", // тот же email, другой регистр
		PasswordHash: "h2",
		Name:         "Dup",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

// TestIntegration_UserLookup_NotFound.
func TestIntegration_UserLookup_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.UserByEmail(context.Background(), "absent@example.com")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.UserByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_UpdateUser_Partial — обновляются только переданные поля,
// updated_at сдвигается.
func TestIntegration_UpdateUser_Partial(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := seedUser(t, st, "user@example.com")

	newName := "Renamed"
	updated, err := st.UpdateUser(context.Background(), u.ID, storage.UserUpdate{Name: &newName})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, u.Email, updated.Email)
	require.True(t, updated.UpdatedAt.After(u.UpdatedAt) || updated.UpdatedAt.Equal(u.UpdatedAt))
}

// TestIntegration_UpdateUser_EmailConflict — смена email на занятый.
func TestIntegration_UpdateUser_EmailConflict(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	seedUser(t, st, "taken@example.com")
	u := seedUser(t, st, "user@example.com")

	taken := "taken@example.com"
	_, err := st.UpdateUser(context.Background(), u.ID, storage.UserUpdate{Email: &taken})
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

// TestIntegration_UpdateUser_NotFound.
func TestIntegration_UpdateUser_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	name := "Ghost"
	_, err := st.UpdateUser(context.Background(), uuid.New(), storage.UserUpdate{Name: &name})
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_UserQueries_ContextCanceled — отменённый контекст
// «просачивается» в ошибки чтения как context.Canceled.
func TestIntegration_UserQueries_ContextCanceled(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // отменяем заранее

	_, err := st.UserByEmail(ctx, "user@example.com")
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}
