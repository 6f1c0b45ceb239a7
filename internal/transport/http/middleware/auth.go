package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/service"
)

// TokenVerifier проверяет токен доступа и возвращает идентификатор пользователя.
type TokenVerifier interface {
	VerifyToken(token string) (uuid.UUID, error)
}

// RequireAuth извлекает Bearer-токен из Authorization, проверяет его
// и кладёт идентификатор пользователя в контекст. Запрос без валидного
// токена отклоняется конвертом с 401.
func RequireAuth(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeUnauthorized(w, "Authentication required")
				return
			}

			userID, err := verifier.VerifyToken(token)
			if err != nil {
				if errors.Is(err, service.ErrTokenExpired) {
					writeUnauthorized(w, "Token expired")
					return
				}

				writeUnauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFrom возвращает идентификатор пользователя из контекста запроса.
// Второе значение false, если запрос не проходил RequireAuth.
func UserIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxUserID).(uuid.UUID)
	return id, ok
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")

	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) || len(auth) <= len(prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(&models.Response{
		Success: false,
		Message: message,
	})
}
