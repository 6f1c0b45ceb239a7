// http собирает REST-роутер сервиса: chi + middleware + обработчики.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-social-network/internal/service"
	"github.com/pribylovaa/go-social-network/internal/transport/http/handlers"
	"github.com/pribylovaa/go-social-network/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, svc)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, svc)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, verifier middleware.TokenVerifier) {
	// Публичные маршруты.
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)

	r.Get("/publications", h.ListPublications)
	r.Get("/publications/{id}", h.GetPublication)
	r.Get("/publications/{id}/comments", h.ListComments)
	r.Get("/publications/{id}/likes", h.ListLikes)
	r.Get("/users/{id}/publications", h.ListUserPublications)

	// Маршруты с обязательной авторизацией.
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth(verifier))

		pr.Put("/auth/profile", h.UpdateProfile)

		pr.Post("/publications", h.CreatePublication)
		pr.Put("/publications/{id}", h.UpdatePublication)
		pr.Delete("/publications/{id}", h.DeletePublication)

		pr.Post("/publications/{id}/comments", h.AddComment)
		pr.Post("/publications/{id}/like", h.ToggleLike)
	})
}
