// service содержит бизнес-логику социальной сети:
// аутентификацию/регистрацию/обновление профиля (auth.go),
// CRUD публикаций с комментариями и лайками (publications.go)
// и выпуск/проверку токенов (token.go).
//
// Основные аспекты:
//   - Каждая операция возвращает единый конверт models.Response и является
//     изолированной единицей работы: внутренние ошибки перехватываются,
//     логируются и превращаются в конверт с Success=false — наружу
//     не уходит ни одного необработанного fault.
//   - Проверки существования и авторизации всегда предшествуют мутациям.
//   - Экземпляр Service безопасен для конкурентного использования при условии,
//     что переданные хранилища потокобезопасны.
package service

import (
	"errors"

	"github.com/pribylovaa/go-social-network/internal/config"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

// Сообщения конверта. Транспорт подбирает HTTP-статус по сообщению,
// сам конверт от статуса не зависит.
const (
	MsgLoginSuccess       = "Login successful"
	MsgInvalidCredentials = "Invalid credentials"
	MsgErrLogin           = "Error logging in"

	MsgUserCreated           = "User created successfully"
	MsgEmailInUse            = "Email already in use"
	MsgErrRegister           = "Error registering user"
	MsgErrUploadImage        = "Error uploading image"
	MsgErrUploadProfileImage = "Error uploading profile image"

	MsgUserUpdated  = "User updated successfully"
	MsgUserNotFound = "User not found"
	MsgErrUpdate    = "Error updating user"

	MsgPublicationCreated   = "Publication created successfully"
	MsgErrCreatePublication = "Error creating publication"

	MsgPublicationsRetrieved   = "Publications retrieved successfully"
	MsgErrRetrievePublications = "Error retrieving publications"

	MsgPublicationRetrieved   = "Publication retrieved successfully"
	MsgPublicationNotFound    = "Publication not found"
	MsgErrRetrievePublication = "Error retrieving publication"

	MsgPublicationUpdated   = "Publication updated successfully"
	MsgNotAuthorizedUpdate  = "You are not authorized to update this publication"
	MsgErrUpdatePublication = "Error updating publication"

	MsgPublicationDeleted   = "Publication deleted successfully"
	MsgNotAuthorizedDelete  = "You are not authorized to delete this publication"
	MsgErrDeletePublication = "Error deleting publication"

	MsgCommentAdded        = "Comment added successfully"
	MsgErrAddComment       = "Error adding comment"
	MsgCommentsRetrieved   = "Comments retrieved successfully"
	MsgErrRetrieveComments = "Error retrieving comments"

	MsgLikeAdded        = "Like added successfully"
	MsgLikeRemoved      = "Like removed successfully"
	MsgErrToggleLike    = "Error toggling like"
	MsgLikesRetrieved   = "Likes retrieved successfully"
	MsgErrRetrieveLikes = "Error retrieving likes"
)

var (
	// ErrInvalidToken — токен некорректен по формату/подписи.
	// Транспорт: HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк.
	// Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")
)

// Service описывает бизнес-логику сервиса.
type Service struct {
	db     storage.Storage
	images storage.ImagesStorage
	cfg    *config.Config
}

// New создаёт новый экземпляр Service.
func New(db storage.Storage, images storage.ImagesStorage, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		images: images,
		cfg:    cfg,
	}
}

// ok собирает успешный конверт.
func ok(message string, data any) *models.Response {
	return &models.Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// fail собирает конверт ожидаемого отказа; Data всегда null.
func fail(message string) *models.Response {
	return &models.Response{
		Success: false,
		Message: message,
		Data:    nil,
	}
}

// paged собирает успешный конверт списочного ответа с блоком пагинации.
func paged(message string, data any, p *models.Pagination) *models.Response {
	return &models.Response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: p,
	}
}
