package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/pkg/log"
	"github.com/pribylovaa/go-social-network/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// UpdateUserInput — частичное обновление профиля.
// Обновляются только поля с непустыми указателями; ProfileImage
// задаёт новый файл изображения (старое удаляется из хранилища).
type UpdateUserInput struct {
	Name         *string
	Email        *string
	Password     *string
	ProfileImage *models.ImageFile
}

// Login выполняет вход по email+пароль.
//
// Поведение:
//   - email нормализуется (TrimSpace + ToLower) перед поиском;
//   - отсутствующий пользователь и неверный пароль дают одинаковый отказ
//     "Invalid credentials" — перечисление пользователей невозможно;
//   - при успехе выпускается токен на 7 суток и возвращается
//     санитизированная проекция пользователя.
func (s *Service) Login(ctx context.Context, email, password string) *models.Response {
	const op = "service/auth/Login"

	lg := log.From(ctx).With("op", op)

	user, err := s.db.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("login failed: unknown email")

			return fail(MsgInvalidCredentials)
		}

		lg.Error("storage error on UserByEmail", "err", err)

		return fail(MsgErrLogin)
	}

	if !checkPassword(user.PasswordHash, password) {
		lg.Warn("login failed: password mismatch", "user_id", user.ID.String())

		return fail(MsgInvalidCredentials)
	}

	token, err := s.signToken(user.ID, time.Now().UTC())
	if err != nil {
		lg.Error("token sign failed", "err", err)

		return fail(MsgErrLogin)
	}

	return ok(MsgLoginSuccess, &models.AuthPayload{User: user.Profile(), Token: token})
}

// Register регистрирует нового пользователя.
//
// Поведение:
//   - изображение (если передано) загружается ПЕРЕД созданием записи;
//     неудачная загрузка прерывает регистрацию — запись не создаётся;
//   - пароль хэшируется bcrypt (cost 10);
//   - конфликт уникальности email отдаётся как "Email already in use";
//   - при успехе выпускается токен той же формы, что и у Login.
func (s *Service) Register(ctx context.Context, email, password, name string, image *models.ImageFile) *models.Response {
	const op = "service/auth/Register"

	lg := log.From(ctx).With("op", op)

	var imageURL string
	if image != nil {
		url, err := s.images.UploadImage(ctx, *image)
		if err != nil {
			lg.Warn("image upload failed", "err", err)

			return fail(MsgErrUploadImage)
		}

		imageURL = url
	}

	hash, err := hashPassword(password)
	if err != nil {
		lg.Error("password hash failed", "err", err)

		return fail(MsgErrRegister)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		Name:         name,
		ProfileImage: imageURL,
	}

	saved, err := s.db.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			lg.Warn("email already in use")

			return fail(MsgEmailInUse)
		}

		lg.Error("storage error on SaveUser", "err", err)

		return fail(MsgErrRegister)
	}

	token, err := s.signToken(saved.ID, time.Now().UTC())
	if err != nil {
		lg.Error("token sign failed", "err", err)

		return fail(MsgErrRegister)
	}

	return ok(MsgUserCreated, &models.AuthPayload{User: saved.Profile(), Token: token})
}

// UpdateUser выполняет частичное обновление профиля пользователя.
//
// Поведение:
//   - "User not found", если идентификатор не резолвится;
//   - новый пароль перехэшируется перед записью;
//   - при новом изображении старое сначала удаляется из хранилища
//     (best-effort), затем загружается новое; неудачная загрузка
//     прерывает обновление без частичной записи;
//   - конфликт уникальности email отдаётся как "Email already in use".
func (s *Service) UpdateUser(ctx context.Context, userID uuid.UUID, input UpdateUserInput) *models.Response {
	const op = "service/auth/UpdateUser"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	user, err := s.db.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("user not found")

			return fail(MsgUserNotFound)
		}

		lg.Error("storage error on UserByID", "err", err)

		return fail(MsgErrUpdate)
	}

	upd := storage.UserUpdate{Name: input.Name}

	if input.Email != nil {
		norm := normalizeEmail(*input.Email)
		upd.Email = &norm
	}

	if input.Password != nil {
		hash, err := hashPassword(*input.Password)
		if err != nil {
			lg.Error("password hash failed", "err", err)

			return fail(MsgErrUpdate)
		}

		upd.PasswordHash = &hash
	}

	if input.ProfileImage != nil {
		if user.ProfileImage != "" {
			s.images.DeleteImage(ctx, user.ProfileImage)
		}

		url, err := s.images.UploadImage(ctx, *input.ProfileImage)
		if err != nil {
			lg.Warn("profile image upload failed", "err", err)

			return fail(MsgErrUploadProfileImage)
		}

		upd.ProfileImage = &url
	}

	updated, err := s.db.UpdateUser(ctx, userID, upd)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("email already in use")

			return fail(MsgEmailInUse)
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found on update")

			return fail(MsgUserNotFound)
		default:
			lg.Error("storage error on UpdateUser", "err", err)

			return fail(MsgErrUpdate)
		}
	}

	return ok(MsgUserUpdated, updated.Profile())
}

// normalizeEmail приводит email к каноническому виду для поиска и хранения.
func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
