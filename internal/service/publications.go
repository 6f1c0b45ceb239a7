package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/pkg/log"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

// UpdatePublicationInput — частичное обновление публикации.
type UpdatePublicationInput struct {
	Title   *string
	Content *string
}

// countResult — результат фонового подсчёта для списочных операций.
type countResult struct {
	total int64
	err   error
}

// CreatePublication создаёт публикацию от имени authorID.
//
// Поведение:
//   - изображение (если передано) загружается ПЕРЕД созданием записи;
//     неудачная загрузка прерывает операцию — запись не создаётся;
//   - при успехе возвращается запись со сводкой автора.
func (s *Service) CreatePublication(ctx context.Context, title, content string, authorID uuid.UUID, image *models.ImageFile) *models.Response {
	const op = "service/publications/CreatePublication"

	lg := log.From(ctx).With("op", op, "author_id", authorID.String())

	var imageURL string
	if image != nil {
		url, err := s.images.UploadImage(ctx, *image)
		if err != nil {
			lg.Warn("image upload failed", "err", err)

			return fail(MsgErrUploadImage)
		}

		imageURL = url
	}

	pub := &models.Publication{
		ID:       uuid.New(),
		Title:    title,
		Content:  content,
		Image:    imageURL,
		AuthorID: authorID,
	}

	saved, err := s.db.SavePublication(ctx, pub)
	if err != nil {
		lg.Error("storage error on SavePublication", "err", err)

		return fail(MsgErrCreatePublication)
	}

	return ok(MsgPublicationCreated, saved)
}

// GetAllPublications возвращает страницу публикаций с блоком пагинации.
// Выборка страницы и подсчёт общего числа записей идут параллельно —
// у них нет зависимости по данным, результат ждёт обоих.
func (s *Service) GetAllPublications(ctx context.Context, page, limit int) *models.Response {
	const op = "service/publications/GetAllPublications"

	lg := log.From(ctx).With("op", op, "page", page, "limit", limit)

	countCh := make(chan countResult, 1)
	go func() {
		total, err := s.db.CountPublications(ctx)
		countCh <- countResult{total: total, err: err}
	}()

	pubs, err := s.db.ListPublications(ctx, storage.PageOptions{Page: page, Limit: limit})
	cnt := <-countCh

	if err != nil {
		lg.Error("storage error on ListPublications", "err", err)

		return fail(MsgErrRetrievePublications)
	}

	if cnt.err != nil {
		lg.Error("storage error on CountPublications", "err", cnt.err)

		return fail(MsgErrRetrievePublications)
	}

	if pubs == nil {
		pubs = []models.Publication{}
	}

	return paged(MsgPublicationsRetrieved, pubs, models.NewPagination(cnt.total, page, limit))
}

// GetPublicationByID возвращает публикацию с автором, лайками
// и комментариями (со сводками пользователей).
func (s *Service) GetPublicationByID(ctx context.Context, id uuid.UUID) *models.Response {
	const op = "service/publications/GetPublicationByID"

	lg := log.From(ctx).With("op", op, "publication_id", id.String())

	pub, err := s.db.PublicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("publication not found")

			return fail(MsgPublicationNotFound)
		}

		lg.Error("storage error on PublicationByID", "err", err)

		return fail(MsgErrRetrievePublication)
	}

	return ok(MsgPublicationRetrieved, pub)
}

// UpdatePublication обновляет публикацию от имени userID.
// Проверка существования и владения строго предшествует мутации;
// частичного применения не бывает.
func (s *Service) UpdatePublication(ctx context.Context, id uuid.UUID, input UpdatePublicationInput, userID uuid.UUID) *models.Response {
	const op = "service/publications/UpdatePublication"

	lg := log.From(ctx).With("op", op, "publication_id", id.String(), "user_id", userID.String())

	pub, err := s.db.PublicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("publication not found")

			return fail(MsgPublicationNotFound)
		}

		lg.Error("storage error on PublicationByID", "err", err)

		return fail(MsgErrUpdatePublication)
	}

	if pub.AuthorID != userID {
		lg.Warn("update rejected: not the author", "author_id", pub.AuthorID.String())

		return fail(MsgNotAuthorizedUpdate)
	}

	updated, err := s.db.UpdatePublication(ctx, id, storage.PublicationUpdate{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("publication vanished before update")

			return fail(MsgPublicationNotFound)
		}

		lg.Error("storage error on UpdatePublication", "err", err)

		return fail(MsgErrUpdatePublication)
	}

	return ok(MsgPublicationUpdated, updated)
}

// DeletePublication удаляет публикацию от имени userID.
//
// Поведение:
//   - проверки существования и владения предшествуют любым побочным эффектам;
//   - изображение (если есть) удаляется из объектного хранилища best-effort —
//     ошибки хранилища проглатываются по его же fail-soft контракту;
//   - запись удаляется атомарно вместе с лайками и комментариями.
func (s *Service) DeletePublication(ctx context.Context, id, userID uuid.UUID) *models.Response {
	const op = "service/publications/DeletePublication"

	lg := log.From(ctx).With("op", op, "publication_id", id.String(), "user_id", userID.String())

	pub, err := s.db.PublicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("publication not found")

			return fail(MsgPublicationNotFound)
		}

		lg.Error("storage error on PublicationByID", "err", err)

		return fail(MsgErrDeletePublication)
	}

	if pub.AuthorID != userID {
		lg.Warn("delete rejected: not the author", "author_id", pub.AuthorID.String())

		return fail(MsgNotAuthorizedDelete)
	}

	if pub.Image != "" {
		s.images.DeleteImage(ctx, pub.Image)
	}

	if err := s.db.DeletePublication(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("publication vanished before delete")

			return fail(MsgPublicationNotFound)
		}

		lg.Error("storage error on DeletePublication", "err", err)

		return fail(MsgErrDeletePublication)
	}

	return ok(MsgPublicationDeleted, nil)
}

// GetPublicationsByUserID возвращает страницу публикаций автора
// с блоком пагинации; выборка и подсчёт идут параллельно.
func (s *Service) GetPublicationsByUserID(ctx context.Context, userID uuid.UUID, page, limit int) *models.Response {
	const op = "service/publications/GetPublicationsByUserID"

	lg := log.From(ctx).With("op", op, "user_id", userID.String(), "page", page, "limit", limit)

	countCh := make(chan countResult, 1)
	go func() {
		total, err := s.db.CountPublicationsByAuthor(ctx, userID)
		countCh <- countResult{total: total, err: err}
	}()

	pubs, err := s.db.ListPublicationsByAuthor(ctx, userID, storage.PageOptions{Page: page, Limit: limit})
	cnt := <-countCh

	if err != nil {
		lg.Error("storage error on ListPublicationsByAuthor", "err", err)

		return fail(MsgErrRetrievePublications)
	}

	if cnt.err != nil {
		lg.Error("storage error on CountPublicationsByAuthor", "err", cnt.err)

		return fail(MsgErrRetrievePublications)
	}

	if pubs == nil {
		pubs = []models.Publication{}
	}

	return paged(MsgPublicationsRetrieved, pubs, models.NewPagination(cnt.total, page, limit))
}

// AddComment добавляет комментарий к существующей публикации.
// Отсутствие публикации — отказ "Publication not found".
func (s *Service) AddComment(ctx context.Context, publicationID, userID uuid.UUID, content string) *models.Response {
	const op = "service/publications/AddComment"

	lg := log.From(ctx).With("op", op, "publication_id", publicationID.String(), "user_id", userID.String())

	if _, err := s.db.PublicationByID(ctx, publicationID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("publication not found")

			return fail(MsgPublicationNotFound)
		}

		lg.Error("storage error on PublicationByID", "err", err)

		return fail(MsgErrAddComment)
	}

	comment := &models.Comment{
		ID:            uuid.New(),
		Content:       content,
		UserID:        userID,
		PublicationID: publicationID,
	}

	saved, err := s.db.SaveComment(ctx, comment)
	if err != nil {
		lg.Error("storage error on SaveComment", "err", err)

		return fail(MsgErrAddComment)
	}

	return ok(MsgCommentAdded, saved)
}

// GetPublicationComments возвращает страницу комментариев публикации
// (новые первыми) с блоком пагинации.
//
// Существование публикации намеренно НЕ проверяется: для отсутствующей
// публикации возвращается пустая страница, а не отказ — асимметрия
// с AddComment сохранена как задокументированное поведение.
func (s *Service) GetPublicationComments(ctx context.Context, publicationID uuid.UUID, page, limit int) *models.Response {
	const op = "service/publications/GetPublicationComments"

	lg := log.From(ctx).With("op", op, "publication_id", publicationID.String(), "page", page, "limit", limit)

	countCh := make(chan countResult, 1)
	go func() {
		total, err := s.db.CountComments(ctx, publicationID)
		countCh <- countResult{total: total, err: err}
	}()

	comments, err := s.db.ListComments(ctx, publicationID, storage.PageOptions{Page: page, Limit: limit})
	cnt := <-countCh

	if err != nil {
		lg.Error("storage error on ListComments", "err", err)

		return fail(MsgErrRetrieveComments)
	}

	if cnt.err != nil {
		lg.Error("storage error on CountComments", "err", cnt.err)

		return fail(MsgErrRetrieveComments)
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	return paged(MsgCommentsRetrieved, comments, models.NewPagination(cnt.total, page, limit))
}

// ToggleLike переключает лайк пары (userID, publicationID):
// существующий лайк снимается, отсутствующий — ставится.
//
// Гонка конкурентных переключений разрешается уникальным ограничением БД:
// проигравший вставку запрос получает конфликт и детерминированно
// переключается на ветку снятия лайка.
func (s *Service) ToggleLike(ctx context.Context, publicationID, userID uuid.UUID) *models.Response {
	const op = "service/publications/ToggleLike"

	lg := log.From(ctx).With("op", op, "publication_id", publicationID.String(), "user_id", userID.String())

	if _, err := s.db.PublicationByID(ctx, publicationID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("publication not found")

			return fail(MsgPublicationNotFound)
		}

		lg.Error("storage error on PublicationByID", "err", err)

		return fail(MsgErrToggleLike)
	}

	_, err := s.db.LikeByUserAndPublication(ctx, userID, publicationID)
	switch {
	case err == nil:
		return s.removeLike(ctx, publicationID, userID)
	case errors.Is(err, storage.ErrNotFound):
		// Лайка нет — ставим.
	default:
		lg.Error("storage error on LikeByUserAndPublication", "err", err)

		return fail(MsgErrToggleLike)
	}

	saveErr := s.db.SaveLike(ctx, &models.Like{UserID: userID, PublicationID: publicationID})
	if saveErr != nil {
		if errors.Is(saveErr, storage.ErrAlreadyExists) {
			// Конкурентный запрос успел вставить лайк первым — снимаем его.
			return s.removeLike(ctx, publicationID, userID)
		}

		lg.Error("storage error on SaveLike", "err", saveErr)

		return fail(MsgErrToggleLike)
	}

	return ok(MsgLikeAdded, &models.LikeState{Liked: true})
}

// removeLike — ветка снятия лайка. Пропавшая под конкурентным запросом
// запись считается успешно снятой.
func (s *Service) removeLike(ctx context.Context, publicationID, userID uuid.UUID) *models.Response {
	const op = "service/publications/removeLike"

	if err := s.db.DeleteLike(ctx, userID, publicationID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.From(ctx).Error("storage error on DeleteLike", "op", op, "err", err)

		return fail(MsgErrToggleLike)
	}

	return ok(MsgLikeRemoved, &models.LikeState{Liked: false})
}

// GetPublicationLikes возвращает страницу лайков публикации
// (новые первыми) с блоком пагинации.
func (s *Service) GetPublicationLikes(ctx context.Context, publicationID uuid.UUID, page, limit int) *models.Response {
	const op = "service/publications/GetPublicationLikes"

	lg := log.From(ctx).With("op", op, "publication_id", publicationID.String(), "page", page, "limit", limit)

	countCh := make(chan countResult, 1)
	go func() {
		total, err := s.db.CountLikes(ctx, publicationID)
		countCh <- countResult{total: total, err: err}
	}()

	likes, err := s.db.ListLikes(ctx, publicationID, storage.PageOptions{Page: page, Limit: limit})
	cnt := <-countCh

	if err != nil {
		lg.Error("storage error on ListLikes", "err", err)

		return fail(MsgErrRetrieveLikes)
	}

	if cnt.err != nil {
		lg.Error("storage error on CountLikes", "err", cnt.err)

		return fail(MsgErrRetrieveLikes)
	}

	if likes == nil {
		likes = []models.Like{}
	}

	return paged(MsgLikesRetrieved, likes, models.NewPagination(cnt.total, page, limit))
}
