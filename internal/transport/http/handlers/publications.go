package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/service"
	"github.com/pribylovaa/go-social-network/internal/transport/http/middleware"
)

type updatePublicationRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type addCommentRequest struct {
	Content string `json:"content"`
}

// CreatePublication — POST /publications (требует авторизации).
// Принимает JSON либо multipart/form-data (поля title/content
// плюс необязательный файл image).
func (h *Handlers) CreatePublication(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeEnvelope(w, &models.Response{Success: false, Message: service.MsgErrCreatePublication})
		return
	}

	var (
		title, content string
		image          *models.ImageFile
	)

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			writeBadRequest(w, msgInvalidRequestBody)
			return
		}

		title = r.FormValue("title")
		content = r.FormValue("content")

		img, err := formImage(r, "image")
		if err != nil {
			writeBadRequest(w, msgInvalidRequestBody)
			return
		}
		image = img
	} else {
		var in struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if err := decodeStrict(r, &in); err != nil {
			writeBadRequest(w, msgInvalidRequestBody)
			return
		}

		title, content = in.Title, in.Content
	}

	if title == "" || content == "" {
		writeBadRequest(w, msgInvalidRequestBody)
		return
	}

	writeEnvelope(w, h.svc.CreatePublication(r.Context(), title, content, userID, image))
}

// ListPublications — GET /publications?page=&limit=.
func (h *Handlers) ListPublications(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	writeEnvelope(w, h.svc.GetAllPublications(r.Context(), page, limit))
}

// GetPublication — GET /publications/{id}.
func (h *Handlers) GetPublication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	writeEnvelope(w, h.svc.GetPublicationByID(r.Context(), id))
}

// UpdatePublication — PUT /publications/{id} (требует авторизации).
func (h *Handlers) UpdatePublication(w http.ResponseWriter, r *http.Request) {
	userID, okAuth := middleware.UserIDFrom(r.Context())
	if !okAuth {
		writeEnvelope(w, &models.Response{Success: false, Message: service.MsgNotAuthorizedUpdate})
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var in updatePublicationRequest
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequest(w, msgInvalidRequestBody)
		return
	}

	input := service.UpdatePublicationInput{Title: in.Title, Content: in.Content}
	writeEnvelope(w, h.svc.UpdatePublication(r.Context(), id, input, userID))
}

// DeletePublication — DELETE /publications/{id} (требует авторизации).
func (h *Handlers) DeletePublication(w http.ResponseWriter, r *http.Request) {
	userID, okAuth := middleware.UserIDFrom(r.Context())
	if !okAuth {
		writeEnvelope(w, &models.Response{Success: false, Message: service.MsgNotAuthorizedDelete})
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	writeEnvelope(w, h.svc.DeletePublication(r.Context(), id, userID))
}

// ListUserPublications — GET /users/{id}/publications?page=&limit=.
func (h *Handlers) ListUserPublications(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	page, limit := pageParams(r)
	writeEnvelope(w, h.svc.GetPublicationsByUserID(r.Context(), id, page, limit))
}

// AddComment — POST /publications/{id}/comments (требует авторизации).
func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, okAuth := middleware.UserIDFrom(r.Context())
	if !okAuth {
		writeEnvelope(w, &models.Response{Success: false, Message: service.MsgErrAddComment})
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var in addCommentRequest
	if err := decodeStrict(r, &in); err != nil || in.Content == "" {
		writeBadRequest(w, msgInvalidRequestBody)
		return
	}

	writeEnvelope(w, h.svc.AddComment(r.Context(), id, userID, in.Content))
}

// ListComments — GET /publications/{id}/comments?page=&limit=.
func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	page, limit := pageParams(r)
	writeEnvelope(w, h.svc.GetPublicationComments(r.Context(), id, page, limit))
}

// ToggleLike — POST /publications/{id}/like (требует авторизации).
func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, okAuth := middleware.UserIDFrom(r.Context())
	if !okAuth {
		writeEnvelope(w, &models.Response{Success: false, Message: service.MsgErrToggleLike})
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	writeEnvelope(w, h.svc.ToggleLike(r.Context(), id, userID))
}

// ListLikes — GET /publications/{id}/likes?page=&limit=.
func (h *Handlers) ListLikes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	page, limit := pageParams(r)
	writeEnvelope(w, h.svc.GetPublicationLikes(r.Context(), id, page, limit))
}

// pathID разбирает UUID-параметр маршрута; при ошибке пишет 400 и
// возвращает false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeBadRequest(w, msgInvalidID)
		return uuid.Nil, false
	}

	return id, true
}
