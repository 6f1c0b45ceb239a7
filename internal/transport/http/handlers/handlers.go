// handlers реализует REST-обработчики поверх сервисного слоя.
//
// Все ответы — единый конверт models.Response; HTTP-статус подбирается
// по сообщению конверта, тело от статуса не зависит.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/service"
)

// maxMultipartMemory — порог буферизации multipart-форм в памяти.
const maxMultipartMemory = 10 << 20

// Сообщения транспортного уровня (ошибки разбора запроса).
const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidID          = "Invalid identifier"
)

// Handlers агрегирует зависимости обработчиков.
type Handlers struct {
	svc *service.Service
}

// New создаёт Handlers поверх сервисного слоя.
func New(svc *service.Service) *Handlers {
	return &Handlers{svc: svc}
}

// writeEnvelope пишет конверт со статусом, подобранным по его сообщению.
func writeEnvelope(w http.ResponseWriter, resp *models.Response) {
	writeJSON(w, statusFor(resp), resp)
}

// writeJSON — единый ответ JSON с нужным Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// writeBadRequest — конверт отказа транспортного уровня (400).
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, &models.Response{
		Success: false,
		Message: message,
	})
}

// statusFor отображает сообщение конверта в HTTP-статус.
// Неизвестные отказы считаются внутренними ошибками.
func statusFor(resp *models.Response) int {
	if resp.Success {
		switch resp.Message {
		case service.MsgUserCreated, service.MsgPublicationCreated, service.MsgCommentAdded:
			return http.StatusCreated
		default:
			return http.StatusOK
		}
	}

	switch resp.Message {
	case service.MsgInvalidCredentials:
		return http.StatusUnauthorized
	case service.MsgEmailInUse:
		return http.StatusConflict
	case service.MsgUserNotFound, service.MsgPublicationNotFound:
		return http.StatusNotFound
	case service.MsgNotAuthorizedUpdate, service.MsgNotAuthorizedDelete:
		return http.StatusForbidden
	case service.MsgErrUploadImage, service.MsgErrUploadProfileImage:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// isMultipart сообщает, пришёл ли запрос как multipart/form-data.
func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// formImage извлекает файл изображения из multipart-формы.
// Отсутствующий файл — не ошибка: возвращается (nil, nil).
func formImage(r *http.Request, field string) (*models.ImageFile, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &models.ImageFile{
		Bytes:       data,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

// pageParams читает параметры пагинации из query (page=1, limit=10 по умолчанию).
func pageParams(r *http.Request) (page, limit int) {
	page, limit = 1, 10

	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	return page, limit
}

// optional возвращает указатель на значение формы, если поле присутствует.
func optional(r *http.Request, field string) *string {
	if _, ok := r.Form[field]; !ok {
		return nil
	}

	v := r.FormValue(field)
	return &v
}
