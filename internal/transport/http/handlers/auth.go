package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/service"
	"github.com/pribylovaa/go-social-network/internal/transport/http/middleware"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Register — POST /auth/register.
// Принимает JSON либо multipart/form-data (поля email/password/name
// плюс необязательный файл image).
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var (
		in    registerRequest
		image *models.ImageFile
	)

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			writeBadRequest(w, msgInvalidRequestBody)
			return
		}

		in.Email = r.FormValue("email")
		in.Password = r.FormValue("password")
		in.Name = r.FormValue("name")

		img, err := formImage(r, "image")
		if err != nil {
			writeBadRequest(w, msgInvalidRequestBody)
			return
		}
		image = img
	} else if err := decodeStrict(r, &in); err != nil {
		writeBadRequest(w, msgInvalidRequestBody)
		return
	}

	if in.Email == "" || in.Password == "" || in.Name == "" {
		writeBadRequest(w, msgInvalidRequestBody)
		return
	}

	writeEnvelope(w, h.svc.Register(r.Context(), in.Email, in.Password, in.Name, image))
}

// Login — POST /auth/login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequest(w, msgInvalidRequestBody)
		return
	}

	if in.Email == "" || in.Password == "" {
		writeBadRequest(w, msgInvalidRequestBody)
		return
	}

	writeEnvelope(w, h.svc.Login(r.Context(), in.Email, in.Password))
}

// UpdateProfile — PUT /auth/profile (требует авторизации).
// Принимает JSON либо multipart/form-data; все поля необязательны.
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeEnvelope(w, &models.Response{Success: false, Message: service.MsgUserNotFound})
		return
	}

	var input service.UpdateUserInput

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			writeBadRequest(w, msgInvalidRequestBody)
			return
		}

		input.Name = optional(r, "name")
		input.Email = optional(r, "email")
		input.Password = optional(r, "password")

		img, err := formImage(r, "image")
		if err != nil {
			writeBadRequest(w, msgInvalidRequestBody)
			return
		}
		input.ProfileImage = img
	} else {
		var in updateProfileRequest
		if err := decodeStrict(r, &in); err != nil {
			writeBadRequest(w, msgInvalidRequestBody)
			return
		}

		input.Name = in.Name
		input.Email = in.Email
		input.Password = in.Password
	}

	writeEnvelope(w, h.svc.UpdateUser(r.Context(), userID, input))
}
