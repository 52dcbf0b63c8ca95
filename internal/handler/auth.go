package handler

import (
	"errors"
	"net/http"

	"github.com/carsapi/carsapi-go/internal/crypto"
	"github.com/carsapi/carsapi-go/internal/middleware"
	"github.com/carsapi/carsapi-go/internal/model"
	"github.com/carsapi/carsapi-go/internal/service"
)

const msgLoggedOut = "Successfully logged out"

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		if errors.Is(err, errBodyTooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, http.StatusBadRequest, verr)
			return
		}
		logInternal(r, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse(msgInternal))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleLogin handles POST /api/auth/login requests.
// A malformed body is validated as an empty one so the caller sees which fields are missing.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		if errors.Is(err, errBodyTooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse(err.Error()))
			return
		}
		req = model.LoginRequest{}
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeValidationError(w, http.StatusUnprocessableEntity, verr)
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, errorResponse(msgUnauthorized))
		default:
			logInternal(r, err)
			writeJSON(w, http.StatusInternalServerError, errorResponse(msgInternal))
		}
		return
	}

	writeJSON(w, http.StatusOK, token)
}

// HandleMe handles GET /api/auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse(msgUnauthorized))
		return
	}

	resp, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(msgUnauthorized))
			return
		}
		logInternal(r, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse(msgInternal))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleLogout handles GET and POST /api/auth/logout requests.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse(msgUnauthorized))
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		logInternal(r, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse(msgInternal))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse(msgLoggedOut))
}

// HandleRefresh handles POST /api/auth/refresh requests.
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	raw, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse(msgUnauthorized))
		return
	}

	token, err := h.service.Refresh(r.Context(), raw)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidToken) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(msgUnauthorized))
			return
		}
		logInternal(r, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse(msgInternal))
		return
	}

	writeJSON(w, http.StatusOK, token)
}
