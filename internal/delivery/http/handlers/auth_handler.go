package handlers

import (
	"net/http"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/config"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/http/dto/request"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/http/dto/response"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase"
)

type AuthHandler struct {
	auth      usecase.AuthUsecase
	cfg       config.Auth
	validator *requestValidator
}

func NewAuthHandler(auth usecase.AuthUsecase, cfg config.Auth) *AuthHandler {
	return &AuthHandler{auth: auth, cfg: cfg, validator: newRequestValidator()}
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	}
	if value == "" {
		c.MaxAge = -1
	}
	return c
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !h.validator.decode(w, r, &req) {
		return
	}

	session, user, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(session.Token, session.ExpiresAt))
	respondWithJSON(w, http.StatusOK, map[string]any{
		"user":  response.FromUser(user),
		"token": session.Token,
	})
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), sessionToken(r, h.cfg.CookieName)); err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	http.SetCookie(w, h.sessionCookie("", time.Unix(0, 0)))
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, response.FromUser(currentUser(r)))
}

func (h *AuthHandler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req request.ChangePasswordRequest
	if !h.validator.decode(w, r, &req) {
		return
	}

	if err := h.auth.ChangePassword(r.Context(), currentUser(r), req.CurrentPassword, req.NewPassword); err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
