package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"finance/src/schemas"
	"finance/src/utils"
)

const sessionCookie = "jwt"

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	req := new(schemas.RegisterRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed request body"))
		return
	}

	if err := h.Controller.Register(ctx, req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, schemas.MessageResponse{Message: "registered"}, http.StatusCreated)
}

// RegisterForm describes the password policy the register form enforces.
func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, schemas.RegisterFormResponse{
		MinLength: 8,
		Symbols:   utils.PasswordSymbols,
	}, http.StatusOK)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	req := new(schemas.LoginRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed request body"))
		return
	}

	resp, expiresAt, err := h.Controller.Login(ctx, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    resp.Token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, schemas.MessageResponse{Message: "post username and password to log in"}, http.StatusOK)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.respond(w, r, schemas.MessageResponse{Message: "logged out"}, http.StatusOK)
}
