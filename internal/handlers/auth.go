package handlers

import (
	"net/http"
	"strings"

	"github.com/peopleops/attrition/auth"
	"github.com/peopleops/attrition/httpx"
	"github.com/peopleops/attrition/internal/services"
	"github.com/peopleops/attrition/validation"
)

type AuthHandler struct {
	Creds  *services.CredentialService
	Resets *services.ResetService
}

func NewAuthHandler(creds *services.CredentialService, resets *services.ResetService) *AuthHandler {
	return &AuthHandler{Creds: creds, Resets: resets}
}

func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /signup", h.signup)
	mux.HandleFunc("POST /login", h.login)
	mux.HandleFunc("POST /logout", h.logout)
	mux.HandleFunc("POST /password-reset", h.passwordReset)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	v := validation.Violations{}
	validation.Required("username", req.Username, v)
	validation.Required("password", req.Password, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	// re-registering an existing username is a silent no-op
	if err := h.Creds.Register(req.Username, req.Password, services.DefaultRole); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "storage_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	role, ok, err := h.Creds.Authenticate(strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "storage_error", nil)
		return
	}
	if !ok {
		// same response for unknown user and wrong password
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}
	auth.CreateSession(w, auth.Principal{Username: strings.TrimSpace(req.Username), Role: role})
	httpx.JSON(w, http.StatusOK, map[string]string{"username": strings.TrimSpace(req.Username), "role": role})
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSession(w)
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type resetRequestBody struct {
	Username string `json:"username"`
}

// passwordReset enqueues a reset ticket for an admin to resolve later.
// The response never reveals whether the username exists.
func (h *AuthHandler) passwordReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequestBody
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	v := validation.Violations{}
	validation.Required("username", req.Username, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.Resets.Enqueue(req.Username); err != nil && !isNotFound(err) {
		httpx.JSONError(w, http.StatusInternalServerError, "storage_error", nil)
		return
	}
	httpx.JSON(w, http.StatusAccepted, map[string]string{"status": "pending"})
}
