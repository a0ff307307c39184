package handlers

import (
	"net/http"
	"strings"

	"github.com/peopleops/attrition/gate"
	"github.com/peopleops/attrition/httpx"
	"github.com/peopleops/attrition/internal/services"
	"github.com/peopleops/attrition/validation"
)

// AdminHandler covers user management and reset-request resolution.
// Routes are mounted behind the admin role gate by the router.
type AdminHandler struct {
	Creds  *services.CredentialService
	Resets *services.ResetService
}

func NewAdminHandler(creds *services.CredentialService, resets *services.ResetService) *AdminHandler {
	return &AdminHandler{Creds: creds, Resets: resets}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, _ *http.Request) {
	users, err := h.Creds.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, users)
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
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
	if req.Role == "" {
		req.Role = services.DefaultRole
	}
	if !gate.Role(req.Role).Valid() {
		httpx.JSONError(w, http.StatusBadRequest, "unknown_role", map[string]string{"role": req.Role})
		return
	}
	if err := h.Creds.Register(req.Username, req.Password, req.Role); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AdminHandler) ListResetRequests(w http.ResponseWriter, _ *http.Request) {
	reqs, err := h.Resets.ListPending()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, reqs)
}

type resolveResetRequest struct {
	Username    string `json:"username"`
	NewPassword string `json:"new_password"`
}

func (h *AdminHandler) ResolveReset(w http.ResponseWriter, r *http.Request) {
	var req resolveResetRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("username", req.Username, v)
	validation.Required("new_password", req.NewPassword, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.Resets.Resolve(req.Username, req.NewPassword); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "resolved"})
}
