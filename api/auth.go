package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/meridianlaw/cms/internal/auth"
	"github.com/meridianlaw/cms/pkg/repository"
)

type AuthHandler struct {
	admins   repository.AdminRepo
	sessions *auth.Sessions
}

// NewAuthHandler creates an AuthHandler with required dependencies.
func NewAuthHandler(admins repository.AdminRepo, sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{admins: admins, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// adminView is the public shape of an admin account; the hash never leaves
// the store.
type adminView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	admin, err := auth.Authenticate(r.Context(), h.admins, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	token, err := h.sessions.Token(admin.ID, admin.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	h.sessions.SetCookie(w, token)

	writeJSON(w, map[string]any{"admin": adminView{ID: admin.ID, Email: admin.Email, Name: admin.Name}}, http.StatusOK)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	writeJSON(w, map[string]string{"message": "signed out"}, http.StatusOK)
}

// Me reports the current session identity, if any.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessions.Verify(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	writeJSON(w, map[string]any{"admin": adminView{ID: id.UserID, Email: id.Email}}, http.StatusOK)
}
