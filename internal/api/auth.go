package api

import (
	"log/slog"
	"net/http"

	"github.com/quest-campus/lostfound/internal/auth"
	"github.com/quest-campus/lostfound/internal/validate"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	Admin     *auth.Admin
	JWTSecret string
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/items/auth/login. Wrong username and wrong
// password produce the identical rejection, so usernames cannot be
// enumerated.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	username, verr := validate.Login(req.Username, req.Password)
	if verr != nil {
		jsonError(w, http.StatusBadRequest, verr.Message)
		return
	}

	if !h.Admin.Check(username, req.Password) {
		slog.Warn("login failed", "username", username, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, username)
	if err != nil {
		internalError(w, "generating token", err)
		return
	}

	slog.Info("admin logged in", "username", username)
	jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Login successful.",
		"token":   token,
	})
}

// Verify handles GET /api/items/auth/verify. Reaching it means the auth
// middleware already validated the token.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "Authentication required. Please log in as admin.")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Token is valid.",
		"admin": map[string]string{
			"username": claims.Username,
			"role":     claims.Role,
		},
	})
}
