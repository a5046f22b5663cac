package handlers

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// AuthHandler serves the public sign-up and sign-in endpoints.
type AuthHandler struct {
	auth  ports.AuthService
	users ports.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth ports.AuthService, users ports.UserService) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !readBody(w, r, &req) {
		return
	}

	created, err := h.users.Register(r.Context(), mapRegister(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, dto.ToUserResponse(created))
}

// Authenticate handles POST /api/v1/auth/authenticate.
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthRequest
	if !readBody(w, r, &req) {
		return
	}

	token, err := h.auth.Authenticate(r.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToAuthResponse(token))
}
