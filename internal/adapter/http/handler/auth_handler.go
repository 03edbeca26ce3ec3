package handler

import (
	"encoding/json"
	"net/http"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/infrastructure/auth"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		jwtManager: jwtManager,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Token string    `json:"token"`
	Actor ActorInfo `json:"actor"`
}

// ActorInfo represents actor information
type ActorInfo struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Role        domain.Role `json:"role"`
	Permissions []string    `json:"permissions"`
}

// Login handles staff login (simplified - no password hashing for demo)
// In production, this would validate against a staff database with hashed passwords
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	// DEMO ONLY: Hardcoded staff accounts for testing
	// In production, validate against database with bcrypt password hashing
	var actor *domain.Actor
	switch req.Username {
	case "superadmin":
		if req.Password != "superadmin123" { // DEMO ONLY - never hardcode passwords!
			writeError(w, http.StatusUnauthorized, "invalid credentials", "")
			return
		}
		actor = &domain.Actor{
			ID:          "actor-super-1",
			Name:        "Super Admin",
			Role:        domain.RoleSuperAdmin,
			Permissions: domain.PermAll,
		}
	case "subadmin":
		if req.Password != "subadmin123" {
			writeError(w, http.StatusUnauthorized, "invalid credentials", "")
			return
		}
		actor = &domain.Actor{
			ID:          "actor-sub-1",
			Name:        "Sub Admin",
			Role:        domain.RoleSubAdmin,
			Permissions: domain.PermDeposit | domain.PermWithdraw | domain.PermEdit,
		}
	default:
		writeError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := h.jwtManager.Generate(actor)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		Actor: ActorInfo{
			ID:          actor.ID,
			Name:        actor.Name,
			Role:        actor.Role,
			Permissions: actor.Permissions.Names(),
		},
	})
}

// GetCurrentActor returns the current authenticated actor
func (h *AuthHandler) GetCurrentActor(w http.ResponseWriter, r *http.Request) {
	actor, ok := domain.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	writeJSON(w, http.StatusOK, ActorInfo{
		ID:          actor.ID,
		Name:        actor.Name,
		Role:        actor.Role,
		Permissions: actor.Permissions.Names(),
	})
}
