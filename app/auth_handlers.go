package schedly

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/putto11262002/schedly/core"
	"github.com/putto11262002/schedly/pkg/router"
)

type AuthHandler struct {
	auth core.Auth
}

func NewAuthHandler(auth core.Auth) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type CredentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) error {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return fmt.Errorf("Decode: %w", err)
	}
	defer r.Body.Close()

	if _, err := h.auth.Register(r.Context(), payload.Email, payload.Password); err != nil {
		switch {
		case errors.Is(err, core.ErrMissingCredentials):
			return router.NewJsonError(http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, core.ErrInvalidEmail):
			return router.NewJsonError(http.StatusBadRequest, "Invalid email format")
		case errors.Is(err, core.ErrDuplicateUser):
			return router.NewJsonError(http.StatusBadRequest, "User already exists")
		default:
			return err
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(RegisterResponse{
		Success: true,
		Message: "User registered successfully",
	}); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return nil
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) error {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return fmt.Errorf("Decode: %w", err)
	}
	defer r.Body.Close()

	token, _, err := h.auth.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrMissingCredentials):
			return router.NewJsonError(http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, core.ErrBadCredentials):
			return router.NewJsonError(http.StatusBadRequest, "Invalid credentials")
		default:
			return err
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(LoginResponse{Token: token}); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return nil
}
