package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/types"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
	}
}

// Signup handles account creation requests.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.userService.Signup(r.Context(), &req)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	h.respondWithToken(w, http.StatusCreated, user)
}

// Login handles authentication requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	h.respondWithToken(w, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, status int, user *types.User) {
	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	jsonResponse(w, status, types.AuthResponse{User: user, Token: token})
}

// validationMessage renders the first struct validation failure.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return "validation error: " + verrs[0].Field() + " - " + verrs[0].Tag()
	}
	return "validation error: invalid request"
}
