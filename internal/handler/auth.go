package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/planora/backend/internal/model"
	"github.com/planora/backend/internal/server"
	"github.com/planora/backend/internal/service"
)

var validate = validator.New()

// AuthHandler serves registration and login.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

// RegisterRequest is the payload for POST /register. All three fields
// are required; email format beyond presence is not enforced.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *RegisterRequest) Validate() error {
	return validate.Struct(r)
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// LoginResponse confirms a successful login. It carries identity only;
// the credential hash never leaves the persistence layer.
type LoginResponse struct {
	Message string           `json:"message"`
	User    model.PublicUser `json:"user"`
}

// Register creates a new user account.
func (h *AuthHandler) Register(c echo.Context, req *RegisterRequest) (MessageResponse, error) {
	_, err := h.auth.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return MessageResponse{}, err
	}

	return MessageResponse{Message: "User registered successfully"}, nil
}

// Login verifies credentials and returns the user's id and username.
func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (LoginResponse, error) {
	user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		Message: "Login successful",
		User:    user.Public(),
	}, nil
}
