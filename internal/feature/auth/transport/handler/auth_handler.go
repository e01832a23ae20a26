// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"movieapp_backend/internal/feature/auth/transport/http/dto"
	"movieapp_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the usecase for authentication operations.
// Following Go convention, the interface is defined by the consumer
// (handler) rather than the provider (usecase).
type AuthUsecase interface {
	// Register creates a new account from the given input.
	Register(ctx context.Context, in usecase.RegisterInput) error
	// Login verifies a username/password pair. The bool reports whether
	// the credentials matched; an error is an internal failure only.
	Login(ctx context.Context, username, password string) (bool, error)
}

// AuthHandler processes HTTP requests for authentication operations.
// It depends on the AuthUsecase interface and handles JSON
// request/response translation, including the status contract:
// validation and duplicate failures are 400, internal failures are 500,
// and a login against wrong or unknown credentials is 200 with
// success=false because it is a domain outcome, not an error.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the account registration API endpoint.
// - binds the request JSON into RegisterReq, 400 on missing fields
// - 400 on blank-after-trim fields or a duplicate username
// - 500 on hashing or store failure, with a generic message
// - 200 with success=true on creation
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.AuthResponse{Success: false, Message: "Username and password are required"})
		return
	}

	err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	switch {
	case err == nil:
		slog.Info("user registered successfully", "username", req.Username)
		c.JSON(http.StatusOK, dto.AuthResponse{Success: true, Message: "Registration successful"})
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.AuthResponse{Success: false, Message: "Username and password cannot be empty"})
	case errors.Is(err, usecase.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.AuthResponse{Success: false, Message: "Username already exists"})
	case errors.Is(err, usecase.ErrHashPassword):
		slog.Error("password hashing error", "error", err)
		c.JSON(http.StatusInternalServerError, dto.AuthResponse{Success: false, Message: "Error processing password"})
	default:
		// Store errors stay in the log; the caller sees a generic message.
		slog.Error("registration error", "error", err, "username", req.Username)
		c.JSON(http.StatusInternalServerError, dto.AuthResponse{Success: false, Message: "Registration failed. Please try again."})
	}
}

// Login handles the login API endpoint.
// - binds the request JSON into LoginReq, 400 on missing fields
// - 200 with success=true on a verified match
// - 200 with success=false for unknown username or wrong password,
//   with an identical body for both
// - 500 on comparison or store failure, with a generic message
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.AuthResponse{Success: false, Message: "Username and password are required"})
		return
	}

	authenticated, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.AuthResponse{Success: false, Message: "Username and password cannot be empty"})
	case err != nil:
		slog.Error("login error", "error", err, "username", req.Username)
		c.JSON(http.StatusInternalServerError, dto.AuthResponse{Success: false, Message: "Login failed. Please try again."})
	case authenticated:
		slog.Info("user logged in successfully", "username", req.Username)
		c.JSON(http.StatusOK, dto.AuthResponse{Success: true, Message: "Login successful"})
	default:
		c.JSON(http.StatusOK, dto.AuthResponse{Success: false, Message: "Invalid username or password"})
	}
}
