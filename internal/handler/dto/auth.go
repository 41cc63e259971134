// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/wilt/wilt/internal/auth"
	"github.com/wilt/wilt/internal/model"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse represents a user in API responses.
// The password hash is never part of any response shape.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// TokensResponse carries the issued token pair.
type TokensResponse struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Message string         `json:"message"`
	User    UserResponse   `json:"user"`
	Tokens  TokensResponse `json:"tokens"`
}

// ErrorResponse represents an API error.
// Fields carries per-field validation messages when applicable.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ToUserResponse converts a User model to UserResponse.
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToAuthResponse builds the registration/login response body.
func ToAuthResponse(message string, user *model.User, tokens *auth.TokenPair) *AuthResponse {
	return &AuthResponse{
		Message: message,
		User:    ToUserResponse(user),
		Tokens: TokensResponse{
			Refresh: tokens.Refresh,
			Access:  tokens.Access,
		},
	}
}
