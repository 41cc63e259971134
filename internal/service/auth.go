// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/wilt/wilt/internal/auth"
	"github.com/wilt/wilt/internal/metrics"
	"github.com/wilt/wilt/internal/model"
	"github.com/wilt/wilt/internal/repository"
)

// Auth service errors.
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username exceeds maximum length")
	ErrUsernameInvalid  = errors.New("username contains invalid characters")
	ErrPasswordRequired = errors.New("password is required")
	ErrUsernameExists   = errors.New("username already exists")
	// ErrInvalidCredentials covers unknown username, inactive account and
	// wrong password alike. Callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const maxUsernameLength = 150

// Username charset: letters, digits and @ . + - _ (matches common account rules).
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9@.+\-_]+$`)

// dummyPasswordHash is verified against when the username does not exist,
// so a login attempt costs the same argon2 work either way.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=3,p=4$AAAAAAAAAAAAAAAAAAAAAA$Sd9iXGMTTJ8DqltsVHUv8qmPHcOJMAviSR6hYGy10Oc"

// AuthService handles registration and credential-based login.
type AuthService struct {
	repo    *repository.Repository
	tokens  *auth.TokenManager
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.Repository, tokens *auth.TokenManager, recorder metrics.Recorder, logger *slog.Logger) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		repo:    repo,
		tokens:  tokens,
		metrics: recorder,
		logger:  logger,
	}
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	User   *model.User
	Tokens *auth.TokenPair
}

// Register creates a new user and issues a fresh token pair.
// The password is stored only as an argon2id hash.
func (s *AuthService) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Username:     username,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	tokens, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	s.metrics.IncUserRegistered()

	return &AuthResult{User: user, Tokens: tokens}, nil
}

// Login validates credentials and issues a fresh token pair.
// All failure modes collapse into ErrInvalidCredentials; the reason is only
// visible in server logs.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		s.metrics.IncLoginFailure()
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn the same hashing cost as a real verification.
			_, _ = auth.VerifyPassword(password, dummyPasswordHash)
			s.logger.Debug("login failed", slog.String("reason", "unknown_username"))
			s.metrics.IncLoginFailure()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		s.logger.Debug("login failed",
			slog.String("reason", "password_mismatch"),
			slog.String("user_id", user.ID),
		)
		s.metrics.IncLoginFailure()
		return nil, ErrInvalidCredentials
	}

	if !user.Active {
		s.logger.Debug("login failed",
			slog.String("reason", "inactive_account"),
			slog.String("user_id", user.ID),
		)
		s.metrics.IncLoginFailure()
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	s.metrics.IncLoginSuccess()

	return &AuthResult{User: user, Tokens: tokens}, nil
}

// validateUsername checks username shape after trimming.
func validateUsername(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if len(username) > maxUsernameLength {
		return ErrUsernameTooLong
	}
	if !usernameRegex.MatchString(username) {
		return ErrUsernameInvalid
	}
	return nil
}
