package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wilt/wilt/internal/auth"
	"github.com/wilt/wilt/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubUserStore returns a fixed user or error for any id.
type stubUserStore struct {
	user *model.User
	err  error
}

func (s *stubUserStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", ""},
		{"bearer token", "Bearer abc123", "abc123"},
		{"wrong scheme", "Basic abc123", ""},
		{"bearer only", "Bearer ", ""},
		{"lowercase scheme not accepted", "bearer abc123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			if got := extractBearerToken(req); got != tt.want {
				t.Errorf("extractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuth_MissingToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", 15*time.Minute, time.Hour)

	handler := Auth(AuthConfig{
		Logger: discardLogger(),
		Tokens: tokens,
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["code"] != "UNAUTHORIZED" {
		t.Errorf("code = %q, want UNAUTHORIZED", resp["code"])
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", 15*time.Minute, time.Hour)

	handler := Auth(AuthConfig{
		Logger: discardLogger(),
		Tokens: tokens,
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_NilCacheLoadsFromStore(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", 15*time.Minute, time.Hour)

	pair, err := tokens.IssuePair("user-1")
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}

	store := &stubUserStore{user: &model.User{
		ID:       "user-1",
		Username: "alice",
		Active:   true,
	}}

	reached := false
	handler := Auth(AuthConfig{
		Logger:     discardLogger(),
		Tokens:     tokens,
		Repository: store,
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		authCtx := auth.MustAuthFromContext(r.Context())
		if authCtx.UserID != "user-1" || authCtx.Username != "alice" {
			t.Errorf("auth context = %+v, want user-1/alice", authCtx)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if !reached {
		t.Error("handler should be reached without a cache configured")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAuth_InactiveAccountRejected(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", 15*time.Minute, time.Hour)

	pair, err := tokens.IssuePair("user-1")
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}

	store := &stubUserStore{user: &model.User{
		ID:       "user-1",
		Username: "alice",
		Active:   false,
	}}

	handler := Auth(AuthConfig{
		Logger:     discardLogger(),
		Tokens:     tokens,
		Repository: store,
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached for a deactivated account")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["code"] != "UNAUTHORIZED" {
		t.Errorf("code = %q, want UNAUTHORIZED", resp["code"])
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("issuer-secret", 15*time.Minute, time.Hour)
	verifier := auth.NewTokenManager("other-secret", 15*time.Minute, time.Hour)

	pair, err := issuer.IssuePair("user-1")
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}

	handler := Auth(AuthConfig{
		Logger: discardLogger(),
		Tokens: verifier,
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached with a foreign token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
