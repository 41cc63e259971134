package service

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"simple", "alice", nil},
		{"with dots and dashes", "alice.b-c_d", nil},
		{"email style", "alice@example.com", nil},
		{"empty", "", ErrUsernameRequired},
		{"at limit", strings.Repeat("a", 150), nil},
		{"over limit", strings.Repeat("a", 151), ErrUsernameTooLong},
		{"spaces inside", "alice smith", ErrUsernameInvalid},
		{"unicode", "алиса", ErrUsernameInvalid},
		{"slash", "alice/admin", ErrUsernameInvalid},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateUsername(tt.username)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateUsername(%q) = %v, want %v", tt.username, err, tt.wantErr)
			}
		})
	}
}
