//go:build integration

package cache

import (
	"context"
	"testing"

	"github.com/wilt/wilt/internal/model"
	"github.com/wilt/wilt/internal/testutil"
)

// TestIntegrationAuthContextRoundTrip exercises the verified-user cache.
func TestIntegrationAuthContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	redisURL := testutil.RequireEnv(t, "REDIS_URL")
	cacheClient, err := New(ctx, redisURL)
	if err != nil {
		t.Skipf("Skipping integration test: Redis not available: %v", err)
	}
	defer cacheClient.Close()

	_ = cacheClient.Client().FlushDB(ctx).Err()

	user := testutil.NewTestUser(t, testutil.UniqueUsername("cached"))

	// Miss before set
	got, err := cacheClient.GetAuthContext(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetAuthContext failed: %v", err)
	}
	if got != nil {
		t.Fatal("expected cache miss before set")
	}

	authCtx := &model.AuthContext{
		UserID:   user.ID,
		Username: user.Username,
	}
	if err := cacheClient.SetAuthContext(ctx, authCtx); err != nil {
		t.Fatalf("SetAuthContext failed: %v", err)
	}

	got, err = cacheClient.GetAuthContext(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetAuthContext failed: %v", err)
	}
	if got == nil || got.UserID != user.ID || got.Username != user.Username {
		t.Errorf("cached auth context mismatch: %+v", got)
	}

	if err := cacheClient.DeleteAuthContext(ctx, user.ID); err != nil {
		t.Fatalf("DeleteAuthContext failed: %v", err)
	}

	got, err = cacheClient.GetAuthContext(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetAuthContext failed: %v", err)
	}
	if got != nil {
		t.Error("expected cache miss after delete")
	}
}
