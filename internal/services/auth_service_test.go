package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"renthub/internal/config"
	mem "renthub/pkg/memcache"
	"renthub/pkg/utils"
)

func newTestAuth(cfg *config.Config) *AuthService {
	svc := NewAuthService(cfg, mem.NewSessions(), utils.NewTokenMaker("test-secret"), zap.NewNop()).(*AuthService)
	svc.delay = time.Millisecond
	return svc
}

func adminCfg() *config.Config {
	return &config.Config{AdminEmail: "admin@renthub.dev", AdminPassword: "hunter2", JWTSecret: "test-secret"}
}

func TestLoginSuccessOpensSession(t *testing.T) {
	svc := newTestAuth(adminCfg())

	token, err := svc.Login(context.Background(), "admin@renthub.dev", "hunter2")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, svc.SessionActive(token))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestAuth(adminCfg())

	_, err := svc.Login(context.Background(), "admin@renthub.dev", "wrong")
	assert.ErrorIs(t, err, utils.ErrInvalidLogin)
}

func TestLoginDisabledWithoutCredentials(t *testing.T) {
	svc := newTestAuth(&config.Config{})
	assert.False(t, svc.Enabled())

	_, err := svc.Login(context.Background(), "anyone@example.com", "anything")
	assert.ErrorIs(t, err, utils.ErrLoginDisabled)
}

func TestLogoutInvalidatesTokenImmediately(t *testing.T) {
	svc := newTestAuth(adminCfg())

	token, err := svc.Login(context.Background(), "admin@renthub.dev", "hunter2")
	assert.NoError(t, err)

	svc.Logout(token)
	assert.False(t, svc.SessionActive(token))
}

func TestSessionInactiveForForeignToken(t *testing.T) {
	svc := newTestAuth(adminCfg())
	assert.False(t, svc.SessionActive("not-a-token"))
	assert.False(t, svc.SessionActive(""))
}

func TestLoginHonorsContextCancellation(t *testing.T) {
	svc := newTestAuth(adminCfg())
	svc.delay = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, "admin@renthub.dev", "hunter2")
	assert.ErrorIs(t, err, context.Canceled)
}
