package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"renthub/internal/config"
	mem "renthub/pkg/memcache"
	"renthub/pkg/utils"
)

// AuthServiceInterface is the admin gate. This is not a security mechanism:
// credentials are two pre-shared strings compared for exact equality after a
// fixed delay, matching the behavior the admin portal has always had.
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(token string)
	SessionActive(token string) bool
	Enabled() bool
}

type AuthService struct {
	cfg      *config.Config
	sessions mem.SessionRegistry
	tokens   *utils.TokenMaker
	log      *zap.Logger
	delay    time.Duration
}

func NewAuthService(cfg *config.Config, sessions mem.SessionRegistry, tokens *utils.TokenMaker, log *zap.Logger) AuthServiceInterface {
	return &AuthService{
		cfg:      cfg,
		sessions: sessions,
		tokens:   tokens,
		log:      log,
		delay:    700 * time.Millisecond,
	}
}

// Enabled reports whether admin credentials are configured at all. When they
// are not, the gate rejects every login instead of crashing the process.
func (a *AuthService) Enabled() bool {
	return a.cfg.AdminConfigured()
}

func (a *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if !a.Enabled() {
		return "", utils.ErrLoginDisabled
	}

	select {
	case <-time.After(a.delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	if email != a.cfg.AdminEmail || password != a.cfg.AdminPassword {
		a.log.Warn("admin login rejected", zap.String("email", email))
		return "", utils.ErrInvalidLogin
	}

	token, err := a.tokens.CreateSessionToken(email)
	if err != nil {
		return "", err
	}
	a.sessions.Set(token, email)

	a.log.Info("admin session opened", zap.String("email", email))
	return token, nil
}

func (a *AuthService) Logout(token string) {
	a.sessions.Delete(token)
}

// SessionActive requires both a valid token and a live marker, so sign-out
// takes effect immediately.
func (a *AuthService) SessionActive(token string) bool {
	if token == "" {
		return false
	}
	if _, err := a.tokens.ValidateSessionToken(token); err != nil {
		return false
	}
	return a.sessions.Has(token)
}
