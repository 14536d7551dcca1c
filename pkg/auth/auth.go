// Package auth issues and checks admin session tokens. The shop has a
// single operator account configured at deploy time; a successful
// login mints a random bearer token with a TTL.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/codewithdark-git/khanana/pkg/config"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrInvalidToken       = errors.New("auth: invalid or expired token")
)

// TokenStore persists issued session tokens until they expire.
type TokenStore interface {
	Save(ctx context.Context, token string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
}

type Authenticator struct {
	email      string
	password   string
	sessionTTL time.Duration
	tokens     TokenStore
}

func NewAuthenticator(cfg *config.AdminConfig, tokens TokenStore) *Authenticator {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Authenticator{
		email:      cfg.Email,
		password:   cfg.Password,
		sessionTTL: ttl,
		tokens:     tokens,
	}
}

// Login checks the credentials in constant time and, on success,
// issues a session token.
func (a *Authenticator) Login(ctx context.Context, email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	if !emailOK || !passwordOK {
		return "", ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := a.tokens.Save(ctx, token, a.sessionTTL); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return token, nil
}

// Verify reports whether the token belongs to a live session.
func (a *Authenticator) Verify(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}
	ok, err := a.tokens.Exists(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if !ok {
		return ErrInvalidToken
	}
	return nil
}

// Logout revokes the session token.
func (a *Authenticator) Logout(ctx context.Context, token string) error {
	return a.tokens.Revoke(ctx, token)
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
