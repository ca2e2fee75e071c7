package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"picshelf/internal/auth"
	"picshelf/internal/common"
	"picshelf/internal/localstore"
	"picshelf/internal/logging"
)

// SessionService owns the session token lifecycle.
//
// Contract:
//   - Login: verify credentials, issue a signed token with an expiry, persist
//     it as the single current token, and return it. On a credential mismatch
//     returns common.ErrInvalidCredentials.
//   - Validate: report the state of the stored token. An invalid or expired
//     token is evicted from the store as a side effect of the check itself,
//     so a failed validation always leaves the store without a token.
//   - IsValid: boolean convenience over Validate.
//   - CurrentUser: the email claim of the stored token. Always re-verifies
//     the token rather than trusting a cached flag, since it can expire
//     between calls.
//   - Logout: evict the current token. Idempotent.
type SessionService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Validate(ctx context.Context) error
	IsValid(ctx context.Context) bool
	CurrentUser(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
}

type sessionService struct {
	creds      CredentialService
	store      localstore.Repository
	logger     logging.Logger
	signingKey []byte
	tokenTTL   time.Duration
}

// NewSessionService constructs a SessionService. tokenTTL is the validity
// window of issued tokens (10 minutes in the reference behavior).
func NewSessionService(creds CredentialService, store localstore.Repository, logger logging.Logger, signingKey []byte, tokenTTL time.Duration) SessionService {
	return &sessionService{
		creds:      creds,
		store:      store,
		logger:     logger,
		signingKey: signingKey,
		tokenTTL:   tokenTTL,
	}
}

func (s *sessionService) Login(ctx context.Context, email, password string) (string, error) {
	if _, err := s.creds.Find(ctx, email, password); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", err
	}

	token, err := auth.GenerateToken(email, s.signingKey, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.store.Set(ctx, localstore.KeyAuthToken, []byte(token)); err != nil {
		return "", fmt.Errorf("failed to persist token: %w", err)
	}

	return token, nil
}

// Validate returns nil for a stored, well-signed, unexpired token. Otherwise
// it returns common.ErrNotFound (no token), common.ErrTokenExpired, or
// common.ErrInvalidToken; in the latter two cases the token is removed from
// the store before returning.
func (s *sessionService) Validate(ctx context.Context) error {
	data, err := s.store.Get(ctx, localstore.KeyAuthToken)
	if err != nil {
		return err
	}

	if _, err := auth.GetEmailFromToken(string(data), s.signingKey); err != nil {
		s.evict(ctx)
		return err
	}
	return nil
}

func (s *sessionService) IsValid(ctx context.Context) bool {
	return s.Validate(ctx) == nil
}

func (s *sessionService) CurrentUser(ctx context.Context) (string, error) {
	data, err := s.store.Get(ctx, localstore.KeyAuthToken)
	if err != nil {
		return "", err
	}

	email, err := auth.GetEmailFromToken(string(data), s.signingKey)
	if err != nil {
		s.evict(ctx)
		return "", err
	}
	return email, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, localstore.KeyAuthToken)
}

// evict drops the stored token after a failed check. Eviction failures are
// logged, not returned: the validation result is what the caller acts on.
func (s *sessionService) evict(ctx context.Context) {
	if err := s.store.Delete(ctx, localstore.KeyAuthToken); err != nil {
		s.logger.Error(ctx, "failed to evict session token", "error", err)
	}
}
