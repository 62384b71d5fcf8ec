package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/gym-service/internal/domain"
)

// PrincipalStore resolves a subject identifier to its account record.
type PrincipalStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// PrincipalResolver turns a raw token string into an authenticated
// Principal. Resolution is read-only; every failure is returned, never
// panicked.
type PrincipalResolver struct {
	tokens *TokenManager
	store  PrincipalStore
}

// NewPrincipalResolver builds a resolver.
func NewPrincipalResolver(tokens *TokenManager, store PrincipalStore) *PrincipalResolver {
	return &PrincipalResolver{tokens: tokens, store: store}
}

// Resolve extracts the subject without verification, loads the account, then
// verifies the token. The account is loaded first because verification only
// confirms the subject; it never needs secret material from the store.
func (r *PrincipalResolver) Resolve(ctx context.Context, tokenStr string, now time.Time) (*Principal, error) {
	subject, err := r.tokens.ExtractSubject(tokenStr)
	if err != nil {
		return nil, ErrNoCredentials
	}

	user, err := r.store.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnknownSubject
		}
		return nil, fmt.Errorf("load principal: %w", err)
	}
	if !user.Enabled {
		return nil, ErrDisabled
	}

	claims, err := r.tokens.Verify(tokenStr, now)
	if err != nil {
		return nil, &InvalidTokenError{Reason: err}
	}
	if claims.Subject != user.Username {
		return nil, &InvalidTokenError{Reason: ErrBadSignature}
	}

	return &Principal{User: user}, nil
}
