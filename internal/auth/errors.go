package auth

import (
	"errors"
	"fmt"
)

// Resolution failures. The gate treats every one of them as "request stays
// anonymous"; none of them aborts request processing.
var (
	ErrNoCredentials  = errors.New("no credentials presented")
	ErrUnknownSubject = errors.New("unknown subject")
	ErrDisabled       = errors.New("account disabled")
)

// InvalidTokenError wraps the codec failure that rejected a presented token.
type InvalidTokenError struct {
	Reason error
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token: %v", e.Reason)
}

func (e *InvalidTokenError) Unwrap() error {
	return e.Reason
}
