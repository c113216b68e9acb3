// Package session implements the server-side session layer: opaque
// tokens delivered via cookie, mapped to an authenticated identity in
// either an in-memory map (single instance) or Redis (multi instance).
package session

import (
	"context"
	"errors"
	"time"
)

// TTL is the fixed session lifetime, measured from issuance.
const TTL = 24 * time.Hour

// Identity is the payload attached to a live session. It is stored
// server-side only; the cookie carries nothing but the opaque token.
type Identity struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
}

// ErrNoSession is returned by Lookup when the token is unknown or the
// session has expired.
var ErrNoSession = errors.New("no such session")

// Store maps opaque tokens to identities. Create issues a fresh token,
// Lookup resolves it, Destroy invalidates it. Destroy of an unknown
// token is a no-op so that logout stays idempotent.
type Store interface {
	Create(ctx context.Context, id Identity) (string, error)
	Lookup(ctx context.Context, token string) (Identity, error)
	Destroy(ctx context.Context, token string) error
}
