package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// NewToken returns a cryptographically secure opaque session token.
// 32 bytes = 256 bits of entropy, base64url encoded.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Sign produces the cookie value for a token: "<token>.<hex hmac>".
// The HMAC-SHA256 signature lets the auth gate reject forged or
// tampered cookies before touching the store.
func Sign(secret, token string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return token + "." + hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a cookie value produced by Sign and returns the bare
// token. ok is false when the value is malformed or the signature does
// not match.
func Verify(secret, value string) (token string, ok bool) {
	i := strings.LastIndexByte(value, '.')
	if i <= 0 || i == len(value)-1 {
		return "", false
	}
	token = value[:i]
	want := Sign(secret, token)
	if !hmac.Equal([]byte(want), []byte(value)) {
		return "", false
	}
	return token, true
}
