package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the client surfaces from an access token returned by a
// login: subject, role claim, expiry. The token is parsed without signature
// verification; the server is the authority on its validity and the client
// only uses the claims for the status line.
type TokenInfo struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// ParseToken extracts display claims from a raw JWT.
func ParseToken(raw string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		info.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
