package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieExpiry picks the auth cookie's expiry: now+ttl, capped at the
// token's exp claim when the backend issued a JWT. Opaque tokens keep the
// full ttl since there is nothing to read.
func CookieExpiry(token string, ttl time.Duration) time.Time {
	expires := time.Now().Add(ttl)

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return expires
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return expires
	}
	if exp.Time.Before(expires) {
		return exp.Time
	}
	return expires
}
