package client

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// credential authorizes requests after a successful login.
type credential interface {
	authorize(req *http.Request, now time.Time) error
	wipe()
}

// bearerCredential is a token issued by /login/. Only the token is kept.
type bearerCredential struct {
	token     string
	expiresAt time.Time
}

func newBearerCredential(token string) *bearerCredential {
	return &bearerCredential{token: token, expiresAt: tokenExpiry(token)}
}

func (c *bearerCredential) authorize(req *http.Request, now time.Time) error {
	if c.token == "" {
		return ErrNotAuthenticated
	}
	if !c.expiresAt.IsZero() && !now.Before(c.expiresAt) {
		return common.ErrTokenExpired
	}
	req.Header.Set(common.AuthorizationHeaderName, "Bearer "+c.token)
	return nil
}

func (c *bearerCredential) wipe() {
	c.token = ""
	c.expiresAt = time.Time{}
}

// basicCredential is used against servers that issue no token: the password
// has to be replayed on every authenticated call.
type basicCredential struct {
	username string
	password []byte
}

func newBasicCredential(username string, password []byte) *basicCredential {
	return &basicCredential{username: username, password: common.CloneBytes(password)}
}

func (c *basicCredential) authorize(req *http.Request, _ time.Time) error {
	if c.password == nil {
		return ErrNotAuthenticated
	}
	req.SetBasicAuth(c.username, string(c.password))
	return nil
}

func (c *basicCredential) wipe() {
	common.WipeByteArray(c.password)
	c.password = nil
	c.username = ""
}

// tokenExpiry reads the exp claim of a JWT without verifying it; the server
// stays the authority, this only avoids sending a token known to be stale.
// Opaque tokens yield the zero time.
func tokenExpiry(token string) time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
