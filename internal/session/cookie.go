package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
)

// CookieName is the fixed key under which the session reference lives in
// the browser.
const CookieName = "wsai_session"

const sidClaim = "sid"

// Codec signs and verifies the session cookie. The cookie carries only
// the session id; the bearer token itself never leaves the server.
type Codec struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewCodec constructs a Codec with the given HMAC signing key.
func NewCodec(key []byte, ttl time.Duration) *Codec {
	return &Codec{key: key, ttl: ttl, now: time.Now}
}

// Encode signs a cookie value referencing the session id.
func (c *Codec) Encode(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		sidClaim: sessionID,
		"exp":    c.now().Add(c.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// Decode verifies a cookie value and returns the session id it references.
func (c *Codec) Decode(value string) (string, error) {
	token, err := jwt.Parse(value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.key, nil
	})
	if err != nil {
		return "", fmt.Errorf("verify session cookie: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid session cookie claims")
	}
	sid, ok := claims[sidClaim].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("missing session id claim")
	}
	return sid, nil
}

// Cookie builds the HTTP cookie carrying the signed value.
func (c *Codec) Cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie builds a cookie that clears the session reference.
func (c *Codec) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
