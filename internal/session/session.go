// Package session keeps the signed-in user and one-shot flash messages in
// HMAC-signed cookies.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	flashCookieName = "rolsa_flash"
	flashTTL        = 5 * time.Minute
)

var ErrInvalidSession = errors.New("invalid session")

// User is the authenticated identity carried by the session cookie.
type User struct {
	ID   int
	Name string
}

type claims struct {
	jwt.RegisteredClaims
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
}

type flashClaims struct {
	jwt.RegisteredClaims
	Message string `json:"msg"`
}

type Manager struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
}

// NewManager builds a cookie manager. An empty secret is replaced by a random
// one, so sessions then last only as long as the process.
func NewManager(secret, cookieName string, ttl time.Duration, secure bool) *Manager {
	if secret == "" {
		secret = uuid.NewString() + uuid.NewString()
	}
	return &Manager{
		secret:     []byte(secret),
		ttl:        ttl,
		cookieName: cookieName,
		secure:     secure,
	}
}

// Issue signs u into the session cookie.
func (m *Manager) Issue(c *gin.Context, u User) error {
	now := time.Now()
	exp := now.Add(m.ttl)
	token, err := m.sign(&claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: u.ID,
		Name:   u.Name,
	})
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	m.setCookie(c, m.cookieName, token, exp)
	return nil
}

// Load returns the session user. A request without a cookie yields (nil, nil);
// a tampered or expired cookie yields ErrInvalidSession.
func (m *Manager) Load(c *gin.Context) (*User, error) {
	raw, err := c.Cookie(m.cookieName)
	if err != nil || raw == "" {
		return nil, nil
	}
	var cl claims
	if err := m.parse(raw, &cl); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if cl.UserID <= 0 {
		return nil, ErrInvalidSession
	}
	return &User{ID: cl.UserID, Name: cl.Name}, nil
}

func (m *Manager) Clear(c *gin.Context) {
	m.expireCookie(c, m.cookieName)
}

// SetFlash stores a message for the next rendered page.
func (m *Manager) SetFlash(c *gin.Context, msg string) {
	exp := time.Now().Add(flashTTL)
	token, err := m.sign(&flashClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
		Message:          msg,
	})
	if err != nil {
		return
	}
	m.setCookie(c, flashCookieName, token, exp)
}

// PopFlash returns the pending flash message, if any, and clears it.
func (m *Manager) PopFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookieName)
	if err != nil || raw == "" {
		return ""
	}
	m.expireCookie(c, flashCookieName)

	var fc flashClaims
	if err := m.parse(raw, &fc); err != nil {
		return ""
	}
	return fc.Message
}

func (m *Manager) sign(cl jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(m.secret)
}

func (m *Manager) parse(raw string, cl jwt.Claims) error {
	token, err := jwt.ParseWithClaims(raw, cl, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return ErrInvalidSession
	}
	return nil
}

func (m *Manager) setCookie(c *gin.Context, name, value string, exp time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAgeFrom(exp), "/", "", m.secure, true)
}

func (m *Manager) expireCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", m.secure, true)
}

func maxAgeFrom(exp time.Time) int {
	sec := int(time.Until(exp).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}
