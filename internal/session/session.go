// Package session implements the client-held signed session token. The server
// keeps no session state: the cookie value carries the username plus an
// HMAC-SHA256 signature, and every request is judged from the cookie alone.
package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

type ctxKey string

const (
	cookieName    = "session"
	usuarioCtxKey = ctxKey("usuario")
)

// Manager signs and validates session cookies with a fixed secret.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

func (m *Manager) sign(payload string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Create sets a signed cookie carrying the username.
func (m *Manager) Create(w http.ResponseWriter, usuario string) {
	payload := base64.RawURLEncoding.EncodeToString([]byte(usuario))
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    payload + "." + m.sign(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(14 * 24 * time.Hour),
	})
}

// Clear deletes the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Parse validates the cookie and returns the username. Any malformed or
// tampered value counts as no session.
func (m *Manager) Parse(r *http.Request) (string, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	payload, sig, found := strings.Cut(c.Value, ".")
	if !found {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(m.sign(payload))) {
		return "", false
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil || len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

// WithUsuario stores the username in context.
func WithUsuario(ctx context.Context, usuario string) context.Context {
	return context.WithValue(ctx, usuarioCtxKey, usuario)
}

// UsuarioFromContext extracts the logged-in username.
func UsuarioFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(usuarioCtxKey).(string)
	return v, ok && v != ""
}

// Middleware attaches the session username to the request context if present.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if usuario, ok := m.Parse(r); ok {
			r = r.WithContext(WithUsuario(r.Context(), usuario))
		}
		next.ServeHTTP(w, r)
	})
}

// Require redirects to the login page when no valid session identity is
// present. The originally requested action is discarded.
func (m *Manager) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UsuarioFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
