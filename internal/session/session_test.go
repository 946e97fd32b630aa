package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieRequest(w *httptest.ResponseRecorder, target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSessionRoundTrip(t *testing.T) {
	m := NewManager("secret")

	w := httptest.NewRecorder()
	m.Create(w, "maria")

	usuario, ok := m.Parse(cookieRequest(w, "/home"))
	require.True(t, ok)
	assert.Equal(t, "maria", usuario)
}

func TestSessionUsernameWithDot(t *testing.T) {
	m := NewManager("secret")

	w := httptest.NewRecorder()
	m.Create(w, "j.perez")

	usuario, ok := m.Parse(cookieRequest(w, "/home"))
	require.True(t, ok)
	assert.Equal(t, "j.perez", usuario)
}

func TestSessionRejectsTamperedValue(t *testing.T) {
	m := NewManager("secret")

	w := httptest.NewRecorder()
	m.Create(w, "maria")
	cookie := w.Result().Cookies()[0]

	payload, sig, _ := strings.Cut(cookie.Value, ".")
	for _, bad := range []string{
		payload,                   // no signature
		payload + "." + sig + "x", // altered signature
		"bWFsbG9yeQ." + sig,       // altered payload, old signature
		"",
		"...",
	} {
		req := httptest.NewRequest(http.MethodGet, "/home", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: bad})
		_, ok := m.Parse(req)
		assert.False(t, ok, "value %q must not parse", bad)
	}
}

func TestSessionRejectsWrongSecret(t *testing.T) {
	w := httptest.NewRecorder()
	NewManager("secret-a").Create(w, "maria")

	_, ok := NewManager("secret-b").Parse(cookieRequest(w, "/home"))
	assert.False(t, ok)
}

func TestClearExpiresCookie(t *testing.T) {
	m := NewManager("secret")

	w := httptest.NewRecorder()
	m.Clear(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Expires.Unix() <= 0)
}

func TestMiddlewareAttachesUsuario(t *testing.T) {
	m := NewManager("secret")

	w := httptest.NewRecorder()
	m.Create(w, "maria")

	var got string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = UsuarioFromContext(r.Context())
	})
	m.Middleware(next).ServeHTTP(httptest.NewRecorder(), cookieRequest(w, "/home"))
	assert.Equal(t, "maria", got)
}

func TestRequireRedirectsWithoutSession(t *testing.T) {
	m := NewManager("secret")

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	w := httptest.NewRecorder()
	m.Require(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leads", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}
