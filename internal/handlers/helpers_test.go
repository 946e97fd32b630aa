package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/fedesascensores/leads-app/internal/backend"
	"github.com/fedesascensores/leads-app/internal/store"
	"go.uber.org/zap"
)

// newTestStore points a Store at a fake data store served by h.
func newTestStore(t *testing.T, h http.HandlerFunc) *store.Store {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	client := backend.New(srv.URL, "test-key", zap.NewNop().Sugar())
	return store.New(client)
}

// formRequest builds a POST with form-encoded values.
func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func testLogger() *zap.SugaredLogger { return zap.NewNop().Sugar() }
