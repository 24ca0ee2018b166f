package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/meridianlaw/cms/api"
	dbfs "github.com/meridianlaw/cms/db"
	"github.com/meridianlaw/cms/internal/audit"
	"github.com/meridianlaw/cms/internal/auth"
	"github.com/meridianlaw/cms/internal/config"
	"github.com/meridianlaw/cms/internal/db"
	"github.com/meridianlaw/cms/internal/store"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "hunter2"
)

func newTestRouter(t *testing.T) (*mux.Router, *store.Store) {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	st, err := store.Open(dir, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	hash, err := auth.HashPassword(testAdminPassword)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := st.EnsureAdmin(ctx, testAdminEmail, hash, "Admin"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	conn, err := db.New(ctx, filepath.Join(dir, "audit.db"))
	if err != nil {
		t.Fatalf("open audit db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := db.Migrate(ctx, conn, dbfs.Migrations); err != nil {
		t.Fatalf("migrate audit db: %v", err)
	}

	cfg := &config.Config{
		Addr:          ":0",
		JWTSecret:     "testsecret",
		SessionTTL:    time.Hour,
		AllowedOrigin: "http://localhost:3000",
	}

	return api.SetupRoutes(cfg, "test", "now", st, audit.New(conn, nil)), st
}

// doJSON fires a request through the router, JSON-encoding body when it is
// not already a string.
func doJSON(t *testing.T, router *mux.Router, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func login(t *testing.T, router *mux.Router) []*http.Cookie {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/v1/auth/login",
		map[string]string{"email": testAdminEmail, "password": testAdminPassword}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: status %d body %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login set no cookie")
	}

	return cookies
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
