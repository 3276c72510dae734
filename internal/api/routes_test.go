package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"gofolio/internal/config"
	"gofolio/internal/session"
	"gofolio/internal/storage"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// empty URI: the manager goes straight to fallback, no network involved
	conn := storage.NewConnManager(config.MongoConfig{MaxConnectAttempts: 1, ConnectTimeoutMS: 100}, slog.Default())
	conn.Connect(context.Background())

	store := storage.NewUnifiedStorage(
		storage.NewMongoStore(conn),
		storage.NewMemStore(true),
		conn,
		slog.Default(),
	)

	router := NewRouter(slog.Default())
	RegisterRoutes(router, conn, store, session.NewMemoryStore())
	return router
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestStorageHealthReportsFallback(t *testing.T) {
	router := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/storage", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var report storage.StatusReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !report.UsingFallback {
		t.Fatal("expected usingFallback=true without a connection string")
	}
	if report.Status != storage.StatusFallback {
		t.Fatalf("status = %q", report.Status)
	}
}

func TestReadinessServesFromMemoryInFallback(t *testing.T) {
	router := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestSessionCookieAssigned(t *testing.T) {
	router := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "folio_session" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("no session cookie assigned")
	}
	if cookie.Value == "" {
		t.Fatal("empty session token")
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be http-only")
	}

	// a returning visitor keeps their token
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.AddCookie(cookie)
	router.ServeHTTP(w2, req2)
	for _, c := range w2.Result().Cookies() {
		if c.Name == "folio_session" && c.Value != cookie.Value {
			t.Fatal("returning visitor was issued a new token")
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "gofolio_") {
		t.Fatal("metrics output missing application collectors")
	}
}
