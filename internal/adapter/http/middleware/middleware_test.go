package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORS([]string{"https://ms-pro.ru", " "}))
	r.GET("/api/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set("Origin", "https://ms-pro.ru")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://ms-pro.ru" {
			t.Fatalf("expected origin echoed, got %q", got)
		}
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Fatalf("expected no CORS header, got %q", got)
		}
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/ping", nil)
		req.Header.Set("Origin", "https://ms-pro.ru")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("wildcard", func(t *testing.T) {
		rw := gin.New()
		rw.Use(CORS([]string{"*"}))
		rw.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		rw.ServeHTTP(w, req)
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Fatalf("expected origin echoed, got %q", got)
		}
	})
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestAdminJWT(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(secret string) *gin.Engine {
		r := gin.New()
		r.GET("/api/leads", AdminJWT(secret), func(c *gin.Context) {
			claims, _ := AdminClaims(c)
			c.String(http.StatusOK, claims.Subject)
		})
		return r
	}
	call := func(r *gin.Engine, auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("open without secret", func(t *testing.T) {
		if w := call(newRouter(""), ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		if w := call(newRouter("s3cret"), ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok := signToken(t, "other", jwt.SigningMethodHS256, time.Now().Add(time.Hour))
		if w := call(newRouter("s3cret"), "Bearer "+tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired", func(t *testing.T) {
		tok := signToken(t, "s3cret", jwt.SigningMethodHS256, time.Now().Add(-time.Hour))
		if w := call(newRouter("s3cret"), "Bearer "+tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid", func(t *testing.T) {
		tok := signToken(t, "s3cret", jwt.SigningMethodHS256, time.Now().Add(time.Hour))
		w := call(newRouter("s3cret"), "Bearer "+tok)
		if w.Code != http.StatusOK || w.Body.String() != "admin" {
			t.Fatalf("expected 200 admin, got %d %q", w.Code, w.Body.String())
		}
	})
}

type observation struct {
	method, route string
	status        int
}

type fakeObserver struct {
	seen []observation
}

func (f *fakeObserver) ObserveHTTP(method, route string, status int, _ float64) {
	f.seen = append(f.seen, observation{method, route, status})
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	obs := &fakeObserver{}
	r := gin.New()
	r.Use(Metrics(obs))
	r.GET("/api/leads/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, path := range []string{"/api/leads/abc", "/missing"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if len(obs.seen) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(obs.seen))
	}
	if obs.seen[0] != (observation{"GET", "/api/leads/:id", http.StatusNotFound}) {
		t.Fatalf("unexpected observation: %+v", obs.seen[0])
	}
	if obs.seen[1].route != "" || obs.seen[1].status != http.StatusNotFound {
		t.Fatalf("unexpected observation for unmatched route: %+v", obs.seen[1])
	}
}
