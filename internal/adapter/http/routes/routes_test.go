package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/adapter/persistence/repository"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/infrastructure/config"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/infrastructure/database"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/infrastructure/metrics"
)

func newTestServer(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenSQL(context.Background(), config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db, config.DriverSQLite))

	return NewRouter(cfg, Dependencies{
		Leads:        repository.NewLeadSQLRepository(db, repository.DialectSQLite),
		Calculations: repository.NewCalculationSQLRepository(db, repository.DialectSQLite),
		Metrics:      metrics.New(prometheus.NewRegistry()),
	})
}

func call(t *testing.T, r http.Handler, method, path, body string, header map[string]string) (int, []byte) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

func TestRouter_LeadLifecycle(t *testing.T) {
	r := newTestServer(t, config.Config{})

	code, body := call(t, r, http.MethodGet, "/api/leads", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(body))

	code, body = call(t, r, http.MethodPost, "/api/leads", `{"name":"A","phone":"+7 900 000-00-00","email":"a@b.com","serviceType":"other","message":""}`, nil)
	require.Equal(t, http.StatusOK, code, string(body))

	var created map[string]any
	require.NoError(t, json.Unmarshal(body, &created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.NotEmpty(t, created["createdAt"])
	assert.Equal(t, "website", created["source"])

	code, body = call(t, r, http.MethodGet, "/api/leads/"+id, "", nil)
	require.Equal(t, http.StatusOK, code)
	var fetched map[string]any
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, created, fetched)

	code, body = call(t, r, http.MethodPost, "/api/leads", `{"name":"B","phone":"2","email":"b@b.com","serviceType":"mspro-quad","source":"contact-form"}`, nil)
	require.Equal(t, http.StatusOK, code, string(body))

	code, body = call(t, r, http.MethodGet, "/api/leads", "", nil)
	require.Equal(t, http.StatusOK, code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0]["name"])
	assert.Equal(t, "B", list[1]["name"])

	code, body = call(t, r, http.MethodGet, "/api/leads/nonexistent", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, string(body), `"error":"Lead not found"`)

	code, _ = call(t, r, http.MethodPost, "/api/leads", `{"name":"","phone":"1","email":"a@b.com","serviceType":"x"}`, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRouter_CalculationLifecycle(t *testing.T) {
	r := newTestServer(t, config.Config{})

	code, body := call(t, r, http.MethodPost, "/api/calculations", `{"serviceType":"chimney-painting","height":"30","surfaceArea":"150","coatingType":"premium","diameter":"2.5"}`, nil)
	require.Equal(t, http.StatusOK, code, string(body))

	var created map[string]any
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, 201000.0, created["totalCost"])
	assert.Equal(t, 2.5, created["diameter"])
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	code, body = call(t, r, http.MethodGet, "/api/calculations/"+id, "", nil)
	require.Equal(t, http.StatusOK, code)
	var fetched map[string]any
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, created, fetched)

	code, body = call(t, r, http.MethodGet, "/api/calculations/nonexistent", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, string(body), `"error":"Calculation not found"`)

	code, body = call(t, r, http.MethodPost, "/api/estimates", `{"serviceType":"mspro-quad","height":10,"surfaceArea":50,"coatingType":"standard"}`, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body), `"totalCost":72000`)

	code, _ = call(t, r, http.MethodPost, "/api/calculations", `{"serviceType":"chimney-painting","height":"-1","surfaceArea":"150","coatingType":"premium"}`, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRouter_RejectsOverflowingAmounts(t *testing.T) {
	r := newTestServer(t, config.Config{})
	payload := `{"serviceType":"chimney-painting","height":"10","surfaceArea":"1e306","coatingType":"fireproof"}`

	for _, path := range []string{"/api/estimates", "/api/calculations"} {
		code, body := call(t, r, http.MethodPost, path, payload, nil)
		assert.Equal(t, http.StatusBadRequest, code, path)
		assert.Contains(t, string(body), `"code":"INVALID_REQUEST"`, path)
	}
}

func TestRouter_PingAndAdminGuard(t *testing.T) {
	r := newTestServer(t, config.Config{AdminJWTSecret: "s3cret", CORSAllowedOrigins: []string{"https://ms-pro.ru"}})

	code, body := call(t, r, http.MethodGet, "/api/ping", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"message":"pong"}`, string(body))

	code, _ = call(t, r, http.MethodPost, "/api/leads", `{"name":"A","phone":"1","email":"a@b.com","serviceType":"other"}`, map[string]string{"Origin": "https://ms-pro.ru"})
	assert.Equal(t, http.StatusOK, code, "lead submission stays public")

	code, _ = call(t, r, http.MethodGet, "/api/leads", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	code, body = call(t, r, http.MethodGet, "/api/leads", "", map[string]string{"Authorization": "Bearer " + tok})
	require.Equal(t, http.StatusOK, code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 1)
}
