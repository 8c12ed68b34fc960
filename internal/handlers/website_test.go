package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sdko-org/website-generator/internal/openrouter"
	"github.com/sdko-org/website-generator/internal/storage"
	"github.com/sdko-org/website-generator/internal/workflow"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	entries map[string]storage.Entry
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{entries: make(map[string]storage.Entry)}
}

func (f *fakeStorage) Put(_ context.Context, key, html string, metadata storage.Metadata) error {
	f.entries[key] = storage.Entry{HTML: html, Metadata: metadata}
	return nil
}

func (f *fakeStorage) Get(_ context.Context, key string) (*storage.Entry, error) {
	entry, ok := f.entries[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &entry, nil
}

func (f *fakeStorage) List(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	for k := range f.entries {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

type fakeGenerator struct{}

func (fakeGenerator) GenerateWebsite(_ context.Context, model, _ string) (*openrouter.Generation, error) {
	return &openrouter.Generation{HTML: "<html><body>fresh</body></html>", ID: "gen-1"}, nil
}

func (fakeGenerator) GenerationCost(_ context.Context, _ string) (float64, error) {
	return 0.001, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func storeWebsite(store *fakeStorage, date, html string) {
	store.Put(context.Background(), storage.IndexKey(date), html, storage.Metadata{
		Model:     "test/model",
		Timestamp: 1700000000000,
		Generation: storage.GenerationStats{
			DurationMs:  1000,
			TotalTokens: 42,
		},
	})
}

func newTestRouter(store *fakeStorage) *mux.Router {
	logger := testLogger()
	wf := workflow.New(logger, fakeGenerator{}, store, nil)
	h := NewWebsiteHandler(logger, store, wf)

	r := mux.NewRouter()
	r.Use(SecureHeadersMiddleware)
	RegisterRoutes(r, h)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestServeLatestWebsite(t *testing.T) {
	store := newFakeStorage()
	storeWebsite(store, "2024-01-02", "<html><head></head><body>old</body></html>")
	storeWebsite(store, "2024-01-10", "<html><head></head><body>new</body></html>")

	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "new")
	assert.NotContains(t, rec.Body.String(), ">old<")
	// The overlay reports the resolved date, not just the stored bytes.
	assert.Contains(t, rec.Body.String(), `"date": "2024-01-10"`)
	assert.Contains(t, rec.Body.String(), `id="generation-metadata"`)
	assert.Contains(t, rec.Body.String(), `<link rel="icon"`)
}

func TestServeExplicitDate(t *testing.T) {
	store := newFakeStorage()
	storeWebsite(store, "2024-03-01", "<html><head></head><body>march</body></html>")

	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/?date=2024-03-01")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "march")
	assert.Contains(t, rec.Body.String(), `"date": "2024-03-01"`)
}

func TestExplicitDateNotStored(t *testing.T) {
	store := newFakeStorage()
	storeWebsite(store, "2024-03-01", "<html><head></head><body>march</body></html>")

	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/?date=2099-01-01")

	require.Equal(t, http.StatusNotFound, rec.Code)
	payload := decodeJSON(t, rec)
	assert.Equal(t, "Not Found", payload["error"])
	assert.Contains(t, payload["message"], "2099-01-01")
}

func TestNoWebsiteGeneratedYet(t *testing.T) {
	rec := doRequest(t, newTestRouter(newFakeStorage()), http.MethodGet, "/")

	require.Equal(t, http.StatusNotFound, rec.Code)
	payload := decodeJSON(t, rec)
	assert.Equal(t, "No website generated yet", payload["message"])
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, newTestRouter(newFakeStorage()), http.MethodGet, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeJSON(t, rec)
	assert.Equal(t, "ok", payload["status"])
	assert.NotZero(t, payload["timestamp"])
}

func TestUnmatchedRouteReturnsPath(t *testing.T) {
	rec := doRequest(t, newTestRouter(newFakeStorage()), http.MethodGet, "/no/such/route")

	require.Equal(t, http.StatusNotFound, rec.Code)
	payload := decodeJSON(t, rec)
	assert.Equal(t, "Not Found", payload["error"])
	assert.Equal(t, "/no/such/route", payload["path"])
}

func TestSecureHeaders(t *testing.T) {
	rec := doRequest(t, newTestRouter(newFakeStorage()), http.MethodGet, "/health")

	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "script-src 'self' 'unsafe-inline' https://esm.sh")
	assert.Contains(t, csp, "https://fonts.gstatic.com")
	assert.Contains(t, csp, "frame-src 'none'")
	assert.Contains(t, csp, "object-src 'none'")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestFavicon(t *testing.T) {
	rec := doRequest(t, newTestRouter(newFakeStorage()), http.MethodGet, "/favicon.svg")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
}

func TestManualGenerateAccepted(t *testing.T) {
	rec := doRequest(t, newTestRouter(newFakeStorage()), http.MethodPost, "/admin/generate")

	require.Equal(t, http.StatusAccepted, rec.Code)
	payload := decodeJSON(t, rec)
	assert.Equal(t, "accepted", payload["status"])
}
