package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postag/internal/common"
	"postag/internal/config"
	"postag/internal/engine"
	"postag/internal/lexicon"
)

func init() {
	common.Silence()
}

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	fsys := fstest.MapFS{
		"english-lexicon.txt": {Data: []byte("cat NN\ncan MD\nrun NN\n. .\n")},
	}
	e, err := engine.NewWithRegistry(config.Default(), lexicon.NewRegistry(fsys, 1), engine.FilterOptions{})
	require.NoError(t, err)
	return Handler(e, []string{"https://example.org"})
}

func TestTagEndpoint(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tag", strings.NewReader(`{"text":"cats can run."}`))
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res engine.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []bool{true, true, false, true}, res.Split)
	require.Len(t, res.Terms, 4)
	assert.Equal(t, "cat", res.Terms[0].Norm)
	assert.Equal(t, "NNS", res.Terms[0].Tag)
	assert.Equal(t, "VB", res.Terms[2].Tag)
}

func TestTokenizeEndpoint(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tokenize", strings.NewReader(`{"text":"(hello)"}`))
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res tokenizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []string{"(", "hello", ")"}, res.Terms)
}

func TestBadRequests(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tag", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tag", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON body")
}

func TestHealthAndCORS(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	req.Header.Set("Origin", "https://example.org")
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://example.org", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
