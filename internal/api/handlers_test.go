package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/api"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/service/keywords"
	pkg "github.com/ScrpTrx-Go/GoCryptoTags/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxBodyBytes = 1 << 10

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	extractor, err := keywords.NewDefaultExtractor()
	require.NoError(t, err)
	cached, err := keywords.NewCachedExtractor(extractor, 16)
	require.NoError(t, err)

	log := pkg.NewNop()
	return api.NewRouter(api.NewKeywordsHandler(cached, log, testMaxBodyBytes), log, nil)
}

func post(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) api.ExtractResponse {
	t.Helper()
	var resp api.ExtractResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestExtractEndpoints(t *testing.T) {
	router := setupTestRouter(t)
	body := `{"text": "Stellar (XLM) and Bitcoin (BTC) show growth"}`

	tests := []struct {
		path string
		mode string
		want []string
	}{
		{"/api/v1/keywords/extract", api.ModeAll, []string{"BTC", "Bitcoin", "Stellar", "XLM"}},
		{"/api/v1/keywords/tickers", api.ModeTickers, []string{"BTC", "XLM"}},
		{"/api/v1/keywords/projects", api.ModeProjects, []string{"Bitcoin", "Stellar"}},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			w := post(t, router, tt.path, body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			resp := decode(t, w)
			assert.Equal(t, tt.mode, resp.Mode)
			assert.Equal(t, tt.want, resp.Keywords)
		})
	}
}

func TestExtractAbsentOrNonStringText(t *testing.T) {
	router := setupTestRouter(t)

	for _, body := range []string{``, `{}`, `{"text": null}`, `{"text": 42}`, `{"text": ["BTC"]}`, `{"text": ""}`} {
		w := post(t, router, "/api/v1/keywords/extract", body)
		require.Equal(t, http.StatusOK, w.Code, body)

		assert.JSONEq(t, `{"mode":"extract","keywords":[]}`, w.Body.String(), body)
	}
}

func TestExtractMalformedJSON(t *testing.T) {
	router := setupTestRouter(t)

	w := post(t, router, "/api/v1/keywords/extract", `{"text": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid JSON body")
}

func TestHealthAndMetrics(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	post(t, router, "/api/v1/keywords/tickers", `{"text": "ETH"}`)

	w = httptest.NewRecorder()
	req, err = http.NewRequest(http.MethodGet, "/metrics", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cryptotags_extract_requests_total")
}

func TestExtractBodyTooLarge(t *testing.T) {
	router := setupTestRouter(t)

	text := strings.Repeat("Bitcoin ", testMaxBodyBytes)
	w := post(t, router, "/api/v1/keywords/extract", `{"text": "`+text+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "request body too large")

	w = post(t, router, "/api/v1/keywords/extract", `{"text": "Bitcoin"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"BTC", "Bitcoin"}, decode(t, w).Keywords)
}
