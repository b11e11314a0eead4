package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srobertson/xlit/internal/logger"
	"github.com/srobertson/xlit/internal/memory/sqlite"
	"github.com/srobertson/xlit/internal/registry"
	"github.com/srobertson/xlit/internal/xlit"
)

const russianIC = "Russian (Cyrillic)-->English (IC)"

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	reg, err := registry.New()
	require.NoError(t, err)

	repo, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	log := logger.New("error", "json")
	svc := xlit.New(reg, repo, log)
	return NewRouter(reg, repo, svc, log).Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLanguagesEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/languages", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Languages []string `json:"languages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Languages, 16)
	assert.Contains(t, body.Languages, "Russian")
}

func TestMethodsEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/methods?language=Ukrainian", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Methods []struct {
			Name              string `json:"name"`
			DisplayName       string `json:"display_name"`
			LanguageCode      string `json:"language_code"`
			SupportsCaseMatch bool   `json:"supports_case_match"`
		} `json:"methods"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Methods, 3)
	for _, m := range body.Methods {
		assert.NotEmpty(t, m.DisplayName)
		assert.Equal(t, "uk", m.LanguageCode)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/methods?language=Esperanto", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/methods", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTransliterateEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/transliterate",
		`{"method":"`+russianIC+`","text":"целитель"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "tselitel", body.Text)
}

func TestTransliterateEndpointMatchCase(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/transliterate",
		`{"method":"`+russianIC+`","text":"ЦЕЛИТЕЛЬ","match_case":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TSELITEL")
}

func TestTransliterateEndpointErrors(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/transliterate", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/transliterate", `{"text":"текст"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/transliterate",
		`{"method":"nope","text":"текст"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/transliterate",
		`{"method":"`+russianIC+`","text":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTMXExportEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/transliterate",
		`{"method":"`+russianIC+`","text":"мир"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/export/tmx?method="+url.QueryEscape(russianIC), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, rec.Body.String(), "<seg>мир</seg>")
	assert.Contains(t, rec.Body.String(), "<seg>mir</seg>")
	assert.Contains(t, rec.Body.String(), `srclang="ru"`)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/export/tmx", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/export/tmx?method=nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"registry":"ready"`)
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodOptions, "/api/v1/transliterate", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
