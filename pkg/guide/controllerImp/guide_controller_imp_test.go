package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcare/internal/testdb"
	"cropcare/pkg/guide/repositoryImp"
	"cropcare/pkg/guide/serviceImp"
)

const page = `<html><head><title>Leaf Spot</title></head><body>
<nav><li>Home</li></nav>
<main><h1>Leaf Spot</h1><p>Apply copper fungicide every 10 days.</p></main>
</body></html>`

func newServer(t *testing.T, allowed ...string) *echo.Echo {
	h := New(serviceImp.New(repositoryImp.New(testdb.Open(t)), allowed, 0))
	e := echo.New()
	e.POST("/guides", h.IngestText)
	e.POST("/guides/url", h.IngestURL)
	e.GET("/guides", h.Search)
	return e
}

func post(e *echo.Echo, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestIngestTextAndSearch(t *testing.T) {
	e := newServer(t)

	rec := post(e, "/guides", `{"title":"Aphids","text":"Neem oil for aphids."}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = post(e, "/guides", `{"title":"","text":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(e, "/guides?q=neem")
	require.Equal(t, http.StatusOK, rec.Code)
	var out []outChunk
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Aphids", out[0].DocTitle)

	rec = get(e, "/guides?q=neem&k=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestURL(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	defer site.Close()

	e := newServer(t, "127.0.0.1")
	rec := post(e, "/guides/url", `{"url":"`+site.URL+`/leaf-spot"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"title":"Leaf Spot"`)

	rec = get(e, "/guides?q=copper")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Apply copper fungicide every 10 days.")
	assert.NotContains(t, rec.Body.String(), "Home")
}

func TestIngestURLRejects(t *testing.T) {
	e := newServer(t, "extension.example.org")

	assert.Equal(t, http.StatusForbidden, post(e, "/guides/url", `{"url":"https://evil.example.com/x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(e, "/guides/url", `{"url":"ftp://extension.example.org/x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(e, "/guides/url", `{}`).Code)
}
