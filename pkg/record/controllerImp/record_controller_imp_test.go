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

	"cropcare/entities"
	"cropcare/internal/testdb"
	"cropcare/pkg/record/repositoryImp"
	"cropcare/pkg/record/serviceImp"
)

const batch = `[
 {"crop_id":"1","timestamp":"2024-06-01T09:00:00","crop_information":{"name":"Tomato"},
  "pest_information":{"pest_name":"Aphid","severity":"Low","pest_count":4}},
 {"crop_id":"2","timestamp":"2024-06-01T09:00:00","crop_information":{"name":"Pepper"}}
]`

func newServer(t *testing.T) *echo.Echo {
	h := New(serviceImp.New(repositoryImp.New(testdb.Open(t))))
	e := echo.New()
	e.GET("/fetch/crop-data", h.List)
	e.POST("/fetch/crop-data", h.Ingest)
	return e
}

func post(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/fetch/crop-data", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIngestThenList(t *testing.T) {
	e := newServer(t)

	rec := post(e, batch)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"stored":2}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fetch/crop-data?crop=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []entities.InspectionRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Tomato", out[0].CropInformation.Name)
	assert.Equal(t, 4, out[0].PestInformation.PestCount)
}

func TestListEmpty(t *testing.T) {
	e := newServer(t)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fetch/crop-data?crop=9", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestIngestRejects(t *testing.T) {
	e := newServer(t)
	assert.Equal(t, http.StatusBadRequest, post(e, `[{"crop_id":"1"}]`).Code)
	assert.Equal(t, http.StatusBadRequest, post(e, `{"crop_id":`).Code)
}
