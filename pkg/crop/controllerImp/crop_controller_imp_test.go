package controllerImp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcare/entities"
	"cropcare/pkg/crop/serviceImp"
	"cropcare/pkg/record"
)

type sourceFunc func(ctx context.Context, cropID string) ([]entities.InspectionRecord, error)

func (f sourceFunc) Fetch(ctx context.Context, cropID string) ([]entities.InspectionRecord, error) {
	return f(ctx, cropID)
}

type stubGuides map[string][]entities.GuideRef

func (g stubGuides) Related(_ context.Context, name string, _ int) ([]entities.GuideRef, error) {
	return g[name], nil
}

func records(_ context.Context, cropID string) ([]entities.InspectionRecord, error) {
	all := []entities.InspectionRecord{
		{CropID: "1", Timestamp: "2024-01-01T09:00:00Z",
			PestInformation: entities.PestInformation{PestName: "Aphid", Severity: "High"}},
		{CropID: "1", Timestamp: "2024-01-02",
			DiseaseInformation: entities.DiseaseInformation{DiseaseName: "Blight", Severity: "Low"}},
	}
	var out []entities.InspectionRecord
	for _, r := range all {
		if cropID == "" || r.CropID == cropID {
			out = append(out, r)
		}
	}
	return out, nil
}

func serve(t *testing.T, src sourceFunc, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := New(serviceImp.NewCropService(src, 0), stubGuides{
		"Aphid": {{DocID: 1, Title: "Aphid control"}},
	})
	e.GET("/crops", h.Crops)
	e.GET("/crops/:id/calendar", h.Calendar)
	e.GET("/crops/:id/records/:timestamp", h.Record)
	e.GET("/crops/:id/conditions", h.Conditions)
	e.GET("/crops/:id/health-series", h.HealthSeries)
	e.GET("/analysis/pests", h.PestTotals)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestCalendarEndpoint(t *testing.T) {
	rec := serve(t, records, http.MethodGet, "/crops/1/calendar?size=5")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		CropID string `json:"crop_id"`
		Cells  []struct {
			Timestamp string `json:"timestamp"`
			Empty     bool   `json:"empty"`
			Label     string `json:"label"`
			Color     string `json:"color"`
		} `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "1", body.CropID)
	require.Len(t, body.Cells, 5)
	assert.Equal(t, "Aphid", body.Cells[0].Label)
	assert.Equal(t, "Blight", body.Cells[1].Label)
	assert.True(t, body.Cells[4].Empty)
}

func TestCalendarRejectsBadSize(t *testing.T) {
	rec := serve(t, records, http.MethodGet, "/crops/1/calendar?size=-3")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordEndpoint(t *testing.T) {
	rec := serve(t, records, http.MethodGet, "/crops/1/records/2024-01-01T09%3A00%3A00Z")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pest_name":"Aphid"`)

	rec = serve(t, records, http.MethodGet, "/crops/1/records/2030-01-01")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no record")
}

func TestConditionsEndpoint(t *testing.T) {
	rec := serve(t, records, http.MethodGet, "/crops/1/conditions?guides=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []struct {
		Name   string              `json:"name"`
		Kind   string              `json:"kind"`
		Guides []entities.GuideRef `json:"guides"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Aphid", out[0].Name)
	assert.Equal(t, "Pest", out[0].Kind)
	require.Len(t, out[0].Guides, 1)
	assert.Equal(t, "Aphid control", out[0].Guides[0].Title)
	assert.Empty(t, out[1].Guides)
}

func TestAnalysisEndpoints(t *testing.T) {
	rec := serve(t, records, http.MethodGet, "/crops")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"crop_id":"1"`)

	rec = serve(t, records, http.MethodGet, "/crops/1/health-series")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"1 day"`)

	rec = serve(t, records, http.MethodGet, "/analysis/pests")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFetchFailureIsBadGateway(t *testing.T) {
	broken := func(context.Context, string) ([]entities.InspectionRecord, error) {
		return nil, fmt.Errorf("%w: status 500", record.ErrFetchFailure)
	}
	rec := serve(t, broken, http.MethodGet, "/crops/1/calendar")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "fetch crop data failed")
}
