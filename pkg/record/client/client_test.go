package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcare/pkg/record"
)

const payload = `[
  {
    "crop_id": "1",
    "timestamp": "2024-01-01",
    "crop_information": {"name": "Strawberry", "species": "Fragaria", "growth_stage": "Flowering"},
    "pest_information": {"pest_name": "Aphid", "severity": "High", "pesticide": "Imidacloprid", "pest_count": 12},
    "disease_information": {"disease_name": "None", "symptoms": "", "severity": "None", "pesticide": ""},
    "crop_health_information": {"overall_health": "Moderate", "recommended_action": "Spray", "overall_health_score": 62.5},
    "control_plan": {"control_start_date": "2024-01-02", "control_interval": 7, "control_duration": 28,
                     "control_method": "Spray", "pesticide_dosage": "2ml/L", "estimated_cost": 15000},
    "image_url": "http://img/1.jpg"
  },
  {"crop_id": "1", "timestamp": "2024-01-08"}
]`

func TestFetchDecodesRecords(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.Query().Get("crop")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	out, err := New(srv.URL+"/", time.Second).Fetch(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "/fetch/crop-data", gotPath)
	assert.Equal(t, "1", gotQuery)

	r := out[0]
	assert.Equal(t, "Strawberry", r.CropInformation.Name)
	assert.Equal(t, "Aphid", r.PestInformation.PestName)
	assert.Equal(t, 12, r.PestInformation.PestCount)
	assert.Equal(t, 62.5, r.CropHealthInformation.OverallHealthScore)
	require.NotNil(t, r.ControlPlan)
	assert.Equal(t, 7, r.ControlPlan.ControlInterval)
	assert.Equal(t, 28, r.ControlPlan.ControlDuration)
	assert.Equal(t, "2024-01-02", r.ControlPlan.ControlStartDate)
	assert.Nil(t, out[1].ControlPlan)
}

func TestFetchAllCropsOmitsQuery(t *testing.T) {
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	out, err := New(srv.URL, 0).Fetch(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, rawQuery)
}

func TestFetchNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Fetch(context.Background(), "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, record.ErrFetchFailure)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Fetch(context.Background(), "1")
	assert.ErrorIs(t, err, record.ErrFetchFailure)
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url, time.Second).Fetch(context.Background(), "1")
	assert.ErrorIs(t, err, record.ErrFetchFailure)
}

func TestFetchCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(srv.URL, time.Second).Fetch(ctx, "1")
	assert.ErrorIs(t, err, record.ErrFetchFailure)
	assert.ErrorIs(t, err, context.Canceled)
}
