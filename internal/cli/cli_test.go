package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcare/entities"
	"cropcare/pkg/calendar"
	"cropcare/pkg/record"
)

func fixture() []entities.InspectionRecord {
	return []entities.InspectionRecord{
		{
			CropID: "1", Timestamp: "2024-06-01T09:00:00",
			CropInformation:       entities.CropInformation{Name: "Tomato", Species: "Solanum lycopersicum"},
			PestInformation:       entities.PestInformation{PestName: "Aphid", Severity: "High", PestCount: 12},
			DiseaseInformation:    entities.DiseaseInformation{DiseaseName: "None", Severity: "None"},
			CropHealthInformation: entities.CropHealthInformation{OverallHealth: "Poor", RecommendedAction: "Spray neem"},
			ControlPlan:           &entities.ControlPlan{ControlStartDate: "2024-06-03", ControlInterval: 7, ControlDuration: 15},
		},
	}
}

func sourceServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var out []entities.InspectionRecord
		for _, rec := range fixture() {
			if c := r.URL.Query().Get("crop"); c == "" || c == rec.CropID {
				out = append(out, rec)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := Root()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestCrops(t *testing.T) {
	srv := sourceServer(t)
	out, err := run(t, "--source", srv.URL, "crops")
	require.NoError(t, err)
	assert.Contains(t, out, "Tomato")
}

func TestGrid(t *testing.T) {
	srv := sourceServer(t)
	out, err := run(t, "--source", srv.URL, "grid", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// five rows of seven cells, then the labelled records
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "2024-06-01")
	assert.Contains(t, lines[5], "Aphid")
}

func TestConditionsAndSchedule(t *testing.T) {
	srv := sourceServer(t)
	out, err := run(t, "--source", srv.URL, "conditions", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Aphid")
	assert.Contains(t, out, "every 7d for 15d")

	out, err = run(t, "--source", srv.URL, "schedule", "1", "Aphid")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-03  Aphid\n2024-06-10  Aphid\n2024-06-17  Aphid\n", out)

	out, err = run(t, "--source", srv.URL, "schedule", "1", "Aphid", "--start", "2024-07-01")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2024-07-01"))
}

func TestShow(t *testing.T) {
	srv := sourceServer(t)
	out, err := run(t, "--source", srv.URL, "show", "1", "2024-06-01T09:00:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Tomato")
	assert.Contains(t, out, "Spray neem")

	_, err = run(t, "--source", srv.URL, "show", "1", "2024-06-02T09:00:00")
	assert.ErrorIs(t, err, calendar.ErrNoRecordForKey)
}

func TestFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := run(t, "--source", srv.URL, "crops")
	assert.ErrorIs(t, err, record.ErrFetchFailure)
}
