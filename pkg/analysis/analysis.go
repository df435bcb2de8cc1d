// Package analysis aggregates inspection records for the crop overview charts.
package analysis

import (
	"fmt"

	"cropcare/entities"
)

var palette = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4CAF50", "#FF5722"}

type Crop struct {
	CropID string `json:"crop_id"`
	Name   string `json:"name"`
}

// Crops lists distinct crops in first-appearance order. The name is taken
// from the last record seen for the crop.
func Crops(records []entities.InspectionRecord) []Crop {
	pos := map[string]int{}
	var out []Crop
	for _, r := range records {
		if i, ok := pos[r.CropID]; ok {
			out[i].Name = r.CropInformation.Name
			continue
		}
		pos[r.CropID] = len(out)
		out = append(out, Crop{CropID: r.CropID, Name: r.CropInformation.Name})
	}
	return out
}

type PestTotal struct {
	CropID    string `json:"crop_id"`
	Name      string `json:"name"`
	PestCount int    `json:"pest_count"`
	Color     string `json:"color"`
}

// PestTotals sums pest_count per crop. Colors cycle through a fixed palette.
func PestTotals(records []entities.InspectionRecord) []PestTotal {
	crops := Crops(records)
	sums := map[string]int{}
	for _, r := range records {
		sums[r.CropID] += r.PestInformation.PestCount
	}
	out := make([]PestTotal, len(crops))
	for i, c := range crops {
		out[i] = PestTotal{
			CropID:    c.CropID,
			Name:      c.Name,
			PestCount: sums[c.CropID],
			Color:     palette[i%len(palette)],
		}
	}
	return out
}

type Series struct {
	CropID string    `json:"crop_id"`
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// HealthSeries returns overall health scores for one crop in input order,
// labelled "1 day", "2 day", ... An empty crop yields a single "No Data"
// point at zero.
func HealthSeries(records []entities.InspectionRecord, cropID string) Series {
	s := Series{CropID: cropID}
	for _, r := range records {
		if r.CropID != cropID {
			continue
		}
		s.Labels = append(s.Labels, fmt.Sprintf("%d day", len(s.Labels)+1))
		s.Scores = append(s.Scores, r.CropHealthInformation.OverallHealthScore)
	}
	if len(s.Labels) == 0 {
		s.Labels = []string{"No Data"}
		s.Scores = []float64{0}
	}
	return s
}
