// Package severity derives a coarse health tier from an inspection record.
package severity

import "cropcare/entities"

type Tier string

const (
	Healthy   Tier = "Healthy"
	Moderate  Tier = "Moderate"
	Unhealthy Tier = "Unhealthy"
)

const (
	noIssue       = "None"
	unknownHealth = "Unknown"
	healthyLabel  = "Healthy"
)

// Display colors used by the calendar.
const (
	HealthyColor   = "#4CAF50"
	ModerateColor  = "#FFEB3B"
	UnhealthyColor = "#F44336"
	NeutralColor   = "#E0E0E0"
)

// Score counts the "no issue" conditions met by r (0..3): no pest severity,
// no disease severity, overall health reported as Healthy.
func Score(r entities.InspectionRecord) int {
	pest := orDefault(r.PestInformation.Severity, noIssue)
	disease := orDefault(r.DiseaseInformation.Severity, noIssue)
	overall := orDefault(r.CropHealthInformation.OverallHealth, unknownHealth)

	n := 0
	if pest == noIssue {
		n++
	}
	if disease == noIssue {
		n++
	}
	if overall == healthyLabel {
		n++
	}
	return n
}

// Classify never fails; unknown values count against the record.
func Classify(r entities.InspectionRecord) Tier {
	switch Score(r) {
	case 3:
		return Healthy
	case 2:
		return Moderate
	default:
		return Unhealthy
	}
}

func Color(t Tier) string {
	switch t {
	case Healthy:
		return HealthyColor
	case Moderate:
		return ModerateColor
	case Unhealthy:
		return UnhealthyColor
	}
	return NeutralColor
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
