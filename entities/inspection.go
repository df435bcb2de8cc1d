package entities

import "time"

// InspectionRecord is one periodic inspection of a crop as delivered by the
// record source. Records are treated as immutable once fetched.
type InspectionRecord struct {
	RecordID  uint   `gorm:"primaryKey" json:"-"`
	CropID    string `gorm:"uniqueIndex:idx_record_crop_ts" json:"crop_id"`
	Timestamp string `gorm:"uniqueIndex:idx_record_crop_ts" json:"timestamp"` // ISO date

	CropInformation       CropInformation       `gorm:"embedded;embeddedPrefix:crop_" json:"crop_information"`
	PestInformation       PestInformation       `gorm:"embedded;embeddedPrefix:pest_" json:"pest_information"`
	DiseaseInformation    DiseaseInformation    `gorm:"embedded;embeddedPrefix:disease_" json:"disease_information"`
	CropHealthInformation CropHealthInformation `gorm:"embedded;embeddedPrefix:health_" json:"crop_health_information"`

	ControlPlan *ControlPlan `gorm:"serializer:json" json:"control_plan,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type CropInformation struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	GrowthStage string `json:"growth_stage"`
}

type PestInformation struct {
	PestName  string `json:"pest_name"`
	Severity  string `json:"severity"`
	Pesticide string `json:"pesticide"`
	PestCount int    `json:"pest_count"`
}

type DiseaseInformation struct {
	DiseaseName string `json:"disease_name"`
	Symptoms    string `json:"symptoms"`
	Severity    string `json:"severity"`
	Pesticide   string `json:"pesticide"`
}

type CropHealthInformation struct {
	OverallHealth      string  `json:"overall_health"`
	RecommendedAction  string  `json:"recommended_action"`
	OverallHealthScore float64 `json:"overall_health_score"`
}

// ControlPlan holds the treatment parameters attached to a pest or disease
// occurrence. Interval and duration are in days.
type ControlPlan struct {
	ControlStartDate string  `json:"control_start_date,omitempty"`
	ControlInterval  int     `json:"control_interval"`
	ControlDuration  int     `json:"control_duration"`
	ControlMethod    string  `json:"control_method,omitempty"`
	PesticideDosage  string  `json:"pesticide_dosage,omitempty"`
	EstimatedCost    float64 `json:"estimated_cost,omitempty"`
}
