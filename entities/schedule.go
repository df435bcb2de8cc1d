package entities

import "time"

// ScheduleMark is a persisted calendar annotation: one treatment date for a
// crop and the condition that produced it. (crop_id, date) is unique, so a
// newer application overwrites the mark for a colliding date.
type ScheduleMark struct {
	MarkID        uint            `gorm:"primaryKey" json:"mark_id"`
	CropID        string          `gorm:"uniqueIndex:idx_mark_crop_date" json:"crop_id"`
	Date          string          `gorm:"uniqueIndex:idx_mark_crop_date" json:"date"` // YYYY-MM-DD
	ApplicationID string          `gorm:"index" json:"application_id"`
	Condition     ConditionOption `gorm:"serializer:json" json:"condition"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
