package service

import (
	"context"
	"errors"

	"cropcare/pkg/schedule"
)

// ErrNoMark means the date carries no treatment annotation.
var ErrNoMark = errors.New("no schedule entry for date")

type ApplyRequest struct {
	CropID    string
	Condition string
	StartDate string // optional YYYY-MM-DD
}

type ApplyResult struct {
	ApplicationID string            `json:"application_id"`
	StartDate     string            `json:"start_date"`
	Applied       []schedule.Entry  `json:"applied"`
	Calendar      schedule.Schedule `json:"calendar"`
}

type ScheduleService interface {
	Apply(ctx context.Context, req ApplyRequest) (*ApplyResult, error)
	Calendar(ctx context.Context, cropID, from, to string) (schedule.Schedule, error)
	At(ctx context.Context, cropID, date string) (schedule.Entry, error)
	Clear(ctx context.Context, cropID string) (int64, error)
}
