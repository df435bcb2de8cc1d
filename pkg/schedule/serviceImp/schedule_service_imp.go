package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cropcare/entities"
	"cropcare/pkg/condition"
	"cropcare/pkg/schedule"
	repo "cropcare/pkg/schedule/repository"
	"cropcare/pkg/schedule/service"
)

type conditionLister interface {
	Conditions(ctx context.Context, cropID string) ([]entities.ConditionOption, error)
}

type schedSvc struct {
	crops conditionLister
	r     repo.ScheduleRepository
	loc   *time.Location
	now   func() time.Time
}

func NewScheduleService(crops conditionLister, r repo.ScheduleRepository, loc *time.Location) service.ScheduleService {
	if loc == nil {
		loc = time.UTC
	}
	return &schedSvc{crops: crops, r: r, loc: loc, now: time.Now}
}

// Apply selects a condition from the crop's current options, expands its
// control plan and merges the result into the stored calendar. Dates the new
// schedule shares with earlier ones now point at the new condition.
func (s *schedSvc) Apply(ctx context.Context, req service.ApplyRequest) (*service.ApplyResult, error) {
	opts, err := s.crops.Conditions(ctx, req.CropID)
	if err != nil {
		return nil, err
	}
	opt, err := condition.Find(opts, req.Condition)
	if err != nil {
		return nil, err
	}
	start, err := schedule.StartDate(req.StartDate, opt, s.now(), s.loc)
	if err != nil {
		return nil, err
	}
	next, err := schedule.Generate(opt, start)
	if err != nil {
		log.Printf("[schedule] crop=%s condition=%q: %v", req.CropID, opt.Name, err)
		return nil, err
	}

	prev, err := s.Calendar(ctx, req.CropID, "", "")
	if err != nil {
		return nil, err
	}

	appID := uuid.NewString()
	marks := make([]entities.ScheduleMark, 0, len(next))
	for _, e := range next.Entries() {
		marks = append(marks, entities.ScheduleMark{
			CropID:        req.CropID,
			Date:          e.Date,
			ApplicationID: appID,
			Condition:     e.Option,
		})
	}
	if err := s.r.Upsert(ctx, marks); err != nil {
		return nil, fmt.Errorf("save schedule: %w", err)
	}
	log.Printf("[schedule] crop=%s condition=%q app=%s dates=%d", req.CropID, opt.Name, appID, len(marks))

	return &service.ApplyResult{
		ApplicationID: appID,
		StartDate:     start.Format(schedule.DateLayout),
		Applied:       next.Entries(),
		Calendar:      schedule.Merge(prev, next),
	}, nil
}

func (s *schedSvc) Calendar(ctx context.Context, cropID, from, to string) (schedule.Schedule, error) {
	marks, err := s.r.List(ctx, cropID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	out := make(schedule.Schedule, len(marks))
	for _, m := range marks {
		out[m.Date] = schedule.Entry{Date: m.Date, Option: m.Condition}
	}
	return out, nil
}

func (s *schedSvc) At(ctx context.Context, cropID, date string) (schedule.Entry, error) {
	m, err := s.r.Find(ctx, cropID, date)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return schedule.Entry{}, service.ErrNoMark
	}
	if err != nil {
		return schedule.Entry{}, err
	}
	return schedule.Entry{Date: m.Date, Option: m.Condition}, nil
}

func (s *schedSvc) Clear(ctx context.Context, cropID string) (int64, error) {
	return s.r.DeleteByCrop(ctx, cropID)
}
