package serviceImp

import (
	"context"
	"fmt"
	"log"

	"cropcare/entities"
	"cropcare/pkg/analysis"
	"cropcare/pkg/calendar"
	"cropcare/pkg/condition"
	"cropcare/pkg/crop/service"
	"cropcare/pkg/record"
)

// cropSvc fetches a full record collection per call and runs the pure
// calendar/condition/analysis functions over it.
type cropSvc struct {
	src      record.Source
	gridSize int
}

func NewCropService(src record.Source, gridSize int) service.CropService {
	if gridSize <= 0 {
		gridSize = calendar.DefaultGridSize
	}
	return &cropSvc{src: src, gridSize: gridSize}
}

// fetch returns nothing when ctx ends before the source answers, so no
// partial result is ever applied.
func (s *cropSvc) fetch(ctx context.Context, cropID string) ([]entities.InspectionRecord, error) {
	rs, err := s.src.Fetch(ctx, cropID)
	if err != nil {
		log.Printf("[records] fetch crop=%q: %v", cropID, err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch crop=%q discarded: %w", cropID, err)
	}
	return rs, nil
}

func (s *cropSvc) Crops(ctx context.Context) ([]analysis.Crop, error) {
	rs, err := s.fetch(ctx, "")
	if err != nil {
		return nil, err
	}
	return analysis.Crops(rs), nil
}

func (s *cropSvc) Calendar(ctx context.Context, cropID string, size int) ([]calendar.Cell, error) {
	rs, err := s.fetch(ctx, cropID)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = s.gridSize
	}
	return calendar.Build(rs).Grid(cropID, size), nil
}

func (s *cropSvc) Record(ctx context.Context, cropID, timestamp string) (entities.InspectionRecord, error) {
	rs, err := s.fetch(ctx, cropID)
	if err != nil {
		return entities.InspectionRecord{}, err
	}
	return calendar.Build(rs).Lookup(cropID, timestamp)
}

func (s *cropSvc) Conditions(ctx context.Context, cropID string) ([]entities.ConditionOption, error) {
	rs, err := s.fetch(ctx, cropID)
	if err != nil {
		return nil, err
	}
	return condition.Dedupe(rs), nil
}

func (s *cropSvc) HealthSeries(ctx context.Context, cropID string) (analysis.Series, error) {
	rs, err := s.fetch(ctx, cropID)
	if err != nil {
		return analysis.Series{}, err
	}
	return analysis.HealthSeries(rs, cropID), nil
}

func (s *cropSvc) PestTotals(ctx context.Context) ([]analysis.PestTotal, error) {
	rs, err := s.fetch(ctx, "")
	if err != nil {
		return nil, err
	}
	return analysis.PestTotals(rs), nil
}
