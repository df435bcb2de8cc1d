package service

import (
	"context"

	"cropcare/entities"
	"cropcare/pkg/analysis"
	"cropcare/pkg/calendar"
)

type CropService interface {
	Crops(ctx context.Context) ([]analysis.Crop, error)
	Calendar(ctx context.Context, cropID string, size int) ([]calendar.Cell, error)
	Record(ctx context.Context, cropID, timestamp string) (entities.InspectionRecord, error)
	Conditions(ctx context.Context, cropID string) ([]entities.ConditionOption, error)
	HealthSeries(ctx context.Context, cropID string) (analysis.Series, error)
	PestTotals(ctx context.Context) ([]analysis.PestTotal, error)
}
