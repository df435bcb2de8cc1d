package repository

import (
	"context"

	"cropcare/entities"
)

type RecordRepository interface {
	Upsert(ctx context.Context, rs []entities.InspectionRecord) (int, error)
	List(ctx context.Context, cropID string) ([]entities.InspectionRecord, error)
	Count(ctx context.Context) (int64, error)
}
