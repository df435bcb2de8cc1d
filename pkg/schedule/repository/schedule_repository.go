package repository

import (
	"context"

	"cropcare/entities"
)

type ScheduleRepository interface {
	Upsert(ctx context.Context, marks []entities.ScheduleMark) error
	List(ctx context.Context, cropID, from, to string) ([]entities.ScheduleMark, error)
	Find(ctx context.Context, cropID, date string) (*entities.ScheduleMark, error)
	DeleteByCrop(ctx context.Context, cropID string) (int64, error)
}
