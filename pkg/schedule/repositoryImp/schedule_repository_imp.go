package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cropcare/entities"
	"cropcare/pkg/schedule/repository"
)

const upsertBatchSize = 500

type schedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &schedRepo{db} }

// Upsert writes marks keyed by (crop_id, date); an existing mark on the same
// date is overwritten.
func (r *schedRepo) Upsert(ctx context.Context, marks []entities.ScheduleMark) error {
	if len(marks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "crop_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"application_id", "condition", "updated_at"}),
	}).CreateInBatches(&marks, upsertBatchSize).Error
}

// List filters by an optional inclusive YYYY-MM-DD range; bad bounds are ignored.
func (r *schedRepo) List(ctx context.Context, cropID, from, to string) ([]entities.ScheduleMark, error) {
	var out []entities.ScheduleMark
	q := r.db.WithContext(ctx).Where("crop_id = ?", cropID)
	if validDate(from) {
		q = q.Where("date >= ?", from)
	}
	if validDate(to) {
		q = q.Where("date <= ?", to)
	}
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *schedRepo) Find(ctx context.Context, cropID, date string) (*entities.ScheduleMark, error) {
	var m entities.ScheduleMark
	if err := r.db.WithContext(ctx).Where("crop_id = ? AND date = ?", cropID, date).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *schedRepo) DeleteByCrop(ctx context.Context, cropID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("crop_id = ?", cropID).Delete(&entities.ScheduleMark{})
	return res.RowsAffected, res.Error
}

func validDate(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
