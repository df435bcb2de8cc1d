package repositoryImp

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cropcare/entities"
	"cropcare/pkg/record/repository"
)

// upsertBatchSize keeps each INSERT well under SQLite's bound-variable limit.
const upsertBatchSize = 500

type recordRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecordRepository { return &recordRepo{db} }

// Upsert stores records keyed by (crop_id, timestamp). A record replaces any
// stored record with the same key, and within one batch the later one wins.
func (r *recordRepo) Upsert(ctx context.Context, rs []entities.InspectionRecord) (int, error) {
	batch := lastPerKey(rs)
	if len(batch) == 0 {
		return 0, nil
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "crop_id"}, {Name: "timestamp"}},
		DoUpdates: clause.AssignmentColumns(updatable),
	}).CreateInBatches(&batch, upsertBatchSize).Error
	if err != nil {
		return 0, err
	}
	return len(batch), nil
}

// List returns records in insertion order; cropID "" lists every crop.
func (r *recordRepo) List(ctx context.Context, cropID string) ([]entities.InspectionRecord, error) {
	var out []entities.InspectionRecord
	q := r.db.WithContext(ctx)
	if cropID != "" {
		q = q.Where("crop_id = ?", cropID)
	}
	if err := q.Order("record_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recordRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&entities.InspectionRecord{}).Count(&n).Error
}

var updatable = []string{
	"crop_name", "crop_species", "crop_growth_stage",
	"pest_pest_name", "pest_severity", "pest_pesticide", "pest_pest_count",
	"disease_disease_name", "disease_symptoms", "disease_severity", "disease_pesticide",
	"health_overall_health", "health_recommended_action", "health_overall_health_score",
	"control_plan", "image_url", "updated_at",
}

func lastPerKey(rs []entities.InspectionRecord) []entities.InspectionRecord {
	type key struct{ crop, ts string }
	pos := map[key]int{}
	out := make([]entities.InspectionRecord, 0, len(rs))
	for _, rec := range rs {
		rec.RecordID = 0
		k := key{rec.CropID, rec.Timestamp}
		if i, ok := pos[k]; ok {
			out[i] = rec
			continue
		}
		pos[k] = len(out)
		out = append(out, rec)
	}
	return out
}
