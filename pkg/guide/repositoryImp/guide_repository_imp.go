package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"cropcare/entities"
	"cropcare/pkg/guide/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GuideRepository { return &repo{db} }

// CreateDoc stores the document and its chunks in one transaction.
func (r *repo) CreateDoc(ctx context.Context, d *entities.GuideDoc, chunks []entities.GuideChunk) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(d).Error; err != nil {
			return err
		}
		if len(chunks) == 0 {
			return nil
		}
		for i := range chunks {
			chunks[i].DocID = d.DocID
		}
		return tx.Create(&chunks).Error
	})
}

func (r *repo) ListDocs(ctx context.Context) ([]entities.GuideDoc, error) {
	var ds []entities.GuideDoc
	return ds, r.db.WithContext(ctx).Order("doc_id DESC").Find(&ds).Error
}

func (r *repo) AllChunks(ctx context.Context) ([]entities.GuideChunk, error) {
	var cs []entities.GuideChunk
	return cs, r.db.WithContext(ctx).Order("chunk_id ASC").Find(&cs).Error
}

func (r *repo) DocsByIDs(ctx context.Context, ids []uint) (map[uint]entities.GuideDoc, error) {
	if len(ids) == 0 {
		return map[uint]entities.GuideDoc{}, nil
	}
	var ds []entities.GuideDoc
	if err := r.db.WithContext(ctx).Where("doc_id IN ?", ids).Find(&ds).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]entities.GuideDoc, len(ds))
	for i := range ds {
		m[ds[i].DocID] = ds[i]
	}
	return m, nil
}
