package repository

import (
	"context"

	"cropcare/entities"
)

type GuideRepository interface {
	CreateDoc(ctx context.Context, d *entities.GuideDoc, chunks []entities.GuideChunk) error
	ListDocs(ctx context.Context) ([]entities.GuideDoc, error)
	AllChunks(ctx context.Context) ([]entities.GuideChunk, error)
	DocsByIDs(ctx context.Context, ids []uint) (map[uint]entities.GuideDoc, error)
}
