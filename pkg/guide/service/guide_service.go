package service

import (
	"context"

	"cropcare/entities"
)

type GuideService interface {
	UpsertDocument(ctx context.Context, title, tags, text, sourceURL string) (*entities.GuideDoc, int, error)
	ImportURL(ctx context.Context, rawURL, title, tags string) (*entities.GuideDoc, int, error)
	Search(ctx context.Context, query string, k int) ([]entities.GuideChunk, error)
	DocsMeta(ctx context.Context, ids []uint) (map[uint]entities.GuideDoc, error)
	Docs(ctx context.Context) ([]entities.GuideDoc, error)
	Related(ctx context.Context, name string, k int) ([]entities.GuideRef, error)
}
