package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cropcare/entities"
	"cropcare/pkg/record"
	"cropcare/pkg/record/repository"
)

// Svc serves inspection records from the local store. It is the record
// source when no upstream RECORD_SOURCE_URL is configured.
type Svc struct{ r repository.RecordRepository }

func New(r repository.RecordRepository) *Svc { return &Svc{r: r} }

var _ record.Source = (*Svc)(nil)

func (s *Svc) Fetch(ctx context.Context, cropID string) ([]entities.InspectionRecord, error) {
	out, err := s.r.List(ctx, cropID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", record.ErrFetchFailure, err)
	}
	return out, nil
}

// Ingest validates and stores a batch. Records without crop_id or timestamp
// reject the whole batch.
func (s *Svc) Ingest(ctx context.Context, rs []entities.InspectionRecord) (int, error) {
	for i, r := range rs {
		if r.CropID == "" || r.Timestamp == "" {
			return 0, fmt.Errorf("%w: record %d needs crop_id and timestamp", ErrInvalidRecord, i)
		}
	}
	n, err := s.r.Upsert(ctx, rs)
	if err != nil {
		return 0, err
	}
	log.Printf("[records] stored %d of %d records", n, len(rs))
	return n, nil
}

func (s *Svc) Count(ctx context.Context) (int64, error) { return s.r.Count(ctx) }

var ErrInvalidRecord = errors.New("invalid record")
