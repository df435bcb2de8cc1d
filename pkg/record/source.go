package record

import (
	"context"
	"errors"

	"cropcare/entities"
)

// ErrFetchFailure covers network errors and non-success responses from the
// record source. Fetches are not retried.
var ErrFetchFailure = errors.New("fetch crop data failed")

// Source returns the raw inspection records for one crop, or for all crops
// when cropID is empty. Records come back in fetch order.
type Source interface {
	Fetch(ctx context.Context, cropID string) ([]entities.InspectionRecord, error)
}
