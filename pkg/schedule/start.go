package schedule

import (
	"errors"
	"fmt"
	"log"
	"time"

	"cropcare/entities"
)

var ErrBadStartDate = errors.New("invalid start date")

// StartDate picks the first treatment day: the explicit date when given,
// then the plan's control_start_date, then now in loc. Only a malformed
// explicit date is an error; a malformed plan date is logged and skipped.
func StartDate(explicit string, opt entities.ConditionOption, now time.Time, loc *time.Location) (time.Time, error) {
	if explicit != "" {
		d, err := ParseDate(explicit)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %w", ErrBadStartDate, err)
		}
		return d, nil
	}
	if cp := opt.ControlPlan; cp != nil && cp.ControlStartDate != "" {
		if d, err := ParseDate(cp.ControlStartDate); err == nil {
			return d, nil
		}
		log.Printf("[schedule] ignoring control_start_date %q for %q", cp.ControlStartDate, opt.Name)
	}
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc), nil
}
