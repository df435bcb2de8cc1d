// Package schedule expands a condition's control plan into recurring
// treatment dates.
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"cropcare/entities"
)

const DateLayout = "2006-01-02"

// ErrMissingControlPlan is returned when the option has no control plan, a
// non-positive interval or duration, or a duration above MaxControlDuration.
// No entries are produced.
var ErrMissingControlPlan = errors.New("missing control plan")

// MaxControlDuration caps a plan at roughly ten years of days.
const MaxControlDuration = 3660

// Entry is one treatment date and the condition that generated it.
type Entry struct {
	Date   string                   `json:"date"`
	Option entities.ConditionOption `json:"condition"`
}

// Schedule maps YYYY-MM-DD to its entry. A date holds one entry.
type Schedule map[string]Entry

// Generate emits one entry at start + offset days for every offset
// 0, interval, 2*interval, ... strictly below duration. It is pure.
func Generate(option entities.ConditionOption, start time.Time) (Schedule, error) {
	cp := option.ControlPlan
	if cp == nil {
		return nil, fmt.Errorf("%w: %s has no control plan", ErrMissingControlPlan, option.Name)
	}
	interval, duration := cp.ControlInterval, cp.ControlDuration
	if interval <= 0 || duration <= 0 {
		return nil, fmt.Errorf("%w: %s interval=%d duration=%d",
			ErrMissingControlPlan, option.Name, interval, duration)
	}
	if duration > MaxControlDuration {
		return nil, fmt.Errorf("%w: %s duration=%d exceeds %d days",
			ErrMissingControlPlan, option.Name, duration, MaxControlDuration)
	}

	day := civil(start)
	out := make(Schedule, duration/interval+1)
	for offset := 0; ; offset += interval {
		d := day.AddDate(0, 0, offset).Format(DateLayout)
		out[d] = Entry{Date: d, Option: option}
		// stop before offset+interval could pass duration or overflow
		if offset >= duration-interval {
			break
		}
	}
	return out, nil
}

// Merge applies next on top of base and returns a new schedule. Dates present
// in both take next's entry (last applied wins); all other dates are kept.
// Neither argument is modified.
func Merge(base, next Schedule) Schedule {
	out := make(Schedule, len(base)+len(next))
	for d, e := range base {
		out[d] = e
	}
	for d, e := range next {
		out[d] = e
	}
	return out
}

// Dates returns the scheduled dates in ascending order.
func (s Schedule) Dates() []string {
	out := make([]string, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Entries returns the entries ordered by date.
func (s Schedule) Entries() []Entry {
	out := make([]Entry, 0, len(s))
	for _, d := range s.Dates() {
		out = append(out, s[d])
	}
	return out
}

// ParseDate accepts YYYY-MM-DD or RFC3339 and returns midnight UTC of that
// calendar day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return civil(t), nil
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
