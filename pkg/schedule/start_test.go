package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcare/entities"
)

func TestStartDate(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	// 2024-06-01 20:00 UTC is already June 2nd in Seoul.
	now := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

	withPlan := func(start string) entities.ConditionOption {
		o := option("Aphid", 7, 28)
		o.ControlPlan.ControlStartDate = start
		return o
	}

	tests := []struct {
		name     string
		explicit string
		opt      entities.ConditionOption
		loc      *time.Location
		want     string
	}{
		{"explicit wins", "2024-03-01", withPlan("2024-02-01"), seoul, "2024-03-01"},
		{"plan start date", "", withPlan("2024-02-01"), seoul, "2024-02-01"},
		{"malformed plan date falls back to today", "", withPlan("soon"), seoul, "2024-06-02"},
		{"no plan date uses configured zone", "", option("Aphid", 7, 28), seoul, "2024-06-02"},
		{"nil zone is UTC", "", option("Aphid", 7, 28), nil, "2024-06-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StartDate(tt.explicit, tt.opt, now, tt.loc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(DateLayout))
		})
	}

	_, err = StartDate("01/02/2024", withPlan(""), now, seoul)
	assert.ErrorIs(t, err, ErrBadStartDate)
}
