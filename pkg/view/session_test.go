package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cropcare/entities"
	"cropcare/pkg/calendar"
)

func index() calendar.Index {
	return calendar.Build([]entities.InspectionRecord{
		{CropID: "1", Timestamp: "2024-01-01"},
		{CropID: "2", Timestamp: "2024-01-02"},
	})
}

func TestFullNavigation(t *testing.T) {
	idx := index()
	var s Session
	assert.Equal(t, NoSelection, s.State)

	s = s.SelectCrop("1")
	assert.Equal(t, Session{State: CropSelected, CropID: "1"}, s)

	s = s.SelectDate(idx, "2024-01-01")
	assert.Equal(t, Session{State: DetailView, CropID: "1", Timestamp: "2024-01-01"}, s)

	s = s.Back()
	assert.Equal(t, Session{State: CropSelected, CropID: "1"}, s)

	s = s.Back()
	assert.Equal(t, Session{State: NoSelection}, s)

	assert.Equal(t, s, s.Back())
}

func TestSelectDateWithoutRecordIsNoop(t *testing.T) {
	idx := index()
	s := Session{}.SelectCrop("1")

	assert.Equal(t, s, s.SelectDate(idx, "2024-01-02"))
	assert.Equal(t, s, s.SelectDate(idx, ""))
}

func TestIgnoredTransitions(t *testing.T) {
	idx := index()

	none := Session{}
	assert.Equal(t, none, none.SelectDate(idx, "2024-01-01"))
	assert.Equal(t, none, none.SelectCrop(""))

	detail := Session{State: DetailView, CropID: "1", Timestamp: "2024-01-01"}
	assert.Equal(t, detail, detail.SelectCrop("2"))
	assert.Equal(t, detail, detail.SelectDate(idx, "2024-01-01"))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "NoSelection", NoSelection.String())
	assert.Equal(t, "CropSelected", CropSelected.String())
	assert.Equal(t, "DetailView", DetailView.String())
	assert.Equal(t, "Unknown", State(9).String())
}
