// Package export renders a crop's calendar grid and treatment schedule as
// an xlsx workbook.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"cropcare/pkg/calendar"
	"cropcare/pkg/schedule"
)

const (
	CalendarSheet = "Calendar"
	ScheduleSheet = "Schedule"
	gridCols      = 7
)

// Workbook builds a two-sheet file. The Calendar sheet lays the cells out
// seven per row, each filled with its tier color; the Schedule sheet lists
// marks by date.
func Workbook(cropID string, cells []calendar.Cell, marks schedule.Schedule) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", CalendarSheet); err != nil {
		return nil, err
	}
	if err := writeCalendar(f, cropID, cells); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(ScheduleSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSchedule(f, marks); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeCalendar(f *excelize.File, cropID string, cells []calendar.Cell) error {
	if err := f.SetCellValue(CalendarSheet, "A1", "Crop "+cropID); err != nil {
		return err
	}
	if err := f.SetColWidth(CalendarSheet, "A", "G", 22); err != nil {
		return err
	}
	styles := map[string]int{}
	for i, c := range cells {
		ref, err := excelize.CoordinatesToCellName(i%gridCols+1, i/gridCols+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(CalendarSheet, ref, cellText(c)); err != nil {
			return err
		}
		id, ok := styles[c.Color]
		if !ok {
			id, err = f.NewStyle(&excelize.Style{
				Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.TrimPrefix(c.Color, "#")}},
				Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
			})
			if err != nil {
				return err
			}
			styles[c.Color] = id
		}
		if err := f.SetCellStyle(CalendarSheet, ref, ref, id); err != nil {
			return err
		}
	}
	return nil
}

func cellText(c calendar.Cell) string {
	if c.Empty {
		return ""
	}
	if c.Label == "" {
		return c.Timestamp
	}
	return c.Timestamp + "\n" + c.Label
}

var scheduleHeader = []any{"Date", "Condition", "Kind", "Method", "Dosage", "Agent"}

func writeSchedule(f *excelize.File, marks schedule.Schedule) error {
	if err := f.SetSheetRow(ScheduleSheet, "A1", &scheduleHeader); err != nil {
		return err
	}
	for i, d := range marks.Dates() {
		e := marks[d]
		row := []any{d, e.Option.Name, string(e.Option.Kind), "", "", e.Option.TreatmentAgent}
		if p := e.Option.ControlPlan; p != nil {
			row[3], row[4] = p.ControlMethod, p.PesticideDosage
		}
		if err := f.SetSheetRow(ScheduleSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}
