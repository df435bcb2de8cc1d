package calendar

import (
	"cropcare/entities"
	"cropcare/pkg/severity"
)

// DefaultGridSize is one 5x7 calendar page.
const DefaultGridSize = 35

// Cell is one calendar square. Empty cells carry the neutral color and no
// timestamp. Cells are a plain chronological pad; they are not aligned to
// weekdays.
type Cell struct {
	Timestamp string        `json:"timestamp,omitempty"`
	Empty     bool          `json:"empty"`
	Tier      severity.Tier `json:"tier,omitempty"`
	Color     string        `json:"color"`
	Label     string        `json:"label"`
}

// Grid lays out a crop's records as exactly size cells (DefaultGridSize when
// size <= 0): timestamps in chronological order, then empty cells.
//
// Display limit: when the crop has more than size timestamps only the first
// size of them, chronologically, are placed on the grid. The records are not
// dropped from the index and remain reachable through Lookup.
func Grid(records map[string]entities.InspectionRecord, size int) []Cell {
	if size <= 0 {
		size = DefaultGridSize
	}
	ts := SortTimestamps(keys(records))
	cells := make([]Cell, size)
	for i := range cells {
		if i >= len(ts) {
			cells[i] = Cell{Empty: true, Color: severity.NeutralColor}
			continue
		}
		r := records[ts[i]]
		tier := severity.Classify(r)
		cells[i] = Cell{
			Timestamp: ts[i],
			Tier:      tier,
			Color:     severity.Color(tier),
			Label:     Label(r),
		}
	}
	return cells
}

// Label is the pest name if one was observed, else the disease name, else "".
func Label(r entities.InspectionRecord) string {
	if observed(r.PestInformation.PestName) {
		return r.PestInformation.PestName
	}
	if observed(r.DiseaseInformation.DiseaseName) {
		return r.DiseaseInformation.DiseaseName
	}
	return ""
}

func observed(name string) bool {
	return name != "" && name != "None" && name != "N/A"
}
