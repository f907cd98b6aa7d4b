package sheets

import (
	"fmt"
	"strings"

	"github.com/DavidW312/Running-Website/internal/parse"
	"github.com/DavidW312/Running-Website/internal/types"
)

// Schema describes where each field lives in a spreadsheet revision. Column
// layouts changed over the seasons (a group column appeared, relay results
// split into two legs, the race tab was renamed), so every offset is data
// here and selected once at the adapter boundary instead of being hard-coded
// at call sites.
type Schema struct {
	Version string

	// week tabs
	LastNameCol  int
	FirstNameCol int
	GroupCol     int // -1: sheet has no group column
	DayCols      [types.WeekdayCount]int
	TotalCol     int    // -1: total is computed from the day cells
	WeekRange    string // starts below the header row

	// personal records
	PRTab   string
	PRRange string

	// race results
	RaceTab        string
	RaceRange      string
	RaceNameCol    int
	RaceMeetCol    int
	RaceEventCols  [types.EventCount]int
	RelayTimeCols  []int
	RelayEventCols []int
}

// SchemaV1 is the original season layout: no training-group column, a
// precomputed weekly total column, and a single relay leg on a "Race
// Results" tab.
func SchemaV1() Schema {
	return Schema{
		Version:      "v1",
		LastNameCol:  0,
		FirstNameCol: 1,
		GroupCol:     -1,
		DayCols:      [types.WeekdayCount]int{2, 3, 4, 5, 6, 7},
		TotalCol:     8,
		WeekRange:    "A2:I",

		PRTab:   "PRs",
		PRRange: "A1:D",

		RaceTab:        "Race Results",
		RaceRange:      "A2:G",
		RaceNameCol:    0,
		RaceMeetCol:    1,
		RaceEventCols:  [types.EventCount]int{2, 3, 4},
		RelayTimeCols:  []int{5},
		RelayEventCols: []int{6},
	}
}

// SchemaV2 is the current layout: a group column after the name, weekly
// totals computed from the day cells, and two relay legs on the renamed
// "Race_Results" tab.
func SchemaV2() Schema {
	return Schema{
		Version:      "v2",
		LastNameCol:  0,
		FirstNameCol: 1,
		GroupCol:     2,
		DayCols:      [types.WeekdayCount]int{3, 4, 5, 6, 7, 8},
		TotalCol:     -1,
		WeekRange:    "A2:I",

		PRTab:   "PRs",
		PRRange: "A1:D",

		RaceTab:        "Race_Results",
		RaceRange:      "A2:I",
		RaceNameCol:    0,
		RaceMeetCol:    1,
		RaceEventCols:  [types.EventCount]int{2, 3, 4},
		RelayTimeCols:  []int{5, 7},
		RelayEventCols: []int{6, 8},
	}
}

// SchemaByVersion selects a schema by its version label.
func SchemaByVersion(version string) (Schema, error) {
	switch strings.ToLower(strings.TrimSpace(version)) {
	case "", "v2":
		return SchemaV2(), nil
	case "v1":
		return SchemaV1(), nil
	default:
		return Schema{}, fmt.Errorf("unknown sheet schema version %q", version)
	}
}

// AttendanceRows materializes a week tab's raw rows. Rows with no name are
// skipped; the gender tag is stripped off the combined name.
func (s Schema) AttendanceRows(rows RowSet) []types.AttendanceRow {
	var out []types.AttendanceRow
	for _, row := range rows {
		last := strings.TrimSpace(cellAt(row, s.LastNameCol))
		first := strings.TrimSpace(cellAt(row, s.FirstNameCol))
		if last == "" && first == "" {
			continue
		}
		display, gender := parse.SplitName(strings.TrimSpace(first + " " + last))

		group := types.DefaultGroup
		if s.GroupCol >= 0 {
			if g := strings.TrimSpace(cellAt(row, s.GroupCol)); g != "" {
				group = g
			}
		}

		var daily [types.WeekdayCount]string
		for day, col := range s.DayCols {
			daily[day] = cellAt(row, col)
		}

		var total float64
		if s.TotalCol >= 0 {
			total = parse.Mileage(cellAt(row, s.TotalCol))
		} else {
			for _, cell := range daily {
				total += parse.Mileage(cell)
			}
		}

		out = append(out, types.AttendanceRow{
			LastName:    last,
			FirstName:   first,
			DisplayName: display,
			Gender:      gender,
			Group:       group,
			Daily:       daily,
			TotalMiles:  total,
		})
	}
	return out
}

// RaceResults materializes the race-results tab. A leading header row is
// recognized by its "Name" first cell, matching the PRs tab convention.
func (s Schema) RaceResults(rows RowSet) []types.RaceResult {
	var out []types.RaceResult
	for i, row := range rows {
		name := strings.TrimSpace(cellAt(row, s.RaceNameCol))
		if name == "" {
			continue
		}
		if i == 0 && name == "Name" {
			continue
		}

		result := types.RaceResult{
			Name: name,
			Meet: strings.TrimSpace(cellAt(row, s.RaceMeetCol)),
		}
		for e, col := range s.RaceEventCols {
			result.Times[e] = strings.TrimSpace(cellAt(row, col))
		}
		for leg := range s.RelayTimeCols {
			legTime := strings.TrimSpace(cellAt(row, s.RelayTimeCols[leg]))
			legEvent := strings.TrimSpace(cellAt(row, s.RelayEventCols[leg]))
			if legTime == "" && legEvent == "" {
				continue
			}
			result.Legs = append(result.Legs, types.RelayLeg{
				Time:  legTime,
				Event: legEvent,
			})
		}
		out = append(out, result)
	}
	return out
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
