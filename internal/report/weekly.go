package report

import (
	"sort"
	"strings"

	"github.com/DavidW312/Running-Website/internal/parse"
	"github.com/DavidW312/Running-Website/internal/season"
	"github.com/DavidW312/Running-Website/internal/types"
)

// WeeklyCell is one weekday cell with its classification. Status is
// StatusPresent when the column is active for the week but the athlete's
// cell is empty, and StatusNone when the column has no data for anyone.
type WeeklyCell struct {
	Raw    string          `json:"raw"`
	Status types.DayStatus `json:"status"`
	Miles  float64         `json:"miles"`
}

// WeeklyRow is one line of the weekly mileage table. Header rows carry only
// the group/gender pair they introduce.
type WeeklyRow struct {
	Header     bool                     `json:"header"`
	Gender     types.Gender             `json:"gender"`
	Group      string                   `json:"group"`
	Name       string                   `json:"name,omitempty"`
	Cells      [types.WeekdayCount]WeeklyCell `json:"cells,omitempty"`
	TotalMiles float64                  `json:"total_miles"`
}

// WeeklyTable sorts a week's rows girls-first, then by group label, and
// synthesizes a section header row whenever the (group, gender) pair changes.
func WeeklyTable(week types.WeekTable) []WeeklyRow {
	rows := make([]types.AttendanceRow, len(week.Rows))
	copy(rows, week.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Gender != rows[j].Gender {
			return genderRank(rows[i].Gender) < genderRank(rows[j].Gender)
		}
		return rows[i].Group < rows[j].Group
	})

	active := season.ActiveColumns(rows)

	var out []WeeklyRow
	for i, row := range rows {
		if i == 0 || row.Group != rows[i-1].Group || row.Gender != rows[i-1].Gender {
			out = append(out, WeeklyRow{
				Header: true,
				Gender: row.Gender,
				Group:  row.Group,
			})
		}

		line := WeeklyRow{
			Gender:     row.Gender,
			Group:      row.Group,
			Name:       row.DisplayName,
			TotalMiles: row.TotalMiles,
		}
		for day := 0; day < types.WeekdayCount; day++ {
			cell := row.Daily[day]
			status := parse.Status(cell)
			if status == types.StatusNone && active[day] && strings.TrimSpace(cell) == "" {
				status = types.StatusPresent
			}
			line.Cells[day] = WeeklyCell{
				Raw:    cell,
				Status: status,
				Miles:  parse.Mileage(cell),
			}
		}
		out = append(out, line)
	}
	return out
}
