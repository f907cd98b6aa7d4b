// Package season folds weekly attendance tables into season-long totals.
package season

import (
	"strings"

	"github.com/DavidW312/Running-Website/internal/parse"
	"github.com/DavidW312/Running-Website/internal/types"
)

// Aggregate folds the given week tables, in caller order, into season totals.
// It is a pure function of its input: the same weeks always produce the same
// totals.
//
// A weekday column only counts for a week when at least one athlete has data
// in it; columns nobody filled in (a future day, typically) are excluded so
// they cannot inflate the active-day denominator. Each athlete keeps the last
// non-empty group value seen across the weeks.
func Aggregate(weeks []types.WeekTable) *types.SeasonTotals {
	totals := &types.SeasonTotals{}
	index := make(map[string]int)

	for _, week := range weeks {
		active := ActiveColumns(week.Rows)
		for _, row := range week.Rows {
			i, ok := index[row.DisplayName]
			if !ok {
				i = len(totals.Athletes)
				index[row.DisplayName] = i
				totals.Athletes = append(totals.Athletes, types.SeasonTotal{
					Name:   row.DisplayName,
					Gender: row.Gender,
					Group:  types.DefaultGroup,
				})
			}
			athlete := &totals.Athletes[i]
			if group := strings.TrimSpace(row.Group); group != "" && group != types.DefaultGroup {
				athlete.Group = group
			}

			for day := 0; day < types.WeekdayCount; day++ {
				if !active[day] {
					continue
				}
				totals.ActiveDays++

				miles := parse.Mileage(row.Daily[day])
				athlete.Miles += miles
				totals.TeamMiles += miles

				switch parse.Status(row.Daily[day]) {
				case types.StatusAbsent:
					athlete.Absent++
				case types.StatusExcused:
					athlete.Excused++
				case types.StatusInjured:
					athlete.Injured++
				default:
					continue
				}
				athlete.Absences++
				totals.TeamAbsences++
			}
		}
	}

	totals.AttendanceHealth = health(totals.TeamAbsences, totals.ActiveDays)
	return totals
}

// health is the share of active athlete-days not lost to an absence. With no
// active days there is no denominator and the team is considered fully
// healthy.
func health(absences, activeDays int) float64 {
	if activeDays == 0 {
		return 100
	}
	return (1 - float64(absences)/float64(activeDays)) * 100
}

// ActiveColumns reports, per weekday, whether any athlete in the week has a
// non-empty cell in that column. Inactive columns are excluded from all
// counting for the week.
func ActiveColumns(rows []types.AttendanceRow) [types.WeekdayCount]bool {
	var active [types.WeekdayCount]bool
	for _, row := range rows {
		for day, cell := range row.Daily {
			if strings.TrimSpace(cell) != "" {
				active[day] = true
			}
		}
	}
	return active
}
