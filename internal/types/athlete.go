package types

// Gender is derived from the roster naming convention, never stored in the
// sheet: a name carrying the literal "(F)" tag belongs to the girls team,
// everything else counts as boys.
type Gender string

const (
	GenderGirls Gender = "girls"
	GenderBoys  Gender = "boys"
)

// DayStatus classifies a single weekday cell in a week tab.
type DayStatus string

const (
	StatusNone    DayStatus = ""
	StatusAbsent  DayStatus = "A"
	StatusExcused DayStatus = "XA"
	StatusInjured DayStatus = "INJ"
	// StatusPresent is synthesized for an empty cell in an active column.
	// It never appears in source data.
	StatusPresent DayStatus = "P"
)

// WeekdayCount is the number of tracked training days per week (Mon-Sat).
const WeekdayCount = 6

// DefaultGroup is assigned when a sheet schema has no group column or the
// cell is empty.
const DefaultGroup = "Unassigned"

// AttendanceRow is one athlete's record for one week tab. Rows are read-only
// snapshots materialized per fetch and replaced wholesale on the next fetch.
type AttendanceRow struct {
	LastName    string               `json:"last_name"`
	FirstName   string               `json:"first_name"`
	DisplayName string               `json:"display_name"` // combined name with the gender tag stripped
	Gender      Gender               `json:"gender"`
	Group       string               `json:"group"`
	Daily       [WeekdayCount]string `json:"daily"` // raw cells, Mon-Sat
	TotalMiles  float64              `json:"total_miles"`
}

// WeekTable is the materialized snapshot of one mileage week tab.
type WeekTable struct {
	Tab  string          `json:"tab"`
	Rows []AttendanceRow `json:"rows"`
}

// SeasonTotal accumulates one athlete's season-long mileage and attendance.
type SeasonTotal struct {
	Name     string  `json:"name"`
	Gender   Gender  `json:"gender"`
	Group    string  `json:"group"`
	Miles    float64 `json:"miles"`
	Absences int     `json:"absences"`
	Absent   int     `json:"absent"`
	Excused  int     `json:"excused"`
	Injured  int     `json:"injured"`
}

// SeasonTotals is the result of folding every week tab into season figures.
// It is rebuilt from scratch on every aggregation run, never persisted.
type SeasonTotals struct {
	Athletes         []SeasonTotal `json:"athletes"` // first-seen order
	TeamMiles        float64       `json:"team_miles"`
	TeamAbsences     int           `json:"team_absences"`
	ActiveDays       int           `json:"active_days"` // athlete-days on active columns
	AttendanceHealth float64       `json:"attendance_health"`
}
