// Package parse converts raw spreadsheet cells into numeric values. Every
// function degrades to a defined default on bad input; a single malformed
// cell must never abort a report.
package parse

import (
	"strconv"
	"strings"

	"github.com/DavidW312/Running-Website/internal/types"
)

// RaceTimeSentinel is returned for missing or malformed race times. It is
// large enough to sort after any real performance and is never treated as a
// valid time for record comparison.
const RaceTimeSentinel = 999999.0

// Mileage parses a daily cell as decimal miles. Empty cells, status codes and
// anything else non-numeric count as 0 miles.
func Mileage(cell string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0
	}
	return value
}

// Status matches a daily cell against the absence codes. The match is exact:
// "P" is only ever synthesized during aggregation, never parsed from input.
func Status(cell string) types.DayStatus {
	switch cell {
	case "A":
		return types.StatusAbsent
	case "XA":
		return types.StatusExcused
	case "INJ":
		return types.StatusInjured
	default:
		return types.StatusNone
	}
}

// RaceTime converts a race time cell to seconds. Two formats are accepted:
// bare seconds ("270.5") and minutes:seconds ("4:30.5"). The non-time
// sentinels "", "-", "--" and "0" map to RaceTimeSentinel.
func RaceTime(cell string) float64 {
	s := strings.TrimSpace(cell)
	switch s {
	case "", "-", "--", "0":
		return RaceTimeSentinel
	}

	if i := strings.Index(s, ":"); i >= 0 {
		minutes, errMin := strconv.Atoi(s[:i])
		seconds, errSec := strconv.ParseFloat(s[i+1:], 64)
		if errMin != nil || errSec != nil || minutes < 0 || seconds < 0 {
			return RaceTimeSentinel
		}
		return float64(minutes)*60 + seconds
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 {
		return RaceTimeSentinel
	}
	return value
}

// IsValidRaceTime reports whether cell parses to a real performance.
func IsValidRaceTime(cell string) bool {
	return RaceTime(cell) < RaceTimeSentinel
}

// SplitName strips the "(F)" roster tag from a raw name and derives the
// gender from it. Names without the tag are classified as boys.
func SplitName(raw string) (string, types.Gender) {
	gender := types.GenderBoys
	if strings.Contains(raw, "(F)") {
		gender = types.GenderGirls
		raw = strings.ReplaceAll(raw, "(F)", "")
	}
	return strings.Join(strings.Fields(raw), " "), gender
}
