package pr

import (
	"fmt"
	"strings"

	"github.com/DavidW312/Running-Website/internal/parse"
)

// IsNewRecord decides whether a race time counts as a new personal record
// against the prior best:
//
//  1. No valid performance ("", "-", "0", whitespace) is never a record.
//  2. No recorded history ("", "--", whitespace) makes any valid performance
//     a record (a debut).
//  3. Otherwise the race counts when its seconds are less than OR equal to
//     the prior best. Matching an existing record still qualifies, so a meet
//     where the record was originally set keeps its highlight.
func IsNewRecord(raceTime, priorPR string) bool {
	switch strings.TrimSpace(raceTime) {
	case "", "-", "0":
		return false
	}
	switch strings.TrimSpace(priorPR) {
	case "", "--":
		return true
	}
	return parse.RaceTime(raceTime) <= parse.RaceTime(priorPR)
}

// Improvement renders the improvement label shown next to a new record:
// "(Debut)" when there was no prior time, "(-<delta>s)" to one decimal place
// when strictly faster, and "" when the time only matches the record.
func Improvement(priorPR, raceTime string) string {
	switch strings.TrimSpace(priorPR) {
	case "", "--":
		return "(Debut)"
	}
	delta := parse.RaceTime(priorPR) - parse.RaceTime(raceTime)
	if delta <= 0 {
		return ""
	}
	return fmt.Sprintf("(-%.1fs)", delta)
}
