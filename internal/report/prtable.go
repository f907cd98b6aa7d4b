package report

import (
	"sort"
	"strings"

	"github.com/DavidW312/Running-Website/internal/parse"
	"github.com/DavidW312/Running-Website/internal/types"
)

// SortDir is the direction of a PR-table column sort.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// SortState tracks which event column the PR table is sorted on. Column is
// an index into types.EventNames, or -1 for the registry's natural order.
type SortState struct {
	Column int     `json:"column"`
	Dir    SortDir `json:"dir"`
}

// NewSortState returns the unsorted state.
func NewSortState() SortState {
	return SortState{Column: -1, Dir: SortAsc}
}

// Toggle applies a column click: clicking the sorted column flips the
// direction, clicking a new column sorts it ascending.
func (s *SortState) Toggle(column int) {
	if s.Column == column {
		if s.Dir == SortAsc {
			s.Dir = SortDesc
		} else {
			s.Dir = SortAsc
		}
		return
	}
	s.Column = column
	s.Dir = SortAsc
}

// SortPRs orders a copy of records by the state's event column. Rows with no
// recorded time sort last in both directions, so flipping the direction only
// reverses real times.
func SortPRs(records []types.PRRecord, state SortState) []types.PRRecord {
	out := make([]types.PRRecord, len(records))
	copy(out, records)
	if state.Column < 0 || state.Column >= types.EventCount {
		return out
	}

	desc := state.Dir == SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		a := parse.RaceTime(out[i].Times[state.Column])
		b := parse.RaceTime(out[j].Times[state.Column])
		aMissing := a >= parse.RaceTimeSentinel
		bMissing := b >= parse.RaceTimeSentinel
		if aMissing || bMissing {
			return !aMissing && bMissing
		}
		if desc {
			return a > b
		}
		return a < b
	})
	return out
}

// FilterPRs selects records whose name contains the query, ignoring case.
// The filter always runs over the full registry, so each query replaces the
// previous view rather than narrowing it.
func FilterPRs(records []types.PRRecord, query string) []types.PRRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]types.PRRecord, len(records))
		copy(out, records)
		return out
	}
	var out []types.PRRecord
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.Name), query) {
			out = append(out, record)
		}
	}
	return out
}
