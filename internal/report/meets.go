package report

import (
	"strings"

	"github.com/DavidW312/Running-Website/internal/parse"
	"github.com/DavidW312/Running-Website/internal/pr"
	"github.com/DavidW312/Running-Website/internal/types"
)

// EventCell is one individual event time at a meet, cross-referenced against
// the PR registry.
type EventCell struct {
	Time        string  `json:"time"`
	Seconds     float64 `json:"seconds"`
	NewRecord   bool    `json:"new_record"`
	Improvement string  `json:"improvement,omitempty"`
}

// IndividualResult is one athlete's row in a meet's individual-events table.
type IndividualResult struct {
	Name  string                        `json:"name"`
	Cells [types.EventCount]EventCell `json:"cells"`
}

// IndividualSummary rolls up a meet's individual performances.
type IndividualSummary struct {
	ValidPerformances int     `json:"valid_performances"`
	NewRecords        int     `json:"new_records"`
	RecordRate        float64 `json:"record_rate"` // percent
}

// RelayRow is one athlete's relay participation at a meet.
type RelayRow struct {
	Name string           `json:"name"`
	Legs []types.RelayLeg `json:"legs"`
}

// RelaySummary rolls up a meet's relay participation: how many athlete-legs
// were run and how many distinct (time, event) team results they map to.
type RelaySummary struct {
	LegParticipations int `json:"leg_participations"`
	DistinctResults   int `json:"distinct_results"`
}

// MeetNames lists the distinct meet names in first-seen order.
func MeetNames(results []types.RaceResult) []string {
	seen := make(map[string]bool)
	var names []string
	for _, result := range results {
		meet := strings.TrimSpace(result.Meet)
		if meet == "" || seen[meet] {
			continue
		}
		seen[meet] = true
		names = append(names, meet)
	}
	return names
}

// IndividualResults filters a meet's rows down to those with at least one
// valid individual time and flags every cell that sets or matches a personal
// record. Athletes missing from the registry debut on any valid time.
func IndividualResults(results []types.RaceResult, meet string, registry *pr.Registry) ([]IndividualResult, IndividualSummary) {
	var rows []IndividualResult
	var summary IndividualSummary

	for _, result := range results {
		if !strings.EqualFold(strings.TrimSpace(result.Meet), strings.TrimSpace(meet)) {
			continue
		}
		if !hasIndividualTime(result) {
			continue
		}

		var prior types.PRRecord
		if registry != nil {
			prior, _ = registry.Lookup(result.Name)
		}

		row := IndividualResult{Name: result.Name}
		for e := 0; e < types.EventCount; e++ {
			raceTime := result.Times[e]
			cell := EventCell{
				Time:    raceTime,
				Seconds: parse.RaceTime(raceTime),
			}
			if parse.IsValidRaceTime(raceTime) {
				summary.ValidPerformances++
				if pr.IsNewRecord(raceTime, prior.Times[e]) {
					cell.NewRecord = true
					cell.Improvement = pr.Improvement(prior.Times[e], raceTime)
					summary.NewRecords++
				}
			}
			row.Cells[e] = cell
		}
		rows = append(rows, row)
	}

	if summary.ValidPerformances > 0 {
		summary.RecordRate = float64(summary.NewRecords) / float64(summary.ValidPerformances) * 100
	}
	return rows, summary
}

// RelayResults filters a meet's rows down to those with at least one valid
// relay leg and summarizes team participation.
func RelayResults(results []types.RaceResult, meet string) ([]RelayRow, RelaySummary) {
	var rows []RelayRow
	var summary RelaySummary
	distinct := make(map[types.RelayLeg]bool)

	for _, result := range results {
		if !strings.EqualFold(strings.TrimSpace(result.Meet), strings.TrimSpace(meet)) {
			continue
		}

		var legs []types.RelayLeg
		for _, leg := range result.Legs {
			if !parse.IsValidRaceTime(leg.Time) {
				continue
			}
			legs = append(legs, leg)
			summary.LegParticipations++
			distinct[types.RelayLeg{
				Time:  strings.TrimSpace(leg.Time),
				Event: strings.TrimSpace(leg.Event),
			}] = true
		}
		if len(legs) == 0 {
			continue
		}
		rows = append(rows, RelayRow{Name: result.Name, Legs: legs})
	}

	summary.DistinctResults = len(distinct)
	return rows, summary
}

func hasIndividualTime(result types.RaceResult) bool {
	for _, raceTime := range result.Times {
		if parse.IsValidRaceTime(raceTime) {
			return true
		}
	}
	return false
}
