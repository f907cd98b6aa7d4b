// Package report builds the ranked and grouped views served to the
// dashboard: season leaderboards, weekly mileage tables, the sortable PR
// table and per-meet result tables.
package report

import (
	"sort"

	"github.com/DavidW312/Running-Website/internal/types"
)

// Leaderboard ranks athletes by descending season miles. The sort is stable:
// athletes with equal mileage keep their input order.
func Leaderboard(totals *types.SeasonTotals) []types.SeasonTotal {
	ranked := make([]types.SeasonTotal, len(totals.Athletes))
	copy(ranked, totals.Athletes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Miles > ranked[j].Miles
	})
	return ranked
}

// GroupLeader is the top-mileage athlete for one (gender, group) pair.
type GroupLeader struct {
	Gender types.Gender `json:"gender"`
	Group  string       `json:"group"`
	Name   string       `json:"name"`
	Miles  float64      `json:"miles"`
}

// GroupLeaders picks the highest-mileage athlete per (gender, group) pair.
// On a mileage tie the first athlete seen keeps the spot. Output is ordered
// girls before boys, then by group label.
func GroupLeaders(totals *types.SeasonTotals) []GroupLeader {
	type key struct {
		gender types.Gender
		group  string
	}
	leaders := make(map[key]GroupLeader)
	var order []key

	for _, athlete := range totals.Athletes {
		k := key{athlete.Gender, athlete.Group}
		current, ok := leaders[k]
		if !ok {
			order = append(order, k)
		}
		if !ok || athlete.Miles > current.Miles {
			leaders[k] = GroupLeader{
				Gender: athlete.Gender,
				Group:  athlete.Group,
				Name:   athlete.Name,
				Miles:  athlete.Miles,
			}
		}
	}

	out := make([]GroupLeader, 0, len(order))
	for _, k := range order {
		out = append(out, leaders[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Gender != out[j].Gender {
			return genderRank(out[i].Gender) < genderRank(out[j].Gender)
		}
		return out[i].Group < out[j].Group
	})
	return out
}

// genderRank orders girls sections ahead of boys everywhere a view is split
// by gender.
func genderRank(g types.Gender) int {
	if g == types.GenderGirls {
		return 0
	}
	return 1
}
