// Package pr holds the personal-records registry and the rules for deciding
// whether a race performance counts as a new record.
package pr

import (
	"strings"

	"github.com/DavidW312/Running-Website/internal/types"
)

// headerSentinel marks the optional header row in the PRs tab; it is excluded
// from data rows by its first-column value.
const headerSentinel = "Name"

// Registry holds exactly one record per athlete, keyed case-insensitively on
// the trimmed name. It is replaced wholesale on every fetch.
type Registry struct {
	records []types.PRRecord
	byName  map[string]int
}

// NewRegistry builds a registry from raw PR-tab rows (name in the first
// column, one column per event after it). The first row is skipped when it is
// the header row, and duplicate names keep the first record seen.
func NewRegistry(rows [][]string) *Registry {
	reg := &Registry{byName: make(map[string]int)}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(cellAt(row, 0))
		if name == "" {
			continue
		}
		if i == 0 && name == headerSentinel {
			continue
		}
		key := normalizeName(name)
		if _, seen := reg.byName[key]; seen {
			continue
		}

		record := types.PRRecord{Name: name}
		for e := 0; e < types.EventCount; e++ {
			record.Times[e] = strings.TrimSpace(cellAt(row, e+1))
		}
		reg.byName[key] = len(reg.records)
		reg.records = append(reg.records, record)
	}
	return reg
}

// Lookup finds an athlete's record by name, ignoring case and surrounding
// whitespace.
func (r *Registry) Lookup(name string) (types.PRRecord, bool) {
	i, ok := r.byName[normalizeName(name)]
	if !ok {
		return types.PRRecord{}, false
	}
	return r.records[i], true
}

// Records returns the registry rows in sheet order. The returned slice is a
// copy; callers may reorder it freely.
func (r *Registry) Records() []types.PRRecord {
	out := make([]types.PRRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Len reports the number of athletes in the registry.
func (r *Registry) Len() int {
	return len(r.records)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
