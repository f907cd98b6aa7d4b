package server

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/DavidW312/Running-Website/internal/pr"
	"github.com/DavidW312/Running-Website/internal/season"
	"github.com/DavidW312/Running-Website/internal/sheets"
	"github.com/DavidW312/Running-Website/internal/types"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	cacheKeyWeeks = "weeks"
	cacheKeyPRs   = "prs"
	cacheKeyRaces = "races"
)

// Store owns every snapshot the handlers read. It replaces the original
// dashboard's ambient globals: all data flows through here and is replaced
// wholesale when a cache entry expires and the next request refetches.
type Store struct {
	source sheets.Source
	schema sheets.Schema
	cache  *cache.Cache

	prAttempts int
	prDelay    time.Duration

	mu sync.Mutex // serializes upstream refreshes
}

// NewStore wires a data source, a column schema and a TTL cache together.
func NewStore(source sheets.Source, schema sheets.Schema, ttl time.Duration, prAttempts int, prDelay time.Duration) *Store {
	return &Store{
		source:     source,
		schema:     schema,
		cache:      cache.New(ttl, 2*ttl),
		prAttempts: prAttempts,
		prDelay:    prDelay,
	}
}

// WeeksSnapshot is one fetch cycle over every week tab. Tabs that failed to
// fetch are skipped and listed rather than aborting the whole cycle, so one
// bad week cannot take down season analytics.
type WeeksSnapshot struct {
	ID         string            `json:"id"`
	Weeks      []types.WeekTable `json:"weeks"`
	FailedTabs []string          `json:"failed_tabs,omitempty"`
}

// Weeks fetches every week tab, issuing the independent fetches concurrently
// and waiting for all of them. Results come back in spreadsheet tab order.
func (s *Store) Weeks(ctx context.Context) (*WeeksSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, found := s.cache.Get(cacheKeyWeeks); found {
		return cached.(*WeeksSnapshot), nil
	}

	tabs, err := s.source.ListTabs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to discover week tabs: %w", err)
	}
	weekTabs := sheets.WeekTabs(tabs)

	rowSets := make([]sheets.RowSet, len(weekTabs))
	fetchErrs := make([]error, len(weekTabs))
	var wg sync.WaitGroup
	for i, tab := range weekTabs {
		wg.Add(1)
		go func(i int, tab string) {
			defer wg.Done()
			rowSets[i], fetchErrs[i] = s.source.FetchRows(ctx, tab, s.schema.WeekRange)
		}(i, tab)
	}
	wg.Wait()

	snapshot := &WeeksSnapshot{ID: uuid.NewString()}
	for i, tab := range weekTabs {
		if fetchErrs[i] != nil {
			log.Printf("skipping week tab %q: %v", tab, fetchErrs[i])
			snapshot.FailedTabs = append(snapshot.FailedTabs, tab)
			continue
		}
		snapshot.Weeks = append(snapshot.Weeks, types.WeekTable{
			Tab:  tab,
			Rows: s.schema.AttendanceRows(rowSets[i]),
		})
	}

	s.cache.Set(cacheKeyWeeks, snapshot, cache.DefaultExpiration)
	return snapshot, nil
}

// SeasonSnapshot pairs season totals with the fetch cycle that produced them.
type SeasonSnapshot struct {
	ID         string              `json:"id"`
	Totals     *types.SeasonTotals `json:"totals"`
	FailedTabs []string            `json:"failed_tabs,omitempty"`
}

// Season aggregates the current week snapshot. Aggregation is pure, so it is
// recomputed per call rather than cached.
func (s *Store) Season(ctx context.Context) (*SeasonSnapshot, error) {
	weeks, err := s.Weeks(ctx)
	if err != nil {
		return nil, err
	}
	return &SeasonSnapshot{
		ID:         weeks.ID,
		Totals:     season.Aggregate(weeks.Weeks),
		FailedTabs: weeks.FailedTabs,
	}, nil
}

// PRRegistry fetches the personal-records tab, retrying a bounded number of
// times. Views that depend on PR data wait here instead of polling forever;
// when every attempt fails the caller gets the last error.
func (s *Store) PRRegistry(ctx context.Context) (*pr.Registry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, found := s.cache.Get(cacheKeyPRs); found {
		return cached.(*pr.Registry), nil
	}

	var lastErr error
	for attempt := 1; attempt <= s.prAttempts; attempt++ {
		rows, err := s.source.FetchRows(ctx, s.schema.PRTab, s.schema.PRRange)
		if err == nil {
			registry := pr.NewRegistry(rows)
			s.cache.Set(cacheKeyPRs, registry, cache.DefaultExpiration)
			return registry, nil
		}
		lastErr = err
		log.Printf("PR fetch attempt %d/%d failed: %v", attempt, s.prAttempts, err)

		if attempt == s.prAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.prDelay):
		}
	}
	return nil, fmt.Errorf("PR data unavailable after %d attempts: %w", s.prAttempts, lastErr)
}

// RaceResults fetches the race-results tab.
func (s *Store) RaceResults(ctx context.Context) ([]types.RaceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, found := s.cache.Get(cacheKeyRaces); found {
		return cached.([]types.RaceResult), nil
	}

	rows, err := s.source.FetchRows(ctx, s.schema.RaceTab, s.schema.RaceRange)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch race results: %w", err)
	}
	results := s.schema.RaceResults(rows)
	s.cache.Set(cacheKeyRaces, results, cache.DefaultExpiration)
	return results, nil
}
