package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/DavidW312/Running-Website/internal/config"
	"github.com/DavidW312/Running-Website/internal/sheets"
)

// Server serves the computed dashboard views over JSON.
type Server struct {
	store       *Store
	rateLimiter *RateLimiter
}

// NewServer builds the Sheets client, the snapshot store and the HTTP server
// around them.
func NewServer(ctx context.Context, cfg *config.Config) (*http.Server, error) {
	client, err := sheets.NewClient(ctx, cfg.SpreadsheetID, cfg.SheetsAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	schema, err := sheets.SchemaByVersion(cfg.SchemaVersion)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		store:       NewStore(client, schema, cfg.CacheTTL, cfg.PRWaitAttempts, cfg.PRWaitDelay),
		rateLimiter: NewRateLimiter(cfg.RateLimit, cfg.RateWindowSeconds),
	}
	srv.rateLimiter.StartCleanup(5 * time.Minute)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      srv.RegisterRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}, nil
}
