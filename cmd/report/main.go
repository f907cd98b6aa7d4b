package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/DavidW312/Running-Website/internal/config"
	"github.com/DavidW312/Running-Website/internal/pr"
	"github.com/DavidW312/Running-Website/internal/report"
	"github.com/DavidW312/Running-Website/internal/server"
	"github.com/DavidW312/Running-Website/internal/sheets"
	"github.com/DavidW312/Running-Website/internal/types"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("note: could not load .env file (%v); continuing with system environment", err)
	}
	log.SetPrefix("[running-website-report] ")
}

func main() {
	reportToRun := os.Getenv("REPORT")
	if reportToRun == "" {
		log.Fatal("REPORT environment variable is required (options: season, leaderboard, prs, meets)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := sheets.NewClient(ctx, cfg.SpreadsheetID, cfg.SheetsAPIKey)
	if err != nil {
		log.Fatalf("failed to initialize sheets client: %v", err)
	}
	schema, err := sheets.SchemaByVersion(cfg.SchemaVersion)
	if err != nil {
		log.Fatalf("schema: %v", err)
	}
	store := server.NewStore(client, schema, cfg.CacheTTL, cfg.PRWaitAttempts, cfg.PRWaitDelay)

	log.Println("Running report:", reportToRun)

	var output any
	switch reportToRun {
	case "season":
		output, err = store.Season(ctx)
	case "leaderboard":
		var snapshot *server.SeasonSnapshot
		if snapshot, err = store.Season(ctx); err == nil {
			output = report.Leaderboard(snapshot.Totals)
		}
	case "prs":
		var registry *pr.Registry
		if registry, err = store.PRRegistry(ctx); err == nil {
			output = registry.Records()
		}
	case "meets":
		var results []types.RaceResult
		if results, err = store.RaceResults(ctx); err == nil {
			output = report.MeetNames(results)
		}
	default:
		log.Fatalf("Invalid REPORT value: %s (options: season, leaderboard, prs, meets)", reportToRun)
	}
	if err != nil {
		log.Fatalf("Report failed: %v", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		log.Fatalf("failed to encode report: %v", err)
	}

	log.Println("Report completed successfully!")
}
