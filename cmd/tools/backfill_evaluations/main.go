package main

import (
	"context"
	"flag"
	"log"

	"mock-interview/internal/api"
	"mock-interview/internal/config"
	"mock-interview/internal/interview"
	"mock-interview/internal/llm"
	"mock-interview/internal/storage"
)

// Re-runs evaluations for interviews whose answers are stored but whose
// evaluation never completed (crashed worker, dropped job, provider outage).
func main() {
	var dryRun bool
	var limit int
	flag.BoolVar(&dryRun, "dry-run", true, "If true, do not persist evaluations; just print what would run")
	flag.IntVar(&limit, "limit", 50, "Max number of interviews to process in one run")
	flag.Parse()

	cfg := config.LoadConfig()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.LLMProvider == "" || cfg.LLMProvider == "none" || cfg.LLMAPIKey == "" {
		log.Fatal("an LLM provider must be configured (LLM_PROVIDER and its API key)")
	}

	log.Printf("Connecting to DB...")
	db, err := storage.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer db.Close()

	log.Printf("Creating LLM service (provider=%s, model=%s)", cfg.LLMProvider, cfg.LLMModel)
	svc, err := llm.NewService(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel)
	if err != nil {
		log.Fatalf("failed to create llm service: %v", err)
	}
	coach := interview.NewCoach(svc)

	ctx := context.Background()

	interviews, err := db.ListInterviewsNeedingEvaluation(ctx, limit)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}
	log.Printf("Found %d interview(s) needing evaluation", len(interviews))

	var done, failed int
	for _, iv := range interviews {
		if dryRun {
			log.Printf("[dry-run] would evaluate interview %s (%s, status=%s)", iv.ID, iv.Role, iv.Status)
			continue
		}

		res, err := db.GetResume(ctx, iv.ResumeID)
		if err != nil {
			log.Printf("interview %s: load resume: %v", iv.ID, err)
			failed++
			continue
		}
		qas, err := api.LoadQAs(ctx, db, iv.ID)
		if err != nil {
			log.Printf("interview %s: %v", iv.ID, err)
			failed++
			continue
		}

		feedback, err := coach.Evaluate(ctx, res.FullText, iv.Role, qas)
		if err != nil {
			errMsg := err.Error()
			log.Printf("interview %s: evaluation failed: %s", iv.ID, errMsg)
			db.UpdateInterviewStatus(ctx, iv.ID, storage.StatusFailed, &errMsg)
			failed++
			continue
		}

		if err := db.SaveEvaluation(ctx, iv.ID, feedback); err != nil {
			log.Printf("interview %s: save evaluation: %v", iv.ID, err)
			failed++
			continue
		}
		if err := db.UpdateInterviewStatus(ctx, iv.ID, storage.StatusCompleted, nil); err != nil {
			log.Printf("interview %s: update status: %v", iv.ID, err)
			failed++
			continue
		}

		log.Printf("interview %s: evaluation backfilled", iv.ID)
		done++
	}

	log.Printf("Done: %d evaluated, %d failed, dry-run=%v", done, failed, dryRun)
}
