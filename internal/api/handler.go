package api

import (
	"context"
	"log"
	"time"

	"mock-interview/internal/config"
	"mock-interview/internal/interview"
	"mock-interview/internal/llm"
	"mock-interview/internal/resume"
	"mock-interview/internal/storage"
)

// Store is the slice of the storage layer the handlers and workers use.
// Implemented by *storage.DB; narrow so tests can fake it.
type Store interface {
	SaveResume(ctx context.Context, r *storage.Resume) error
	GetResume(ctx context.Context, id string) (*storage.Resume, error)
	CreateInterview(ctx context.Context, iv *storage.Interview, questions []storage.Question) error
	GetInterview(ctx context.Context, id string) (*storage.Interview, error)
	GetQuestions(ctx context.Context, interviewID string) ([]storage.Question, error)
	SaveAnswers(ctx context.Context, interviewID string, answers []storage.Answer) error
	GetAnswers(ctx context.Context, interviewID string) ([]storage.Answer, error)
	UpdateInterviewStatus(ctx context.Context, id, status string, errorMessage *string) error
	SaveEvaluation(ctx context.Context, interviewID, feedback string) error
	GetEvaluation(ctx context.Context, interviewID string) (*storage.Evaluation, error)
}

type API struct {
	db            Store
	resumeParser  *resume.Parser
	coach         *interview.Coach
	questionCache *interview.QuestionCache
	evalQueue     chan EvaluationJob // Background queue for async answer evaluation
}

func NewAPI(db *storage.DB, cfg *config.Config) *API {
	// Initialize the coach (if an LLM provider is configured)
	var coach *interview.Coach
	if cfg.LLMProvider != "" && cfg.LLMProvider != "none" && cfg.LLMAPIKey != "" {
		svc, err := llm.NewService(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("LLM service unavailable: %v", err)
		} else {
			coach = interview.NewCoach(svc)
		}
	}
	if coach == nil {
		log.Println("Warning: no LLM provider configured, interview endpoints will return 503")
	}

	api := &API{
		db:            db,
		resumeParser:  resume.NewParser(cfg.UploadsDir),
		coach:         coach,
		questionCache: interview.NewQuestionCache(15 * time.Minute),
		evalQueue:     make(chan EvaluationJob, 50), // Buffer for 50 evaluation jobs
	}

	// Start background workers
	api.StartBackgroundWorkers()

	return api
}
