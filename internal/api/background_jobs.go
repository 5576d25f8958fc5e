package api

import (
	"context"
	"fmt"
	"log"
	"time"

	"mock-interview/internal/interview"
	"mock-interview/internal/storage"
)

// EvaluationJob represents a background answer-evaluation task
type EvaluationJob struct {
	InterviewID string
	Timestamp   time.Time
}

// StartBackgroundWorkers initializes background job workers
func (a *API) StartBackgroundWorkers() {
	go a.evaluationWorker()
	go a.cacheJanitor()

	log.Println("[BackgroundJobs] Workers started (evaluation + cache janitor)")
}

// evaluationWorker processes evaluation jobs from the queue
func (a *API) evaluationWorker() {
	log.Println("[EvaluationWorker] Started")

	for job := range a.evalQueue {
		log.Printf("[EvaluationWorker] Processing interview %s", job.InterviewID)

		ctx := context.Background()

		feedback, err := a.evaluateInterview(ctx, job.InterviewID)
		if err != nil {
			errMsg := err.Error()
			log.Printf("[EvaluationWorker] Interview %s failed: %s", job.InterviewID, errMsg)
			if uerr := a.db.UpdateInterviewStatus(ctx, job.InterviewID, storage.StatusFailed, &errMsg); uerr != nil {
				log.Printf("[EvaluationWorker] Failed to mark interview %s as failed: %v", job.InterviewID, uerr)
			}
			continue
		}

		if err := a.db.SaveEvaluation(ctx, job.InterviewID, feedback); err != nil {
			errMsg := fmt.Sprintf("save evaluation: %v", err)
			log.Printf("[EvaluationWorker] %s", errMsg)
			a.db.UpdateInterviewStatus(ctx, job.InterviewID, storage.StatusFailed, &errMsg)
			continue
		}
		if err := a.db.UpdateInterviewStatus(ctx, job.InterviewID, storage.StatusCompleted, nil); err != nil {
			log.Printf("[EvaluationWorker] Failed to mark interview %s as completed: %v", job.InterviewID, err)
			continue
		}

		log.Printf("[EvaluationWorker] Interview %s completed (took %v)", job.InterviewID, time.Since(job.Timestamp))
	}
}

// evaluateInterview loads everything the evaluation prompt needs and runs it.
// Shared with the backfill tool via the same storage/coach calls.
func (a *API) evaluateInterview(ctx context.Context, interviewID string) (string, error) {
	if a.coach == nil {
		return "", fmt.Errorf("no LLM provider configured")
	}

	iv, err := a.db.GetInterview(ctx, interviewID)
	if err != nil {
		return "", fmt.Errorf("load interview: %w", err)
	}
	res, err := a.db.GetResume(ctx, iv.ResumeID)
	if err != nil {
		return "", fmt.Errorf("load resume: %w", err)
	}
	qas, err := LoadQAs(ctx, a.db, interviewID)
	if err != nil {
		return "", err
	}

	return a.coach.Evaluate(ctx, res.FullText, iv.Role, qas)
}

// LoadQAs joins an interview's questions with its stored answers.
func LoadQAs(ctx context.Context, db Store, interviewID string) ([]interview.QA, error) {
	questions, err := db.GetQuestions(ctx, interviewID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	answers, err := db.GetAnswers(ctx, interviewID)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}

	byPosition := make(map[int]string, len(answers))
	for _, a := range answers {
		byPosition[a.Position] = a.Text
	}

	qas := make([]interview.QA, 0, len(questions))
	for _, q := range questions {
		qas = append(qas, interview.QA{
			Question: q.Text,
			Expected: q.Expected,
			Answer:   byPosition[q.Position],
		})
	}
	return qas, nil
}

// QueueEvaluationJob adds an evaluation job to the background queue.
// Returns false when the queue is full.
func (a *API) QueueEvaluationJob(interviewID string) bool {
	job := EvaluationJob{
		InterviewID: interviewID,
		Timestamp:   time.Now(),
	}

	// Non-blocking send
	select {
	case a.evalQueue <- job:
		log.Printf("[BackgroundJobs] Queued evaluation for interview %s", interviewID)
		return true
	default:
		log.Printf("[BackgroundJobs] Queue full! Dropping evaluation for interview %s", interviewID)
		return false
	}
}

// cacheJanitor evicts expired question-cache entries.
func (a *API) cacheJanitor() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		a.questionCache.CleanExpired()
	}
}
