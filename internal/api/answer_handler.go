package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"

	"mock-interview/internal/storage"
)

type submitAnswersRequest struct {
	// Answers keyed by question position: {"1": "...", "2": "..."}
	Answers map[string]string `json:"answers"`
}

// SubmitAnswersHandler accepts answers and queues the evaluation
// @Summary Submit answers
// @Description Submit an answer for every question and queue the evaluation
// @Tags interview
// @Accept json
// @Produce json
// @Param id path string true "Interview id"
// @Param request body submitAnswersRequest true "Answers keyed by question position"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /interviews/{id}/answers [post]
func (a *API) SubmitAnswersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	iv, err := a.db.GetInterview(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "interview not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load interview", http.StatusInternalServerError)
		return
	}

	// A failed evaluation may be retried with fresh answers; an interview
	// being evaluated or already completed may not.
	if iv.Status != storage.StatusPending && iv.Status != storage.StatusFailed {
		http.Error(w, fmt.Sprintf("interview is %s, answers can no longer be submitted", iv.Status), http.StatusConflict)
		return
	}

	var req submitAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	answers, err := parseAnswers(req.Answers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	questions, err := a.db.GetQuestions(r.Context(), iv.ID)
	if err != nil {
		http.Error(w, "failed to load questions", http.StatusInternalServerError)
		return
	}

	if missing := missingAnswers(questions, answers); len(missing) > 0 {
		http.Error(w, fmt.Sprintf("please answer all questions before submitting (missing: %v)", missing), http.StatusBadRequest)
		return
	}

	stored := make([]storage.Answer, 0, len(questions))
	for _, q := range questions {
		stored = append(stored, storage.Answer{Position: q.Position, Text: answers[q.Position]})
	}
	if err := a.db.SaveAnswers(r.Context(), iv.ID, stored); err != nil {
		log.Printf("Failed to save answers for interview %s: %v", iv.ID, err)
		http.Error(w, "failed to save answers", http.StatusInternalServerError)
		return
	}

	if err := a.db.UpdateInterviewStatus(r.Context(), iv.ID, storage.StatusEvaluating, nil); err != nil {
		http.Error(w, "failed to update interview", http.StatusInternalServerError)
		return
	}

	if !a.QueueEvaluationJob(iv.ID) {
		// Mark the interview failed so the candidate can resubmit; leaving
		// it in evaluating would strand it with no job ever running.
		msg := "evaluation queue full"
		if err := a.db.UpdateInterviewStatus(r.Context(), iv.ID, storage.StatusFailed, &msg); err != nil {
			log.Printf("Failed to mark interview %s as failed after full queue: %v", iv.ID, err)
		}
		http.Error(w, "evaluation queue full, try again later", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{
		"interview_id": iv.ID,
		"status":       storage.StatusEvaluating,
	})
}

// GetEvaluationHandler returns the evaluation once the worker finished
// @Summary Get the evaluation
// @Description Get the model's feedback; 202 while evaluation is still running
// @Tags interview
// @Produce json
// @Param id path string true "Interview id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /interviews/{id}/evaluation [get]
func (a *API) GetEvaluationHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	iv, err := a.db.GetInterview(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "interview not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load interview", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	switch iv.Status {
	case storage.StatusPending:
		http.Error(w, "answers have not been submitted yet", http.StatusConflict)
	case storage.StatusEvaluating:
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{"status": storage.StatusEvaluating})
	case storage.StatusFailed:
		msg := "evaluation failed"
		if iv.ErrorMessage != nil {
			msg = *iv.ErrorMessage
		}
		http.Error(w, msg, http.StatusBadGateway)
	case storage.StatusCompleted:
		ev, err := a.db.GetEvaluation(r.Context(), iv.ID)
		if err != nil {
			http.Error(w, "failed to load evaluation", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"interview_id": ev.InterviewID,
			"status":       iv.Status,
			"feedback":     ev.Feedback,
			"created_at":   ev.CreatedAt,
		})
	default:
		http.Error(w, "unknown interview status", http.StatusInternalServerError)
	}
}

// parseAnswers converts the JSON answer map's string keys to positions.
func parseAnswers(in map[string]string) (map[int]string, error) {
	out := make(map[int]string, len(in))
	for key, answer := range in {
		pos, err := strconv.Atoi(key)
		if err != nil || pos < 1 {
			return nil, fmt.Errorf("invalid question position %q", key)
		}
		out[pos] = answer
	}
	return out, nil
}

// missingAnswers returns the positions of questions without a non-empty answer.
func missingAnswers(questions []storage.Question, answers map[int]string) []int {
	var missing []int
	for _, q := range questions {
		if answers[q.Position] == "" {
			missing = append(missing, q.Position)
		}
	}
	sort.Ints(missing)
	return missing
}
