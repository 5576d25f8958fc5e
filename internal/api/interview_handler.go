package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"mock-interview/internal/interview"
	"mock-interview/internal/storage"
)

// RolesHandler lists the supported target roles
// @Summary List target roles
// @Description List the roles an interview round can be generated for
// @Tags interview
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /roles [get]
func (a *API) RolesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"roles": interview.Roles})
}

type createInterviewRequest struct {
	ResumeID     string `json:"resume_id"`
	Role         string `json:"role"`
	NumQuestions int    `json:"num_questions"`
}

// CreateInterviewHandler generates questions for a resume and role
// @Summary Create an interview round
// @Description Generate interview questions from an uploaded resume for a target role
// @Tags interview
// @Accept json
// @Produce json
// @Param request body createInterviewRequest true "Resume id, role and question count (3-10, 0 for default)"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /interviews [post]
func (a *API) CreateInterviewHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if !interview.IsSupportedRole(req.Role) {
		http.Error(w, "unsupported role (see /api/roles)", http.StatusBadRequest)
		return
	}

	count, ok := interview.NormalizeCount(req.NumQuestions)
	if !ok {
		http.Error(w, fmt.Sprintf("num_questions must be between %d and %d",
			interview.MinQuestions, interview.MaxQuestions), http.StatusBadRequest)
		return
	}

	if a.coach == nil {
		http.Error(w, "no LLM provider configured", http.StatusServiceUnavailable)
		return
	}

	res, err := a.db.GetResume(r.Context(), req.ResumeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "resume not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to load resume %s: %v", req.ResumeID, err)
		http.Error(w, "failed to load resume", http.StatusInternalServerError)
		return
	}

	questions, cached := a.questionCache.Get(res.ID, req.Role, count)
	if !cached {
		questions, err = a.coach.GenerateQuestions(r.Context(), res.FullText, req.Role, count)
		if err != nil {
			log.Printf("Question generation failed: %v", err)
			http.Error(w, "question generation failed", http.StatusBadGateway)
			return
		}
		a.questionCache.Set(res.ID, req.Role, count, questions)
	} else {
		log.Printf("Question cache hit for resume %s (%s, %d questions)", res.ID, req.Role, count)
	}

	iv := &storage.Interview{
		ID:           uuid.NewString(),
		ResumeID:     res.ID,
		Role:         req.Role,
		NumQuestions: len(questions),
		Status:       storage.StatusPending,
	}
	stored := make([]storage.Question, 0, len(questions))
	for _, q := range questions {
		stored = append(stored, storage.Question{Position: q.Number, Text: q.Text, Expected: q.Expected})
	}
	if err := a.db.CreateInterview(r.Context(), iv, stored); err != nil {
		log.Printf("Failed to save interview: %v", err)
		http.Error(w, "failed to save interview", http.StatusInternalServerError)
		return
	}

	log.Printf("Interview %s created (%s, %d questions)", iv.ID, iv.Role, len(stored))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"interview_id":  iv.ID,
		"resume_id":     iv.ResumeID,
		"role":          iv.Role,
		"num_questions": iv.NumQuestions,
		"status":        iv.Status,
		"questions":     publicQuestions(stored),
	})
}

// GetInterviewHandler returns an interview with its questions
// @Summary Get an interview round
// @Description Get interview status and questions (expected key points stay hidden)
// @Tags interview
// @Produce json
// @Param id path string true "Interview id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /interviews/{id} [get]
func (a *API) GetInterviewHandler(w http.ResponseWriter, r *http.Request) {
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

	questions, err := a.db.GetQuestions(r.Context(), iv.ID)
	if err != nil {
		http.Error(w, "failed to load questions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"interview_id":  iv.ID,
		"resume_id":     iv.ResumeID,
		"role":          iv.Role,
		"num_questions": iv.NumQuestions,
		"status":        iv.Status,
		"error_message": iv.ErrorMessage,
		"created_at":    iv.CreatedAt,
		"questions":     publicQuestions(questions),
	})
}

// publicQuestion is the client-visible view of a question: no expected key points.
type publicQuestion struct {
	Position int    `json:"position"`
	Question string `json:"question"`
}

func publicQuestions(questions []storage.Question) []publicQuestion {
	out := make([]publicQuestion, 0, len(questions))
	for _, q := range questions {
		out = append(out, publicQuestion{Position: q.Position, Question: q.Text})
	}
	return out
}
