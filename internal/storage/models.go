package storage

import "time"

// Interview lifecycle statuses.
const (
	StatusPending    = "pending"    // questions generated, waiting for answers
	StatusEvaluating = "evaluating" // answers submitted, evaluation queued
	StatusCompleted  = "completed"  // evaluation stored
	StatusFailed     = "failed"     // evaluation failed, see ErrorMessage
)

// Resume represents an uploaded resume with its extracted text.
// Note: Keep this minimal for DB persistence; enrich elsewhere if needed.
type Resume struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	FullText   string    `json:"-"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Interview is one generate/answer/evaluate round for a resume and role.
type Interview struct {
	ID           string    `json:"id"`
	ResumeID     string    `json:"resume_id"`
	Role         string    `json:"role"`
	NumQuestions int       `json:"num_questions"`
	Status       string    `json:"status"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Question is a generated interview question. Expected holds the key
// points the evaluator grades against and is never sent to the client.
type Question struct {
	Position int    `json:"position"`
	Text     string `json:"question"`
	Expected string `json:"-"`
}

// Answer is the candidate's answer to one question.
type Answer struct {
	Position int    `json:"position"`
	Text     string `json:"answer"`
}

// Evaluation is the model's feedback for a completed interview,
// stored as the markdown the model returned.
type Evaluation struct {
	InterviewID string    `json:"interview_id"`
	Feedback    string    `json:"feedback"`
	CreatedAt   time.Time `json:"created_at"`
}
