package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// Migrate creates the schema if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS resumes (
			id          TEXT PRIMARY KEY,
			filename    TEXT NOT NULL,
			file_type   TEXT NOT NULL,
			file_size   BIGINT NOT NULL,
			full_text   TEXT NOT NULL,
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS interviews (
			id            TEXT PRIMARY KEY,
			resume_id     TEXT NOT NULL REFERENCES resumes(id),
			role          TEXT NOT NULL,
			num_questions INT NOT NULL,
			status        TEXT NOT NULL,
			error_message TEXT,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			interview_id TEXT NOT NULL REFERENCES interviews(id),
			position     INT NOT NULL,
			question     TEXT NOT NULL,
			expected     TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (interview_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS answers (
			interview_id TEXT NOT NULL REFERENCES interviews(id),
			position     INT NOT NULL,
			answer       TEXT NOT NULL,
			PRIMARY KEY (interview_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS evaluations (
			interview_id TEXT PRIMARY KEY REFERENCES interviews(id),
			feedback     TEXT NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.connection.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SaveResume stores resume metadata and extracted text.
func (db *DB) SaveResume(ctx context.Context, r *Resume) error {
	query := `
		INSERT INTO resumes (id, filename, file_type, file_size, full_text, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := db.connection.ExecContext(ctx, query,
		r.ID, r.Filename, r.FileType, r.FileSize, r.FullText,
	)
	return err
}

// GetResume loads a resume by id. Returns sql.ErrNoRows when absent.
func (db *DB) GetResume(ctx context.Context, id string) (*Resume, error) {
	r := &Resume{}
	query := `SELECT id, filename, file_type, file_size, full_text, uploaded_at FROM resumes WHERE id = $1`
	err := db.connection.QueryRowContext(ctx, query, id).Scan(
		&r.ID, &r.Filename, &r.FileType, &r.FileSize, &r.FullText, &r.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// CreateInterview stores an interview together with its generated questions
// in one transaction.
func (db *DB) CreateInterview(ctx context.Context, iv *Interview, questions []Question) error {
	tx, err := db.connection.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO interviews (id, resume_id, role, num_questions, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, iv.ID, iv.ResumeID, iv.Role, iv.NumQuestions, iv.Status)
	if err != nil {
		return err
	}

	for _, q := range questions {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO questions (interview_id, position, question, expected)
			VALUES ($1, $2, $3, $4)
		`, iv.ID, q.Position, q.Text, q.Expected)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetInterview loads an interview by id. Returns sql.ErrNoRows when absent.
func (db *DB) GetInterview(ctx context.Context, id string) (*Interview, error) {
	iv := &Interview{}
	query := `SELECT id, resume_id, role, num_questions, status, error_message, created_at FROM interviews WHERE id = $1`
	err := db.connection.QueryRowContext(ctx, query, id).Scan(
		&iv.ID, &iv.ResumeID, &iv.Role, &iv.NumQuestions, &iv.Status, &iv.ErrorMessage, &iv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return iv, nil
}

// GetQuestions returns the questions of an interview in position order.
func (db *DB) GetQuestions(ctx context.Context, interviewID string) ([]Question, error) {
	rows, err := db.connection.QueryContext(ctx, `
		SELECT position, question, expected
		FROM questions
		WHERE interview_id = $1
		ORDER BY position
	`, interviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.Position, &q.Text, &q.Expected); err != nil {
			return nil, err
		}
		res = append(res, q)
	}
	return res, rows.Err()
}

// SaveAnswers upserts the submitted answers so a resubmission before
// evaluation replaces the previous set.
func (db *DB) SaveAnswers(ctx context.Context, interviewID string, answers []Answer) error {
	tx, err := db.connection.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, a := range answers {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO answers (interview_id, position, answer)
			VALUES ($1, $2, $3)
			ON CONFLICT (interview_id, position) DO UPDATE SET answer = EXCLUDED.answer
		`, interviewID, a.Position, a.Text)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetAnswers returns the stored answers of an interview in position order.
func (db *DB) GetAnswers(ctx context.Context, interviewID string) ([]Answer, error) {
	rows, err := db.connection.QueryContext(ctx, `
		SELECT position, answer
		FROM answers
		WHERE interview_id = $1
		ORDER BY position
	`, interviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Answer
	for rows.Next() {
		var a Answer
		if err := rows.Scan(&a.Position, &a.Text); err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

// UpdateInterviewStatus moves an interview through its lifecycle.
// errorMessage is stored for failed interviews and cleared otherwise.
func (db *DB) UpdateInterviewStatus(ctx context.Context, id, status string, errorMessage *string) error {
	query := `UPDATE interviews SET status = $2, error_message = $3 WHERE id = $1`
	_, err := db.connection.ExecContext(ctx, query, id, status, errorMessage)
	return err
}

// SaveEvaluation stores the model's feedback for an interview.
func (db *DB) SaveEvaluation(ctx context.Context, interviewID, feedback string) error {
	query := `
		INSERT INTO evaluations (interview_id, feedback, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (interview_id) DO UPDATE SET feedback = EXCLUDED.feedback, created_at = NOW()
	`
	_, err := db.connection.ExecContext(ctx, query, interviewID, feedback)
	return err
}

// GetEvaluation loads the feedback for an interview. Returns sql.ErrNoRows when absent.
func (db *DB) GetEvaluation(ctx context.Context, interviewID string) (*Evaluation, error) {
	ev := &Evaluation{}
	query := `SELECT interview_id, feedback, created_at FROM evaluations WHERE interview_id = $1`
	err := db.connection.QueryRowContext(ctx, query, interviewID).Scan(
		&ev.InterviewID, &ev.Feedback, &ev.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// ListInterviewsNeedingEvaluation finds interviews whose answers are in but
// whose evaluation never completed. Used by the backfill tool.
func (db *DB) ListInterviewsNeedingEvaluation(ctx context.Context, limit int) ([]*Interview, error) {
	rows, err := db.connection.QueryContext(ctx, `
		SELECT i.id, i.resume_id, i.role, i.num_questions, i.status, i.error_message, i.created_at
		FROM interviews i
		WHERE i.status IN ($1, $2)
		  AND EXISTS (SELECT 1 FROM answers a WHERE a.interview_id = i.id)
		  AND NOT EXISTS (SELECT 1 FROM evaluations e WHERE e.interview_id = i.id)
		ORDER BY i.created_at
		LIMIT $3
	`, StatusEvaluating, StatusFailed, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Interview
	for rows.Next() {
		iv := &Interview{}
		if err := rows.Scan(&iv.ID, &iv.ResumeID, &iv.Role, &iv.NumQuestions, &iv.Status, &iv.ErrorMessage, &iv.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, iv)
	}
	return res, rows.Err()
}
