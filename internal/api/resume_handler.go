package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mock-interview/internal/resume"
	"mock-interview/internal/storage"
)

// UploadResumeHandler handles resume uploads and text extraction
// @Summary Upload a resume
// @Description Upload a resume (PDF/DOCX/TXT), extract its text and store it for interview rounds
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF, DOCX or TXT)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /resume/upload [post]
func (a *API) UploadResumeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	startTime := time.Now()

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "file too large or invalid (max 10MB)", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Validate file type
	ext := filepath.Ext(header.Filename)
	if ext != ".pdf" && ext != ".docx" && ext != ".doc" && ext != ".txt" {
		http.Error(w, "invalid file type (supported: PDF, DOCX, TXT)", http.StatusBadRequest)
		return
	}

	resumeID := uuid.NewString()
	parsed, err := a.resumeParser.ParseFile(resumeID, header.Filename, file)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to parse resume: %v", err), http.StatusBadRequest)
		return
	}

	log.Printf("Resume parsed: %s (%d bytes text)", parsed.Filename, len(parsed.FullText))

	rec := &storage.Resume{
		ID:       resumeID,
		Filename: parsed.Filename,
		FileType: parsed.FileType,
		FileSize: parsed.FileSize,
		FullText: parsed.FullText,
	}
	if err := a.db.SaveResume(r.Context(), rec); err != nil {
		log.Printf("Failed to save resume: %v", err)
		http.Error(w, "failed to save resume", http.StatusInternalServerError)
		return
	}

	log.Printf("Resume saved with ID: %s", rec.ID)

	response := map[string]interface{}{
		"resume_id":          rec.ID,
		"filename":           rec.Filename,
		"file_type":          rec.FileType,
		"file_size":          rec.FileSize,
		"text_length":        len(rec.FullText),
		"preview":            resume.Preview(rec.FullText),
		"processing_time_ms": time.Since(startTime).Milliseconds(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("ERROR: Failed to encode JSON response: %v", err)
	}
}
