package resume

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFile_Text(t *testing.T) {
	p := NewParser(t.TempDir())

	parsed, err := p.ParseFile("id-1", "resume.txt", strings.NewReader("Jane Doe\nBackend engineer, 5 years of Go.\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.FileType != ".txt" {
		t.Errorf("file type = %q, want .txt", parsed.FileType)
	}
	if !strings.Contains(parsed.FullText, "Backend engineer") {
		t.Errorf("full text missing content: %q", parsed.FullText)
	}
	if parsed.FileSize == 0 {
		t.Error("file size not recorded")
	}
}

func TestParseFile_EmptyText(t *testing.T) {
	p := NewParser(t.TempDir())

	_, err := p.ParseFile("id-1", "resume.txt", strings.NewReader("   \n\t\n"))
	if err == nil {
		t.Fatal("expected error for resume with no extractable text")
	}
}

func TestParseFile_UnsupportedType(t *testing.T) {
	p := NewParser(t.TempDir())

	_, err := p.ParseFile("id-1", "resume.png", strings.NewReader("binary"))
	if err == nil {
		t.Fatal("expected error for unsupported file type")
	}
}

func TestParseFile_StripsPathFromFilename(t *testing.T) {
	dir := t.TempDir()
	p := NewParser(dir)

	// A hostile filename must not escape the uploads dir.
	parsed, err := p.ParseFile("id-1", "../../etc/resume.txt", strings.NewReader("some text"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.FullText != "some text" {
		t.Errorf("full text = %q", parsed.FullText)
	}
}

func TestParseFile_SameNameDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	p := NewParser(dir)

	if _, err := p.ParseFile("id-1", "resume.txt", strings.NewReader("first upload")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.ParseFile("id-2", "resume.txt", strings.NewReader("second upload")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := os.ReadFile(filepath.Join(dir, "id-1_resume.txt"))
	if err != nil {
		t.Fatalf("first upload missing on disk: %v", err)
	}
	if string(first) != "first upload" {
		t.Errorf("first upload content = %q, overwritten by second", first)
	}
}

func TestPreview(t *testing.T) {
	short := "short resume"
	if got := Preview(short); got != short {
		t.Errorf("short preview changed: %q", got)
	}

	long := strings.Repeat("a", PreviewLimit+50)
	got := Preview(long)
	if len(got) != PreviewLimit+3 {
		t.Errorf("preview length = %d, want %d", len(got), PreviewLimit+3)
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("truncated preview missing ellipsis")
	}
}
