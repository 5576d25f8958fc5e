package resume

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// PreviewLimit caps the extracted-text preview returned to the client.
const PreviewLimit = 1000

type Parser struct {
	uploadsDir string
}

type Parsed struct {
	Filename string
	FileType string
	FileSize int64
	FullText string
}

func NewParser(uploadsDir string) *Parser {
	return &Parser{
		uploadsDir: uploadsDir,
	}
}

// ParseFile saves the upload and extracts its text. The stored name is
// prefixed with id so same-named uploads do not overwrite each other.
// A document from which no text can be extracted is an error: the
// interview flow is useless without resume text.
func (p *Parser) ParseFile(id, filename string, reader io.Reader) (*Parsed, error) {
	filePath := filepath.Join(p.uploadsDir, id+"_"+filepath.Base(filename))
	if err := os.MkdirAll(p.uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	fileType := strings.ToLower(filepath.Ext(filename))
	var text string

	switch fileType {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		text = res.Body
	case ".txt":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read text file: %w", err)
		}
		text = string(content)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("no text could be extracted from %s", filename)
	}

	return &Parsed{
		Filename: filename,
		FileType: fileType,
		FileSize: size,
		FullText: text,
	}, nil
}

// Preview returns the first PreviewLimit characters of text with an
// ellipsis when truncated.
func Preview(text string) string {
	if len(text) <= PreviewLimit {
		return text
	}
	return text[:PreviewLimit] + "..."
}
