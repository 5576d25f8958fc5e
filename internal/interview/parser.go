package interview

import (
	"fmt"
	"strings"
)

// Question is one parsed question from model output. Expected holds the
// evaluator's key points and stays hidden from the candidate.
type Question struct {
	Number   int
	Text     string
	Expected string
}

const (
	questionPrefix = "Question "
	expectedPrefix = "Expected:"
)

// ParseQuestions parses the "Question N: ... / Expected: ..." format the
// generation prompt asks for. A line starting with "Question " opens a new
// question (text after the first colon), "Expected:" sets its key points,
// and any other non-blank line continues the open question. Preamble lines
// before the first question are ignored, and the result is truncated to
// limit. Zero parsed questions is an error.
func ParseQuestions(raw string, limit int) ([]Question, error) {
	var questions []Question
	var current *Question

	flush := func() {
		if current != nil && current.Text != "" {
			questions = append(questions, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(stripFences(raw), "\n") {
		switch {
		case strings.HasPrefix(line, questionPrefix):
			flush()
			_, after, found := strings.Cut(line, ":")
			if !found {
				continue
			}
			current = &Question{Text: strings.TrimSpace(after)}
		case strings.HasPrefix(line, expectedPrefix):
			if current != nil {
				current.Expected = strings.TrimSpace(strings.TrimPrefix(line, expectedPrefix))
			}
		case strings.TrimSpace(line) != "":
			if current != nil {
				current.Text += " " + strings.TrimSpace(line)
			}
		}
	}
	flush()

	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions found in model output")
	}

	if limit > 0 && len(questions) > limit {
		questions = questions[:limit]
	}

	for i := range questions {
		questions[i].Number = i + 1
	}

	return questions, nil
}

// stripFences removes a surrounding markdown code fence, which some models
// wrap plain-text output in despite instructions.
func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)

	if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
		// drop a language tag like ```markdown
		if idx := strings.Index(clean, "\n"); idx >= 0 && !strings.ContainsAny(clean[:idx], ": ") {
			clean = clean[idx+1:]
		}
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")

	return strings.TrimSpace(clean)
}
