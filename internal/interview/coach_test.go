package interview

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeGenerator records the prompt and returns a canned reply.
type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func TestGenerateQuestions(t *testing.T) {
	gen := &fakeGenerator{reply: `Question 1: first
Expected: points one
Question 2: second
Expected: points two`}

	coach := NewCoach(gen)
	questions, err := coach.GenerateQuestions(context.Background(), "resume text", "Backend Developer", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}

	for _, want := range []string{"resume text", "Backend Developer", "exactly 2 interview questions", "60% technical, 40% behavioral"} {
		if !strings.Contains(gen.prompt, want) {
			t.Errorf("generation prompt missing %q", want)
		}
	}
}

func TestGenerateQuestions_GeneratorError(t *testing.T) {
	coach := NewCoach(&fakeGenerator{err: errors.New("model down")})
	if _, err := coach.GenerateQuestions(context.Background(), "resume", "Data Scientist", 3); err == nil {
		t.Fatal("expected error from generator")
	}
}

func TestGenerateQuestions_UnparseableOutput(t *testing.T) {
	coach := NewCoach(&fakeGenerator{reply: "sorry, no questions today"})
	if _, err := coach.GenerateQuestions(context.Background(), "resume", "Data Scientist", 3); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEvaluate(t *testing.T) {
	gen := &fakeGenerator{reply: "## Overall score: 7/10"}
	coach := NewCoach(gen)

	qas := []QA{
		{Question: "What is a goroutine?", Expected: "lightweight thread", Answer: "a concurrent function"},
		{Question: "Tell me about a failure.", Expected: "honest reflection", Answer: "I shipped a bug"},
	}

	feedback, err := coach.Evaluate(context.Background(), "resume text", "Backend Developer", qas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if feedback != "## Overall score: 7/10" {
		t.Errorf("feedback = %q", feedback)
	}

	for _, want := range []string{
		"Question 1: What is a goroutine?",
		"Expected key points: lightweight thread",
		"Answer: a concurrent function",
		"Question 2: Tell me about a failure.",
		"Overall score out of 10",
		"role of Backend Developer",
	} {
		if !strings.Contains(gen.prompt, want) {
			t.Errorf("evaluation prompt missing %q", want)
		}
	}
}

func TestEvaluate_NoAnswers(t *testing.T) {
	coach := NewCoach(&fakeGenerator{reply: "unused"})
	if _, err := coach.Evaluate(context.Background(), "resume", "Product Manager", nil); err == nil {
		t.Fatal("expected error for empty QA set")
	}
}
