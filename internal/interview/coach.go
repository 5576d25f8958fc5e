package interview

import (
	"context"
	"fmt"
)

// TextGenerator sends a prompt to a generative model and returns the raw
// text response. Implemented by llm.Service.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Coach runs the two model-backed steps of an interview round:
// question generation and answer evaluation.
type Coach struct {
	generator TextGenerator
}

func NewCoach(generator TextGenerator) *Coach {
	return &Coach{generator: generator}
}

// GenerateQuestions produces count interview questions tailored to the
// resume and role.
func (c *Coach) GenerateQuestions(ctx context.Context, resumeText, role string, count int) ([]Question, error) {
	raw, err := c.generator.Generate(ctx, generationPrompt(resumeText, role, count))
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	questions, err := ParseQuestions(raw, count)
	if err != nil {
		return nil, fmt.Errorf("parse questions: %w", err)
	}

	return questions, nil
}

// Evaluate grades the candidate's answers against the questions' expected
// key points and returns the model's markdown feedback verbatim.
func (c *Coach) Evaluate(ctx context.Context, resumeText, role string, qas []QA) (string, error) {
	if len(qas) == 0 {
		return "", fmt.Errorf("nothing to evaluate")
	}

	feedback, err := c.generator.Generate(ctx, evaluationPrompt(resumeText, role, qas))
	if err != nil {
		return "", fmt.Errorf("evaluate answers: %w", err)
	}

	return feedback, nil
}
