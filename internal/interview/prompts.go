package interview

import (
	"fmt"
	"strings"
)

// QA pairs a generated question with the candidate's answer for evaluation.
type QA struct {
	Question string
	Expected string
	Answer   string
}

func generationPrompt(resumeText, role string, count int) string {
	return fmt.Sprintf(`Based on the following resume:
%s

For the role of %s, generate exactly %d interview questions.
Mix technical and behavioral questions (aim for 60%% technical, 40%% behavioral).
Number them 1 to %d.
For each question, provide a brief expected key points in evaluation (hidden for user, but include for later eval).
Format as:
Question 1: [Question text]
Expected: [brief key points]

... and so on.`, resumeText, role, count, count)
}

func evaluationPrompt(resumeText, role string, qas []QA) string {
	var formatted strings.Builder
	for i, qa := range qas {
		fmt.Fprintf(&formatted, "Question %d: %s\nExpected key points: %s\nAnswer: %s\n\n",
			i+1, qa.Question, qa.Expected, qa.Answer)
	}

	return fmt.Sprintf(`Evaluate the following Q&A for the role of %s based on resume:
%s

%s
Provide:
- Overall score out of 10.
- Score per question out of 10.
- Strengths.
- Areas for improvement with specific suggestions.
- General feedback.

Be constructive and detailed.`, role, resumeText, formatted.String())
}
