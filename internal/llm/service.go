package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	apihttp "mock-interview/pkg/http"
)

type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
	ProviderGroq   Provider = "groq"
	ProviderNone   Provider = "none"
)

const (
	openAIEndpoint = "https://api.openai.com/v1/chat/completions"
	groqEndpoint   = "https://api.groq.com/openai/v1/chat/completions"
)

// Service sends prompts to the configured generative-model provider and
// returns the raw text response. Prompt construction and response parsing
// belong to the caller.
type Service struct {
	provider Provider
	apiKey   string
	model    string
	client   *apihttp.Client

	// chat-completions endpoints, overridable in tests
	openAIURL string
	groqURL   string

	gemini *genai.Client
}

func NewService(provider, apiKey, model string) (*Service, error) {
	s := &Service{
		provider:  Provider(provider),
		apiKey:    apiKey,
		model:     model,
		client:    apihttp.NewClient(600 * time.Second), // slow models need headroom
		openAIURL: openAIEndpoint,
		groqURL:   groqEndpoint,
	}

	if s.provider == ProviderGemini {
		client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: apiKey,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		s.gemini = client
	}

	return s, nil
}

// Generate sends a prompt and returns the model's text reply.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	switch s.provider {
	case ProviderGemini:
		return s.callGemini(ctx, prompt)
	case ProviderOpenAI:
		return s.callChatCompletions(ctx, s.openAIURL, prompt)
	case ProviderGroq:
		return s.callChatCompletions(ctx, s.groqURL, prompt)
	case ProviderNone:
		return "", fmt.Errorf("LLM provider not configured")
	default:
		return "", fmt.Errorf("unknown provider: %s", s.provider)
	}
}

func (s *Service) callGemini(ctx context.Context, prompt string) (string, error) {
	resp, err := s.gemini.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return resp.Text(), nil
}

// callChatCompletions talks to an OpenAI-compatible chat endpoint
// (OpenAI and Groq share the wire format).
func (s *Service) callChatCompletions(ctx context.Context, url, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are an experienced technical interviewer and interview coach.",
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.7,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completions error: %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("chat completions error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}

	return result.Choices[0].Message.Content, nil
}
