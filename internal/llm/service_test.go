package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apihttp "mock-interview/pkg/http"
)

type chatChoice struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

func chatBody(content string) map[string]interface{} {
	var c chatChoice
	c.Message.Content = content
	return map[string]interface{}{"choices": []chatChoice{c}}
}

func makeTestServer(t *testing.T, statusCode int, body interface{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if err := json.NewEncoder(w).Encode(body); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testService(provider string, url string) *Service {
	return &Service{
		provider:  Provider(provider),
		apiKey:    "test-key",
		model:     "test-model",
		client:    apihttp.NewClient(5 * time.Second),
		openAIURL: url,
		groqURL:   url,
	}
}

func TestGenerate_OpenAISuccess(t *testing.T) {
	srv := makeTestServer(t, http.StatusOK, chatBody("Question 1: tell me about yourself"))

	svc := testService("openai", srv.URL)
	got, err := svc.Generate(context.Background(), "generate questions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Question 1: tell me about yourself" {
		t.Errorf("got %q", got)
	}
}

func TestGenerate_GroqSuccess(t *testing.T) {
	srv := makeTestServer(t, http.StatusOK, chatBody("ok"))

	svc := testService("groq", srv.URL)
	got, err := svc.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Errorf("got %q", got)
	}
}

func TestGenerate_HTTPError(t *testing.T) {
	srv := makeTestServer(t, http.StatusInternalServerError, map[string]string{"error": "boom"})

	svc := testService("openai", srv.URL)
	if _, err := svc.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error on 5xx response")
	}
}

func TestGenerate_RateLimited(t *testing.T) {
	srv := makeTestServer(t, http.StatusTooManyRequests, map[string]string{"error": "rate limited"})

	svc := testService("openai", srv.URL)
	if _, err := svc.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error on 429 response")
	}
}

func TestGenerate_EmptyChoices(t *testing.T) {
	srv := makeTestServer(t, http.StatusOK, map[string]interface{}{"choices": []chatChoice{}})

	svc := testService("openai", srv.URL)
	if _, err := svc.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error when model returns no choices")
	}
}

func TestGenerate_SetsAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatBody("ok"))
	}))
	defer srv.Close()

	svc := testService("openai", srv.URL)
	svc.apiKey = "my-secret-key"
	_, _ = svc.Generate(context.Background(), "hello")

	if gotAuth != "Bearer my-secret-key" {
		t.Errorf("Authorization header = %q, want bearer token", gotAuth)
	}
}

func TestGenerate_UnknownProvider(t *testing.T) {
	svc := testService("carrier-pigeon", "http://unused")
	if _, err := svc.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestGenerate_ProviderNone(t *testing.T) {
	svc := testService("none", "http://unused")
	if _, err := svc.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error when provider not configured")
	}
}
